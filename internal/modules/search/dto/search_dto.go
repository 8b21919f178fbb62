package dto

import "anoa.com/spacemanagement/internal/entity"

// Document is the search index shape of a celestial object of any subtype.
type Document struct {
	ID          uint    `json:"id"`
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	XCoordinate float64 `json:"xCoordinate"`
	YCoordinate float64 `json:"yCoordinate"`
	ZCoordinate float64 `json:"zCoordinate"`
}

func NewDocument(b *entity.CelestialBase) Document {
	doc := Document{
		ID:          b.ID,
		Type:        b.CelestialObjectType,
		Name:        b.Name,
		Description: b.Description,
		XCoordinate: b.XCoordinate,
		YCoordinate: b.YCoordinate,
		ZCoordinate: b.ZCoordinate,
	}
	if url := b.ImageURL(); url != nil {
		doc.ImageURL = *url
	}
	return doc
}

type SearchQuery struct {
	Q     string `form:"q"`
	Type  string `form:"type"`
	Limit int64  `form:"limit" binding:"omitempty,min=1,max=100"`
}

type SearchResponse struct {
	Hits  []Document `json:"hits"`
	Total int64      `json:"estimatedTotalHits"`
}
