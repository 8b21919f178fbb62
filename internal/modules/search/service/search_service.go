package search

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"anoa.com/spacemanagement/internal/entity"
	"anoa.com/spacemanagement/internal/modules/search/dto"
	"anoa.com/spacemanagement/pkg/apperror"
	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog/log"
)

const IndexName = "celestial_objects"

// Indexer keeps the search index in step with catalog writes.
type Indexer interface {
	Index(objs ...*entity.CelestialBase) error
	Remove(id uint) error
}

type SearchService interface {
	Indexer
	Search(query dto.SearchQuery) (*dto.SearchResponse, error)
}

type meiliSearchService struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
}

func NewMeiliSearchService(client meilisearch.ServiceManager) SearchService {
	s := &meiliSearchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	s.initIndex()
	return s
}

func (s *meiliSearchService) initIndex() {
	filterable := []any{"type"}
	if _, err := s.client.Index(IndexName).UpdateFilterableAttributes(&filterable); err != nil {
		log.Warn().Err(err).Msg("failed to update filterable attributes")
	}

	searchable := []string{"name", "description", "type"}
	if _, err := s.client.Index(IndexName).UpdateSearchableAttributes(&searchable); err != nil {
		log.Warn().Err(err).Msg("failed to update searchable attributes")
	}

	log.Info().Str("index", IndexName).Msg("meilisearch index initialized")
}

// clean strips markup that users may have typed into free text fields.
func (s *meiliSearchService) clean(content string) string {
	content = strings.ReplaceAll(content, "<br>", " ")
	content = strings.ReplaceAll(content, "</p>", " ")

	cleaned := html.UnescapeString(s.sanitizer.Sanitize(content))
	return strings.Join(strings.Fields(cleaned), " ")
}

func (s *meiliSearchService) Index(objs ...*entity.CelestialBase) error {
	if len(objs) == 0 {
		return nil
	}

	docs := make([]dto.Document, 0, len(objs))
	for _, obj := range objs {
		doc := dto.NewDocument(obj)
		doc.Name = s.clean(doc.Name)
		doc.Description = s.clean(doc.Description)
		docs = append(docs, doc)
	}

	task, err := s.client.Index(IndexName).AddDocuments(docs, strPtr("id"))
	if err != nil {
		return fmt.Errorf("index %d documents: %w", len(docs), err)
	}
	log.Debug().Int64("task_uid", task.TaskUID).Int("count", len(docs)).Msg("documents queued for indexing")
	return nil
}

func (s *meiliSearchService) Remove(id uint) error {
	if _, err := s.client.Index(IndexName).DeleteDocument(fmt.Sprint(id)); err != nil {
		return fmt.Errorf("remove document %d: %w", id, err)
	}
	return nil
}

func (s *meiliSearchService) Search(query dto.SearchQuery) (*dto.SearchResponse, error) {
	limit := query.Limit
	if limit == 0 {
		limit = 20
	}

	req := &meilisearch.SearchRequest{Limit: limit}
	if query.Type != "" {
		req.Filter = fmt.Sprintf("type = %q", query.Type)
	}

	raw, err := s.client.Index(IndexName).SearchRaw(query.Q, req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query.Q, err)
	}

	var resp struct {
		Hits               []dto.Document `json:"hits"`
		EstimatedTotalHits int64          `json:"estimatedTotalHits"`
	}
	if err := json.Unmarshal(*raw, &resp); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	if resp.Hits == nil {
		resp.Hits = []dto.Document{}
	}
	return &dto.SearchResponse{Hits: resp.Hits, Total: resp.EstimatedTotalHits}, nil
}

type disabledSearchService struct{}

// NewDisabledSearchService is used when no meilisearch host is configured.
// Indexing is a no-op and searching reports the feature as unavailable.
func NewDisabledSearchService() SearchService {
	return disabledSearchService{}
}

func (disabledSearchService) Index(...*entity.CelestialBase) error { return nil }
func (disabledSearchService) Remove(uint) error                    { return nil }

func (disabledSearchService) Search(dto.SearchQuery) (*dto.SearchResponse, error) {
	return nil, fmt.Errorf("search is not configured: %w", apperror.ErrUnavailable)
}

func strPtr(s string) *string {
	return &s
}

// Sync indexes obj after a write. Index failures never fail the write; the
// scheduled reindex repairs them.
func Sync(ctx context.Context, idx Indexer, obj *entity.CelestialBase) {
	if err := idx.Index(obj); err != nil {
		log.Ctx(ctx).Warn().Err(err).Uint("id", obj.ID).Msg("failed to index celestial object")
	}
}

// Forget drops a deleted object from the index.
func Forget(ctx context.Context, idx Indexer, id uint) {
	if err := idx.Remove(id); err != nil {
		log.Ctx(ctx).Warn().Err(err).Uint("id", id).Msg("failed to remove celestial object from index")
	}
}
