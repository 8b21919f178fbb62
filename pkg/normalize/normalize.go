// Package normalize holds the enum-like value policies applied to planet
// textures and comet tail colours. Unknown input never fails: it falls back
// to the policy default.
package normalize

import "strings"

// TextureCatalog maps an accepted surface texture to the name of the image
// used to render it.
type TextureCatalog struct {
	images   map[string]string
	fallback string
}

// DefaultTextureCatalog is the texture set the UI knows how to render.
func DefaultTextureCatalog() TextureCatalog {
	return NewTextureCatalog(map[string]string{
		"mars":    "mars",
		"terre":   "earth",
		"neptune": "neptune",
		"jupiter": "jupiter",
		"uranus":  "uranus",
		"venus":   "venus",
		"mercure": "mercury",
	}, "terre")
}

// NewTextureCatalog panics if fallback is not one of the textures.
func NewTextureCatalog(images map[string]string, fallback string) TextureCatalog {
	copied := make(map[string]string, len(images))
	for texture, image := range images {
		copied[strings.ToLower(texture)] = image
	}
	if _, ok := copied[fallback]; !ok {
		panic("normalize: fallback texture " + fallback + " is not in the catalog")
	}
	return TextureCatalog{images: copied, fallback: fallback}
}

// Normalize lower-cases the input and returns the stored texture with its
// image name. Unrecognised values resolve to the fallback texture.
func (c TextureCatalog) Normalize(texture string) (string, string) {
	key := strings.ToLower(strings.TrimSpace(texture))
	if image, ok := c.images[key]; ok {
		return key, image
	}
	return c.fallback, c.images[c.fallback]
}

// IsZero reports whether c is the zero value rather than a built catalog.
func (c TextureCatalog) IsZero() bool {
	return c.images == nil
}

// ImageNames lists every image the catalog can resolve to.
func (c TextureCatalog) ImageNames() []string {
	names := make([]string, 0, len(c.images))
	for _, image := range c.images {
		names = append(names, image)
	}
	return names
}

// TailColorPolicy is a two-way switch: an exact match selects Match, anything
// else selects Other. The comparison is case-sensitive.
type TailColorPolicy struct {
	Match      string
	MatchImage string
	Other      string
	OtherImage string
}

func DefaultTailColorPolicy() TailColorPolicy {
	return TailColorPolicy{
		Match:      "blue",
		MatchImage: "cometBlue",
		Other:      "orange",
		OtherImage: "cometOrange",
	}
}

// Normalize returns the stored colour and its image name.
func (p TailColorPolicy) Normalize(color string) (string, string) {
	if color == p.Match {
		return p.Match, p.MatchImage
	}
	return p.Other, p.OtherImage
}
