package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextureCatalogNormalize(t *testing.T) {
	catalog := DefaultTextureCatalog()

	tests := []struct {
		in          string
		wantTexture string
		wantImage   string
	}{
		{"Mars", "mars", "mars"},
		{"MARS", "mars", "mars"},
		{"terre", "terre", "earth"},
		{"Mercure", "mercure", "mercury"},
		{" neptune ", "neptune", "neptune"},
		{"klingon", "terre", "earth"},
		{"", "terre", "earth"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			texture, image := catalog.Normalize(tt.in)
			assert.Equal(t, tt.wantTexture, texture)
			assert.Equal(t, tt.wantImage, image)
		})
	}
}

func TestNewTextureCatalogRejectsUnknownFallback(t *testing.T) {
	assert.Panics(t, func() {
		NewTextureCatalog(map[string]string{"mars": "mars"}, "pluto")
	})
}

func TestTailColorPolicyIsCaseSensitive(t *testing.T) {
	policy := DefaultTailColorPolicy()

	color, image := policy.Normalize("blue")
	assert.Equal(t, "blue", color)
	assert.Equal(t, "cometBlue", image)

	for _, in := range []string{"Blue", "BLUE", "orange", "green", ""} {
		color, image := policy.Normalize(in)
		assert.Equal(t, "orange", color, in)
		assert.Equal(t, "cometOrange", image, in)
	}
}
