package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPublicID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1712/space_management/17-mars.webp", "space_management/17-mars"},
		{"https://res.cloudinary.com/demo/image/upload/space_management/venus.png", "space_management/venus"},
		{"https://res.cloudinary.com/demo/image/upload/voyager.png", "voyager"},
		{"https://res.cloudinary.com/demo/image/upload/", ""},
		{"/textures/earth.jpg", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extractPublicID(tt.url), tt.url)
	}
}

func TestOwns(t *testing.T) {
	s := &cloudinaryStorage{}
	assert.True(t, s.Owns("https://res.cloudinary.com/demo/image/upload/v1/space_management/mars.webp"))
	assert.False(t, s.Owns("/images/alien.png"))
	assert.False(t, s.Owns("https://example.com/image/upload/mars.png"))
}
