package comet

import (
	"context"
	"testing"
	"time"

	"anoa.com/spacemanagement/internal/modules/comet/dto"
	"anoa.com/spacemanagement/internal/modules/comet/repository"
	imageRepo "anoa.com/spacemanagement/internal/modules/image/repository"
	image "anoa.com/spacemanagement/internal/modules/image/service"
	search "anoa.com/spacemanagement/internal/modules/search/service"
	"anoa.com/spacemanagement/internal/testutil"
	commonDto "anoa.com/spacemanagement/pkg/dto"
	"anoa.com/spacemanagement/pkg/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) CometService {
	t.Helper()
	db := testutil.CatalogDB(t)
	images := image.NewImageService(imageRepo.NewImageRepository(db), nil, "")
	return NewCometService(repository.NewCometRepository(db), images, search.NewDisabledSearchService(), normalize.DefaultTailColorPolicy())
}

func cometRequest(name, tail string) dto.CometRequest {
	return dto.CometRequest{
		CelestialFields: commonDto.CelestialFields{Name: name},
		NextAppearance:  time.Date(2061, 7, 28, 0, 0, 0, 0, time.UTC),
		TailColor:       tail,
	}
}

func TestTailColorIsCaseSensitive(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	tests := []struct {
		tail      string
		wantColor string
		wantImage string
	}{
		{"blue", "blue", "/images/comet_blue.png"},
		{"Blue", "orange", "/images/comet_orange.png"},
		{"green", "orange", "/images/comet_orange.png"},
		{"", "orange", "/images/comet_orange.png"},
	}

	for _, tt := range tests {
		t.Run(tt.tail, func(t *testing.T) {
			c, err := svc.Create(ctx, cometRequest("Halley", tt.tail))
			require.NoError(t, err)
			assert.Equal(t, tt.wantColor, c.TailColor)
			require.NotNil(t, c.ImageURL)
			assert.Equal(t, tt.wantImage, *c.ImageURL)

			stored, err := svc.GetByID(ctx, c.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantColor, stored.TailColor)
		})
	}
}

func TestUpdateReResolvesImage(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, cometRequest("Hale-Bopp", "orange"))
	require.NoError(t, err)

	req := cometRequest("Hale-Bopp", "blue")
	req.ID = c.ID
	require.NoError(t, svc.Update(ctx, c.ID, req))

	got, err := svc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "blue", got.TailColor)
	assert.Equal(t, "/images/comet_blue.png", *got.ImageURL)
	assert.True(t, req.NextAppearance.Equal(got.NextAppearance))
}
