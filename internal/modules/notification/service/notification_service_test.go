package notification

import (
	"context"
	"errors"
	"testing"

	"anoa.com/spacemanagement/internal/entity"
	celestialRepo "anoa.com/spacemanagement/internal/modules/celestial/repository"
	"anoa.com/spacemanagement/internal/modules/notification/dto"
	"anoa.com/spacemanagement/internal/modules/notification/repository"
	"anoa.com/spacemanagement/internal/testutil"
	"anoa.com/spacemanagement/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubRelay struct {
	err      error
	payloads []dto.RelayPayload
}

func (s *stubRelay) Relay(_ context.Context, payload dto.RelayPayload) error {
	s.payloads = append(s.payloads, payload)
	return s.err
}

func seedAlien(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	alien := &entity.Alien{CelestialBase: entity.CelestialBase{Name: "Zorg"}, OriginPlanet: "Mars"}
	require.NoError(t, celestialRepo.NewStore[entity.Alien](db).Create(context.Background(), alien))
	return alien.ID
}

func TestNotifyRelayed(t *testing.T) {
	db := testutil.CatalogDB(t)
	alienID := seedAlien(t, db)
	relay := &stubRelay{}
	svc := NewNotificationService(repository.NewNotificationRepository(db), relay)

	n, err := svc.Notify(context.Background(), alienID, "spotted")
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryRelayed, n.DeliveryStatus)
	assert.Equal(t, entity.UnknownLocation, n.Location)

	require.Len(t, relay.payloads, 1)
	assert.Equal(t, alienID, relay.payloads[0].AlienID)
	assert.Equal(t, "spotted", relay.payloads[0].Message)

	stored, err := svc.GetByID(context.Background(), n.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryRelayed, stored.DeliveryStatus)
}

func TestNotifyRelayFailedKeepsRow(t *testing.T) {
	db := testutil.CatalogDB(t)
	alienID := seedAlien(t, db)
	relayErr := apperror.Upstream(500)
	svc := NewNotificationService(repository.NewNotificationRepository(db), &stubRelay{err: relayErr})

	n, err := svc.Notify(context.Background(), alienID, "spotted")
	assert.True(t, errors.Is(err, apperror.ErrUpstreamRelay))
	require.NotNil(t, n)
	assert.Equal(t, entity.DeliveryRelayFailed, n.DeliveryStatus)

	list, err := svc.GetByAlienID(context.Background(), alienID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.DeliveryRelayFailed, list[0].DeliveryStatus)
}

func TestCreateRecordsLocallyOnly(t *testing.T) {
	db := testutil.CatalogDB(t)
	alienID := seedAlien(t, db)
	relay := &stubRelay{}
	svc := NewNotificationService(repository.NewNotificationRepository(db), relay)
	ctx := context.Background()

	res, err := svc.Create(ctx, dto.CreateNotificationRequest{AlienID: alienID, Message: "manual"})
	require.NoError(t, err)
	assert.Equal(t, entity.UnknownLocation, res.Location)
	assert.Equal(t, entity.DeliveryPersisted, res.DeliveryStatus)
	assert.Empty(t, relay.payloads)

	_, err = svc.Create(ctx, dto.CreateNotificationRequest{AlienID: alienID + 100, Message: "ghost"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = svc.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	empty, err := svc.GetByAlienID(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
