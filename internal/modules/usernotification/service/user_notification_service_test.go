package usernotification

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"anoa.com/spacemanagement/internal/entity"
	"anoa.com/spacemanagement/internal/modules/usernotification/dto"
	"anoa.com/spacemanagement/internal/modules/usernotification/repository"
	"anoa.com/spacemanagement/internal/testutil"
	"anoa.com/spacemanagement/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu       sync.Mutex
	messages map[uint][][]byte
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, userID uint, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.messages == nil {
		p.messages = map[uint][][]byte{}
	}
	p.messages[userID] = append(p.messages[userID], payload)
	return p.err
}

func seedUsers(t *testing.T, db *gorm.DB, names ...string) []entity.User {
	t.Helper()

	users := make([]entity.User, len(names))
	for i, name := range names {
		users[i] = entity.User{Username: name, PasswordHash: "x"}
		require.NoError(t, db.Create(&users[i]).Error)
	}
	return users
}

func TestBroadcastCopiesToEveryUser(t *testing.T) {
	db := testutil.AuthDB(t)
	users := seedUsers(t, db, "ripley", "hicks", "newt")
	pub := &recordingPublisher{}
	svc := NewUserNotificationService(repository.NewUserNotificationRepository(db), pub)
	ctx := context.Background()

	date := time.Date(2024, 3, 1, 21, 7, 9, 0, time.UTC)
	n, err := svc.Broadcast(ctx, dto.AddNotificationRequest{
		AlienID:          7,
		Message:          "Zorg spotted",
		NotificationDate: date,
		Location:         "Unknown",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, u := range users {
		list, err := svc.GetByUserID(ctx, u.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, uint(7), list[0].AlienID)
		assert.Equal(t, "Zorg spotted", list[0].Message)
		assert.True(t, date.Equal(list[0].NotificationDate))

		require.Len(t, pub.messages[u.ID], 1)
		var pushed dto.UserNotificationResponse
		require.NoError(t, json.Unmarshal(pub.messages[u.ID][0], &pushed))
		assert.Equal(t, list[0].ID, pushed.ID)
	}
}

func TestBroadcastIsNotDeduplicated(t *testing.T) {
	db := testutil.AuthDB(t)
	users := seedUsers(t, db, "ripley")
	svc := NewUserNotificationService(repository.NewUserNotificationRepository(db), nil)
	ctx := context.Background()

	req := dto.AddNotificationRequest{AlienID: 7, Message: "Zorg spotted"}
	_, err := svc.Broadcast(ctx, req)
	require.NoError(t, err)
	_, err = svc.Broadcast(ctx, req)
	require.NoError(t, err)

	list, err := svc.GetByUserID(ctx, users[0].ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Less(t, list[0].ID, list[1].ID)
}

func TestBroadcastWithoutUsers(t *testing.T) {
	db := testutil.AuthDB(t)
	svc := NewUserNotificationService(repository.NewUserNotificationRepository(db), nil)

	n, err := svc.Broadcast(context.Background(), dto.AddNotificationRequest{AlienID: 1, Message: "hello"})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBroadcastSurvivesPublishFailure(t *testing.T) {
	db := testutil.AuthDB(t)
	users := seedUsers(t, db, "ripley")
	pub := &recordingPublisher{err: errors.New("redis down")}
	svc := NewUserNotificationService(repository.NewUserNotificationRepository(db), pub)
	ctx := context.Background()

	n, err := svc.Broadcast(ctx, dto.AddNotificationRequest{AlienID: 1, Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	list, err := svc.GetByUserID(ctx, users[0].ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGetByUserID(t *testing.T) {
	db := testutil.AuthDB(t)
	users := seedUsers(t, db, "ripley")
	svc := NewUserNotificationService(repository.NewUserNotificationRepository(db), nil)
	ctx := context.Background()

	list, err := svc.GetByUserID(ctx, users[0].ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.GetByUserID(ctx, 999)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDelete(t *testing.T) {
	db := testutil.AuthDB(t)
	users := seedUsers(t, db, "ripley", "hicks")
	svc := NewUserNotificationService(repository.NewUserNotificationRepository(db), nil)
	ctx := context.Background()

	_, err := svc.Broadcast(ctx, dto.AddNotificationRequest{AlienID: 1, Message: "hello"})
	require.NoError(t, err)

	list, err := svc.GetByUserID(ctx, users[0].ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, list[0].ID))
	assert.ErrorIs(t, svc.Delete(ctx, list[0].ID), apperror.ErrNotFound)

	list, err = svc.GetByUserID(ctx, users[0].ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	other, err := svc.GetByUserID(ctx, users[1].ID)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}
