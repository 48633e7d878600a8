package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admission-client/internal/models"
)

func newMiniredisStore(t *testing.T) *RedisSessionStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSessionStoreWithClient(client, 0)
}

func TestRedisSessionStore_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	s := newMiniredisStore(t)

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded, "no session persisted yet")

	session := &models.Session{
		Token:     "tok-123",
		User:      models.User{ID: "u1", Phone: "9876543210"},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, s.Save(ctx, session))

	loaded, err = s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "tok-123", loaded.Token)
	assert.Equal(t, "9876543210", loaded.User.Phone)

	require.NoError(t, s.Clear(ctx))
	loaded, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisSessionStore_LoadError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectGet(sessionKey).SetErr(errors.New("connection refused"))

	s := NewRedisSessionStoreWithClient(client, 0)
	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load session")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemorySessionStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessionStore()

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	require.NoError(t, s.Save(ctx, &models.Session{Token: "tok"}))
	loaded, err = s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "tok", loaded.Token)

	require.NoError(t, s.Clear(ctx))
	loaded, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestAuth_SignInClearsPreviousApplication(t *testing.T) {
	ctx := context.Background()
	cell := NewApplicationCell()
	cell.Set(&models.Application{ID: "old-account-app"})

	auth := NewAuth(NewMemorySessionStore(), cell)
	require.NoError(t, auth.SignIn(ctx, models.User{ID: "u2", Phone: "9999999999"}, "tok-2"))

	assert.Nil(t, cell.Get(), "previous account's application cleared on sign-in")
	assert.Equal(t, "tok-2", auth.Token())
}

func TestAuth_SignOutClearsEverything(t *testing.T) {
	ctx := context.Background()
	cell := NewApplicationCell()
	cell.Set(&models.Application{ID: "app-1"})

	sessions := NewMemorySessionStore()
	auth := NewAuth(sessions, cell)
	require.NoError(t, auth.SignIn(ctx, models.User{ID: "u1"}, "tok-1"))
	cell.Set(&models.Application{ID: "app-1"})

	require.NoError(t, auth.SignOut(ctx))

	assert.Nil(t, cell.Get())
	assert.Empty(t, auth.Token())
	loaded, err := sessions.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestAuth_Restore(t *testing.T) {
	ctx := context.Background()
	sessions := NewMemorySessionStore()
	require.NoError(t, sessions.Save(ctx, &models.Session{Token: "persisted"}))

	auth := NewAuth(sessions, NewApplicationCell())
	session, err := auth.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "persisted", auth.Token())
}
