package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"admission-client/internal/common/config"
	"admission-client/internal/models"
)

const sessionKey = "admission:session"

// SessionStore persists the auth session across process restarts.
type SessionStore interface {
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Clear(ctx context.Context) error
}

// ==========================
// Redis-backed store
// ==========================

// RedisSessionStore keeps the session in redis so a restarted client
// resumes without another OTP round trip.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(cfg config.RedisConfig, ttl time.Duration) (*RedisSessionStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return &RedisSessionStore{client: rdb, ttl: ttl}, nil
}

// NewRedisSessionStoreWithClient wraps an existing client (tests).
func NewRedisSessionStoreWithClient(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

// Ping tests the redis connection.
func (s *RedisSessionStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Load(ctx context.Context) (*models.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}

// ==========================
// In-memory store
// ==========================

// MemorySessionStore is the fallback when no redis is configured.
type MemorySessionStore struct {
	mu      sync.Mutex
	session *models.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) Load(_ context.Context) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session, nil
}

func (s *MemorySessionStore) Save(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	return nil
}

func (s *MemorySessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}

// ==========================
// Auth boundary
// ==========================

// Auth ties the session store to the application cell so that signing in or
// out always clears the previous account's cached application.
type Auth struct {
	mu       sync.RWMutex
	sessions SessionStore
	apps     *ApplicationCell
	current  *models.Session
}

func NewAuth(sessions SessionStore, apps *ApplicationCell) *Auth {
	return &Auth{sessions: sessions, apps: apps}
}

// Restore loads a persisted session into memory at startup.
func (a *Auth) Restore(ctx context.Context) (*models.Session, error) {
	session, err := a.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	a.current = session
	a.mu.Unlock()
	return session, nil
}

// SignIn stores the new session and drops the previous account's
// application cache.
func (a *Auth) SignIn(ctx context.Context, user models.User, token string) error {
	a.apps.Clear()
	session := &models.Session{Token: token, User: user, CreatedAt: time.Now().UTC()}
	if err := a.sessions.Save(ctx, session); err != nil {
		return err
	}
	a.mu.Lock()
	a.current = session
	a.mu.Unlock()
	return nil
}

// SignOut clears both the session and the application cache.
func (a *Auth) SignOut(ctx context.Context) error {
	a.apps.Clear()
	a.mu.Lock()
	a.current = nil
	a.mu.Unlock()
	return a.sessions.Clear(ctx)
}

// Token implements the http TokenSource: empty when signed out.
func (a *Auth) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.current == nil {
		return ""
	}
	return a.current.Token
}

// Session returns the in-memory session, nil when signed out.
func (a *Auth) Session() *models.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current
}
