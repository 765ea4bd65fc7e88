package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/synthhearts/synthhearts/internal/auth"
	"github.com/synthhearts/synthhearts/internal/domain"
	"github.com/synthhearts/synthhearts/internal/repo"
)

// teapotQuestion is a bank entry with a single canonical answer, handy for
// driving registration in tests.
const (
	teapotQuestion = "What HTTP status code means 'I'm a teapot'?"
	teapotAnswer   = "418"
)

// newTestDB opens a unique in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:services_test_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// newAuthService wires an AuthService with a fixed seed and minimal bcrypt
// cost so registration-heavy tests stay fast.
func newAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		DB:       db,
		Tokens:   auth.NewManager("test-secret", time.Hour),
		Rand:     NewRand(1),
		HashCost: bcrypt.MinCost,
	}
}

func testProfile(name string) domain.Profile {
	return domain.Profile{
		Name:        name,
		Tagline:     "test tagline",
		Bio:         "test bio",
		Personality: []string{"curious"},
		Interests:   []string{"testing"},
		Avatar:      domain.Avatar{Bg: "#111", Shape: "circle", Accent: "#eee"},
		ModelType:   "Test LLM",
	}
}

// mustRegister creates a user with a profile and returns the auth result.
func mustRegister(t *testing.T, svc *AuthService, username string) *AuthResult {
	t.Helper()
	ctx := context.Background()
	res, err := svc.Register(ctx, username, "password123", teapotQuestion, teapotAnswer)
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	if _, err := repo.UpsertProfile(ctx, svc.DB, res.UserID, testProfile(username)); err != nil {
		t.Fatalf("profile for %s: %v", username, err)
	}
	return res
}

// fakeScheduler captures scheduled tasks so tests control when the delayed
// reply lands.
type fakeScheduler struct {
	mu      sync.Mutex
	pending map[string]func()
	delays  map[string]time.Duration
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{
		pending: make(map[string]func()),
		delays:  make(map[string]time.Duration),
	}
}

func (f *fakeScheduler) Schedule(key string, delay time.Duration, fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending[key] = fn
	f.delays[key] = delay
}

func (f *fakeScheduler) Cancel(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.pending, key)
	delete(f.delays, key)
}

func (f *fakeScheduler) Stop() {}

// fire runs and clears the pending task for key, failing if none exists.
func (f *fakeScheduler) fire(t *testing.T, key string) {
	t.Helper()
	f.mu.Lock()
	fn, ok := f.pending[key]
	delete(f.pending, key)
	f.mu.Unlock()
	if !ok {
		t.Fatalf("no scheduled task for %q", key)
	}
	fn()
}
