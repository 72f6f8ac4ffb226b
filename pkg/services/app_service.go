package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/ent/app"
)

// AppService manages registered API consumers.
type AppService struct {
	client *ent.Client
}

// NewAppService creates a new AppService
func NewAppService(client *ent.Client) *AppService {
	return &AppService{client: client}
}

// CreateApp registers an application and mints its API key.
func (s *AppService) CreateApp(ctx context.Context, name string) (*ent.App, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}

	key, err := newAPIKey()
	if err != nil {
		return nil, err
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := s.client.App.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetAPIKey(key).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create app: %w", err)
	}

	return created, nil
}

// AnonymousAppID is the fixed id of the app that scopes unauthenticated
// task submissions. Its API key is random and never handed out, so the
// scope is reachable only by omitting credentials.
const AnonymousAppID = "anonymous"

// EnsureAnonymousApp creates the anonymous scope app if it does not exist
// yet and returns it. Called once at startup.
func (s *AppService) EnsureAnonymousApp(ctx context.Context) (*ent.App, error) {
	found, err := s.client.App.Get(ctx, AnonymousAppID)
	if err == nil {
		return found, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up anonymous app: %w", err)
	}

	key, err := newAPIKey()
	if err != nil {
		return nil, err
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := s.client.App.Create().
		SetID(AnonymousAppID).
		SetName("anonymous").
		SetAPIKey(key).
		Save(writeCtx)
	if err != nil {
		// Lost a startup race with another replica; the row exists now.
		if ent.IsConstraintError(err) {
			return s.client.App.Get(ctx, AnonymousAppID)
		}
		return nil, fmt.Errorf("failed to create anonymous app: %w", err)
	}

	return created, nil
}

// GetByAPIKey resolves the app presenting the given key. Deactivated
// apps are returned as-is; the caller decides how to refuse them.
func (s *AppService) GetByAPIKey(ctx context.Context, key string) (*ent.App, error) {
	if key == "" {
		return nil, ErrNotFound
	}

	found, err := s.client.App.Query().
		Where(app.APIKey(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up app by api key: %w", err)
	}

	return found, nil
}

// GetApp retrieves an app by id.
func (s *AppService) GetApp(ctx context.Context, id string) (*ent.App, error) {
	found, err := s.client.App.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get app: %w", err)
	}
	return found, nil
}

// SetActive toggles whether the app may authenticate.
func (s *AppService) SetActive(ctx context.Context, id string, active bool) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.App.UpdateOneID(id).
		SetIsActive(active).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update app active flag: %w", err)
	}

	return nil
}

func newAPIKey() (string, error) {
	raw := make([]byte, 24)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate api key: %w", err)
	}
	return "sk-" + hex.EncodeToString(raw), nil
}
