package session

import (
	"context"
	"errors"

	"resume-analyzer/internal/model"
)

var ErrNotFound = errors.New("session not found")

// Store holds per-session state. Sessions are private to one user; the store
// never shares documents across session IDs.
type Store interface {
	Get(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, sess *model.Session) error
	Delete(ctx context.Context, id string) error
}
