package service

import (
	"context"

	"github.com/jose-valero/thiccboi-bot/internal/domain"
)

// Implemented by internal/adapters/tmdb.Client
type MetadataAPI interface {
	Search(ctx context.Context, query string, kind domain.Kind, year int) ([]domain.Summary, error)
	Details(ctx context.Context, id int, kind domain.Kind) (*domain.Subject, error)
	Credits(ctx context.Context, id int, kind domain.Kind) ([]domain.CastEntry, error)
}
