package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jose-valero/thiccboi-bot/internal/domain"
)

// ErrNoCast: the subject has no photo-bearing cast, so there is nothing to
// page through. Expected, not a provider failure.
var ErrNoCast = errors.New("no cast with photos")

// LookupService orchestrates metadata fetches for the movie command and its
// navigation flow. It holds no per-session state: every step re-fetches what
// it needs from the provider and recomputes the view.
type LookupService struct {
	meta MetadataAPI
}

func NewLookupService(meta MetadataAPI) *LookupService {
	return &LookupService{meta: meta}
}

// Lookup resolves a search to the best match and enriches it in one pass.
func (s *LookupService) Lookup(ctx context.Context, query string, kind domain.Kind, year int) (*domain.Subject, error) {
	hits, err := s.meta.Search(ctx, query, kind, year)
	if err != nil {
		return nil, err
	}
	first := hits[0]
	return s.meta.Details(ctx, first.ID, first.Kind)
}

// Subject re-fetches the full record for a known id. Used by the back and
// cover transitions, where the token alone names the subject.
func (s *LookupService) Subject(ctx context.Context, id int, kind domain.Kind) (*domain.Subject, error) {
	return s.meta.Details(ctx, id, kind)
}

// CastView is one renderable page of the cast browser.
type CastView struct {
	Cast []domain.CastEntry
	Page int
}

// CastPage re-fetches the photo-filtered cast and clamps page into
// [0, len-1]. The cast list may have changed upstream since the token was
// minted, so clamping here is what keeps stale page indexes safe.
func (s *LookupService) CastPage(ctx context.Context, id int, kind domain.Kind, page int) (CastView, error) {
	cast, err := s.meta.Credits(ctx, id, kind)
	if err != nil {
		return CastView{}, err
	}
	if len(cast) == 0 {
		return CastView{}, fmt.Errorf("%s %d: %w", kind, id, ErrNoCast)
	}

	if page < 0 {
		page = 0
	}
	if page > len(cast)-1 {
		page = len(cast) - 1
	}
	return CastView{Cast: cast, Page: page}, nil
}
