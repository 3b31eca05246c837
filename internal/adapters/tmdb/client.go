package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jose-valero/thiccboi-bot/internal/domain"
)

// Search returns ordered hits for query. kind=="" searches both namespaces via
// /search/multi and keeps only recognized kinds (TMDB mixes people into multi
// results). An empty result set is reported as domain.ErrNotFound.
func (c *Client) Search(ctx context.Context, query string, kind domain.Kind, year int) ([]domain.Summary, error) {
	q := url.Values{}
	q.Set("query", query)

	path := "/search/multi"
	switch kind {
	case domain.KindMovie:
		path = "/search/movie"
		if year > 0 {
			q.Set("year", strconv.Itoa(year))
		}
	case domain.KindTV:
		path = "/search/tv"
		if year > 0 {
			q.Set("first_air_date_year", strconv.Itoa(year))
		}
	}

	var dto searchDTO
	if err := c.doJSON(ctx, path, q, &dto); err != nil {
		return nil, err
	}

	out := make([]domain.Summary, 0, len(dto.Results))
	for _, it := range dto.Results {
		k := kind
		if k == "" {
			var ok bool
			if k, ok = domain.ParseKind(it.MediaType); !ok {
				continue // person or some other shape
			}
		}
		title := it.Title
		if title == "" {
			title = it.Name
		}
		out = append(out, domain.Summary{ID: it.ID, Kind: k, Title: title})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("search %q: %w", query, domain.ErrNotFound)
	}
	return out, nil
}

// Details enriches one hit into a full Subject. Credits and videos are batched
// into the same round trip via append_to_response.
func (c *Client) Details(ctx context.Context, id int, kind domain.Kind) (*domain.Subject, error) {
	q := url.Values{}
	q.Set("append_to_response", "credits,videos")

	var dto detailsDTO
	if err := c.doJSON(ctx, fmt.Sprintf("/%s/%d", kind, id), q, &dto); err != nil {
		return nil, err
	}
	return dto.toSubject(kind), nil
}

// Credits returns the billed cast, filtered down to performers with a profile
// photo. Ordering is TMDB's billing order.
func (c *Client) Credits(ctx context.Context, id int, kind domain.Kind) ([]domain.CastEntry, error) {
	var dto creditsDTO
	if err := c.doJSON(ctx, fmt.Sprintf("/%s/%d/credits", kind, id), nil, &dto); err != nil {
		return nil, err
	}

	out := make([]domain.CastEntry, 0, len(dto.Cast))
	for _, a := range dto.Cast {
		if a.ProfilePath == "" {
			continue
		}
		out = append(out, domain.CastEntry{
			Name:       a.Name,
			Character:  a.Character,
			Popularity: a.Popularity,
			PhotoPath:  a.ProfilePath,
		})
	}
	return out, nil
}

func (d *detailsDTO) toSubject(kind domain.Kind) *domain.Subject {
	sub := &domain.Subject{
		ID:           d.ID,
		Kind:         kind,
		Overview:     d.Overview,
		Rating:       d.VoteAverage,
		PosterPath:   d.PosterPath,
		BackdropPath: d.BackdropPath,
		HasCast:      len(d.Credits.Cast) > 0,
	}

	date := d.ReleaseDate
	if kind == domain.KindMovie {
		sub.Title = d.Title
		sub.RuntimeMinutes = d.Runtime
		sub.Budget = d.Budget
		sub.Revenue = d.Revenue
		sub.IMDbID = d.IMDbID
		for _, p := range d.Credits.Crew {
			if p.Job == "Director" {
				sub.Director = p.Name
				break
			}
		}
	} else {
		sub.Title = d.Name
		date = d.FirstAirDate
		sub.SeasonCount = d.NumberOfSeasons
		sub.EpisodeCount = d.NumberOfEpisodes
		if len(d.EpisodeRunTime) > 0 {
			sub.EpisodeRuntime = d.EpisodeRunTime[0]
		}
		sub.Status = d.Status
		if len(d.Networks) > 0 {
			sub.Network = d.Networks[0].Name
		}
		for _, cr := range d.CreatedBy {
			sub.Creators = append(sub.Creators, cr.Name)
		}
		sub.IMDbID = d.ExternalIDs.IMDbID
	}

	if len(date) >= 4 {
		if y, err := strconv.Atoi(date[:4]); err == nil {
			sub.ReleaseYear = y
		}
	}

	for _, g := range d.Genres {
		sub.Genres = append(sub.Genres, g.Name)
	}
	for i, a := range d.Credits.Cast {
		if i == 4 {
			break
		}
		sub.TopCast = append(sub.TopCast, a.Name)
	}
	for _, v := range d.Videos.Results {
		if v.Type == "Trailer" && v.Site == "YouTube" {
			sub.TrailerKey = v.Key
			break
		}
	}
	return sub
}
