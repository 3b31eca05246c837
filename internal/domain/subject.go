package domain

// Kind discriminates the two TMDB namespaces we handle. The set is closed on
// purpose: kinds travel inside "_"-delimited component custom ids.
type Kind string

const (
	KindMovie Kind = "movie"
	KindTV    Kind = "tv"
)

func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindMovie:
		return KindMovie, true
	case KindTV:
		return KindTV, true
	}
	return "", false
}

// Summary is one search hit, before details enrichment.
type Summary struct {
	ID    int
	Kind  Kind
	Title string
}

// Subject is one movie or series record, normalized across the two TMDB
// response shapes. It is immutable once fetched; every navigation step
// re-fetches a fresh one.
type Subject struct {
	ID       int
	Kind     Kind
	Title    string
	Overview string

	ReleaseYear int
	Rating      float64
	Genres      []string

	// Movies only.
	RuntimeMinutes int
	Budget         int64
	Revenue        int64
	Director       string

	// Series only.
	SeasonCount    int
	EpisodeCount   int
	EpisodeRuntime int
	Status         string
	Network        string
	Creators       []string

	PosterPath   string
	BackdropPath string
	IMDbID       string
	TrailerKey   string // YouTube video key

	TopCast []string // up to 4 top-billed names
	HasCast bool     // whether any cast is credited at all
}

func (s *Subject) IsMovie() bool { return s.Kind == KindMovie }

// CastEntry is one credited performer. Entries without a profile photo never
// reach the browsable set.
type CastEntry struct {
	Name       string
	Character  string
	Popularity float64
	PhotoPath  string
}
