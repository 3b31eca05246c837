package tmdb

// --- Search ---
type searchDTO struct {
	Results []searchItemDTO `json:"results"`
}

type searchItemDTO struct {
	ID        int    `json:"id"`
	MediaType string `json:"media_type"` // only present on /search/multi
	Title     string `json:"title"`      // movies
	Name      string `json:"name"`       // series
}

// --- Details (append_to_response=credits,videos) ---
type detailsDTO struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Name     string `json:"name"`
	Overview string `json:"overview"`

	ReleaseDate  string `json:"release_date"`
	FirstAirDate string `json:"first_air_date"`

	Runtime          int     `json:"runtime"`
	EpisodeRunTime   []int   `json:"episode_run_time"`
	NumberOfSeasons  int     `json:"number_of_seasons"`
	NumberOfEpisodes int     `json:"number_of_episodes"`
	VoteAverage      float64 `json:"vote_average"`

	Genres []struct {
		Name string `json:"name"`
	} `json:"genres"`

	PosterPath   string `json:"poster_path"`
	BackdropPath string `json:"backdrop_path"`

	IMDbID      string `json:"imdb_id"` // movies
	ExternalIDs struct {
		IMDbID string `json:"imdb_id"`
	} `json:"external_ids"` // series

	Budget  int64  `json:"budget"`
	Revenue int64  `json:"revenue"`
	Status  string `json:"status"`

	Networks []struct {
		Name string `json:"name"`
	} `json:"networks"`
	CreatedBy []struct {
		Name string `json:"name"`
	} `json:"created_by"`

	Credits creditsDTO `json:"credits"`
	Videos  struct {
		Results []videoDTO `json:"results"`
	} `json:"videos"`
}

// --- Credits ---
type creditsDTO struct {
	Cast []castDTO `json:"cast"`
	Crew []crewDTO `json:"crew"`
}

type castDTO struct {
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	Popularity  float64 `json:"popularity"`
	ProfilePath string  `json:"profile_path"`
}

type crewDTO struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

type videoDTO struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}
