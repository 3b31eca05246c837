package config

import (
	"fmt"
	"os"
)

type Config struct {
	DiscordToken string
	DiscordGuild string // optional: scope command registration to one guild
	TMDBAPIKey   string

	HTTPAddr    string // status API, default :3000
	GalleryPath string // fallback gallery file, default thicc.json
}

func Load() (Config, error) {
	var missing []string
	get := func(k string, req bool) string {
		v := os.Getenv(k)
		if v == "" && req {
			missing = append(missing, k)
		}
		return v
	}

	cfg := Config{
		DiscordToken: get("DISCORD_BOT_TOKEN", true),
		DiscordGuild: get("DISCORD_GUILD_ID", false),
		TMDBAPIKey:   get("TMDB_API_KEY", true),
		HTTPAddr:     get("HTTP_ADDR", false),
		GalleryPath:  get("GALLERY_PATH", false),
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing env %v", missing)
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":3000"
	}
	if cfg.GalleryPath == "" {
		cfg.GalleryPath = "thicc.json"
	}
	return cfg, nil
}
