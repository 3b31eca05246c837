package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	discordrouter "github.com/jose-valero/thiccboi-bot/internal/adapters/discord"
	"github.com/jose-valero/thiccboi-bot/internal/adapters/httpstatus"
	"github.com/jose-valero/thiccboi-bot/internal/adapters/nekos"
	"github.com/jose-valero/thiccboi-bot/internal/adapters/thumio"
	"github.com/jose-valero/thiccboi-bot/internal/adapters/tmdb"
	"github.com/jose-valero/thiccboi-bot/internal/app/service"
	"github.com/jose-valero/thiccboi-bot/internal/infra/config"
	"github.com/jose-valero/thiccboi-bot/internal/infra/gallery"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	// Upstream clients
	meta := tmdb.New(cfg.TMDBAPIKey)
	images := nekos.New()
	shots := thumio.New()

	gal, err := gallery.Open(cfg.GalleryPath, logger)
	if err != nil {
		logger.Warn("gallery unavailable, continuing without local fallback",
			zap.String("path", cfg.GalleryPath), zap.Error(err))
		gal = nil
	} else {
		defer gal.Close()
	}

	lookupSvc := service.NewLookupService(meta)

	// Discord session
	auth := cfg.DiscordToken
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(auth)), "bot ") {
		auth = "Bot " + strings.TrimSpace(auth)
	}
	s, err := discordgo.New(auth)
	if err != nil {
		logger.Fatal("discord session", zap.Error(err))
	}
	s.Identify.Intents = discordgo.IntentsGuilds

	r := discordrouter.NewRouter(s, logger, cfg.DiscordGuild, lookupSvc, images, shots, gal)
	r.Handlers()

	if err := s.Open(); err != nil {
		logger.Fatal("gateway open", zap.Error(err))
	}
	defer s.Close()
	logger.Info("connected",
		zap.String("user", s.State.User.Username),
		zap.String("id", s.State.User.ID))

	if err := r.Register(); err != nil {
		logger.Fatal("register commands", zap.Error(err))
	}
	logger.Info("commands registered", zap.String("guild", cfg.DiscordGuild))

	// Status API
	api := httpstatus.New(logger, s, discordrouter.Commands, httpstatus.Presence{
		Status:   discordrouter.DefaultPresence.Status,
		Activity: discordrouter.DefaultPresence.Activity,
	})
	api.Start(cfg.HTTPAddr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := api.Shutdown(ctx); err != nil {
		logger.Warn("status API shutdown", zap.Error(err))
	}
}
