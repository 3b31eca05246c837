package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/jose-valero/thiccboi-bot/internal/adapters/nekos"
	"github.com/jose-valero/thiccboi-bot/internal/adapters/thumio"
	"github.com/jose-valero/thiccboi-bot/internal/app/service"
	"github.com/jose-valero/thiccboi-bot/internal/infra/gallery"
)

// Presence is what the bot advertises once the gateway is ready. The status
// HTTP API reports the same values.
type Presence struct {
	Status   string
	Activity string
}

var DefaultPresence = Presence{Status: "online", Activity: "Watching Thicc Bois"}

type Router struct {
	s       *discordgo.Session
	log     *zap.Logger
	guildID string

	lookup  *service.LookupService
	images  *nekos.Client
	shots   *thumio.Client
	gallery *gallery.Gallery

	clicks *clickLimiter
}

func NewRouter(
	s *discordgo.Session,
	log *zap.Logger,
	guildID string,
	lookup *service.LookupService,
	images *nekos.Client,
	shots *thumio.Client,
	gal *gallery.Gallery,
) *Router {
	return &Router{
		s:       s,
		log:     log,
		guildID: guildID,
		lookup:  lookup,
		images:  images,
		shots:   shots,
		gallery: gal,
		clicks:  newClickLimiter(800 * time.Millisecond),
	}
}

// Register creates the slash commands. With guildID set they appear
// instantly in that guild; empty means global (up to an hour to propagate).
func (r *Router) Register() error {
	appID := r.s.State.User.ID
	for _, cmd := range Commands {
		if _, err := r.s.ApplicationCommandCreate(appID, r.guildID, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (r *Router) Handlers() {
	r.s.AddHandler(func(s *discordgo.Session, rd *discordgo.Ready) {
		r.log.Info("gateway ready",
			zap.String("user", rd.User.Username),
			zap.Int("guilds", len(rd.Guilds)))
		err := s.UpdateStatusComplex(discordgo.UpdateStatusData{
			Status: DefaultPresence.Status,
			Activities: []*discordgo.Activity{{
				Name: "Thicc Bois",
				Type: discordgo.ActivityTypeWatching,
			}},
		})
		if err != nil {
			r.log.Warn("set presence failed", zap.Error(err))
		}
	})

	r.s.AddHandler(func(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
		switch ic.Type {
		case discordgo.InteractionApplicationCommand:
			r.handleSlashCommand(ic)
		case discordgo.InteractionMessageComponent:
			r.handleMessageComponent(ic)
		}
	})
}
