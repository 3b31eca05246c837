package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/jose-valero/thiccboi-bot/internal/adapters/nekos"
	"github.com/jose-valero/thiccboi-bot/internal/domain"
)

const (
	navExpiry    = 5 * time.Minute
	deleteExpiry = time.Minute
)

func (r *Router) handleSlashCommand(ic *discordgo.InteractionCreate) {
	data := ic.ApplicationCommandData()
	user := interactionUser(ic)
	r.log.Info("slash command",
		zap.String("name", data.Name),
		zap.String("user", user.ID),
		zap.String("guild", ic.GuildID))

	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("panic in slash command", zap.String("name", data.Name), zap.Any("panic", rec))
			r.replyEphemeral(ic, "⚠️ Something went wrong. Please try again.")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
	defer cancel()

	switch data.Name {
	case "status":
		r.respond(ic, "Bot is online! 🟢")

	case "help":
		r.respondEmbed(ic, helpEmbed(r.s.State.User, false), helpComponents(r.s.State.User.ID))
		r.scheduleExpiry(ic, navExpiry)

	case "movie":
		r.runMovie(ctx, ic)

	case "thicc":
		r.runImage(ctx, ic, nekos.RatingSafe)

	case "verythicc":
		r.runVeryThicc(ctx, ic)

	case "screenshot":
		r.runScreenshot(ctx, ic)
	}
}

func (r *Router) runMovie(ctx context.Context, ic *discordgo.InteractionCreate) {
	if r.deferReply(ic) != nil {
		return
	}

	title, _ := optStr(ic, "title")
	year, _ := optInt(ic, "year")

	// "multi" and an absent choice both mean the zero Kind: search everything.
	var kind domain.Kind
	if raw, ok := optStr(ic, "type"); ok {
		if k, valid := domain.ParseKind(raw); valid {
			kind = k
		}
	}

	sub, err := r.lookup.Lookup(ctx, title, kind, year)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		r.editReply(ic, notFoundEmbed(title, kind, year), nil)
	case err != nil:
		r.log.Warn("lookup failed", zap.String("title", title), zap.Error(err))
		r.editReply(ic, providerErrorEmbed(err), nil)
	default:
		r.editReply(ic, summaryEmbed(sub), summaryComponents(sub))
		r.scheduleExpiry(ic, navExpiry)
	}
}

func (r *Router) runImage(ctx context.Context, ic *discordgo.InteractionCreate, rating nekos.Rating) {
	if r.deferReply(ic) != nil {
		return
	}

	url, err := r.images.RandomImage(ctx, rating)
	if err != nil {
		r.log.Warn("random image failed", zap.String("rating", string(rating)), zap.Error(err))
		// local gallery keeps /thicc alive through API outages
		if rating == nekos.RatingSafe && r.gallery != nil {
			if img, ok := r.gallery.Random(); ok {
				r.editReply(ic, imageEmbed(img.URL, false), nil)
				return
			}
		}
		r.editReply(ic, imageErrorEmbed(err), nil)
		return
	}
	r.editReply(ic, imageEmbed(url, rating == nekos.RatingExplicit), nil)
}

func (r *Router) runVeryThicc(ctx context.Context, ic *discordgo.InteractionCreate) {
	ch, err := r.safeGetChannel(ic.ChannelID)
	if err != nil || !ch.NSFW {
		r.respondEphemeralEmbed(ic, &discordgo.MessageEmbed{
			Title:       "NSFW Channel Required",
			Description: "This command can only be used in NSFW channels!",
			Color:       colorError,
		})
		return
	}

	if r.deferReply(ic) != nil {
		return
	}

	url, err := r.images.RandomImage(ctx, nekos.RatingExplicit)
	if err != nil {
		r.log.Warn("random image failed", zap.String("rating", "explicit"), zap.Error(err))
		r.editReply(ic, imageErrorEmbed(err), nil)
		return
	}
	r.editReply(ic, imageEmbed(url, true), deleteRow())
	r.scheduleExpiry(ic, deleteExpiry)
}

func (r *Router) runScreenshot(ctx context.Context, ic *discordgo.InteractionCreate) {
	if r.deferReply(ic) != nil {
		return
	}

	rawURL, _ := optStr(ic, "url")
	site := normalizeSite(rawURL)

	width, height := 1280, 720
	if res, ok := optStr(ic, "resolution"); ok {
		if w, h, found := strings.Cut(res, "/"); found {
			if wi, err := strconv.Atoi(w); err == nil {
				if hi, err := strconv.Atoi(h); err == nil {
					width, height = wi, hi
				}
			}
		}
	}

	img, err := r.shots.Capture(ctx, site, width, height)
	if err != nil {
		r.log.Warn("screenshot failed", zap.String("site", site), zap.Error(err))
		msg := "Failed to capture screenshot. Please check the URL and try again."
		_, _ = r.s.InteractionResponseEdit(ic.Interaction, &discordgo.WebhookEdit{Content: &msg})
		return
	}

	content := fmt.Sprintf("```%s```", site)
	_, err = r.s.InteractionResponseEdit(ic.Interaction, &discordgo.WebhookEdit{
		Content: &content,
		Files: []*discordgo.File{{
			Name:        "screenshot.png",
			ContentType: "image/png",
			Reader:      bytes.NewReader(img),
		}},
	})
	if err != nil {
		r.log.Warn("screenshot upload failed", zap.Error(err))
	}
}
