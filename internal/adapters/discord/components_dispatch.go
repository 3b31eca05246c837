package discord

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/jose-valero/thiccboi-bot/internal/app/service"
)

func (r *Router) handleMessageComponent(ic *discordgo.InteractionCreate) {
	customID := ic.MessageComponentData().CustomID
	user := interactionUser(ic)
	r.log.Info("component click",
		zap.String("custom_id", customID),
		zap.String("user", user.ID))

	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("panic in component", zap.String("custom_id", customID), zap.Any("panic", rec))
			r.replyEphemeral(ic, "⚠️ Something went wrong. Please try again.")
		}
	}()

	if customID == customIDPageIndicator {
		return
	}

	switch customID {
	case customIDHelpRefresh, customIDHelpSupport, customIDHelpInfo:
		r.handleHelpButton(ic, customID)
		return
	}

	tok, err := DecodeNavToken(customID)
	if err != nil {
		r.log.Warn("unrecognized custom id", zap.String("custom_id", customID), zap.Error(err))
		r.replyEphemeral(ic, "⚠️ I couldn't process that button.")
		return
	}

	if !r.clicks.Allow(user.ID) {
		r.replyEphemeral(ic, "⏳ Easy there! Give me a second between clicks.")
		return
	}

	if tok.Action == ActionDelete {
		r.handleDelete(ic)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
	defer cancel()

	switch tok.Action {
	case ActionCastOpen:
		r.showCastPage(ctx, ic, tok, 0)
	case ActionCastPrev:
		r.showCastPage(ctx, ic, tok, tok.Page-1)
	case ActionCastNext:
		r.showCastPage(ctx, ic, tok, tok.Page+1)
	case ActionBack:
		r.showSummary(ctx, ic, tok)
	case ActionCover:
		r.showCover(ctx, ic, tok)
	}
}

// commandOwner is the user who ran the slash command that produced the
// message hosting the clicked control.
func commandOwner(ic *discordgo.InteractionCreate) *discordgo.User {
	if ic.Message != nil && ic.Message.Interaction != nil {
		return ic.Message.Interaction.User
	}
	return nil
}

// deleteAllowed: only the user who invoked the original command may destroy
// its message. Unknown ownership counts as a mismatch.
func deleteAllowed(ic *discordgo.InteractionCreate) bool {
	owner := commandOwner(ic)
	return owner != nil && owner.ID == interactionUser(ic).ID
}

func (r *Router) handleHelpButton(ic *discordgo.InteractionCreate, customID string) {
	owner := commandOwner(ic)
	if owner != nil && owner.ID != interactionUser(ic).ID {
		r.replyEphemeral(ic, "Only the person who used the command can use these buttons!")
		return
	}

	switch customID {
	case customIDHelpRefresh:
		err := r.s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: &discordgo.InteractionResponseData{
				Embeds:     []*discordgo.MessageEmbed{helpEmbed(r.s.State.User, true)},
				Components: helpComponents(r.s.State.User.ID),
			},
		})
		if err != nil {
			r.log.Warn("help refresh failed", zap.Error(err))
		}
	case customIDHelpSupport:
		r.respondEphemeralEmbed(ic, supportEmbed())
	case customIDHelpInfo:
		r.respondEphemeralEmbed(ic, botInfoEmbed(r.s.State.User, r.s.HeartbeatLatency()))
	}
}

func (r *Router) handleDelete(ic *discordgo.InteractionCreate) {
	if ic.Message == nil {
		return
	}
	if !deleteAllowed(ic) {
		r.replyEphemeral(ic, "Only the person who used the command can delete this message!")
		return
	}

	embeds := ic.Message.Embeds
	err := r.s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     embeds,
			Components: countdownRow(3),
		},
	})
	if err != nil {
		r.log.Warn("delete countdown start failed", zap.Error(err))
		return
	}
	go r.runDeleteCountdown(ic.ChannelID, ic.Message.ID, embeds)
}

func (r *Router) showSummary(ctx context.Context, ic *discordgo.InteractionCreate, tok NavToken) {
	if r.deferUpdate(ic) != nil {
		return
	}
	sub, err := r.lookup.Subject(ctx, tok.SubjectID, tok.Kind)
	if err != nil {
		r.log.Warn("summary fetch failed", zap.Int("id", tok.SubjectID), zap.Error(err))
		r.updateHosted(ic, providerErrorEmbed(err), nil)
		return
	}
	r.updateHosted(ic, summaryEmbed(sub), summaryComponents(sub))
}

func (r *Router) showCastPage(ctx context.Context, ic *discordgo.InteractionCreate, tok NavToken, page int) {
	if r.deferUpdate(ic) != nil {
		return
	}
	view, err := r.lookup.CastPage(ctx, tok.SubjectID, tok.Kind, page)
	switch {
	case errors.Is(err, service.ErrNoCast):
		r.updateHosted(ic, noCastEmbed(), nil)
	case err != nil:
		r.log.Warn("cast fetch failed", zap.Int("id", tok.SubjectID), zap.Error(err))
		r.updateHosted(ic, providerErrorEmbed(err), nil)
	default:
		r.updateHosted(ic,
			castPageEmbed(view.Cast, view.Page, tok.Kind),
			castPageComponents(tok.SubjectID, tok.Kind, view.Page, len(view.Cast)))
	}
}

func (r *Router) showCover(ctx context.Context, ic *discordgo.InteractionCreate, tok NavToken) {
	if r.deferUpdate(ic) != nil {
		return
	}
	sub, err := r.lookup.Subject(ctx, tok.SubjectID, tok.Kind)
	if err != nil {
		r.log.Warn("cover fetch failed", zap.Int("id", tok.SubjectID), zap.Error(err))
		r.updateHosted(ic, providerErrorEmbed(err), nil)
		return
	}
	if sub.BackdropPath == "" {
		r.updateHosted(ic, noCoverEmbed(), coverComponents(tok.SubjectID, tok.Kind))
		return
	}
	r.updateHosted(ic, coverEmbed(sub), coverComponents(tok.SubjectID, tok.Kind))
}
