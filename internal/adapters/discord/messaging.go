package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

func (r *Router) deferReply(ic *discordgo.InteractionCreate) error {
	err := r.s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		r.log.Warn("defer reply failed", zap.Error(err))
	}
	return err
}

// deferUpdate acks a component click so the follow-up edit can take longer
// than the 3s interaction window (provider calls are capped at 10s).
func (r *Router) deferUpdate(ic *discordgo.InteractionCreate) error {
	err := r.s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		r.log.Warn("defer update failed", zap.Error(err))
	}
	return err
}

func (r *Router) replyEphemeral(ic *discordgo.InteractionCreate, content string, embeds ...*discordgo.MessageEmbed) {
	_, err := r.s.FollowupMessageCreate(ic.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Embeds:  embeds,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		// fallback when nothing was deferred yet (unknown webhook)
		var reqErr *discordgo.RESTError
		if errors.As(err, &reqErr) && reqErr.Message != nil && reqErr.Message.Code == 10015 {
			_ = r.s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Content: content,
					Embeds:  embeds,
					Flags:   discordgo.MessageFlagsEphemeral,
				},
			})
			return
		}
		r.log.Warn("ephemeral reply failed", zap.Error(err))
	}
}

// respond answers an interaction immediately with a visible message.
func (r *Router) respond(ic *discordgo.InteractionCreate, content string) {
	err := r.s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		r.log.Warn("respond failed", zap.Error(err))
	}
}

func (r *Router) respondEmbed(ic *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, comps []discordgo.MessageComponent) {
	err := r.s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: comps,
		},
	})
	if err != nil {
		r.log.Warn("respond embed failed", zap.Error(err))
	}
}

func (r *Router) respondEphemeralEmbed(ic *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := r.s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		r.log.Warn("respond ephemeral embed failed", zap.Error(err))
	}
}

// editReply replaces the deferred reply in one call. comps==nil leaves the
// message without components; the caller always passes the full final view.
func (r *Router) editReply(ic *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, comps []discordgo.MessageComponent) {
	embeds := []*discordgo.MessageEmbed{embed}
	if comps == nil {
		comps = []discordgo.MessageComponent{}
	}
	_, err := r.s.InteractionResponseEdit(ic.Interaction, &discordgo.WebhookEdit{
		Embeds:     &embeds,
		Components: &comps,
	})
	if err != nil {
		r.log.Warn("edit reply failed", zap.Error(err))
	}
}

// updateHosted rewrites the message that hosted the clicked control. One
// atomic edit per transition: embed and components always change together.
func (r *Router) updateHosted(ic *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, comps []discordgo.MessageComponent) {
	r.editReply(ic, embed, comps)
}
