package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// scheduleExpiry strips the interactive controls from a reply after d. The
// interaction webhook stays editable for 15 minutes, well past every expiry
// used here. A failed edit usually means the message was deleted; that is
// fine either way.
func (r *Router) scheduleExpiry(ic *discordgo.InteractionCreate, d time.Duration) {
	interaction := ic.Interaction
	time.AfterFunc(d, func() {
		empty := []discordgo.MessageComponent{}
		_, err := r.s.InteractionResponseEdit(interaction, &discordgo.WebhookEdit{
			Components: &empty,
		})
		if err != nil {
			r.log.Debug("expiry edit failed", zap.Error(err))
		}
	})
}

func deleteRow() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "🗑️ Delete",
				Style:    discordgo.DangerButton,
				CustomID: customIDDelete,
			},
		}},
	}
}

func countdownRow(n int) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    fmt.Sprintf("🗑️ Deleting in %ds", n),
				Style:    discordgo.DangerButton,
				CustomID: "delete_countdown",
				Disabled: true,
			},
		}},
	}
}

// runDeleteCountdown ticks the disabled button down from 2s and then removes
// the message. The 3s step was already shown by the click response. Aborts
// silently if an edit fails, most likely because the message is gone.
func (r *Router) runDeleteCountdown(channelID, messageID string, embeds []*discordgo.MessageEmbed) {
	for n := 2; n > 0; n-- {
		time.Sleep(time.Second)
		comps := countdownRow(n)
		_, err := r.s.ChannelMessageEditComplex(&discordgo.MessageEdit{
			Channel:    channelID,
			ID:         messageID,
			Embeds:     &embeds,
			Components: &comps,
		})
		if err != nil {
			r.log.Debug("countdown edit failed", zap.Error(err))
			return
		}
	}
	time.Sleep(time.Second)
	if err := r.s.ChannelMessageDelete(channelID, messageID); err != nil {
		r.log.Debug("countdown delete failed", zap.Error(err))
	}
}
