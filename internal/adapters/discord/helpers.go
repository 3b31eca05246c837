package discord

import (
	"regexp"

	"github.com/bwmarrin/discordgo"
)

var reScheme = regexp.MustCompile(`(?i)^https?://`)

// normalizeSite defaults bare hostnames to https.
func normalizeSite(raw string) string {
	if reScheme.MatchString(raw) {
		return raw
	}
	return "https://" + raw
}

// interactionUser works in guilds (Member) and DMs (User).
func interactionUser(ic *discordgo.InteractionCreate) *discordgo.User {
	if ic.Member != nil && ic.Member.User != nil {
		return ic.Member.User
	}
	return ic.User
}

func optStr(ic *discordgo.InteractionCreate, name string) (string, bool) {
	for _, o := range ic.ApplicationCommandData().Options {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionString {
			return o.StringValue(), true
		}
	}
	return "", false
}

func optInt(ic *discordgo.InteractionCreate, name string) (int, bool) {
	for _, o := range ic.ApplicationCommandData().Options {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionInteger {
			return int(o.IntValue()), true
		}
	}
	return 0, false
}

func (r *Router) safeGetChannel(id string) (*discordgo.Channel, error) {
	if ch, err := r.s.State.Channel(id); err == nil && ch != nil {
		return ch, nil
	}
	ch, err := r.s.Channel(id)
	if err != nil {
		return nil, err
	}
	_ = r.s.State.ChannelAdd(ch)
	return ch, nil
}
