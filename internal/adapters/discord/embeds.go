package discord

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/thiccboi-bot/internal/adapters/tmdb"
	"github.com/jose-valero/thiccboi-bot/internal/domain"
)

const (
	colorMovie = 0xF39C12
	colorTV    = 0x9B59B6
	colorError = 0xFF4757
	colorImage = 0xBA34EB
	colorHelp  = 0xF5D142

	overviewCap = 200
)

func stamp() string { return time.Now().UTC().Format(time.RFC3339) }

func kindColor(k domain.Kind) int {
	if k == domain.KindMovie {
		return colorMovie
	}
	return colorTV
}

func kindGlyph(k domain.Kind) string {
	if k == domain.KindMovie {
		return "🎬"
	}
	return "📺"
}

func kindLabel(k domain.Kind) string {
	if k == domain.KindMovie {
		return "Movie"
	}
	return "TV Series"
}

// summaryEmbed renders the main info panel. Everything goes into the
// description to stay clear of Discord's field limits.
func summaryEmbed(sub *domain.Subject) *discordgo.MessageEmbed {
	var b strings.Builder

	if sub.Overview != "" {
		overview := sub.Overview
		// cap counts characters, not bytes; overviews are routinely non-ASCII
		if utf8.RuneCountInString(overview) > overviewCap {
			runes := []rune(overview)
			overview = string(runes[:overviewCap-3]) + "..."
		}
		b.WriteString(overview + "\n\n")
	}

	var basic []string
	if sub.ReleaseYear > 0 {
		basic = append(basic, fmt.Sprintf("📅 **%d**", sub.ReleaseYear))
	}
	if sub.IsMovie() {
		if sub.RuntimeMinutes > 0 {
			basic = append(basic, fmt.Sprintf("⏱️ **%dh %dm**", sub.RuntimeMinutes/60, sub.RuntimeMinutes%60))
		}
	} else {
		if sub.SeasonCount > 0 {
			plural := ""
			if sub.SeasonCount > 1 {
				plural = "s"
			}
			basic = append(basic, fmt.Sprintf("📺 **%d Season%s**", sub.SeasonCount, plural))
		}
		if sub.EpisodeCount > 0 {
			basic = append(basic, fmt.Sprintf("🎬 **%d Episodes**", sub.EpisodeCount))
		}
		if sub.EpisodeRuntime > 0 {
			basic = append(basic, fmt.Sprintf("⏱️ **~%dmin/ep**", sub.EpisodeRuntime))
		}
	}
	if sub.Rating > 0 {
		basic = append(basic, fmt.Sprintf("⭐ **%.1f/10**", sub.Rating))
	}
	if len(basic) > 0 {
		b.WriteString(strings.Join(basic, " • ") + "\n\n")
	}

	if len(sub.Genres) > 0 {
		fmt.Fprintf(&b, "🎭 **Genres:** %s\n", strings.Join(sub.Genres, ", "))
	}
	if sub.IsMovie() {
		if sub.Director != "" {
			fmt.Fprintf(&b, "🎬 **Director:** %s\n", sub.Director)
		}
	} else if len(sub.Creators) > 0 {
		fmt.Fprintf(&b, "🎬 **Created by:** %s\n", strings.Join(sub.Creators, ", "))
	}
	if len(sub.TopCast) > 0 {
		fmt.Fprintf(&b, "🎭 **Cast:** %s\n", strings.Join(sub.TopCast, ", "))
	}

	if sub.IsMovie() {
		if sub.Budget > 0 {
			fmt.Fprintf(&b, "💰 **Budget:** $%dM ", sub.Budget/1_000_000)
		}
		if sub.Revenue > 0 {
			fmt.Fprintf(&b, "💵 **Revenue:** $%dM", sub.Revenue/1_000_000)
		}
	} else {
		if sub.Status != "" {
			fmt.Fprintf(&b, "📊 **Status:** %s\n", sub.Status)
		}
		if sub.Network != "" {
			fmt.Fprintf(&b, "📡 **Network:** %s", sub.Network)
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s %s", kindGlyph(sub.Kind), sub.Title),
		Description: b.String(),
		Color:       kindColor(sub.Kind),
		Timestamp:   stamp(),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Powered by TMDB | %s ID: %d", kindLabel(sub.Kind), sub.ID),
		},
	}
	if sub.PosterPath != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: tmdb.PosterURL(sub.PosterPath)}
	}
	return embed
}

// summaryComponents assembles the action row under a summary: link buttons
// carry external URLs, the rest carry navigation tokens.
func summaryComponents(sub *domain.Subject) []discordgo.MessageComponent {
	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Style: discordgo.LinkButton,
			Label: "TMDB",
			URL:   fmt.Sprintf("https://www.themoviedb.org/%s/%d", sub.Kind, sub.ID),
			Emoji: &discordgo.ComponentEmoji{Name: "🔗"},
		},
	}
	if sub.IMDbID != "" {
		buttons = append(buttons, discordgo.Button{
			Style: discordgo.LinkButton,
			Label: "IMDb",
			URL:   "https://www.imdb.com/title/" + sub.IMDbID,
			Emoji: &discordgo.ComponentEmoji{Name: "🎬"},
		})
	}
	if sub.HasCast {
		buttons = append(buttons, discordgo.Button{
			Style:    discordgo.SecondaryButton,
			Label:    "Cast",
			CustomID: NavToken{Action: ActionCastOpen, SubjectID: sub.ID, Kind: sub.Kind}.Encode(),
			Emoji:    &discordgo.ComponentEmoji{Name: "👥"},
		})
	}
	if sub.BackdropPath != "" {
		buttons = append(buttons, discordgo.Button{
			Style:    discordgo.SecondaryButton,
			Label:    "Cover",
			CustomID: NavToken{Action: ActionCover, SubjectID: sub.ID, Kind: sub.Kind}.Encode(),
			Emoji:    &discordgo.ComponentEmoji{Name: "🖼️"},
		})
	}
	if sub.TrailerKey != "" {
		buttons = append(buttons, discordgo.Button{
			Style: discordgo.LinkButton,
			Label: "Trailer",
			URL:   "https://www.youtube.com/watch?v=" + sub.TrailerKey,
			Emoji: &discordgo.ComponentEmoji{Name: "▶️"},
		})
	}
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}

// castPageEmbed renders one performer. Caller guarantees 0 <= page < len(cast);
// the service clamps before we get here.
func castPageEmbed(cast []domain.CastEntry, page int, kind domain.Kind) *discordgo.MessageEmbed {
	actor := cast[page]

	character := actor.Character
	if character == "" {
		character = "Unknown"
	}
	popularity := "N/A"
	if actor.Popularity > 0 {
		popularity = fmt.Sprintf("%.1f", actor.Popularity)
	}

	embed := &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("👥 Cast Member %d of %d", page+1, len(cast)),
		Color:     kindColor(kind),
		Timestamp: stamp(),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🎭 Actor", Value: actor.Name, Inline: true},
			{Name: "👤 Character", Value: character, Inline: true},
			{Name: "📊 Popularity", Value: popularity, Inline: true},
		},
		Image: &discordgo.MessageEmbedImage{URL: tmdb.ProfileURL(actor.PhotoPath)},
	}
	return embed
}

// castPageComponents builds the pager controls: Previous iff there is a page
// before, Next iff there is one after, and a disabled position indicator.
func castPageComponents(subjectID int, kind domain.Kind, page, total int) []discordgo.MessageComponent {
	var nav []discordgo.MessageComponent
	if page > 0 {
		nav = append(nav, discordgo.Button{
			Style:    discordgo.PrimaryButton,
			Label:    "◀ Previous",
			CustomID: NavToken{Action: ActionCastPrev, SubjectID: subjectID, Kind: kind, Page: page}.Encode(),
		})
	}
	nav = append(nav, discordgo.Button{
		Style:    discordgo.SecondaryButton,
		Label:    fmt.Sprintf("%d/%d", page+1, total),
		CustomID: customIDPageIndicator,
		Disabled: true,
	})
	if page < total-1 {
		nav = append(nav, discordgo.Button{
			Style:    discordgo.PrimaryButton,
			Label:    "Next ▶",
			CustomID: NavToken{Action: ActionCastNext, SubjectID: subjectID, Kind: kind, Page: page}.Encode(),
		})
	}

	back := discordgo.Button{
		Style:    discordgo.SuccessButton,
		Label:    "← Back to Info",
		CustomID: NavToken{Action: ActionBack, SubjectID: subjectID, Kind: kind}.Encode(),
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: nav},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{back}},
	}
}

func coverEmbed(sub *domain.Subject) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("🖼️ %s - Cover", sub.Title),
		Color:     kindColor(sub.Kind),
		Timestamp: stamp(),
		Image:     &discordgo.MessageEmbedImage{URL: tmdb.BackdropURL(sub.BackdropPath)},
	}
}

func coverComponents(subjectID int, kind domain.Kind) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			Style:    discordgo.SecondaryButton,
			Label:    "Back",
			CustomID: NavToken{Action: ActionBack, SubjectID: subjectID, Kind: kind}.Encode(),
			Emoji:    &discordgo.ComponentEmoji{Name: "⬅️"},
		},
	}}}
}

func noCastEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "👥 Cast Information",
		Description: "No cast photos available for this content.",
		Color:       colorError,
		Timestamp:   stamp(),
	}
}

func noCoverEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🖼️ Cover Image",
		Description: "No cover image available for this content.",
		Color:       colorError,
		Timestamp:   stamp(),
	}
}

func notFoundEmbed(query string, kind domain.Kind, year int) *discordgo.MessageEmbed {
	what := "movies or TV series"
	switch kind {
	case domain.KindMovie:
		what = "movies"
	case domain.KindTV:
		what = "TV series"
	}
	desc := fmt.Sprintf("Sorry, I couldn't find any %s matching %q", what, query)
	if year > 0 {
		desc += fmt.Sprintf(" from %d", year)
	}
	return &discordgo.MessageEmbed{
		Title:       "🎬 Content Not Found",
		Description: desc + ".",
		Color:       colorError,
		Timestamp:   stamp(),
	}
}

// providerErrorEmbed maps a categorized upstream failure to its one
// user-facing message. Internal detail never leaks into the panel.
func providerErrorEmbed(err error) *discordgo.MessageEmbed {
	msg := "Sorry, I couldn't fetch movie information right now. Please try again later!"
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		msg = "API authentication failed. Please check the TMDB API key configuration."
	case errors.Is(err, domain.ErrRateLimited):
		msg = "Too many requests. Please wait a moment before trying again."
	case errors.Is(err, domain.ErrUnavailable):
		msg = "Unable to connect to TMDB. Please check your internet connection."
	}
	return &discordgo.MessageEmbed{
		Title:       "❌ Error",
		Description: msg,
		Color:       colorError,
		Timestamp:   stamp(),
	}
}

func imageEmbed(url string, nsfw bool) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Image: &discordgo.MessageEmbedImage{URL: url},
		Color: colorImage,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Powered by THICC artists",
		},
	}
	if nsfw {
		embed.Footer.Text = "NSFW Content"
	}
	return embed
}

// imageErrorEmbed is the nekos counterpart of providerErrorEmbed.
func imageErrorEmbed(err error) *discordgo.MessageEmbed {
	msg := "Sorry, I couldn't fetch an image right now. Please try again later!"
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		msg = "Rate limit exceeded. Please wait a moment before trying again!"
	case errors.Is(err, domain.ErrUnavailable):
		msg = "The API is temporarily unavailable. Please try again later!"
	}
	return &discordgo.MessageEmbed{
		Title:       "⚠️ Connection Error",
		Description: msg,
		Color:       colorError,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "If this persists, the API might be experiencing issues.",
		},
	}
}
