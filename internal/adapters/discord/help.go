package discord

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	customIDHelpRefresh = "help_refresh"
	customIDHelpSupport = "help_support"
	customIDHelpInfo    = "help_info"

	colorSupport = 0x00FF00
	colorBotInfo = 0xFF6B6B
)

var startedAt = time.Now()

func helpEmbed(bot *discordgo.User, refreshed bool) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(Commands))
	for _, cmd := range Commands {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "🔥 /" + cmd.Name,
			Value:  cmd.Description,
			Inline: true,
		})
	}

	footer := "More commands coming soon!"
	if refreshed {
		footer = fmt.Sprintf("Last updated: %s - More commands coming soon!",
			time.Now().Format("15:04:05"))
	}

	return &discordgo.MessageEmbed{
		Title:  "Command Center",
		Color:  colorHelp,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text:    footer,
			IconURL: bot.AvatarURL("128"),
		},
		Timestamp: stamp(),
	}
}

func helpComponents(appID string) []discordgo.MessageComponent {
	invite := fmt.Sprintf(
		"https://discord.com/api/oauth2/authorize?client_id=%s&permissions=8&scope=bot%%20applications.commands",
		appID)
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "🔄 Refresh", Style: discordgo.PrimaryButton, CustomID: customIDHelpRefresh},
			discordgo.Button{Label: "❓ Support", Style: discordgo.SecondaryButton, CustomID: customIDHelpSupport},
			discordgo.Button{Label: "ℹ️ Bot Info", Style: discordgo.SecondaryButton, CustomID: customIDHelpInfo},
			discordgo.Button{Label: "🔗 Invite Bot", Style: discordgo.LinkButton, URL: invite},
		}},
	}
}

func supportEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🛠️ Need Help?",
		Description: "If you need assistance with the bot, here are some ways to get help:",
		Color:       colorSupport,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📚 Documentation", Value: "Check the README.md file for detailed information", Inline: true},
			{Name: "🐛 Report Bugs", Value: "Use `/status` to check bot health", Inline: true},
			{Name: "💡 Suggestions", Value: "Contact the bot developer for feature requests", Inline: true},
		},
		Timestamp: stamp(),
	}
}

func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d Bytes", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %s", float64(n)/float64(div), []string{"KB", "MB", "GB", "TB"}[exp])
}

func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
}

func botInfoEmbed(bot *discordgo.User, heartbeat time.Duration) *discordgo.MessageEmbed {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return &discordgo.MessageEmbed{
		Title:       "🤖 Bot Information",
		Description: "ThiccBoiBot - A powerful Discord bot with various utilities",
		Color:       colorBotInfo,
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: bot.AvatarURL("128")},
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "📊 Bot Stats",
				Value: fmt.Sprintf("**Commands:** %d\n**Ping:** %dms\n**Bot Uptime:** %s",
					len(Commands), heartbeat.Milliseconds(), formatUptime(time.Since(startedAt))),
				Inline: true,
			},
			{
				Name: "💾 Memory Usage",
				Value: fmt.Sprintf("**Heap:** %s / %s\n**Sys:** %s\n**GC Cycles:** %d",
					formatBytes(ms.HeapAlloc), formatBytes(ms.HeapSys), formatBytes(ms.Sys), ms.NumGC),
				Inline: true,
			},
			{
				Name: "🖥️ System Info",
				Value: fmt.Sprintf("**OS:** %s\n**CPU Cores:** %d\n**Goroutines:** %d",
					runtime.GOOS, runtime.NumCPU(), runtime.NumGoroutine()),
				Inline: true,
			},
			{
				Name: "⚙️ Technical",
				Value: fmt.Sprintf("**Go:** %s\n**Arch:** %s\n**Bot ID:** %s",
					runtime.Version(), runtime.GOARCH, bot.ID),
				Inline: true,
			},
		},
		Timestamp: stamp(),
	}
}
