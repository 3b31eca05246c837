package discord

import "github.com/bwmarrin/discordgo"

var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "movie",
		Description: "Search for a movie or TV series and get the details",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "title",
				Description: "Title to search for",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "type",
				Description: "What kind of result you want",
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Movie", Value: "movie"},
					{Name: "TV Series", Value: "tv"},
					{Name: "Both", Value: "multi"},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "year",
				Description: "Release year to narrow the search",
			},
		},
	},
	{
		Name:        "thicc",
		Description: "Get a random thicc image 🍑",
	},
	{
		Name:        "verythicc",
		Description: "Get a random VERY thicc image (NSFW channels only) 🔞",
	},
	{
		Name:        "screenshot",
		Description: "Take a screenshot of a website 📸",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "url",
				Description: "Website URL to capture",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "resolution",
				Description: "Screenshot resolution",
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "1280x720", Value: "1280/720"},
					{Name: "1920x1080", Value: "1920/1080"},
				},
			},
		},
	},
	{
		Name:        "help",
		Description: "List every command the bot knows",
	},
	{
		Name:        "status",
		Description: "Check whether the bot is alive",
	},
}
