// Package httpstatus exposes the bot's public status API and homepage.
// It mirrors what the Discord gateway already knows: guild count, presence,
// profile and the registered slash commands.
package httpstatus

import (
	"context"
	_ "embed"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"go.uber.org/zap"
)

//go:embed public/index.html
var homepage []byte

// Presence is the advertised gateway presence, set once at startup.
type Presence struct {
	Status   string
	Activity string
}

type Server struct {
	echo       *echo.Echo
	httpServer *http.Server
	log        *zap.Logger
	session    *discordgo.Session
	commands   []*discordgo.ApplicationCommand
	presence   Presence
}

func New(log *zap.Logger, session *discordgo.Session, commands []*discordgo.ApplicationCommand, presence Presence) *Server {
	s := &Server{
		log:      log,
		session:  session,
		commands: commands,
		presence: presence,
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	e := echo.New()

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet},
	}))

	e.GET("/", s.handleHome)
	e.GET("/servercount", s.handleServerCount)
	e.GET("/botstatus", s.handleBotStatus)
	e.GET("/botprofile", s.handleBotProfile)
	e.GET("/allcmds", s.handleAllCommands)

	s.echo = e
}

func (s *Server) handleHome(c *echo.Context) error {
	return c.HTMLBlob(http.StatusOK, homepage)
}

func (s *Server) handleServerCount(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]int{
		"servers": len(s.session.State.Guilds),
	})
}

func (s *Server) handleBotStatus(c *echo.Context) error {
	if s.session.State.User == nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Bot is not logged in."})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":   s.presence.Status,
		"activity": s.presence.Activity,
	})
}

func (s *Server) handleBotProfile(c *echo.Context) error {
	user := s.session.State.User
	if user == nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Bot is not logged in."})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"username": user.Username,
		"pfpurl":   user.AvatarURL("128"),
		"verified": user.Verified,
	})
}

type commandInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleAllCommands(c *echo.Context) error {
	list := make([]commandInfo, 0, len(s.commands))
	for _, cmd := range s.commands {
		list = append(list, commandInfo{Name: cmd.Name, Description: cmd.Description})
	}
	return c.JSON(http.StatusOK, map[string][]commandInfo{"commands": list})
}

// Start serves in the background. The http.Server is owned here so shutdown
// stays under the caller's control instead of Echo's signal handling.
func (s *Server) Start(addr string) {
	s.log.Info("status API starting", zap.String("addr", addr))
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.echo,
	}
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("status API error", zap.Error(err))
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
