// Package web serves live map views to browsers over websockets, the
// JSON endpoints embeds need, and the signed-in player and manager API.
package web

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/mapsync"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/mapadmin"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/movement"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/presence"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/skillcheck"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/maps"
)

const (
	capabilityKey = "capability"

	defaultWriteTimeout = 5 * time.Second
	pingInterval        = 30 * time.Second
	pongWait            = 60 * time.Second
)

// SessionStarter turns a bearer token into the caller's capability.
type SessionStarter interface {
	Start(ctx context.Context, token string) (entities.Capability, error)
}

// Config holds the server's collaborators
type Config struct {
	Sessions   SessionStarter
	Maps       maps.Repository
	SkillCheck skillcheck.Service
	MapAdmin   mapadmin.Service
	Movement   movement.Service
	Presence   presence.Service

	Fetcher     mapsync.Fetcher
	Changes     mapsync.ChangeSource
	Live        mapsync.LiveSource
	EventBuffer int

	WriteTimeout time.Duration
	// AllowedOrigins restricts browser origins; empty allows any.
	AllowedOrigins []string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.Sessions == nil {
		vb.RequiredField("Sessions")
	}
	if c.Maps == nil {
		vb.RequiredField("Maps")
	}
	if c.SkillCheck == nil {
		vb.RequiredField("SkillCheck")
	}
	if c.MapAdmin == nil {
		vb.RequiredField("MapAdmin")
	}
	if c.Movement == nil {
		vb.RequiredField("Movement")
	}
	if c.Presence == nil {
		vb.RequiredField("Presence")
	}
	if c.Fetcher == nil {
		vb.RequiredField("Fetcher")
	}
	if c.Changes == nil {
		vb.RequiredField("Changes")
	}
	if c.Live == nil {
		vb.RequiredField("Live")
	}
	return vb.Build()
}

// Server routes live view and embed requests
type Server struct {
	sessions     SessionStarter
	maps         maps.Repository
	skillCheck   skillcheck.Service
	mapAdmin     mapadmin.Service
	movement     movement.Service
	presence     presence.Service
	fetcher      mapsync.Fetcher
	changes      mapsync.ChangeSource
	live         mapsync.LiveSource
	eventBuffer  int
	writeTimeout time.Duration
	upgrader     websocket.Upgrader
}

// NewServer creates a server with the provided dependencies
func NewServer(cfg *Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}

	origins := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		origins[strings.TrimSuffix(o, "/")] = true
	}

	return &Server{
		sessions:     cfg.Sessions,
		maps:         cfg.Maps,
		skillCheck:   cfg.SkillCheck,
		mapAdmin:     cfg.MapAdmin,
		movement:     cfg.Movement,
		presence:     cfg.Presence,
		fetcher:      cfg.Fetcher,
		changes:      cfg.Changes,
		live:         cfg.Live,
		eventBuffer:  cfg.EventBuffer,
		writeTimeout: writeTimeout,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(origins) == 0 {
					return true
				}
				return origins[r.Header.Get("Origin")]
			},
		},
	}, nil
}

// Router builds the HTTP routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/maps/:id/live", s.authenticate(), s.mapLive)

	embed := r.Group("/embed")
	embed.GET("/maps/:id/live", s.embedMapLive)
	embed.GET("/skills/:code", s.skillOutcome)

	s.registerAPI(r.Group("/api", s.authenticate()))

	return r
}

// authenticate resolves the bearer token once for the connection. Browsers
// cannot set headers on a websocket handshake, so ?token= is accepted too.
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			token = c.Query("token")
		}
		if strings.TrimSpace(token) == "" {
			abort(c, errors.Unauthenticated("a bearer token is required"))
			return
		}

		capability, err := s.sessions.Start(c.Request.Context(), token)
		if err != nil {
			abort(c, err)
			return
		}

		c.Set(capabilityKey, capability)
		c.Next()
	}
}

func (s *Server) mapLive(c *gin.Context) {
	capability, _ := c.MustGet(capabilityKey).(entities.Capability)
	s.serveView(c, capability, c.Param("id"))
}

func (s *Server) embedMapLive(c *gin.Context) {
	mapID := c.Param("id")

	out, err := s.maps.GetMap(c.Request.Context(), maps.GetMapInput{MapID: mapID})
	if err != nil {
		abort(c, err)
		return
	}
	if !out.Map.EmbedEnabled {
		// Hidden maps look absent to anonymous viewers.
		abort(c, errors.NotFoundf("map %s not found", mapID))
		return
	}

	s.serveView(c, entities.Anonymous(), mapID)
}

type outcomeResponse struct {
	Code    string                  `json:"code"`
	Outcome entities.Outcome        `json:"outcome"`
	Source  skillcheck.Source       `json:"source"`
	Record  *entities.OutcomeRecord `json:"record,omitempty"`
}

func (s *Server) skillOutcome(c *gin.Context) {
	code := c.Param("code")

	out, err := s.skillCheck.Resolve(c.Request.Context(), &skillcheck.ResolveInput{Code: code})
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, &outcomeResponse{
		Code:    strings.TrimSpace(code),
		Outcome: out.Outcome,
		Source:  out.Source,
		Record:  out.Record,
	})
}

func (s *Server) serveView(c *gin.Context, capability entities.Capability, mapID string) {
	engine, err := mapsync.NewEngine(&mapsync.Config{
		Fetcher:     s.fetcher,
		Changes:     s.changes,
		Live:        s.live,
		Capability:  capability,
		EventBuffer: s.eventBuffer,
	})
	if err != nil {
		abort(c, err)
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		slog.Warn("websocket upgrade failed", "map_id", mapID, "error", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	view, err := engine.OpenMapView(ctx, mapID)
	if err != nil {
		s.closeWith(conn, websocket.CloseInternalServerErr, errors.GetMessage(err))
		return
	}
	defer func() {
		if err := view.Close(); err != nil {
			slog.Warn("failed to close map view", "map_id", mapID, "error", err)
		}
	}()

	slog.Info("live view opened",
		"map_id", mapID,
		"player_id", capability.PlayerID,
		"anonymous", capability.IsAnonymous())

	go s.readUntilClosed(conn, cancel)

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.closeWith(conn, websocket.CloseNormalClosure, "")
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(s.writeTimeout)); err != nil {
				return
			}
		case ev, ok := <-view.Events():
			if !ok {
				s.closeWith(conn, websocket.CloseNormalClosure, "")
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
			if err := conn.WriteJSON(ev); err != nil {
				slog.Debug("live view write failed", "map_id", mapID, "error", err)
				return
			}
		}
	}
}

// readUntilClosed drains client frames so control messages are handled and
// cancels the view when the peer goes away.
func (s *Server) readUntilClosed(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) closeWith(conn *websocket.Conn, code int, reason string) {
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(s.writeTimeout))
}

func abort(c *gin.Context, err error) {
	code := errors.GetCode(err)
	c.AbortWithStatusJSON(code.HTTPStatus(), gin.H{
		"error":   code.String(),
		"message": errors.GetMessage(err),
	})
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
