// Package server exposes the portfolio over HTTP: the page's static assets and
// a JSON API over each visitor's session state.
package server

import (
	"context"
	"errors"
	"net/http"
	"path"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/storage/sqlite"
)

const (
	sessionCookie = "portfolio_session"
	visitorCookie = "portfolio_visitor"
	visitorMaxAge = 3600 * 24 * 365

	ctxSession = "portfolio.session"
)

// Store is the persistence the HTTP layer needs beyond theme preferences.
type Store interface {
	RecordVisit(ctx context.Context, v sqlite.Visit) error
	Stats(ctx context.Context, now time.Time, recent int) (*sqlite.Stats, error)
	PurgeVisitsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type Server struct {
	cfg      *config.Config
	site     content.Site
	sessions *session.Manager
	store    Store
	metrics  *metrics.Metrics
	logger   *zap.Logger
	admin    *admin
	engine   *gin.Engine

	// track runs visit recording; tests replace it to run inline.
	track func(func())
}

func New(cfg *config.Config, site content.Site, sessions *session.Manager, store Store, m *metrics.Metrics, logger *zap.Logger) (*Server, error) {
	if cfg == nil || sessions == nil || store == nil || m == nil {
		return nil, errors.New("server: config, sessions, store and metrics are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:      cfg,
		site:     site,
		sessions: sessions,
		store:    store,
		metrics:  m,
		logger:   logger,
		track:    func(fn func()) { go fn() },
	}
	if cfg.Admin.Enabled() {
		a, err := newAdmin(cfg.Admin)
		if err != nil {
			return nil, err
		}
		s.admin = a
	}
	s.engine = s.routes()
	return s, nil
}

// Handler returns the gin engine.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(logging.Recovery(s.logger), logging.Middleware(s.logger), s.trackVisits())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	r.Static("/images", s.cfg.ImagesDir)
	r.Static("/static", s.cfg.StaticDir)
	r.StaticFile("/", filepath.Join(s.cfg.StaticDir, "index.html"))
	if resume := s.site.Profile.ResumeURL; resume != "" {
		r.StaticFile(resume, filepath.Join(s.cfg.StaticDir, path.Base(resume)))
	}

	r.GET("/api/site", s.handleSite)

	api := r.Group("/api")
	api.Use(s.withSession())
	api.GET("/projects", s.handleProjects)
	api.POST("/projects/next", s.handleNext)
	api.POST("/projects/prev", s.handlePrev)
	api.GET("/theme", s.handleTheme)
	api.POST("/theme/toggle", s.handleThemeToggle)
	api.GET("/contact", s.handleContact)
	api.POST("/contact", s.handleContactSubmit)
	api.DELETE("/session", s.handleCloseSession)

	if s.admin != nil {
		s.admin.routes(r, s)
	}
	return r
}

// withSession attaches the visitor's session, creating one when the cookie
// is missing or the session expired.
func (s *Server) withSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := c.Cookie(sessionCookie); err == nil {
			if sess, err := s.sessions.Get(id); err == nil {
				c.Set(ctxSession, sess)
				c.Next()
				return
			}
		}

		visitorID, _ := c.Cookie(visitorCookie)
		sess, err := s.sessions.Create(c.Request.Context(), visitorID)
		if err != nil {
			s.logger.Error("create session", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not start session"})
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(visitorCookie, sess.VisitorID, visitorMaxAge, "/", "", s.secureCookies(), true)
		c.SetCookie(sessionCookie, sess.ID, 0, "/", "", s.secureCookies(), true)
		c.Set(ctxSession, sess)
		c.Next()
	}
}

func (s *Server) secureCookies() bool {
	return s.cfg.GinMode == gin.ReleaseMode
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(ctxSession).(*session.Session)
}
