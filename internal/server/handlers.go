package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/theme"
)

const contactFailureMessage = "Oops! Something went wrong. Please try again."

type siteResponse struct {
	Profile    content.Profile      `json:"profile"`
	About      content.About        `json:"about"`
	Skills     []string             `json:"skills"`
	Experience []content.Experience `json:"experience"`
	Hobbies    []content.Hobby      `json:"hobbies"`
}

type themeResponse struct {
	Theme theme.Theme `json:"theme"`
	Dark  bool        `json:"dark"`
}

type contactResponse struct {
	State  contact.State `json:"state"`
	Fields contact.Form  `json:"fields"`
	Error  string        `json:"error,omitempty"`
}

func (s *Server) handleSite(c *gin.Context) {
	c.JSON(http.StatusOK, siteResponse{
		Profile:    s.site.Profile,
		About:      s.site.About,
		Skills:     s.site.UniqueSkills(),
		Experience: s.site.Experience,
		Hobbies:    s.site.Hobbies,
	})
}

// handleProjects applies whichever of q and tag are present and returns the
// resulting view. With neither it just reports the current view.
func (s *Server) handleProjects(c *gin.Context) {
	sess := currentSession(c)
	text, hasText := c.GetQuery("q")
	tag, hasTag := c.GetQuery("tag")
	if !hasText && !hasTag {
		c.JSON(http.StatusOK, sess.View())
		return
	}

	var textArg, tagArg *string
	if hasText {
		textArg = &text
	}
	if hasTag {
		tagArg = &tag
	}
	view := sess.Refine(textArg, tagArg)
	s.observeQuery(view)
	c.JSON(http.StatusOK, view)
}

func (s *Server) observeQuery(view session.View) {
	result := "matched"
	if view.Total == 0 {
		result = "empty"
	}
	s.metrics.ProjectQueries.WithLabelValues(result).Inc()
}

func (s *Server) handleNext(c *gin.Context) {
	s.metrics.CarouselMoves.WithLabelValues("next").Inc()
	c.JSON(http.StatusOK, currentSession(c).Next())
}

func (s *Server) handlePrev(c *gin.Context) {
	s.metrics.CarouselMoves.WithLabelValues("prev").Inc()
	c.JSON(http.StatusOK, currentSession(c).Prev())
}

func (s *Server) handleTheme(c *gin.Context) {
	t := currentSession(c).Theme.Theme()
	c.JSON(http.StatusOK, themeResponse{Theme: t, Dark: t.IsDark()})
}

func (s *Server) handleThemeToggle(c *gin.Context) {
	sess := currentSession(c)
	t, err := sess.Theme.Toggle(c.Request.Context())
	if err != nil {
		s.logger.Error("toggle theme", zap.String("session_id", sess.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save theme preference"})
		return
	}
	s.metrics.ThemeToggles.WithLabelValues(string(t)).Inc()
	c.JSON(http.StatusOK, themeResponse{Theme: t, Dark: t.IsDark()})
}

func (s *Server) handleContact(c *gin.Context) {
	ctrl := currentSession(c).Contact
	c.JSON(http.StatusOK, contactResponse{State: ctrl.State(), Fields: ctrl.Fields()})
}

func (s *Server) handleContactSubmit(c *gin.Context) {
	sess := currentSession(c)
	ctrl := sess.Contact

	var form contact.Form
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed contact form"})
		return
	}
	ctrl.SetFields(form)

	// The submission belongs to the session, not to this request: a client
	// disconnect does not abort it, closing the session does.
	err := ctrl.Submit(context.WithoutCancel(c.Request.Context()))
	resp := contactResponse{State: ctrl.State(), Fields: ctrl.Fields()}

	switch {
	case err == nil:
		c.JSON(http.StatusOK, resp)
	case errors.Is(err, contact.ErrInvalidForm):
		resp.Error = err.Error()
		c.JSON(http.StatusUnprocessableEntity, resp)
	case errors.Is(err, contact.ErrBusy):
		resp.Error = "a submission is already in progress"
		c.JSON(http.StatusConflict, resp)
	case errors.Is(err, contact.ErrClosed):
		c.JSON(http.StatusGone, gin.H{"error": "session closed"})
	default:
		s.logger.Warn("contact submission failed", zap.String("session_id", sess.ID), zap.Error(err))
		resp.Error = contactFailureMessage
		c.JSON(http.StatusBadGateway, resp)
	}
}

func (s *Server) handleCloseSession(c *gin.Context) {
	sess := currentSession(c)
	if err := s.sessions.Close(sess.ID); err != nil && !errors.Is(err, session.ErrNotFound) {
		s.logger.Error("close session", zap.Error(err))
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", s.secureCookies(), true)
	c.Status(http.StatusNoContent)
}
