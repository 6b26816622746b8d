package server

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
)

const (
	adminCookie       = "admin_token"
	adminCookieMaxAge = 3600 * 24
	recentVisitLimit  = 50
)

// admin guards the owner's stats endpoints. The session token is random per
// process; restarting the service logs the owner out.
type admin struct {
	creds config.AdminConfig
	token string
}

func newAdmin(creds config.AdminConfig) (*admin, error) {
	token, err := randomHex(32)
	if err != nil {
		return nil, err
	}
	return &admin{creds: creds, token: token}, nil
}

func (a *admin) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.creds.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.creds.Password)) == 1
	return userOK && passOK
}

func (a *admin) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func (a *admin) routes(r *gin.Engine, s *Server) {
	r.POST("/admin/login", func(c *gin.Context) {
		if !a.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
			s.logger.Warn("failed admin login", zap.String("client", hashIP(c.ClientIP())))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, a.token, adminCookieMaxAge, "/admin", "", s.secureCookies(), true)
		s.logger.Info("admin login", zap.String("client", hashIP(c.ClientIP())))
		c.JSON(http.StatusOK, gin.H{"message": "logged in"})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", s.secureCookies(), true)
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	})

	group := r.Group("/admin/api")
	group.Use(a.requireToken())

	group.GET("/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), time.Now(), recentVisitLimit)
		if err != nil {
			s.logger.Error("load admin stats", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"stats":           stats,
			"active_sessions": s.sessions.Len(),
		})
	})

	group.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := s.PurgeOldVisits(c.Request.Context())
		if err != nil {
			s.logger.Error("privacy cleanup", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": n})
	})
}
