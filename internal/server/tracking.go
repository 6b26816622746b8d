package server

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/storage/sqlite"
)

// hashingSalt is generated per process, so hashes from different runs
// cannot be joined.
var hashingSalt = mustRandomHex(32)

func mustRandomHex(n int) string {
	s, err := randomHex(n)
	if err != nil {
		panic(fmt.Sprintf("read random bytes: %v", err))
	}
	return s
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// hashIP is consistent per IP within one process.
func hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + hashingSalt))
	return hex.EncodeToString(sum[:])[:16]
}

var untrackedPrefixes = []string{"/static/", "/images/", "/admin/", "/favicon", "/metrics", "/healthz"}

// trackVisits records page views with a hashed client IP. Asset, admin and
// probe paths are skipped, and so is any request sending DNT: 1.
func (s *Server) trackVisits() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		visit := sqlite.Visit{
			HashedIP:  hashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			CreatedAt: time.Now(),
		}
		s.track(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.store.RecordVisit(ctx, visit); err != nil {
				s.logger.Warn("record visit", zap.Error(err))
				return
			}
			s.metrics.Visits.Inc()
		})
		c.Next()
	}
}

// PurgeOldVisits deletes visits older than the configured retention.
func (s *Server) PurgeOldVisits(ctx context.Context) (int64, error) {
	n, err := s.store.PurgeVisitsBefore(ctx, time.Now().Add(-s.cfg.VisitRetention))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("privacy cleanup removed old visits", zap.Int64("count", n))
	}
	return n, nil
}
