package web

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/orbs"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	environmentKey  = "orbs_environment"
)

func newSalt() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand does not fail on supported platforms
		panic("web: generate salt: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// hashIP keeps client addresses out of the logs while staying stable per process.
func hashIP(ip, salt string) string {
	h := sha256.New()
	h.Write([]byte(ip + salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func isAssetPath(path string) bool {
	return strings.HasPrefix(path, "/static/") ||
		strings.HasPrefix(path, "/images/") ||
		strings.HasPrefix(path, "/favicon")
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog(logger *zap.Logger, salt string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if isAssetPath(path) && c.Writer.Status() < 400 {
			return
		}
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client", hashIP(c.ClientIP(), salt)),
			zap.String("request_id", c.GetString(requestIDKey)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		switch {
		case c.Writer.Status() >= 500:
			logger.Error("request", fields...)
		case c.Writer.Status() >= 400:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}

// motionSignals asks browsers for the motion field's client hints and stores
// the resolved environment on the context. Asset requests are skipped.
func motionSignals() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isAssetPath(c.Request.URL.Path) {
			c.Next()
			return
		}
		c.Header("Accept-CH", acceptedHints)
		c.Header("Critical-CH", hintReducedMotion)
		c.Writer.Header().Add("Vary", acceptedHints)
		c.Set(environmentKey, environmentFrom(c.Request))
		c.Next()
	}
}

func environment(c *gin.Context) orbs.Environment {
	if v, ok := c.Get(environmentKey); ok {
		if env, ok := v.(orbs.Environment); ok {
			return env
		}
	}
	return environmentFrom(c.Request)
}
