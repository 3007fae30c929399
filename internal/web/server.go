// Package web serves the portfolio page, its HTMX fragments and the motion
// field endpoints.
package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/orbs"
	"github.com/Zachkp/portfolio/internal/theme"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Options wires the server's collaborators.
type Options struct {
	Field    *orbs.Field
	Catalog  *content.Catalog
	Contact  *contact.Sender
	Logger   *zap.Logger
	OrbCount int
}

// Server is the portfolio HTTP server.
type Server struct {
	engine   *gin.Engine
	field    *orbs.Field
	catalog  *content.Catalog
	contact  *contact.Sender
	logger   *zap.Logger
	orbCount int
}

// New builds the gin engine and registers all routes.
func New(opts Options) (*Server, error) {
	if opts.Field == nil || opts.Catalog == nil || opts.Contact == nil {
		return nil, errors.New("web: field, catalog and contact sender are required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.OrbCount < 1 {
		opts.OrbCount = orbs.DefaultCount
	}
	opts.Field.Pin(opts.OrbCount)

	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	s := &Server{
		engine:   gin.New(),
		field:    opts.Field,
		catalog:  opts.Catalog,
		contact:  opts.Contact,
		logger:   opts.Logger,
		orbCount: opts.OrbCount,
	}

	r := s.engine
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery(), requestID(), accessLog(s.logger, newSalt()), motionSignals())
	r.StaticFS("/static", http.FS(static))

	r.GET("/", s.handleIndex)
	r.GET("/orbs", s.handleOrbs)
	r.GET("/api/orbs", s.handleOrbsJSON)
	r.GET("/contact-form", s.handleContactForm)
	r.POST("/contact", s.handleContact)
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// themeVars exposes the theme's main shades as CSS custom properties. The
// shades were validated when the palette was built.
func themeVars(th *theme.Theme) template.CSS {
	return template.CSS(fmt.Sprintf("--primary: %s; --primary-dark: %s; --accent: %s; --accent-soft: %s;",
		th.Primary.Shade(theme.MainShade), th.Primary.Shade(8), th.Accent.Shade(2), th.Accent.Shade(0)))
}

var templateFuncs = template.FuncMap{
	"year": func() int { return time.Now().Year() },
}

func (s *Server) renderOrbs(count int, env orbs.Environment) (template.HTML, error) {
	set, err := s.field.Generate(count, env)
	if err != nil {
		return "", err
	}
	return orbs.NewOverlay(set, env).HTML()
}

func (s *Server) handleIndex(c *gin.Context) {
	env := environment(c)
	overlay, err := s.renderOrbs(s.orbCount, env)
	if err != nil {
		s.logger.Error("render motion field", zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}

	th := s.field.Theme()
	c.HTML(http.StatusOK, "index.html", gin.H{
		"personal":     s.catalog.Personal,
		"hero":         s.catalog.Hero,
		"about":        s.catalog.About,
		"projects":     s.catalog.ShowcaseProjects(),
		"contact":      s.catalog.Contact,
		"socialLinks":  s.catalog.SocialLinks(),
		"contactLinks": s.catalog.ContactLinks(),
		"orbs":         overlay,
		"env":          env,
		"themeVars":    themeVars(th),
	})
}

// requestedCount reads the optional count parameter, defaulting to the
// configured count.
func (s *Server) requestedCount(c *gin.Context) (int, error) {
	v := c.Query("count")
	if v == "" {
		return s.orbCount, nil
	}
	return config.ParseOrbCount(v)
}

func (s *Server) handleOrbs(c *gin.Context) {
	count, err := s.requestedCount(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	env := environment(c)
	set, err := s.field.Generate(count, env)
	if err != nil {
		s.logger.Error("generate motion field", zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}

	var buf bytes.Buffer
	if err := orbs.NewOverlay(set, env).Render(&buf); err != nil {
		s.logger.Error("render motion field", zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

type orbsResponse struct {
	Requested   int              `json:"requested"`
	Effective   int              `json:"effective"`
	Environment orbs.Environment `json:"environment"`
	Palette     []string         `json:"palette"`
	Orbs        []orbs.Orb       `json:"orbs"`
}

func (s *Server) handleOrbsJSON(c *gin.Context) {
	count, err := s.requestedCount(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	env := environment(c)
	set, err := s.field.Generate(count, env)
	if err != nil {
		s.logger.Error("generate motion field", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate motion field"})
		return
	}
	palette, err := s.field.Palette()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build palette"})
		return
	}

	resp := orbsResponse{
		Requested:   count,
		Environment: env,
		Palette:     palette.CSS(),
		Orbs:        []orbs.Orb{},
	}
	if set != nil {
		resp.Effective = set.Count
		resp.Orbs = set.Orbs
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": s.catalog.Contact.FormTitle,
		"intro": s.catalog.Contact.FormIntro,
	})
}

// handleContact answers with HTML fragments and status 200 so HTMX swaps
// both outcomes into the form slot.
func (s *Server) handleContact(c *gin.Context) {
	var sub contact.Submission
	if err := c.ShouldBind(&sub); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error":    "Please check the form and try again.",
			"problems": contact.Problems(err),
		})
		return
	}

	if err := s.contact.Submit(c.Request.Context(), sub); err != nil {
		_ = c.Error(err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
