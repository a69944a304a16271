// Package web serves the portfolio: the composed page, HTMX section
// fragments, the contact endpoint and the admin pages.
package web

import (
	"context"
	"io/fs"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/Zachkp/cyber-portfolio/internal/config"
	"github.com/Zachkp/cyber-portfolio/internal/contact"
	"github.com/Zachkp/cyber-portfolio/internal/portfolio"
	"github.com/Zachkp/cyber-portfolio/internal/store"
)

// Server holds everything the handlers need.
type Server struct {
	cfg      config.Config
	content  *portfolio.Store
	db       *store.Store
	sender   contact.Sender
	renderer *Renderer
	images   fs.FS
	admin    *adminAuth
}

// New wires a server. db may be nil, which disables visitor tracking, the
// outbox transport and the admin pages.
func New(cfg config.Config, content *portfolio.Store, db *store.Store) (*Server, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	sender, err := NewSender(cfg, db)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      cfg,
		content:  content,
		db:       db,
		sender:   sender,
		renderer: renderer,
	}
	if info, err := os.Stat(cfg.ImagesDir); err == nil && info.IsDir() {
		s.images = os.DirFS(cfg.ImagesDir)
	}
	if db != nil {
		s.admin = newAdminAuth(cfg.Admin)
	}

	return s, nil
}

// NewSender builds the contact transport chain named in the config.
func NewSender(cfg config.Config, db *store.Store) (contact.Sender, error) {
	var chain contact.Multi
	for _, name := range cfg.Contact.Transports {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "simulated", "":
			chain = append(chain, contact.Simulated{Delay: cfg.Contact.Delay})
		case "smtp":
			chain = append(chain, contact.NewSMTP(cfg.SMTP))
		case "outbox":
			if db == nil {
				return nil, errors.New("outbox transport needs a database")
			}
			chain = append(chain, contact.Outbox{Store: db})
		default:
			return nil, errors.Errorf("unknown contact transport %q", name)
		}
	}

	if len(chain) == 0 {
		return contact.Simulated{Delay: cfg.Contact.Delay}, nil
	}
	if len(chain) == 1 {
		return chain[0], nil
	}
	return chain, nil
}

// Engine builds the gin engine with every route registered.
func (s *Server) Engine() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(s.renderer.tmpl)

	if s.db != nil && s.cfg.Tracking.Enabled {
		r.Use(s.visitorTrackingMiddleware())
	}

	r.StaticFS("/static", http.FS(staticFS()))
	if s.images != nil {
		r.StaticFS("/images", http.FS(s.images))
	}
	r.GET("/resume.pdf", s.handleResume)

	r.GET("/", s.handleIndex)
	r.GET("/sections/:id", s.handleSection)
	r.GET("/contact-form", s.handleContactForm)
	r.POST("/contact", s.handleContact)
	r.GET("/api/portfolio", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.content.Data())
	})
	r.GET("/healthz", s.handleHealth)

	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":     "Privacy Policy",
			"retention": s.cfg.Tracking.Retention,
		})
	})

	if s.admin != nil {
		s.setupAdminRoutes(r)
	}

	return r
}

// Start runs background maintenance for as long as ctx lives.
func (s *Server) Start(ctx context.Context) {
	if s.db == nil || !s.cfg.Tracking.Enabled || s.cfg.Tracking.Retention <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			s.cleanupOldVisitorData(ctx)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func (s *Server) cleanupOldVisitorData(ctx context.Context) {
	if s.cfg.Tracking.Retention <= 0 {
		return
	}
	n, err := s.db.Cleanup(ctx, time.Now().Add(-s.cfg.Tracking.Retention))
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Privacy cleanup: Removed %d visitor records older than %s", n, s.cfg.Tracking.Retention)
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	page, err := Compose(s.content, s.images, s.cfg.Spring)
	if err != nil {
		log.Printf("Error composing page: %v", err)
		c.String(http.StatusInternalServerError, "page unavailable")
		return
	}
	c.HTML(http.StatusOK, "index.html", page)
}

// handleSection returns one section as an HTMX fragment.
func (s *Server) handleSection(c *gin.Context) {
	id := c.Param("id")
	if !isSection(id) {
		c.String(http.StatusNotFound, "unknown section")
		return
	}

	page, err := Compose(s.content, s.images, s.cfg.Spring)
	if err != nil {
		log.Printf("Error composing section %s: %v", id, err)
		c.String(http.StatusInternalServerError, "section unavailable")
		return
	}
	c.HTML(http.StatusOK, id+".html", page)
}

func (s *Server) handleResume(c *gin.Context) {
	info, err := os.Stat(s.cfg.ResumePath)
	if err != nil || info.IsDir() {
		c.String(http.StatusNotFound, "resume not available")
		return
	}
	c.File(s.cfg.ResumePath)
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.db != nil {
		if err := s.db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
