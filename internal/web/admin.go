package web

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/Zachkp/cyber-portfolio/internal/config"
	"github.com/Zachkp/cyber-portfolio/internal/store"
)

type adminAuth struct {
	token    string
	salt     string
	username string
	password string
}

func newAdminAuth(cfg config.AdminConfig) *adminAuth {
	a := &adminAuth{
		token:    generateToken(),
		salt:     generateToken(),
		username: cfg.Username,
		password: cfg.Password,
	}

	// Default credentials for development only.
	if a.username == "" && gin.Mode() == gin.DebugMode {
		a.username = "admin"
		log.Println("WARNING: Using default admin username. Set ADMIN_USERNAME environment variable.")
	}
	if a.password == "" && gin.Mode() == gin.DebugMode {
		a.password = "admin123"
		log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
	}

	log.Printf("Admin access available at: /admin/login")
	return a
}

func generateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatal("Failed to generate admin token:", err)
	}
	return hex.EncodeToString(b)
}

// hashIP is stable per IP for the life of the process.
func (a *adminAuth) hashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + a.salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func (a *adminAuth) check(username, password string) bool {
	if a.password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

func (s *Server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.admin.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

var untrackedPrefixes = []string{"/static/", "/images/", "/admin/", "/favicon", "/privacy", "/healthz", "/api/"}

// visitorTrackingMiddleware records page views with hashed IPs. Requests
// carrying DNT: 1 are never recorded.
func (s *Server) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		visit := store.Visit{
			HashedIP:  s.admin.hashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Timestamp: time.Now(),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.db.RecordVisit(ctx, visit); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
		c.Next()
	}
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if s.admin.check(c.PostForm("username"), c.PostForm("password")) {
			c.SetCookie("admin_token", s.admin.token, 3600*24, "/admin", "", false, true)
			log.Printf("Admin login successful from %s", s.admin.hashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
		log.Printf("Failed admin login attempt from %s", s.admin.hashIP(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie("admin_token", "", -1, "/admin", "", false, true)
		log.Printf("Admin logout from %s", s.admin.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(s.adminAuthMiddleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		ctx := c.Request.Context()
		stats, err := s.db.Stats(ctx, time.Now())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		messages, err := s.db.Messages(ctx, 50)
		if err != nil {
			log.Printf("Error loading contact messages: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load messages",
			})
			return
		}

		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"title":    "Dashboard",
			"stats":    stats,
			"messages": messages,
		})
	})

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.db.Stats(c.Request.Context(), time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.GET("/api/messages", func(c *gin.Context) {
		messages, err := s.db.Messages(c.Request.Context(), 200)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, messages)
	})

	adminGroup.DELETE("/messages/:id", func(c *gin.Context) {
		id := c.Param("id")
		err := s.db.DeleteMessage(c.Request.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		if err != nil {
			log.Printf("Error deleting message %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
			return
		}

		log.Printf("Message %s deleted by admin from %s", id, s.admin.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
	})

	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		go s.cleanupOldVisitorData(context.Background())
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup initiated"})
	})

	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.db.Stats(c.Request.Context(), time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		log.Printf("Admin stats exported by %s", s.admin.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}
