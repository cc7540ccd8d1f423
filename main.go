package main

import (
	"context"
	"errors"
	"html/template"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"github.com/saineshnakra/portfolio/internal/contact"
	"github.com/saineshnakra/portfolio/internal/content"
	"github.com/saineshnakra/portfolio/internal/particles"
	"github.com/saineshnakra/portfolio/internal/store"
)

// app is everything the handlers share.
type app struct {
	site     *content.Site
	store    *store.Store
	provider contact.Provider
	timeout  time.Duration
	admin    *adminAuth
}

// contactView is what the contact fragment renders.
type contactView struct {
	Fields  contact.Message
	Notice  string
	Success bool
}

func main() {
	cfg := loadConfig()

	site, err := content.Load()
	if err != nil {
		log.Fatal("Failed to load content: ", err)
	}

	db, err := store.Open(cfg.DatabasePath, generateToken())
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer db.Close()

	a := &app{
		site:     site,
		store:    db,
		provider: cfg.provider(),
		timeout:  cfg.DeliveryTimeout,
		admin:    newAdminAuth(cfg.AdminUsername, cfg.AdminPassword),
	}

	// Clean up old visitor data for privacy compliance
	go a.cleanupVisitors()

	r := gin.Default()
	a.setupRoutes(r)

	log.Printf("Contact delivery via %s (timeout %s)", cfg.DeliveryProvider, cfg.DeliveryTimeout)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"ago": humanize.Time,
		"year": func() int {
			return time.Now().Year()
		},
		"join": strings.Join,
		"section": func(site *content.Site, id string) content.Section {
			sec, _ := site.Section(id)
			return sec
		},
	}
}

func (a *app) setupRoutes(r *gin.Engine) {
	r.SetFuncMap(templateFuncs())
	r.LoadHTMLGlob("templates/*")

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	r.Use(a.visitorTracking())

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"site":    a.site,
			"contact": contactView{},
		})
	})

	// HTMX contact form fragment
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", contactView{})
	})

	// Handle contact form submission with HTMX
	r.POST("/contact", a.submitContact)

	// Still frame of the particle field, for no-JS visitors and link previews
	r.GET("/backdrop.png", a.backdrop)

	a.setupAdminRoutes(r)
}

func (a *app) submitContact(c *gin.Context) {
	var msg contact.Message
	if err := c.ShouldBind(&msg); err != nil {
		log.Printf("Error binding contact form: %v", err)
		msg = contact.Message{Name: c.PostForm("name"), Email: c.PostForm("email"), Body: c.PostForm("message")}
		c.HTML(http.StatusBadRequest, "contact.html", contactView{Fields: msg, Notice: contact.FailureNotice})
		return
	}

	form := contact.NewForm(a.provider, a.timeout)
	form.Set(msg)
	err := form.Submit(c.Request.Context())
	if errors.Is(err, contact.ErrInvalid) {
		c.HTML(http.StatusUnprocessableEntity, "contact.html", contactView{
			Fields: msg,
			Notice: "Please fill in your name, email and message.",
		})
		return
	}

	sub := store.Submission{Name: msg.Name, Email: msg.Email, Message: msg.Body, Status: store.StatusSent}
	if err != nil {
		sub.Status = store.StatusFailed
		sub.Error = err.Error()
	}
	sub, recErr := a.store.RecordSubmission(c.Request.Context(), sub)
	if recErr != nil {
		log.Printf("Error recording submission: %v", recErr)
	}
	if err != nil {
		log.Printf("Contact submission %s failed: %v", sub.ID, err)
	} else {
		log.Printf("Contact submission %s sent from %s", sub.ID, msg.Name)
	}

	c.HTML(http.StatusOK, "contact.html", contactView{
		Fields:  form.Fields(),
		Notice:  form.Notice(),
		Success: form.Status() == contact.StatusSent,
	})
}

const (
	maxBackdropWidth  = 2560
	maxBackdropHeight = 1600
	maxBackdropFrames = 600
)

func (a *app) backdrop(c *gin.Context) {
	w := queryInt(c, "w", 1200, 1, maxBackdropWidth)
	h := queryInt(c, "h", 630, 1, maxBackdropHeight)
	frames := queryInt(c, "frames", 1, 1, maxBackdropFrames)
	seed, err := strconv.ParseUint(c.DefaultQuery("seed", "1"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid seed")
		return
	}

	img := particles.RenderStill(w, h, frames, seed, particles.DefaultConfig())

	c.Header("Content-Type", "image/png")
	c.Header("Cache-Control", "public, max-age=86400")
	c.Status(http.StatusOK)
	if err := png.Encode(c.Writer, img); err != nil {
		log.Printf("Error encoding backdrop: %v", err)
	}
}

// queryInt reads an integer query parameter clamped to [lo, hi].
func queryInt(c *gin.Context, key string, fallback, lo, hi int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		v = fallback
	}
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// Privacy-conscious visitor tracking middleware
func (a *app) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip tracking for assets and admin pages
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet ||
			strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/images/") ||
			strings.HasPrefix(path, "/admin/") ||
			strings.HasPrefix(path, "/favicon") ||
			path == "/backdrop.png" {
			c.Next()
			return
		}

		// Respect Do Not Track header
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := a.store.RecordVisit(ctx, ip, ua, path); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
		c.Next()
	}
}

func (a *app) cleanupVisitors() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	removed, err := a.store.CleanupVisitors(ctx, 365*24*time.Hour)
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("Privacy cleanup: Removed %d visitor records older than 12 months", removed)
	}
}
