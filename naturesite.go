// Package naturesite is the engine behind the Navigating Nature community
// site: public content pages (home, about, services, blog, calendar, map,
// community, contact) and a session-gated admin dashboard for posts, events,
// settings, and submission moderation.
//
// All site data lives in an in-memory Store seeded from fixtures; nothing is
// persisted across restarts. Page views are tracked in a separate SQLite
// analytics database when enabled. Templates are user-provided templ
// components wired in through the ViewFuncs struct.
package naturesite

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/navigatingnature/naturesite/analytics"
)

// PageData carries the per-request context every page component needs: the
// current site settings, the head metadata snapshot, and the CSRF token for
// forms.
type PageData struct {
	Site SiteConfig
	Meta PageMeta
	CSRF string
	URL  string // canonical base URL
}

// DashboardStats are the counters on the admin overview page.
type DashboardStats struct {
	Posts     int
	Published int
	Events    int
	Pending   int
	Approved  int
}

// ViewFuncs holds the templ components the engine calls when rendering
// pages. This keeps all presentation outside the engine; handlers only pick
// data and a component.
type ViewFuncs struct {
	Home        func(PageData, []BlogPost, []Service) templ.Component
	About       func(PageData) templ.Component
	Services    func(PageData, []Service) templ.Component
	BlogIndex   func(PageData, []BlogPost, string, []string) templ.Component
	BlogPost    func(PageData, BlogPost, []BlogPost) templ.Component
	Calendar    func(PageData, MonthGrid, string, string) templ.Component
	MapExplorer func(PageData, []MapRegion) templ.Component
	Community   func(PageData, []UserSubmission, string) templ.Component
	Contact     func(PageData) templ.Component

	AdminLogin      func(PageData, bool) templ.Component
	AdminDashboard  func(PageData, DashboardStats) templ.Component
	AdminPosts      func(PageData, []BlogPost, BlogPost, string) templ.Component
	AdminEvents     func(PageData, []CalendarEvent, string) templ.Component
	AdminModeration func(PageData, []UserSubmission, string) templ.Component
	AdminSettings   func(PageData, string) templ.Component

	NotFound    func(PageData) templ.Component
	ServerError func(PageData) templ.Component
}

// App wires together the store, metadata sync, handlers, middleware, and
// user-provided templates.
type App struct {
	Options Options
	Echo    *echo.Echo
	Store   *Store
	Meta    *MetadataSync
	Views   ViewFuncs

	loginLimiter   *RateLimiter
	submitLimiter  *RateLimiter
	analyticsStore *analytics.Store
	customRoutes   []func(*App)
	staticDir      string
}

// New creates a naturesite App with the given options and view functions.
func New(opts Options, views ViewFuncs, extra ...Option) *App {
	opts.setDefaults()

	a := &App{
		Options:   opts,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range extra {
		opt(a)
	}

	return a
}

// Start seeds the store, wires middleware and routes, and runs the server
// until it is shut down.
func (a *App) Start() error {
	if a.Options.AdminPassword == "" {
		return fmt.Errorf("naturesite: AdminPassword is required")
	}
	if a.Options.SessionSecret == "" {
		return fmt.Errorf("naturesite: SessionSecret is required")
	}

	seed, err := a.loadSeed()
	if err != nil {
		return fmt.Errorf("naturesite: load seed: %w", err)
	}
	a.Store = NewStore(seed)
	a.Meta = NewMetadataSync(a.Store)

	a.loginLimiter = NewRateLimiter(5, time.Minute)
	a.submitLimiter = NewRateLimiter(10, time.Hour)

	if a.Options.AnalyticsEnabled {
		store, err := analytics.NewStore(a.Options.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("naturesite: init analytics: %w", err)
		}
		a.analyticsStore = store
		stop := store.StartCleanupScheduler(a.Options.AnalyticsRetention, 24*time.Hour)
		defer stop()
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Options.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) loadSeed() (Seed, error) {
	if a.Options.SeedPath != "" {
		return LoadSeedFile(a.Options.SeedPath)
	}
	return DefaultSeed()
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/public/site.css", a.handleStylesheet)
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/about/", a.handleAbout)
	e.GET("/services/", a.handleServices)
	e.GET("/blog/", a.handleBlogIndex)
	e.GET("/blog/:id/", a.handleBlogPost)
	e.GET("/calendar/", a.handleCalendar)
	e.GET("/calendar/export.ics", a.handleCalendarExport)
	e.GET("/map/", a.handleMap)
	e.GET("/community/", a.handleCommunity)
	e.POST("/community/submit/", a.handleCommunitySubmit)
	e.GET("/contact/", a.handleContact)

	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.GET("/admin/posts/", a.handleAdminPosts)
	e.GET("/admin/posts/:id/", a.handleAdminEditPost)
	e.POST("/admin/posts/save/", a.handleAdminSavePost)
	e.POST("/admin/posts/:id/delete/", a.handleAdminDeletePost)
	e.GET("/admin/events/", a.handleAdminEvents)
	e.POST("/admin/events/save/", a.handleAdminSaveEvent)
	e.POST("/admin/events/:id/delete/", a.handleAdminDeleteEvent)
	e.GET("/admin/moderation/", a.handleAdminModeration)
	e.POST("/admin/moderation/:id/approve/", a.handleAdminApprove)
	e.POST("/admin/moderation/:id/reject/", a.handleAdminReject)
	e.GET("/admin/settings/", a.handleAdminSettings)
	e.POST("/admin/settings/save/", a.handleAdminSaveSettings)
	e.POST("/admin/settings/logo/", a.handleAdminLogoUpload)

	if a.analyticsStore != nil {
		e.GET("/admin/analytics/", a.handleAdminAnalytics)
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.analyticsStore != nil {
		return a.analyticsStore.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("naturesite: required environment variable %s is not set", key)
	}
	return v
}
