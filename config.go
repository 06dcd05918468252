package naturesite

import "time"

// Options holds runtime configuration for a naturesite server. Site content
// settings (name, logo, SEO) live in the store's SiteConfig record and are
// edited from the admin dashboard; Options only covers what the process
// needs before the store exists.
type Options struct {
	URL  string // Canonical URL (default "http://localhost:3000")
	Addr string // Listen address (default ":3000")

	AdminPassword string // Required: admin login password
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	SeedPath string // Optional YAML fixture file; empty uses the embedded seed

	AnalyticsEnabled      bool          // Enable page-view tracking
	AnalyticsDatabasePath string        // Analytics SQLite path (default "data/analytics.db")
	AnalyticsRetention    time.Duration // How long visits are kept (default 365 days)
}

func (o *Options) setDefaults() {
	if o.URL == "" {
		o.URL = "http://localhost:3000"
	}
	if o.Addr == "" {
		o.Addr = ":3000"
	}
	if o.AnalyticsDatabasePath == "" {
		o.AnalyticsDatabasePath = "data/analytics.db"
	}
	if o.AnalyticsRetention == 0 {
		o.AnalyticsRetention = 365 * 24 * time.Hour
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithCustomRoutes registers additional routes on the Echo instance. The
// callback runs before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
