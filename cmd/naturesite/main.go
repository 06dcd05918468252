package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/navigatingnature/naturesite"
	"github.com/navigatingnature/naturesite/views"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env file: %v", err)
	}

	opts := naturesite.Options{
		URL:  naturesite.EnvOr("SITE_URL", "http://localhost:3000"),
		Addr: naturesite.EnvOr("ADDR", ":3000"),

		AdminPassword: naturesite.MustEnv("ADMIN_PASSWORD"),
		SessionSecret: naturesite.MustEnv("ADMIN_SESSION_SECRET"),
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",

		SeedPath: os.Getenv("SEED_PATH"),

		AnalyticsEnabled:      os.Getenv("ANALYTICS_ENABLED") == "true",
		AnalyticsDatabasePath: os.Getenv("ANALYTICS_DB_PATH"),
	}

	if v := os.Getenv("ANALYTICS_RETENTION_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days < 1 {
			log.Fatalf("invalid ANALYTICS_RETENTION_DAYS: %q", v)
		}
		opts.AnalyticsRetention = time.Duration(days) * 24 * time.Hour
	}

	app := naturesite.New(opts, views.Funcs())
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
