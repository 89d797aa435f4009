package config

import "os"

type Config struct {
	HTTPAddr string

	// Record store (absent = integration disabled)
	SupabaseURL string
	SupabaseKey string

	// Transactional email (absent = emails dropped with a log line)
	ResendAPIKey string
	FromEmail    string
	StaffEmail   string

	// Client-side telemetry script injection (flags surfaced by monitoring)
	AnalyticsWebsiteID string
	AnalyticsDomain    string
	SentryDSN          string

	// Marketing photo directory and its public URL prefix
	PhotosDir string
	PhotosURL string

	// GELF UDP log forwarding
	GelfAddr string

	// Staff console
	JWTSecret  string
	AdminEmail string
	AdminPass  string
}

func Load() *Config {
	return &Config{
		HTTPAddr:           getEnv("SITE_ADDR", ":8080"),
		SupabaseURL:        getEnv("SUPABASE_URL", ""),
		SupabaseKey:        getEnv("SUPABASE_ANON_KEY", ""),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		FromEmail:          getEnv("EMAIL_FROM", "Wonderland Kindergarten <hello@wonderland.sc.ke>"),
		StaffEmail:         getEnv("STAFF_EMAIL", ""),
		AnalyticsWebsiteID: getEnv("ANALYTICS_WEBSITE_ID", ""),
		AnalyticsDomain:    getEnv("ANALYTICS_DOMAIN", ""),
		SentryDSN:          getEnv("SENTRY_DSN", ""),
		PhotosDir:          getEnv("PHOTOS_DIR", "./public/images/marketing"),
		PhotosURL:          getEnv("PHOTOS_URL", "/images/marketing"),
		GelfAddr:           getEnv("GELF_ADDR", ""),
		JWTSecret:          getEnv("SITE_JWT_SECRET", "wonderland-dev-secret-change-me"),
		AdminEmail:         getEnv("STAFF_ADMIN_EMAIL", ""),
		AdminPass:          getEnv("STAFF_ADMIN_PASS", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
