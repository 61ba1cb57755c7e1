package main

import (
	"os"

	"github.com/patricktheassistant/cyon-movie-night/api"
	"github.com/patricktheassistant/cyon-movie-night/events"
)

type Config struct {
	Host       string
	Port       string
	Env        api.Environment
	Event      events.Info
	AdminEmail string
	Resend     ResendConfig
}

type ResendConfig struct {
	// Empty APIKey means demo mode: emails are logged, not sent.
	APIKey         string
	PrimarySender  string
	FallbackSender string
}

func getConfigFromEnv() Config {
	return Config{
		Host: getEnvOrDefault("HOST", "0.0.0.0"),
		Port: getEnvOrDefault("PORT", "8080"),
		Env:  api.ParseEnvironment(getEnvOrDefault("ENV", "local")),
		Event: events.Info{
			Theme: getEnvOrDefault("EVENT_THEME", "CYON Movie Night"),
			Date:  getEnvOrDefault("EVENT_DATE", "2025-11-21"),
			Time:  getEnvOrDefault("EVENT_TIME", "18:00"),
			Venue: getEnvOrDefault("EVENT_VENUE", "New Church Hall, St. Cyprian Catholic Church, Oko-Oba Agege"),
		},
		AdminEmail: getEnvOrDefault("ADMIN_EMAIL", "tinnievisuals@gmail.com"),
		Resend: ResendConfig{
			APIKey:         getEnvOrDefault("RESEND_API_KEY", ""),
			PrimarySender:  getEnvOrDefault("PRIMARY_SENDER", "CYON Movie Night <email@patricktheassistant.com>"),
			FallbackSender: getEnvOrDefault("FALLBACK_SENDER", "onboarding@resend.dev"),
		},
	}
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return defaultVal
}
