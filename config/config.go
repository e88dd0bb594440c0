package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	// Static site
	StaticDir    string
	ProjectsFile string
	// Outbound mail relay
	MailDriver  string // "smtp" or "log"
	SMTPHost    string
	SMTPPort    string
	EmailUser   string // sender account identity, also used as From
	EmailPass   string // sender account secret (app password)
	EmailTo     string // destination recipient
	SendTimeout time.Duration
	// HTTP
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "3000"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		StaticDir:    strings.TrimRight(getEnv("STATIC_DIR", "public"), "/"),
		ProjectsFile: getEnv("PROJECTS_FILE", "data/projects.yaml"),
		// Outbound mail relay
		MailDriver:  strings.ToLower(getEnv("MAIL_DRIVER", "smtp")),
		SMTPHost:    getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:    getEnv("SMTP_PORT", "587"),
		EmailUser:   getEnv("EMAIL_USER", ""),
		EmailPass:   getEnv("EMAIL_PASS", ""),
		EmailTo:     getEnv("EMAIL_TO", ""),
		SendTimeout: time.Duration(getEnvInt("SMTP_TIMEOUT_SECONDS", 10)) * time.Second,
		// HTTP
		AllowedOrigins:  getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://127.0.0.1:3000"}),
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 5)) * time.Second,
	}

	if cfg.EmailUser == "" || cfg.EmailPass == "" {
		log.Println("WARNING: EMAIL_USER/EMAIL_PASS missing. Contact form submissions will fail.")
	}
	if cfg.EmailTo == "" {
		log.Println("WARNING: EMAIL_TO missing. Contact form submissions will fail.")
	}

	return cfg, nil
}

// IsRelease reports whether gin runs in release mode.
func (c *Config) IsRelease() bool {
	return c.GinMode == "release"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil && intVal > 0 {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blank entries
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.TrimRight(part, "/"))
		}
	}
	return out
}
