package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration shared by both services.
type Config struct {
	IntakePort       string
	EvaluatorPort    string
	CORSAllowOrigin  []string
	ObjectStoreType  string
	UploadDir        string
	AWSRegion        string
	S3Bucket         string
	S3Prefix         string
	DatabaseURL      string
	EvaluatorURL     string
	EvaluatorTimeout time.Duration
	Env              string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = databaseURLFromParts()
	}

	return Config{
		IntakePort:       getEnv("INTAKE_PORT", "5001"),
		EvaluatorPort:    getEnv("EVALUATOR_PORT", "8000"),
		CORSAllowOrigin:  splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:8501")),
		ObjectStoreType:  normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		UploadDir:        getEnv("UPLOAD_DIR", "uploads"),
		AWSRegion:        getEnv("AWS_REGION", ""),
		S3Bucket:         getEnv("S3_BUCKET", ""),
		S3Prefix:         getEnv("S3_PREFIX", ""),
		DatabaseURL:      dbURL,
		EvaluatorURL:     getEnv("EVALUATOR_URL", "http://localhost:8000"),
		EvaluatorTimeout: getEnvSeconds("EVALUATOR_TIMEOUT_SECONDS", 20*time.Second),
		Env:              env,
	}
}

// databaseURLFromParts assembles a Postgres URL from the POSTGRES_* variables,
// so either form of database configuration works.
func databaseURLFromParts() string {
	host := getEnv("POSTGRES_HOST", "")
	if host == "" {
		// No host configured means no database; dev falls back to memory repos.
		return ""
	}
	user := getEnv("POSTGRES_USER", "postgres")
	password := getEnv("POSTGRES_PASSWORD", "postgres")
	port := getEnv("POSTGRES_PORT", "5432")
	name := getEnv("POSTGRES_DB", "interviewdb")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		url.QueryEscape(user), url.QueryEscape(password), host, port, name)
}

func getEnvSeconds(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return time.Duration(parsed) * time.Second
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
