package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries the service's environment-driven settings.
type Config struct {
	ListenAddr        string
	UploadDir         string
	MaxFileSize       int64
	AllowedExtensions []string
	WorkerCount       int
	JobQueueSize      int
	ProcessingDelay   time.Duration

	SupabaseStorageURL string
	SupabaseKey        string
	SupabaseBucket     string
}

// Load reads configuration from the environment, applying defaults that
// match the original deployment.
func Load() Config {
	return Config{
		ListenAddr:         getEnv("LISTEN_ADDR", ":8080"),
		UploadDir:          getEnv("UPLOAD_DIR", "./uploads"),
		MaxFileSize:        getEnvInt64("MAX_FILE_SIZE", 100*1024*1024),
		AllowedExtensions:  splitList(getEnv("ALLOWED_EXTENSIONS", "mp3,wav,mp4,mov")),
		WorkerCount:        getEnvInt("WORKER_COUNT", 4),
		JobQueueSize:       getEnvInt("JOB_QUEUE_SIZE", 64),
		ProcessingDelay:    getEnvDuration("PROCESSING_DELAY", 2*time.Second),
		SupabaseStorageURL: os.Getenv("SUPABASE_STORAGE_URL"),
		SupabaseKey:        os.Getenv("SUPABASE_SERVICE_KEY"),
		SupabaseBucket:     getEnv("SUPABASE_BUCKET", "interview-recordings"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
