package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/markmind/markmind/internal/layout"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration

	// PDF
	PDFFallbackPdftotext bool

	// Layout overrides
	MaxNodeWidth float64
	GapX         float64
	GapY         float64
	OriginX      float64
	OriginY      float64
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("MARKMIND_API_KEY"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),

		MaxNodeWidth: envFloat("LAYOUT_MAX_NODE_WIDTH", 0),
		GapX:         envFloat("LAYOUT_GAP_X", 0),
		GapY:         envFloat("LAYOUT_GAP_Y", 0),
		OriginX:      envFloat("LAYOUT_ORIGIN_X", 0),
		OriginY:      envFloat("LAYOUT_ORIGIN_Y", 0),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("MARKMIND_API_KEY is required")
	}
	return nil
}

// LayoutConfig builds the layout configuration with any overrides
// applied. The result is always fully populated: it starts from the
// layout defaults so downstream consumers (the SVG renderer reads font
// sizes and paddings directly) never see zero-valued fields.
func (c Config) LayoutConfig() layout.Config {
	lc := layout.DefaultConfig()
	if c.MaxNodeWidth > 0 {
		lc.MaxNodeWidth = c.MaxNodeWidth
	}
	if c.GapX > 0 {
		lc.GapX = c.GapX
	}
	if c.GapY > 0 {
		lc.GapY = c.GapY
	}
	return lc
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
