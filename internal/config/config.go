package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Render  RenderConfig
	Output  OutputConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	RequestTimeout  time.Duration
}

// RenderConfig bounds the images the preview service will produce.
type RenderConfig struct {
	MaxPixels   int
	DefaultSize int
	MaxUpscale  int
	Workers     int
	// MaxConcurrent caps simultaneous image renders; further requests
	// queue up to the request timeout
	MaxConcurrent int
}

// OutputConfig controls where noisegen writes its images.
type OutputConfig struct {
	Dir     string
	Upscale int
}

type LoggingConfig struct {
	Level      string
	Format     string
	Structured bool
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            getEnvStr("PORT", "8080"),
			ReadTimeout:     getEnvDuration("READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:     getEnvDuration("IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
			RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		},
		Render: RenderConfig{
			MaxPixels:     getEnvInt("RENDER_MAX_PIXELS", 1024*1024),
			DefaultSize:   getEnvInt("RENDER_DEFAULT_SIZE", 256),
			MaxUpscale:    getEnvInt("RENDER_MAX_UPSCALE", 8),
			Workers:       getEnvInt("RENDER_WORKERS", 4),
			MaxConcurrent: getEnvInt("RENDER_MAX_CONCURRENT", 4),
		},
		Output: OutputConfig{
			Dir:     getEnvStr("NOISEGEN_OUT_DIR", "./images"),
			Upscale: getEnvInt("NOISEGEN_UPSCALE", 1),
		},
		Logging: LoggingConfig{
			Level:      getEnvStr("LOG_LEVEL", "info"),
			Format:     getEnvStr("LOG_FORMAT", "text"),
			Structured: getEnvBool("LOG_STRUCTURED", false),
		},
	}
}

func getEnvStr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
