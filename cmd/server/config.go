package main

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ServerConfig holds the settings read from the environment
type ServerConfig struct {
	Port          string
	BoardPath     string
	Radius        int
	MaxRadius     int
	Trace         bool
	Profiling     ProfilingConfig
	MetricsPeriod time.Duration
}

// GetServerConfigFromEnv creates the server config from environment variables
func GetServerConfigFromEnv() (ServerConfig, error) {
	cfg := ServerConfig{
		Port:          os.Getenv("APP_PORT"),
		BoardPath:     os.Getenv("BOARD_PATH"),
		Radius:        8,
		MaxRadius:     32,
		Trace:         os.Getenv("FOV_TRACE") == "true",
		Profiling:     GetProfilingConfigFromEnv(),
		MetricsPeriod: time.Minute,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if v := os.Getenv("FOV_RADIUS"); v != "" {
		r, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("FOV_RADIUS: %w", err)
		}
		cfg.Radius = r
	}
	if v := os.Getenv("FOV_MAX_RADIUS"); v != "" {
		r, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("FOV_MAX_RADIUS: %w", err)
		}
		cfg.MaxRadius = r
	}
	if cfg.Radius < 0 || cfg.Radius > cfg.MaxRadius {
		return cfg, fmt.Errorf("FOV_RADIUS %d outside 0..%d", cfg.Radius, cfg.MaxRadius)
	}

	if v := os.Getenv("METRICS_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("METRICS_INTERVAL: %w", err)
		}
		cfg.MetricsPeriod = d
	}
	return cfg, nil
}
