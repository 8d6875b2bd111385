package main

import (
	"context"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/Ko-stant/hex-fov-engine/internal/geometry"
	"github.com/Ko-stant/hex-fov-engine/internal/protocol"
)

// ProfilingConfig holds configuration for profiling
type ProfilingConfig struct {
	Enabled bool
	Port    string
}

// StartProfiling starts the pprof server on its own port
func StartProfiling(config ProfilingConfig) {
	if !config.Enabled {
		return
	}

	runtime.SetBlockProfileRate(1)
	runtime.SetMutexProfileFraction(1)

	go func() {
		log.Printf("Starting pprof server on :%s", config.Port)
		log.Printf("CPU profile: http://localhost:%s/debug/pprof/profile", config.Port)
		log.Printf("Heap profile: http://localhost:%s/debug/pprof/heap", config.Port)
		if err := http.ListenAndServe(":"+config.Port, nil); err != nil {
			log.Printf("pprof server failed: %v", err)
		}
	}()
}

// GetProfilingConfigFromEnv creates profiling config from environment variables
func GetProfilingConfigFromEnv() ProfilingConfig {
	port := os.Getenv("PPROF_PORT")
	if port == "" {
		port = "42069"
	}
	return ProfilingConfig{
		Enabled: os.Getenv("ENABLE_PROFILING") == "true",
		Port:    port,
	}
}

// PerformanceMetrics holds performance tracking data
type PerformanceMetrics struct {
	mu              sync.Mutex
	SweepsRun       int64
	WallsToggled    int64
	CellsVisible    int64
	AvgSweepTime    time.Duration
	AvgToggleTime   time.Duration
	PeakGoroutines  int
	PeakMemoryUsage uint64
	StartTime       time.Time
}

// NewPerformanceMetrics creates a new performance metrics tracker
func NewPerformanceMetrics() *PerformanceMetrics {
	return &PerformanceMetrics{
		StartTime: time.Now(),
	}
}

// TrackSweep records one field-of-view request
func (pm *PerformanceMetrics) TrackSweep(duration time.Duration, visible int) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.SweepsRun++
	pm.CellsVisible += int64(visible)
	pm.AvgSweepTime = (pm.AvgSweepTime*time.Duration(pm.SweepsRun-1) + duration) / time.Duration(pm.SweepsRun)
}

// TrackToggle records one wall toggle, including its re-sweep
func (pm *PerformanceMetrics) TrackToggle(duration time.Duration) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.WallsToggled++
	pm.AvgToggleTime = (pm.AvgToggleTime*time.Duration(pm.WallsToggled-1) + duration) / time.Duration(pm.WallsToggled)
}

// UpdateSystemMetrics updates system-level metrics
func (pm *PerformanceMetrics) UpdateSystemMetrics() {
	goroutines := runtime.NumGoroutine()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	pm.mu.Lock()
	defer pm.mu.Unlock()
	if goroutines > pm.PeakGoroutines {
		pm.PeakGoroutines = goroutines
	}
	if m.Alloc > pm.PeakMemoryUsage {
		pm.PeakMemoryUsage = m.Alloc
	}
}

// LogMetrics logs current performance metrics
func (pm *PerformanceMetrics) LogMetrics(logger Logger) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	logger.Printf("=== Performance Metrics ===")
	logger.Printf("Uptime: %v", time.Since(pm.StartTime))
	logger.Printf("Sweeps run: %d", pm.SweepsRun)
	logger.Printf("Walls toggled: %d", pm.WallsToggled)
	logger.Printf("Average sweep time: %v", pm.AvgSweepTime)
	logger.Printf("Average toggle time: %v", pm.AvgToggleTime)
	if pm.SweepsRun > 0 {
		logger.Printf("Average cells visible: %d", pm.CellsVisible/pm.SweepsRun)
	}
	logger.Printf("Peak goroutines: %d", pm.PeakGoroutines)
	logger.Printf("Peak memory usage: %d bytes", pm.PeakMemoryUsage)
}

// InstrumentedViewEngine wraps ViewEngine with performance tracking
type InstrumentedViewEngine struct {
	engine  ViewEngine
	metrics *PerformanceMetrics
	now     func() time.Time
}

func NewInstrumentedViewEngine(engine ViewEngine, metrics *PerformanceMetrics) *InstrumentedViewEngine {
	return &InstrumentedViewEngine{
		engine:  engine,
		metrics: metrics,
		now:     time.Now,
	}
}

func (ie *InstrumentedViewEngine) since(start time.Time) time.Duration {
	return ie.now().Sub(start)
}

func (ie *InstrumentedViewEngine) ProcessFieldOfView(req protocol.RequestFieldOfView) (*protocol.FieldOfViewComputed, error) {
	start := ie.now()
	result, err := ie.engine.ProcessFieldOfView(req)
	visible := 0
	if result != nil {
		visible = len(result.Visible)
	}
	ie.metrics.TrackSweep(ie.since(start), visible)
	ie.metrics.UpdateSystemMetrics()
	return result, err
}

func (ie *InstrumentedViewEngine) ProcessToggleWall(req protocol.RequestToggleWall) (*ToggleResult, error) {
	start := ie.now()
	result, err := ie.engine.ProcessToggleWall(req)
	ie.metrics.TrackToggle(ie.since(start))
	ie.metrics.UpdateSystemMetrics()
	return result, err
}

func (ie *InstrumentedViewEngine) Snapshot() protocol.Snapshot {
	return ie.engine.Snapshot()
}

func (ie *InstrumentedViewEngine) Preview(ctx context.Context, observers []geometry.HexCoords, radius int) ([]protocol.FieldOfViewComputed, error) {
	start := ie.now()
	views, err := ie.engine.Preview(ctx, observers, radius)
	if len(views) > 0 {
		share := ie.since(start) / time.Duration(len(views))
		for _, v := range views {
			ie.metrics.TrackSweep(share, len(v.Visible))
		}
	}
	return views, err
}

// StartMetricsReporting starts periodic metrics reporting
func StartMetricsReporting(metrics *PerformanceMetrics, logger Logger, interval time.Duration) {
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			metrics.LogMetrics(logger)
		}
	}()
}
