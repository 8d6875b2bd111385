package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/coder/websocket"

	"github.com/Ko-stant/hex-fov-engine/internal/geometry"
	"github.com/Ko-stant/hex-fov-engine/internal/protocol"
	"github.com/Ko-stant/hex-fov-engine/internal/web/views"
	"github.com/Ko-stant/hex-fov-engine/internal/ws"
)

func main() {
	cfg, err := GetServerConfigFromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	board := geometry.DevBoard()
	if cfg.BoardPath != "" {
		def, err := geometry.LoadBoardFromFile(cfg.BoardPath)
		if err != nil {
			log.Fatalf("board: %v", err)
		}
		board = geometry.CreateBoard(def)
	}
	log.Printf("board %s (%q) radius %d with %d walls", board.ID, board.Name, board.Radius, len(board.Opaque))

	logger := NewLogger()
	metrics := NewPerformanceMetrics()
	StartProfiling(cfg.Profiling)
	if cfg.Profiling.Enabled {
		StartMetricsReporting(metrics, logger, cfg.MetricsPeriod)
	}

	core, err := NewViewEngine(board, cfg.Radius, cfg.MaxRadius, NewVisibilityCalculator(logger, cfg.Trace), logger)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}
	engine := NewInstrumentedViewEngine(core, metrics)

	hub := ws.NewHub()
	broadcaster := NewBroadcaster(hub, NewSequenceGenerator())
	handlers := NewTestableHandlers(engine, broadcaster, logger)

	log.Printf("listening on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, newMux(engine, hub, handlers, logger)))
}

func newMux(engine ViewEngine, hub *ws.Hub, handlers *TestableHandlers, logger Logger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/stream", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		hub.Add(conn)
		defer hub.Remove(conn)
		defer conn.Close(websocket.StatusNormalClosure, "")

		ctx := r.Context()
		if hello, err := encodePatch(0, "Snapshot", engine.Snapshot()); err == nil {
			_ = ws.Send(ctx, conn, hello)
		}

		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				return
			}
			var env protocol.IntentEnvelope
			if err := json.Unmarshal(data, &env); err == nil && env.Type == "RequestSnapshot" {
				if out, err := encodePatch(0, "Snapshot", engine.Snapshot()); err == nil {
					_ = ws.Send(ctx, conn, out)
				}
				continue
			}
			if err := handlers.HandleWebSocketMessage(data); err != nil {
				if out, err := encodePatch(0, "RequestRejected", rejection(err)); err == nil {
					_ = ws.Send(ctx, conn, out)
				}
			}
		}
	})

	// /api/fov?at=0,0&at=2,-1&radius=5 previews views without moving the observer.
	mux.HandleFunc("/api/fov", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		observers, err := parseObservers(q["at"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		radius := 0
		if v := q.Get("radius"); v != "" {
			if radius, err = strconv.Atoi(v); err != nil {
				http.Error(w, "radius must be an integer", http.StatusBadRequest)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		views, err := engine.Preview(r.Context(), observers, radius)
		if err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(rejection(err))
			return
		}
		_ = json.NewEncoder(w).Encode(views)
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		s := engine.Snapshot()
		logger.Printf("serving snapshot: observer %s, %d visible", s.Observer, len(s.Visible))
		if err := views.IndexPage(s).Render(r.Context(), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	return mux
}

func parseObservers(values []string) ([]geometry.HexCoords, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("at least one at=i,j is required")
	}
	observers := make([]geometry.HexCoords, 0, len(values))
	for _, v := range values {
		is, js, ok := strings.Cut(v, ",")
		if !ok {
			return nil, fmt.Errorf("bad observer %q, want i,j", v)
		}
		i, errI := strconv.Atoi(strings.TrimSpace(is))
		j, errJ := strconv.Atoi(strings.TrimSpace(js))
		if errI != nil || errJ != nil {
			return nil, fmt.Errorf("bad observer %q, want i,j", v)
		}
		observers = append(observers, geometry.HexCoords{I: i, J: j})
	}
	return observers, nil
}
