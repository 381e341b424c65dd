// Package host is the reference HTTP/WebSocket shell wrapping
// internal/core.Core: it exists to prove spec.md §6's Write/Read API is
// drivable over a wire, not as the only valid way to host THE CORE. A
// host embedding Core directly in-process needs none of this package.
package host

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"houndfall/internal/config"
	"houndfall/internal/core"
	"houndfall/internal/progression"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

// Server ties the router, the WebSocket hub, and the tick loop to one
// Core instance. Modeled on fight-club-go's api.Server: construction
// (NewServer) is separated from running (Run), so the router can be
// exercised with httptest without ever binding a socket.
type Server struct {
	mu   sync.Mutex
	core *core.Core
	cfg  config.HostConfig
	tick uint64

	sessions *SessionManager
	shell    *ShellState
	metrics  *metrics
	registry *prometheus.Registry
	wsHub    *wsHub
	router   http.Handler
}

func NewServer(cfg config.HostConfig, hook progression.Hook) *Server {
	if hook == nil {
		hook = progression.NoopHook{}
	}

	reg := prometheus.NewRegistry()
	s := &Server{
		core:     core.NewCore(hook),
		cfg:      cfg,
		sessions: &SessionManager{},
		shell:    &ShellState{},
		metrics:  newMetrics(reg),
		registry: reg,
	}
	s.wsHub = newWSHub(s.metrics)
	s.router = s.newRouter()
	return s
}

// Router exposes the constructed handler for tests (httptest.NewServer
// or httptest.NewRecorder) without starting the tick loop or binding a
// listener, mirroring fight-club-go's Router() accessor.
func (s *Server) Router() http.Handler { return s.router }

// Run blocks, serving HTTP and driving the tick loop, until ctx is
// canceled or a component fails irrecoverably. All four goroutines
// (shutdown watcher, HTTP listener, WebSocket hub, tick loop) share
// ctx's cancellation through errgroup.WithContext, the same
// coordinated-shutdown shape used for client.go's readMessages/
// pingPong/publish trio in the reinforcement-learning example.
func (s *Server) Run(ctx context.Context) error {
	group, gctx := errgroup.WithContext(ctx)

	httpServer := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	group.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	group.Go(func() error {
		ln, err := net.Listen("tcp", httpServer.Addr)
		if err != nil {
			return errors.Wrapf(err, "host: listening on %s", httpServer.Addr)
		}
		if err := httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "host: http server")
		}
		return nil
	})

	group.Go(func() error {
		s.wsHub.run(gctx.Done())
		return nil
	})

	group.Go(func() error {
		return s.runTickLoop(gctx)
	})

	return group.Wait()
}
