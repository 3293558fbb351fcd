package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/agbru/mpint/internal/logging"
	"github.com/agbru/mpint/internal/metrics"
)

// metricsServer exposes the algorithm selection counters while a
// calibration runs.
type metricsServer struct {
	srv *http.Server
	ln  net.Listener
}

// startMetricsServer listens on addr and serves /metrics in the background.
func startMetricsServer(addr string, logger logging.Logger) (*metricsServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", metrics.WritePrometheus)
	ms := &metricsServer{
		srv: &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		ln:  ln,
	}
	go func() {
		if err := ms.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", err)
		}
	}()
	logger.Info("serving metrics", logging.String("addr", ln.Addr().String()))
	return ms, nil
}

// Addr returns the address the server listens on.
func (ms *metricsServer) Addr() string { return ms.ln.Addr().String() }

// Shutdown stops the server, waiting at most a second for open scrapes.
func (ms *metricsServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return ms.srv.Shutdown(ctx)
}
