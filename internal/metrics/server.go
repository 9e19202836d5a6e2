package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"arango-stress/internal/logger"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Serve は/metricsを公開するHTTPサーバーを起動し、
// コンテキストの取り消しでシャットダウンする
func Serve(ctx context.Context, port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("metrics listener started on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
