package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 3 * time.Second

// Serve accepts connections until ctx is done, then shuts srv down
// giving in-flight requests shutdownTimeout to complete.
func Serve(ctx context.Context, lg *zap.Logger, srv *http.Server) error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %v", srv.Addr, err)
	}
	lg.Info("listen and serve", zap.Stringer("addr", ln.Addr()))

	served := make(chan error, 1)
	go func() { served <- srv.Serve(ln) }()

	select {
	case err := <-served:
		return serveResult(err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil { //nolint:contextcheck // parent is already done
		return fmt.Errorf("shutdown: %v", err)
	}
	if err := serveResult(<-served); err != nil {
		return err
	}

	lg.Info("server stopped")
	return nil
}

func serveResult(err error) error {
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("serve: %v", err)
}
