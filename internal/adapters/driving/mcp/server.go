package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/verslag-digest/digest/internal/logger"
)

// Version is reported to clients during initialisation.
const Version = "0.1.0"

const (
	serverName      = "digest"
	shutdownTimeout = 5 * time.Second
	headerTimeout   = 10 * time.Second
)

const instructions = `Read-only access to a corpus of municipal meeting summaries.
Use search_meetings to find meetings by text, topic or party, and meeting_stats
for corpus-wide totals. Individual summaries are available as resources under
digest://meetings/{id}.`

// Server exposes the corpus over the Model Context Protocol.
type Server struct {
	ports *Ports
	inner *mcp.Server
}

// NewServer validates the ports and registers every tool and resource.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	inner := mcp.NewServer(
		&mcp.Implementation{Name: serverName, Version: Version},
		&mcp.ServerOptions{Instructions: instructions},
	)
	s := &Server{ports: ports, inner: inner}
	s.registerTools()
	s.registerResources()

	logger.Debug("mcp server ready (%d documents)", len(ports.Corpus.Snapshot().Documents))
	return s, nil
}

// Run serves a single client over stdin/stdout until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.inner.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP handler backed by this server.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.inner
	}, nil)
}

// RunHTTP listens on addr until ctx is cancelled, then drains open
// connections for up to shutdownTimeout.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: headerTimeout,
	}

	done := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		defer close(done)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("mcp http shutdown: %v", err)
		}
	})
	defer stop()

	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		<-done
		return nil
	}
	return fmt.Errorf("serving mcp on %s: %w", addr, err)
}
