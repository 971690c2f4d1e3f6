// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mcp

// In this file: HTTP based transports.

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	mcpsrv "github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

const (
	pathSSE         = "/sse"
	pathMessage     = "/message"
	pathMCP         = "/mcp"
	pathHealthcheck = "/healthcheck"
	pathMetrics     = "/metrics"

	shutdownTimeout = 10 * time.Second
)

// ServeSSE runs the MCP server with the server-sent events transport on
// addr until ctx is cancelled.  addr should be a host:port string such as
// "127.0.0.1:8000".
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	h, shutdown := s.sseHandler(baseURL(addr))
	s.logger.InfoContext(ctx, "mcp server listening on sse", "addr", addr, "endpoint", pathSSE)
	return s.serve(ctx, addr, h, shutdown)
}

// ServeHTTP runs the MCP server as a Streamable HTTP server on addr until
// ctx is cancelled.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	h, shutdown := s.streamableHandler()
	s.logger.InfoContext(ctx, "mcp server listening on http", "addr", addr, "endpoint", pathMCP)
	return s.serve(ctx, addr, h, shutdown)
}

type shutdownFunc func(context.Context) error

// sseHandler returns the SSE transport handler.  If base is empty, clients
// are given the relative message endpoint, and resolve it against the URL
// they used to connect.
func (s *Server) sseHandler(base string) (http.Handler, shutdownFunc) {
	opts := []mcpsrv.SSEOption{
		mcpsrv.WithSSEEndpoint(pathSSE),
		mcpsrv.WithMessageEndpoint(pathMessage),
		mcpsrv.WithUseFullURLForMessageEndpoint(base != ""),
	}
	if base != "" {
		opts = append(opts, mcpsrv.WithBaseURL(base))
	}
	sse := mcpsrv.NewSSEServer(s.mcp, opts...)
	return s.router(func(r chi.Router) {
		r.Handle(pathSSE, sse.SSEHandler())
		r.Handle(pathMessage, sse.MessageHandler())
	}), sse.Shutdown
}

func (s *Server) streamableHandler() (http.Handler, shutdownFunc) {
	st := mcpsrv.NewStreamableHTTPServer(s.mcp, mcpsrv.WithEndpointPath(pathMCP))
	return s.router(func(r chi.Router) {
		r.Handle(pathMCP, st)
	}), st.Shutdown
}

// router returns the router with the service endpoints, and the MCP
// endpoints mounted by mount behind authentication.
func (s *Server) router(mount func(r chi.Router)) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.RequestLogger(&middleware.DefaultLogFormatter{
			Logger:  slog.NewLogLogger(s.logger.Handler(), slog.LevelInfo),
			NoColor: true,
		}),
		middleware.Recoverer,
	)
	r.Get(pathHealthcheck, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle(pathMetrics, promhttp.Handler())
	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)
		mount(r)
	})
	return r
}

// authenticate requires the configured token in the Authorization header,
// either as a bearer token or as is.
func (s *Server) authenticate(next http.Handler) http.Handler {
	if s.token == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !validToken(r.Header.Get("Authorization"), s.token) {
			s.logger.WarnContext(r.Context(), "mcp: unauthorized request", "remote", r.RemoteAddr, "path", r.URL.Path)
			w.Header().Set("WWW-Authenticate", `Bearer realm="`+serverName+`"`)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func validToken(header, token string) bool {
	got := strings.TrimSpace(header)
	if after, ok := strings.CutPrefix(got, "Bearer "); ok {
		got = strings.TrimSpace(after)
	}
	return got != "" && subtle.ConstantTimeCompare([]byte(got), []byte(token)) == 1
}

// serve runs the HTTP server until ctx is cancelled or the server fails.
func (s *Server) serve(ctx context.Context, addr string, h http.Handler, shutdown shutdownFunc) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("mcp http server error: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		s.logger.InfoContext(ctx, "mcp server shutting down")
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			s.logger.WarnContext(sctx, "mcp transport shutdown error", "error", err)
		}
		if err := srv.Shutdown(sctx); err != nil {
			// long-lived event streams
			_ = srv.Close()
			if !errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("mcp http server shutdown error: %w", err)
			}
		}
		return nil
	})
	return eg.Wait()
}

// baseURL returns the URL that clients use to reach the server listening on
// addr.  It is empty for the wildcard addresses, as the server may be
// reached by any of the host names.
func baseURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		return ""
	}
	return "http://" + net.JoinHostPort(host, port)
}
