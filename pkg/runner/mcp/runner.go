package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

// Transport selects how the MCP server is exposed.
type Transport string

const (
	TransportHTTP  Transport = "http"
	TransportStdio Transport = "stdio"
)

// HTTP configures the streamable HTTP transport. An empty TLSCert serves
// plain HTTP.
type HTTP struct {
	Addr    string
	Path    string
	TLSCert string
	TLSKey  string
}

// Runner serves the pedal tools and resources until ctx is done.
type Runner struct {
	Service   *Service
	Version   string
	Transport Transport
	HTTP      HTTP

	// Out receives the listening URL of the HTTP transport.
	Out    io.Writer
	Logger logrus.FieldLogger
}

// NewServer registers every pedal tool and resource on a fresh MCP server.
func NewServer(version string, svc *Service) *server.MCPServer {
	if version == "" {
		version = "dev"
	}
	srv := server.NewMCPServer(
		"pedal MCP",
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Browse rentable bikes, inspect calendar pages, price and book rentals."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

func (r Runner) Do(ctx context.Context) error {
	if r.Service == nil || r.Service.API == nil {
		return ErrNoService
	}
	srv := NewServer(r.Version, r.Service)

	switch r.Transport {
	case "", TransportStdio:
		return server.ServeStdio(srv)
	case TransportHTTP:
		return r.serveHTTP(ctx, srv)
	}
	return fmt.Errorf("unknown MCP transport %q", r.Transport)
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	path := r.HTTP.Path
	if path == "" {
		path = "/mcp"
	}
	addr := r.HTTP.Addr
	if addr == "" {
		addr = "127.0.0.1:8485"
	}
	tls := r.HTTP.TLSCert != ""

	mux := http.NewServeMux()
	mux.Handle(path, server.NewStreamableHTTPServer(srv))
	httpSrv := &http.Server{Handler: mux}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	url := listenURL(ln.Addr(), tls) + path
	if r.Logger != nil {
		r.Logger.WithField("url", url).Info("mcp server listening")
	}
	if r.Out != nil {
		fmt.Fprintf(r.Out, "MCP HTTP server listening on %s\n", url)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	if tls {
		err = httpSrv.ServeTLS(ln, r.HTTP.TLSCert, r.HTTP.TLSKey)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// listenURL renders a reachable base URL, replacing wildcard hosts with the
// loopback address.
func listenURL(a net.Addr, tls bool) string {
	scheme := "http"
	if tls {
		scheme = "https"
	}
	tcp, ok := a.(*net.TCPAddr)
	if !ok {
		return scheme + "://" + a.String()
	}
	host := "127.0.0.1"
	if tcp.IP != nil && !tcp.IP.IsUnspecified() {
		host = tcp.IP.String()
	}
	return fmt.Sprintf("%s://%s", scheme, net.JoinHostPort(host, fmt.Sprint(tcp.Port)))
}
