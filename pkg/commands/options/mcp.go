package options

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// MCPOptions selects how `pedal mcp` is exposed.
type MCPOptions struct {
	Transport string
	Host      string
	Port      int
	Path      string
	TLSCert   string
	TLSKey    string
}

func AddMCPArgs(cmd *cobra.Command, o *MCPOptions) {
	cmd.Flags().StringVar(&o.Transport, "transport", "http", "Transport to serve on: http or stdio.")
	cmd.Flags().StringVar(&o.Host, "http-host", "127.0.0.1", "Interface the HTTP transport binds to.")
	cmd.Flags().IntVar(&o.Port, "http-port", 8485, "Port for the HTTP transport, 0 picks a free one.")
	cmd.Flags().StringVar(&o.Path, "http-path", "/mcp", "Endpoint path of the HTTP transport.")
	cmd.Flags().StringVar(&o.TLSCert, "http-tls-cert", "", "TLS certificate file; serves HTTPS together with --http-tls-key.")
	cmd.Flags().StringVar(&o.TLSKey, "http-tls-key", "", "TLS private key file.")
}

// Validate normalizes the transport and rejects unusable HTTP settings.
func (o *MCPOptions) Validate() error {
	o.Transport = strings.ToLower(strings.TrimSpace(o.Transport))
	switch o.Transport {
	case "", "http":
		o.Transport = "http"
	case "stdio":
		return nil
	default:
		return fmt.Errorf("unsupported transport %q (expected http or stdio)", o.Transport)
	}
	if o.Port < 0 || o.Port > 65535 {
		return fmt.Errorf("invalid http-port %d", o.Port)
	}
	if (o.TLSCert == "") != (o.TLSKey == "") {
		return fmt.Errorf("--http-tls-cert and --http-tls-key must be set together")
	}
	return nil
}

// Addr is the host:port to listen on.
func (o *MCPOptions) Addr() string {
	host := strings.TrimSpace(o.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, strconv.Itoa(o.Port))
}

// EndpointPath is Path with a leading slash, defaulting to /mcp.
func (o *MCPOptions) EndpointPath() string {
	path := strings.TrimSpace(o.Path)
	if path == "" {
		return "/mcp"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
