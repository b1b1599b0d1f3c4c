package options

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// MCPOptions
type MCPOptions struct {
	Transport string
	Host      string
	Port      int
	Path      string
	TLSCert   string
	TLSKey    string
}

func AddMCPArgs(cmd *cobra.Command, o *MCPOptions) {
	cmd.Flags().StringVar(&o.Transport, "transport", "stdio",
		"Transport to serve on: stdio or http.")
	cmd.Flags().StringVar(&o.Host, "http-host", "127.0.0.1",
		"Interface the HTTP transport listens on.")
	cmd.Flags().IntVar(&o.Port, "http-port", 8080,
		"Port for the HTTP transport, 0 picks a free one.")
	cmd.Flags().StringVar(&o.Path, "http-path", "/mcp",
		"Endpoint path for the HTTP transport.")
	cmd.Flags().StringVar(&o.TLSCert, "http-tls-cert", "",
		"Certificate file; serves HTTPS together with --http-tls-key.")
	cmd.Flags().StringVar(&o.TLSKey, "http-tls-key", "",
		"Private key file for --http-tls-cert.")
}

// Addr is the host:port the HTTP transport binds.
func (o *MCPOptions) Addr() (string, error) {
	if o.Port < 0 || o.Port > 65535 {
		return "", fmt.Errorf("invalid http-port %d", o.Port)
	}
	host := strings.TrimSpace(o.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, strconv.Itoa(o.Port)), nil
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

// TLS reports whether both halves of the key pair were given.
func (o *MCPOptions) TLS() (bool, error) {
	cert, key := strings.TrimSpace(o.TLSCert), strings.TrimSpace(o.TLSKey)
	if (cert == "") != (key == "") {
		return false, fmt.Errorf("both --http-tls-cert and --http-tls-key are required for HTTPS")
	}
	return cert != "", nil
}
