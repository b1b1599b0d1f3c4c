package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"tableflip.dev/tourdiary/pkg/app"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	TransportHTTP  Transport = "http"
	TransportStdio Transport = "stdio"
)

const shutdownGrace = 5 * time.Second

// Runner serves a diary over MCP until ctx is done.
type Runner struct {
	Diary   *app.Diary
	Name    string
	Version string

	// Transport defaults to stdio.
	Transport Transport

	HTTPListenAddr   string
	HTTPEndpointPath string
	HTTPServerCert   string
	HTTPServerKey    string
	// OnHTTPListening is called once the listener is bound.
	OnHTTPListening func(net.Addr)
}

// NewServer builds the MCP server with every tool and resource registered.
func NewServer(d *app.Diary, name, version string) *server.MCPServer {
	srv := server.NewMCPServer(
		name+" MCP",
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read and append tour diary entries, browse days and month calendars."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	svc := NewService(d)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

func (r Runner) Do(ctx context.Context) error {
	if r.Diary == nil {
		return errors.New("mcp runner requires a diary")
	}
	name, version := r.Name, r.Version
	if name == "" {
		name = "tourdiary"
	}
	if version == "" {
		version = "dev"
	}
	srv := NewServer(r.Diary, name, version)

	switch r.Transport {
	case "", TransportStdio:
		log.Debug().Str("server", name).Msg("mcp: serving on stdio")
		return server.ServeStdio(srv)
	case TransportHTTP:
		return r.serveHTTP(ctx, srv)
	default:
		return fmt.Errorf("unknown MCP transport %q", r.Transport)
	}
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	secure := r.HTTPServerCert != "" || r.HTTPServerKey != ""
	if secure && (r.HTTPServerCert == "" || r.HTTPServerKey == "") {
		return errors.New("both http tls cert and key must be provided")
	}
	path := r.HTTPEndpointPath
	if path == "" {
		path = "/mcp"
	}
	addr := r.HTTPListenAddr
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	mux := http.NewServeMux()
	mux.Handle(path, server.NewStreamableHTTPServer(srv))
	httpSrv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	log.Info().Str("addr", ln.Addr().String()).Str("path", path).Bool("tls", secure).Msg("mcp: serving over http")
	if r.OnHTTPListening != nil {
		r.OnHTTPListening(ln.Addr())
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	if secure {
		err = httpSrv.ServeTLS(ln, r.HTTPServerCert, r.HTTPServerKey)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// ListenURL renders the address a client should dial. Wildcard hosts are
// replaced by the bound IP, or loopback when that is unspecified too.
func ListenURL(a net.Addr, host, path string, secure bool) string {
	scheme := "http"
	if secure {
		scheme = "https"
	}
	tcp, ok := a.(*net.TCPAddr)
	if !ok {
		return scheme + "://" + a.String() + path
	}
	display := strings.TrimSpace(host)
	if display == "" || display == "0.0.0.0" || display == "::" {
		display = "127.0.0.1"
		if tcp.IP != nil && !tcp.IP.IsUnspecified() {
			display = tcp.IP.String()
		}
	}
	return scheme + "://" + net.JoinHostPort(display, strconv.Itoa(tcp.Port)) + path
}
