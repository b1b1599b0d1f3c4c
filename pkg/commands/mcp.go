package commands

import (
	"fmt"
	"net"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tourdiary/pkg/commands/options"
	"tableflip.dev/tourdiary/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	mo := &options.MCPOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the diary over the Model Context Protocol",
		Long: `Launch an MCP server that lets an assistant read the diary, look up days and
months, and add entries.`,
		Example: `
tourdiary mcp
tourdiary mcp --transport=http --http-port=0
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			runner := mcp.Runner{
				Name:    "tourdiary",
				Version: version,
			}

			switch t := mcp.Transport(strings.ToLower(strings.TrimSpace(mo.Transport))); t {
			case "", mcp.TransportStdio:
				runner.Transport = mcp.TransportStdio
			case mcp.TransportHTTP:
				addr, err := mo.Addr()
				if err != nil {
					return err
				}
				secure, err := mo.TLS()
				if err != nil {
					return err
				}
				runner.Transport = mcp.TransportHTTP
				runner.HTTPListenAddr = addr
				runner.HTTPEndpointPath = mo.EndpointPath()
				if secure {
					runner.HTTPServerCert = strings.TrimSpace(mo.TLSCert)
					runner.HTTPServerKey = strings.TrimSpace(mo.TLSKey)
				}
				runner.OnHTTPListening = func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s\n",
						mcp.ListenURL(a, mo.Host, runner.HTTPEndpointPath, secure))
				}
			default:
				return fmt.Errorf("unsupported transport %q (expected http or stdio)", mo.Transport)
			}

			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			runner.Diary = s.diary
			return runner.Do(cmd.Context())
		},
	}

	options.AddMCPArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
