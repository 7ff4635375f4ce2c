package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Wirasm/axcli/internal/server"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run as an MCP server",
	Long:  "Expose windows, elements, find, click, focus, and screenshot as MCP tools over stdio or streamable HTTP.",
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "Transport: stdio or streamable-http")
	mcpCmd.Flags().Int("port", 8390, "Port for streamable-http transport")
}

func runMCP(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	srv, err := server.New()
	if err != nil {
		return err
	}
	return srv.Serve(server.Config{Transport: transport, Port: port})
}
