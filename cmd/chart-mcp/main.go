package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/chartsmith/chart-tools-mcp/internal/config"
	"github.com/chartsmith/chart-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "chart-mcp",
	Short: "MCP server for chart, graph, and word cloud generation",
	Long: "chart-mcp exposes chart, graph, and word-cloud URL generation as MCP tools\n" +
		"against a QuickChart-compatible rendering service.\n\n" +
		"By default the server speaks JSON-RPC over stdin/stdout; set PORT to a\n" +
		"positive number to serve the HTTP transport instead. Endpoint URLs are\n" +
		"overridable via QUICKCHART_CHART_URL, QUICKCHART_GRAPHVIZ_URL and\n" +
		"QUICKCHART_WORDCLOUD_URL, or via " + "~/.chart-mcp/config.yaml.",
	RunE: runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("chart-mcp %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.chart-mcp/config.yaml)")
	rootCmd.AddCommand(versionCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	srv := server.New(cfg)
	if cfg.Port > 0 {
		return srv.RunHTTP()
	}
	return srv.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
