// Package config resolves the server configuration once at startup.
//
// Configuration is layered: built-in defaults, then an optional YAML file at
// ~/.chart-mcp/config.yaml, then environment variables. The resulting Config
// value is immutable and passed explicitly to the packages that need it; no
// package reads the environment after startup.
package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized by Load.
const (
	EnvChartURL     = "QUICKCHART_CHART_URL"
	EnvGraphVizURL  = "QUICKCHART_GRAPHVIZ_URL"
	EnvWordCloudURL = "QUICKCHART_WORDCLOUD_URL"
	EnvPort         = "PORT"
)

// Default rendering endpoints, each independently overridable.
const (
	DefaultChartURL     = "https://quickchart.io/chart"
	DefaultGraphVizURL  = "https://quickchart.io/graphviz"
	DefaultWordCloudURL = "https://quickchart.io/wordcloud"
)

// Config holds the read-only settings shared by the encoder and transports.
type Config struct {
	ChartBaseURL     string `yaml:"chartBaseUrl"`
	GraphVizBaseURL  string `yaml:"graphvizBaseUrl"`
	WordCloudBaseURL string `yaml:"wordcloudBaseUrl"`

	// Port selects the HTTP transport when positive; otherwise the server
	// speaks JSON-RPC over stdio.
	Port int `yaml:"port"`
}

// Default returns the built-in configuration: public QuickChart endpoints,
// stdio transport.
func Default() Config {
	return Config{
		ChartBaseURL:     DefaultChartURL,
		GraphVizBaseURL:  DefaultGraphVizURL,
		WordCloudBaseURL: DefaultWordCloudURL,
	}
}

// Path returns the optional config file location: ~/.chart-mcp/config.yaml.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".chart-mcp", "config.yaml")
	}
	return filepath.Join(home, ".chart-mcp", "config.yaml")
}

// Load resolves the configuration from defaults, the optional file at path,
// and the environment, in that order. If path is empty, Path() is used. A
// missing file is not an error; an unreadable or malformed one is.
func Load(path string) (Config, error) {
	if path == "" {
		path = Path()
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No file; defaults plus environment.
	case err != nil:
		return Config{}, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvChartURL); v != "" {
		cfg.ChartBaseURL = v
	}
	if v := os.Getenv(EnvGraphVizURL); v != "" {
		cfg.GraphVizBaseURL = v
	}
	if v := os.Getenv(EnvWordCloudURL); v != "" {
		cfg.WordCloudBaseURL = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("Ignoring unparseable %s=%q", EnvPort, v)
		} else {
			cfg.Port = port
		}
	}
}
