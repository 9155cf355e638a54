package server

import "github.com/chartsmith/chart-tools-mcp/internal/chart"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name: "generate_chart",
			Description: "Generate a chart, graph, or word cloud rendering URL. " +
				"Chart-family types take labels, datasets and options in Chart.js form; " +
				"graphviz takes a DOT graph description; wordcloud takes free text plus " +
				"optional rendering parameters. Returns the URL of the rendered image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"type": map[string]interface{}{
						"type":        "string",
						"enum":        chart.ValidTypes(),
						"description": "Chart type to render",
					},
					"labels": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Axis labels for chart-family types",
					},
					"datasets": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"label": map[string]interface{}{
									"type":        "string",
									"description": "Series label (defaults to empty)",
								},
								"data": map[string]interface{}{
									"type":        "array",
									"description": "Numbers, or [x,y]/[x,y,r] arrays for scatter and bubble",
								},
								"backgroundColor": map[string]interface{}{
									"description": "Color string or array of color strings",
								},
								"borderColor": map[string]interface{}{
									"description": "Color string or array of color strings",
								},
								"additionalConfig": map[string]interface{}{
									"type":        "object",
									"description": "Extra Chart.js dataset options, merged verbatim; overrides the normalized fields on collision",
								},
							},
							"required": []string{"data"},
						},
						"description": "Data series; required for all chart-family types",
					},
					"title": map[string]interface{}{
						"type":        "string",
						"description": "Chart title, rendered via the options.title block",
					},
					"options": map[string]interface{}{
						"type":        "object",
						"description": "Extra Chart.js options merged into the configuration",
					},
					"dot": map[string]interface{}{
						"type":        "string",
						"description": "Graph description in DOT language (graphviz only)",
					},
					"layout": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"dot", "fdp", "neato", "circo", "twopi", "osage", "patchwork"},
						"description": "Graphviz layout engine (default dot)",
					},
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"png", "svg"},
						"description": "Output format (graphviz and wordcloud; default png)",
					},
					"text": map[string]interface{}{
						"type":        "string",
						"description": "Input text (wordcloud only)",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Image width in pixels (wordcloud)",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Image height in pixels (wordcloud)",
					},
					"backgroundColor": map[string]interface{}{
						"type":        "string",
						"description": "Background color, hex or named (wordcloud)",
					},
					"fontFamily": map[string]interface{}{
						"type":        "string",
						"description": "Font family (wordcloud)",
					},
					"fontWeight": map[string]interface{}{
						"type":        "string",
						"description": "Font weight (wordcloud)",
					},
					"loadGoogleFonts": map[string]interface{}{
						"type":        "boolean",
						"description": "Load fontFamily from Google Fonts (wordcloud)",
					},
					"fontScale": map[string]interface{}{
						"type":        "number",
						"description": "Word size multiplier (wordcloud)",
					},
					"scale": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"linear", "sqrt", "log"},
						"description": "Frequency scaling mode (wordcloud)",
					},
					"padding": map[string]interface{}{
						"type":        "integer",
						"description": "Padding between words in pixels (wordcloud)",
					},
					"rotation": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum word rotation in degrees (wordcloud)",
					},
					"maxNumWords": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of words to show (wordcloud)",
					},
					"minWordLength": map[string]interface{}{
						"type":        "integer",
						"description": "Minimum word character length (wordcloud)",
					},
					"case": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"upper", "lower", "none"},
						"description": "Word casing (wordcloud)",
					},
					"colors": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Word color palette as hex strings (wordcloud)",
					},
					"removeStopwords": map[string]interface{}{
						"type":        "boolean",
						"description": "Filter common stopwords (wordcloud)",
					},
					"cleanWords": map[string]interface{}{
						"type":        "boolean",
						"description": "Strip symbols and numbers from words (wordcloud)",
					},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Two-letter stopword language code (wordcloud)",
					},
					"useWordList": map[string]interface{}{
						"type":        "boolean",
						"description": "Treat text as a newline-delimited word list (wordcloud)",
					},
				},
				"required": []string{"type"},
			},
		},
		{
			Name: "download_chart",
			Description: "Render a chart and save the image to disk. Accepts a full chart " +
				"configuration (type/labels/datasets at top level or nested under data) and " +
				"an optional output path; defaults to the Desktop directory when writable, " +
				"otherwise the home directory. Returns the saved file path.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"config": map[string]interface{}{
						"type":        "object",
						"description": "Chart configuration, same shape as generate_chart arguments",
					},
					"outputPath": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path for the saved image (optional)",
					},
				},
				"required": []string{"config"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
