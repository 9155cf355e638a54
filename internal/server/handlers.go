package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chartsmith/chart-tools-mcp/internal/chart"
	"github.com/chartsmith/chart-tools-mcp/internal/mcperr"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke ("generate_chart" or "download_chart").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified
// tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<result text>"}]
//	}
//
// Tool failures return a JSON-RPC error response whose code reflects the
// error kind: -32602 for caller-input problems, -32603 otherwise.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, mcperr.CodeInvalidParams, "Invalid params", err.Error())
	}

	text, err := s.executeTool(context.Background(), params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, mcperr.Code(err), "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (string, error) {
	switch name {
	case "generate_chart":
		return s.handleGenerateChart(args)
	case "download_chart":
		return s.handleDownloadChart(ctx, args)
	default:
		return "", mcperr.InvalidParamsf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// handleGenerateChart runs the validate/build/encode pipeline and returns
// the rendering URL as the tool's text payload.
func (s *Server) handleGenerateChart(args json.RawMessage) (string, error) {
	if len(args) == 0 {
		return "", mcperr.InvalidParamsf("missing arguments")
	}

	var req chart.Request
	if err := json.Unmarshal(args, &req); err != nil {
		return "", mcperr.Wrap(mcperr.KindInvalidParams, err, "malformed arguments")
	}

	return s.encoder.URL(&req)
}

type downloadChartArgs struct {
	Config     map[string]any `json:"config"`
	OutputPath string         `json:"outputPath"`
}

// handleDownloadChart fetches the rendered image and writes it to disk,
// returning a confirmation naming the saved path. Both transports share this
// disk-write contract; the image bytes are never returned inline.
func (s *Server) handleDownloadChart(ctx context.Context, args json.RawMessage) (string, error) {
	if len(args) == 0 {
		return "", mcperr.InvalidParamsf("missing arguments")
	}

	var a downloadChartArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", mcperr.Wrap(mcperr.KindInvalidParams, err, "malformed arguments")
	}

	res, err := s.downloader.Download(ctx, a.Config, a.OutputPath)
	if err != nil {
		return "", err
	}

	if res.Width > 0 && res.Height > 0 {
		return fmt.Sprintf("Chart saved to %s (%dx%d)", res.Path, res.Width, res.Height), nil
	}
	return fmt.Sprintf("Chart saved to %s", res.Path), nil
}
