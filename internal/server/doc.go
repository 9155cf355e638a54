// Package server implements the MCP (Model Context Protocol) server for the
// chart generation tools.
//
// This package provides a JSON-RPC 2.0 server that exposes chart, graph, and
// word-cloud URL generation through the MCP protocol. It's designed to work
// with Claude and other MCP-compatible clients.
//
// # Transports
//
// Two transports serve the same request handling:
//
// Stdio (the default):
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// HTTP (selected by a positive PORT):
//   - GET / and GET /health: liveness JSON
//   - GET|POST /mcp/stream: JSON-RPC envelope exchange
//   - GET /mcp/tools: tool listing
//
// All HTTP responses carry CORS headers permitting any origin.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - generate_chart: validate and normalize a chart, graphviz, or wordcloud
//     request and return the rendering URL as a text payload
//   - download_chart: additionally fetch the rendered image and save it to
//     disk, returning the saved path. Both transports share this disk-write
//     contract; image bytes are never returned inline.
//
// # Error Handling
//
// Tool failures are returned as JSON-RPC error responses. Caller-input
// problems (missing or malformed fields, type-specific contract violations,
// unwritable output locations) use code -32602; everything else, including
// rendering-service failures, uses -32603. Error data carries the
// human-readable cause.
package server
