package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Handler returns the HTTP transport: the same JSON-RPC envelope exchange as
// the stdio loop, carried over a small routing table. Every response carries
// CORS headers permitting any origin.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(corsMiddleware)

	r.HandleFunc("/", s.handleLiveness).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/health", s.handleLiveness).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/mcp/stream", s.handleStream).Methods(http.MethodGet, http.MethodPost, http.MethodOptions)
	r.HandleFunc("/mcp/tools", s.handleHTTPTools).Methods(http.MethodGet, http.MethodOptions)

	return r
}

// RunHTTP serves the HTTP transport on the configured port.
func (s *Server) RunHTTP() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	log.Printf("%s %s listening on %s", serverName, serverVersion, addr)
	return http.ListenAndServe(addr, s.Handler())
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"server":  serverName,
		"version": serverVersion,
	})
}

// handleStream exchanges one JSON-RPC envelope per POST. A GET returns a
// session descriptor so clients probing the endpoint can identify it.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"sessionId": uuid.NewString(),
			"endpoint":  "/mcp/stream",
			"protocol":  protocolVersion,
		})
		return
	}

	var req MCPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, &MCPResponse{
			JSONRPC: "2.0",
			Error: &MCPError{
				Code:    -32700,
				Message: "Parse error",
				Data:    err.Error(),
			},
		})
		return
	}

	resp := s.handleRequest(&req)
	if resp == nil {
		// Notification: acknowledged, nothing to return.
		w.WriteHeader(http.StatusAccepted)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHTTPTools(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tools": GetToolDefinitions(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
