package server

import (
	"encoding/json"
	"testing"

	"github.com/chartsmith/chart-tools-mcp/internal/chart"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"generate_chart",
		"download_chart",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		tool, found := toolMap[name]
		if !found {
			t.Errorf("Missing tool: %s", name)
			continue
		}
		if tool.Description == "" {
			t.Errorf("Tool %s has no description", name)
		}
		if tool.InputSchema == nil {
			t.Errorf("Tool %s has no input schema", name)
		}
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("Expected %d tools, got %d", len(expectedTools), len(tools))
	}
}

func TestToolDefinitions_SchemasAreObjects(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.InputSchema["type"] != "object" {
				t.Errorf("schema type = %v, want object", tool.InputSchema["type"])
			}
			if _, ok := tool.InputSchema["properties"].(map[string]interface{}); !ok {
				t.Error("schema should have a properties map")
			}
			if _, ok := tool.InputSchema["required"].([]string); !ok {
				t.Error("schema should declare required fields")
			}
		})
	}
}

func TestGenerateChartSchema_EnumMatchesValidTypes(t *testing.T) {
	tools := GetToolDefinitions()

	var schema map[string]interface{}
	for _, tool := range tools {
		if tool.Name == "generate_chart" {
			schema = tool.InputSchema
		}
	}
	if schema == nil {
		t.Fatal("generate_chart not found")
	}

	props := schema["properties"].(map[string]interface{})
	typeProp := props["type"].(map[string]interface{})
	enum, ok := typeProp["enum"].([]string)
	if !ok {
		t.Fatalf("type enum missing: %v", typeProp)
	}

	valid := chart.ValidTypes()
	if len(enum) != len(valid) {
		t.Fatalf("enum has %d entries, want %d", len(enum), len(valid))
	}
	for i, v := range valid {
		if enum[i] != v {
			t.Errorf("enum[%d] = %q, want %q", i, enum[i], v)
		}
	}
}

func TestToolDefinitions_Serializable(t *testing.T) {
	// The definitions are sent verbatim in tools/list responses, so they
	// must marshal cleanly.
	data, err := json.Marshal(GetToolDefinitions())
	if err != nil {
		t.Fatalf("Failed to marshal tool definitions: %v", err)
	}
	if len(data) == 0 {
		t.Error("marshaled definitions are empty")
	}
}
