package server

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()
	if len(tools) != 7 {
		t.Fatalf("got %d tools, want 7", len(tools))
	}

	seen := make(map[string]bool)
	for _, tool := range tools {
		if tool.Name == "" {
			t.Error("tool with empty name")
		}
		if seen[tool.Name] {
			t.Errorf("duplicate tool name %q", tool.Name)
		}
		seen[tool.Name] = true

		if tool.Description == "" {
			t.Errorf("tool %q has no description", tool.Name)
		}
		if tool.InputSchema["type"] != "object" {
			t.Errorf("tool %q schema type = %v, want object", tool.Name, tool.InputSchema["type"])
		}
		if _, ok := tool.InputSchema["properties"]; !ok {
			t.Errorf("tool %q schema has no properties", tool.Name)
		}
	}

	for _, name := range []string{"image_load", "lines_find", "lines_group", "lines_combine", "lines_extract", "lines_summarize", "lines_render"} {
		if !seen[name] {
			t.Errorf("missing tool %q", name)
		}
	}
}

func TestToolDefinitions_SchemasMarshal(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		if _, err := json.Marshal(tool); err != nil {
			t.Errorf("tool %q does not marshal: %v", tool.Name, err)
		}
	}
}

func TestToolDefinitions_AllDispatchable(t *testing.T) {
	// Every advertised tool must route somewhere in executeTool; argument
	// errors are fine, "unknown tool" is not.
	s := New(nil)
	for _, tool := range GetToolDefinitions() {
		_, err := s.executeTool(tool.Name, json.RawMessage(`{}`))
		if err != nil && strings.Contains(err.Error(), "unknown tool") {
			t.Errorf("tool %q is advertised but not dispatchable", tool.Name)
		}
	}
}
