package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"ycbcr_new",
		"ycbcr_from_vector",
		"ycbcr_compare",
		"image_load",
		"image_sample_ycbcr",
		"image_sample_ycbcr_multi",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	// Check all expected tools exist
	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			// Name should not be empty
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}

			// Description should not be empty
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}

			// InputSchema should exist
			if tool.InputSchema == nil {
				t.Error("Tool InputSchema is nil")
			}

			// InputSchema should be an object type
			schemaType, ok := tool.InputSchema["type"]
			if !ok {
				t.Error("InputSchema missing 'type' field")
			}
			if schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}

			// InputSchema should have properties
			props, ok := tool.InputSchema["properties"]
			if !ok {
				t.Error("InputSchema missing 'properties' field")
			}
			if props == nil {
				t.Error("InputSchema properties is nil")
			}
		})
	}
}

func TestToolDefinitions_RequiredPath(t *testing.T) {
	// Image tools require a 'path' parameter
	toolsRequiringPath := []string{
		"image_load",
		"image_sample_ycbcr",
		"image_sample_ycbcr_multi",
	}

	tools := GetToolDefinitions()
	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range toolsRequiringPath {
		tool, ok := toolMap[name]
		if !ok {
			continue // Skip if tool not found
		}

		t.Run(name, func(t *testing.T) {
			required, ok := tool.InputSchema["required"]
			if !ok {
				t.Error("InputSchema missing 'required' field")
				return
			}

			requiredList, ok := required.([]string)
			if !ok {
				t.Error("'required' should be a string slice")
				return
			}

			hasPath := false
			for _, r := range requiredList {
				if r == "path" {
					hasPath = true
					break
				}
			}

			if !hasPath {
				t.Error("Tool should require 'path' parameter")
			}
		})
	}
}

func TestToolDefinitions_ChannelArguments(t *testing.T) {
	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	checkChannels := func(t *testing.T, schema map[string]interface{}) {
		t.Helper()
		props, ok := schema["properties"].(map[string]interface{})
		if !ok {
			t.Fatal("properties should be a map")
		}
		for _, ch := range []string{"y", "cb", "cr"} {
			prop, ok := props[ch].(map[string]interface{})
			if !ok {
				t.Errorf("missing channel property %s", ch)
				continue
			}
			if prop["type"] != "number" {
				t.Errorf("%s type: got %v, want number", ch, prop["type"])
			}
		}
	}

	t.Run("ycbcr_new", func(t *testing.T) {
		checkChannels(t, toolMap["ycbcr_new"].InputSchema)
	})

	t.Run("ycbcr_compare", func(t *testing.T) {
		props := toolMap["ycbcr_compare"].InputSchema["properties"].(map[string]interface{})
		for _, side := range []string{"a", "b"} {
			schema, ok := props[side].(map[string]interface{})
			if !ok {
				t.Fatalf("missing property %s", side)
			}
			checkChannels(t, schema)
		}
	})

	t.Run("ycbcr_from_vector", func(t *testing.T) {
		props := toolMap["ycbcr_from_vector"].InputSchema["properties"].(map[string]interface{})
		comp, ok := props["components"].(map[string]interface{})
		if !ok {
			t.Fatal("missing components property")
		}
		if comp["minItems"] != 3 || comp["maxItems"] != 3 {
			t.Errorf("components bounds: got %v..%v, want 3..3", comp["minItems"], comp["maxItems"])
		}
	})
}

func TestHandleToolsList(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
	}

	resp := s.handleToolsList(req)

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	tools, ok := result["tools"]
	if !ok {
		t.Fatal("Result should contain 'tools' key")
	}

	toolsList, ok := tools.([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	// Should match GetToolDefinitions
	expected := GetToolDefinitions()
	if len(toolsList) != len(expected) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(expected))
	}
}

func TestToolStruct(t *testing.T) {
	tool := Tool{
		Name:        "test_tool",
		Description: "A test tool",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"param1": map[string]interface{}{
					"type":        "string",
					"description": "A test parameter",
				},
			},
			"required": []string{"param1"},
		},
	}

	if tool.Name != "test_tool" {
		t.Errorf("Name: got %s, want test_tool", tool.Name)
	}
	if tool.Description != "A test tool" {
		t.Errorf("Description: got %s, want 'A test tool'", tool.Description)
	}
	if tool.InputSchema == nil {
		t.Error("InputSchema should not be nil")
	}
}
