package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// channelSchema is the {y, cb, cr} object shared by several tools.
func channelSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"y":  map[string]interface{}{"type": "number", "description": "Luma (clamped to 0-255)"},
			"cb": map[string]interface{}{"type": "number", "description": "Blue-difference chroma (clamped to 0-255)"},
			"cr": map[string]interface{}{"type": "number", "description": "Red-difference chroma (clamped to 0-255)"},
		},
		"required": []string{"y", "cb", "cr"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Value Operations
		{
			Name:        "ycbcr_new",
			Description: "Build a YCbCr color from three channel values. Out-of-range values are clamped to 0-255. Returns the stored channels, a stable hash, and a debug rendering.",
			InputSchema: channelSchema("YCbCr channel values"),
		},
		{
			Name:        "ycbcr_from_vector",
			Description: "Build a YCbCr color from a 3-element [y, cb, cr] vector, with the same clamping as ycbcr_new.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"components": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "number"},
						"minItems":    3,
						"maxItems":    3,
						"description": "Channel values in Y, Cb, Cr order",
					},
				},
				"required": []string{"components"},
			},
		},
		{
			Name:        "ycbcr_compare",
			Description: "Compare two YCbCr colors for exact equality after clamping, and report whether their hashes match.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"a": channelSchema("First color"),
					"b": channelSchema("Second color"),
				},
				"required": []string{"a", "b"},
			},
		},

		// Image Operations
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, color model and chroma subsampling.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_ycbcr",
			Description: "Read the stored YCbCr value at a pixel of a JPEG (or other YCbCr/grayscale) image. No RGB conversion is performed.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_ycbcr_multi",
			Description: "Read stored YCbCr values at multiple pixel coordinates in a single call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Array of points to sample",
					},
				},
				"required": []string{"path", "points"},
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
