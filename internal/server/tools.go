package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// gridSourceSchema describes the shared parameters for tools that build a
// pixel grid from an image before running detection.
func gridSourceSchema() map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the image file",
		},
		"source": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"luminance", "binary", "color", "gradient"},
			"description": "Grid to run detection on: luminance (default, dark lines on light paper), binary (threshold segmentation), color (distance to target_color), gradient (Sobel magnitude for edge-like lines)",
			"default":     "luminance",
		},
		"threshold": map[string]interface{}{
			"type":        "number",
			"description": "Classifier cutoff for luminance/binary/gradient sources (0-255). Defaults from server config.",
		},
		"target_color": map[string]interface{}{
			"type":        "string",
			"description": "Hex color of the lines (e.g. #0000FF); required when source=color",
		},
		"tolerance": map[string]interface{}{
			"type":        "number",
			"description": "Allowed Lab distance to target_color when source=color (default 0.15)",
			"default":     0.15,
		},
		"region": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"x1": map[string]interface{}{"type": "integer"},
				"y1": map[string]interface{}{"type": "integer"},
				"x2": map[string]interface{}{"type": "integer"},
				"y2": map[string]interface{}{"type": "integer"},
			},
			"description": "Optional region to analyze. If omitted, analyzes entire image. Returned coordinates are relative to the region.",
		},
	}
}

// quadArraySchema describes a list of segments in [x1,y1,x2,y2] form.
func quadArraySchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type": "array",
		"items": map[string]interface{}{
			"type":     "array",
			"items":    map[string]interface{}{"type": "integer"},
			"minItems": 4,
			"maxItems": 4,
		},
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	findProps := gridSourceSchema()
	findProps["min_length"] = map[string]interface{}{
		"type":        "integer",
		"description": "Discard runs shorter than this many pixels (default from server config)",
	}

	extractProps := gridSourceSchema()
	extractProps["min_length"] = map[string]interface{}{
		"type":        "integer",
		"description": "Discard runs shorter than this many pixels (default from server config)",
	}
	extractProps["delta"] = map[string]interface{}{
		"type":        "integer",
		"description": "Chebyshev adjacency radius in pixels for grouping and combining (default from server config)",
	}
	extractProps["angle_epsilon"] = map[string]interface{}{
		"type":        "number",
		"description": "Orientation tolerance in degrees for combining (default from server config)",
	}

	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format.",
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

		// Line Pipeline
		{
			Name:        "lines_find",
			Description: "Extract raw straight line segments from an image by scanning a classified pixel grid in four directions (horizontal, vertical, both diagonals).",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": findProps,
				"required":   []string{"path"},
			},
		},
		{
			Name:        "lines_group",
			Description: "Group line segments into connected structures by endpoint proximity (Chebyshev distance).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"lines": quadArraySchema("Segments as [x1,y1,x2,y2] arrays, e.g. from lines_find"),
					"delta": map[string]interface{}{
						"type":        "integer",
						"description": "Chebyshev adjacency radius in pixels (default from server config)",
					},
				},
				"required": []string{"lines"},
			},
		},
		{
			Name:        "lines_combine",
			Description: "Within each structure, merge adjacent segments with near-equal slope until no mergeable pair remains. Reduces fragmented detections to coherent lines.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"structures": map[string]interface{}{
						"type":        "array",
						"items":       quadArraySchema(""),
						"description": "Structures as arrays of [x1,y1,x2,y2] segments, e.g. from lines_group",
					},
					"angle_epsilon": map[string]interface{}{
						"type":        "number",
						"description": "Orientation tolerance in degrees (default from server config)",
					},
					"delta": map[string]interface{}{
						"type":        "integer",
						"description": "Chebyshev adjacency radius in pixels (default from server config)",
					},
				},
				"required": []string{"structures"},
			},
		},
		{
			Name:        "lines_extract",
			Description: "Full pipeline in one call: extract segments, group them into structures, and combine near-collinear fragments. Returns structures plus summary metrics.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": extractProps,
				"required":   []string{"path"},
			},
		},
		{
			Name:        "lines_summarize",
			Description: "Compute per-structure metrics (segment count, lengths, bounding box, dominant orientation) for grouped line segments.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"structures": map[string]interface{}{
						"type":        "array",
						"items":       quadArraySchema(""),
						"description": "Structures as arrays of [x1,y1,x2,y2] segments",
					},
				},
				"required": []string{"structures"},
			},
		},
		{
			Name:        "lines_render",
			Description: "Draw line segments over the source image and return the result as base64 PNG, for visual verification of detection output.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"segments": quadArraySchema("Segments as [x1,y1,x2,y2] arrays"),
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Hex color for the drawn segments (default from server config)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the rendered image. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "segments"},
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
