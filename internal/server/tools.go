package server

import "github.com/ironsheep/image-transform/internal/transform"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func transformNames() []string {
	kinds := transform.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. The decoded image is cached for subsequent operations.",
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
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
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

		// Transforms
		{
			Name:        "image_list_transforms",
			Description: "List the available pixel transforms with a short description of each.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "image_transform",
			Description: "Apply a pixel transform to an image. The result is kept in memory under the returned id, optionally saved to output_path, and previewed as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"transform": map[string]interface{}{
						"type":        "string",
						"enum":        transformNames(),
						"description": "Transform to apply",
					},
					"seed": map[string]interface{}{
						"type":        "integer",
						"description": "Optional random seed for the noise transform. Equal seeds give equal output.",
					},
					"noise_factor": map[string]interface{}{
						"type":        "integer",
						"description": "Optional noise half-range. Default 60",
						"default":     transform.DefaultNoiseFactor,
					},
					"brightness_factor": map[string]interface{}{
						"type":        "integer",
						"description": "Optional brightness offset. Default 60",
						"default":     transform.DefaultBrightnessFactor,
					},
					"sepia_depth": map[string]interface{}{
						"type":        "integer",
						"description": "Optional sepia depth. Default 30",
						"default":     transform.DefaultSepiaDepth,
					},
					"border": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"copy", "zero"},
						"description": "Border handling for the detail transform. Default copy",
						"default":     "copy",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional preview scale factor. Default 1.0",
						"default":     1.0,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to save the result. Format follows the extension",
					},
				},
				"required": []string{"path", "transform"},
			},
		},

		// Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate of an image file or a stored transform result.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file. Ignored when result_id is set",
					},
					"result_id": map[string]interface{}{
						"type":        "string",
						"description": "Id returned by image_transform",
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
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "image_compare_colors",
			Description: "Compare the color of one pixel before and after a stored transform, with CIE Lab distance.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"result_id": map[string]interface{}{
						"type":        "string",
						"description": "Id returned by image_transform",
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
				"required": []string{"result_id", "x", "y"},
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
