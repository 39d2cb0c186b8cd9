package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

var groupSizeProperty = map[string]interface{}{
	"type":        "integer",
	"description": "Group size n: each base-(2n+1) digit is carried by n pixels",
	"minimum":     1,
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "stego_image_info",
			Description: "Describe an image as a cover: dimensions, format, color model, samples stuck at 0 or 255, and how many bytes fit for each group size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"max_n": map[string]interface{}{
						"type":        "integer",
						"description": "Largest group size in the capacity table. Default 8",
						"default":     8,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "stego_hide",
			Description: "Hide text or binary data in a grayscale copy of an image using Exploiting Modification Direction. Writes the stego image and reports distortion (PSNR, changed pixels). Use a lossless output format (png, bmp, tif).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"n":    groupSizeProperty,
					"text": map[string]interface{}{
						"type":        "string",
						"description": "Message to hide. Exactly one of text or data_base64 is required",
					},
					"data_base64": map[string]interface{}{
						"type":        "string",
						"description": "Binary payload, base64 encoded",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Where to write the stego image. Defaults to the input name with the configured suffix",
					},
					"compress": map[string]interface{}{
						"type":        "boolean",
						"description": "Compress the payload with zstd before hiding. Extraction must then use the reported length and decompress",
						"default":     false,
					},
					"diff_map_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path for an image showing modified pixels in white",
					},
				},
				"required": []string{"path", "n"},
			},
		},
		{
			Name:        "stego_extract",
			Description: "Extract a known number of bytes hidden with a known group size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"n":    groupSizeProperty,
					"length": map[string]interface{}{
						"type":        "integer",
						"description": "Number of bytes to extract",
						"minimum":     0,
					},
					"decompress": map[string]interface{}{
						"type":        "boolean",
						"description": "Decompress the extracted bytes with zstd",
						"default":     false,
					},
				},
				"required": []string{"path", "n", "length"},
			},
		},
		{
			Name:        "stego_search",
			Description: "Blind search: try every group size in a range and report those whose hidden stream contains a run of printable text.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"length": map[string]interface{}{
						"type":        "integer",
						"description": "Length in bytes of the printable window to look for",
						"minimum":     1,
					},
					"min_n": map[string]interface{}{
						"type":        "integer",
						"description": "First group size tried. Defaults to the configured value (2)",
					},
					"max_n": map[string]interface{}{
						"type":        "integer",
						"description": "Exclusive upper bound on group size. Defaults to the configured value (20)",
					},
					"tolerance": map[string]interface{}{
						"type":        "number",
						"description": "Fraction of printable characters required, in (0, 1]. Defaults to the configured value (0.90)",
					},
				},
				"required": []string{"path", "length"},
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
