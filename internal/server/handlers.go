package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/ironsheep/emd-stegano/internal/emd"
	"github.com/ironsheep/emd-stegano/internal/payload"
	"github.com/ironsheep/emd-stegano/internal/stego"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "stego_hide").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.logger.Debug("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "stego_image_info":
		return s.handleImageInfo(args)
	case "stego_hide":
		return s.handleHide(args)
	case "stego_extract":
		return s.handleExtract(args)
	case "stego_search":
		return s.handleSearch(ctx, args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
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

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type imageInfoArgs struct {
	Path string `json:"path"`
	MaxN int    `json:"max_n"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.MaxN == 0 {
		a.MaxN = stego.DefaultInfoMaxN
	}
	return stego.Info(a.Path, a.MaxN)
}

type hideArgs struct {
	Path        string `json:"path"`
	N           int    `json:"n"`
	Text        string `json:"text"`
	DataBase64  string `json:"data_base64"`
	OutputPath  string `json:"output_path"`
	Compress    bool   `json:"compress"`
	DiffMapPath string `json:"diff_map_path"`
}

func (s *Server) handleHide(args json.RawMessage) (interface{}, error) {
	var a hideArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var secret []byte
	switch {
	case a.Text != "" && a.DataBase64 != "":
		return nil, fmt.Errorf("%w: got both text and data_base64", payload.ErrSource)
	case a.Text != "":
		secret = []byte(a.Text)
	case a.DataBase64 != "":
		data, err := base64.StdEncoding.DecodeString(a.DataBase64)
		if err != nil {
			return nil, fmt.Errorf("invalid data_base64: %w", err)
		}
		secret = data
	default:
		return nil, fmt.Errorf("%w: got neither text nor data_base64", payload.ErrSource)
	}

	return stego.Hide(stego.HideRequest{
		Input:    a.Path,
		Output:   a.OutputPath,
		Suffix:   s.cfg.OutputSuffix,
		N:        a.N,
		Secret:   secret,
		Compress: a.Compress,
		DiffMap:  a.DiffMapPath,
	})
}

type extractArgs struct {
	Path       string `json:"path"`
	N          int    `json:"n"`
	Length     int    `json:"length"`
	Decompress bool   `json:"decompress"`
}

// extractResult carries the bytes both as base64 and, when they are valid
// UTF-8, as text.
type extractResult struct {
	Params     emd.Params `json:"params"`
	Length     int        `json:"length"`
	DataBase64 string     `json:"data_base64"`
	Text       *string    `json:"text,omitempty"`
	Converted  bool       `json:"converted"`
}

func (s *Server) handleExtract(args json.RawMessage) (interface{}, error) {
	var a extractArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	report, err := stego.Extract(stego.ExtractRequest{
		Input:      a.Path,
		N:          a.N,
		Length:     a.Length,
		Decompress: a.Decompress,
	})
	if err != nil {
		return nil, err
	}

	res := &extractResult{
		Params:     report.Params,
		Length:     len(report.Data),
		DataBase64: base64.StdEncoding.EncodeToString(report.Data),
		Converted:  report.Converted,
	}
	if utf8.Valid(report.Data) {
		text := string(report.Data)
		res.Text = &text
	}
	return res, nil
}

type searchArgs struct {
	Path      string  `json:"path"`
	Length    int     `json:"length"`
	MinN      int     `json:"min_n"`
	MaxN      int     `json:"max_n"`
	Tolerance float64 `json:"tolerance"`
}

func (s *Server) handleSearch(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a searchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.MinN == 0 {
		a.MinN = s.cfg.Search.MinGroupSize
	}
	if a.MaxN == 0 {
		a.MaxN = s.cfg.Search.MaxGroupSize
	}
	if a.Tolerance == 0 {
		a.Tolerance = s.cfg.Search.Tolerance
	}

	return stego.Search(ctx, stego.SearchRequest{
		Input:     a.Path,
		Length:    a.Length,
		MinN:      a.MinN,
		MaxN:      a.MaxN,
		Tolerance: a.Tolerance,
		Workers:   s.cfg.Search.Workers,
	})
}
