package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/emd-stegano/internal/imaging"
)

// createTestImageFile writes a seeded noise grayscale PNG and returns its path.
func createTestImageFile(t *testing.T, width, height int) string {
	t.Helper()

	rng := rand.New(rand.NewSource(7))
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.Intn(256))
	}

	path := filepath.Join(t.TempDir(), "cover.png")
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("failed to save image: %v", err)
	}
	return path
}

// callTool issues tools/call and decodes the text content into out. It returns
// the error response, if any.
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}, out interface{}) *MCPError {
	t.Helper()

	params, _ := json.Marshal(map[string]interface{}{
		"name":      name,
		"arguments": args,
	})
	resp := s.handleRequest(context.Background(), &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  params,
	})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		return resp.Error
	}

	result := resp.Result.(map[string]interface{})
	content := result["content"].([]map[string]interface{})
	if len(content) != 1 || content[0]["type"] != "text" {
		t.Fatalf("unexpected content: %v", content)
	}
	if out != nil {
		if err := json.Unmarshal([]byte(content[0]["text"].(string)), out); err != nil {
			t.Fatalf("tool result is not JSON: %v", err)
		}
	}
	return nil
}

func TestHandleToolsCall_ImageInfo(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, 40, 10)

	var info struct {
		Width     int  `json:"width"`
		Height    int  `json:"height"`
		Grayscale bool `json:"grayscale"`
		Capacity  []struct {
			N     int `json:"n"`
			Bytes int `json:"bytes"`
		} `json:"capacity"`
	}
	if mcpErr := callTool(t, s, "stego_image_info", map[string]interface{}{"path": path}, &info); mcpErr != nil {
		t.Fatalf("Unexpected error: %+v", mcpErr)
	}

	if info.Width != 40 || info.Height != 10 || !info.Grayscale {
		t.Errorf("unexpected info: %+v", info)
	}
	if len(info.Capacity) != 8 {
		t.Fatalf("capacity rows: got %d, want 8", len(info.Capacity))
	}
	// n=2: 20 groups per row, 10 rows, 2 bits per digit.
	if info.Capacity[1].N != 2 || info.Capacity[1].Bytes != 50 {
		t.Errorf("n=2 row: got %+v", info.Capacity[1])
	}
}

func TestHandleToolsCall_HideExtractText(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, 64, 32)

	var hidden struct {
		Output string `json:"output"`
		Length int    `json:"length"`
		PSNR   string `json:"psnr_db"`
	}
	mcpErr := callTool(t, s, "stego_hide", map[string]interface{}{
		"path": path,
		"n":    3,
		"text": "Hello World",
	}, &hidden)
	if mcpErr != nil {
		t.Fatalf("hide failed: %+v", mcpErr)
	}
	if !strings.HasSuffix(hidden.Output, "cover_EMD.png") {
		t.Errorf("default output: got %s", hidden.Output)
	}
	if hidden.Length != 11 || hidden.PSNR == "" {
		t.Errorf("unexpected hide result: %+v", hidden)
	}

	var extracted struct {
		DataBase64 string  `json:"data_base64"`
		Text       *string `json:"text"`
	}
	mcpErr = callTool(t, s, "stego_extract", map[string]interface{}{
		"path":   hidden.Output,
		"n":      3,
		"length": 11,
	}, &extracted)
	if mcpErr != nil {
		t.Fatalf("extract failed: %+v", mcpErr)
	}
	if extracted.Text == nil || *extracted.Text != "Hello World" {
		t.Errorf("text: got %v", extracted.Text)
	}
}

func TestHandleToolsCall_HideExtractBinary(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, 64, 32)
	output := filepath.Join(t.TempDir(), "stego.bmp")
	secret := []byte{0xff, 0xfe, 0x00, 0x80}

	mcpErr := callTool(t, s, "stego_hide", map[string]interface{}{
		"path":        path,
		"n":           2,
		"data_base64": base64.StdEncoding.EncodeToString(secret),
		"output_path": output,
	}, nil)
	if mcpErr != nil {
		t.Fatalf("hide failed: %+v", mcpErr)
	}

	var extracted struct {
		DataBase64 string  `json:"data_base64"`
		Text       *string `json:"text"`
	}
	mcpErr = callTool(t, s, "stego_extract", map[string]interface{}{
		"path":   output,
		"n":      2,
		"length": len(secret),
	}, &extracted)
	if mcpErr != nil {
		t.Fatalf("extract failed: %+v", mcpErr)
	}
	if extracted.DataBase64 != base64.StdEncoding.EncodeToString(secret) {
		t.Errorf("data: got %s", extracted.DataBase64)
	}
	if extracted.Text != nil {
		t.Error("invalid UTF-8 should not be returned as text")
	}
}

func TestHandleToolsCall_Search(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, 64, 32)
	output := filepath.Join(t.TempDir(), "stego.png")

	mcpErr := callTool(t, s, "stego_hide", map[string]interface{}{
		"path":        path,
		"n":           4,
		"text":        "a quiet message in the noise",
		"output_path": output,
	}, nil)
	if mcpErr != nil {
		t.Fatalf("hide failed: %+v", mcpErr)
	}

	var report struct {
		Results []struct {
			Params struct {
				N int `json:"n"`
			} `json:"params"`
			Match struct {
				Offset int `json:"offset"`
			} `json:"match"`
		} `json:"results"`
	}
	mcpErr = callTool(t, s, "stego_search", map[string]interface{}{
		"path":   output,
		"length": 10,
		"max_n":  8,
	}, &report)
	if mcpErr != nil {
		t.Fatalf("search failed: %+v", mcpErr)
	}

	found := false
	for _, r := range report.Results {
		if r.Params.N == 4 && r.Match.Offset == 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("n=4 not found in %+v", report.Results)
	}
}

func TestHandleToolsCall_Errors(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, 8, 8)

	tests := []struct {
		name string
		tool string
		args map[string]interface{}
		want string
	}{
		{"unknown tool", "image_crop", map[string]interface{}{"path": path}, "unknown tool"},
		{"missing file", "stego_image_info", map[string]interface{}{"path": "/nonexistent/image.png"}, "no such file"},
		{"no payload", "stego_hide", map[string]interface{}{"path": path, "n": 2}, "neither"},
		{"two payloads", "stego_hide", map[string]interface{}{"path": path, "n": 2, "text": "a", "data_base64": "YQ=="}, "both"},
		{"bad base64", "stego_hide", map[string]interface{}{"path": path, "n": 2, "data_base64": "%%%"}, "invalid data_base64"},
		{"too large", "stego_hide", map[string]interface{}{"path": path, "n": 2, "text": strings.Repeat("x", 64)}, "image too small"},
		{"bad n", "stego_extract", map[string]interface{}{"path": path, "n": 0, "length": 1}, "group size"},
		{"out of bounds", "stego_extract", map[string]interface{}{"path": path, "n": 2, "length": 500}, "outside"},
		{"bad search length", "stego_search", map[string]interface{}{"path": path, "length": 0}, "window length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mcpErr := callTool(t, s, tt.tool, tt.args, nil)
			if mcpErr == nil {
				t.Fatal("expected an error response")
			}
			if mcpErr.Code != -32000 {
				t.Errorf("Error code: got %d, want -32000", mcpErr.Code)
			}
			data, _ := mcpErr.Data.(string)
			if !strings.Contains(data, tt.want) {
				t.Errorf("error data %q does not contain %q", data, tt.want)
			}
		})
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleRequest(context.Background(), &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`"not an object"`),
	})

	if resp == nil || resp.Error == nil {
		t.Fatal("Expected error response")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("Error code: got %d, want -32602", resp.Error.Code)
	}
}

func TestHandleToolsCall_CapacityWritesNothing(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, 8, 8)
	output := filepath.Join(t.TempDir(), "never.png")

	mcpErr := callTool(t, s, "stego_hide", map[string]interface{}{
		"path":        path,
		"n":           2,
		"text":        strings.Repeat("y", 100),
		"output_path": output,
	}, nil)
	if mcpErr == nil {
		t.Fatal("expected capacity error")
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("output should not exist: %v", err)
	}
}
