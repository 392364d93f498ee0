package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/ironsheep/ycbcr-tools-mcp/internal/imaging"
	"github.com/ironsheep/ycbcr-tools-mcp/internal/ycbcr"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "ycbcr_new", "image_sample_ycbcr").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// argumentError marks tool arguments that parsed but failed validation.
// It is reported as JSON-RPC "Invalid params" rather than a tool failure.
type argumentError struct {
	msg string
}

func (e *argumentError) Error() string { return e.msg }

func invalidArgs(format string, args ...interface{}) error {
	return &argumentError{msg: fmt.Sprintf(format, args...)}
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Argument validation errors return code -32602; other tool execution errors
// return code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	if s.cfg.Debug {
		log.Printf("tools/call %s", params.Name)
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		var argErr *argumentError
		if errors.As(err, &argErr) {
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		}
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Color Value Operations
	case "ycbcr_new":
		return s.handleYCbCrNew(args)
	case "ycbcr_from_vector":
		return s.handleYCbCrFromVector(args)
	case "ycbcr_compare":
		return s.handleYCbCrCompare(args)

	// Image Operations
	case "image_load":
		return s.handleImageLoad(args)
	case "image_sample_ycbcr":
		return s.handleImageSampleYCbCr(args)
	case "image_sample_ycbcr_multi":
		return s.handleImageSampleYCbCrMulti(args)

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

// === Color Value Handlers ===

// ColorResult is the JSON view of a ycbcr.Color.
type ColorResult struct {
	Y    float64 `json:"y"`
	Cb   float64 `json:"cb"`
	Cr   float64 `json:"cr"`
	Hash string  `json:"hash"` // 16 hex digits
	Text string  `json:"text"`
}

func newColorResult(c ycbcr.Color) ColorResult {
	return ColorResult{
		Y:    c.Y(),
		Cb:   c.Cb(),
		Cr:   c.Cr(),
		Hash: fmt.Sprintf("%016x", c.Hash()),
		Text: c.String(),
	}
}

// CompareResult reports how two colors relate.
type CompareResult struct {
	A        ColorResult `json:"a"`
	B        ColorResult `json:"b"`
	Equal    bool        `json:"equal"`
	NotEqual bool        `json:"not_equal"`
	SameHash bool        `json:"same_hash"`
}

type channelArgs struct {
	Y  *float64 `json:"y"`
	Cb *float64 `json:"cb"`
	Cr *float64 `json:"cr"`
}

func (a *channelArgs) color(field string) (ycbcr.Color, error) {
	if a == nil || a.Y == nil || a.Cb == nil || a.Cr == nil {
		return ycbcr.Color{}, invalidArgs("%s: y, cb and cr are required", field)
	}
	return ycbcr.New(*a.Y, *a.Cb, *a.Cr), nil
}

func (s *Server) handleYCbCrNew(args json.RawMessage) (interface{}, error) {
	var a channelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := a.color("arguments")
	if err != nil {
		return nil, err
	}
	return newColorResult(c), nil
}

type ycbcrFromVectorArgs struct {
	Components []float64 `json:"components"`
}

func (s *Server) handleYCbCrFromVector(args json.RawMessage) (interface{}, error) {
	var a ycbcrFromVectorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if len(a.Components) != 3 {
		return nil, invalidArgs("components: expected 3 values, got %d", len(a.Components))
	}
	var v [3]float64
	copy(v[:], a.Components)
	return newColorResult(ycbcr.FromVector(v)), nil
}

type ycbcrCompareArgs struct {
	A *channelArgs `json:"a"`
	B *channelArgs `json:"b"`
}

func (s *Server) handleYCbCrCompare(args json.RawMessage) (interface{}, error) {
	var a ycbcrCompareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	ca, err := a.A.color("a")
	if err != nil {
		return nil, err
	}
	cb, err := a.B.color("b")
	if err != nil {
		return nil, err
	}
	return CompareResult{
		A:        newColorResult(ca),
		B:        newColorResult(cb),
		Equal:    ca.Equal(cb),
		NotEqual: ca.NotEqual(cb),
		SameHash: ca.Hash() == cb.Hash(),
	}, nil
}

// === Image Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type imageSampleYCbCrArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleYCbCr(args json.RawMessage) (interface{}, error) {
	var a imageSampleYCbCrArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleYCbCr(img, a.X, a.Y)
}

type imageSampleYCbCrMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleYCbCrMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleYCbCrMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleYCbCrMulti(img, points)
}
