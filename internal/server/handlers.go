package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-transform/internal/imaging"
	"github.com/ironsheep/image-transform/internal/transform"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_transform").
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
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"tool": params.Name,
		}).WithError(err).Warn("tool failed")
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
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Transforms
	case "image_list_transforms":
		return s.handleListTransforms()
	case "image_transform":
		return s.handleImageTransform(args)

	// Color Operations
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_compare_colors":
		return s.handleImageCompareColors(args)

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
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

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

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Transform Handlers ===

// TransformInfo describes one available transform.
type TransformInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PerPixel    bool   `json:"per_pixel"`
}

// TransformList is the result of image_list_transforms.
type TransformList struct {
	Transforms []TransformInfo `json:"transforms"`
}

func (s *Server) handleListTransforms() (interface{}, error) {
	kinds := transform.Kinds()
	out := TransformList{Transforms: make([]TransformInfo, 0, len(kinds))}
	for _, k := range kinds {
		out.Transforms = append(out.Transforms, TransformInfo{
			Name:        k.String(),
			Description: k.Description(),
			PerPixel:    k.PerPixel(),
		})
	}
	return out, nil
}

type imageTransformArgs struct {
	Path             string  `json:"path"`
	Transform        string  `json:"transform"`
	Seed             *uint64 `json:"seed"`
	NoiseFactor      *int    `json:"noise_factor"`
	BrightnessFactor *int    `json:"brightness_factor"`
	SepiaDepth       *int    `json:"sepia_depth"`
	Border           string  `json:"border"`
	Scale            float64 `json:"scale"`
	OutputPath       string  `json:"output_path"`
}

// TransformResult is the result of image_transform.
type TransformResult struct {
	ID            string                `json:"id"`
	Transform     string                `json:"transform"`
	Width         int                   `json:"width"`
	Height        int                   `json:"height"`
	Workers       int                   `json:"workers"`
	ElapsedMS     float64               `json:"elapsed_ms"`
	SourceAverage imaging.ColorResult   `json:"source_average"`
	ResultAverage imaging.ColorResult   `json:"result_average"`
	OutputPath    string                `json:"output_path,omitempty"`
	Preview       *imaging.EncodedImage `json:"preview"`
}

func (s *Server) handleImageTransform(args json.RawMessage) (interface{}, error) {
	var a imageTransformArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	kind, err := transform.ParseKind(a.Transform)
	if err != nil {
		return nil, err
	}

	cfg := s.cfg
	if a.Seed != nil {
		cfg.SetSeed(*a.Seed)
	}
	if a.NoiseFactor != nil {
		cfg.NoiseFactor = *a.NoiseFactor
	}
	if a.BrightnessFactor != nil {
		cfg.BrightnessFactor = *a.BrightnessFactor
	}
	if a.SepiaDepth != nil {
		cfg.SepiaDepth = *a.SepiaDepth
	}
	if a.Border != "" {
		cfg.Border = a.Border
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	engine, err := cfg.NewEngine()
	if err != nil {
		return nil, err
	}

	src, err := imaging.LoadBuffer(s.cache, a.Path)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	out, err := engine.Apply(src, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to apply %s: %w", kind, err)
	}
	elapsed := time.Since(start)

	id := s.store.Put(a.Path, kind, src, out)

	if a.OutputPath != "" {
		if err := imaging.SaveBuffer(out, a.OutputPath); err != nil {
			return nil, err
		}
	}

	preview, err := imaging.EncodeBuffer(out, a.Scale)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"id":        id,
		"transform": kind.String(),
		"width":     out.Width,
		"height":    out.Height,
		"workers":   engine.Workers(),
		"elapsed":   elapsed,
	}).Debug("transform applied")

	return &TransformResult{
		ID:            id,
		Transform:     kind.String(),
		Width:         out.Width,
		Height:        out.Height,
		Workers:       engine.Workers(),
		ElapsedMS:     float64(elapsed.Microseconds()) / 1000,
		SourceAverage: imaging.AverageColor(src),
		ResultAverage: imaging.AverageColor(out),
		OutputPath:    a.OutputPath,
		Preview:       preview,
	}, nil
}

// === Color Operation Handlers ===

type imageSampleColorArgs struct {
	Path     string `json:"path"`
	ResultID string `json:"result_id"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	if a.ResultID != "" {
		r, err := s.store.Get(a.ResultID)
		if err != nil {
			return nil, err
		}
		return imaging.SampleColor(r.Result, a.X, a.Y)
	}

	buf, err := imaging.LoadBuffer(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(buf, a.X, a.Y)
}

type imageCompareColorsArgs struct {
	ResultID string `json:"result_id"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}

func (s *Server) handleImageCompareColors(args json.RawMessage) (interface{}, error) {
	var a imageCompareColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	r, err := s.store.Get(a.ResultID)
	if err != nil {
		return nil, err
	}
	return imaging.CompareColors(r.Source, r.Result, a.X, a.Y)
}
