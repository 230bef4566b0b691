package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/color-tools-mcp/internal/dominant"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_info", "image_dominant_color").
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging/dominant function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_info":
		return s.handleImageInfo(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Color Sampling
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Dominant Color Analysis
	case "image_dominant_color":
		return s.handleImageDominantColor(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_color_weights":
		return s.handleImageColorWeights(args)

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

// clusterOptions maps the optional seed argument onto clustering options.
// A nil seed leaves the default time-seeded source in place.
func clusterOptions(seed *int64) []dominant.Option {
	if seed == nil {
		return nil
	}
	return []dominant.Option{dominant.WithSeed(*seed)}
}

// === Basic Image Information Handlers ===

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Color Sampling Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

// === Dominant Color Analysis Handlers ===

// DominantColorResult is the payload of the image_dominant_color tool.
//
// Weight is the fraction of the image covered by the winning cluster. For an
// image with no opaque pixels the color is transparent black and the weight
// is zero.
type DominantColorResult struct {
	Color  imaging.ColorResult `json:"color"`
	Weight float64             `json:"weight"`
}

// PaletteResult is the payload of the image_dominant_colors tool.
type PaletteResult struct {
	Colors []imaging.ColorResult `json:"colors"`
	Count  int                   `json:"count"`
}

// WeightedColor pairs a color with the fraction of the image it covers.
type WeightedColor struct {
	Color  imaging.ColorResult `json:"color"`
	Weight float64             `json:"weight"`
}

// ColorWeightsResult is the payload of the image_color_weights tool.
//
// TotalWeight is the sum of all cluster weights. It is 1 for fully opaque
// images and drops below 1 when transparent pixels are present.
type ColorWeightsResult struct {
	Colors      []WeightedColor `json:"colors"`
	TotalWeight float64         `json:"total_weight"`
}

type imageDominantColorArgs struct {
	Path string `json:"path"`
	Seed *int64 `json:"seed,omitempty"`
}

func (s *Server) handleImageDominantColor(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	palette := dominant.FindWeight(img, dominant.DefaultClusters, clusterOptions(a.Seed)...)
	winner := dominant.Select(palette)

	result := &DominantColorResult{
		Color: imaging.NewColorResult(winner.R, winner.G, winner.B, winner.A),
	}
	for _, c := range palette {
		if c.R == winner.R && c.G == winner.G && c.B == winner.B {
			result.Weight = c.Weight
			break
		}
	}
	return result, nil
}

type imageDominantColorsArgs struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
	Seed  *int64 `json:"seed,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	// Count <= 0 falls through to the clustering default.
	colors := dominant.FindN(img, a.Count, clusterOptions(a.Seed)...)

	result := &PaletteResult{
		Colors: make([]imaging.ColorResult, len(colors)),
		Count:  len(colors),
	}
	for i, c := range colors {
		result.Colors[i] = imaging.NewColorResult(c.R, c.G, c.B, c.A)
	}
	return result, nil
}

func (s *Server) handleImageColorWeights(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	colors := dominant.FindWeight(img, a.Count, clusterOptions(a.Seed)...)

	result := &ColorWeightsResult{
		Colors: make([]WeightedColor, len(colors)),
	}
	for i, c := range colors {
		result.Colors[i] = WeightedColor{
			Color:  imaging.NewColorResult(c.R, c.G, c.B, c.A),
			Weight: c.Weight,
		}
		result.TotalWeight += c.Weight
	}
	return result, nil
}
