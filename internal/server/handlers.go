package server

import (
	"encoding/json"
	"fmt"

	"github.com/plandigit/line-tools-mcp/internal/detection"
	"github.com/plandigit/line-tools-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "lines_find", "lines_extract").
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "lines_find":
		return s.handleLinesFind(args)
	case "lines_group":
		return s.handleLinesGroup(args)
	case "lines_combine":
		return s.handleLinesCombine(args)
	case "lines_extract":
		return s.handleLinesExtract(args)
	case "lines_summarize":
		return s.handleLinesSummarize(args)
	case "lines_render":
		return s.handleLinesRender(args)
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

// === Conversions between Segment values and their [x1,y1,x2,y2] wire form ===

func segmentsFromQuads(quads [][4]int) []detection.Segment {
	segs := make([]detection.Segment, len(quads))
	for i, q := range quads {
		segs[i] = detection.Segment{
			Start: detection.Point{X: q[0], Y: q[1]},
			End:   detection.Point{X: q[2], Y: q[3]},
		}
	}
	return segs
}

func quadsFromSegments(segs []detection.Segment) [][4]int {
	quads := make([][4]int, len(segs))
	for i, s := range segs {
		quads[i] = s.Quad()
	}
	return quads
}

func structuresFromQuads(quads [][][4]int) []detection.Structure {
	structures := make([]detection.Structure, len(quads))
	for i, q := range quads {
		structures[i] = detection.Structure{Segments: segmentsFromQuads(q)}
	}
	return structures
}

func quadsFromStructures(structures []detection.Structure) [][][4]int {
	quads := make([][][4]int, len(structures))
	for i, st := range structures {
		quads[i] = quadsFromSegments(st.Segments)
	}
	return quads
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

// === Line Pipeline Handlers ===

// gridArgs are the shared parameters for tools that run detection on an
// image: which grid to construct and how to classify its values.
type gridArgs struct {
	Path        string          `json:"path"`
	Source      string          `json:"source"`
	Threshold   float64         `json:"threshold"`
	TargetColor string          `json:"target_color"`
	Tolerance   float64         `json:"tolerance"`
	Region      *imaging.Region `json:"region,omitempty"`
}

// buildGrid loads the image and constructs the requested grid together with
// the classifier that selects line pixels on it.
func (s *Server) buildGrid(a gridArgs) ([][]float64, detection.Classifier, error) {
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, nil, err
	}

	threshold := a.Threshold
	if threshold == 0 {
		threshold = s.cfg.Detection.Threshold
	}

	switch a.Source {
	case "", "luminance":
		grid, err := imaging.LuminanceGrid(img, a.Region)
		if err != nil {
			return nil, nil, err
		}
		return grid, imaging.DarkerThan(threshold), nil
	case "binary":
		grid, err := imaging.BinaryGrid(img, uint8(threshold), a.Region)
		if err != nil {
			return nil, nil, err
		}
		// Thresholding maps line pixels to 0 and background to 255.
		return grid, imaging.AtMost(0), nil
	case "color":
		if a.TargetColor == "" {
			return nil, nil, fmt.Errorf("target_color is required when source=color")
		}
		tolerance := a.Tolerance
		if tolerance == 0 {
			tolerance = 0.15
		}
		grid, err := imaging.ColorDistanceGrid(img, a.TargetColor, a.Region)
		if err != nil {
			return nil, nil, err
		}
		return grid, imaging.AtMost(tolerance), nil
	case "gradient":
		grid, err := imaging.GradientGrid(img, a.Region)
		if err != nil {
			return nil, nil, err
		}
		return grid, imaging.BrighterThan(threshold), nil
	default:
		return nil, nil, fmt.Errorf("unknown grid source: %s", a.Source)
	}
}

func (s *Server) delta(v *int) int {
	if v == nil {
		return s.cfg.Detection.Delta
	}
	return *v
}

func (s *Server) angleEpsilon(v *float64) float64 {
	if v == nil {
		return s.cfg.Detection.AngleEpsilon
	}
	return *v
}

type linesFindArgs struct {
	gridArgs
	MinLength int `json:"min_length"`
}

type linesResult struct {
	Segments []detection.Segment `json:"segments"`
	Quads    [][4]int            `json:"quads"`
	Count    int                 `json:"count"`
}

func (s *Server) handleLinesFind(args json.RawMessage) (interface{}, error) {
	var a linesFindArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.MinLength == 0 {
		a.MinLength = s.cfg.Detection.MinLength
	}

	grid, classifier, err := s.buildGrid(a.gridArgs)
	if err != nil {
		return nil, err
	}
	segments, err := detection.FindLines(grid, classifier, detection.Options{MinLength: a.MinLength})
	if err != nil {
		return nil, err
	}
	return &linesResult{
		Segments: segments,
		Quads:    quadsFromSegments(segments),
		Count:    len(segments),
	}, nil
}

type linesGroupArgs struct {
	Lines [][4]int `json:"lines"`
	// Delta is a pointer because 0 is a valid radius distinct from "use the
	// configured default".
	Delta *int `json:"delta"`
}

type structuresResult struct {
	Structures []detection.Structure `json:"structures"`
	Quads      [][][4]int            `json:"quads"`
	Count      int                   `json:"count"`
}

func (s *Server) handleLinesGroup(args json.RawMessage) (interface{}, error) {
	var a linesGroupArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	structures, err := detection.GroupAdjacentLines(segmentsFromQuads(a.Lines), s.delta(a.Delta))
	if err != nil {
		return nil, err
	}
	return &structuresResult{
		Structures: structures,
		Quads:      quadsFromStructures(structures),
		Count:      len(structures),
	}, nil
}

type linesCombineArgs struct {
	Structures   [][][4]int `json:"structures"`
	AngleEpsilon *float64   `json:"angle_epsilon"`
	Delta        *int       `json:"delta"`
}

func (s *Server) handleLinesCombine(args json.RawMessage) (interface{}, error) {
	var a linesCombineArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	combined, err := detection.CombineLinesWithEqualSlope(
		structuresFromQuads(a.Structures), s.angleEpsilon(a.AngleEpsilon), s.delta(a.Delta))
	if err != nil {
		return nil, err
	}
	return &structuresResult{
		Structures: combined,
		Quads:      quadsFromStructures(combined),
		Count:      len(combined),
	}, nil
}

type linesExtractArgs struct {
	gridArgs
	MinLength    int      `json:"min_length"`
	Delta        *int     `json:"delta"`
	AngleEpsilon *float64 `json:"angle_epsilon"`
}

type pipelineResult struct {
	RawCount   int                      `json:"raw_count"`
	Structures []detection.Structure    `json:"structures"`
	Quads      [][][4]int               `json:"quads"`
	Summary    *detection.SummaryResult `json:"summary"`
}

func (s *Server) handleLinesExtract(args json.RawMessage) (interface{}, error) {
	var a linesExtractArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.MinLength == 0 {
		a.MinLength = s.cfg.Detection.MinLength
	}

	grid, classifier, err := s.buildGrid(a.gridArgs)
	if err != nil {
		return nil, err
	}
	segments, err := detection.FindLines(grid, classifier, detection.Options{MinLength: a.MinLength})
	if err != nil {
		return nil, err
	}
	grouped, err := detection.GroupAdjacentLines(segments, s.delta(a.Delta))
	if err != nil {
		return nil, err
	}
	combined, err := detection.CombineLinesWithEqualSlope(grouped, s.angleEpsilon(a.AngleEpsilon), s.delta(a.Delta))
	if err != nil {
		return nil, err
	}
	return &pipelineResult{
		RawCount:   len(segments),
		Structures: combined,
		Quads:      quadsFromStructures(combined),
		Summary:    detection.SummarizeStructures(combined),
	}, nil
}

type linesSummarizeArgs struct {
	Structures [][][4]int `json:"structures"`
}

func (s *Server) handleLinesSummarize(args json.RawMessage) (interface{}, error) {
	var a linesSummarizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return detection.SummarizeStructures(structuresFromQuads(a.Structures)), nil
}

type linesRenderArgs struct {
	Path     string   `json:"path"`
	Segments [][4]int `json:"segments"`
	Color    string   `json:"color"`
	Scale    float64  `json:"scale"`
}

func (s *Server) handleLinesRender(args json.RawMessage) (interface{}, error) {
	var a linesRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Color == "" {
		a.Color = s.cfg.RenderColor
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.RenderSegments(img, a.Segments, a.Color, a.Scale)
}
