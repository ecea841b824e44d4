// Package server implements the MCP (Model Context Protocol) server for the
// line detection tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the line
// extraction pipeline through the MCP protocol, so MCP-compatible clients
// can turn raster diagrams and scanned plans into vector-like line geometry.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic image information:
//   - image_load: Load an image and get its metadata
//
// Line pipeline:
//   - lines_find: Extract raw segments from an image
//   - lines_group: Group segments into connected structures
//   - lines_combine: Merge near-collinear fragments within structures
//   - lines_extract: Run the full pipeline in one call
//   - lines_summarize: Per-structure geometry metrics
//   - lines_render: Draw segments over the image as base64 PNG
//
// Segments cross the protocol boundary in their external form: an array
// [x_start, y_start, x_end, y_end] of pixel coordinates. Responses also
// carry the structured start/end representation for convenience.
//
// # Defaults
//
// Tool parameters that are omitted fall back to the server configuration
// (see the config package): minimum run length, adjacency radius, angle
// tolerance, luminance threshold, and render color.
//
// # Errors
//
// Malformed request parameters produce JSON-RPC error -32602; tool execution
// failures, including invalid-input errors from the detection core, produce
// -32000 with the underlying message in the error data.
package server
