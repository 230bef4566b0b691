// Package server implements the MCP (Model Context Protocol) server for color analysis tools.
//
// This package provides a JSON-RPC 2.0 server that exposes dominant-color
// extraction and pixel sampling through the MCP protocol. It's designed to work
// with Claude and other MCP-compatible clients, enabling AI systems to reason
// about the colors of an image without seeing it.
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
// The server provides 6 color analysis tools organized into categories:
//
// Basic Image Information:
//   - image_info: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Color Sampling:
//   - image_sample_color: Get color at pixel
//
// Dominant Color Analysis:
//   - image_dominant_color: Single best representative color
//   - image_dominant_colors: Palette of dominant colors
//   - image_color_weights: Palette with per-color coverage fractions
//
// The dominant-color tools cluster the image's pixels; because seeding is
// randomized, results vary slightly between calls unless the optional seed
// argument is supplied.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Degenerate images are not errors: a fully transparent image produces an
// empty palette and a zero-weight transparent result rather than a failure.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
