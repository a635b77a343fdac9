// Package server implements the MCP (Model Context Protocol) server for the
// image transform engine.
//
// This package provides a JSON-RPC 2.0 server that exposes the transforms and
// their supporting color inspection through the MCP protocol.
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
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Transforms:
//   - image_list_transforms: Names and descriptions of the seven transforms
//   - image_transform: Apply a transform, keep the result, preview it
//
// Color Operations:
//   - image_sample_color: Get color at pixel of a file or stored result
//   - image_compare_colors: Same pixel before and after a transform
//
// # Results
//
// Every image_transform call stores its source and result buffers under a
// UUID. Later image_sample_color and image_compare_colors calls refer to
// them by that id. Only the most recent results are kept.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(server.WithConfig(cfg), server.WithLogger(logger))
//	if err := srv.Run(); err != nil {
//	    logger.Fatal(err)
//	}
package server
