// Package server implements the MCP (Model Context Protocol) server for YCbCr color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes YCbCr color values
// and JPEG sample inspection through the MCP protocol.
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
// Color Value Operations:
//   - ycbcr_new: Build a clamped color from y, cb, cr
//   - ycbcr_from_vector: Build a clamped color from a [y, cb, cr] vector
//   - ycbcr_compare: Exact equality and hash comparison of two colors
//
// Image Operations:
//   - image_load: Load image and get metadata
//   - image_sample_ycbcr: Read the stored YCbCr value at a pixel
//   - image_sample_ycbcr_multi: Sample multiple points
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls. The cache persists for the
// lifetime of the server process.
//
// # Error Handling
//
// Tool errors are returned as JSON-RPC error responses with:
//   - code: -32602 (invalid arguments), -32000 (tool execution failure), or
//     -32601 (unknown method)
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.NewWithConfig(server.Config{Debug: true})
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
