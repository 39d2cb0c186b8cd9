// Package server implements an MCP (Model Context Protocol) server exposing
// the steganography operations as tools.
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
//   - stego_image_info: Metadata and capacity table for a cover image
//   - stego_hide: Embed text or base64 data and write the stego image
//   - stego_extract: Extract a known number of bytes for a known group size
//   - stego_search: Sweep group sizes for printable hidden text
//
// Binary payloads travel as base64. Extracted bytes are returned as base64
// and, when they are valid UTF-8, also as text.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
// The server is started by "emd-stegano serve", typically from an MCP client
// configuration:
//
//	srv := server.New(cfg, logger, version)
//	if err := srv.Run(ctx, os.Stdin, os.Stdout); err != nil {
//	    return err
//	}
package server
