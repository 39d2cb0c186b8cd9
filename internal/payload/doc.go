// Package payload reads the bytes to be hidden and writes the bytes that were
// extracted.
//
// A payload comes either from an inline text argument or from a file and is
// embedded as-is; the codec never adds a header or length prefix, so the
// extractor has to know the exact byte length. Optional zstd compression
// shrinks text payloads before embedding, in which case the compressed length
// is the one to pass to extraction.
package payload
