// Package compress provides compression and decompression codecs for CRAM
// block payloads.
//
// This package offers multiple compression algorithms optimized for different
// characteristics of genomic data. Compression is applied at the block level
// after a slice's codecs have produced raw bytes, providing an additional
// layer of space savings beyond the per-data-series encodings in entropy,
// extcodec, and sliceformat.
//
// # Overview
//
// A CRAM block is compressed in two stages:
//
//  1. **Encoding**: a codec (Beta, Golomb, Huffman, external byte array, ...)
//     exploits patterns in a single data series
//  2. **Compression**: the resulting bytes are further reduced by a
//     general-purpose algorithm, named on the block by sliceformat.CompressionType
//
// The compress package implements the second stage, supporting:
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp Compression** (sliceformat.CompressionNone)
//
//	codec := compress.NewNoOpCompressor()
//	compressed, _ := codec.Compress(data)  // Returns data unchanged
//	original, _ := codec.Decompress(compressed)  // Returns data unchanged
//
// Use when:
//   - Data is already well-compressed by its codec
//   - CPU is more critical than storage
//   - Data is incompressible (random, encrypted)
//
// **Zstandard (Zstd)** (sliceformat.CompressionZstd)
//
//	codec := compress.NewZstdCompressor()
//	compressed, _ := codec.Compress(data)  // Best compression ratio
//	original, _ := codec.Decompress(compressed)
//
// Use when storage cost or network bandwidth is the primary concern and
// moderate compression overhead is acceptable; best for quality-score and
// read-name blocks.
//
// **S2 (Snappy Alternative)** (sliceformat.CompressionS2)
//
//	codec := compress.NewS2Compressor()
//	compressed, _ := codec.Compress(data)  // Fast with good compression
//	original, _ := codec.Decompress(compressed)
//
// Use when latency matters more than ratio; best for hot-path query
// responses over a tabix-indexed region.
//
// **LZ4** (sliceformat.CompressionLZ4)
//
//	codec := compress.NewLZ4Compressor()
//	compressed, _ := codec.Compress(data)  // Very fast decompression
//	original, _ := codec.Decompress(compressed)
//
// Use when decompression speed matters more than compression ratio; best
// for repeated random-access reads of a small region.
//
// # Memory Management
//
// The Zstd codec reuses pooled encoders and decoders (sync.Pool) and the LZ4
// codec reuses pooled lz4.Compressor instances across calls; S2 and NoOp keep
// no pooled state.
//
// # Thread Safety
//
// All codec implementations are thread-safe and can be safely shared across
// goroutines, though a codec per goroutine avoids internal lock contention
// under heavy concurrent block decompression.
//
// # Error Handling
//
// Decompress returns an error for corrupted or foreign compressed data. The
// Zstd codec wraps the library error with a "zstd decompression failed"
// prefix; S2 and LZ4 return the library error as is. GetCodec and
// CreateCodec return an error for an unrecognized compression type. No codec
// checks the decompressed size against a declared length.
package compress
