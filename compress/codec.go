// Package compress implements the optional body compression a record can
// opt into before its bytes reach the envelope: a caller wraps the record
// with Wrap and a chosen Codec. The Algorithm values follow the numbering
// of the envelope Flags' 2-bit compression selector (spec.md §3: "bits 3-4:
// compression algorithm selector (0-3; 0 = none; others reserved)"), with
// 1 and 3 given a concrete meaning here, but neither this package nor the
// envelope writes or reads those selector bits. The core's default path
// never applies compression.
package compress

import "fmt"

// Compressor compresses a record body before it is framed.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions, the same split mebo's compress package
// uses so future asymmetric implementations (e.g. a decode-only codec for
// a read replica) stay possible.
type Codec interface {
	Compressor
	Decompressor
}

// Algorithm identifies a built-in compressor for NewCodec. Its values match
// the envelope Flags' compression selector numbering; nothing writes an
// Algorithm into a header's flags.
type Algorithm uint8

const (
	// AlgorithmNone leaves the body untouched. Corresponds to flags value 0.
	AlgorithmNone Algorithm = 0
	// AlgorithmZstd compresses with klauspost/compress/zstd. Flags value 1.
	AlgorithmZstd Algorithm = 1
	// AlgorithmLZ4 compresses with pierrec/lz4/v4. Flags value 3 (2 is left
	// unassigned for a future algorithm, matching the selector's 2-bit
	// width of four total slots).
	AlgorithmLZ4 Algorithm = 3
)

// NewCodec returns the built-in Codec for algo.
func NewCodec(algo Algorithm) (Codec, error) {
	switch algo {
	case AlgorithmNone:
		return NewNoOpCompressor(), nil
	case AlgorithmZstd:
		return NewZstdCompressor(), nil
	case AlgorithmLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("compress: unsupported algorithm %d", algo)
	}
}
