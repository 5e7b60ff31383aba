package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor compresses record bodies with klauspost/compress/zstd, a
// pure-Go codec — unlike the teacher's cgo-gated gozstd binding (see
// DESIGN.md), this has no C toolchain dependency, which matters for a
// generic serialization core meant to cross-compile freely.
type ZstdCompressor struct{}

var _ Codec = ZstdCompressor{}

var (
	zstdEncoderOnce sync.Once
	zstdEncoder     *zstd.Encoder
	zstdDecoderOnce sync.Once
	zstdDecoder     *zstd.Decoder
)

func sharedZstdEncoder() *zstd.Encoder {
	zstdEncoderOnce.Do(func() {
		zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	})

	return zstdEncoder
}

func sharedZstdDecoder() *zstd.Decoder {
	zstdDecoderOnce.Do(func() {
		zstdDecoder, _ = zstd.NewReader(nil)
	})

	return zstdDecoder
}

// NewZstdCompressor returns a Codec backed by a shared, concurrency-safe
// zstd encoder/decoder pair (both types are documented safe for concurrent
// EncodeAll/DecodeAll use).
func NewZstdCompressor() ZstdCompressor { return ZstdCompressor{} }

func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	enc := sharedZstdEncoder()
	if enc == nil {
		return nil, fmt.Errorf("compress: zstd encoder unavailable")
	}

	return enc.EncodeAll(data, nil), nil
}

func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	dec := sharedZstdDecoder()
	if dec == nil {
		return nil, fmt.Errorf("compress: zstd decoder unavailable")
	}

	return dec.DecodeAll(data, nil)
}
