package compress

// NoOpCompressor bypasses compression, returning input data unchanged.
// Grounded on the teacher's compress.NoOpCompressor — same role, same
// zero-allocation passthrough behavior.
type NoOpCompressor struct{}

var _ Codec = NoOpCompressor{}

// NewNoOpCompressor returns a Codec that performs no compression.
func NewNoOpCompressor() NoOpCompressor { return NoOpCompressor{} }

func (c NoOpCompressor) Compress(data []byte) ([]byte, error) { return data, nil }

func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) { return data, nil }
