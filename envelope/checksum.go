package envelope

// checksumRangeStart is the offset, relative to a header's start (p0), at
// which the checksum-covered range begins: everything after the 4-byte
// checksum slot itself.
const checksumRangeStart = 4

// computeChecksum implements the deterministic rolling hash: seed with
// bodySize reinterpreted as int32, then fold in each covered octet with
// h = h*31 + b using 32-bit signed wraparound. 0 is reserved for "absent",
// so a hash that lands on 0 is rewritten to 1.
func computeChecksum(bodySize uint64, covered []byte) int32 {
	h := int32(bodySize) //nolint:gosec // wraparound into the seed is the defined behavior

	for _, b := range covered {
		h = h*31 + int32(b)
	}

	if h == 0 {
		h = 1
	}

	return h
}
