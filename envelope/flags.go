// Package envelope implements the header framing that wraps a record's
// body on the wire: a 1-octet Flags bitfield, a 24-octet Header, and the
// two-pass Serialize/validated Deserialize protocol that ties them to a
// record.Record.
package envelope

// Flags is the 1-octet bitfield carried at header offset 7, grounded on
// the packed-bitfield-with-typed-accessors shape of section.NumericFlag
// but redefined for this wire layout (see layout below). LSB numbering:
//
//	bit 0:   0 = big-endian payload, 1 = little-endian payload
//	bit 1:   checksum enabled
//	bit 2:   timestamp enabled
//	bit 3-4: compression algorithm selector (0 = none)
//	bit 5-6: encryption algorithm selector (0 = none)
//	bit 7:   strict mode (version mismatch is fatal, not warned)
type Flags uint8

const (
	bitLittleEndian = 1 << 0
	bitChecksum     = 1 << 1
	bitTimestamp    = 1 << 2
	compressionLSB  = 3
	compressionMask = 0b11 << compressionLSB
	encryptionLSB   = 5
	encryptionMask  = 0b11 << encryptionLSB
	bitStrict       = 1 << 7
)

// LittleEndian reports whether the payload's multi-octet fields are
// little-endian.
func (f Flags) LittleEndian() bool { return f&bitLittleEndian != 0 }

// WithLittleEndian returns f with the endian bit set per v.
func (f Flags) WithLittleEndian(v bool) Flags { return setBit(f, bitLittleEndian, v) }

// Checksum reports whether the header's checksum field is populated.
func (f Flags) Checksum() bool { return f&bitChecksum != 0 }

// WithChecksum returns f with the checksum-enabled bit set per v.
func (f Flags) WithChecksum(v bool) Flags { return setBit(f, bitChecksum, v) }

// Timestamp reports whether the header's timestamp field is populated.
func (f Flags) Timestamp() bool { return f&bitTimestamp != 0 }

// WithTimestamp returns f with the timestamp-enabled bit set per v.
func (f Flags) WithTimestamp(v bool) Flags { return setBit(f, bitTimestamp, v) }

// Compression returns the 2-bit compression algorithm selector (0-3).
func (f Flags) Compression() uint8 { return uint8(f&compressionMask) >> compressionLSB }

// WithCompression returns f with the compression selector set to algo
// (only the low 2 bits of algo are used).
func (f Flags) WithCompression(algo uint8) Flags {
	return f&^compressionMask | Flags(algo&0b11)<<compressionLSB
}

// Encryption returns the 2-bit encryption algorithm selector (0-3).
func (f Flags) Encryption() uint8 { return uint8(f&encryptionMask) >> encryptionLSB }

// WithEncryption returns f with the encryption selector set to algo
// (only the low 2 bits of algo are used).
func (f Flags) WithEncryption(algo uint8) Flags {
	return f&^encryptionMask | Flags(algo&0b11)<<encryptionLSB
}

// Strict reports whether a version mismatch on decode is fatal rather than
// a logged warning.
func (f Flags) Strict() bool { return f&bitStrict != 0 }

// WithStrict returns f with the strict-mode bit set per v.
func (f Flags) WithStrict(v bool) Flags { return setBit(f, bitStrict, v) }

func setBit(f Flags, mask Flags, v bool) Flags {
	if v {
		return f | mask
	}

	return f &^ mask
}
