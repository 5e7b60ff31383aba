package codec

import (
	"strings"
	"unicode/utf8"

	"github.com/arloliu/serialcore/buffer"
	"github.com/arloliu/serialcore/corerr"
)

// WriteString encodes s as a SizeWire length followed by its raw UTF-8
// bytes. No null terminator, no validation of s's encoding (caller
// contract, spec.md §4.3).
func WriteString(w *buffer.Writer, s string) error {
	if err := WriteSize(w, uint64(len(s))); err != nil {
		return err
	}

	return w.Write([]byte(s))
}

// ReadString decodes a SizeWire-prefixed UTF-8 string. The bytes are not
// validated as UTF-8 (spec.md §4.3) — a truncated stream fails on the raw
// byte read, never producing a partial string.
func ReadString(r *buffer.Reader) (string, error) {
	n, err := ReadSizeAsInt(r)
	if err != nil {
		return "", err
	}

	b, err := r.Read(n)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// WriteWideString encodes units, the host's wide (UTF-16 code unit) form
// of a string, as a UTF-8 string on the wire. A lone surrogate is a fatal
// encode error (spec.md §4.3, §7 ErrInvalidSurrogate).
func WriteWideString(w *buffer.Writer, units []uint16) error {
	s, err := WideToUTF8(units)
	if err != nil {
		return err
	}

	return WriteString(w, s)
}

// ReadWideString decodes a UTF-8 string from the wire and converts it to
// the host's wide (UTF-16 code unit) form, emitting surrogate pairs for
// non-BMP code points. Malformed UTF-8 is a fatal decode error (spec.md
// §4.3, §7 ErrInvalidUTF8).
func ReadWideString(r *buffer.Reader) ([]uint16, error) {
	s, err := ReadString(r)
	if err != nil {
		return nil, err
	}

	return UTF8ToWide(s)
}

const (
	surrogateHighStart = 0xD800
	surrogateHighEnd   = 0xDBFF
	surrogateLowStart  = 0xDC00
	surrogateLowEnd    = 0xDFFF
	surrogateBase      = 0x10000
)

// WideToUTF8 converts a sequence of UTF-16 code units to a UTF-8 string,
// recombining surrogate pairs into their non-BMP code point. A lone high
// or low surrogate is rejected with corerr.ErrInvalidSurrogate — the
// conversion formula is grounded on the surrogate-pair recombination used
// by the pack's oy3o-codec ReadUTF16StringUntilNull reference.
func WideToUTF8(units []uint16) (string, error) {
	var b strings.Builder
	b.Grow(len(units))

	for i := 0; i < len(units); i++ {
		u := units[i]

		switch {
		case u >= surrogateHighStart && u <= surrogateHighEnd:
			if i+1 >= len(units) {
				return "", corerr.ErrInvalidSurrogate
			}
			lo := units[i+1]
			if lo < surrogateLowStart || lo > surrogateLowEnd {
				return "", corerr.ErrInvalidSurrogate
			}
			r := surrogateBase + (rune(u-surrogateHighStart) << 10) + rune(lo-surrogateLowStart)
			b.WriteRune(r)
			i++
		case u >= surrogateLowStart && u <= surrogateLowEnd:
			return "", corerr.ErrInvalidSurrogate
		default:
			b.WriteRune(rune(u))
		}
	}

	return b.String(), nil
}

// UTF8ToWide converts a UTF-8 string into UTF-16 code units, splitting
// non-BMP code points into surrogate pairs. Go's utf8.DecodeRuneInString
// already rejects overlong encodings, UTF-8-encoded surrogates, code
// points above U+10FFFF, and truncated/stray-continuation sequences per
// RFC 3629 — every class spec.md §8 requires rejecting — so no separate
// validation pass is needed here.
func UTF8ToWide(s string) ([]uint16, error) {
	units := make([]uint16, 0, len(s))

	for i, w := 0, 0; i < len(s); i += w {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, corerr.ErrInvalidUTF8
		}
		w = size

		if r > 0xFFFF {
			r -= surrogateBase
			units = append(units,
				uint16(surrogateHighStart+(r>>10)),
				uint16(surrogateLowStart+(r&0x3FF)),
			)
		} else {
			units = append(units, uint16(r))
		}
	}

	return units, nil
}
