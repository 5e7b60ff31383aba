// Package recordio offers filesystem collaborators for code that stores
// serialized envelopes on disk. Nothing in buffer, codec, envelope, or
// record depends on this package — it sits at the boundary callers use,
// the same separation mebo draws between its blob encoders and the
// file-loading helpers under tests/measure.
package recordio

import (
	"errors"
	"fmt"
	"os"

	"github.com/arloliu/serialcore/corerr"
)

// ReadFile reads the full contents of path, ready to hand to buffer.NewReader.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", corerr.ErrFileNotFound, path)
		}

		return nil, fmt.Errorf("%w: %s: %w", corerr.ErrIO, path, err)
	}

	return data, nil
}

// WriteFile writes data to path, overwriting any existing file.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("%w: %s: %w", corerr.ErrIO, path, err)
	}

	return nil
}
