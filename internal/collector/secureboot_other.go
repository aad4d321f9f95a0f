//go:build !linux

package collector

import (
	"errors"
	"io"
	"os"
)

// readPayload reads at most limit leading bytes of an EFI variable.
func readPayload(path string, limit int) ([]byte, SecureBoot, bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, unknown("permission denied"), false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.Size() <= 0 {
		return nil, unknown("empty or read error"), false
	}

	buf := make([]byte, limit)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, unknown("empty or read error"), false
	}

	return buf[:n], SecureBoot{}, true
}
