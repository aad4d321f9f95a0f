//go:build linux

package collector

import (
	"golang.org/x/sys/unix"
)

// readPayload reads at most limit leading bytes of an EFI variable. On
// efivarfs every file starts with the 4-byte attribute word, so a payload
// no longer than that carries no flag byte and is rejected.
func readPayload(path string, limit int) ([]byte, SecureBoot, bool) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, unknown("permission denied"), false
	}
	defer unix.Close(fd)

	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil || st.Size <= 0 {
		return nil, unknown("empty or read error"), false
	}

	buf := make([]byte, limit)
	n := 0
	for n < limit {
		m, err := unix.Read(fd, buf[n:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, unknown("empty or read error"), false
		}
		if m == 0 {
			break
		}
		n += m
	}
	if n == 0 {
		return nil, unknown("empty or read error"), false
	}

	var fs unix.Statfs_t
	if err := unix.Fstatfs(fd, &fs); err == nil && attributesOnly(uint32(fs.Type), n) {
		return nil, unknown("empty or read error"), false
	}

	return buf[:n], SecureBoot{}, true
}

// attributesOnly reports whether n bytes read from a filesystem of type
// fsType hold nothing beyond an efivarfs attribute word.
func attributesOnly(fsType uint32, n int) bool {
	return fsType == uint32(unix.EFIVARFS_MAGIC) && n < payloadPeek
}
