package source

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestReadKeyedLine(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		keyword string
		want    string
	}{
		{"cpuinfo tab layout", "processor\t: 0\nmodel name\t: Test CPU\n", "model name", "Test CPU"},
		{"plain layout", "model name : Test CPU\n", "model name", "Test CPU"},
		{"first match wins", "cpu cores\t: 8\ncpu cores\t: 4\n", "cpu cores", "8"},
		{"substring match", "xx vendor_id_ext: GenuineIntel\n", "vendor_id", "GenuineIntel"},
		{"no space after colon drops a character", "vendor_id:AuthenticAMD\n", "vendor_id", "uthenticAMD"},
		{"only first colon counts", "flags : a:b\n", "flags", "a:b"},
		{"no colon", "model name Test CPU\n", "model name", Sentinel},
		{"colon at end of line", "model name:\n", "model name", Sentinel},
		{"empty value", "model name: \n", "model name", Sentinel},
		{"no match", "processor\t: 0\n", "model name", Sentinel},
		{"empty file", "", "model name", Sentinel},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "cpuinfo"+string(rune('a'+i)), tt.content)
			if got := ReadKeyedLine(path, tt.keyword); got != tt.want {
				t.Errorf("ReadKeyedLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadKeyedLineMissingFile(t *testing.T) {
	if got := ReadKeyedLine(filepath.Join(t.TempDir(), "nope"), "model name"); got != Sentinel {
		t.Errorf("ReadKeyedLine() = %q, want %q", got, Sentinel)
	}
}

func TestReadFirstLine(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"single line", "American Megatrends Inc.\n", "American Megatrends Inc."},
		{"no trailing newline", "6.8.0-45-generic", "6.8.0-45-generic"},
		{"keeps inner whitespace", "  ROG STRIX  \nsecond\n", "  ROG STRIX  "},
		{"empty file", "", Sentinel},
		{"empty first line", "\nsecond\n", Sentinel},
		{"keeps carriage return", "ABC\r\n", "ABC\r"},
		{"lone carriage return", "\r\n", "\r"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "dmi"+string(rune('a'+i)), tt.content)
			if got := ReadFirstLine(path); got != tt.want {
				t.Errorf("ReadFirstLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadFirstLineMissingFile(t *testing.T) {
	if got := ReadFirstLine(filepath.Join(t.TempDir(), "bios_vendor")); got != Sentinel {
		t.Errorf("ReadFirstLine() = %q, want %q", got, Sentinel)
	}
}

func TestReadFirstLineDirectory(t *testing.T) {
	if got := ReadFirstLine(t.TempDir()); got != Sentinel {
		t.Errorf("ReadFirstLine(dir) = %q, want %q", got, Sentinel)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "apt", "")

	if !Exists(path) {
		t.Errorf("Exists(%s) = false, want true", path)
	}
	if Exists(filepath.Join(dir, "dnf")) {
		t.Error("Exists(missing) = true, want false")
	}
}
