// Package source reads single facts out of kernel and firmware
// pseudo-files. Every reader degrades to [Sentinel] instead of returning
// an error, so one unreadable file never costs the caller anything more
// than the fact it was asked for.
package source

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// Sentinel stands in for any fact that could not be read.
const Sentinel = "N/A"

// ReadKeyedLine returns the value of the first line in path that contains
// keyword. The value starts two bytes past the first colon, matching the
// "label: value" layout of /proc/cpuinfo. A label written without a space
// after its colon therefore loses its first character.
func ReadKeyedLine(path, keyword string) string {
	file, err := os.Open(path)
	if err != nil {
		return Sentinel
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, keyword) {
			continue
		}

		colon := strings.Index(line, ":")
		if colon < 0 || colon+2 > len(line) {
			return Sentinel
		}
		return OrSentinel(line[colon+2:])
	}

	return Sentinel
}

// ReadFirstLine returns the first line of path with only its '\n'
// removed, or Sentinel when the file is missing, unreadable or empty.
// A carriage return before the newline is part of the value.
func ReadFirstLine(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return Sentinel
	}
	defer file.Close()

	line, err := bufio.NewReader(file).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return Sentinel
	}
	return OrSentinel(strings.TrimSuffix(line, "\n"))
}

// Exists reports whether path can be stat'ed.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// OrSentinel returns value, or Sentinel when value is empty.
func OrSentinel(value string) string {
	if value == "" {
		return Sentinel
	}
	return value
}
