package collector

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

const memInfoPath = "/proc/meminfo"

// Memory discriminators accepted by ReadMemory.
const (
	MemoryTotal = "RAM"
	MemoryFree  = "FREE"
)

const kibPerGiB = 1048576.0

var memoryKeys = map[string]string{
	MemoryTotal: "MemTotal:",
	MemoryFree:  "MemAvailable:",
}

// ReadMemory scans a meminfo table for the key selected by which and
// returns its value converted from KiB to GiB. It returns 0 when the file
// is missing, the discriminator is unknown or the key is absent.
func ReadMemory(path, which string) float64 {
	key, ok := memoryKeys[which]
	if !ok {
		return 0
	}

	file, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || fields[0] != key {
			continue
		}

		kib, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return 0
		}
		return float64(kib) / kibPerGiB
	}

	return 0
}

func (c *Collector) memory(which string) float64 {
	gib := ReadMemory(c.path(memInfoPath), which)
	if gib == 0 {
		c.log.Debug("fact unavailable", "field", "memory", "which", which, "path", memInfoPath)
	}
	return gib
}
