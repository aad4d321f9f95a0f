package collector

import (
	"bufio"
	"os"
	"strings"

	"github.com/go-tangra/go-tangra-bareinfo/internal/source"
)

const (
	kernelPath    = "/proc/sys/kernel/osrelease"
	buildInfoPath = "/proc/version"
	osReleasePath = "/etc/os-release"
	efiPath       = "/sys/firmware/efi"
)

// Boot modes.
const (
	BootModeUEFI = "UEFI"
	BootModeBIOS = "BIOS"
)

// shell reads the login shell from the environment. No shell process is
// spawned.
func (c *Collector) shell() string {
	v, ok := c.lookupEnv(c.shellEnv)
	if !ok || v == "" {
		c.log.Debug("fact unavailable", "field", "shell", "env", c.shellEnv)
		return source.Sentinel
	}
	return v
}

// ReadPrettyName returns the PRETTY_NAME value of an os-release file with
// one layer of surrounding double quotes removed.
func ReadPrettyName(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return source.Sentinel
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok || strings.TrimSpace(key) != "PRETTY_NAME" {
			continue
		}
		if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
			value = value[1 : len(value)-1]
		}
		return source.OrSentinel(value)
	}

	return source.Sentinel
}

func (c *Collector) distro() string {
	v := ReadPrettyName(c.path(osReleasePath))
	if v == source.Sentinel {
		c.log.Debug("fact unavailable", "field", "distro", "path", osReleasePath)
	}
	return v
}

func (c *Collector) bootMode() string {
	if source.Exists(c.path(efiPath)) {
		return BootModeUEFI
	}
	return BootModeBIOS
}
