package collector

import (
	"strings"

	"github.com/go-tangra/go-tangra-bareinfo/internal/source"
)

// packageManager is one detectable manager and the binaries that betray it.
type packageManager struct {
	name  string
	paths []string
}

// packageManagers is scanned in order; report order follows it.
var packageManagers = []packageManager{
	{"apt", []string{"/usr/bin/apt", "/usr/bin/apt-get"}},
	{"dnf", []string{"/usr/bin/dnf"}},
	{"yum", []string{"/usr/bin/yum"}},
	{"pacman", []string{"/usr/bin/pacman"}},
	{"yay", []string{"/usr/bin/yay"}},
	{"paru", []string{"/usr/bin/paru"}},
	{"zypper", []string{"/usr/bin/zypper"}},
	{"emerge", []string{"/usr/bin/emerge"}},
	{"nix", []string{"/run/current-system/sw/bin/nix-env"}},
	{"snap", []string{"/usr/bin/snap"}},
	{"flatpak", []string{"/usr/bin/flatpak"}},
	{"apk", []string{"/sbin/apk"}},
	{"brew", []string{"/home/linuxbrew/.linuxbrew/bin/brew", "/usr/bin/brew"}},
	{"conda", []string{"/usr/bin/conda"}},
	{"pip", []string{"/usr/bin/pip"}},
	{"pkg", []string{"/usr/sbin/pkg"}},
	{"guix", []string{"/usr/bin/guix"}},
}

// UnknownPackageManager is printed when no manager was found.
const UnknownPackageManager = "unknown"

// detectPackageManagers checks candidate paths for existence only; nothing
// is executed. A name is reported at most once even if several table rows
// share it.
func detectPackageManagers(table []packageManager, exists func(string) bool) []string {
	found := []string{}
	seen := make(map[string]bool)
	for _, pm := range table {
		if seen[pm.name] {
			continue
		}
		for _, p := range pm.paths {
			if exists(p) {
				found = append(found, pm.name)
				seen[pm.name] = true
				break
			}
		}
	}
	return found
}

func (c *Collector) packageManagers() []string {
	found := detectPackageManagers(packageManagers, func(p string) bool {
		return source.Exists(c.path(p))
	})
	if len(found) == 0 {
		c.log.Debug("no package manager detected")
	}
	return found
}

// JoinPackageManagers renders the detected list for display.
func JoinPackageManagers(names []string) string {
	if len(names) == 0 {
		return UnknownPackageManager
	}
	return strings.Join(names, ", ")
}
