package collector

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-tangra/go-tangra-bareinfo/internal/source"
)

// Options controls where the collector looks for facts.
type Options struct {
	// Root is prepended to every probed path. Defaults to "/".
	Root string
	// ShellEnv names the environment variable holding the login shell.
	// Defaults to "SHELL".
	ShellEnv string
	// LookupEnv resolves environment variables. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
	// Logger receives debug records for every fact that fell back to its
	// sentinel. Defaults to a discarding logger.
	Logger *slog.Logger
}

// Collector runs every probe against one filesystem root.
type Collector struct {
	root      string
	shellEnv  string
	lookupEnv func(string) (string, bool)
	log       *slog.Logger
}

// New returns a Collector with defaults filled in for unset options.
func New(opts Options) *Collector {
	c := &Collector{
		root:      opts.Root,
		shellEnv:  opts.ShellEnv,
		lookupEnv: opts.LookupEnv,
		log:       opts.Logger,
	}
	if c.root == "" {
		c.root = "/"
	}
	if c.shellEnv == "" {
		c.shellEnv = "SHELL"
	}
	if c.lookupEnv == nil {
		c.lookupEnv = os.LookupEnv
	}
	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// Collect gathers a full Report. It never fails: each fact that cannot be
// read is reported as its sentinel and the remaining probes still run.
func (c *Collector) Collect() Report {
	start := time.Now()

	var r Report
	r.CPU = c.collectCPU()
	r.BIOS = c.collectBIOS()
	r.Motherboard = c.collectMotherboard()

	r.System.Kernel = c.firstLine("kernel", kernelPath)
	r.System.Shell = c.shell()
	r.System.BuildInfo = c.firstLine("build_info", buildInfoPath)
	r.System.BootMode = c.bootMode()
	r.System.PackageManagers = c.packageManagers()
	r.System.Distro = c.distro()
	r.System.SecureBoot = c.secureBoot()
	r.System.TotalRAMGiB = c.memory(MemoryTotal)
	r.System.FreeRAMGiB = c.memory(MemoryFree)

	c.log.Debug("collection finished", "elapsed", time.Since(start))
	return r
}

// path resolves an absolute host path under the collector root.
func (c *Collector) path(p string) string {
	return filepath.Join(c.root, p)
}

func (c *Collector) firstLine(field, p string) string {
	v := source.ReadFirstLine(c.path(p))
	if v == source.Sentinel {
		c.log.Debug("fact unavailable", "field", field, "path", p)
	}
	return v
}

func (c *Collector) keyedLine(field, p, keyword string) string {
	v := source.ReadKeyedLine(c.path(p), keyword)
	if v == source.Sentinel {
		c.log.Debug("fact unavailable", "field", field, "path", p, "keyword", keyword)
	}
	return v
}
