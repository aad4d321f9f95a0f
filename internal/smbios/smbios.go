// Package smbios decodes the raw SMBIOS table and cross-checks it against
// the DMI facts the collector read from sysfs.
package smbios

import (
	"fmt"
	"strings"

	gosmbios "github.com/siderolabs/go-smbios/smbios"

	"github.com/go-tangra/go-tangra-bareinfo/internal/collector"
	"github.com/go-tangra/go-tangra-bareinfo/internal/source"
)

// Summary holds the firmware identity strings decoded from SMBIOS.
type Summary struct {
	Version            string
	BIOSVendor         string
	BIOSVersion        string
	BIOSReleaseDate    string
	SystemManufacturer string
	SystemProduct      string
	BoardManufacturer  string
	BoardProduct       string
}

// Read decodes the SMBIOS table exposed by the running kernel.
func Read() (*Summary, error) {
	s, err := gosmbios.New()
	if err != nil {
		return nil, fmt.Errorf("read SMBIOS: %w", err)
	}
	return Summarize(s), nil
}

// Summarize extracts the identity strings from a decoded table. Empty
// strings become the sentinel so they line up with collector output.
func Summarize(s *gosmbios.SMBIOS) *Summary {
	return &Summary{
		Version:            fmt.Sprintf("%d.%d.%d", s.Version.Major, s.Version.Minor, s.Version.Revision),
		BIOSVendor:         clean(s.BIOSInformation.Vendor),
		BIOSVersion:        clean(s.BIOSInformation.Version),
		BIOSReleaseDate:    clean(s.BIOSInformation.ReleaseDate),
		SystemManufacturer: clean(s.SystemInformation.Manufacturer),
		SystemProduct:      clean(s.SystemInformation.ProductName),
		BoardManufacturer:  clean(s.BaseboardInformation.Manufacturer),
		BoardProduct:       clean(s.BaseboardInformation.Product),
	}
}

func clean(v string) string {
	return source.OrSentinel(strings.TrimSpace(v))
}

// Mismatch is a fact on which sysfs and the SMBIOS table disagree.
type Mismatch struct {
	Field  string
	DMI    string
	SMBIOS string
}

// Compare lists the facts whose sysfs value differs from the SMBIOS one.
// Facts missing from sysfs are skipped; there is nothing to disagree with.
func Compare(sum *Summary, r *collector.Report) []Mismatch {
	pairs := []Mismatch{
		{"BIOS Vendor", r.BIOS.Vendor, sum.BIOSVendor},
		{"BIOS Version", r.BIOS.Version, sum.BIOSVersion},
		{"BIOS Date", r.BIOS.Date, sum.BIOSReleaseDate},
		{"System Vendor", r.Motherboard.SystemVendor, sum.SystemManufacturer},
		{"Product Name", r.Motherboard.ProductName, sum.SystemProduct},
		{"Motherboard Vendor", r.Motherboard.Vendor, sum.BoardManufacturer},
		{"Motherboard Name", r.Motherboard.Name, sum.BoardProduct},
	}

	var out []Mismatch
	for _, p := range pairs {
		if p.DMI == source.Sentinel {
			continue
		}
		if strings.TrimSpace(p.DMI) != p.SMBIOS {
			out = append(out, p)
		}
	}
	return out
}
