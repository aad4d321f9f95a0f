package convert

import (
	"bytes"
	"fmt"

	"github.com/go-tangra/go-tangra-bareinfo/internal/collector"
	"github.com/go-tangra/go-tangra-bareinfo/internal/export"
	"github.com/go-tangra/go-tangra-bareinfo/internal/store"
)

// ReportToRecord converts a report to a store record. The JSON column holds
// exactly what the JSON exporter would write for the same report.
func ReportToRecord(r *collector.Report) (*store.SnapshotRecord, error) {
	var buf bytes.Buffer
	if err := (export.JSON{}).Export(&buf, r); err != nil {
		return nil, fmt.Errorf("render report JSON: %w", err)
	}

	sys := r.System
	return &store.SnapshotRecord{
		CPUModel:        r.CPU.Name,
		CPUCores:        r.CPU.Cores,
		CPUVendor:       r.CPU.Vendor,
		BIOSVendor:      r.BIOS.Vendor,
		BIOSVersion:     r.BIOS.Version,
		BIOSDate:        r.BIOS.Date,
		BIOSRelease:     r.BIOS.Release,
		BoardName:       r.Motherboard.Name,
		BoardVendor:     r.Motherboard.Vendor,
		SystemVendor:    r.Motherboard.SystemVendor,
		ProductName:     r.Motherboard.ProductName,
		Kernel:          sys.Kernel,
		Shell:           sys.Shell,
		BuildInfo:       sys.BuildInfo,
		BootMode:        sys.BootMode,
		PackageManagers: collector.JoinPackageManagers(sys.PackageManagers),
		Distro:          sys.Distro,
		SecureBoot:      sys.SecureBoot.String(),
		TotalRAMGB:      sys.TotalRAMGiB,
		FreeRAMGB:       sys.FreeRAMGiB,
		ReportJSON:      buf.String(),
	}, nil
}
