// Package export renders a collector.Report to the console, a text file,
// JSON and the static HTML viewer.
//
// Console, text and JSON output are all driven by the same field table
// (see Sections) so the three always agree on order and values.
package export

import (
	"io"
	"strconv"

	"github.com/go-tangra/go-tangra-bareinfo/internal/collector"
)

// Exporter renders one report to one destination.
type Exporter interface {
	Export(w io.Writer, r *collector.Report) error
}

// Fact categories used to pick console styles.
const (
	CategoryCPU      = "cpu"
	CategoryFirmware = "firmware"
	CategoryBoard    = "board"
	CategoryProduct  = "product"
	CategoryOS       = "os"
	CategoryPlatform = "platform"
)

// Field is one rendered fact.
type Field struct {
	Label    string
	Key      string
	Category string
	Value    string
	// Number marks values emitted unquoted in JSON and suffixed with the
	// unit elsewhere.
	Number bool
}

// Section groups fields under one JSON object.
type Section struct {
	Name   string
	Fields []Field
}

// ramUnit follows numeric values in text and console output.
const ramUnit = " GB"

// FormatNumber renders a measurement with six significant digits and no
// trailing zeros, e.g. 16 or 15.5432.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// FormatGB renders a memory size the way the text exporter prints it.
func FormatGB(v float64) string {
	return FormatNumber(v) + ramUnit
}

// Text returns the value as printed by the text and console exporters.
func (f Field) Text() string {
	if f.Number {
		return f.Value + ramUnit
	}
	return f.Value
}

// Sections lays the report out in output order.
func Sections(r *collector.Report) []Section {
	sys := r.System
	return []Section{
		{Name: "CPU", Fields: []Field{
			{Label: "CPU Model:", Key: "Model", Category: CategoryCPU, Value: r.CPU.Name},
			{Label: "CPU Cores:", Key: "Cores", Category: CategoryCPU, Value: r.CPU.Cores},
			{Label: "CPU Vendor:", Key: "Vendor", Category: CategoryCPU, Value: r.CPU.Vendor},
		}},
		{Name: "BIOS", Fields: []Field{
			{Label: "BIOS/UEFI Vendor:", Key: "Vendor", Category: CategoryFirmware, Value: r.BIOS.Vendor},
			{Label: "BIOS/UEFI Version:", Key: "Version", Category: CategoryFirmware, Value: r.BIOS.Version},
			{Label: "BIOS/UEFI Date:", Key: "Date", Category: CategoryFirmware, Value: r.BIOS.Date},
			{Label: "BIOS/UEFI Release:", Key: "Release", Category: CategoryFirmware, Value: r.BIOS.Release},
		}},
		{Name: "Motherboard", Fields: []Field{
			{Label: "Motherboard Name:", Key: "Name", Category: CategoryBoard, Value: r.Motherboard.Name},
			{Label: "Motherboard Vendor:", Key: "Vendor", Category: CategoryBoard, Value: r.Motherboard.Vendor},
			{Label: "System Vendor:", Key: "SystemVendor", Category: CategoryProduct, Value: r.Motherboard.SystemVendor},
			{Label: "Product Name:", Key: "ProductName", Category: CategoryProduct, Value: r.Motherboard.ProductName},
		}},
		{Name: "System", Fields: []Field{
			{Label: "Kernel:", Key: "Kernel", Category: CategoryOS, Value: sys.Kernel},
			{Label: "Default Shell:", Key: "DefaultShell", Category: CategoryOS, Value: sys.Shell},
			{Label: "Build Info:", Key: "BuildInfo", Category: CategoryOS, Value: sys.BuildInfo},
			{Label: "Boot Mode:", Key: "BootMode", Category: CategoryOS, Value: sys.BootMode},
			{Label: "Package Manager:", Key: "PackageManager", Category: CategoryOS, Value: collector.JoinPackageManagers(sys.PackageManagers)},
			{Label: "Distro name:", Key: "Distro", Category: CategoryPlatform, Value: sys.Distro},
			{Label: "Secure Boot state:", Key: "SecureBoot", Category: CategoryPlatform, Value: sys.SecureBoot.String()},
			{Label: "Total RAM:", Key: "TotalRAM_GB", Category: CategoryPlatform, Value: FormatNumber(sys.TotalRAMGiB), Number: true},
			{Label: "Free RAM:", Key: "FreeRAM_GB", Category: CategoryPlatform, Value: FormatNumber(sys.FreeRAMGiB), Number: true},
		}},
	}
}

// padding returns the spaces that follow label in a column of width.
// At least one space always separates label and value.
func padding(label string, width int) int {
	if n := width - len(label); n > 0 {
		return n
	}
	return 1
}
