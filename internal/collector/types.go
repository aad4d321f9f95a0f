package collector

import "fmt"

// Report holds every fact gathered from the local host during one run.
// It is built once by Collect and only read afterwards.
type Report struct {
	CPU         CPU
	BIOS        BIOS
	Motherboard Motherboard
	System      System
}

// CPU holds processor identity from /proc/cpuinfo.
type CPU struct {
	Name   string
	Cores  string
	Vendor string
}

// BIOS holds firmware identity from /sys/class/dmi/id.
type BIOS struct {
	Vendor  string
	Version string
	Date    string
	Release string
}

// Motherboard holds board and system identity from /sys/class/dmi/id.
type Motherboard struct {
	Name         string
	Vendor       string
	SystemVendor string
	ProductName  string
}

// System holds operating system, boot and memory facts.
type System struct {
	Kernel          string
	Shell           string
	BuildInfo       string
	BootMode        string
	PackageManagers []string
	Distro          string
	SecureBoot      SecureBoot
	TotalRAMGiB     float64
	FreeRAMGiB      float64
}

// SecureBootState is the outcome of Secure Boot detection.
type SecureBootState int

const (
	SecureBootUnknown SecureBootState = iota
	SecureBootEnabled
	SecureBootDisabled
	SecureBootNotApplicable
)

// NoOffset marks a SecureBoot result that was not decoded from a payload.
const NoOffset = -1

// SecureBoot is the decoded Secure Boot state. Reason is set for the
// NotApplicable and Unknown states; Offset is the payload byte the flag
// was taken from, or NoOffset.
type SecureBoot struct {
	State  SecureBootState
	Reason string
	Offset int
}

func notApplicable(reason string) SecureBoot {
	return SecureBoot{State: SecureBootNotApplicable, Reason: reason, Offset: NoOffset}
}

func unknown(reason string) SecureBoot {
	return SecureBoot{State: SecureBootUnknown, Reason: reason, Offset: NoOffset}
}

// String renders the state the way every exporter prints it.
func (s SecureBoot) String() string {
	switch s.State {
	case SecureBootEnabled:
		return "Enabled"
	case SecureBootDisabled:
		return "Disabled"
	case SecureBootNotApplicable:
		return fmt.Sprintf("N/A (%s)", s.Reason)
	default:
		if s.Reason == "" {
			return "Unknown"
		}
		return fmt.Sprintf("Unknown (%s)", s.Reason)
	}
}
