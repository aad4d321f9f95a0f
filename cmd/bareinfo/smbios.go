package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-tangra/go-tangra-bareinfo/internal/smbios"
)

func newSMBIOSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "smbios",
		Short: "Decode the SMBIOS table and compare it with the sysfs DMI facts",
		Long: `Decode the raw SMBIOS table exposed by the kernel and print the firmware
identity strings it contains, followed by every fact on which the table and
/sys/class/dmi/id disagree. Reading the table usually requires root.`,
		Args: cobra.NoArgs,
		RunE: runSMBIOS,
	}
}

func runSMBIOS(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	sum, err := smbios.Read()
	if err != nil {
		return err
	}

	r := e.collect()
	writeSMBIOS(cmd.OutOrStdout(), e.cfg.LabelWidth, sum, smbios.Compare(sum, &r))
	return nil
}

func writeSMBIOS(w io.Writer, width int, sum *smbios.Summary, mismatches []smbios.Mismatch) {
	line := func(label, value string) {
		pad := width - len(label)
		if pad < 1 {
			pad = 1
		}
		fmt.Fprintf(w, "%s%s%s\n", label, strings.Repeat(" ", pad), value)
	}

	line("SMBIOS Version:", sum.Version)
	line("BIOS Vendor:", sum.BIOSVendor)
	line("BIOS Version:", sum.BIOSVersion)
	line("BIOS Date:", sum.BIOSReleaseDate)
	line("System Vendor:", sum.SystemManufacturer)
	line("Product Name:", sum.SystemProduct)
	line("Board Vendor:", sum.BoardManufacturer)
	line("Board Name:", sum.BoardProduct)

	if len(mismatches) == 0 {
		fmt.Fprintln(w, "sysfs DMI facts match the SMBIOS table")
		return
	}
	fmt.Fprintf(w, "%d fact(s) differ from sysfs:\n", len(mismatches))
	for _, m := range mismatches {
		fmt.Fprintf(w, "  %s: sysfs %q, SMBIOS %q\n", m.Field, m.DMI, m.SMBIOS)
	}
}
