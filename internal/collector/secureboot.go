package collector

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-tangra/go-tangra-bareinfo/internal/source"
)

const secureBootPrefix = "SecureBoot-"

// variableStores are the EFI variable directories under the firmware
// interface, efivarfs first. The legacy sysfs "vars" layout keeps each
// variable in a directory with the payload in a "data" file.
var variableStores = []string{"efivars", "vars"}

// payloadPeek is how many leading payload bytes are inspected. efivarfs
// prefixes the variable with a 4-byte attribute word, so the flag is the
// fifth byte there and the first byte everywhere else.
const payloadPeek = 5

// DetectSecureBoot reports the Secure Boot state exposed by the firmware
// interface directory efiDir (normally /sys/firmware/efi). Every failure
// ends in a NotApplicable or Unknown result carrying its reason.
func DetectSecureBoot(efiDir string) SecureBoot {
	if !source.Exists(efiDir) {
		return notApplicable("legacy BIOS")
	}

	store := ""
	for _, name := range variableStores {
		if p := filepath.Join(efiDir, name); source.Exists(p) {
			store = p
			break
		}
	}
	if store == "" {
		return notApplicable("no variable store")
	}

	payload, ok := findSecureBootVariable(store)
	if !ok {
		return notApplicable("variable absent")
	}

	data, failure, ok := readPayload(payload, payloadPeek)
	if !ok {
		return failure
	}
	return DecodeSecureBoot(data)
}

// findSecureBootVariable returns the payload path of the first store
// entry named SecureBoot-<guid>.
func findSecureBootVariable(store string) (string, bool) {
	// ReadDir hands back whatever it managed to list even when it fails
	// part way, so a partial listing is still searched.
	entries, _ := os.ReadDir(store)
	return pickSecureBootEntry(store, entries)
}

// pickSecureBootEntry selects the variable from a sorted store listing.
// Entries whose metadata cannot be read are skipped.
func pickSecureBootEntry(store string, entries []fs.DirEntry) (string, bool) {
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), secureBootPrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}

		p := filepath.Join(store, entry.Name())
		if info.IsDir() {
			p = filepath.Join(p, "data")
		}
		return p, true
	}
	return "", false
}

// DecodeSecureBoot interprets the leading bytes of a SecureBoot variable.
// With at least five bytes the flag is byte 4 (efivarfs layout), otherwise
// byte 0. Any non-zero flag means enabled.
func DecodeSecureBoot(data []byte) SecureBoot {
	if len(data) == 0 {
		return unknown("empty or read error")
	}

	offset := 0
	if len(data) >= payloadPeek {
		offset = payloadPeek - 1
	}

	if data[offset] != 0 {
		return SecureBoot{State: SecureBootEnabled, Offset: offset}
	}
	return SecureBoot{State: SecureBootDisabled, Offset: offset}
}

func (c *Collector) secureBoot() SecureBoot {
	sb := DetectSecureBoot(c.path(efiPath))
	c.log.Debug("secure boot detected", "state", sb.String(), "offset", sb.Offset)
	return sb
}
