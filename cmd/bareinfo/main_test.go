package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/go-tangra/go-tangra-bareinfo/internal/store"
)

// runCLI executes the root command with args from inside a fresh working
// directory and returns that directory with the captured output.
func runCLI(t *testing.T, args ...string) (dir string, stdout string, err error) {
	t.Helper()
	dir = t.TempDir()
	t.Chdir(dir)

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(normalizeArgs(args))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err = cmd.Execute()
	return dir, out.String(), err
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// syntheticRoot builds a tiny host tree with a CPU and meminfo.
func syntheticRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"proc/cpuinfo": "model name : Test CPU\ncpu cores : 2\nvendor_id : GenuineIntel\n",
		"proc/meminfo": "MemTotal: 16777216 kB\nMemAvailable: 8388608 kB\n",
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestNormalizeArgs(t *testing.T) {
	got := normalizeArgs([]string{"-export", "-ExportToHTML", "-ExportToJSON", "--export-to-file", "-v"})
	want := []string{"--export", "--ExportToHTML", "--ExportToJSON", "--export-to-file", "-v"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("normalizeArgs() = %v, want %v", got, want)
	}
}

func TestInvalidInvocationWritesNothing(t *testing.T) {
	tests := [][]string{
		{"--bogus"},
		{"-ExportToXML"},
		{"report"},
		{"--export", "--ExportToJSON"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			dir, stdout, err := runCLI(t, args...)
			if err == nil {
				t.Fatal("Execute succeeded, want error")
			}
			if stdout != "" {
				t.Errorf("stdout = %q, want nothing", stdout)
			}
			if names := listDir(t, dir); len(names) != 0 {
				t.Errorf("files created: %v", names)
			}
		})
	}
}

func TestExportJSON(t *testing.T) {
	root := syntheticRoot(t)
	dir, _, err := runCLI(t, "-ExportToJSON", "--root", root)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "bareinfo.json"))
	if err != nil {
		t.Fatalf("read bareinfo.json: %v", err)
	}

	var doc map[string]map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("bareinfo.json is not valid JSON: %v\n%s", err, data)
	}
	if doc["CPU"]["Model"] != "Test CPU" {
		t.Errorf("CPU.Model = %#v, want Test CPU", doc["CPU"]["Model"])
	}
	if doc["System"]["TotalRAM_GB"] != 16.0 {
		t.Errorf("System.TotalRAM_GB = %#v, want 16", doc["System"]["TotalRAM_GB"])
	}
	if doc["BIOS"]["Vendor"] != "N/A" {
		t.Errorf("BIOS.Vendor = %#v, want N/A", doc["BIOS"]["Vendor"])
	}
	if doc["System"]["BootMode"] != "BIOS" {
		t.Errorf("System.BootMode = %#v, want BIOS", doc["System"]["BootMode"])
	}
}

func TestExportText(t *testing.T) {
	root := syntheticRoot(t)
	for _, flag := range []string{"--export-to-file", "--export", "-export"} {
		t.Run(flag, func(t *testing.T) {
			dir, _, err := runCLI(t, flag, "--root", root)
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}

			data, err := os.ReadFile(filepath.Join(dir, "bareinfo.txt"))
			if err != nil {
				t.Fatalf("read bareinfo.txt: %v", err)
			}
			if !strings.HasPrefix(string(data), "CPU Model:          Test CPU\n") {
				t.Errorf("unexpected text output:\n%s", data)
			}
			if !strings.Contains(string(data), "Total RAM:          16 GB\n") {
				t.Errorf("text output missing RAM line:\n%s", data)
			}
		})
	}
}

func TestExportHTML(t *testing.T) {
	dir, _, err := runCLI(t, "-ExportToHTML")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if names := listDir(t, dir); !reflect.DeepEqual(names, []string{"Bareinfo.html"}) {
		t.Errorf("files = %v, want [Bareinfo.html]", names)
	}
}

func TestOutputDir(t *testing.T) {
	out := t.TempDir()
	dir, _, err := runCLI(t, "--ExportToJSON", "--root", syntheticRoot(t), "--output-dir", out)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "bareinfo.json")); err != nil {
		t.Errorf("bareinfo.json not in output dir: %v", err)
	}
	if names := listDir(t, dir); len(names) != 0 {
		t.Errorf("working directory not empty: %v", names)
	}
}

func TestConsoleReport(t *testing.T) {
	_, stdout, err := runCLI(t, "--root", syntheticRoot(t), "--color", "never")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("console printed %d lines, want 20:\n%s", len(lines), stdout)
	}
	if lines[0] != "CPU Model:          Test CPU" {
		t.Errorf("first line = %q", lines[0])
	}
	if strings.Contains(stdout, "\x1b[") {
		t.Errorf("colour escapes with --color never:\n%q", stdout)
	}
}

func TestConsoleRejectsBadColorMode(t *testing.T) {
	if _, _, err := runCLI(t, "--color", "rainbow"); err == nil {
		t.Fatal("Execute accepted --color rainbow")
	}
}

func TestSQLiteSnapshotAndHistory(t *testing.T) {
	root := syntheticRoot(t)
	dir, _, err := runCLI(t, "--export-sqlite", "--root", root)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	db, err := store.New(filepath.Join(dir, "bareinfo.db"))
	if err != nil {
		t.Fatalf("open snapshot db: %v", err)
	}
	defer db.Close()

	records, err := db.List(t.Context(), 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("stored %d snapshots, want 1", len(records))
	}
	if records[0].CPUModel != "Test CPU" || records[0].TotalRAMGB != 16 {
		t.Errorf("snapshot = %+v", records[0])
	}
}

func TestWriteHistory(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	records := []store.SnapshotRecord{
		{ID: 2, StoredAt: now.Add(-2 * time.Hour), Kernel: "6.8.0", Distro: "Fedora Linux 40", SecureBoot: "Enabled", TotalRAMGB: 32, FreeRAMGB: 20.5},
	}

	var buf bytes.Buffer
	writeHistory(&buf, records, now)

	out := buf.String()
	for _, want := range []string{"ID", "SECURE BOOT", "2 hours ago", "Fedora Linux 40", "32 GB", "20.5 GB"} {
		if !strings.Contains(out, want) {
			t.Errorf("history output missing %q:\n%s", want, out)
		}
	}
}

func TestVersion(t *testing.T) {
	_, stdout, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.HasPrefix(stdout, "bareinfo dev") {
		t.Errorf("version output = %q", stdout)
	}
}

func TestHistoryWithoutDatabase(t *testing.T) {
	for _, args := range [][]string{{"history"}, {"history", "purge"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			dir, stdout, err := runCLI(t, args...)
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if names := listDir(t, dir); len(names) != 0 {
				t.Errorf("files created: %v", names)
			}
			if stdout == "" {
				t.Error("no output")
			}
		})
	}
}

func TestHistoryListsStoredSnapshot(t *testing.T) {
	root := syntheticRoot(t)
	dir, _, err := runCLI(t, "--export-sqlite", "--root", root)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"history", "--output-dir", dir})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("history: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("history printed %d lines, want header and one row:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[1], "16 GB") {
		t.Errorf("row missing total RAM: %q", lines[1])
	}
}
