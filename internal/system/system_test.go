package system

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestListRegularFilesSortedSkipsDirs(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"zelda.nes", "contra.nes", "mario.nes"} {
		if err := os.WriteFile(filepath.Join(dir, n), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "saves"), 0o755); err != nil {
		t.Fatal(err)
	}

	names, err := ListRegularFiles(dir)
	if err != nil {
		t.Fatalf("ListRegularFiles: %v", err)
	}
	want := []string{"contra.nes", "mario.nes", "zelda.nes"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestListRegularFilesMissingDir(t *testing.T) {
	_, err := ListRegularFiles(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestReadTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "info")
	if err := os.WriteFile(path, []byte("v1.2.3\nbuild 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := ReadTextFile(path); got != "v1.2.3\nbuild 42" {
		t.Fatalf("ReadTextFile = %q", got)
	}
}

func TestReadTextFileMissingYieldsPlaceholder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope")
	got := ReadTextFile(path)
	if !strings.HasPrefix(got, "Error: Cannot open ") {
		t.Fatalf("ReadTextFile = %q, want inline error", got)
	}
	if !strings.Contains(got, path) {
		t.Fatalf("placeholder %q should name the path", got)
	}
}

func TestMemTotalsParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meminfo")
	content := "MemTotal:         249332 kB\n" +
		"MemFree:           96464 kB\n" +
		"MemAvailable:     178202 kB\n" +
		"Buffers:            5212 kB\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	total, available, err := memTotals(path)
	if err != nil {
		t.Fatalf("memTotals: %v", err)
	}
	if total != 249332 {
		t.Fatalf("total = %d, want 249332", total)
	}
	if available != 178202 {
		t.Fatalf("available = %d, want 178202", available)
	}
}

func TestSpawnEmptyCommandIsNoop(t *testing.T) {
	l := NewLauncher(nil)
	l.Spawn("") // must not panic or exec anything
}
