package system

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const meminfoPath = "/proc/meminfo"

// ReadTextFile returns the file contents, or an inline error string the
// About screen shows in place of the value. Reads never fail a screen.
func ReadTextFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("Error: Cannot open %s", path)
	}
	return strings.TrimRight(string(data), "\n")
}

// MemTotals reports MemTotal and MemAvailable in kB from /proc/meminfo.
func MemTotals() (totalKB, availableKB int64, err error) {
	return memTotals(meminfoPath)
}

func memTotals(path string) (totalKB, availableKB int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		var v int64
		if _, err := fmt.Sscanf(line, "MemTotal: %d kB", &v); err == nil {
			totalKB = v
			continue
		}
		if _, err := fmt.Sscanf(line, "MemAvailable: %d kB", &v); err == nil {
			availableKB = v
		}
	}
	return totalKB, availableKB, scanner.Err()
}
