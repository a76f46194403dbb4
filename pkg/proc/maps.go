package proc

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// ReadMapLines reads /proc/<pid>/maps and returns its raw lines. Parsing
// is left to the caller; this only performs the file I/O.
func ReadMapLines(pid int) ([]string, error) {
	mapfile := HostProcPath(fmt.Sprintf("%d", pid), "maps")
	if err := unix.Access(mapfile, unix.R_OK); err != nil {
		return nil, fmt.Errorf("access %s: %w", mapfile, err)
	}
	f, err := os.Open(mapfile)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", mapfile, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", mapfile, err)
	}
	return lines, nil
}

// SelfMapLines reads the current process's maps.
func SelfMapLines() ([]string, error) {
	return ReadMapLines(unix.Getpid())
}
