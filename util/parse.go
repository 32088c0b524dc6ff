package util

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// ReadFileLines reads a file and returns its lines.
func ReadFileLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// ParseInt64 parses a string to int64, returning 0 on error. Unit
// suffixes used by the bdi debugfs files ("kB", "kBps") are stripped.
func ParseInt64(s string) int64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "kBps")
	s = strings.TrimSuffix(s, "kB")
	s = strings.TrimSpace(s)
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

// ParseUint64 parses a string to uint64, returning 0 on error.
func ParseUint64(s string) uint64 {
	v, _ := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	return v
}

// SplitStatLine splits a "Key: value" line from a debugfs stats file.
// Returns an empty key if the line has no colon.
func SplitStatLine(line string) (key, val string) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", ""
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:])
}
