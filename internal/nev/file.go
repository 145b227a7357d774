package nev

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// FileDecoder reads the event export materialized by the external .nev
// decoding tool: a leading header block of lines starting with '#' or '-'
// (kept verbatim), followed by one CSV row per event in the form
//
//	timestamp,ttl,event_string
//
// The ttl column may be negative where the exporter sign-extended the
// 16-bit value; rows are passed through untouched.
type FileDecoder struct {
	Path string
}

// NewFileDecoder creates a decoder for the export file at path.
func NewFileDecoder(path string) *FileDecoder {
	return &FileDecoder{Path: path}
}

// Decode reads and parses the whole export file.
func (d *FileDecoder) Decode() (*Events, error) {
	f, err := os.Open(d.Path)
	if err != nil {
		return nil, fmt.Errorf("open event export: %w", err)
	}
	defer f.Close()

	ev, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", d.Path, err)
	}
	return ev, nil
}

// Parse reads a materialized event export from r.
func Parse(r io.Reader) (*Events, error) {
	ev := &Events{}
	var header strings.Builder
	inHeader := true
	lineNo := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if inHeader {
			if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
				header.WriteString(line)
				header.WriteByte('\n')
				continue
			}
			inHeader = false
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		// Split into at most 3 fields so commas inside the event string
		// stay part of it.
		fields := strings.SplitN(line, ",", 3)
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: want 3 fields (timestamp,ttl,event_string), got %d", lineNo, len(fields))
		}

		ts, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad timestamp %q: %w", lineNo, fields[0], err)
		}
		code, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad ttl code %q: %w", lineNo, fields[1], err)
		}

		ev.Timestamps = append(ev.Timestamps, ts)
		ev.Codes = append(ev.Codes, int32(code))
		ev.Strings = append(ev.Strings, fields[2])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read event export: %w", err)
	}

	ev.Header = header.String()
	return ev, nil
}
