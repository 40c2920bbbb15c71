package buildlog

import (
	"bufio"
	"os"
	"strings"

	"go.trai.ch/autodeps/internal/core/domain"
	"go.trai.ch/autodeps/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxLineSize bounds a single log line; link lines of large projects get long.
const maxLineSize = 16 * 1024 * 1024

var _ ports.BuildLogReader = (*Reader)(nil)

// Reader implements ports.BuildLogReader for plain-text build logs.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses every compiler line of the log at path.
// Any line that starts with a compiler but does not fit the grammar aborts the read.
func (r *Reader) Read(path string) ([]domain.Invocation, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLogReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // read-only file

	var invocations []domain.Invocation
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if !IsInvocation(line) {
			continue
		}
		inv, err := ParseLine(line)
		if err != nil {
			return nil, zerr.With(err, "line_number", lineNo)
		}
		invocations = append(invocations, inv)
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLogReadFailed.Error()), "path", path)
	}

	return invocations, nil
}
