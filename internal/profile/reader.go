// Package profile reads and parses Go coverage profiles.
package profile

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/khicago/covstat/internal/perf"
)

const maxLineSize = 1024 * 1024

// Profile holds the raw line count of a profile file and every line after the mode header.
type Profile struct {
	RawLineCount int
	DataLines    []string
}

// ReadProfile loads the whole profile into memory. The first line is the mode
// header and is dropped without looking at its content.
func ReadProfile(ctx context.Context, fs afero.Fs, path string) (Profile, error) {
	_, span := perf.StartSpan(ctx, "io.profile.read", trace.WithAttributes(attribute.String("path", path)))
	defer span.End()

	file, err := fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Profile{}, &ProfileNotFoundError{Path: path, Err: err}
		}
		return Profile{}, errors.Wrapf(err, "failed to open coverage profile %s", path)
	}
	defer func() {
		_ = file.Close() // #nosec G104 -- read-only handle.
	}()

	lines, err := readLines(file)
	if err != nil {
		return Profile{}, errors.Wrapf(err, "failed to read coverage profile %s", path)
	}

	profile := Profile{
		RawLineCount: len(lines),
		DataLines:    []string{},
	}
	if len(lines) > 1 {
		profile.DataLines = lines[1:]
	}

	span.SetAttributes(attribute.Int("lines", profile.RawLineCount))
	return profile, nil
}

func readLines(reader io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lines := make([]string, 0)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
