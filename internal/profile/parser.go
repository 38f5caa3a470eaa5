package profile

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/khicago/covstat/internal/perf"
)

var errNegativeCount = errors.New("count must not be negative")

// Record is one statement entry of a coverage profile.
type Record struct {
	Location string
	File     string
	Count    int
}

func (record Record) Covered() bool {
	return record.Count > 0
}

// ParseLine extracts a record from a single data line.
//
// Blank lines, lines with fewer than three fields and locations without a
// colon are not records: ok is false and err is nil. A count field that is
// not a non-negative integer is an error.
func ParseLine(line string, modulePrefix string) (record Record, ok bool, err error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) < 3 {
		return Record{}, false, nil
	}

	count, err := parseCount(fields[2])
	if err != nil {
		return Record{}, false, err
	}

	location := fields[0]
	separatorIndex := strings.LastIndex(location, ":")
	if separatorIndex == -1 {
		return Record{}, false, nil
	}

	return Record{
		Location: location,
		File:     strings.TrimPrefix(location[:separatorIndex], modulePrefix),
		Count:    count,
	}, true, nil
}

// ParseLines parses every data line and returns the records plus the number
// of lines that were skipped.
func ParseLines(ctx context.Context, lines []string, modulePrefix string) ([]Record, int, error) {
	_, span := perf.StartSpan(ctx, "profile.parse")
	defer span.End()

	records := make([]Record, 0, len(lines))
	skipped := 0
	for index, line := range lines {
		record, ok, err := ParseLine(line, modulePrefix)
		if err != nil {
			var countErr *MalformedCountError
			if errors.As(err, &countErr) {
				// data lines start after the header
				countErr.Line = index + 2
			}
			return nil, skipped, err
		}
		if !ok {
			skipped++
			continue
		}
		records = append(records, record)
	}

	span.SetAttributes(attribute.Int("records", len(records)), attribute.Int("skipped", skipped))
	return records, skipped, nil
}

func parseCount(token string) (int, error) {
	count, err := strconv.Atoi(token)
	if err != nil {
		return 0, &MalformedCountError{Token: token, Err: err}
	}
	if count < 0 {
		return 0, &MalformedCountError{Token: token, Err: errNegativeCount}
	}
	return count, nil
}
