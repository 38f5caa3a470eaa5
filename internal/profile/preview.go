package profile

import "strings"

// PreviewEntry is a data line echoed for manual inspection of the parser.
type PreviewEntry struct {
	Position int
	Location string
	Count    int
}

func (entry PreviewEntry) Covered() bool {
	return entry.Count > 0
}

// Preview returns entries for the first limit data lines. Lines with fewer
// than three fields are left out but still use up their position.
func Preview(lines []string, limit int) ([]PreviewEntry, error) {
	limit = max(0, min(limit, len(lines)))

	entries := make([]PreviewEntry, 0, limit)
	for index, line := range lines[:limit] {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		count, err := parseCount(fields[2])
		if err != nil {
			return nil, err
		}
		entries = append(entries, PreviewEntry{
			Position: index + 1,
			Location: fields[0],
			Count:    count,
		})
	}
	return entries, nil
}
