package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewLimitsEntries(t *testing.T) {
	lines := []string{
		"pkg/a.go:1.1,2.2 1 1",
		"pkg/a.go:3.1,4.2 1 0",
		"short line",
		"nocolon 1 2",
		"pkg/b.go:1.1,2.2 1 5",
		"pkg/b.go:3.1,4.2 1 0",
	}

	entries, err := Preview(lines, 5)
	require.NoError(t, err)

	assert.Equal(t, []PreviewEntry{
		{Position: 1, Location: "pkg/a.go:1.1,2.2", Count: 1},
		{Position: 2, Location: "pkg/a.go:3.1,4.2", Count: 0},
		{Position: 4, Location: "nocolon", Count: 2},
		{Position: 5, Location: "pkg/b.go:1.1,2.2", Count: 5},
	}, entries)
	assert.True(t, entries[0].Covered())
	assert.False(t, entries[1].Covered())
}

func TestPreviewFewerLinesThanLimit(t *testing.T) {
	entries, err := Preview([]string{"pkg/a.go:1.1,2.2 1 1"}, 5)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	entries, err = Preview(nil, 5)
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = Preview([]string{"pkg/a.go:1.1,2.2 1 1"}, -1)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPreviewMalformedCountErrors(t *testing.T) {
	_, err := Preview([]string{"pkg/a.go:1.1,2.2 1 nope"}, 5)

	var countErr *MalformedCountError
	assert.ErrorAs(t, err, &countErr)
}
