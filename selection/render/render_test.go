package render

import (
	"testing"

	"github.com/hnimtadd/gridsel/logger"
	"github.com/hnimtadd/gridsel/selection/area"
	"github.com/hnimtadd/gridsel/selection/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSet(t *testing.T) *set.Set {
	t.Helper()
	s := set.New(set.Options{Rows: 3, Cols: 4, Logger: logger.Discard})
	r, err := area.NewRow(0, 1)
	require.NoError(t, err)
	require.NoError(t, s.AddArea(r))
	require.NoError(t, s.ToggleCell(2, 2))
	return s
}

func TestPlainString(t *testing.T) {
	got := PlainString(newSet(t), Options{Rows: 3, Cols: 4})
	assert.Equal(t, "# # # #\n. . . .\n. . # .", got)
}

func TestPlainStringHeader(t *testing.T) {
	got := PlainString(newSet(t), Options{Rows: 3, Cols: 4, Header: true})
	want := "  A B C D\n" +
		"1 # # # #\n" +
		"2 . . . .\n" +
		"3 . . # ."
	assert.Equal(t, want, got)
}

func TestPlainStringWideMarks(t *testing.T) {
	got := PlainString(newSet(t), Options{Rows: 1, Cols: 2, Selected: "#", Unselected: "・"})
	// "・" is two cells wide, so the narrower mark is padded.
	assert.Equal(t, "#  # ", got)
}
