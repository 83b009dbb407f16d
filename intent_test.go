package gridsel

import (
	"errors"
	"strings"
	"testing"

	"github.com/hnimtadd/gridsel/selection/area"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntent(t *testing.T) {
	cases := []struct {
		line string
		kind Kind
		want string
	}{
		{"row 3", KindSelect, "select 3:3"},
		{"row 2:4", KindSelect, "select 2:4"},
		{"column B", KindSelect, "select B:B"},
		{"col B:D", KindSelect, "select B:D"},
		{"rect C3:A1", KindSelect, "select A1:C3"},
		{"select *", KindSelect, "select *"},
		{"all", KindSelectAll, "all"},
		{"toggle B2", KindToggle, "toggle B2"},
		{"extend D5", KindExtend, "extend D5"},
		{"remove 2:2", KindRemove, "remove 2:2"},
		{"select A1:B2,D4", KindSelect, "select A1:B2,D4"},
		{"remove 2:2; B:B", KindRemove, "remove 2:2,B:B"},
		{"clear", KindClear, "clear"},
		{"drag A1", KindBeginDrag, "drag A1"},
		{"to C3", KindDragTo, "to C3"},
		{"END", KindEndDrag, "end"},
		{"  cancel  ", KindCancelDrag, "cancel"},
	}
	for _, c := range cases {
		t.Run(c.line, func(t *testing.T) {
			in, err := ParseIntent(c.line)
			require.NoError(t, err)
			assert.Equal(t, c.kind, in.Kind)
			assert.Equal(t, c.want, in.String())
		})
	}
}

func TestParseIntentKeepsAnchor(t *testing.T) {
	in, err := ParseIntent("rect C3:A1")
	require.NoError(t, err)
	assert.Equal(t, area.CornerBottomRight, in.Areas[0].Corner)
}

func TestParseIntentErrors(t *testing.T) {
	for _, line := range []string{
		"",
		"row",
		"row 1 2",
		"all now",
		"jump A1",
		"rect 3:3",
		"column 3",
		"toggle 3:3",
		"row 0",
		"select",
		"select ,",
		"remove A1,bogus",
	} {
		t.Run(line, func(t *testing.T) {
			_, err := ParseIntent(line)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
		})
	}
}

func TestApplyDispatch(t *testing.T) {
	g := newGrid()
	for _, line := range []string{"row 1", "toggle C3", "extend D4"} {
		in, err := ParseIntent(line)
		require.NoError(t, err)
		require.NoError(t, g.Apply(in))
	}
	assert.True(t, g.Query(4, 0))
	assert.True(t, g.Query(2, 2))
	assert.True(t, g.Query(3, 3))
	assert.False(t, g.Query(1, 1))
}

func TestApplyList(t *testing.T) {
	g := newGrid()
	in, err := ParseIntent("select A1, C3:D4; 4:4")
	require.NoError(t, err)
	require.Len(t, in.Areas, 3)
	require.NoError(t, g.Apply(in))
	assert.True(t, g.Query(0, 0))
	assert.True(t, g.Query(3, 2))
	assert.True(t, g.Query(1, 3))
	assert.False(t, g.Query(1, 0))

	in, err = ParseIntent("remove A1,4:4")
	require.NoError(t, err)
	require.NoError(t, g.Apply(in))
	assert.False(t, g.Query(0, 0))
	assert.False(t, g.Query(1, 3))
	assert.True(t, g.Query(2, 2))
}

func TestApplyListStopsAtFirstFailure(t *testing.T) {
	g := newGrid()
	in, err := ParseIntent("select A1,9:9,B2")
	require.NoError(t, err)
	err = g.Apply(in)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.True(t, g.Query(0, 0))
	assert.False(t, g.Query(1, 1))
}

func TestApplyUnknownKindPanics(t *testing.T) {
	assert.Panics(t, func() {
		_ = newGrid().Apply(Intent{Kind: Kind(200)})
	})
	assert.True(t, strings.Contains(Kind(200).String(), "unknown"))
}
