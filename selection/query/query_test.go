package query

import (
	"testing"

	"github.com/hnimtadd/gridsel/selection/area"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) []area.Area {
	t.Helper()
	row, err := area.NewRow(2, 3)
	require.NoError(t, err)
	col, err := area.NewColumn(4, 1)
	require.NoError(t, err)
	rect, err := area.NewRectangle(0, 0, 2, 2)
	require.NoError(t, err)
	return []area.Area{row, col, rect, area.NewAll()}
}

func TestSelectByType(t *testing.T) {
	areas := sample(t)
	f, err := Compile(`type == "row" || type == "all"`)
	require.NoError(t, err)
	got, err := f.Select(areas)
	require.NoError(t, err)
	assert.Equal(t, []area.Area{areas[0], areas[3]}, got)
}

func TestSelectBySize(t *testing.T) {
	areas := sample(t)
	f, err := Compile(`size >= 3`)
	require.NoError(t, err)
	got, err := f.Select(areas)
	require.NoError(t, err)
	assert.Equal(t, []area.Area{areas[0], areas[2]}, got)
}

func TestCovers(t *testing.T) {
	areas := sample(t)
	f, err := Compile(`Covers(4, 3) && type != "all"`)
	require.NoError(t, err)
	got, err := f.Select(areas)
	require.NoError(t, err)
	assert.Equal(t, []area.Area{areas[0], areas[1]}, got)
	assert.Equal(t, `Covers(4, 3) && type != "all"`, f.String())
}

func TestCompileErrors(t *testing.T) {
	_, err := Compile(`size + 1`)
	assert.Error(t, err, "non-boolean result")
	_, err = Compile(`colour == "red"`)
	assert.Error(t, err, "unknown name")
	_, err = Compile(`type ==`)
	assert.Error(t, err, "syntax")
}
