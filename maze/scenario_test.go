package maze_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/maze"
)

func TestScenario_RoundTrip(t *testing.T) {
	original, err := maze.New(4, 6, maze.Location{}, maze.Location{Row: 3, Column: 5},
		maze.WithSparseness(0),
		maze.WithBlocked(maze.Location{Row: 1, Column: 1}, maze.Location{Row: 2, Column: 4}))
	require.NoError(t, err)

	data, err := maze.Encode(original)
	require.NoError(t, err)

	loaded, err := maze.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, original.String(), loaded.String())
	assert.Equal(t, original.Start(), loaded.Start())
	assert.Equal(t, original.Goal(), loaded.Goal())
}

func TestScenario_FileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quarry.yaml")

	original, err := maze.New(3, 3, maze.Location{}, maze.Location{Row: 2, Column: 2},
		maze.WithSparseness(0), maze.WithBlocked(maze.Location{Row: 1, Column: 1}))
	require.NoError(t, err)

	require.NoError(t, maze.WriteFile(path, original))
	loaded, err := maze.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, original.String(), loaded.String())
}

func TestScenario_ReadFileMissing(t *testing.T) {
	_, err := maze.ReadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_HandEditedDocument(t *testing.T) {
	doc := []byte("rows:\n" +
		"  - \"S X\"\n" +
		"  - \"  X\"\n" +
		"  - \" XG\"\n")

	m, err := maze.Decode(doc)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 3, m.Columns())
	assert.Equal(t, maze.Location{}, m.Start())
	assert.Equal(t, maze.Location{Row: 2, Column: 2}, m.Goal())
	assert.True(t, m.Blocked(maze.Location{Row: 0, Column: 2}))
	assert.False(t, m.Blocked(maze.Location{Row: 1, Column: 0}))
}

func TestDecode_PathMarkersReloadAsFloor(t *testing.T) {
	doc := []byte("rows:\n" +
		"  - \"S*\"\n" +
		"  - \" G\"\n")

	m, err := maze.Decode(doc)
	require.NoError(t, err)
	assert.False(t, m.Blocked(maze.Location{Row: 0, Column: 1}))
}

func TestDecode_Malformed(t *testing.T) {
	cases := map[string]string{
		"not yaml":      "rows: [unterminated",
		"no rows":       "rows: []\n",
		"empty row":     "rows:\n  - \"\"\n",
		"ragged rows":   "rows:\n  - \"S G\"\n  - \" \"\n",
		"missing start": "rows:\n  - \" G\"\n  - \"  \"\n",
		"missing goal":  "rows:\n  - \"S \"\n  - \"  \"\n",
		"two starts":    "rows:\n  - \"SS\"\n  - \" G\"\n",
		"two goals":     "rows:\n  - \"SG\"\n  - \" G\"\n",
		"unknown glyph": "rows:\n  - \"S?\"\n  - \" G\"\n",
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := maze.Decode([]byte(doc))
			require.ErrorIs(t, err, maze.ErrBadScenario)
		})
	}
}

func TestEncode_NilMaze(t *testing.T) {
	_, err := maze.Encode(nil)
	require.ErrorIs(t, err, maze.ErrBadScenario)
}
