package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomforge/dungeon"
)

func TestRun_Usage(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	assert.ErrorIs(t, run(nil, &bytes.Buffer{}, log), errUsage)
	assert.ErrorIs(t, run([]string{"paint"}, &bytes.Buffer{}, log), errUsage)
}

func TestRun_GenerateJSON(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	var out bytes.Buffer
	require.NoError(t, run([]string{"generate", "-seed", "3", "-rooms", "3"}, &out, log))

	var doc dungeon.Document
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, int64(3), doc.Seed)
	assert.Len(t, doc.Rooms, 3)
	assert.Equal(t, doc.Stats.Floor, len(doc.Floor))
}

func TestRun_GenerateASCII(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	var out bytes.Buffer
	require.NoError(t, run([]string{"generate", "-seed", "3", "-rooms", "2", "-format", "ascii"}, &out, log))
	assert.Contains(t, out.String(), ".")
	assert.Contains(t, out.String(), "#")
}

func TestRun_GenerateErrors(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	err := run([]string{"generate", "-rooms", "0"}, &bytes.Buffer{}, log)
	assert.ErrorIs(t, err, dungeon.ErrInvalidConfig)

	err = run([]string{"generate", "-seed", "1", "-format", "svg"}, &bytes.Buffer{}, log)
	assert.ErrorContains(t, err, "svg")
}

func TestRun_Schema(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	var out bytes.Buffer
	require.NoError(t, run([]string{"schema"}, &out, log))
	assert.Contains(t, out.String(), `"roomforge layout"`)
	assert.Contains(t, out.String(), "cellSize")

	path := filepath.Join(t.TempDir(), "layout.schema.json")
	require.NoError(t, run([]string{"schema", "-out", path}, &bytes.Buffer{}, log))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{"))
}

func TestEnvOr(t *testing.T) {
	t.Setenv("ROOMFORGE_ADDR", ":9999")
	assert.Equal(t, ":9999", envOr("ROOMFORGE_ADDR", defaultAddr))
	t.Setenv("ROOMFORGE_ADDR", "")
	assert.Equal(t, defaultAddr, envOr("ROOMFORGE_ADDR", defaultAddr))
}
