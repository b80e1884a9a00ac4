package script

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bradenaw/dlist"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeScript(t, `
log:
  level: debug
stop_on_error: true
ops:
  - {op: insert_at_end, value: 1}
  - {op: insert_at_position, value: b, pos: 1}
  - op: print
`)
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", s.Log.Level)
	assert.True(t, s.StopOnError)
	assert.Equal(t, []Op{
		{Op: "insert_at_end", Value: "1"},
		{Op: "insert_at_position", Value: "b", Pos: 1},
		{Op: "print"},
	}, s.Ops)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeScript(t, "ops:\n  - {op: print, colour: red}\n"))
	assert.Error(t, err)
}

func TestRunScenarios(t *testing.T) {
	tests := []struct {
		name string
		ops  []Op
		want string
	}{
		{
			name: "empty",
			ops:  []Op{{Op: "print"}},
			want: "EMPTY\n",
		},
		{
			name: "insert at beginning",
			ops: []Op{
				{Op: "insert_at_beginning", Value: "1"},
				{Op: "insert_at_beginning", Value: "2"},
				{Op: "insert_at_beginning", Value: "3"},
				{Op: "print"},
			},
			want: "START ->  [ 3 ]  <=> [ 2 ]  <=> [ 1 ] -> NULL\n",
		},
		{
			name: "insert at end",
			ops: []Op{
				{Op: "insert_at_end", Value: "1"},
				{Op: "insert_at_end", Value: "2"},
				{Op: "insert_at_end", Value: "3"},
				{Op: "get", Pos: 1},
				{Op: "len"},
				{Op: "print"},
			},
			want: "1: 2\nlen: 3\nSTART ->  [ 1 ]  <=> [ 2 ]  <=> [ 3 ] -> NULL\n",
		},
		{
			name: "set and delete",
			ops: []Op{
				{Op: "insert_at_end", Value: "a"},
				{Op: "insert_at_end", Value: "b"},
				{Op: "insert_at_end", Value: "c"},
				{Op: "set", Value: "B", Pos: 1},
				{Op: "delete_first"},
				{Op: "print"},
				{Op: "delete", Pos: 1},
				{Op: "delete_last"},
				{Op: "delete_last"},
				{Op: "print"},
			},
			want: "START ->  [ B ]  <=> [ c ] -> NULL\nEMPTY\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			sum, err := NewRunner(dlist.New[string](), &out, nil, true).Run(tt.ops)
			require.NoError(t, err)
			assert.Equal(t, Summary{Applied: len(tt.ops)}, sum)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunFailures(t *testing.T) {
	ops := []Op{
		{Op: "insert_at_end", Value: "a"},
		{Op: "insert_at_position", Value: "z", Pos: 5},
		{Op: "get", Pos: 1},
		{Op: "delete", Pos: -1},
		{Op: "shuffle"},
		{Op: "print"},
	}

	var out bytes.Buffer
	l := dlist.New[string]()
	sum, err := NewRunner(l, &out, nil, false).Run(ops)
	require.NoError(t, err)
	assert.Equal(t, Summary{Applied: 2, Failed: 4}, sum)
	assert.Equal(t, "START ->  [ a ] -> NULL\n", out.String())
	assert.Equal(t, 1, l.Len())

	out.Reset()
	sum, err = NewRunner(l, &out, nil, true).Run(ops[1:])
	require.Error(t, err)
	assert.True(t, errors.Is(err, dlist.ErrIndexOutOfBounds))
	assert.Equal(t, Summary{Failed: 1}, sum)
	assert.Empty(t, out.String())
}

func TestStepUnknown(t *testing.T) {
	r := NewRunner(dlist.New[string](), &bytes.Buffer{}, nil, false)
	assert.ErrorIs(t, r.Step(Op{Op: "reverse"}), ErrUnknownOp)
	assert.ErrorIs(t, r.Step(Op{Op: "set", Pos: 0}), dlist.ErrIndexOutOfBounds)
}

func TestWriteSnapshot(t *testing.T) {
	l := dlist.New[string]()
	l.InsertAtEnd("x")
	l.InsertAtEnd("y")

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, l))

	var got Snapshot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, Snapshot{Length: 2, Values: []string{"x", "y"}}, got)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, `insert_at_position("b", 1)`, Op{Op: "insert_at_position", Value: "b", Pos: 1}.String())
	assert.Equal(t, "delete(3)", Op{Op: "delete", Pos: 3}.String())
	assert.Equal(t, "print()", Op{Op: "print"}.String())
}
