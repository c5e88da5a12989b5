package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesMissingFile(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "data"))

	var records []map[string]interface{}
	require.NoError(t, s.Load("ketubas", &records))
	assert.Empty(t, records)

	data, err := os.ReadFile(filepath.Join(dir, "data", "ketubas.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSaveOverwritesWholeFile(t *testing.T) {
	s := New(t.TempDir())

	require.NoError(t, s.Save("ketubas", []map[string]interface{}{{"id": 1.0}, {"id": 2.0}}))
	require.NoError(t, s.Save("ketubas", []map[string]interface{}{{"id": 3.0}}))

	var records []map[string]interface{}
	require.NoError(t, s.Load("ketubas", &records))
	require.Len(t, records, 1)
	assert.Equal(t, 3.0, records[0]["id"])
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ketubas.json"), []byte("{not json"), 0o644))

	var records []map[string]interface{}
	err := s.Load("ketubas", &records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestCollectionsAreIndependent(t *testing.T) {
	s := New(t.TempDir())

	require.NoError(t, s.Save("ketubas", []string{"a"}))
	require.NoError(t, s.Save("users", []string{"b"}))

	var ketubas, users []string
	require.NoError(t, s.Load("ketubas", &ketubas))
	require.NoError(t, s.Load("users", &users))
	assert.Equal(t, []string{"a"}, ketubas)
	assert.Equal(t, []string{"b"}, users)
}
