package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestInitWritesManifest(t *testing.T) {
	t.Chdir(t.TempDir())

	i := &Init{Output: "msgcodes.yaml"}
	require.NoError(t, i.Run(testLogger()))

	data, err := os.ReadFile("msgcodes.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "input_dirs: tables")

	// A second run must refuse to clobber the file
	err = i.Run(testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use --force")

	i.Force = true
	assert.NoError(t, i.Run(testLogger()))
}

func TestGenerateFromManifest(t *testing.T) {
	t.Chdir(t.TempDir())

	writeFile(t, "msgcodes.yaml", "version: \"1\"\ninput_dirs: tables\noutput_dir: gen\n")
	writeFile(t, filepath.Join("tables", "riak_pb_messages.csv"), "0,PutRequest,RpbPut\n1,PutResponse,RpbPut\n")

	g := &Generate{Manifest: "msgcodes.yaml"}
	require.NoError(t, g.Run(testLogger()))

	data, err := os.ReadFile(filepath.Join("gen", "riak_pb_messages", "riak_pb_messages.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package riak_pb_messages")
	assert.Contains(t, string(data), `return "RpbPut_pb"`)
}

func TestGenerateWithoutManifest(t *testing.T) {
	t.Chdir(t.TempDir())

	// No manifest at all: the default tables directory still resolves
	writeFile(t, filepath.Join("tables", "messages.csv"), "0,PutRequest,RpbPut\n")

	g := &Generate{Manifest: "msgcodes.yaml"}
	require.NoError(t, g.Run(testLogger()))

	_, err := os.Stat(filepath.Join("gen", "messages", "messages.go"))
	assert.NoError(t, err)
}

func TestGenerateInputDirOverride(t *testing.T) {
	t.Chdir(t.TempDir())

	// The flag wins over the default tables directory
	writeFile(t, filepath.Join("tables", "ignored.csv"), "0,Ignored,RpbNope\n")
	writeFile(t, filepath.Join("proto", "messages.csv"), "0,PutRequest,RpbPut\n")

	g := &Generate{Manifest: "msgcodes.yaml", InputDir: []string{"proto"}}
	require.NoError(t, g.Run(testLogger()))

	_, err := os.Stat(filepath.Join("gen", "messages", "messages.go"))
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join("gen", "ignored", "ignored.go"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerateMissingTable(t *testing.T) {
	t.Chdir(t.TempDir())

	g := &Generate{Manifest: "msgcodes.yaml", Tables: []string{"missing"}}
	err := g.Run(testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table file not found")
}

func TestCheckValidTables(t *testing.T) {
	t.Chdir(t.TempDir())

	writeFile(t, filepath.Join("tables", "messages.csv"), "0,PutRequest,RpbPut\n")

	c := &Check{Manifest: "msgcodes.yaml"}
	require.NoError(t, c.Run(testLogger()))

	// Check never writes output
	_, err := os.Stat("gen")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheckBadTable(t *testing.T) {
	t.Chdir(t.TempDir())

	writeFile(t, filepath.Join("tables", "bad.csv"), "0,PutRequest,RpbPut\nnot-a-valid-line\n")

	c := &Check{Manifest: "msgcodes.yaml"}
	err := c.Run(testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse-failed")
}

func TestLookupByCode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "messages.csv")
	writeFile(t, path, "0,PutRequest,RpbPut\n1,PutResponse,RpbPut\n")

	l := &Lookup{Table: path, Code: "1"}
	assert.NoError(t, l.Run(testLogger()))

	// Codes outside the table resolve to undefined, not an error
	l = &Lookup{Table: path, Code: "42"}
	assert.NoError(t, l.Run(testLogger()))
}

func TestLookupByName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "messages.csv")
	writeFile(t, path, "0,PutRequest,RpbPut\n1,PutResponse,RpbPut\n")

	l := &Lookup{Table: path, Name: "PutResponse"}
	assert.NoError(t, l.Run(testLogger()))
}

func TestLookupUnknownNameSuggests(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "messages.csv")
	writeFile(t, path, "0,PutRequest,RpbPut\n1,PutResponse,RpbPut\n")

	l := &Lookup{Table: path, Name: "PutReqest"}
	err := l.Run(testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean")
	assert.Contains(t, err.Error(), "PutRequest")
}

func TestLookupRequiresExactlyOneQuery(t *testing.T) {
	l := &Lookup{Table: "messages.csv"}
	require.Error(t, l.Run(testLogger()))

	l = &Lookup{Table: "messages.csv", Code: "1", Name: "PutRequest"}
	require.Error(t, l.Run(testLogger()))
}

func TestLookupInvalidCode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "messages.csv")
	writeFile(t, path, "0,PutRequest,RpbPut\n")

	l := &Lookup{Table: path, Code: "abc"}
	err := l.Run(testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid message code")
}
