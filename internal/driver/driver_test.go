package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msgcode-generator/internal/plan"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDriverGenerate(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "riak_pb_messages.csv")
	output := filepath.Join(dir, "gen", "riak_pb_messages.go")

	writeFile(t, input, "0,PutRequest,RpbPut\n1,PutResponse,RpbPut\n")

	d := New(Config{}, nil)
	require.NoError(t, d.Generate(input, output))

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	content := string(data)

	// Module name and package come from the input file base name
	assert.Contains(t, content, "package riak_pb_messages")
	assert.Contains(t, content, "generated from "+input)

	// All three lookups over both records
	assert.Contains(t, content, `case code == 0:`)
	assert.Contains(t, content, `return "PutRequest"`)
	assert.Contains(t, content, `case name == "PutResponse":`)
	assert.Contains(t, content, `return "RpbPut_pb"`)
	assert.Contains(t, content, `return "undefined"`)
}

func TestDriverGenerateDeterministic(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "messages.csv")
	output := filepath.Join(dir, "messages.go")

	writeFile(t, input, "0,PutRequest,RpbPut\n1,PutResponse,RpbPut\n")

	d := New(Config{}, nil)

	require.NoError(t, d.Generate(input, output))
	first, err := os.ReadFile(output)
	require.NoError(t, err)

	require.NoError(t, d.Generate(input, output))
	second, err := os.ReadFile(output)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDriverGenerateReadFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "absent.csv")
	output := filepath.Join(dir, "absent.go")

	d := New(Config{}, nil)
	err := d.Generate(input, output)
	require.Error(t, err)

	var gerr *GenError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, KindReadFailure, gerr.Kind)
	assert.Equal(t, input, gerr.Path)
	assert.NotNil(t, gerr.Unwrap())

	// No output appears on failure
	_, statErr := os.Stat(output)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestDriverGenerateParseFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.csv")
	output := filepath.Join(dir, "bad.go")

	writeFile(t, input, "0,PutRequest,RpbPut\nnot-a-valid-line\n")

	// Pre-existing output must survive a failed run untouched
	writeFile(t, output, "previous content\n")

	d := New(Config{}, nil)
	err := d.Generate(input, output)
	require.Error(t, err)

	var gerr *GenError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, KindParseFailure, gerr.Kind)
	assert.Equal(t, input, gerr.Path)

	data, readErr := os.ReadFile(output)
	require.NoError(t, readErr)
	assert.Equal(t, "previous content\n", string(data))
}

func TestDriverGenerateWriteFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "messages.csv")
	writeFile(t, input, "0,PutRequest,RpbPut\n")

	// A file where the output directory should be forces the write to fail
	blocker := filepath.Join(dir, "blocked")
	writeFile(t, blocker, "x")

	output := filepath.Join(blocker, "messages.go")

	d := New(Config{}, nil)
	err := d.Generate(input, output)
	require.Error(t, err)

	var gerr *GenError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, KindWriteFailure, gerr.Kind)
	assert.Equal(t, output, gerr.Path)
}

func TestDriverRunJobPackageOverride(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "messages.csv")
	output := filepath.Join(dir, "messages.go")

	writeFile(t, input, "0,PutRequest,RpbPut\n")

	d := New(Config{}, nil)
	require.NoError(t, d.Run(plan.Job{
		Module:  "messages",
		Input:   input,
		Output:  output,
		Package: "riakmsg",
	}))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "package riakmsg")
}

func TestDriverRunAll(t *testing.T) {
	dir := t.TempDir()

	var jobs []plan.Job
	for _, name := range []string{"alpha", "beta", "gamma"} {
		input := filepath.Join(dir, name+".csv")
		writeFile(t, input, "0,PutRequest,RpbPut\n")

		jobs = append(jobs, plan.Job{
			Module: name,
			Input:  input,
			Output: filepath.Join(dir, "gen", name, name+".go"),
		})
	}

	d := New(Config{Workers: 2}, nil)
	report, err := d.RunAll(context.Background(), jobs)
	require.NoError(t, err)
	assert.False(t, report.HasErrors())

	for _, job := range jobs {
		_, statErr := os.Stat(job.Output)
		assert.NoError(t, statErr, "missing output for %s", job.Module)
	}
}

func TestDriverRunAllFailFast(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.csv")
	writeFile(t, good, "0,PutRequest,RpbPut\n")

	jobs := []plan.Job{
		{Module: "missing", Input: filepath.Join(dir, "missing.csv"), Output: filepath.Join(dir, "missing.go")},
		{Module: "good", Input: good, Output: filepath.Join(dir, "good.go")},
	}

	d := New(Config{Workers: 1}, nil)
	_, err := d.RunAll(context.Background(), jobs)
	require.Error(t, err)

	var gerr *GenError
	assert.ErrorAs(t, err, &gerr)
}

func TestDriverRunAllKeepGoing(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.csv")
	writeFile(t, good, "0,PutRequest,RpbPut\n")

	goodOut := filepath.Join(dir, "good.go")

	jobs := []plan.Job{
		{Module: "missing", Input: filepath.Join(dir, "missing.csv"), Output: filepath.Join(dir, "missing.go")},
		{Module: "good", Input: good, Output: goodOut},
	}

	d := New(Config{Workers: 1, KeepGoing: true}, nil)
	report, err := d.RunAll(context.Background(), jobs)
	require.NoError(t, err)

	// The failure lands in the report, the good job still generates
	require.True(t, report.HasErrors())
	assert.Equal(t, "generate-failed", report.Errors[0].Code)
	assert.Equal(t, "missing", report.Errors[0].Table)

	_, statErr := os.Stat(goodOut)
	assert.NoError(t, statErr)
}

func TestDriverRunAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	input := filepath.Join(dir, "messages.csv")
	writeFile(t, input, "0,PutRequest,RpbPut\n")

	d := New(Config{}, nil)
	_, err := d.RunAll(ctx, []plan.Job{
		{Module: "messages", Input: input, Output: filepath.Join(dir, "messages.go")},
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "ReadFailure", KindReadFailure.String())
	assert.Equal(t, "ParseFailure", KindParseFailure.String())
	assert.Equal(t, "WriteFailure", KindWriteFailure.String())
}
