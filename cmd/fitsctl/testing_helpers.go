package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/fitskit/pkg/fits"
	"github.com/joshuapare/fitskit/pkg/types"
)

// resetFlags restores every global flag to its default.
func resetFlags() {
	verbose, quiet, jsonOut, debug = false, false, false, false
	logFile = ""
	maxBlocks = fits.DefaultMaxBlocks
	allowMissingEnd, noDecompress = false, false
	headerSorted = false
	getAll, getShowType = false, false
	cardsBlank = false
}

// fixtureRecords is a small primary header with a repeated keyword.
func fixtureRecords(t *testing.T) []types.KeywordRecord {
	t.Helper()
	rec := func(key, comment string, v types.Value) types.KeywordRecord {
		r, err := types.NewValueRecord(key, comment, v)
		require.NoError(t, err)
		return r
	}
	h1, err := types.NewRecord("HISTORY", "bias subtracted")
	require.NoError(t, err)
	h2, err := types.NewRecord("HISTORY", "flat fielded")
	require.NoError(t, err)
	return []types.KeywordRecord{
		rec("SIMPLE", "conforms to FITS standard", types.ValueOf(true)),
		rec("BITPIX", "", types.ValueOf(int32(-32))),
		rec("NAXIS", "", types.ValueOf(int32(0))),
		rec("OBJECT", "target", types.ValueOf("M 31")),
		rec("EXPTIME", "seconds", types.ValueOf(float32(12.5))),
		h1,
		h2,
	}
}

// writeFixture encodes records into a file under t.TempDir.
func writeFixture(t *testing.T, name string, records []types.KeywordRecord) string {
	t.Helper()
	data, err := fits.EncodeHeader(records)
	require.NoError(t, err)
	return writeRaw(t, name, data)
}

// writeGzipFixture encodes records gzip compressed.
func writeGzipFixture(t *testing.T, name string, records []types.KeywordRecord) string {
	t.Helper()
	data, err := fits.EncodeHeader(records)
	require.NoError(t, err)
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err = zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return writeRaw(t, name, buf.Bytes())
}

func writeRaw(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// rawHeader lays cards out as a single space padded block.
func rawHeader(lines ...string) []byte {
	var b []byte
	for _, l := range lines {
		b = append(b, l+strings.Repeat(" ", 80-len(l))...)
	}
	return append(b, bytes.Repeat([]byte{' '}, 2880-len(b))...)
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
