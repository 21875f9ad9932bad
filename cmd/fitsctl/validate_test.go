package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name         string
		header       []byte
		wantErr      bool
		wantContain  []string
		wantWarnings int
	}{
		{
			name:        "valid",
			header:      rawHeader("SIMPLE  =                    T", "NAXIS   =                    0", "HISTORY one", "HISTORY two", "END"),
			wantContain: []string{"header valid"},
		},
		{
			name:         "duplicate keyword warns",
			header:       rawHeader("SIMPLE  =                    T", "NAXIS   = 0", "NAXIS   = 1", "END"),
			wantContain:  []string{"keyword NAXIS appears 2 times", "header valid"},
			wantWarnings: 1,
		},
		{
			name:        "first keyword not SIMPLE",
			header:      rawHeader("NAXIS   = 0", "SIMPLE  = T", "END"),
			wantErr:     true,
			wantContain: []string{"first keyword is not SIMPLE"},
		},
		{
			name:        "unparseable card",
			header:      rawHeader("SIMPLE  = T", "NAXIS   = 'open", "END"),
			wantErr:     true,
			wantContain: []string{"card 1 column"},
		},
		{
			name:        "free-format string too long to rewrite",
			header:      rawHeader("SIMPLE  = T", "LONG='"+strings.Repeat("x", 71)+"'", "END"),
			wantErr:     true,
			wantContain: []string{"record 1 (LONG)"},
		},
		{
			name:        "missing END",
			header:      rawHeader("SIMPLE  = T"),
			wantErr:     true,
			wantContain: []string{"no END card"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			path := writeRaw(t, "h.fits", tt.header)

			out, err := captureOutput(t, func() error { return runValidate([]string{path}) })
			if (err != nil) != tt.wantErr {
				t.Fatalf("runValidate() error = %v, wantErr %v\n%s", err, tt.wantErr, out)
			}
			assertContains(t, out, tt.wantContain)

			resetFlags()
			jsonOut = true
			out, _ = captureOutput(t, func() error { return runValidate([]string{path}) })
			var res validateResult
			require.NoError(t, json.Unmarshal([]byte(out), &res))
			assert.Equal(t, !tt.wantErr, res.Valid)
			assert.Len(t, res.Warnings, tt.wantWarnings)
		})
	}
}
