package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input  string
		format string
		want   string
	}{
		{filepath.Join("exports", "tcp.csv"), "xlsx", filepath.Join("exports", "tcp.xlsx")},
		{"exports" + string(filepath.Separator), "json", "exports.json"},
		{"trace.pcapng", "xlsx", "trace.xlsx"},
	}

	for _, tt := range tests {
		got := defaultOutputPath(tt.input, tt.format)
		if got != tt.want {
			t.Errorf("defaultOutputPath(%q, %q) = %q, expected %q", tt.input, tt.format, got, tt.want)
		}
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertThenInspect(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "tcp.csv")
	require.NoError(t, os.WriteFile(in, []byte("Address,Port,Packets\n10.0.0.1,80,8\n10.0.0.2,443,2\n"), 0644))
	xlsx := filepath.Join(dir, "report.xlsx")

	out, err := execute(t, "convert", in, "-o", xlsx, "--chart", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 1 sheet(s) to "+xlsx)
	assert.Contains(t, out, "TCP")
	assert.Contains(t, out, "top 1 row(s) = 80.00%")

	sheets := filepath.Join(dir, "sheets")
	areas := filepath.Join(dir, "areas")
	_, err = execute(t, "inspect", xlsx, "--sheets-dir", sheets, "--print-areas-dir", areas, "--pretty")
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(sheets, "TCP.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "TCP"`)
	assert.Contains(t, string(data), `"tbl_TCP=A1:E3"`)

	data, err = os.ReadFile(filepath.Join(areas, "TCP_area1.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sheet_name": "TCP"`)
	assert.Contains(t, string(data), `"r2": 3`)
}

func TestConvert_DefaultOutputAndJSON(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "udp.txt")
	require.NoError(t, os.WriteFile(in, []byte("Address\tPort\tPackets\n10.0.0.1\t53\t4\n"), 0644))

	_, err := execute(t, in, "--format", "json", "--no-rank", "--log-level", "error")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "udp.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"book_name": "udp.json"`)
	assert.NotContains(t, string(data), `"cutoff":`)
}

func TestConvert_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "convert", filepath.Join(dir, "missing.csv"), "--log-level", "error")
	assert.Error(t, err)

	in := filepath.Join(dir, "ipv4.csv")
	require.NoError(t, os.WriteFile(in, []byte("Address,Packets\nA,1\n"), 0644))
	_, err = execute(t, "convert", in, "--format", "csv", "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")

	_, err = execute(t, "convert", in, "--workers", "-1", "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers")

	_, err = execute(t, "inspect", filepath.Join(dir, "missing.xlsx"))
	assert.Error(t, err)
}

func TestConvert_RefusesToOverwriteInput(t *testing.T) {
	dir := t.TempDir()
	original := []byte("Address,Packets\nA,1\n")

	tests := []struct {
		name     string
		file     string
		format   string
		explicit bool
	}{
		{"default json output", "export.json", "json", false},
		{"default xlsx output", "book.xlsx", "xlsx", false},
		{"explicit output", "tcp.csv", "xlsx", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(in, original, 0644))

			args := []string{"convert", in, "--format", tt.format, "--log-level", "error"}
			if tt.explicit {
				args = append(args, "-o", in)
			}
			_, err := execute(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "would overwrite an input")

			data, err := os.ReadFile(in)
			require.NoError(t, err)
			assert.Equal(t, original, data)
		})
	}
}

func TestCheckOverwrite(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "tcp.csv")

	assert.NoError(t, checkOverwrite(filepath.Join(dir, "tcp.xlsx"), []string{in}))
	assert.Error(t, checkOverwrite(filepath.Join(dir, ".", "tcp.csv"), []string{in}))
}
