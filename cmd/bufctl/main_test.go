package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdrianWangs/go-buffer/config"
	"github.com/AdrianWangs/go-buffer/pkg/codec"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func testGlobals(t *testing.T, configBody string) *globalFlags {
	t.Helper()
	path := ""
	if configBody != "" {
		path = filepath.Join(t.TempDir(), "bufctl.yaml")
		require.NoError(t, os.WriteFile(path, []byte(configBody), 0644))
	}
	return &globalFlags{
		configFile: strPtr(path),
		logLevel:   strPtr("error"),
		logFormat:  strPtr(""),
	}
}

func TestRunScriptFromStdin(t *testing.T) {
	cmd := &runCommand{
		global: testGlobals(t, "capacity: 2\nfill_value: 46\n"),
		script: strPtr(""),
		format: strPtr("hex"),
		output: strPtr(""),
		quiet:  boolPtr(false),
	}

	var out bytes.Buffer
	err := cmd.run(context.Background(), strings.NewReader("append AB\nstats\n"), &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "2", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "len=2 cap=2"), lines[1])
	assert.Equal(t, "4142", lines[2])
}

func TestRunScriptFileToOutputFile(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "build.txt")
	outPath := filepath.Join(dir, "region.json")
	require.NoError(t, os.WriteFile(scriptPath, []byte("# seed\nappend hi\n"), 0644))

	cmd := &runCommand{
		global: testGlobals(t, ""),
		script: strPtr(scriptPath),
		format: strPtr("json"),
		output: strPtr(outPath),
		quiet:  boolPtr(false),
	}

	var out bytes.Buffer
	require.NoError(t, cmd.run(context.Background(), nil, &out))
	assert.Equal(t, "2\n", out.String())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Buffer","data":[104,105]}`, string(data))
}

func TestRunReportsScriptErrors(t *testing.T) {
	cmd := &runCommand{
		global: testGlobals(t, ""),
		script: strPtr(""),
		format: strPtr("text"),
		output: strPtr(""),
		quiet:  boolPtr(true),
	}

	err := cmd.run(context.Background(), strings.NewReader("truncate 3\n"), &bytes.Buffer{})
	assert.ErrorContains(t, err, "line 1")
}

func TestRunRejectsBadConfig(t *testing.T) {
	cmd := &runCommand{
		global: testGlobals(t, "growth_factor: -1\n"),
		script: strPtr(""),
		format: strPtr("text"),
		output: strPtr(""),
		quiet:  boolPtr(true),
	}

	err := cmd.run(context.Background(), strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorContains(t, err, "growth_factor")
}

func TestConvert(t *testing.T) {
	cmd := &convertCommand{
		global: testGlobals(t, ""),
		input:  strPtr(""),
		from:   strPtr("hex"),
		to:     strPtr("json"),
		output: strPtr(""),
	}

	var out bytes.Buffer
	require.NoError(t, cmd.run(strings.NewReader("00ff10\n"), &out))
	assert.JSONEq(t, `{"type":"Buffer","data":[0,255,16]}`, out.String())
}

func TestAppParsesFlags(t *testing.T) {
	app := newApp()
	app.Terminate(nil)

	_, err := app.Parse([]string{"run", "--format", "xml"})
	assert.Error(t, err)

	_, err = app.Parse([]string{"convert", "--from", "hex"})
	assert.Error(t, err)
}

func TestNewRegionUsesReportedCodec(t *testing.T) {
	cfg := config.DefaultConfig()
	r, textCodec, err := newRegion(cfg)
	require.NoError(t, err)

	cached, ok := textCodec.(*codec.Cached)
	require.True(t, ok)

	_, err = r.AppendString("ab")
	require.NoError(t, err)
	_, err = r.AppendString("ab")
	require.NoError(t, err)

	stats := cached.Stats()
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Hits)
}
