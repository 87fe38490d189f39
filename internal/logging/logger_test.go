package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/webpsweep/internal/config"
	"github.com/backmassage/webpsweep/internal/term"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "logs", "webpsweep.log")

	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	l.Info("to file")
	l.Error("broken %s", "thing")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[INFO] to file")
	assert.Contains(t, string(b), "[ERROR] broken thing")
}

func TestNew_SplitsStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	l := New(&out, &errOut, false)

	l.Info("info %d", 1)
	l.Success("done")
	l.Warn("careful")
	l.Error("failed")
	l.Debug("hidden")

	assert.Contains(t, out.String(), "[INFO] info 1")
	assert.Contains(t, out.String(), "[INFO] ok done")
	assert.Contains(t, out.String(), "[WARN] careful")
	assert.NotContains(t, out.String(), "failed")
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, errOut.String(), "[ERROR] failed")
	assert.Equal(t, 1, bytes.Count(errOut.Bytes(), []byte("\n")))
}

func TestBuild_ColorsSuccessName(t *testing.T) {
	term.Configure(config.ColorAlways)
	t.Cleanup(func() { term.Configure(config.ColorNever) })

	var out bytes.Buffer
	l := build(false, &out, io.Discard, nil, true)
	l.Success("saved")
	l.Info("plain")

	assert.Contains(t, out.String(), term.Green+"ok"+term.NC+" saved")
	assert.Contains(t, out.String(), term.Blue+"[INFO]"+term.NC+" plain")
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	var out, errOut bytes.Buffer
	l := New(&out, &errOut, true)
	l.Debug("shown %s", "now")
	assert.Contains(t, out.String(), "[DEBUG] shown now")
}
