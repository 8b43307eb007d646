// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/schollz/progressbar/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	cfg, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "adtperf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
stop: 500
step: 250
sorts: [linked-quick]
map:
  sizes: [10, 20]
`), 0o644))
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Stop)
	assert.Equal(t, 250, cfg.Step)
	assert.Equal(t, []string{"linked-quick"}, cfg.Sorts)
	assert.Equal(t, []int{10, 20}, cfg.Map.Sizes)
	assert.Equal(t, 5, cfg.Shuffles, "unset fields keep their defaults")
	assert.Equal(t, []int{0, 250, 500}, cfg.sizes())
	assert.NoError(t, cfg.validate())

	require.NoError(t, os.WriteFile(path, []byte("stop: [oops"), 0o644))
	_, err = loadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	for _, tt := range []struct {
		name   string
		modify func(*Config)
	}{
		{"step", func(c *Config) { c.Step = 0 }},
		{"start", func(c *Config) { c.Start = -1 }},
		{"stop", func(c *Config) { c.Start, c.Stop = 10, 5 }},
		{"runs", func(c *Config) { c.Runs = 0 }},
		{"shuffles", func(c *Config) { c.Shuffles = -2 }},
		{"sorts", func(c *Config) { c.Sorts = []string{"bogo"} }},
		{"orders", func(c *Config) { c.Orders = []string{"sideways"} }},
		{"map", func(c *Config) { c.Map.Sizes = []int{-5} }},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(&cfg)
			assert.Error(t, cfg.validate())
		})
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSortCommand(t *testing.T) {
	out, err := execute(t, "sort", "-q",
		"--start", "0", "--stop", "200", "--step", "100",
		"--sorts", "array-quick,linked-merge", "--orders", "reversed")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4+3)
	assert.Equal(t, "# All times in milliseconds (msec)", lines[0])
	assert.Equal(t, "# Column 1 = size", lines[1])
	assert.Equal(t, "# Column 2 = avg time array quick sort, reversed", lines[2])
	assert.Equal(t, "# Column 3 = avg time linked list merge sort, reversed", lines[3])
	for i, size := range []string{"0", "100", "200"} {
		fields := strings.Fields(lines[4+i])
		require.Len(t, fields, 3)
		assert.Equal(t, size, fields[0])
	}
}

func TestMapCommand(t *testing.T) {
	out, err := execute(t, "map", "-q", "--sizes", "100,1000", "--runs", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6+2)
	fields := strings.Fields(lines[7])
	require.Len(t, fields, 5)
	assert.Equal(t, "1000", fields[0])
}

func TestBadFlags(t *testing.T) {
	_, err := execute(t, "sort", "-q", "--step", "0")
	assert.Error(t, err)
	_, err = execute(t, "sort", "-q", "--sorts", "bogo")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestRunnerProgress(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	bar := progressbar.NewOptions(3, progressbar.OptionSetWriter(io.Discard))
	r := newRunner(defaultConfig(), zap.New(core), bar)
	require.NotNil(t, r.OnRun)
	r.OnRun()
	r.OnRun()
	assert.EqualValues(t, 2, bar.State().CurrentNum)
	assert.Zero(t, logs.FilterMessage("progress").Len())

	r = newRunner(defaultConfig(), zap.New(core), nil)
	assert.Nil(t, r.OnRun)
}
