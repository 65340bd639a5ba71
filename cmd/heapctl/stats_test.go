package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/heap/alloc"
)

func TestStatsCommand_Demo(t *testing.T) {
	resetFlags(t)

	output, err := captureOutput(t, func() error {
		return runStats(nil)
	})
	require.NoError(t, err)

	assertContains(t, output, []string{
		"Mode: first-fit",
		"Allocations:  10",
		"Frees:        2",
		"Reused:       2",
		"Splits:       1",
	})
	assertNotContains(t, output, []string{"-- after"})
}

func TestStatsCommand_GroupsDigits(t *testing.T) {
	resetFlags(t)
	path := writeScript(t, "alloc big 5000\nalloc small 8\nfree small\n")

	output, err := captureOutput(t, func() error {
		return runStats([]string{path})
	})
	require.NoError(t, err)

	assertContains(t, output, []string{
		"Used:         5,000 bytes",
		"Region:       5,008 bytes",
		"Blocks:       2 (1 used, 1 free)",
	})
}

func TestStatsCommand_JSON(t *testing.T) {
	resetFlags(t)
	jsonOut = true
	modeName = "segregated"

	output, err := captureOutput(t, func() error {
		return runStats(nil)
	})
	require.NoError(t, err)
	assertJSON(t, output)

	var got alloc.Stats
	require.NoError(t, json.Unmarshal([]byte(output), &got))
	assert.Equal(t, "segregated", got.Mode)
	assert.Zero(t, got.Splits)
	assert.Zero(t, got.Coalesces)
	assert.Equal(t, 9, got.Blocks)
}

func TestVersionCommand(t *testing.T) {
	output, err := captureOutput(t, func() error {
		versionCmd.Run(versionCmd, nil)
		return nil
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"heapctl dev", "commit: none"})
}

func TestVersionFlagMatchesVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"--version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, version, rootCmd.Version)
	assert.Contains(t, buf.String(), "heapctl version "+version)
}
