//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	require.NoError(t, tf.StartDeck(), "Failed to start app")

	// Wait for TUI to initialize and render
	require.True(t, tf.Ready(), "Should draw the first slide")
	require.True(t, tf.SeePlain("e2e deck"), "Should show deck title")

	// Set up exit monitoring before sending 'q'
	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	t.Logf("Sending 'q' to quit application...")
	tf.Quit()

	select {
	case exitErr := <-done:
		assert.NoError(t, exitErr, "Process should exit cleanly")
	case <-time.After(1500 * time.Millisecond):
		t.Logf("'q' didn't work within 1.5 seconds, using Ctrl+C")
		tf.SendCtrlC()
		select {
		case exitErr := <-done:
			t.Errorf("Process only exited after Ctrl+C (exit code: %v)", exitErr)
		case <-time.After(750 * time.Millisecond):
			t.Error("Application did not exit within total timeout")
			tf.DumpTailOnFail(t, "exit-failure", 4096)
		}
		return
	}

	logged, err := os.ReadFile(filepath.Join(workspace, "reel.log"))
	require.NoError(t, err, "Log file should exist")
	assert.Contains(t, string(logged), "exiting")
}

func TestApplicationExitWithCtrlC(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	require.NoError(t, tf.StartDeck(WithAutoPlay("200ms")), "Failed to start app")
	require.True(t, tf.Ready(), "Should draw the first slide")

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	tf.SendCtrlC()

	select {
	case <-done:
		t.Logf("Process exited after Ctrl+C")
	case <-time.After(2 * time.Second):
		t.Fatal("app did not exit after ctrl+c")
	}
}
