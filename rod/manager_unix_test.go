//go:build integration && !windows

package rod_test

import (
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	wsrod "github.com/websoup/websoup/rod"
)

func TestManager_Close_KillsLauncherProcess(t *testing.T) {
	t.Parallel()

	manager, err := wsrod.NewManager()
	require.NoError(t, err)

	pid := manager.LauncherPID()
	require.NotZero(t, pid, "launcher PID should be set")

	// Signal 0 checks process existence without affecting it. On Unix,
	// FindProcess always succeeds, so Signal is the reliable check.
	err = syscall.Kill(pid, syscall.Signal(0))
	require.NoError(t, err, "launcher process should be running before Close()")

	require.NoError(t, manager.Close())

	// Give the OS a moment to clean up the process.
	time.Sleep(100 * time.Millisecond)

	err = syscall.Kill(pid, syscall.Signal(0))
	assert.Error(t, err, "launcher process should be terminated after Close()")
}
