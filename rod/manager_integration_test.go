//go:build integration

package rod_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	wsrod "github.com/websoup/websoup/rod"
)

func TestManager_RecyclesBrowserAfterMaxPages(t *testing.T) {
	t.Parallel()

	manager, err := wsrod.NewManager(wsrod.WithMaxPages(3))
	require.NoError(t, err)
	defer manager.Close()

	firstBrowser := manager.Browser()
	require.NotNil(t, firstBrowser)

	manager.PageDone()
	manager.PageDone()
	manager.PageDone()

	// Next Browser() call should recycle and return a different instance.
	secondBrowser := manager.Browser()
	require.NotNil(t, secondBrowser)
	assert.NotSame(t, firstBrowser, secondBrowser)
}

func TestManager_DoesNotRecycleBeforeMaxPages(t *testing.T) {
	t.Parallel()

	manager, err := wsrod.NewManager(wsrod.WithMaxPages(5))
	require.NoError(t, err)
	defer manager.Close()

	firstBrowser := manager.Browser()
	require.NotNil(t, firstBrowser)

	manager.PageDone()
	manager.PageDone()

	assert.Same(t, firstBrowser, manager.Browser())
}

func TestManager_Close_Idempotent(t *testing.T) {
	t.Parallel()

	manager, err := wsrod.NewManager()
	require.NoError(t, err)

	require.NoError(t, manager.Close())
	require.NoError(t, manager.Close())
}
