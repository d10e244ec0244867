package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/copycolors/internal/canvas"
)

func TestNewSSHServer(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(SSHServerConfig{
		Address:      "127.0.0.1:0",
		HostKeyPath:  keyPath,
		IdleTimeout:  time.Minute,
		Layout:       canvas.DefaultLayout(),
		HistoryLimit: 10,
	}, nil, log.New(io.Discard))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:0", srv.Addr())
	assert.FileExists(t, keyPath)
}

func TestNewSSHServerDefaultLogger(t *testing.T) {
	srv, err := NewSSHServer(SSHServerConfig{
		Address:     ":23235",
		HostKeyPath: filepath.Join(t.TempDir(), "host_key"),
	}, nil, nil)
	require.NoError(t, err)

	assert.NotNil(t, srv.logger)
	assert.Equal(t, ":23235", srv.Addr())
}
