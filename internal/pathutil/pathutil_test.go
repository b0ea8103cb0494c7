package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	configHome := t.TempDir()
	dataHome := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", dataHome)
	xdg.Reload()

	t.Cleanup(xdg.Reload)

	p, err := New("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(configHome, "wellness", "config.yml"), p.ConfigFilePath())
	assert.Equal(t, filepath.Join(dataHome, "wellness", "wellness.db"), p.DBFilePath())
	assert.Equal(t, filepath.Join(dataHome, "wellness", "log", "wellness.log"), p.LogFilePath())

	p, err = New(" dev ")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(configHome, "wellness", "config_dev.yml"), p.ConfigFilePath())
	assert.Equal(t, filepath.Join(dataHome, "wellness", "wellness_dev.db"), p.DBFilePath())
	assert.Equal(t, filepath.Join(dataHome, "wellness", "log", "wellness_dev.log"), p.LogFilePath())
}
