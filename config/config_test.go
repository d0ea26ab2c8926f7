package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

var configStr string = `
Demos = ["slice"]
Seed  = [7, 8]

[Log]
LogDir    = "tmp"
LogLevel  = "debug"
`

func TestLoadConfigStr(t *testing.T) {
	conf, err := LoadConfigStr(configStr)
	assert.Nil(t, err)
	assert.Equal(t, conf.Demos, []string{"slice"})
	assert.Equal(t, conf.Seed, []int{7, 8})
	assert.Equal(t, conf.Log.LogDir, "tmp")
	assert.Equal(t, conf.Log.LogLevel, "debug")

	// 未配置的项使用默认值
	assert.Equal(t, conf.Log.LogPrefix, "dlinkedlist")
	assert.Equal(t, conf.Log.MaxLogfileSize, 100)
	assert.Equal(t, conf.SelectedDemos(), []string{"slice"})

	_, err = LoadConfigStr("Seed = [")
	assert.NotNil(t, err)
}

func TestDefaultConfig(t *testing.T) {
	conf, err := LoadConfigStr("")
	assert.Nil(t, err)
	assert.Equal(t, conf.Seed, []int{0, 1, 2, 3, 4})
	assert.Equal(t, conf.SelectedDemos(), AllDemos)
	assert.True(t, conf.Log.EnableStdout)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dlinkedlist.toml")
	assert.Nil(t, os.WriteFile(path, []byte(configStr), 0644))

	conf, err := LoadConfig(path)
	assert.Nil(t, err)
	assert.Equal(t, conf.Seed, []int{7, 8})

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
