package config

import (
	"github.com/BurntSushi/toml"
)

// 演示程序支持的场景
var AllDemos = []string{"basic", "index", "slice", "mutate", "sequence"}

type Config struct {
	Demos []string //要运行的演示，为空时全部运行
	Seed  []int    //演示使用的初始数据

	Log struct {
		MaxLogfileSize int //单个日志文件大小，单位MB
		LogDir         string
		LogPrefix      string
		LogLevel       string
		EnableStdout   bool
		MaxAge         int //日志保留天数
		MaxBackups     int
	}
}

func DefaultConfig() *Config {
	config := &Config{
		Seed: []int{0, 1, 2, 3, 4},
	}
	config.Log.MaxLogfileSize = 100
	config.Log.LogDir = "log"
	config.Log.LogPrefix = "dlinkedlist"
	config.Log.LogLevel = "info"
	config.Log.EnableStdout = true
	config.Log.MaxAge = 14
	config.Log.MaxBackups = 10
	return config
}

func LoadConfigStr(str string) (*Config, error) {
	config := DefaultConfig()
	_, err := toml.Decode(str, config)
	if nil != err {
		return nil, err
	} else {
		return config, nil
	}
}

func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	_, err := toml.DecodeFile(path, config)
	if nil != err {
		return nil, err
	} else {
		return config, nil
	}
}

// SelectedDemos 返回要运行的演示列表
func (c *Config) SelectedDemos() []string {
	if len(c.Demos) == 0 {
		return AllDemos
	}
	return c.Demos
}
