package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"

	"github.com/sebastianchess/Doubly-Linked-List/config"
	"github.com/sebastianchess/Doubly-Linked-List/dlist"
	"github.com/sebastianchess/Doubly-Linked-List/logger"
)

func main() {
	configPath := flag.String("config", "dlinkedlist.toml", "config")
	demo := flag.String("demo", "", "只运行指定的演示: basic|index|slice|mutate|sequence")

	flag.Parse()

	conf, err := config.LoadConfig(*configPath)
	if errors.Is(err, fs.ErrNotExist) {
		conf = config.DefaultConfig()
	} else if nil != err {
		fmt.Println(err)
		return
	}

	if *demo != "" {
		conf.Demos = []string{*demo}
	}

	zapLogger := logger.NewZapLogger(conf.Log.LogPrefix+".log", conf.Log.LogDir, conf.Log.LogLevel, conf.Log.MaxLogfileSize, conf.Log.MaxAge, conf.Log.MaxBackups, conf.Log.EnableStdout)
	defer zapLogger.Sync()

	dlist.InitLogger(zapLogger)

	runDemos(conf)
}

// 按配置依次运行演示
func runDemos(conf *config.Config) {
	sugar := dlist.GetSugar()
	for _, name := range conf.SelectedDemos() {
		sugar.Infof("--- 开始演示: %s ---", name)
		switch name {
		case "basic":
			BasicDemo(conf.Seed)
		case "index":
			IndexDemo(conf.Seed)
		case "slice":
			SliceDemo(conf.Seed)
		case "mutate":
			MutateDemo(conf.Seed)
		case "sequence":
			SequenceDemo(conf.Seed)
		default:
			sugar.Warnf("无效的演示: %s", name)
		}
	}
}
