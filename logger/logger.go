package logger

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type stdoutWriteSyncer struct {
}

func (s stdoutWriteSyncer) Write(p []byte) (n int, err error) {
	return os.Stdout.Write(p)
}

func (s stdoutWriteSyncer) Sync() error {
	return nil
}

var levelMap = map[string]zapcore.Level{
	"debug":  zapcore.DebugLevel,
	"info":   zapcore.InfoLevel,
	"warn":   zapcore.WarnLevel,
	"error":  zapcore.ErrorLevel,
	"dpanic": zapcore.DPanicLevel,
	"panic":  zapcore.PanicLevel,
	"fatal":  zapcore.FatalLevel,
}

// GetLoggerLevel 未知的级别按info处理
func GetLoggerLevel(lvl string) zapcore.Level {
	if level, ok := levelMap[lvl]; ok {
		return level
	}
	return zapcore.InfoLevel
}

func TimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}

// NewZapLogger 创建写入 path/name 的日志，文件按大小滚动，enableLogStdout为true时同时输出到标准输出
func NewZapLogger(name string, path string, level string, maxLogfileSize int, maxAge int, maxBackups int, enableLogStdout bool) *zap.Logger {
	syncWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(path, name),
		MaxSize:    maxLogfileSize,
		MaxAge:     maxAge,
		MaxBackups: maxBackups,
		LocalTime:  true,
	})

	var w zapcore.WriteSyncer

	encoder := zap.NewProductionEncoderConfig()
	encoder.EncodeTime = TimeEncoder

	if enableLogStdout {
		w = zap.CombineWriteSyncers(syncWriter, stdoutWriteSyncer{})
	} else {
		w = zap.CombineWriteSyncers(syncWriter)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoder), w, zap.NewAtomicLevelAt(GetLoggerLevel(level)))

	return zap.New(core, zap.AddCaller())
}
