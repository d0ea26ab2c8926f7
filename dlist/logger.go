package dlist

import (
	"sync"

	"go.uber.org/zap"
)

var initOnce sync.Once
var zapLogger = zap.NewNop()
var sugaredLogger = zapLogger.Sugar()

// InitLogger 设置链表包使用的日志，只有第一次调用生效。未设置时不输出任何日志
func InitLogger(l *zap.Logger) {
	initOnce.Do(func() {
		zapLogger = l
		sugaredLogger = zapLogger.Sugar()
	})
}

func GetLogger() *zap.Logger {
	return zapLogger
}

func GetSugar() *zap.SugaredLogger {
	return sugaredLogger
}
