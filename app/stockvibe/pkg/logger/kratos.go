package logger

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/sirupsen/logrus"
)

var _ log.Logger = (*KratosLogger)(nil)

// KratosLogger 把 kratos 的 log.Logger 接到 logrus 上，HTTP 服务和引擎共用一个输出
type KratosLogger struct {
	log *logrus.Logger
}

// NewKratosLogger 使用给定的 logrus 实例。传 nil 时每次写入都使用当前的全局 Log，
// 这样 InitLogger 之后的级别和输出也会生效
func NewKratosLogger(l *logrus.Logger) *KratosLogger {
	return &KratosLogger{log: l}
}

func (k *KratosLogger) target() *logrus.Logger {
	if k.log == nil {
		return Log
	}
	return k.log
}

// Log 实现 log.Logger。"msg" 作为消息正文，"caller" 作为调用位置，其余键值对作为字段
func (k *KratosLogger) Log(level log.Level, keyvals ...interface{}) error {
	if len(keyvals) == 0 {
		return nil
	}
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, "KEYVALS UNPAIRED")
	}

	var msg string
	fields := make(logrus.Fields, len(keyvals)/2+1)
	// logrus 记录的调用位置总是本文件，改用 kratos 传入的 caller，没有则留空
	fields[CallerKey] = ""
	for i := 0; i < len(keyvals); i += 2 {
		key := fmt.Sprint(keyvals[i])
		if key == log.DefaultMessageKey {
			msg = fmt.Sprint(keyvals[i+1])
			continue
		}
		fields[key] = keyvals[i+1]
	}

	k.target().WithFields(fields).Log(toLogrusLevel(level), msg)
	return nil
}

func toLogrusLevel(level log.Level) logrus.Level {
	switch level {
	case log.LevelDebug:
		return logrus.DebugLevel
	case log.LevelWarn:
		return logrus.WarnLevel
	case log.LevelError:
		return logrus.ErrorLevel
	case log.LevelFatal:
		// kratos 的 Fatal 由调用方决定是否退出，这里只记录
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
