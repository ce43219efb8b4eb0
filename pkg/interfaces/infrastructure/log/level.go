// Package log 提供 CoreChain 系统的日志级别接口定义
package log

import "strings"

// Level 日志级别类型
type Level string

// 标准日志级别
const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
	FatalLevel Level = "fatal"
)

// String 返回级别的字符串表示
func (l Level) String() string {
	return string(l)
}

// ParseLevel 将字符串解析为日志级别，无法识别时回退为 InfoLevel
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "fatal":
		return FatalLevel
	default:
		return InfoLevel
	}
}
