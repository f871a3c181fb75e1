// Package logger 基于zerolog的结构化日志
//
// 设计说明：
// 1. 全局Logger在进程启动时Init一次，业务代码通过包级函数取Event
// 2. format=console用于本地开发（彩色、可读），format=json用于生产（机器可解析）
// 3. 存储层/内部错误的细节只进日志，不进HTTP响应
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init 初始化全局日志
// level: debug | info | warn | error
// format: console | json
// output: stdout | stderr
func Init(service, level, format, output string) {
	zerolog.TimeFieldFormat = time.RFC3339

	var w io.Writer
	switch output {
	case "stderr":
		w = os.Stderr
	default:
		w = os.Stdout
	}

	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	log.Logger = zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}

// Debug 调试日志
func Debug() *zerolog.Event {
	return log.Debug()
}

// Info 信息日志
func Info() *zerolog.Event {
	return log.Info()
}

// Warn 警告日志
func Warn() *zerolog.Event {
	return log.Warn()
}

// Error 错误日志
func Error() *zerolog.Event {
	return log.Error()
}

// Fatal 致命错误日志（输出后退出进程）
func Fatal() *zerolog.Event {
	return log.Fatal()
}
