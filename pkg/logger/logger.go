// Package logger 基于zap的日志初始化
package logger

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options 日志选项
type Options struct {
	Env          string // 附加到每条日志的env字段
	Level        string // debug | info | warn | error
	Format       string // console | json
	Output       string // stdout | stderr | 文件路径
	EnableCaller bool
	Development  bool // 使用开发环境的编码配置
}

// New 根据日志选项创建zap.Logger
// 返回的cleanup负责刷新缓冲区并关闭日志文件
func New(opts Options) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("无效的日志级别 %q: %w", opts.Level, err)
	}

	sink, closeSink, err := openSink(opts.Output)
	if err != nil {
		return nil, nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	if opts.Development {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.MessageKey = "msg"

	var encoder zapcore.Encoder
	switch opts.Format {
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	default:
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	zapOpts := []zap.Option{zap.AddStacktrace(zapcore.ErrorLevel)}
	if opts.EnableCaller {
		zapOpts = append(zapOpts, zap.AddCaller())
	}

	logger := zap.New(zapcore.NewCore(encoder, sink, level), zapOpts...).
		With(zap.String("env", opts.Env))

	cleanup := func() {
		// stdout/stderr上Sync可能返回EINVAL，只记录不处理
		if err := logger.Sync(); err != nil {
			log.Println("刷新日志缓冲失败:", err)
		}
		closeSink()
	}

	return logger, cleanup, nil
}

func openSink(output string) (zapcore.WriteSyncer, func(), error) {
	switch output {
	case "", "stdout":
		return zapcore.Lock(os.Stdout), func() {}, nil
	case "stderr":
		return zapcore.Lock(os.Stderr), func() {}, nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("打开日志文件失败: %w", err)
		}
		return zapcore.AddSync(f), func() { _ = f.Close() }, nil
	}
}
