package log

import (
	"os"

	"stundenmanager/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger 依 LOG.LEVEL 建立 JSON logger；warn 以上寫 stderr，其餘寫 stdout
func NewLogger(conf *config.Configuration) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(conf.Log.Level)
	if err != nil || conf.Log.Level == "" {
		lvl = zapcore.InfoLevel
	}
	atomic := zap.NewAtomicLevelAt(lvl)

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.MessageKey = "message"
	encCfg.LevelKey = "level"
	encCfg.TimeKey = "ts"
	encCfg.CallerKey = "caller"
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	encoder := zapcore.NewJSONEncoder(encCfg)

	stdoutLevel := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return atomic.Enabled(l) && l < zapcore.WarnLevel
	})
	stderrLevel := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return atomic.Enabled(l) && l >= zapcore.WarnLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), stdoutLevel),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), stderrLevel),
	)

	logger := zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.Fields(
			zap.String("service", conf.App.Name),
			zap.String("version", conf.App.Version),
		),
	)
	logger.Info("zap logger ready", zap.Stringer("level", lvl))

	return logger, nil
}
