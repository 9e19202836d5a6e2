package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// level は全ロガーで共有されるログレベル
var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// Default はデフォルトのロガー
var Default = newLogger(zapcore.Lock(os.Stdout))

// newLogger は指定された出力先に書き込むロガーを作成する
func newLogger(w zapcore.WriteSyncer) *zap.SugaredLogger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), w, level)
	return zap.New(core).Sugar()
}

// SetDebug はデバッグログの出力を切り替える
func SetDebug(on bool) {
	if on {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.InfoLevel)
	}
}

// Named はタグ付きのロガーを返す（ワークロード毎の識別に使用）
func Named(tag string) *zap.SugaredLogger {
	return Default.Named(tag)
}

// グローバル関数（デフォルトロガーを使用）

// Debugf はデバッグログを出力する
func Debugf(format string, args ...any) {
	Default.Debugf(format, args...)
}

// Infof は情報ログを出力する
func Infof(format string, args ...any) {
	Default.Infof(format, args...)
}

// Warnf は警告ログを出力する
func Warnf(format string, args ...any) {
	Default.Warnf(format, args...)
}

// Errorf はエラーログを出力する
func Errorf(format string, args ...any) {
	Default.Errorf(format, args...)
}

// Sync はバッファされたログをフラッシュする
func Sync() {
	_ = Default.Sync()
}
