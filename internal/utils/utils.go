package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NovoLogger devolve um logger de produção (JSON) ou, em desenvolvimento,
// um logger colorido no console.
func NovoLogger(ambiente string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if ambiente == "development" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// MascararChave deixa só o começo de uma chave de API visível nos logs.
func MascararChave(chave string) string {
	if len(chave) <= 6 {
		return "***"
	}
	return chave[:6] + "***"
}
