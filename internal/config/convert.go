package config

import (
	"github.com/danmuck/irdecode/internal/logging"
	"github.com/danmuck/irdecode/internal/protocol/frame"
	"github.com/rs/zerolog"
)

func (c ServiceConfig) Limits() frame.Limits {
	if c.MaxLineBytes <= 0 {
		return frame.DefaultLimits()
	}
	return frame.Limits{MaxLineBytes: c.MaxLineBytes}
}

func (c ServiceConfig) LogLevel() zerolog.Level {
	lvl, ok := logging.ParseLevel(c.Log.Level)
	if !ok {
		return zerolog.InfoLevel
	}
	return lvl
}
