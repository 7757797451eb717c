package config

import (
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gotree"
	"github.com/qdm12/log"
)

type Logger struct {
	Level *log.Level
}

func (l *Logger) setDefaults() {
	l.Level = gosettings.DefaultPointer(l.Level, log.LevelInfo)
}

func (l Logger) mergeWith(other Logger) (merged Logger) {
	merged.Level = gosettings.MergeWithPointer(l.Level, other.Level)
	return merged
}

func (l Logger) validate() (err error) {
	return nil
}

func (l Logger) ToOptions() []log.Option {
	return []log.Option{
		log.SetLevel(*l.Level),
	}
}

func (l Logger) toLinesNode() *gotree.Node {
	node := gotree.New("Logger")
	node.Appendf("Level: %s", *l.Level)
	return node
}
