package maincmd

import (
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/mna/mainer"
)

type logger = logiface.Logger[*stumpy.Event]

// newLogger returns a JSON logger writing to stderr, without timestamps.
func (c *Cmd) newLogger(stdio mainer.Stdio) *logger {
	level := stumpy.L.LevelInformational()
	if c.Verbose {
		level = stumpy.L.LevelDebug()
	}
	return stumpy.L.New(
		stumpy.L.WithStumpy(
			stumpy.WithWriter(stdio.Stderr),
			stumpy.WithTimeField(``),
		),
		stumpy.L.WithLevel(level),
	)
}
