package maincmd

import (
	"context"
	"fmt"

	"github.com/joeycumines/floatkey"
	"github.com/mna/mainer"
)

func (c *Cmd) Compare(ctx context.Context, stdio mainer.Stdio, args []string) error {
	log := c.newLogger(stdio)

	var values [2]floatkey.Float64
	for i, arg := range args {
		v, err := floatkey.Parse(arg)
		if err != nil {
			log.Err().
				Err(err).
				Str(`input`, arg).
				Log(`invalid literal`)
			return err
		}
		values[i] = v
	}

	log.Debug().
		Str(`a`, values[0].String()).
		Str(`b`, values[1].String()).
		Log(`comparing`)

	fmt.Fprintf(stdio.Stdout, "%d\n", values[0].Compare(values[1]))
	return nil
}
