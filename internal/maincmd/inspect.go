package maincmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/joeycumines/floatkey"
	"github.com/mna/mainer"
)

func (c *Cmd) Inspect(ctx context.Context, stdio mainer.Stdio, args []string) error {
	log := c.newLogger(stdio)

	var invalid int
	inspect := func(text string) {
		v, err := floatkey.Parse(text)
		if err != nil {
			invalid++
			log.Err().
				Err(err).
				Str(`input`, text).
				Log(`invalid literal`)
			return
		}
		log.Debug().
			Str(`input`, text).
			Str(`kind`, v.Kind().String()).
			Log(`parsed literal`)
		b, err := v.MarshalJSON()
		if err != nil {
			invalid++
			log.Err().
				Err(err).
				Str(`input`, text).
				Log(`failed to encode json`)
			return
		}
		fmt.Fprintf(stdio.Stdout, "%s\t%s\t%s\t%016x\n", v.Kind(), v, b, v.Key())
	}

	if len(args) != 0 {
		for _, arg := range args {
			if err := ctx.Err(); err != nil {
				return err
			}
			inspect(arg)
		}
	} else {
		sc := bufio.NewScanner(stdio.Stdin)
		for sc.Scan() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if line := strings.TrimSpace(sc.Text()); line != `` {
				inspect(line)
			}
		}
		if err := sc.Err(); err != nil {
			log.Err().Err(err).Log(`failed to read stdin`)
			return err
		}
	}

	if invalid != 0 {
		err := fmt.Errorf(`inspect: %d invalid literal(s)`, invalid)
		log.Err().Err(err).Log(`inspect failed`)
		return err
	}
	return nil
}
