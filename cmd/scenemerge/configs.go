package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/scenekit/scenemerge/encode"
	"github.com/scenekit/scenemerge/format"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	J bool `cli:"name=j aliases=json desc='output in json'"`
	Y bool `cli:"name=y aliases=yaml desc='output in yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error
	outW     io.Writer

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, err
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(_ *cli.Context, v string) (any, error) {
	f, err := os.Create(v)
	if err != nil {
		return nil, err
	}
	cfg.Out = v
	cfg.CloseOut = f.Close
	cfg.outW = f
	return v, nil
}

func (cfg *MainConfig) writer(cc *cli.Context) io.Writer {
	if cfg.outW != nil {
		return cfg.outW
	}
	return cc.Out
}

func (cfg *MainConfig) outFormat() format.Format {
	var f format.Format
	switch {
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

// colors returns the palette for terminal output: forced by -color,
// otherwise on iff writing to a tty.
func (cfg *MainConfig) colors() *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	if cfg.Out == "" && isatty.IsTerminal(os.Stdout.Fd()) {
		return encode.NewColors()
	}
	return nil
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
}
