package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/scenekit/scenemerge/encode"
)

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: view requires 1 arg, got %v", cli.ErrUsage, args)
	}
	n, err := getNodeFile(args[0])
	if err != nil {
		return err
	}
	colors := cfg.colors()
	if colors == nil {
		colors = encode.NewColors()
	}
	w := cfg.writer(cc)
	if err := encode.Render(n, w, encode.EncodeColors(colors)); err != nil {
		return err
	}
	if cfg.CloseOut != nil {
		return cfg.CloseOut()
	}
	return nil
}
