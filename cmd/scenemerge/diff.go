package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/scenekit/scenemerge/encode"
)

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	ours, err := getNodeFile(args[0])
	if err != nil {
		return err
	}
	theirs, err := getNodeFile(args[1])
	if err != nil {
		return err
	}
	pairs, err := pairUnits(ours, theirs, nil)
	if err != nil {
		return err
	}
	w := cfg.writer(cc)
	renderOpts := []encode.EncodeOption{encode.EncodeColors(cfg.colors())}
	differs := false
	for _, p := range pairs {
		u := p.unit
		if len(u.Actions()) == 0 {
			continue
		}
		differs = true
		fmt.Fprintf(w, "%s:\n", u.Label())
		if err := encode.RenderActions(w, u, renderOpts...); err != nil {
			return err
		}
	}
	if cfg.CloseOut != nil {
		if err := cfg.CloseOut(); err != nil {
			return err
		}
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}
