package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/scenekit/scenemerge/encode"
	"github.com/scenekit/scenemerge/merge"
	"github.com/scenekit/scenemerge/report"
	"github.com/scenekit/scenemerge/rules"
	"github.com/scenekit/scenemerge/scene"
)

type MergeConfig struct {
	*MainConfig

	Rules   string `cli:"name=rules desc='rule file for automatic resolution'"`
	Prefer  string `cli:"name=prefer desc='resolve remaining actions to ours or theirs'"`
	Partial bool   `cli:"name=partial desc='write the result even when unresolved actions remain'"`
	Report  string `cli:"name=report desc='write a JSON merge patch of the resolution to this file'"`

	Merge *cli.Command
}

func runMerge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: merge requires 2 args, got %v", cli.ErrUsage, args)
	}
	ours, err := getNodeFile(args[0])
	if err != nil {
		return err
	}
	theirs, err := getNodeFile(args[1])
	if err != nil {
		return err
	}
	before := ours.Clone()

	var opts []merge.Option
	if cfg.Rules != "" {
		set, err := rules.Load(cfg.Rules)
		if err != nil {
			return err
		}
		opts = append(opts, merge.WithAutoResolve(set.Decide))
	}
	pairs, err := pairUnits(ours, theirs, opts)
	if err != nil {
		return err
	}

	if cfg.Prefer != "" {
		side, err := merge.ParseSide(cfg.Prefer)
		if err != nil {
			return fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		for _, p := range pairs {
			for _, a := range p.unit.Actions() {
				p.unit.Resolve(a, side)
			}
		}
	}

	unresolved := 0
	for _, p := range pairs {
		if !p.unit.IsMerged() {
			for _, a := range p.unit.Actions() {
				if !a.Merged() {
					unresolved++
				}
			}
		}
	}
	if unresolved > 0 && !cfg.Partial {
		return fmt.Errorf("%d unresolved actions remain; pass -prefer, -rules or -partial", unresolved)
	}

	attachCreated(pairs)
	if ours.Deleted {
		return fmt.Errorf("merge deleted the root node; nothing to write")
	}
	w := cfg.writer(cc)
	if err := encode.Encode(ours, w, cfg.encOpts()...); err != nil {
		return err
	}
	if cfg.CloseOut != nil {
		if err := cfg.CloseOut(); err != nil {
			return err
		}
	}
	if cfg.Report != "" {
		d, err := report.MergePatch(before, ours)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.Report, append(d, '\n'), 0644); err != nil {
			return err
		}
	}
	return nil
}

// attachCreated hangs nodes materialized by accepted NewNode actions
// under their ours-side parent.
func attachCreated(pairs []*pairing) {
	for _, p := range pairs {
		n := p.unit.OursNode()
		if n == nil || p.parentOurs == nil {
			continue
		}
		if !created(p.unit, n) {
			continue
		}
		p.parentOurs.AddChild(n)
	}
}

func created(u *merge.Unit, n *scene.Node) bool {
	for _, a := range u.Actions() {
		if a.Created() == n {
			return true
		}
	}
	return false
}
