package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scenekit/scenemerge/parse"
	"github.com/scenekit/scenemerge/scene"
)

// getNodeFile reads and parses a scene document; "-" reads stdin.
func getNodeFile(path string) (*scene.Node, error) {
	var (
		d   []byte
		err error
	)
	if path == "-" {
		d, err = io.ReadAll(os.Stdin)
	} else {
		d, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	n, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return n, nil
}
