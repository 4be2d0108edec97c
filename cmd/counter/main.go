// Command counter is a small recall application: a label that follows a
// remembered counter and turns red once the counter reaches its limit.
//
// Outside the browser it renders into an in-memory document and prints the
// markup after every increment. Built with GOOS=js GOARCH=wasm it renders
// into the page and increments once per second.
//
// Usage:
//
//	counter [-ticks n] [-config dir]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-drift/recall/pkg/config"
)

func main() {
	ticks := flag.Int("ticks", 3, "number of increments to apply (headless only)")
	dir := flag.String("config", ".", "directory holding recall.yaml")
	flag.Parse()

	cfg, err := config.LoadOptional(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Apply()

	if err := start(cfg, *ticks); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
