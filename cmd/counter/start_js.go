//go:build js && wasm

package main

import (
	"time"

	"github.com/go-drift/recall/pkg/config"
	"github.com/go-drift/recall/pkg/dom"
	"github.com/go-drift/recall/pkg/errors"
)

const defaultLimit = 10

func start(cfg *config.Config, _ int) error {
	surface := dom.New()
	app := newCounterApp(surface, defaultLimit, cfg.StoreOptions()...)
	surface.Mount(app.Root())

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for range ticker.C {
		if err := app.Increment(); err != nil {
			errors.Report(&errors.StoreError{Op: "counter.Increment", Kind: errors.KindUpdater, Err: err})
		}
	}
	return nil
}
