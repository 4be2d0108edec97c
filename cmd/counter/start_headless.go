//go:build !(js && wasm)

package main

import (
	"fmt"

	"github.com/go-drift/recall/pkg/config"
	recalltest "github.com/go-drift/recall/pkg/testing"
)

const defaultLimit = 3

func start(cfg *config.Config, ticks int) error {
	doc := recalltest.NewDocument()
	app := newCounterApp(doc, defaultLimit, cfg.StoreOptions()...)
	defer app.Destroy()

	doc.Mount(app.Root())
	fmt.Println(doc.Body())

	for i := 0; i < ticks; i++ {
		if err := app.Increment(); err != nil {
			return err
		}
		fmt.Println(doc.Body())
	}
	return nil
}
