// Package dom provides a render.Surface backed by the browser document.
//
// It is only available when building with GOOS=js GOARCH=wasm:
//
//	surface := dom.New()
//	c := component.New(surface, "span", sources, descriptor)
//	surface.Mount(c.Root())
package dom
