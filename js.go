//go:build js && wasm

package main

// ProfileStart is a no-op in the browser.
func ProfileStart() func() {
	return func() {}
}
