//go:build !(js && wasm)

package main

import (
	"github.com/pkg/profile"
)

// ProfileStart writes a cpu profile into the working directory until the
// returned function is called.
func ProfileStart() func() {
	return profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop
}
