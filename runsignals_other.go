//go:build !linux
// +build !linux

package editor

import (
	"os"
)

// signals stop a served scene
func signals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
