//go:build freebsd || openbsd || netbsd || dragonfly || darwin || windows || linux || solaris
// +build freebsd openbsd netbsd dragonfly darwin windows linux solaris

package editor

import "github.com/fsnotify/fsnotify"

// newFsWatcher is only available on platforms supported by fsnotify (OptWatchConfig fails on the rest)
func newFsWatcher() (*fsnotify.Watcher, error) {
	return fsnotify.NewWatcher()
}
