//goland:noinspection GoDeprecation
package internal

import (
	"errors"
	"log"
	"net/rpc"
	"os"
	"time"
)

// SceneService is an internal struct that has to be exported for RPC.
// It is the server counterpart to the scene client and provides remote access to a SceneImpl.
type SceneService struct {
	impl SceneImpl
	done chan os.Signal
}

// NewSceneService see SceneService
func NewSceneService(impl SceneImpl, done chan os.Signal) *rpc.Server {
	server := rpc.NewServer()
	srv := SceneService{
		impl: impl,
		done: done,
	}
	err := server.Register(&srv)
	if err != nil {
		panic(err) // Shouldn't happen (only on bad implementation)
	}
	return server
}

// Place is an internal method that has to be exported for RPC.
func (d *SceneService) Place(args PlaceArgs, _ *int) error {
	err := d.impl.Place(args)
	if err != nil {
		log.Println("[SceneService] Place error:", err)
	}
	return err
}

// Pick is an internal method that has to be exported for RPC.
func (d *SceneService) Pick(args RayArgs, out *bool) error {
	*out = d.impl.Pick(args)
	return nil
}

// MoveSelected is an internal method that has to be exported for RPC.
func (d *SceneService) MoveSelected(args RayArgs, _ *int) error {
	d.impl.MoveSelected(args)
	return nil
}

// ScaleSelected is an internal method that has to be exported for RPC.
func (d *SceneService) ScaleSelected(up bool, _ *int) error {
	d.impl.ScaleSelected(up)
	return nil
}

// RotateSelectedColor is an internal method that has to be exported for RPC.
func (d *SceneService) RotateSelectedColor(forward bool, _ *int) error {
	d.impl.RotateSelectedColor(forward)
	return nil
}

// RemoveSelected is an internal method that has to be exported for RPC.
func (d *SceneService) RemoveSelected(_ int, out *bool) error {
	*out = d.impl.RemoveSelected()
	return nil
}

// Snapshot is an internal method that has to be exported for RPC.
func (d *SceneService) Snapshot(_ int, out *SceneSnapshot) error {
	*out = *d.impl.Snapshot()
	return nil
}

// Shutdown is an internal method that has to be exported for RPC.
// Shutdown sends a signal on the configured channel (with a timeout)
func (d *SceneService) Shutdown(t time.Duration, _ *int) error {
	select {
	case d.done <- os.Kill:
		return nil
	case <-time.After(t):
		return errors.New("shutdown timeout")
	}
}
