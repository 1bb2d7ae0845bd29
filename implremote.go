package editor

import (
	"context"
	"fmt"
	"github.com/Yeicor/sdfx-editor/internal"
	"github.com/cenkalti/backoff/v5"
	"log"
	"net/rpc"
	"time"
)

// Maximum time spent retrying to connect to a remote scene
const remoteDialTimeout = 30 * time.Second

// sceneClient implements SceneImpl by calling a remote implementation (using Go's net/rpc).
// Errors are logged and the operation degrades to a no-op.
type sceneClient struct {
	cl *rpc.Client
}

// newSceneClient see sceneClient
func newSceneClient(client *rpc.Client) *sceneClient {
	return &sceneClient{cl: client}
}

// dialSceneClient connects to the scene served at addr, retrying with exponential backoff while the server starts.
func dialSceneClient(ctx context.Context, addr string) (*sceneClient, error) {
	cl, err := backoff.Retry(ctx, func() (*rpc.Client, error) {
		return rpc.Dial("tcp", addr)
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(remoteDialTimeout),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Println("[SceneClient] Connection to", addr, "failed (retrying in", next, "):", err)
		}))
	if err != nil {
		return nil, fmt.Errorf("connecting to remote scene at %s: %w", addr, err)
	}
	log.Println("[SceneClient] Connected to", addr)
	return newSceneClient(cl), nil
}

func (d *sceneClient) Place(args internal.PlaceArgs) error {
	var ignoreMe int
	return d.cl.Call("SceneService.Place", args, &ignoreMe)
}

func (d *sceneClient) Pick(args internal.RayArgs) bool {
	var out bool
	err := d.cl.Call("SceneService.Pick", args, &out)
	if err != nil {
		log.Println("[SceneClient] Error on remote call (SceneService.Pick):", err)
	}
	return out
}

func (d *sceneClient) MoveSelected(args internal.RayArgs) {
	var ignoreMe int
	err := d.cl.Call("SceneService.MoveSelected", args, &ignoreMe)
	if err != nil {
		log.Println("[SceneClient] Error on remote call (SceneService.MoveSelected):", err)
	}
}

func (d *sceneClient) ScaleSelected(up bool) {
	var ignoreMe int
	err := d.cl.Call("SceneService.ScaleSelected", up, &ignoreMe)
	if err != nil {
		log.Println("[SceneClient] Error on remote call (SceneService.ScaleSelected):", err)
	}
}

func (d *sceneClient) RotateSelectedColor(forward bool) {
	var ignoreMe int
	err := d.cl.Call("SceneService.RotateSelectedColor", forward, &ignoreMe)
	if err != nil {
		log.Println("[SceneClient] Error on remote call (SceneService.RotateSelectedColor):", err)
	}
}

func (d *sceneClient) RemoveSelected() bool {
	var out bool
	err := d.cl.Call("SceneService.RemoveSelected", 0, &out)
	if err != nil {
		log.Println("[SceneClient] Error on remote call (SceneService.RemoveSelected):", err)
	}
	return out
}

func (d *sceneClient) Snapshot() *internal.SceneSnapshot {
	var out internal.SceneSnapshot
	err := d.cl.Call("SceneService.Snapshot", 0, &out)
	if err != nil {
		log.Println("[SceneClient] Error on remote call (SceneService.Snapshot):", err)
	}
	return &out
}

// Shutdown asks the serving process to exit.
func (d *sceneClient) Shutdown(timeout time.Duration) error {
	var ignoreMe int
	return d.cl.Call("SceneService.Shutdown", timeout, &ignoreMe)
}

func (d *sceneClient) Close() error {
	return d.cl.Close()
}
