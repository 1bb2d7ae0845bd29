package editor

import (
	"context"
	"github.com/Yeicor/sdfx-editor/internal"
	"github.com/Yeicor/sdfx-editor/scene"
	"github.com/fogleman/fauxgl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net"
	"testing"
	"time"
)

func TestServeAndConnect(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	served := make(chan error, 1)
	go func() {
		served <- serveListener(context.Background(), listener, internal.NewLocalScene(scene.New(scene.DefaultPalette())))
	}()

	cl, err := dialSceneClient(context.Background(), listener.Addr().String())
	require.NoError(t, err)
	defer func() { _ = cl.Close() }()

	ray := internal.Ray{Direction: fauxgl.Vector{Z: -1}}
	require.NoError(t, cl.Place(internal.PlaceArgs{Kind: scene.KindFigure, Ray: ray, InvCamera: fauxgl.Identity()}))
	assert.ErrorContains(t, cl.Place(internal.PlaceArgs{Kind: scene.KindGroup, Ray: ray, InvCamera: fauxgl.Identity()}), "unknown")
	assert.True(t, cl.Pick(internal.RayArgs{Ray: ray, Camera: fauxgl.Identity()}))
	cl.ScaleSelected(false)
	cl.RotateSelectedColor(true)
	cl.MoveSelected(internal.RayArgs{Ray: internal.Ray{Origin: fauxgl.Vector{X: 1}, Direction: ray.Direction}, Camera: fauxgl.Identity()})
	snap := cl.Snapshot()
	require.Len(t, snap.Nodes, 1)
	assert.Len(t, snap.Items, 3) // The three spheres of the figure
	assert.True(t, snap.Selected)
	assert.InDelta(t, 1, snap.Nodes[0].PickVolume.Center().X, 1e-9)
	assert.True(t, cl.RemoveSelected())
	assert.Empty(t, cl.Snapshot().Nodes)

	require.NoError(t, cl.Shutdown(time.Second))
	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("the server did not stop")
	}
}

func TestServeListenerContext(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, serveListener(ctx, listener, internal.NewLocalScene(scene.New(scene.DefaultPalette()))))
}

func TestDialSceneClientCancelled(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close()) // Nobody listening
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, err = dialSceneClient(ctx, addr)
	assert.Error(t, err)
}
