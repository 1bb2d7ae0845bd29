package editor

import (
	"context"
	"fmt"
	"github.com/Yeicor/sdfx-editor/internal"
	"github.com/Yeicor/sdfx-editor/scene"
	"log"
	"net"
	"os"
	"os/signal"
)

// Serve exposes the scene at addr (TCP) so that editors started with OptRemote can edit it.
// It blocks until ctx is done, the process receives an exit signal, or a client requests a shutdown.
func Serve(ctx context.Context, addr string, s *scene.Scene) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("serving scene at %s: %w", addr, err)
	}
	return serveListener(ctx, listener, internal.NewLocalScene(s))
}

func serveListener(ctx context.Context, listener net.Listener, impl internal.SceneImpl) error {
	done := make(chan os.Signal, 1)
	signal.Notify(done, signals()...)
	defer signal.Stop(done)
	server := internal.NewSceneService(impl, done)
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return // Closed
			}
			log.Println("[SceneService] Client connected from", conn.RemoteAddr())
			go server.ServeConn(conn)
		}
	}()
	log.Println("[SceneService] Serving scene at", listener.Addr())
	select {
	case <-ctx.Done():
	case sig := <-done:
		log.Println("[SceneService] Exiting on", sig)
	}
	return listener.Close()
}
