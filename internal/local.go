package internal

import (
	"github.com/Yeicor/sdfx-editor/scene"
	"sync"
)

// LocalScene implements SceneImpl over an in-process scene, serializing all operations with a single lock.
type LocalScene struct {
	lock sync.Mutex
	s    *scene.Scene
}

// NewLocalScene see LocalScene
func NewLocalScene(s *scene.Scene) *LocalScene {
	return &LocalScene{s: s}
}

// Do runs f while holding the scene lock (for operations not covered by SceneImpl).
func (l *LocalScene) Do(f func(s *scene.Scene)) {
	l.lock.Lock()
	defer l.lock.Unlock()
	f(l.s)
}

func (l *LocalScene) Place(args PlaceArgs) error {
	l.lock.Lock()
	defer l.lock.Unlock()
	_, err := l.s.Place(args.Kind, args.Ray.Origin, args.Ray.Direction, args.InvCamera)
	return err
}

func (l *LocalScene) Pick(args RayArgs) bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.s.Pick(args.Ray.Origin, args.Ray.Direction, args.Camera) != nil
}

func (l *LocalScene) MoveSelected(args RayArgs) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.s.MoveSelected(args.Ray.Origin, args.Ray.Direction, args.Camera)
}

func (l *LocalScene) ScaleSelected(up bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.s.ScaleSelected(up)
}

func (l *LocalScene) RotateSelectedColor(forward bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.s.RotateSelectedColor(forward)
}

func (l *LocalScene) RemoveSelected() bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.s.RemoveSelected()
}

func (l *LocalScene) Snapshot() *SceneSnapshot {
	l.lock.Lock()
	defer l.lock.Unlock()
	return NewSceneSnapshot(l.s)
}
