package nav

import (
	"context"
	"path/filepath"

	"github.com/fileglance/fileglance/pkg/dirsnap"
)

// BuildFunc produces the snapshot for a directory. dirsnap.Build is the
// production implementation.
type BuildFunc func(ctx context.Context, dir string) (dirsnap.Snapshot, error)

// Navigator owns the current directory, its latest snapshot and the
// back/forward history. Methods are synchronous and meant to be driven from
// a single goroutine.
type Navigator struct {
	build    BuildFunc
	current  string
	back     []string
	forward  []string
	snapshot dirsnap.Snapshot
}

func NewNavigator(build BuildFunc) *Navigator {
	if build == nil {
		build = dirsnap.Build
	}
	return &Navigator{build: build}
}

func (nav *Navigator) Current() string { return nav.current }

func (nav *Navigator) Snapshot() dirsnap.Snapshot { return nav.snapshot }

func (nav *Navigator) CanBack() bool { return len(nav.back) > 0 }

func (nav *Navigator) CanForward() bool { return len(nav.forward) > 0 }

func (nav *Navigator) CanUp() bool {
	return nav.current != "" && filepath.Dir(nav.current) != nav.current
}

// Navigate makes dir the current directory and rebuilds the snapshot. The
// previous directory goes onto the back stack. The forward stack is kept, so
// Forward stays available even after going back and entering a new directory.
func (nav *Navigator) Navigate(ctx context.Context, dir string) error {
	if nav.current != "" {
		nav.back = append(nav.back, nav.current)
	}
	return nav.setCurrent(ctx, dir)
}

// Back returns to the most recent directory on the back stack, moving the
// current one onto the forward stack. With no history it does nothing.
func (nav *Navigator) Back(ctx context.Context) error {
	if len(nav.back) == 0 {
		return nil
	}
	dir := nav.back[len(nav.back)-1]
	nav.back = nav.back[:len(nav.back)-1]
	nav.forward = append(nav.forward, nav.current)
	return nav.setCurrent(ctx, dir)
}

// Forward undoes the most recent Back. With no forward history it does
// nothing.
func (nav *Navigator) Forward(ctx context.Context) error {
	if len(nav.forward) == 0 {
		return nil
	}
	dir := nav.forward[len(nav.forward)-1]
	nav.forward = nav.forward[:len(nav.forward)-1]
	nav.back = append(nav.back, nav.current)
	return nav.setCurrent(ctx, dir)
}

// Up navigates to the parent of the current directory. At a filesystem root
// it does nothing.
func (nav *Navigator) Up(ctx context.Context) error {
	if !nav.CanUp() {
		return nil
	}
	return nav.Navigate(ctx, filepath.Dir(nav.current))
}

// Refresh rebuilds the snapshot of the current directory without touching
// the history.
func (nav *Navigator) Refresh(ctx context.Context) error {
	return nav.rebuild(ctx)
}

func (nav *Navigator) setCurrent(ctx context.Context, dir string) error {
	nav.current = dir
	return nav.rebuild(ctx)
}

// rebuild replaces the snapshot wholesale. When the build fails the current
// directory keeps an empty listing and the error goes to the caller.
func (nav *Navigator) rebuild(ctx context.Context) error {
	snapshot, err := nav.build(ctx, nav.current)
	if err != nil {
		snapshot.Entries = nil
	}
	nav.snapshot = snapshot
	return err
}
