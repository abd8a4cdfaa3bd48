// Package wallpaper finds the image file the desktop is currently using as its
// background. Each desktop environment stores it differently; the lookups here
// shell out to the same tools a user would run (gsettings, xfconf-query,
// osascript) or read the relevant config files.
package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrNotFound is returned when no lookup strategy produced a path.
var ErrNotFound = errors.New("wallpaper not found")

// Runner executes an external command and returns its stdout.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Finder looks up the active wallpaper path.
type Finder struct {
	Run    Runner
	Getenv func(string) string
	Home   string
}

// NewFinder returns a Finder wired to the real environment.
func NewFinder() *Finder {
	home, _ := os.UserHomeDir()
	return &Finder{
		Run:    execRunner{},
		Getenv: os.Getenv,
		Home:   home,
	}
}

type strategy struct {
	name   string
	lookup func(ctx context.Context) (string, error)
}

// Path returns the wallpaper file path.
func (f *Finder) Path(ctx context.Context) (string, error) {
	var errs []error
	for _, s := range f.strategies() {
		path, err := s.lookup(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
			continue
		}
		if path = strings.TrimSpace(path); path != "" {
			return path, nil
		}
	}
	if len(errs) == 0 {
		return "", ErrNotFound
	}
	return "", fmt.Errorf("%w: %w", ErrNotFound, errors.Join(errs...))
}

func (f *Finder) output(ctx context.Context, name string, args ...string) (string, error) {
	out, err := f.Run.Output(ctx, name, args...)
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return string(out), nil
}

func (f *Finder) readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
