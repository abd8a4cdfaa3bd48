package platform

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned by OpenNative on systems without a native backend.
var ErrUnsupported = errors.New("no native window-system backend on this platform")

// Point is a position in screen pixels.
type Point struct {
	X int
	Y int
}

// Size is a width/height pair in screen pixels.
type Size struct {
	Width  int
	Height int
}

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// RectFrom builds a Rect from its top-left corner and size.
func RectFrom(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Center returns the midpoint of r, rounded toward the origin.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside r (right/bottom edges exclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Intersect returns the overlapping area of r and o, or the zero Rect when they
// do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.X+r.Width, o.X+o.Width)
	y2 := min(r.Y+r.Height, o.Y+o.Height)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Area returns width*height.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Display describes a physical display.
type Display struct {
	ID     int
	Name   string
	Bounds Rect
}

// MonitorLocator finds the display a window currently occupies.
type MonitorLocator interface {
	DisplayFor(window Rect) (Display, error)
}

// Native is the optional window-system integration for the running OS.
type Native interface {
	MonitorLocator
	// KeepAbove asks the window manager to keep this process's window with
	// exactly the given title above others.
	KeepAbove(title string) error
	// Pointer returns the pointer position in screen coordinates.
	Pointer() (Point, error)
	Close()
}

// LocatorChain tries each locator in order and returns the first success.
type LocatorChain []MonitorLocator

var _ MonitorLocator = LocatorChain(nil)

// DisplayFor implements MonitorLocator.
func (c LocatorChain) DisplayFor(window Rect) (Display, error) {
	var errs []error
	for _, l := range c {
		if l == nil {
			continue
		}
		d, err := l.DisplayFor(window)
		if err == nil {
			return d, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return Display{}, errors.New("no monitor locators configured")
	}
	return Display{}, fmt.Errorf("locate monitor: %w", errors.Join(errs...))
}

// BestDisplay picks the display sharing the largest area with window. When the
// window overlaps none of them, the display under the window center wins, then
// the first display.
func BestDisplay(displays []Display, window Rect) (Display, error) {
	if len(displays) == 0 {
		return Display{}, errors.New("no monitors found")
	}

	best := -1
	bestArea := 0
	for i, d := range displays {
		if area := d.Bounds.Intersect(window).Area(); area > bestArea {
			best = i
			bestArea = area
		}
	}
	if best >= 0 {
		return displays[best], nil
	}

	center := window.Center()
	for _, d := range displays {
		if d.Bounds.Contains(center) {
			return d, nil
		}
	}
	return displays[0], nil
}

// DisplayCache remembers the display list between lookups. It reloads when
// invalidated or when a window's center falls outside every cached display.
type DisplayCache struct {
	Load     func() ([]Display, error)
	displays []Display
}

var _ MonitorLocator = (*DisplayCache)(nil)

// DisplayFor implements MonitorLocator.
func (c *DisplayCache) DisplayFor(window Rect) (Display, error) {
	if !c.covers(window.Center()) {
		displays, err := c.Load()
		if err != nil {
			return Display{}, err
		}
		c.displays = displays
	}
	return BestDisplay(c.displays, window)
}

// Invalidate drops the cached list.
func (c *DisplayCache) Invalidate() {
	c.displays = nil
}

func (c *DisplayCache) covers(p Point) bool {
	for _, d := range c.displays {
		if d.Bounds.Contains(p) {
			return true
		}
	}
	return false
}
