package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name string
		b    Rect
		want Rect
	}{
		{"contained", Rect{X: 10, Y: 10, Width: 20, Height: 20}, Rect{X: 10, Y: 10, Width: 20, Height: 20}},
		{"partial", Rect{X: 50, Y: 80, Width: 100, Height: 100}, Rect{X: 50, Y: 80, Width: 50, Height: 20}},
		{"touching edge", Rect{X: 100, Y: 0, Width: 10, Height: 10}, Rect{}},
		{"disjoint", Rect{X: 200, Y: 200, Width: 10, Height: 10}, Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Intersect(tt.b))
		})
	}
}

func TestBestDisplay(t *testing.T) {
	left := Display{ID: 0, Name: "DP-1", Bounds: Rect{X: 0, Y: 0, Width: 1920, Height: 1080}}
	right := Display{ID: 1, Name: "HDMI-1", Bounds: Rect{X: 1920, Y: 0, Width: 2560, Height: 1440}}
	displays := []Display{left, right}

	tests := []struct {
		name   string
		window Rect
		want   string
	}{
		{"fully on left", Rect{X: 100, Y: 100, Width: 1280, Height: 720}, "DP-1"},
		{"mostly on right", Rect{X: 1800, Y: 100, Width: 1280, Height: 720}, "HDMI-1"},
		{"mostly on left", Rect{X: 1000, Y: 100, Width: 1280, Height: 720}, "DP-1"},
		{"off screen", Rect{X: -5000, Y: -5000, Width: 10, Height: 10}, "DP-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BestDisplay(displays, tt.window)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}

	_, err := BestDisplay(nil, Rect{})
	assert.Error(t, err)
}

type stubLocator struct {
	display Display
	err     error
	calls   int
}

func (s *stubLocator) DisplayFor(Rect) (Display, error) {
	s.calls++
	return s.display, s.err
}

func TestLocatorChain(t *testing.T) {
	failing := &stubLocator{err: errors.New("randr unavailable")}
	working := &stubLocator{display: Display{Name: "eDP-1"}}

	d, err := LocatorChain{failing, nil, working}.DisplayFor(Rect{})
	require.NoError(t, err)
	assert.Equal(t, "eDP-1", d.Name)
	assert.Equal(t, 1, failing.calls)

	_, err = LocatorChain{failing}.DisplayFor(Rect{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "randr unavailable")

	_, err = LocatorChain{}.DisplayFor(Rect{})
	assert.Error(t, err)
}

func TestDisplayCache_ReusesListWhileWindowStaysOnIt(t *testing.T) {
	loads := 0
	cache := &DisplayCache{Load: func() ([]Display, error) {
		loads++
		return []Display{
			{ID: 0, Bounds: Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
			{ID: 1, Bounds: Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}},
		}, nil
	}}

	for x := 0; x < 3000; x += 100 {
		d, err := cache.DisplayFor(Rect{X: x, Y: 100, Width: 400, Height: 300})
		require.NoError(t, err)
		assert.Equal(t, x+200 > 1920, d.ID == 1, "x=%d", x)
	}
	assert.Equal(t, 1, loads)
}

func TestDisplayCache_ReloadsWhenWindowLeavesKnownDisplays(t *testing.T) {
	displays := []Display{{ID: 0, Bounds: Rect{X: 0, Y: 0, Width: 1920, Height: 1080}}}
	loads := 0
	cache := &DisplayCache{Load: func() ([]Display, error) {
		loads++
		return displays, nil
	}}

	_, err := cache.DisplayFor(Rect{X: 100, Y: 100, Width: 400, Height: 300})
	require.NoError(t, err)

	displays = append(displays, Display{ID: 1, Bounds: Rect{X: 1920, Y: 0, Width: 2560, Height: 1440}})
	d, err := cache.DisplayFor(Rect{X: 2500, Y: 100, Width: 400, Height: 300})
	require.NoError(t, err)
	assert.Equal(t, 1, d.ID)
	assert.Equal(t, 2, loads)
}

func TestDisplayCache_Invalidate(t *testing.T) {
	loads := 0
	cache := &DisplayCache{Load: func() ([]Display, error) {
		loads++
		return []Display{{Bounds: Rect{Width: 1920, Height: 1080}}}, nil
	}}
	window := Rect{X: 10, Y: 10, Width: 100, Height: 100}

	_, _ = cache.DisplayFor(window)
	cache.Invalidate()
	_, _ = cache.DisplayFor(window)
	assert.Equal(t, 2, loads)
}

func TestDisplayCache_LoadError(t *testing.T) {
	cache := &DisplayCache{Load: func() ([]Display, error) {
		return nil, errors.New("randr unavailable")
	}}
	_, err := cache.DisplayFor(Rect{Width: 10, Height: 10})
	assert.ErrorContains(t, err, "randr unavailable")
}
