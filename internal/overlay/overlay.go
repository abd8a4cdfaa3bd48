// Package overlay opens the borderless always-on-top window and runs the
// event loop that ties input, geometry and rendering together.
package overlay

import (
	"context"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"github.com/1broseidon/hideme/internal/config"
	"github.com/1broseidon/hideme/internal/fault"
	"github.com/1broseidon/hideme/internal/interaction"
	"github.com/1broseidon/hideme/internal/platform"
	"github.com/1broseidon/hideme/internal/render"
)

func init() {
	// glfw and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

// idleWait is how long the loop sleeps in WaitEventsTimeout after a frame
// that was not presented.
const idleWait = 0.1

// Options configures the overlay window.
type Options struct {
	Title               string
	Width               int
	Height              int
	EdgePadding         int
	Clear               config.Color
	Background          []byte
	DrawBackground      bool
	ReconfigureOnResize bool
}

// Run opens the window and blocks until the user closes it or ctx is
// cancelled. The returned error, when non-nil, is fatal.
func Run(ctx context.Context, opts Options, log zerolog.Logger) error {
	if err := glfw.Init(); err != nil {
		return fault.Fatal("initialize windowing", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.False)
	glfw.WindowHint(glfw.TransparentFramebuffer, glfw.True)
	glfw.WindowHint(glfw.Floating, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	size := clampSize(platform.Size{Width: opts.Width, Height: opts.Height})
	win, err := glfw.CreateWindow(size.Width, size.Height, opts.Title, nil, nil)
	if err != nil {
		return fault.Fatal("create window", err)
	}
	defer win.Destroy()

	adapter := &window{win: win, log: log}
	locators := platform.LocatorChain{}
	native, err := platform.OpenNative()
	if err != nil {
		log.Debug().Err(err).Msg("native window-system integration unavailable")
	} else {
		defer native.Close()
		locators = append(locators, native)
		adapter.pointer = native
	}
	adapter.locator = append(locators, glfwMonitors{})

	r, err := render.New(win, render.Options{
		Clear:          clearColor(opts.Clear),
		Background:     opts.Background,
		DrawBackground: opts.DrawBackground,
	}, log)
	if err != nil {
		return err
	}
	defer r.Destroy()
	glfw.SwapInterval(1)

	machine := interaction.NewMachine(adapter, opts.EdgePadding, log)
	done := false
	dispatch := func(ev interaction.Event) {
		switch machine.Handle(ev) {
		case interaction.OutcomeGeometryChanged:
			r.Update(adapter)
		case interaction.OutcomeTerminate:
			done = true
		}
	}

	tracker := &pointerTracker{}
	win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, a glfw.Action, _ glfw.ModifierKey) {
		if ev, ok := buttonEvent(b, a); ok {
			dispatch(ev)
		}
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		for _, ev := range tracker.observe(adapter.screenPointer(x, y), x, y) {
			dispatch(ev)
		}
	})
	win.SetKeyCallback(func(_ *glfw.Window, k glfw.Key, _ int, a glfw.Action, _ glfw.ModifierKey) {
		dispatch(keyEvent(k, a))
	})
	win.SetCloseCallback(func(*glfw.Window) {
		dispatch(interaction.CloseRequested{})
	})
	win.SetPosCallback(func(*glfw.Window, int, int) {
		r.Update(adapter)
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if opts.ReconfigureOnResize {
			r.Resize(platform.Size{Width: width, Height: height})
		}
		r.Update(adapter)
	})

	r.Update(adapter)
	log.Info().
		Str("title", opts.Title).
		Int("width", size.Width).
		Int("height", size.Height).
		Bool("background", opts.DrawBackground).
		Msg("overlay started")

	keptAbove := native == nil
	for !done && !win.ShouldClose() {
		glfw.PollEvents()
		if done {
			break
		}
		if ctx.Err() != nil {
			log.Debug().Err(context.Cause(ctx)).Msg("terminating")
			break
		}

		err := r.Render()
		switch classifyFrame(err) {
		case frameFatal:
			return err
		case frameSkipped:
			log.Debug().Err(err).Msg("frame skipped")
			glfw.WaitEventsTimeout(idleWait)
			continue
		case frameDropped:
			// Nothing was swapped, so vsync did not pace this iteration.
			log.Warn().Err(err).Msg("frame dropped")
			glfw.WaitEventsTimeout(idleWait)
			continue
		}

		// The window manager only knows the window once it has been mapped
		// and drawn, so the stacking request waits for the first frame.
		if !keptAbove {
			keptAbove = true
			if err := native.KeepAbove(opts.Title); err != nil {
				log.Debug().Err(err).Msg("couldn't set keep-above state")
			}
		}
	}

	log.Info().Msg("overlay closed")
	return nil
}

func clearColor(c config.Color) [4]float32 {
	r, g, b, a := c.Float32()
	return [4]float32{r, g, b, a}
}
