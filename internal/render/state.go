// Package render draws the overlay: a clear pass in the configured tint and,
// when background compositing is on, a full-window quad sampling the part of
// the wallpaper that lies behind the window.
package render

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/rs/zerolog"

	"github.com/1broseidon/hideme/internal/fault"
	"github.com/1broseidon/hideme/internal/platform"
)

const (
	placementBinding = 0
	backgroundUnit   = 0
)

var (
	// ErrSurfaceUnavailable means the framebuffer has no area, typically
	// because the window is minimized.
	ErrSurfaceUnavailable = errors.New("surface has no drawable area")
	// ErrOutOfMemory is reported when the driver runs out of memory.
	ErrOutOfMemory = errors.New("out of GPU memory")
)

// Surface is the window-side half of the GL context.
type Surface interface {
	MakeContextCurrent()
	SwapBuffers()
	GetFramebufferSize() (width, height int)
}

// GeometrySource reports where the window is and which monitor it occupies.
type GeometrySource interface {
	// Placement returns the outer position and inner size of the window.
	// When the position cannot be read the returned rect still carries the
	// size and the error explains why.
	Placement() (platform.Rect, error)
	// Monitor returns the bounds of the monitor the window is on.
	Monitor() (platform.Rect, error)
}

// Options configures a State.
type Options struct {
	// Clear is the RGBA clear color.
	Clear [4]float32
	// Background is the encoded background image.
	Background []byte
	// DrawBackground enables the textured quad.
	DrawBackground bool
}

// State owns every GL object used to draw a frame. All methods must be called
// on the thread that owns the GL context.
type State struct {
	surface Surface
	log     zerolog.Logger

	clear          [4]float32
	drawBackground bool

	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32
	ubo     uint32
	texture uint32

	uniforms Uniforms
	size     platform.Size
}

// New makes the surface's context current and builds the pipeline. Every
// error it returns is fatal.
func New(surface Surface, opts Options, log zerolog.Logger) (*State, error) {
	surface.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return nil, fault.Fatal("initialize OpenGL", err)
	}
	log.Info().
		Str("version", gl.GoStr(gl.GetString(gl.VERSION))).
		Str("renderer", gl.GoStr(gl.GetString(gl.RENDERER))).
		Msg("OpenGL context ready")

	img, err := DecodeImage(opts.Background)
	if err != nil {
		return nil, fault.Fatal("load background", err)
	}
	var maxTexture int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxTexture)
	if fitted := fitTexture(img, int(maxTexture)); fitted != img {
		log.Warn().
			Int("width", img.Bounds().Dx()).
			Int("height", img.Bounds().Dy()).
			Int32("max", maxTexture).
			Msg("background larger than max texture size, scaling down")
		img = fitted
	}

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fault.Fatal("build shader program", err)
	}

	s := &State{
		surface:        surface,
		log:            log,
		clear:          opts.Clear,
		drawBackground: opts.DrawBackground,
		program:        program,
	}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &s.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, s.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(quadIndices)*2, gl.Ptr(quadIndices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	gl.GenTextures(1, &s.texture)
	gl.BindTexture(gl.TEXTURE_2D, s.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.GenBuffers(1, &s.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, s.ubo)
	gl.BufferData(gl.UNIFORM_BUFFER, uniformBlockSize, gl.Ptr(s.uniforms.Bytes()), gl.DYNAMIC_DRAW)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, placementBinding, s.ubo)

	gl.UseProgram(program)
	block := gl.GetUniformBlockIndex(program, gl.Str("Placement\x00"))
	if block == gl.INVALID_INDEX {
		return nil, fault.Fatal("build shader program", errors.New("uniform block Placement not found"))
	}
	gl.UniformBlockBinding(program, block, placementBinding)
	gl.Uniform1i(gl.GetUniformLocation(program, gl.Str("background\x00")), backgroundUnit)

	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.DEPTH_TEST)

	w, h := surface.GetFramebufferSize()
	s.Resize(platform.Size{Width: w, Height: h})

	if err := drainErrors(); err != nil {
		return nil, fault.Fatal("create GPU resources", err)
	}
	return s, nil
}

// Render clears the frame, draws the background quad when enabled and
// presents the result. A zero-area framebuffer or a driver error drops the
// frame with a recoverable error; running out of memory is fatal.
func (s *State) Render() error {
	w, h := s.surface.GetFramebufferSize()
	if w <= 0 || h <= 0 {
		return fault.Recoverable("acquire frame", ErrSurfaceUnavailable)
	}

	gl.ClearColor(s.clear[0], s.clear[1], s.clear[2], s.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if s.drawBackground {
		gl.UseProgram(s.program)
		gl.BindBufferBase(gl.UNIFORM_BUFFER, placementBinding, s.ubo)
		gl.ActiveTexture(gl.TEXTURE0 + backgroundUnit)
		gl.BindTexture(gl.TEXTURE_2D, s.texture)
		gl.BindVertexArray(s.vao)
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(quadIndices)), gl.UNSIGNED_SHORT, 0)
		gl.BindVertexArray(0)
	}

	if err := frameError(drainErrors()); err != nil {
		return err
	}

	s.surface.SwapBuffers()
	return nil
}

// Update recomputes the placement uniforms from the window's current
// geometry and uploads them. It does not touch the framebuffer; see Resize.
func (s *State) Update(src GeometrySource) {
	placement, err := src.Placement()
	if err != nil {
		s.log.Warn().Err(err).Msg("window position unavailable, assuming origin")
		placement.X, placement.Y = 0, 0
	}

	monitor, err := src.Monitor()
	if err != nil {
		s.log.Warn().Err(err).Msg("monitor unavailable, keeping previous placement")
		return
	}
	if monitor.Width <= 0 || monitor.Height <= 0 {
		s.log.Warn().Interface("monitor", monitor).Msg("monitor has no area, keeping previous placement")
		return
	}

	s.uniforms = Normalize(placement, monitor)
	s.log.Debug().
		Floats32("top_left", s.uniforms.TopLeft[:]).
		Floats32("bottom_right", s.uniforms.BottomRight[:]).
		Msg("placement updated")

	b := s.uniforms.Bytes()
	gl.BindBuffer(gl.UNIFORM_BUFFER, s.ubo)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, len(b), gl.Ptr(b))
}

// Resize points the viewport at a framebuffer of the given size. Zero sizes
// are ignored; Render skips frames until the size becomes positive again.
func (s *State) Resize(size platform.Size) {
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	if size == s.size {
		return
	}
	s.size = size
	gl.Viewport(0, 0, int32(size.Width), int32(size.Height))
	s.log.Debug().Int("width", size.Width).Int("height", size.Height).Msg("surface reconfigured")
}

// Destroy releases the GL objects.
func (s *State) Destroy() {
	gl.DeleteTextures(1, &s.texture)
	gl.DeleteBuffers(1, &s.ubo)
	gl.DeleteBuffers(1, &s.ebo)
	gl.DeleteBuffers(1, &s.vbo)
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteProgram(s.program)
}

// drainErrors collects every pending GL error. Out-of-memory is reported as
// ErrOutOfMemory so callers can escalate it.
func drainErrors() error {
	var errs []error
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		errs = append(errs, glError(code))
		if len(errs) > 16 {
			break
		}
	}
	return errors.Join(errs...)
}

// frameError classifies the GL errors raised while drawing a frame: running
// out of memory is fatal, anything else drops the frame.
func frameError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrOutOfMemory):
		return fault.Fatal("render", err)
	default:
		return fault.Recoverable("render", err)
	}
}

func glError(code uint32) error {
	switch code {
	case gl.OUT_OF_MEMORY:
		return ErrOutOfMemory
	case gl.INVALID_ENUM:
		return errors.New("GL_INVALID_ENUM")
	case gl.INVALID_VALUE:
		return errors.New("GL_INVALID_VALUE")
	case gl.INVALID_OPERATION:
		return errors.New("GL_INVALID_OPERATION")
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return errors.New("GL_INVALID_FRAMEBUFFER_OPERATION")
	default:
		return fmt.Errorf("GL error 0x%x", code)
	}
}
