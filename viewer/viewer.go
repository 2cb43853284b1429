// Package viewer displays render actors in an interactive GLFW/OpenGL window
// with trackball-camera navigation.
package viewer

import (
	"math"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/motionvis/depthviz/logging"
	"github.com/motionvis/depthviz/render"
)

const (
	defaultTitle  = "Point Cloud Viewer"
	defaultWidth  = 800
	defaultHeight = 600
)

// Viewer owns one interactive display session: a window, a scene of actors,
// and a trackball camera. It is single-threaded; Run blocks until the user
// closes the window, and nothing is shared across sessions.
type Viewer struct {
	title      string
	width      int
	height     int
	background [3]float32
	actors     []*render.Actor
	logger     logging.Logger

	cam trackballCamera

	lastX, lastY float64
	orbiting     bool
	panning      bool
	dollying     bool
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithTitle overrides the default window title.
func WithTitle(title string) Option {
	return func(v *Viewer) { v.title = title }
}

// WithSize overrides the default 800x600 window size.
func WithSize(width, height int) Option {
	return func(v *Viewer) { v.width, v.height = width, height }
}

// WithBackground overrides the default black background; components in [0,1].
func WithBackground(r, g, b float32) Option {
	return func(v *Viewer) { v.background = [3]float32{r, g, b} }
}

// WithLogger overrides the default logger.
func WithLogger(logger logging.Logger) Option {
	return func(v *Viewer) { v.logger = logger }
}

// New returns a viewer with an empty scene.
func New(opts ...Option) (*Viewer, error) {
	v := &Viewer{
		title:  defaultTitle,
		width:  defaultWidth,
		height: defaultHeight,
		logger: logging.NewLogger("viewer"),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.width <= 0 || v.height <= 0 {
		return nil, errors.Errorf("invalid window size (%d, %d)", v.width, v.height)
	}
	return v, nil
}

// Title returns the window title.
func (v *Viewer) Title() string {
	return v.title
}

// Size returns the window dimensions.
func (v *Viewer) Size() (int, int) {
	return v.width, v.height
}

// Background returns the clear color.
func (v *Viewer) Background() [3]float32 {
	return v.background
}

// AddActor places an actor into the scene.
func (v *Viewer) AddActor(actor *render.Actor) {
	v.actors = append(v.actors, actor)
}

// ActorCount returns the number of actors in the scene.
func (v *Viewer) ActorCount() int {
	return len(v.actors)
}

// Run opens the window and enters the interactive event loop. It blocks until
// the user closes the window (close button or Esc); there is no other exit
// path. GL requires the loop to stay on one OS thread.
func (v *Viewer) Run() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize GLFW")
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	win, err := glfw.CreateWindow(v.width, v.height, v.title, nil, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create GLFW window")
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize OpenGL")
	}

	v.fitCameraToScene()
	v.installCallbacks(win)
	v.logger.Debugw("entering interactive loop", "actors", len(v.actors))

	for !win.ShouldClose() {
		w, h := win.GetFramebufferSize()
		v.drawFrame(w, h)
		win.SwapBuffers()
		glfw.PollEvents()
	}
	v.logger.Debug("window closed")
	return nil
}

// fitCameraToScene aims the camera at the bounding box of all actor geometry.
func (v *Viewer) fitCameraToScene() {
	minPt := r3.Vector{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	maxPt := r3.Vector{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	n := 0
	for _, actor := range v.actors {
		for _, p := range actor.Geometry.Points {
			minPt = r3.Vector{X: math.Min(minPt.X, p.X), Y: math.Min(minPt.Y, p.Y), Z: math.Min(minPt.Z, p.Z)}
			maxPt = r3.Vector{X: math.Max(maxPt.X, p.X), Y: math.Max(maxPt.Y, p.Y), Z: math.Max(maxPt.Z, p.Z)}
			n++
		}
	}
	if n == 0 {
		v.cam = trackballCamera{distance: 3}
		return
	}
	center := minPt.Add(maxPt).Mul(0.5)
	radius := maxPt.Sub(minPt).Norm() / 2
	if radius < 1 {
		radius = 1
	}
	v.cam = trackballCamera{target: center, distance: 2.5 * radius}
}

func (v *Viewer) installCallbacks(win *glfw.Window) {
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	win.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		pressed := action == glfw.Press
		switch button {
		case glfw.MouseButtonLeft:
			v.orbiting = pressed
		case glfw.MouseButtonMiddle:
			v.panning = pressed
		case glfw.MouseButtonRight:
			v.dollying = pressed
		}
		if pressed {
			v.lastX, v.lastY = w.GetCursorPos()
		}
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		dx, dy := x-v.lastX, y-v.lastY
		v.lastX, v.lastY = x, y
		switch {
		case v.orbiting:
			v.cam.rotate(dx*0.01, dy*0.01)
		case v.panning:
			v.cam.pan(dx/float64(v.height), dy/float64(v.height))
		case v.dollying:
			v.cam.zoom(math.Pow(1.01, dy))
		}
	})
	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		v.cam.zoom(math.Pow(0.9, yoff))
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if width > 0 && height > 0 {
			v.width, v.height = width, height
		}
	})
}

func (v *Viewer) drawFrame(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(v.background[0], v.background[1], v.background[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)

	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	proj := mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.01, 1000)
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&proj[0])

	view := v.cam.viewMatrix()
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixf(&view[0])

	for _, actor := range v.actors {
		drawActor(actor)
	}
}

func drawActor(actor *render.Actor) {
	geom := actor.Geometry
	style := actor.Style

	if style.Lighting {
		gl.Enable(gl.LIGHTING)
	} else {
		gl.Disable(gl.LIGHTING)
	}
	lineWidth := style.LineWidth
	if lineWidth <= 0 {
		lineWidth = 1
	}
	gl.LineWidth(lineWidth)
	pointSize := style.PointSize
	if pointSize <= 0 {
		pointSize = 1
	}
	gl.PointSize(pointSize)

	if geom.Colors == nil {
		gl.Color3f(1, 1, 1)
	}
	emit := func(i int) {
		if geom.Colors != nil {
			gl.Color3ub(geom.Colors[3*i], geom.Colors[3*i+1], geom.Colors[3*i+2])
		}
		p := geom.Points[i]
		gl.Vertex3d(p.X, p.Y, p.Z)
	}

	if len(geom.Verts) > 0 {
		gl.Begin(gl.POINTS)
		for _, cell := range geom.Verts {
			for _, i := range cell {
				emit(i)
			}
		}
		gl.End()
	}
	for _, cell := range geom.Lines {
		gl.Begin(gl.LINE_STRIP)
		for _, i := range cell {
			emit(i)
		}
		gl.End()
	}
	for _, cell := range geom.Polys {
		gl.Begin(gl.POLYGON)
		for _, i := range cell {
			emit(i)
		}
		gl.End()
	}
}
