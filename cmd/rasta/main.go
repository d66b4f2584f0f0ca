// rasta - terminal 3D triangle rasterizer viewer.
//
// Controls:
//
//	Mouse drag  - Rotate model (yaw/pitch)
//	Scroll      - Zoom in/out
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	Q/E         - Roll left/right
//	Space       - Apply random impulse
//	R           - Reset rotation
//	T           - Toggle texture on/off
//	X           - Toggle wireframe mode
//	N           - Toggle flat-normal core-rasterizer debug view
//	?           - Toggle HUD overlay
//	+/-         - Adjust zoom
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/rastalab/rasta/pkg/camera"
	"github.com/rastalab/rasta/pkg/math3d"
	"github.com/rastalab/rasta/pkg/models"
	"github.com/rastalab/rasta/pkg/overlay"
	"github.com/rastalab/rasta/pkg/render"
)

var (
	targetFPS = flag.Int("fps", 60, "Target FPS")
	bgColor   = flag.String("bg", "30,30,40", "Background color (R,G,B)")
	wireStart = flag.Bool("wire", false, "Start in wireframe mode")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "rasta - terminal 3D triangle rasterizer viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: rasta [options] <model.obj|model.glb>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rotationAxis applies an input-driven angular velocity to a position,
// decaying the velocity toward 0 with a critically-damped spring each
// tick rather than a fixed multiplier, so key-release events lost to
// terminal input quirks still taper off smoothly.
type rotationAxis struct {
	position float64
	idle     camera.IdleSpring
}

func newRotationAxis(fps int) rotationAxis {
	return rotationAxis{idle: camera.NewIdleSpring(fps)}
}

func (a *rotationAxis) impulse(strength float64) {
	a.idle.Impulse(strength)
}

func (a *rotationAxis) update(dt float64) {
	a.position += a.idle.Idle(dt)
}

// renderMode selects which pkg/render caller helper draws the mesh.
type renderMode int

const (
	modeTextured renderMode = iota
	modeFlat
	modeWireframe
	modeNormals
)

func run(modelPath string) error {
	var bgR, bgG, bgB uint8 = 30, 30, 40
	fmt.Sscanf(*bgColor, "%d,%d,%d", &bgR, &bgG, &bgB)
	bg := render.RGB(float32(bgR)/255, float32(bgG)/255, float32(bgB)/255)

	term := uv.DefaultTerminal()
	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)

	fmt.Fprint(os.Stdout, "\x1b[?1003h\x1b[?1006h") // any-event mouse, SGR extended mode

	target := render.NewRenderTarget(cols, rows*2)
	rasterizer := render.NewRasterizer(target)

	cam := camera.NewCamera()
	cam.SetAspectRatio(float64(cols) / float64(rows*2))
	cam.SetFOV(math.Pi / 3)
	cam.SetClipPlanes(0.1, 100)
	cameraZ := 5.0
	cam.SetPosition(math3d.V3(0, 0, cameraZ))

	mesh, tex, err := loadModel(modelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	centerAndScaleMesh(mesh)

	mode := modeTextured
	if *wireStart {
		mode = modeWireframe
	}
	hud := overlay.NewHUD(filepath.Base(modelPath), mesh.TriangleCount())
	showHUD := true

	pitch := newRotationAxis(*targetFPS)
	yaw := newRotationAxis(*targetFPS)
	roll := newRotationAxis(*targetFPS)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	var inputPitch, inputYaw, inputRoll float64
	const torque = 3.0
	var mouseDown bool
	var lastMouseX, lastMouseY int

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				cols, rows = ev.Width, ev.Height
				term.Erase()
				term.Resize(cols, rows)
				target = render.NewRenderTarget(cols, rows*2)
				rasterizer = render.NewRasterizer(target)
				cam.SetAspectRatio(float64(cols) / float64(rows*2))

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("q"):
					inputRoll = -torque
				case ev.MatchString("e"):
					inputRoll = torque
				case ev.MatchString("w", "up"):
					inputPitch = -torque
				case ev.MatchString("s", "down"):
					inputPitch = torque
				case ev.MatchString("a", "left"):
					inputYaw = -torque
				case ev.MatchString("d", "right"):
					inputYaw = torque
				case ev.MatchString("r"):
					pitch = newRotationAxis(*targetFPS)
					yaw = newRotationAxis(*targetFPS)
					roll = newRotationAxis(*targetFPS)
					cameraZ = 5.0
					cam.SetPosition(math3d.V3(0, 0, cameraZ))
				case ev.MatchString("space"):
					pitch.impulse((rand.Float64() - 0.5) * 4)
					yaw.impulse((rand.Float64() - 0.5) * 4)
					roll.impulse((rand.Float64() - 0.5) * 4)
				case ev.MatchString("+", "="):
					cameraZ = math.Max(1, cameraZ-0.5)
					cam.SetPosition(math3d.V3(0, 0, cameraZ))
				case ev.MatchString("-", "_"):
					cameraZ = math.Min(20, cameraZ+0.5)
					cam.SetPosition(math3d.V3(0, 0, cameraZ))
				case ev.MatchString("t"):
					if mode == modeTextured {
						mode = modeFlat
					} else if mode == modeFlat {
						mode = modeTextured
					}
				case ev.MatchString("x"):
					if mode == modeWireframe {
						mode = modeTextured
					} else {
						mode = modeWireframe
					}
				case ev.MatchString("n"):
					if mode == modeNormals {
						mode = modeTextured
					} else {
						mode = modeNormals
					}
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					showHUD = !showHUD
				}

			case uv.KeyReleaseEvent:
				switch {
				case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
					inputPitch = 0
				case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
					inputYaw = 0
				case ev.MatchString("q"), ev.MatchString("e"):
					inputRoll = 0
				}

			case uv.MouseClickEvent:
				mouseDown = true
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					yaw.impulse(float64(dx) * 2)
					pitch.impulse(float64(dy) * 2)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					cameraZ = math.Max(1, cameraZ-0.5)
				case uv.MouseWheelDown:
					cameraZ = math.Min(20, cameraZ+0.5)
				}
				cam.SetPosition(math3d.V3(0, 0, cameraZ))
			}
		}
	}()

	targetDuration := time.Second / time.Duration(*targetFPS)
	lastFrame := time.Now()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now
		if dt > 0.1 {
			dt = 0.1
		}
		if dt <= 0 {
			dt = 1.0 / float64(*targetFPS)
		}

		pitch.impulse(inputPitch * dt)
		yaw.impulse(inputYaw * dt)
		roll.impulse(inputRoll * dt)
		pitch.update(dt)
		yaw.update(dt)
		roll.update(dt)

		objectRotation := math3d.RotateX(pitch.position).
			Mul(math3d.RotateY(yaw.position)).
			Mul(math3d.RotateZ(roll.position))
		modelView := cam.ViewMatrix().Mul(objectRotation)

		rasterizer.SetViewport(0, 0, target.Width(), target.Height())
		rasterizer.SetModelView(modelView)
		rasterizer.SetProjection(cam.ProjectionMatrix())
		rasterizer.Clear(bg)

		mvp := cam.ProjectionMatrix().Mul(modelView)
		positions := mesh.Positions()
		indices := mesh.Indices()
		normals := mesh.Normals()

		switch mode {
		case modeNormals:
			// Drawn through the fixed-point core itself rather than a
			// caller helper: flat-normal shading is what DrawTriangle
			// always produces, with no lighting or texture input.
			rasterizer.DrawTriangles(positions, indices)
		case modeWireframe:
			render.DrawMeshWireframe(target, mvp, 0, 0, target.Width(), target.Height(), positions, indices, render.RGB(0, 1, 0.5))
		case modeFlat:
			render.DrawMeshGouraud(target, mvp, 0, 0, target.Width(), target.Height(), positions, normals, indices, render.RGB(0.8, 0.8, 0.8), math3d.V3(0.5, 1, 0.3))
		default:
			if tex != nil {
				render.DrawMeshTexturedGouraud(target, mvp, 0, 0, target.Width(), target.Height(), positions, normals, mesh.UVs(), indices, tex, math3d.V3(0.5, 1, 0.3))
			} else {
				render.DrawMeshGouraud(target, mvp, 0, 0, target.Width(), target.Height(), positions, normals, indices, render.RGB(0.8, 0.8, 0.8), math3d.V3(0.5, 1, 0.3))
			}
		}

		hud.Tick()
		if showHUD {
			hud.Render(target.Color, 0, 0, mode == modeWireframe)
		}

		blitSurface(term, target.Color, cols, rows)
		if err := term.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// loadModel dispatches on file extension and, for glTF, pulls out an
// embedded texture if one is present.
func loadModel(path string) (*models.Mesh, *render.Texture, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".glb", ".gltf":
		mesh, img, err := models.LoadGLBWithTexture(path)
		if err != nil {
			return nil, nil, err
		}
		var tex *render.Texture
		if img != nil {
			tex = render.TextureFromImage(img)
		} else {
			tex = render.NewCheckerTexture(64, 64, 8, render.RGB(0.8, 0.8, 0.8), render.RGB(0.4, 0.4, 0.4))
		}
		return mesh, tex, nil
	case ".obj":
		mesh, err := models.LoadOBJ(path)
		if err != nil {
			return nil, nil, err
		}
		return mesh, render.NewCheckerTexture(64, 64, 8, render.RGB(0.8, 0.8, 0.8), render.RGB(0.4, 0.4, 0.4)), nil
	default:
		return nil, nil, fmt.Errorf("unsupported format: %s (use .obj or .glb)", ext)
	}
}

func centerAndScaleMesh(mesh *models.Mesh) {
	mesh.CalculateBounds()
	center := mesh.Center()
	size := mesh.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim > 0 {
		scale := 2.0 / maxDim
		transform := math3d.Scale(math3d.V3(scale, scale, scale)).Mul(math3d.Translate(center.Negate()))
		mesh.Transform(transform)
	}
}
