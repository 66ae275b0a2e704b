package app

//OpenGL Windowing Calls and Structs
import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	P "pointfill.com/pointfill/particles"
	SH "pointfill.com/pointfill/shaders"
	U "pointfill.com/pointfill/utils"
)

//Attribute locations fixed by the core point sprite shader
const (
	attribPosition = 0
	attribAlpha    = 1
)

type AppWindow struct {
	Width  int
	Height int
	Name   string
}

//RenderContext GL handles for the particle program. Only touch from the thread that made the context current.
//VBO holds the position buffer then the alpha buffer
type RenderContext struct {
	PrgID      uint32
	VAO        uint32
	VBO        [2]uint32
	Count      int32
	ModelView  mgl32.Mat4
	Proj       mgl32.Mat4
	mvLoc      int32
	projLoc    int32
	timeLoc    int32
	colorLoc   int32
	GLFWindow  *glfw.Window
	ClearColor [4]float32
}

// InitGLFW initializes glfw and returns a Window with a 4.1 core context current.
func InitGLFW(a *AppWindow) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(a.Width, a.Height, a.Name, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	return window, nil
}

// InitOpenGL compiles the point sprite program and uploads the particle field.
func InitOpenGL(asset SH.Asset, field *P.Field) (*RenderContext, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	slog.Info("OpenGL initialized", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	if err := asset.Validate(); err != nil {
		return nil, err
	}

	vtxSHO, err := compileShader(asset.VertexShader, gl.VERTEX_SHADER)
	if checkError(err) {
		return nil, err
	}
	frgSHO, err := compileShader(asset.FragmentShader, gl.FRAGMENT_SHADER)
	if checkError(err) {
		return nil, err
	}

	prog, err := linkProgram(vtxSHO, frgSHO)
	if checkError(err) {
		return nil, err
	}

	ctx := &RenderContext{
		PrgID:     prog,
		ModelView: mgl32.Ident4(),
		Proj:      mgl32.Ident4(),
	}
	ctx.mvLoc = gl.GetUniformLocation(prog, gl.Str("modelView\x00"))
	ctx.projLoc = gl.GetUniformLocation(prog, gl.Str("projection\x00"))
	ctx.timeLoc = gl.GetUniformLocation(prog, gl.Str("u_time\x00"))
	//color is declared by the fragment stage but unread, so the driver may strip it (location -1)
	ctx.colorLoc = gl.GetUniformLocation(prog, gl.Str("color\x00"))

	if err := MakeVAO(field, ctx); err != nil {
		ctx.Release()
		return nil, err
	}

	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return ctx, nil
}

//MakeVAO creates the position and alpha buffers and fills them through mapped memory
func MakeVAO(field *P.Field, ctx *RenderContext) error {
	ctx.Count = int32(field.Count())

	gl.GenVertexArrays(1, &ctx.VAO)
	gl.BindVertexArray(ctx.VAO)
	gl.GenBuffers(2, &ctx.VBO[0])

	//Positions 3 floats (12 bytes) per particle
	gl.BindBuffer(gl.ARRAY_BUFFER, ctx.VBO[0])
	gl.BufferData(gl.ARRAY_BUFFER, field.Count()*4*3, nil, gl.STATIC_DRAW)
	if field.Count() > 0 {
		ptr := gl.MapBufferRange(gl.ARRAY_BUFFER, 0, field.Count()*4*3, gl.MAP_WRITE_BIT|gl.MAP_INVALIDATE_BUFFER_BIT)
		err := U.TransferPositionData(ptr, field.Positions, field.Count())
		gl.UnmapBuffer(gl.ARRAY_BUFFER)
		if err != nil {
			return fmt.Errorf("upload positions: %w", err)
		}
	}
	gl.EnableVertexAttribArray(attribPosition)
	gl.VertexAttribPointer(attribPosition, 3, gl.FLOAT, false, 0, nil)

	//Alpha 1 float per particle
	gl.BindBuffer(gl.ARRAY_BUFFER, ctx.VBO[1])
	gl.BufferData(gl.ARRAY_BUFFER, field.Count()*4, nil, gl.STATIC_DRAW)
	if field.Count() > 0 {
		ptr := gl.MapBufferRange(gl.ARRAY_BUFFER, 0, field.Count()*4, gl.MAP_WRITE_BIT|gl.MAP_INVALIDATE_BUFFER_BIT)
		err := U.TransferScalarData(ptr, field.Alpha, field.Count())
		gl.UnmapBuffer(gl.ARRAY_BUFFER)
		if err != nil {
			return fmt.Errorf("upload alpha: %w", err)
		}
	}
	gl.EnableVertexAttribArray(attribAlpha)
	gl.VertexAttribPointer(attribAlpha, 1, gl.FLOAT, false, 0, nil)

	gl.BindVertexArray(0)
	return nil
}

//Draw one frame. uTime drives the fragment stage's red channel
func Draw(ctx *RenderContext, uTime float32) {
	w, h := ctx.GLFWindow.GetFramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))
	c := ctx.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(ctx.PrgID)
	gl.UniformMatrix4fv(ctx.mvLoc, 1, false, &ctx.ModelView[0])
	gl.UniformMatrix4fv(ctx.projLoc, 1, false, &ctx.Proj[0])
	gl.Uniform1f(ctx.timeLoc, uTime)
	if ctx.colorLoc >= 0 {
		gl.Uniform3f(ctx.colorLoc, 1, 1, 1)
	}

	gl.BindVertexArray(ctx.VAO)
	gl.DrawArrays(gl.POINTS, 0, ctx.Count)
	gl.BindVertexArray(0)

	ctx.GLFWindow.SwapBuffers()
	glfw.PollEvents()
}

//Release deletes the GL objects owned by ctx
func (ctx *RenderContext) Release() {
	gl.DeleteBuffers(2, &ctx.VBO[0])
	gl.DeleteVertexArrays(1, &ctx.VAO)
	gl.DeleteProgram(ctx.PrgID)
}

func checkError(err error) bool {
	if err != nil {
		slog.Error("gl setup failed", "err", err)
		return true
	}
	return false
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("GLSL shader failed to compile: %v", log)
	}
	return shader, nil
}

func linkProgram(shaders ...uint32) (uint32, error) {
	prog := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(prog, s)
	}
	gl.LinkProgram(prog)
	for _, s := range shaders {
		gl.DeleteShader(s)
	}

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("GLSL program failed to link: %v", log)
	}
	return prog, nil
}
