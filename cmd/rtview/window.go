// Command rtview is the interactive preview window: it repaints a
// pixelsink.Buffer as a GL texture between Engine.Render calls, acting as
// the "host" spec §5's cooperative driver hands control back to after each
// time slice. It never touches core rendering state — only the Engine's
// FrameSink contract. Window bring-up follows mrigankad-gorenderengine's
// core/window.go GLFW lifecycle (Init/WindowHint/CreateWindow/PollEvents
// loop, runtime.LockOSThread), and the fullscreen-quad texture blit program
// follows that same teacher's internal/opengl/renderer.go shader
// compile/link helpers — generalized here from its lit 3-D mesh pipeline
// down to a single unlit textured quad, since rtview has nothing to
// rasterize but a finished 2-D frame.
package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

const vertexShaderSrc = `#version 410
in vec2 position;
in vec2 texCoord;
out vec2 fragTexCoord;
void main() {
	fragTexCoord = texCoord;
	gl_Position = vec4(position, 0.0, 1.0);
}
` + "\x00"

const fragmentShaderSrc = `#version 410
in vec2 fragTexCoord;
out vec4 outColor;
uniform sampler2D frame;
void main() {
	outColor = texture(frame, fragTexCoord);
}
` + "\x00"

// quadProgram is a single textured fullscreen quad: two triangles covering
// clip space, sampling whatever has most recently been uploaded to tex.
type quadProgram struct {
	program uint32
	vao     uint32
	tex     uint32
}

func newQuadProgram() (*quadProgram, error) {
	prog, err := newProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, err
	}

	// (x, y, u, v) per vertex; v flipped since Buffer's origin is top-left
	// but GL texture coordinates start at the bottom-left.
	vertices := []float32{
		-1, -1, 0, 1,
		1, -1, 1, 1,
		1, 1, 1, 0,
		-1, -1, 0, 1,
		1, 1, 1, 0,
		-1, 1, 0, 0,
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	posAttrib := uint32(gl.GetAttribLocation(prog, gl.Str("position\x00")))
	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointerWithOffset(posAttrib, 2, gl.FLOAT, false, 4*4, 0)

	uvAttrib := uint32(gl.GetAttribLocation(prog, gl.Str("texCoord\x00")))
	gl.EnableVertexAttribArray(uvAttrib)
	gl.VertexAttribPointerWithOffset(uvAttrib, 2, gl.FLOAT, false, 4*4, 2*4)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return &quadProgram{program: prog, vao: vao, tex: tex}, nil
}

// upload re-submits the full RGB buffer as the quad's texture. Called once
// per repaint; a window this size never needs partial texture updates.
func (q *quadProgram) upload(width, height int, rgb []byte) {
	gl.BindTexture(gl.TEXTURE_2D, q.tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, int32(width), int32(height), 0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(rgb))
}

func (q *quadProgram) draw() {
	gl.UseProgram(q.program)
	gl.BindVertexArray(q.vao)
	gl.BindTexture(gl.TEXTURE_2D, q.tex)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		logStr := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(logStr))
		return 0, fmt.Errorf("link failed: %v", logStr)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		logStr := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(logStr))
		return 0, fmt.Errorf("compile failed: %v", logStr)
	}
	return shader, nil
}

func newWindow(width, height int, title string) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("rtview: init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("rtview: create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("rtview: init gl: %w", err)
	}
	return win, nil
}
