// Package opengl implements render.Device on an OpenGL 3.3 core context.
package opengl

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/golines/pkg/lines"
	"github.com/philipparndt/golines/pkg/render"
)

// Device owns the program and buffers of the line renderer. All methods must
// run on the thread that owns the GL context.
type Device struct {
	program     uint32
	mvpUniform  int32
	vao         uint32
	quadVbo     uint32
	ebo         uint32
	instanceVbo uint32
	instanceCap int // bytes
}

var _ render.Device = (*Device)(nil)

// NewDevice loads the GL entry points of the current context and builds the
// line program. The window layer must have made a context current.
func NewDevice() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	render.Logger().Info("opengl ready",
		slog.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		slog.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	program, err := buildProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}
	d := &Device{
		program:    program,
		mvpUniform: gl.GetUniformLocation(program, gl.Str("mvp\x00")),
	}
	gl.GenVertexArrays(1, &d.vao)
	gl.GenBuffers(1, &d.quadVbo)
	gl.GenBuffers(1, &d.ebo)
	gl.GenBuffers(1, &d.instanceVbo)
	return d, nil
}

// UploadGeometry stores the quad template at attribute location 0
func (d *Device) UploadGeometry(vertices []float32, indices []uint16) error {
	if len(vertices) == 0 || len(indices) == 0 {
		return errors.New("empty quad template")
	}
	gl.BindVertexArray(d.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, d.quadVbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, d.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return glError("upload quad")
}

// AllocInstances sizes the per-instance buffer and binds the instance
// attributes at locations 1 and up
func (d *Device) AllocInstances(size int) error {
	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.instanceVbo)
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	d.instanceCap = size

	for i, attr := range lines.Attributes {
		loc := uint32(i + 1)
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointer(loc, attr.Size, gl.FLOAT, false, lines.StrideBytes, gl.PtrOffset(attr.Offset*4))
		gl.VertexAttribDivisor(loc, 1)
	}
	gl.BindVertexArray(0)

	render.Logger().Debug("instance buffer allocated", slog.Int("bytes", size))
	return glError("allocate instances")
}

// UpdateInstances overwrites the instance buffer from the start
func (d *Device) UpdateInstances(data []float32) {
	if len(data) == 0 {
		return
	}
	size := len(data) * 4
	if size > d.instanceCap {
		// the renderer checks capacity before uploading
		panic(fmt.Sprintf("instance upload of %d bytes exceeds buffer of %d", size, d.instanceCap))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, d.instanceVbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(data))
}

// Viewport sets the GL viewport
func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears the color buffer
func (d *Device) Clear(r, g, b float32) {
	gl.ClearColor(r, g, b, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Draw renders instanceCount quads with alpha blending. The blend state is
// set per call; raylib resets it at the end of each frame.
func (d *Device) Draw(vp mgl32.Mat4, indexCount, instanceCount int) {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.UseProgram(d.program)
	gl.UniformMatrix4fv(d.mvpUniform, 1, false, &vp[0])
	gl.BindVertexArray(d.vao)
	gl.DrawElementsInstanced(gl.TRIANGLES, int32(indexCount), gl.UNSIGNED_SHORT, gl.PtrOffset(0), int32(instanceCount))
	gl.BindVertexArray(0)
}

// Release deletes all GL objects
func (d *Device) Release() {
	if d.instanceVbo != 0 {
		gl.DeleteBuffers(1, &d.instanceVbo)
	}
	if d.ebo != 0 {
		gl.DeleteBuffers(1, &d.ebo)
	}
	if d.quadVbo != 0 {
		gl.DeleteBuffers(1, &d.quadVbo)
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
	}
	if d.program != 0 {
		gl.DeleteProgram(d.program)
	}
	*d = Device{}
}

func buildProgram(vertexSource, fragmentSource string) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("failed to compile vertex shader: %w", err)
	}
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, fmt.Errorf("failed to compile fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link line program: %s", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
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
		return 0, errors.New(strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func glError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: gl error 0x%x", op, code)
	}
	return nil
}
