package present

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// vertex shader: a full-screen quad, no transform.
const blitVertSrc = `
#version 410 core
layout(location = 0) in vec2 inPosition;
layout(location = 1) in vec2 inUV;

out vec2 fragUV;

void main() {
    gl_Position = vec4(inPosition, 0.0, 1.0);
    fragUV = inUV;
}
` + "\x00"

// fragment shader: sample the uploaded buffer, no lighting.
const blitFragSrc = `
#version 410 core
in vec2 fragUV;
out vec4 outColor;

uniform sampler2D screenTex;

void main() {
    outColor = texture(screenTex, fragUV);
}
` + "\x00"

// quadVertices is a full-screen triangle strip: position (x,y), uv (u,v).
// UV.y is flipped relative to position.y since the color buffer's row 0
// is the top of the image but a GL texture's row 0 is conventionally its
// bottom.
var quadVertices = []float32{
	-1, -1, 0, 1,
	1, -1, 1, 1,
	-1, 1, 0, 0,
	1, 1, 1, 0,
}

// blitQuad is the GPU-side state for the presentation-only full-screen
// textured quad: a compiled passthrough program, a VAO/VBO pair, and the
// destination texture that glTexSubImage2D refreshes every tick.
type blitQuad struct {
	program    uint32
	vao        uint32
	vbo        uint32
	texture    uint32
	texLoc     int32
	width      int
	height     int
}

func newBlitQuad(width, height int) (*blitQuad, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}

	prog, err := newProgram(blitVertSrc, blitFragSrc)
	if err != nil {
		return nil, fmt.Errorf("shader compile: %w", err)
	}

	q := &blitQuad{program: prog, width: width, height: height}

	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	const stride = 4 * 4
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(2*4))

	gl.GenTextures(1, &q.texture)
	gl.BindTexture(gl.TEXTURE_2D, q.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	q.texLoc = gl.GetUniformLocation(prog, gl.Str("screenTex\x00"))

	gl.BindVertexArray(0)
	return q, nil
}

// draw uploads pixels (packed R,G,B,A, row-major, top-to-bottom) into the
// quad's texture via glTexSubImage2D and renders it.
func (q *blitQuad) draw(pixels []byte) {
	gl.Viewport(0, 0, int32(q.width), int32(q.height))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(q.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, q.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(q.width), int32(q.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.Uniform1i(q.texLoc, 0)

	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

func (q *blitQuad) destroy() {
	gl.DeleteTextures(1, &q.texture)
	gl.DeleteBuffers(1, &q.vbo)
	gl.DeleteVertexArrays(1, &q.vao)
	gl.DeleteProgram(q.program)
}

// ── shader helpers, adapted from the GPU-renderer's program compiler ──

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
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
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
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
