package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/lallassu/tanks/internal/view"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type cameraUniforms struct {
	camera     int32
	zoom       int32
	resolution int32
}

func lookupCamera(prog uint32) cameraUniforms {
	return cameraUniforms{
		camera:     gl.GetUniformLocation(prog, gl.Str("uCamera\x00")),
		zoom:       gl.GetUniformLocation(prog, gl.Str("uZoom\x00")),
		resolution: gl.GetUniformLocation(prog, gl.Str("uResolution\x00")),
	}
}

func (u cameraUniforms) set(cam view.Camera, fbW, fbH int) {
	gl.Uniform2f(u.camera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(u.zoom, float32(cam.Zoom))
	gl.Uniform2f(u.resolution, float32(fbW), float32(fbH))
}

// Renderer owns the GL programs and buffers. All methods must run on the
// thread that owns the GL context.
type Renderer struct {
	// Flat triangles: floor, tanks, barrels, power bar, shell.
	shapeProg uint32
	shapeVAO  uint32
	shapeVBO  uint32
	shapeU    cameraUniforms

	// Point sprites: flight trail and particles.
	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32
	spriteU    cameraUniforms

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	shapeProg, err := linkProgram(shapeVertSrc, shapeFragSrc)
	if err != nil {
		return nil, fmt.Errorf("shape program: %w", err)
	}
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		gl.DeleteProgram(shapeProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}

	r := &Renderer{
		shapeProg:  shapeProg,
		spriteProg: spriteProg,
		shapeU:     lookupCamera(shapeProg),
		spriteU:    lookupCamera(spriteProg),
	}

	// Shape VAO/VBO: streaming triangles, pos(2) + color(4).
	gl.GenVertexArrays(1, &r.shapeVAO)
	gl.GenBuffers(1, &r.shapeVBO)
	gl.BindVertexArray(r.shapeVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.shapeVBO)
	stride := int32(view.ShapeStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))

	// Sprite VAO/VBO: x, y, size, r, g, b, a, rotation.
	gl.GenVertexArrays(1, &r.spriteVAO)
	gl.GenBuffers(1, &r.spriteVBO)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	stride = int32(view.SpriteStride * 4)
	// aWorldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aRotation (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.shapeVBO, r.spriteVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.shapeVAO, r.spriteVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.shapeProg, r.spriteProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	sr, sg, sb := view.Palette.Sky.Floats()
	gl.ClearColor(sr, sg, sb, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawScene draws the frame's triangles, then trail and particle sprites
// over them; glow sprites blend additively.
func (r *Renderer) DrawScene(s *view.Scene, cam view.Camera, fbW, fbH int) {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	if n := len(s.Shapes) / view.ShapeStride; n > 0 {
		gl.UseProgram(r.shapeProg)
		gl.BindVertexArray(r.shapeVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.shapeVBO)
		r.shapeU.set(cam, fbW, fbH)
		gl.BufferData(gl.ARRAY_BUFFER, len(s.Shapes)*4, gl.Ptr(s.Shapes), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(n))
	}

	r.drawSprites(s.Sprites, cam, fbW, fbH)
	if len(s.Glow) > 0 {
		gl.BlendFunc(gl.ONE, gl.ONE)
		r.drawSprites(s.Glow, cam, fbW, fbH)
	}

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}

func (r *Renderer) drawSprites(buf []float32, cam view.Camera, fbW, fbH int) {
	n := len(buf) / view.SpriteStride
	if n == 0 {
		return
	}
	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	r.spriteU.set(cam, fbW, fbH)
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(n))
}
