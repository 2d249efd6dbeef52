package view

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Glyph atlas layout: printable ASCII in a 16-column grid of 7×13 cells.
const (
	FontCols   = 16
	FontFirst  = 32
	FontLast   = 126
	FontCellW  = 7
	FontCellH  = 13
	fontRows   = (FontLast - FontFirst + FontCols) / FontCols
	FontAtlasW = FontCols * FontCellW
	FontAtlasH = fontRows * FontCellH
)

// GlyphAtlas rasterizes basicfont's 7×13 face into a white-on-transparent
// NRGBA atlas ready for texture upload.
func GlyphAtlas() *image.NRGBA {
	face := basicfont.Face7x13
	img := image.NewNRGBA(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	d := font.Drawer{Dst: img, Src: image.White, Face: face}
	for ch := FontFirst; ch <= FontLast; ch++ {
		x, y := GlyphCell(rune(ch))
		d.Dot = fixed.P(x, y+face.Ascent)
		d.DrawString(string(rune(ch)))
	}
	return img
}

// GlyphCell returns the top-left pixel of ch's cell in the atlas.
func GlyphCell(ch rune) (x, y int) {
	i := int(ch) - FontFirst
	return (i % FontCols) * FontCellW, (i / FontCols) * FontCellH
}

// GlyphUV returns ch's texture coordinates; ok is false for runes outside
// the atlas.
func GlyphUV(ch rune) (u0, v0, u1, v1 float32, ok bool) {
	if ch < FontFirst || ch > FontLast {
		return 0, 0, 0, 0, false
	}
	x, y := GlyphCell(ch)
	u0 = float32(x) / FontAtlasW
	v0 = float32(y) / FontAtlasH
	u1 = float32(x+FontCellW) / FontAtlasW
	v1 = float32(y+FontCellH) / FontAtlasH
	return u0, v0, u1, v1, true
}

// TextWidth returns the width in pixels of the widest line at scale.
func TextWidth(text string, scale float32) int {
	lineLen, maxLen := 0, 0
	for _, ch := range text {
		if ch == '\n' {
			maxLen = max(maxLen, lineLen)
			lineLen = 0
			continue
		}
		lineLen++
	}
	maxLen = max(maxLen, lineLen)
	return int(float32(maxLen*FontCellW) * scale)
}
