package view

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Floats returns the colour as normalized GL components.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

var Palette = struct {
	Sky        RGB
	Floor      RGB
	FloorEdge  RGB
	Barrel     RGB
	Shell      RGB
	Trail      RGB
	BarBack    RGB
	BarFill    RGB
	BarFull    RGB
	Marker     RGB
	Text       RGB
	TextDim    RGB
	TextWinner RGB
}{
	Sky:        RGB{R: 236, G: 242, B: 248},
	Floor:      RGB{R: 70, G: 120, B: 60},
	FloorEdge:  RGB{R: 48, G: 88, B: 40},
	Barrel:     RGB{R: 40, G: 40, B: 44},
	Shell:      RGB{R: 20, G: 20, B: 20},
	Trail:      RGB{R: 120, G: 120, B: 130},
	BarBack:    RGB{R: 50, G: 50, B: 50},
	BarFill:    RGB{R: 250, G: 200, B: 40},
	BarFull:    RGB{R: 230, G: 60, B: 40},
	Marker:     RGB{R: 230, G: 60, B: 40},
	Text:       RGB{R: 30, G: 30, B: 30},
	TextDim:    RGB{R: 110, G: 110, B: 110},
	TextWinner: RGB{R: 200, G: 40, B: 40},
}

var tankColors = [...]RGB{
	{R: 52, G: 101, B: 164},
	{R: 204, G: 0, B: 0},
	{R: 78, G: 154, B: 6},
	{R: 117, G: 80, B: 123},
	{R: 245, G: 121, B: 0},
	{R: 193, G: 125, B: 17},
	{R: 6, G: 152, B: 154},
	{R: 237, G: 212, B: 0},
	{R: 136, G: 138, B: 133},
	{R: 173, G: 127, B: 168},
}

// TankColor returns a stable colour for tank i.
func TankColor(i int) RGB {
	if i < 0 {
		i = -i
	}
	return tankColors[i%len(tankColors)]
}
