package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/panes"
)

var palette = []color.RGBA{
	{0x50, 0xb4, 0xff, 0xff},
	{0xff, 0x8c, 0x50, 0xff},
	{0x78, 0xdc, 0x78, 0xff},
	{0xdc, 0x64, 0xc8, 0xff},
	{0xf0, 0xd2, 0x50, 0xff},
}

func paneColor(i int) color.RGBA { return palette[i%len(palette)] }

// appendQuad adds the transformed box of l as two triangles sampling a 1x1
// white source, tinted with premultiplied c.
func appendQuad(verts []ebiten.Vertex, inds []uint16, l panes.BoxLayout, c color.RGBA) ([]ebiten.Vertex, []uint16) {
	a := float32(c.A) / 0xff
	r := float32(c.R) / 0xff * a
	g := float32(c.G) / 0xff * a
	b := float32(c.B) / 0xff * a

	base := uint16(len(verts))
	for _, p := range l.Corners() {
		verts = append(verts, ebiten.Vertex{
			DstX:   float32(p[0]),
			DstY:   float32(p[1]),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	// Corners run clockwise from top left: TL-TR-BR, TL-BR-BL.
	inds = append(inds,
		base+0, base+1, base+2,
		base+0, base+2, base+3,
	)
	return verts, inds
}

// handleLayout returns the resize handle in the bottom right corner of l,
// sharing its transform.
func handleLayout(l panes.BoxLayout) panes.BoxLayout {
	pre, post := panes.OriginTranslation(l.Origin, l.Width, l.Height)
	h := l
	h.Origin = panes.OriginTopLeft
	h.Transform = post.Multiply(l.Transform).Multiply(pre).
		Multiply(panes.Mat4FromTranslation(panes.Vec3{l.Width - resizeHandleSize, l.Height - resizeHandleSize, 0}))
	h.Width, h.Height = resizeHandleSize, resizeHandleSize
	return h
}
