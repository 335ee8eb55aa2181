package viewer

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/golines/pkg/lines"
)

// Rasterize blends one instance into img as seen through vp. Coverage comes
// from lines.Shade so the result matches the GPU fragment stage.
func Rasterize(img *image.RGBA, in lines.Instance, vp mgl32.Mat4) {
	if in.Degenerate() {
		return
	}
	bounds := img.Bounds()
	w, h := float32(bounds.Dx()), float32(bounds.Dy())
	if w == 0 || h == 0 || vp.Det() == 0 {
		return
	}
	inv := vp.Inv()
	border := lines.BorderWidth(vp)

	// screen space box around the capsule
	a := toScreen(vp, in.From(), w, h)
	b := toScreen(vp, in.To(), w, h)
	pad := (in.Thickness+border)*max(abs32(vp.At(0, 0))*w/2, abs32(vp.At(1, 1))*h/2) + 1
	minX := clampPixel(min(a.X(), b.X())-pad, bounds.Min.X, bounds.Max.X)
	maxX := clampPixel(max(a.X(), b.X())+pad, bounds.Min.X, bounds.Max.X)
	minY := clampPixel(min(a.Y(), b.Y())-pad, bounds.Min.Y, bounds.Max.Y)
	maxY := clampPixel(max(a.Y(), b.Y())+pad, bounds.Min.Y, bounds.Max.Y)

	col := in.Color.RGBA8()
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			p := toWorld(inv, float32(x)+0.5, float32(y)+0.5, w, h)
			alpha := lines.Shade(in, p, border)
			if alpha <= 0 {
				continue
			}
			blend(img, x, y, col.R, col.G, col.B, alpha)
		}
	}
}

func toScreen(vp mgl32.Mat4, p mgl32.Vec2, w, h float32) mgl32.Vec2 {
	clip := vp.Mul4x1(mgl32.Vec4{p.X(), p.Y(), 0, 1})
	return mgl32.Vec2{(clip.X() + 1) * w / 2, (1 - clip.Y()) * h / 2}
}

func toWorld(inv mgl32.Mat4, x, y, w, h float32) mgl32.Vec2 {
	ndc := mgl32.Vec4{-1 + 2*x/w, 1 - 2*y/h, 0, 1}
	world := inv.Mul4x1(ndc)
	return mgl32.Vec2{world.X(), world.Y()}
}

func blend(img *image.RGBA, x, y int, r, g, b uint8, alpha float32) {
	i := img.PixOffset(x, y)
	px := img.Pix[i : i+4 : i+4]
	px[0] = mix(px[0], r, alpha)
	px[1] = mix(px[1], g, alpha)
	px[2] = mix(px[2], b, alpha)
	px[3] = 255
}

func mix(dst, src uint8, alpha float32) uint8 {
	v := float32(src)*alpha + float32(dst)*(1-alpha)
	return uint8(mgl32.Clamp(v+0.5, 0, 255))
}

func clampPixel(v float32, lo, hi int) int {
	if math.IsNaN(float64(v)) {
		return lo
	}
	return int(mgl32.Clamp(v, float32(lo), float32(hi)))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
