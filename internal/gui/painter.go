package gui

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"

	"github.com/ramonehamilton/swipedeck/internal/swipe"
)

// Card layout in unscaled card units.
const (
	cardWidthRatio  = 0.9
	cardHeightRatio = 0.8
	cornerRadius    = 24.0
	infoHeight      = 120.0
	infoPadding     = 24.0

	stampWidth   = 180.0
	stampHeight  = 84.0
	stampBorder  = 6.0
	stampRadius  = 12.0
	stampInsetX  = 40.0
	stampInsetY  = 60.0
	stampFillMix = 0.9
)

var (
	infoColor    = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	dividerColor = color.NRGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
	titleColor   = color.NRGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF}
	bioColor     = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xFF}
	likeColor    = color.NRGBA{R: 0x00, G: 0xE6, B: 0x76, A: 0xFF}
	nopeColor    = color.NRGBA{R: 0xFF, G: 0x17, B: 0x44, A: 0xFF}
)

// cardFrame places a card on the canvas: local card coordinates have their
// origin at the card centre and are rotated, scaled and translated to canvas
// coordinates.
type cardFrame struct {
	CX, CY       float64
	HalfW, HalfH float64
	Scale        float64
	Angle        float64 // radians, clockwise on a y-down canvas
	Opacity      float64
}

func newCardFrame(width, height float64, v swipe.Visuals) cardFrame {
	return cardFrame{
		CX:      width/2 + v.Offset.X,
		CY:      height/2 + v.Offset.Y + v.StackY,
		HalfW:   width * cardWidthRatio / 2,
		HalfH:   height * cardHeightRatio / 2,
		Scale:   v.Scale,
		Angle:   v.Rotation * math.Pi / 180,
		Opacity: v.Opacity,
	}
}

func (f cardFrame) toCanvas(lx, ly float64) (x, y float64) {
	sin, cos := math.Sincos(f.Angle)
	return f.CX + (lx*cos-ly*sin)*f.Scale, f.CY + (lx*sin+ly*cos)*f.Scale
}

func (f cardFrame) toLocal(x, y float64) (lx, ly float64, ok bool) {
	if f.Scale <= 0 {
		return 0, 0, false
	}
	sin, cos := math.Sincos(-f.Angle)
	dx, dy := x-f.CX, y-f.CY
	return (dx*cos - dy*sin) / f.Scale, (dx*sin + dy*cos) / f.Scale, true
}

// contains reports whether a canvas point lies on the card.
func (f cardFrame) contains(x, y float64) bool {
	lx, ly, ok := f.toLocal(x, y)
	return ok && insideRoundedRect(lx, ly, f.HalfW, f.HalfH, cornerRadius)
}

func (f cardFrame) likeCenter() (float64, float64) {
	return f.HalfW - stampInsetX - stampWidth/2, -f.HalfH + stampInsetY + stampHeight/2
}

func (f cardFrame) nopeCenter() (float64, float64) {
	return -f.HalfW + stampInsetX + stampWidth/2, -f.HalfH + stampInsetY + stampHeight/2
}

// matrix maps local card coordinates to pixels.
func (f cardFrame) matrix(pxScale float64) rasterx.Matrix2D {
	sin, cos := math.Sincos(f.Angle)
	k := f.Scale * pxScale
	return rasterx.Matrix2D{
		A: k * cos, B: k * sin,
		C: -k * sin, D: k * cos,
		E: f.CX * pxScale, F: f.CY * pxScale,
	}
}

func insideRoundedRect(x, y, hw, hh, r float64) bool {
	ax, ay := math.Abs(x), math.Abs(y)
	if ax > hw || ay > hh {
		return false
	}
	r = math.Max(0, math.Min(r, math.Min(hw, hh)))
	if ax <= hw-r || ay <= hh-r {
		return true
	}
	dx, dy := ax-(hw-r), ay-(hh-r)
	return dx*dx+dy*dy <= r*r
}

// paintSpec is everything the raster needs to draw one card.
type paintSpec struct {
	Frame cardFrame
	Fill  color.NRGBA
	Like  swipe.Stamp
	Nope  swipe.Stamp
}

// paintCard draws the card body and stamp frames into img, anti-aliased.
// pxScale converts canvas units to pixels. Text is laid out separately by the
// renderer.
func paintCard(img *image.NRGBA, spec paintSpec, pxScale float64) {
	f := spec.Frame
	if f.Scale <= 0 || f.Opacity <= 0 || pxScale <= 0 {
		return
	}

	// The layers are painted opaque and the card faded as a whole, so the
	// info panel does not show the photo through it.
	b := img.Bounds()
	layer := image.NewRGBA(b)
	filler := rasterx.NewFiller(b.Dx(), b.Dy(), rasterx.NewScannerGV(b.Dx(), b.Dy(), layer, b))

	m := f.matrix(pxScale)
	card := &rasterx.MatrixAdder{Adder: filler, M: m}
	dividerY := f.HalfH - infoHeight

	fill(filler, spec.Fill, func() {
		addPanel(card, -f.HalfW, -f.HalfH, f.HalfW, f.HalfH, cornerRadius, cornerRadius)
	})
	fill(filler, dividerColor, func() {
		addPanel(card, -f.HalfW, dividerY, f.HalfW, f.HalfH, 0, cornerRadius)
	})
	fill(filler, infoColor, func() {
		addPanel(card, -f.HalfW, dividerY+1, f.HalfW, f.HalfH, 0, cornerRadius)
	})

	lx, ly := f.likeCenter()
	paintStamp(filler, compose(m, stampMatrix(lx, ly, spec.Like)), spec.Like, likeColor)
	nx, ny := f.nopeCenter()
	paintStamp(filler, compose(m, stampMatrix(nx, ny, spec.Nope)), spec.Nope, nopeColor)

	alpha := color.Alpha{A: uint8(math.Round(255 * math.Min(1, f.Opacity)))}
	draw.DrawMask(img, b, layer, b.Min, image.NewUniform(alpha), image.Point{}, draw.Over)
}

// paintStamp draws a stamp frame: a rounded border in the stamp colour with
// a mostly white centre. m maps stamp coordinates, centred on the stamp, to
// pixels.
func paintStamp(filler *rasterx.Filler, m rasterx.Matrix2D, s swipe.Stamp, border color.NRGBA) {
	if s.Opacity <= 0 || s.Scale <= 0 {
		return
	}

	stamp := &rasterx.MatrixAdder{Adder: filler, M: m}
	hw, hh := stampWidth/2, stampHeight/2
	fill(filler, withAlpha(border, s.Opacity), func() {
		rasterx.AddRoundRect(-hw, -hh, hw, hh, stampRadius, stampRadius, 0, rasterx.RoundGap, stamp)
	})
	inner := stampRadius - stampBorder
	fill(filler, withAlpha(infoColor, stampFillMix*s.Opacity), func() {
		addPanel(stamp, -hw+stampBorder, -hh+stampBorder, hw-stampBorder, hh-stampBorder, inner, inner)
	})
}

// stampMatrix maps stamp coordinates to local card coordinates for a stamp
// centred at (cx, cy).
func stampMatrix(cx, cy float64, s swipe.Stamp) rasterx.Matrix2D {
	sin, cos := math.Sincos(s.Rotation * math.Pi / 180)
	return rasterx.Matrix2D{
		A: s.Scale * cos, B: s.Scale * sin,
		C: -s.Scale * sin, D: s.Scale * cos,
		E: cx, F: cy,
	}
}

// compose returns the transform applying inner first, then outer.
func compose(outer, inner rasterx.Matrix2D) rasterx.Matrix2D {
	return rasterx.Matrix2D{
		A: outer.A*inner.A + outer.C*inner.B,
		B: outer.B*inner.A + outer.D*inner.B,
		C: outer.A*inner.C + outer.C*inner.D,
		D: outer.B*inner.C + outer.D*inner.D,
		E: outer.A*inner.E + outer.C*inner.F + outer.E,
		F: outer.B*inner.E + outer.D*inner.F + outer.F,
	}
}

// fill rasterizes the path built by path in colour c.
func fill(filler *rasterx.Filler, c color.Color, path func()) {
	filler.Clear()
	path()
	filler.SetColor(c)
	filler.Draw()
	filler.Clear()
}

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// addPanel adds a rectangle whose top and bottom corners are rounded with
// radii rTop and rBottom.
func addPanel(a rasterx.Adder, minX, minY, maxX, maxY, rTop, rBottom float64) {
	p := rasterx.ToFixedP
	kt, kb := rTop*kappa, rBottom*kappa

	a.Start(p(minX+rTop, minY))
	a.Line(p(maxX-rTop, minY))
	if rTop > 0 {
		a.CubeBezier(p(maxX-rTop+kt, minY), p(maxX, minY+rTop-kt), p(maxX, minY+rTop))
	}
	a.Line(p(maxX, maxY-rBottom))
	if rBottom > 0 {
		a.CubeBezier(p(maxX, maxY-rBottom+kb), p(maxX-rBottom+kb, maxY), p(maxX-rBottom, maxY))
	}
	a.Line(p(minX+rBottom, maxY))
	if rBottom > 0 {
		a.CubeBezier(p(minX+rBottom-kb, maxY), p(minX, maxY-rBottom+kb), p(minX, maxY-rBottom))
	}
	a.Line(p(minX, minY+rTop))
	if rTop > 0 {
		a.CubeBezier(p(minX, minY+rTop-kt), p(minX+rTop-kt, minY), p(minX+rTop, minY))
	}
	a.Stop(true)
}

func withAlpha(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(math.Round(255 * math.Max(0, math.Min(1, opacity))))
	return c
}
