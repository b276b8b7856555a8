package stroke

import (
	"image"
	"image/color"
	"testing"

	"github.com/32bitkid/paint/screen"
)

var black = color.NRGBA{A: 0xff}

func newTestRasterizer(w, h int) (*Rasterizer, *screen.Buffer) {
	buf := screen.NewBuffer(image.Pt(w, h), screen.White)
	return NewRasterizer(buf), buf
}

// expectOnly checks that exactly the pixels inside r have color c and all
// others are background.
func expectOnly(t *testing.T, buf *screen.Buffer, r image.Rectangle, c color.NRGBA) {
	t.Helper()
	b := buf.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			got := buf.NRGBAAt(x, y)
			if image.Pt(x, y).In(r) {
				if got != c {
					t.Fatalf("(%d,%d): expected %v, got %v", x, y, c, got)
				}
			} else if got != screen.White {
				t.Fatalf("(%d,%d): expected background, got %v", x, y, got)
			}
		}
	}
}

func drag(r *Rasterizer, pts ...image.Point) {
	r.Press(pts[0])
	for _, p := range pts[1 : len(pts)-1] {
		r.Move(p, true)
	}
	r.Release(pts[len(pts)-1])
}

func TestPenScenario(t *testing.T) {
	r, buf := newTestRasterizer(100, 100)
	r.SetTool(KindPen)
	r.SetPenSize(3)
	r.SetPenColor(color.Black)

	drag(r, image.Pt(10, 10), image.Pt(10, 10))
	expectOnly(t, buf, image.Rect(10, 10, 13, 13), black)
	if !buf.Modified() {
		t.Error("expected modified after a stroke")
	}

	drag(r, image.Pt(10, 10), image.Pt(50, 10))
	expectOnly(t, buf, image.Rect(10, 10, 53, 13), black)
}

func TestZeroLengthStampsOnce(t *testing.T) {
	r, buf := newTestRasterizer(10, 10)
	stamps := 0
	r.debug = func(*Rasterizer) { stamps++ }

	r.Press(image.Pt(4, 4))
	r.Release(image.Pt(4, 4))
	if stamps != 1 {
		t.Errorf("expected one segment, got %d", stamps)
	}
	expectOnly(t, buf, image.Rect(4, 4, 5, 5), black)
}

func TestStrokeHasNoGaps(t *testing.T) {
	cases := [][]image.Point{
		{image.Pt(5, 5), image.Pt(60, 9)},
		{image.Pt(60, 9), image.Pt(5, 5)},
		{image.Pt(30, 2), image.Pt(33, 70)},
		{image.Pt(33, 70), image.Pt(30, 2)},
		{image.Pt(0, 0), image.Pt(70, 70)},
		{image.Pt(70, 0), image.Pt(0, 70)},
		{image.Pt(10, 10), image.Pt(40, 12), image.Pt(41, 60), image.Pt(3, 30), image.Pt(3, 31)},
	}

	for i, pts := range cases {
		r, buf := newTestRasterizer(80, 80)
		drag(r, pts...)

		want := map[image.Point]bool{}
		for j := 1; j < len(pts); j++ {
			a, b := pts[j-1], pts[j]
			Line(a.X, a.Y, b.X, b.Y, func(x, y int) { want[image.Pt(x, y)] = true })
		}

		for p := range want {
			if buf.NRGBAAt(p.X, p.Y) != black {
				t.Errorf("case %d: pixel %v on the segment not painted", i, p)
			}
		}
		painted := 0
		for y := 0; y < 80; y++ {
			for x := 0; x < 80; x++ {
				if buf.NRGBAAt(x, y) == black {
					painted++
				}
			}
		}
		if painted != len(want) {
			t.Errorf("case %d: expected %d painted pixels, got %d", i, len(want), painted)
		}
	}
}

func TestStrokeClipsAtEdges(t *testing.T) {
	r, buf := newTestRasterizer(20, 20)
	r.SetPenSize(8)

	drag(r, image.Pt(-30, -30), image.Pt(5, 5), image.Pt(45, -12), image.Pt(18, 18))
	if !buf.Modified() {
		t.Error("expected modified")
	}
	if buf.NRGBAAt(19, 19) != black {
		t.Error("expected the last stamp clipped into the corner")
	}

	r.SetTool(KindBrush)
	drag(r, image.Pt(-100, 50), image.Pt(50, -100))
	if buf.Size() != image.Pt(20, 20) {
		t.Errorf("buffer resized to %v", buf.Size())
	}
}

func TestBrushStroke(t *testing.T) {
	stamp := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	red := color.NRGBA{R: 0xff, A: 0xff}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			stamp.SetNRGBA(x, y, red)
		}
	}

	r, buf := newTestRasterizer(30, 30)
	r.SetTool(KindBrush)
	r.brush = Brush{Image: stamp}

	drag(r, image.Pt(2, 4), image.Pt(20, 4))
	expectOnly(t, buf, image.Rect(2, 4, 22, 6), red)
}

func TestIdleMoveDoesNotPaint(t *testing.T) {
	r, buf := newTestRasterizer(10, 10)
	if dirty := r.Move(image.Pt(3, 3), true); !dirty.Empty() {
		t.Errorf("unexpected dirty %v", dirty)
	}
	r.Release(image.Pt(3, 3))
	expectOnly(t, buf, image.Rectangle{}, black)
	if buf.Modified() {
		t.Error("idle moves should not modify the buffer")
	}
}

func TestReleaseOutsideStrokeDoesNotPaint(t *testing.T) {
	r, buf := newTestRasterizer(20, 20)
	if dirty := r.Release(image.Pt(10, 10)); !dirty.Empty() {
		t.Errorf("unexpected dirty %v", dirty)
	}
	expectOnly(t, buf, image.Rectangle{}, black)

	drag(r, image.Pt(2, 2), image.Pt(4, 2))
	r.Release(image.Pt(15, 15))
	r.Move(image.Pt(15, 18), true)
	expectOnly(t, buf, image.Rect(2, 2, 5, 3), black)
}

func TestReleasedMoveEndsStroke(t *testing.T) {
	r, buf := newTestRasterizer(10, 10)
	r.Press(image.Pt(1, 1))
	r.Move(image.Pt(2, 1), true)
	r.Move(image.Pt(3, 1), false)
	if r.Active() {
		t.Fatal("expected the stroke to end")
	}
	r.Move(image.Pt(8, 1), true)
	expectOnly(t, buf, image.Rect(1, 1, 4, 2), black)
}

func TestPressWhileActiveIsIgnored(t *testing.T) {
	r, _ := newTestRasterizer(10, 10)
	r.Press(image.Pt(1, 1))
	r.Press(image.Pt(7, 7))
	if r.LastPoint() != image.Pt(1, 1) {
		t.Errorf("unexpected last point %v", r.LastPoint())
	}
}

func TestDirtyCoversChanges(t *testing.T) {
	r, buf := newTestRasterizer(64, 64)
	r.SetPenSize(4)

	r.Press(image.Pt(40, 8))
	var total image.Rectangle
	for _, p := range []image.Point{image.Pt(12, 30), image.Pt(13, 31), image.Pt(50, 50)} {
		before := append([]uint8(nil), buf.Pix...)
		dirty := r.Move(p, true)
		total = total.Union(dirty)
		for y := 0; y < 64; y++ {
			for x := 0; x < 64; x++ {
				o := buf.PixOffset(x, y)
				if before[o] != buf.Pix[o] && !image.Pt(x, y).In(dirty) {
					t.Fatalf("move to %v changed %d,%d outside %v", p, x, y, dirty)
				}
			}
		}
	}
	r.Release(image.Pt(50, 50))

	if r.Dirty() != total {
		t.Errorf("expected accumulated %v, got %v", total, r.Dirty())
	}
	if !r.Dirty().In(buf.Bounds()) {
		t.Errorf("dirty %v outside the buffer", r.Dirty())
	}
}

func TestSetPenSizeClamps(t *testing.T) {
	r, _ := newTestRasterizer(1, 1)
	cases := []struct{ in, want int }{
		{-4, MinPenSize},
		{0, MinPenSize},
		{1, 1},
		{17, 17},
		{50, 50},
		{51, MaxPenSize},
	}
	for _, tc := range cases {
		r.SetPenSize(tc.in)
		if r.Pen().Size != tc.want {
			t.Errorf("%d: expected %d, got %d", tc.in, tc.want, r.Pen().Size)
		}
	}
}

func TestToolSelection(t *testing.T) {
	r, _ := newTestRasterizer(1, 1)
	if _, ok := r.Tool().(Pen); !ok {
		t.Fatalf("expected pen by default, got %T", r.Tool())
	}
	r.SetTool(KindBrush)
	if _, ok := r.Tool().(Brush); !ok {
		t.Fatalf("expected brush, got %T", r.Tool())
	}
	if r.Tool().Footprint() != image.Pt(BrushSize, BrushSize) {
		t.Errorf("unexpected default brush footprint %v", r.Tool().Footprint())
	}

	r.SetBrushColor(color.NRGBA{B: 0xff, A: 0xff})
	if c := r.Brush().Image.NRGBAAt(BrushSize-1, BrushSize-1); c != (color.NRGBA{B: 0xff, A: 0xff}) {
		t.Errorf("unexpected brush color %v", c)
	}
	r.SetBrush(image.NewNRGBA(image.Rect(0, 0, 10, 20)))
	if r.Tool().Footprint() != image.Pt(25, 50) {
		t.Errorf("unexpected scaled brush footprint %v", r.Tool().Footprint())
	}
}

func TestDebugCallback(t *testing.T) {
	buf := screen.NewBuffer(image.Pt(10, 10), screen.White)
	var seen []image.Point
	r := NewRasterizer(buf, Options{DebugFn: func(r *Rasterizer) {
		seen = append(seen, r.LastPoint())
	}})

	drag(r, image.Pt(1, 1), image.Pt(5, 1), image.Pt(5, 6))
	if len(seen) != 2 || seen[0] != image.Pt(5, 1) || seen[1] != image.Pt(5, 6) {
		t.Errorf("unexpected segments %v", seen)
	}
}
