package imnx

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"imguinx/nx"
)

// The pointer contract over arbitrary touch sequences: the published
// position is always inside the display bounds, equals the clamped first
// contact whenever one exists, and otherwise sticks to the previous frame's
// value.
func TestPointerProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mode := nx.OperationModeHandheld
		if rapid.Bool().Draw(t, "docked") {
			mode = nx.OperationModeDocked
		}
		plat := &fakePlatform{mode: mode, fonts: bothFonts()}
		tk := newFakeToolkit()
		a := New(plat, tk, Config{})
		w, h := a.DisplaySize()

		coord := rapid.Float32Range(-4000, 4000)
		var prevX, prevY float32
		var prevDown bool

		frames := rapid.IntRange(1, 32).Draw(t, "frames")
		for i := 0; i < frames; i++ {
			contacts := rapid.IntRange(0, 3).Draw(t, fmt.Sprintf("contacts %d", i))
			plat.touches = plat.touches[:0]
			for j := 0; j < contacts; j++ {
				plat.touches = append(plat.touches, nx.Touch{
					X: coord.Draw(t, fmt.Sprintf("x %d/%d", i, j)),
					Y: coord.Draw(t, fmt.Sprintf("y %d/%d", i, j)),
				})
			}

			a.NewFrame()
			x, y, down := a.Pointer()

			if x < 0 || x > w || y < 0 || y > h {
				t.Fatalf("frame %d: pointer (%g,%g) outside %gx%g", i, x, y, w, h)
			}
			if contacts > 0 {
				wantX := clamp(plat.touches[0].X, 0, w)
				wantY := clamp(plat.touches[0].Y, 0, h)
				if x != wantX || y != wantY {
					t.Fatalf("frame %d: pointer (%g,%g), want clamped first contact (%g,%g)", i, x, y, wantX, wantY)
				}
				if !down {
					t.Fatalf("frame %d: contact present but not pressed", i)
				}
			} else {
				if x != prevX || y != prevY || down != prevDown {
					t.Fatalf("frame %d: empty frame moved pointer (%g,%g,%v) -> (%g,%g,%v)",
						i, prevX, prevY, prevDown, x, y, down)
				}
			}
			prevX, prevY, prevDown = x, y, down
		}
	})
}
