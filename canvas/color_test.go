package canvas

import (
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestByteTriple(t *testing.T) {
	testCases := []struct {
		name string
		in   Color
		want [3]uint8
	}{
		{"black", Black, [3]uint8{0, 0, 0}},
		{"white", White, [3]uint8{255, 255, 255}},
		{"gray_rounds_half_up", Gray, [3]uint8{128, 128, 128}},
		{"negative_clamps", NewColor(-0.5, 0, 0), [3]uint8{0, 0, 0}},
		{"large_clamps", NewColor(1.5, 0, 0), [3]uint8{255, 0, 0}},
		{"nan_is_zero", NewColor(math.NaN(), 1, 0), [3]uint8{0, 255, 0}},
		{"below_half", NewColor(127.4/255, 0, 0), [3]uint8{127, 0, 0}},
		{"navy", Navy, [3]uint8{0, 0, 128}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b := tc.in.ByteTriple()
			if diff := cmp.Diff(tc.want, [3]uint8{r, g, b}); diff != "" {
				t.Errorf("ByteTriple() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestByteTripleInRange(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		v := float64(i) / 1000
		r, _, _ := NewColor(v, 0, 0).ByteTriple()
		if want := uint8(math.Round(v * 255)); r != want {
			t.Errorf("ByteTriple(%g) = %d, want %d", v, r, want)
		}
	}
}

func TestFromHex(t *testing.T) {
	got := FromHex(0xFF8000)
	want := NewColor(1.0, float64(0x80)/255, 0.0)
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("FromHex mismatch (-want +got):\n%s", diff)
	}

	// bits above 0xFFFFFF are ignored
	if got := FromHex(0xAB000000); got != Black {
		t.Errorf("FromHex(0xAB000000) = %v, want black", got)
	}
}

func TestAccessorsAreRaw(t *testing.T) {
	c := NewColor(-1, 0.25, 2)
	if c.Red() != -1 || c.Green() != 0.25 || c.Blue() != 2 {
		t.Errorf("accessors = (%g, %g, %g), want (-1, 0.25, 2)", c.Red(), c.Green(), c.Blue())
	}
}

func TestNamed(t *testing.T) {
	testCases := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"black", Black, true},
		{"  White ", White, true},
		{"#ff8000", FromHex(0xFF8000), true},
		{"#FF8000", FromHex(0xFF8000), true},
		{"#ff80", Color{}, false},
		{"#gg8000", Color{}, false},
		{"no-such-color", Color{}, false},
	}

	for _, tc := range testCases {
		got, ok := Named(tc.in)
		if ok != tc.ok {
			t.Errorf("Named(%q) ok = %t, want %t", tc.in, ok, tc.ok)
			continue
		}
		if diff := cmp.Diff(tc.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("Named(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestColorRGBA(t *testing.T) {
	got := color.RGBAModel.Convert(NewColor(1, 0.5, 2)).(color.RGBA)
	want := color.RGBA{R: 255, G: 128, B: 255, A: 255}
	if got != want {
		t.Errorf("RGBA conversion = %v, want %v", got, want)
	}

	if s := FromHex(0x12abef).String(); s != "#12abef" {
		t.Errorf("String() = %q, want %q", s, "#12abef")
	}
}
