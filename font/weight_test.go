package font

import (
	"testing"

	tu "github.com/benoitkugler/fontvalues/utils/testutils"
)

func TestFontWeightGrid(t *testing.T) {
	for n := 100; n <= 900; n += 100 {
		w, err := NewFontWeight(n)
		if err != nil {
			t.Fatal(err)
		}
		tu.AssertEqual(t, int(w), n)
	}

	for _, n := range []int{-100, 0, 50, 99, 150, 401, 550, 901, 1000} {
		_, err := NewFontWeight(n)
		tu.AssertEqual(t, err, ErrInvalidWeight)
	}
}

func TestHostFontWeight(t *testing.T) {
	// system fonts may report values outside the CSS grid
	for _, m := range []uint16{0, 350, 380, 501, 1000, 65535} {
		tu.AssertEqual(t, HostFontWeight(m), FontWeight(m))
	}
}

func TestFontWeightIsBold(t *testing.T) {
	tu.AssertEqual(t, FontWeight(500).IsBold(), false)
	tu.AssertEqual(t, FontWeight(501).IsBold(), true)
	tu.AssertEqual(t, WeightNormal.IsBold(), false)
	tu.AssertEqual(t, WeightBold.IsBold(), true)
}

func TestFontWeightStepping(t *testing.T) {
	bolder := map[FontWeight]FontWeight{
		100: 400, 300: 400, 350: 400, 399: 400,
		400: 700, 500: 700, 599: 700,
		600: 900, 700: 900, 900: 900, 1000: 900,
	}
	for in, exp := range bolder {
		tu.AssertEqual(t, in.Bolder(), exp)
	}
	// idempotent at the top of the scale
	tu.AssertEqual(t, FontWeight(900).Bolder(), FontWeight(900))

	lighter := map[FontWeight]FontWeight{
		100: 100, 399: 100, 400: 100, 599: 100,
		600: 400, 700: 400, 799: 400,
		800: 700, 900: 700, 1000: 700,
	}
	for in, exp := range lighter {
		tu.AssertEqual(t, in.Lighter(), exp)
	}
	tu.AssertEqual(t, FontWeight(100).Lighter(), FontWeight(100))
}

func TestFontWeightString(t *testing.T) {
	tu.AssertEqual(t, WeightNormal.String(), "400")
	tu.AssertEqual(t, HostFontWeight(350).String(), "350")
}
