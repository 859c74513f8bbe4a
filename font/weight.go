package font

import (
	"errors"
	"strconv"
)

// ErrInvalidWeight is returned for an integer which is not a valid
// CSS font-weight value.
var ErrInvalidWeight = errors.New("invalid font-weight value")

// FontWeight is the boldness of a font.
//
// As of CSS Fonts Module Level 3, only the following values are
// valid in a stylesheet: 100 | 200 | 300 | 400 | 500 | 600 | 700 | 800 | 900.
// However, host font systems may provide other values: pango may report
// 350, 380, and 1000 on top of the existing ones, for example.
type FontWeight uint16

const (
	WeightNormal FontWeight = 400
	WeightBold   FontWeight = 700
)

// NewFontWeight validates an integer parsed from a stylesheet,
// accepting only multiples of 100 in the range [100, 900].
func NewFontWeight(n int) (FontWeight, error) {
	if n >= 100 && n <= 900 && n%100 == 0 {
		return FontWeight(n), nil
	}
	return 0, ErrInvalidWeight
}

// HostFontWeight accepts any magnitude unchanged, since system fonts
// may provide custom values outside the CSS grid.
func HostFontWeight(weight uint16) FontWeight { return FontWeight(weight) }

// IsBold returns true for weights strictly above 500.
func (w FontWeight) IsBold() bool { return w > 500 }

// Bolder returns the weight selected by the 'bolder' relative keyword.
func (w FontWeight) Bolder() FontWeight {
	if w < 400 {
		return 400
	} else if w < 600 {
		return 700
	}
	return 900
}

// Lighter returns the weight selected by the 'lighter' relative keyword.
func (w FontWeight) Lighter() FontWeight {
	if w < 600 {
		return 100
	} else if w < 800 {
		return 400
	}
	return 700
}

// String returns the CSS serialization, the bare decimal magnitude.
func (w FontWeight) String() string { return strconv.Itoa(int(w)) }
