package font

import (
	"fmt"
	"math"
	"strings"

	"github.com/benoitkugler/fontvalues/utils"
)

// FontStretch is the horizontal width of a font, one of the nine
// css-fonts-3 keywords, ordered from narrowest to widest.
//
// The numeric values match pango.Stretch.
type FontStretch uint8

const (
	StretchUltraCondensed FontStretch = iota // ultra condensed width
	StretchExtraCondensed                    // extra condensed width
	StretchCondensed                         // condensed width
	StretchSemiCondensed                     // semi condensed width
	StretchNormal                            // the normal width
	StretchSemiExpanded                      // semi expanded width
	StretchExpanded                          // expanded width
	StretchExtraExpanded                     // extra expanded width
	StretchUltraExpanded                     // ultra expanded width
)

var stretchKeywords = [...]string{
	StretchUltraCondensed: "ultra-condensed",
	StretchExtraCondensed: "extra-condensed",
	StretchCondensed:      "condensed",
	StretchSemiCondensed:  "semi-condensed",
	StretchNormal:         "normal",
	StretchSemiExpanded:   "semi-expanded",
	StretchExpanded:       "expanded",
	StretchExtraExpanded:  "extra-expanded",
	StretchUltraExpanded:  "ultra-expanded",
}

// NewFontStretch parses a font-stretch keyword.
func NewFontStretch(keyword string) (FontStretch, error) {
	switch strings.ToLower(keyword) {
	case "normal":
		return StretchNormal, nil
	case "ultra-condensed":
		return StretchUltraCondensed, nil
	case "extra-condensed":
		return StretchExtraCondensed, nil
	case "condensed":
		return StretchCondensed, nil
	case "semi-condensed":
		return StretchSemiCondensed, nil
	case "semi-expanded":
		return StretchSemiExpanded, nil
	case "expanded":
		return StretchExpanded, nil
	case "extra-expanded":
		return StretchExtraExpanded, nil
	case "ultra-expanded":
		return StretchUltraExpanded, nil
	default:
		return 0, fmt.Errorf("unsupported font-stretch keyword: %s", keyword)
	}
}

// String returns the CSS keyword.
func (fs FontStretch) String() string {
	if int(fs) >= len(stretchKeywords) {
		return ""
	}
	return stretchKeywords[fs]
}

// ToNumber projects the stretch onto the continuous axis used to
// interpolate the font-stretch property, from 1 (ultra-condensed)
// to 9 (ultra-expanded), in keyword order.
// See https://drafts.csswg.org/css-fonts-3/#font-stretch-animation
func (fs FontStretch) ToNumber() utils.Fl { return utils.Fl(fs) + 1 }

// FontStretchFromNumber resolves a point of the interpolation axis back
// to a keyword, rounding half-up to the nearest index and saturating
// out of range inputs to the closest endpoint. It is total: any input
// yields a valid stretch.
func FontStretchFromNumber(x utils.Fl) FontStretch {
	index := math.Floor(float64(x) + 0.5)
	if index < 1 {
		index = 1
	} else if index > 9 {
		index = 9
	}
	return FontStretch(index - 1)
}
