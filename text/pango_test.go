package text

import (
	"testing"

	"github.com/benoitkugler/fontvalues/font"
	"github.com/benoitkugler/fontvalues/utils"
	tu "github.com/benoitkugler/fontvalues/utils/testutils"
	"github.com/benoitkugler/textprocessing/pango"
)

func TestPangoUnits(t *testing.T) {
	for _, v := range []utils.Fl{0, 1, 12.5, 1000} {
		units := PangoUnitsFromFloat(v)
		tu.AssertEqual(t, PangoUnitsToFloat(pango.Unit(units)), v)
	}
}

func TestPangoConversions(t *testing.T) {
	// pango reports weights outside the CSS grid
	tu.AssertEqual(t, WeightFromPango(380), font.HostFontWeight(380))
	tu.AssertEqual(t, WeightFromPango(700), font.WeightBold)

	for _, fs := range []font.FontStretch{
		font.StretchUltraCondensed, font.StretchNormal, font.StretchUltraExpanded,
	} {
		tu.AssertEqual(t, StretchFromPango(pango.Stretch(fs)), fs)
	}
}
