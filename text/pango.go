package text

import (
	"strings"

	"github.com/benoitkugler/fontvalues/font"
	"github.com/benoitkugler/fontvalues/utils"
	"github.com/benoitkugler/textprocessing/pango"
)

func PangoUnitsFromFloat(v utils.Fl) int32 { return int32(v*pango.Scale + 0.5) }

func PangoUnitsToFloat(v pango.Unit) utils.Fl { return utils.Fl(v) / pango.Scale }

// PangoFontDescription maps a [font.Description] onto the pango font
// system. The slant and stretch enumerations share their numeric
// values with pango, so the conversion is a cast.
func PangoFontDescription(fd font.Description) pango.FontDescription {
	fontDesc := pango.NewFontDescription()
	fontDesc.SetFamily(strings.Join(fd.Family, ","))

	fontDesc.SetStyle(pango.Style(fd.Style))
	fontDesc.SetStretch(pango.Stretch(fd.Stretch))
	fontDesc.SetWeight(pango.Weight(fd.Weight))

	fontDesc.SetAbsoluteSize(PangoUnitsFromFloat(fd.Size))

	return fontDesc
}

// WeightFromPango accepts the weight of a font reported by pango,
// which may fall outside the CSS grid.
func WeightFromPango(weight pango.Weight) font.FontWeight {
	return font.HostFontWeight(uint16(weight))
}

// StretchFromPango converts a pango stretch to its CSS keyword value.
func StretchFromPango(stretch pango.Stretch) font.FontStretch {
	return font.FontStretch(stretch)
}
