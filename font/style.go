// Package font defines the CSS font values shared between the style
// computation engine and the graphics layer, with their conversion and
// interpolation rules, so that the latter does not depend on the former.
package font

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/benoitkugler/fontvalues/utils"
)

// Style is the slant of a font.
//
// The numeric values match pango.Style.
type Style uint8

const (
	StyleNormal Style = iota
	StyleOblique
	StyleItalic
)

// NewStyle parses a font-style keyword.
func NewStyle(keyword string) (Style, error) {
	switch strings.ToLower(keyword) {
	case "normal":
		return StyleNormal, nil
	case "oblique":
		return StyleOblique, nil
	case "italic":
		return StyleItalic, nil
	default:
		return 0, fmt.Errorf("unsupported font-style keyword: %s", keyword)
	}
}

func (s Style) String() string {
	switch s {
	case StyleOblique:
		return "oblique"
	case StyleItalic:
		return "italic"
	default:
		return "normal"
	}
}

// FontVariantCaps is the resolved value of the font-variant-caps
// property, restricted to the two values crossing the style boundary.
type FontVariantCaps uint8

const (
	CapsNormal FontVariantCaps = iota
	CapsSmallCaps
)

// NewFontVariantCaps parses a font-variant-caps keyword.
func NewFontVariantCaps(keyword string) (FontVariantCaps, error) {
	switch strings.ToLower(keyword) {
	case "normal":
		return CapsNormal, nil
	case "small-caps":
		return CapsSmallCaps, nil
	default:
		return 0, fmt.Errorf("unsupported font-variant-caps keyword: %s", keyword)
	}
}

func (c FontVariantCaps) String() string {
	if c == CapsSmallCaps {
		return "small-caps"
	}
	return "normal"
}

// StyleAccessor exposes the subset of a computed style record required
// to select fonts. It is implemented by the style computation engine
// and consumed by the graphics layer, which borrows the underlying
// record for the duration of a single call.
//
// The accessor is read only and never fails.
type StyleAccessor interface {
	// Size returns the resolved font size, in device independent units.
	Size() utils.Fl

	// Hash returns a value stable across equal resolved font records,
	// used as a cache key. It makes no cryptographic guarantee.
	Hash() uint64

	FontWeight() FontWeight
	FontStretch() FontStretch
	FontVariantCaps() FontVariantCaps

	// EachFontFamily calls fn once per family name, in declared order,
	// without allocating an intermediate slice. fn may not be called at
	// all for an empty family list.
	EachFontFamily(fn func(family string))

	// IsObliqueOrItalic returns true for the oblique and italic slants.
	IsObliqueOrItalic() bool
}

// Description stores the resolved settings influencing font selection
// and metrics, on the graphics layer side.
type Description struct {
	Family      []string
	Style       Style
	Stretch     FontStretch
	VariantCaps FontVariantCaps
	Weight      FontWeight
	Size        utils.Fl
}

// NewDescription snapshots a style record through its accessor.
// Since the accessor only exposes the slant as a flag, the style of
// oblique or italic records is reported as italic.
func NewDescription(style StyleAccessor) Description {
	var out Description
	style.EachFontFamily(func(family string) {
		out.Family = append(out.Family, family)
	})
	if style.IsObliqueOrItalic() {
		out.Style = StyleItalic
	}
	out.Stretch = style.FontStretch()
	out.VariantCaps = style.FontVariantCaps()
	out.Weight = style.FontWeight()
	out.Size = style.Size()
	return out
}

func (fd Description) binary(dst []byte) []byte {
	for _, f := range fd.Family {
		dst = append(dst, f...)
		dst = append(dst, 0)
	}
	dst = append(dst, byte(fd.Style), byte(fd.Stretch), byte(fd.VariantCaps))
	dst = binary.BigEndian.AppendUint16(dst, uint16(fd.Weight))
	dst = binary.BigEndian.AppendUint32(dst, math.Float32bits(fd.Size))
	return dst
}

// Hash fulfills the contract of [StyleAccessor.Hash]. Style records
// backed by a Description may simply forward to it.
func (fd Description) Hash() uint64 { return utils.Hash64(fd.binary(nil)) }
