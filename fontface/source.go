// Package fontface defines the candidate sources of a @font-face rule,
// resolved from its src descriptor and sent to the font cache.
package fontface

// Kinds of sources, stored in [Source.Name].
const (
	// SourceExternal is a url() source, fetched from the network
	// or the file system.
	SourceExternal = "external"
	// SourceLocal is a local() source, resolved against the fonts
	// installed on the system.
	SourceLocal = "local"
)

// Source is one candidate origin of a @font-face rule.
type Source struct {
	// Name is one of [SourceExternal] or [SourceLocal].
	Name string `json:"name"`

	// String is the resolved url of an external source, or the family
	// name of a local one. It may be empty for an external source whose
	// url() reference could not be resolved: such a source still
	// occupies its priority slot.
	String string `json:"value"`
}

// External returns a url() source. An empty url denotes an unresolved
// reference.
func External(url string) Source { return Source{Name: SourceExternal, String: url} }

// Local returns a local() source for the given family name.
func Local(family string) Source { return Source{Name: SourceLocal, String: family} }

// EffectiveSources is the list of usable sources of a @font-face rule,
// serialized as one message to the font cache process and drained there.
//
// The storage is in reverse priority order: [EffectiveSources.Pop]
// removes from the end of the slice, yielding sources from first to
// last declared without shifting the remaining elements.
type EffectiveSources []Source

// NewEffectiveSources builds the list from sources given in priority
// order, first tried first, as declared by the src descriptor.
func NewEffectiveSources(byPriority []Source) EffectiveSources {
	out := make(EffectiveSources, len(byPriority))
	for i, source := range byPriority {
		out[len(byPriority)-1-i] = source
	}
	return out
}

// Pop removes and returns the highest priority remaining source.
// It returns false when the list is exhausted.
func (es *EffectiveSources) Pop() (Source, bool) {
	if len(*es) == 0 {
		return Source{}, false
	}
	out := (*es)[len(*es)-1]
	*es = (*es)[:len(*es)-1]
	return out, true
}

// Len returns the exact number of sources left, so that an encoder may
// pre-size its buffer.
func (es EffectiveSources) Len() int { return len(es) }
