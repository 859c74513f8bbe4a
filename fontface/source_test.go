package fontface

import (
	"encoding/json"
	"testing"

	tu "github.com/benoitkugler/fontvalues/utils/testutils"
)

// The storage is stack like: sources are kept in reverse priority
// order, and Pop drains them in declared order.
func TestEffectiveSourcesDrain(t *testing.T) {
	srcA := External("https://example.com/fonts/Gentium.woff")
	srcB := External("") // unresolved reference, keeps its slot
	srcC := Local("Gentium Hard")

	sources := NewEffectiveSources([]Source{srcA, srcB, srcC})
	tu.AssertEqual(t, []Source(sources), []Source{srcC, srcB, srcA})

	expected := []Source{srcA, srcB, srcC}
	for i, exp := range expected {
		tu.AssertEqual(t, sources.Len(), 3-i)
		got, ok := sources.Pop()
		tu.AssertEqual(t, ok, true)
		tu.AssertEqual(t, got, exp)
	}

	tu.AssertEqual(t, sources.Len(), 0)
	_, ok := sources.Pop()
	tu.AssertEqual(t, ok, false)
}

func TestEffectiveSourcesEmpty(t *testing.T) {
	sources := NewEffectiveSources(nil)
	tu.AssertEqual(t, sources.Len(), 0)
	_, ok := sources.Pop()
	tu.AssertEqual(t, ok, false)
}

func TestSourcesPayload(t *testing.T) {
	sources := NewEffectiveSources([]Source{
		Local("Gentium Hard"),
		External("https://example.com/fonts/Gentium.woff"),
		External(""),
	})

	payload, err := json.Marshal(sources)
	if err != nil {
		t.Fatal(err)
	}
	tu.AssertEqual(t, string(payload),
		`[{"name":"external","value":""},`+
			`{"name":"external","value":"https://example.com/fonts/Gentium.woff"},`+
			`{"name":"local","value":"Gentium Hard"}]`)

	var decoded EffectiveSources
	if err = json.Unmarshal(payload, &decoded); err != nil {
		t.Fatal(err)
	}
	tu.AssertEqual(t, decoded, sources)
}
