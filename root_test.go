package hdrscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddConstantMergesLocations(t *testing.T) {
	r := NewRoot()
	fa := &SourceFile{Path: "a.h"}
	fb := &SourceFile{Path: "b.h"}

	r.addConstant(&Constant{Name: "MAX_PATH", Value: "260", DefinedAt: []Location{NewLocation(fa, 1, 1)}})
	r.addConstant(&Constant{Name: "MAX_PATH", Value: "999", DefinedAt: []Location{NewLocation(fb, 2, 1)}})

	c, ok := r.Constants().Get("MAX_PATH")
	require.True(t, ok)
	assert.Equal(t, "260", c.Value, "first sighting's value wins")
	assert.Len(t, c.DefinedAt, 2)
}

func TestAddInterfaceFlagsAddedMethod(t *testing.T) {
	r := NewRoot()
	f := &SourceFile{Path: "a.h"}

	first := NewInterface("IFoo")
	first.DefinedAt = []Location{NewLocation(f, 1, 1)}
	first.Methods.Insert("DoThing", &Method{Name: "DoThing", ReturnType: "HRESULT"})
	r.addInterface(first)

	second := NewInterface("IFoo")
	second.DefinedAt = []Location{NewLocation(f, 50, 1)}
	second.Methods.Insert("DoThing", &Method{Name: "DoThing", ReturnType: "void"})
	second.Methods.Insert("DoOtherThing", &Method{Name: "DoOtherThing", ReturnType: "HRESULT"})
	r.addInterface(second)

	merged, ok := r.Interfaces().Get("IFoo")
	require.True(t, ok)
	assert.Equal(t, 1, merged.Methods.Len(), "the first sighting's own method set is kept as-is, only diagnostics are emitted for drift")
	assert.Len(t, merged.DefinedAt, 2)

	var found bool
	for _, issue := range merged.Issues {
		if issue.Kind == IssueShapeDrift && issue.Message == "duplicate interface IFoo adds new method DoOtherThing" {
			found = true
		}
	}
	assert.True(t, found, "adding DoOtherThing on the second sighting should flag an 'adds new method' issue")
}

func TestAddInterfaceFlagsMissingMethod(t *testing.T) {
	r := NewRoot()
	f := &SourceFile{Path: "a.h"}

	first := NewInterface("IFoo")
	first.DefinedAt = []Location{NewLocation(f, 1, 1)}
	first.Methods.Insert("DoThing", &Method{Name: "DoThing", ReturnType: "HRESULT"})
	first.Methods.Insert("DoOtherThing", &Method{Name: "DoOtherThing", ReturnType: "HRESULT"})
	r.addInterface(first)

	second := NewInterface("IFoo")
	second.DefinedAt = []Location{NewLocation(f, 50, 1)}
	second.Methods.Insert("DoThing", &Method{Name: "DoThing", ReturnType: "HRESULT"})
	r.addInterface(second)

	merged, ok := r.Interfaces().Get("IFoo")
	require.True(t, ok)

	var found bool
	for _, issue := range merged.Issues {
		if issue.Kind == IssueShapeDrift && issue.Message == "duplicate interface IFoo missing previous method DoOtherThing" {
			found = true
		}
	}
	assert.True(t, found, "dropping DoOtherThing on the second sighting should flag a 'missing previous method' issue")
}

func TestAddInterfaceAdoptsBaseFromLaterSighting(t *testing.T) {
	r := NewRoot()
	f := &SourceFile{Path: "a.h"}

	first := NewInterface("IFoo")
	first.DefinedAt = []Location{NewLocation(f, 1, 1)}
	r.addInterface(first)

	second := NewInterface("IFoo")
	second.Base = "IUnknown"
	second.DefinedAt = []Location{NewLocation(f, 2, 1)}
	r.addInterface(second)

	merged, _ := r.Interfaces().Get("IFoo")
	assert.Equal(t, Ident("IUnknown"), merged.Base)
}

func TestDebugStringIsDeterministicAndSortedByKey(t *testing.T) {
	r := NewRoot()
	f := &SourceFile{Path: "a.h"}
	r.addConstant(&Constant{Name: "ZEBRA", Value: "1", DefinedAt: []Location{NewLocation(f, 1, 1)}})
	r.addConstant(&Constant{Name: "ALPHA", Value: "2", DefinedAt: []Location{NewLocation(f, 2, 1)}})

	out1 := r.DebugString()
	out2 := r.DebugString()
	assert.Equal(t, out1, out2)

	alphaPos := indexOf(out1, "ALPHA")
	zebraPos := indexOf(out1, "ZEBRA")
	assert.True(t, alphaPos < zebraPos)
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
