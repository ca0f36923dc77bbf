package table

import (
	"reflect"
	"strings"
	"testing"

	verr "github.com/openvt/vtgen/error"
	"github.com/openvt/vtgen/spec"
)

func build(t *testing.T, src string) *spec.CompiledTable {
	t.Helper()
	tab, err := buildErr(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tab
}

func buildErr(t *testing.T, src string) (*spec.CompiledTable, error) {
	t.Helper()
	ast, err := spec.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	b := TableBuilder{
		AST: ast,
	}
	return b.Build()
}

func entry(tab *spec.CompiledTable, state State, input int) int {
	return tab.Entries[int(state)*tab.InputCount+input]
}

func TestTableBuilder_Build(t *testing.T) {
	t.Run("an empty declaration still yields a fully populated table", func(t *testing.T) {
		tab := build(t, ``)
		if tab.Name != DefaultTableName {
			t.Fatalf("unexpected name; want: %v, got: %v", DefaultTableName, tab.Name)
		}
		if tab.StateCount != 16 || tab.InputCount != 256 || len(tab.Entries) != 4096 {
			t.Fatalf("unexpected dimensions: %vx%v, %v entries", tab.StateCount, tab.InputCount, len(tab.Entries))
		}
		for i, e := range tab.Entries {
			if e != 0 {
				t.Fatalf("entry %v must hold the default transition; got: %#04x", i, e)
			}
		}
	})

	t.Run("%name metadata names the artifact", func(t *testing.T) {
		tab := build(t, `%name ansi`)
		if tab.Name != "ansi" {
			t.Fatalf("unexpected name; want: ansi, got: %v", tab.Name)
		}
	})

	t.Run("a range covers both of its endpoints exactly once", func(t *testing.T) {
		tab := build(t, `
CsiEntry => {
    0x30..0x39 => (Param, CsiParam),
}
`)
		want := int(uint8(ActionParam)<<4 | uint8(StateCsiParam))
		for b := 0x30; b <= 0x39; b++ {
			if e := entry(tab, StateCsiEntry, b); e != want {
				t.Fatalf("unexpected entry for byte %#04x; want: %#04x, got: %#04x", b, want, e)
			}
		}
		if e := entry(tab, StateCsiEntry, 0x2f); e != 0 {
			t.Fatalf("byte 0x2f must keep the default transition; got: %#04x", e)
		}
		if e := entry(tab, StateCsiEntry, 0x3a); e != 0 {
			t.Fatalf("byte 0x3a must keep the default transition; got: %#04x", e)
		}
	})

	t.Run("a later rule overwrites an earlier one", func(t *testing.T) {
		tab := build(t, `
Ground => {
    0x00..0x1f => Execute,
    0x1b => Escape,
}
`)
		if e := entry(tab, StateGround, 0x1b); e != int(StateEscape) {
			t.Fatalf("unexpected entry for byte 0x1b; want: %#04x, got: %#04x", int(StateEscape), e)
		}
		execute := int(uint8(ActionExecute) << 4)
		if e := entry(tab, StateGround, 0x1a); e != execute {
			t.Fatalf("unexpected entry for byte 0x1a; want: %#04x, got: %#04x", execute, e)
		}
	})

	t.Run("repeated blocks for one state accumulate", func(t *testing.T) {
		tab := build(t, `
Ground => {
    0x41 => Print,
}
Ground => {
    0x41 => Execute,
    0x42 => Print,
}
`)
		if e := entry(tab, StateGround, 0x41); e != int(uint8(ActionExecute)<<4) {
			t.Fatalf("unexpected entry for byte 0x41: %#04x", e)
		}
		if e := entry(tab, StateGround, 0x42); e != int(uint8(ActionPrint)<<4) {
			t.Fatalf("unexpected entry for byte 0x42: %#04x", e)
		}
	})

	t.Run("a state-only transition packs the default action", func(t *testing.T) {
		tab := build(t, `
Anywhere => {
    0x1b => Escape,
}
`)
		if e := entry(tab, StateAnywhere, 0x1b); e != int(StateEscape) {
			t.Fatalf("unexpected entry: %#04x", e)
		}
	})

	t.Run("an action-only transition packs the default state", func(t *testing.T) {
		tab := build(t, `
Ground => {
    0x41 => Print,
}
`)
		if e := entry(tab, StateGround, 0x41); e != int(uint8(ActionPrint)<<4) {
			t.Fatalf("unexpected entry: %#04x", e)
		}
	})

	t.Run("compiling the same declaration twice yields identical tables", func(t *testing.T) {
		src := `
Escape => {
    0x20..0x2f => (Collect, EscapeIntermediate),
    0x30..0x4f => (EscDispatch, Ground),
}
`
		tab1 := build(t, src)
		tab2 := build(t, src)
		if !reflect.DeepEqual(tab1, tab2) {
			t.Fatalf("the compiler must be deterministic")
		}
	})

	t.Run("an undefined symbol aborts the compile", func(t *testing.T) {
		tab, err := buildErr(t, `
Ground => {
    0x41 => Prnt,
}
`)
		testSemanticError(t, tab, err, semErrUndefinedSymbol, "Prnt")
	})

	t.Run("an undefined state name aborts the compile", func(t *testing.T) {
		tab, err := buildErr(t, `
Gronud => {
    0x41 => Print,
}
`)
		testSemanticError(t, tab, err, semErrUndefinedSymbol, "Gronud")
	})

	t.Run("a block cannot be named by an action", func(t *testing.T) {
		tab, err := buildErr(t, `
Print => {
    0x41 => Ground,
}
`)
		testSemanticError(t, tab, err, semErrNotAState, "Print")
	})

	t.Run("a tuple of two states is ambiguous", func(t *testing.T) {
		tab, err := buildErr(t, `
Ground => {
    0x1b => (Escape, CsiEntry),
}
`)
		testSemanticError(t, tab, err, semErrAmbiguousTransition, "two states")
	})

	t.Run("a tuple of two actions is ambiguous", func(t *testing.T) {
		tab, err := buildErr(t, `
Ground => {
    0x1b => (Print, Execute),
}
`)
		testSemanticError(t, tab, err, semErrAmbiguousTransition, "two actions")
	})

	t.Run("resolution errors accumulate across rules", func(t *testing.T) {
		_, err := buildErr(t, `
Ground => {
    0x41 => Prnt,
    0x42 => Exceute,
}
`)
		specErrs, ok := err.(verr.SpecErrors)
		if !ok {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(specErrs) != 2 {
			t.Fatalf("unexpected number of errors; want: 2, got: %v (%v)", len(specErrs), specErrs)
		}
	})
}

func testSemanticError(t *testing.T, tab *spec.CompiledTable, err error, cause error, detail string) {
	t.Helper()
	if tab != nil {
		t.Fatalf("no table must be emitted on an error")
	}
	specErrs, ok := err.(verr.SpecErrors)
	if !ok {
		t.Fatalf("unexpected error; want: %v, got: %v", cause, err)
	}
	specErr := specErrs[0]
	if specErr.Cause != cause {
		t.Fatalf("unexpected error cause; want: %v, got: %v", cause, specErr.Cause)
	}
	if specErr.Detail != detail {
		t.Fatalf("unexpected error detail; want: %v, got: %v", detail, specErr.Detail)
	}
	if specErr.Row == 0 {
		t.Fatalf("the error must carry a source position")
	}
}
