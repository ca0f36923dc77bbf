package table

import (
	verr "github.com/openvt/vtgen/error"
	"github.com/openvt/vtgen/spec"
)

// DefaultTableName names the artifact when the declarations carry no %name
// metadata.
const DefaultTableName = "vt"

// TableBuilder compiles a parsed declaration into a CompiledTable.
//
// Blocks and, within a block, rules are applied in source order; a later rule
// overwrites any cell an earlier one already populated. Repeated blocks for
// one state accumulate into the same row. Cells no rule addresses keep the
// zero transition (StateAnywhere, ActionNone).
type TableBuilder struct {
	AST *spec.RootNode

	errs verr.SpecErrors
}

func (b *TableBuilder) Build() (*spec.CompiledTable, error) {
	name := DefaultTableName
	if b.AST.MetaData != nil {
		name = b.AST.MetaData.Name
	}

	var cells [StateRowCount][InputColCount]uint8
	for _, blk := range b.AST.Blocks {
		row, ok := b.resolveState(blk.State)
		if !ok {
			continue
		}
		for _, rule := range blk.Rules {
			trans, ok := b.resolveTransition(rule.Transition)
			if !ok {
				continue
			}
			packed := trans.Pack()
			for i := rule.Pattern.Start; i <= rule.Pattern.End; i++ {
				cells[row][i] = packed
			}
		}
	}
	if len(b.errs) > 0 {
		return nil, b.errs
	}

	entries := make([]int, 0, StateRowCount*InputColCount)
	for row := 0; row < StateRowCount; row++ {
		for col := 0; col < InputColCount; col++ {
			entries = append(entries, int(cells[row][col]))
		}
	}
	return &spec.CompiledTable{
		Name:       name,
		States:     StateNames(),
		Actions:    ActionNames(),
		StateCount: StateRowCount,
		InputCount: InputColCount,
		Entries:    entries,
	}, nil
}

func (b *TableBuilder) resolveState(node *spec.SymbolNode) (State, bool) {
	sym, ok := ResolveSymbol(node.Name)
	if !ok {
		b.errs = append(b.errs, &verr.SpecError{
			Cause:  semErrUndefinedSymbol,
			Detail: node.Name,
			Row:    node.Pos.Row,
			Col:    node.Pos.Col,
		})
		return 0, false
	}
	if sym.Kind != SymbolKindState {
		b.errs = append(b.errs, &verr.SpecError{
			Cause:  semErrNotAState,
			Detail: node.Name,
			Row:    node.Pos.Row,
			Col:    node.Pos.Col,
		})
		return 0, false
	}
	return sym.State, true
}

func (b *TableBuilder) resolveTransition(node *spec.TransitionNode) (Transition, bool) {
	var trans Transition
	for _, symNode := range node.Symbols {
		sym, ok := ResolveSymbol(symNode.Name)
		if !ok {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrUndefinedSymbol,
				Detail: symNode.Name,
				Row:    symNode.Pos.Row,
				Col:    symNode.Pos.Col,
			})
			return Transition{}, false
		}
		switch sym.Kind {
		case SymbolKindState:
			if trans.HasState {
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrAmbiguousTransition,
					Detail: "two states",
					Row:    symNode.Pos.Row,
					Col:    symNode.Pos.Col,
				})
				return Transition{}, false
			}
			trans.HasState = true
			trans.State = sym.State
		case SymbolKindAction:
			if trans.HasAction {
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrAmbiguousTransition,
					Detail: "two actions",
					Row:    symNode.Pos.Row,
					Col:    symNode.Pos.Col,
				})
				return Transition{}, false
			}
			trans.HasAction = true
			trans.Action = sym.Action
		}
	}
	return trans, true
}
