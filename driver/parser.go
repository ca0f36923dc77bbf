package driver

import (
	"fmt"

	"github.com/openvt/vtgen/spec"
	"github.com/openvt/vtgen/table"
)

// Parser steps a compiled table one input byte at a time. It treats the table
// as read-only; any number of parsers can share one table.
type Parser struct {
	tab   *spec.CompiledTable
	state table.State
}

func NewParser(tab *spec.CompiledTable) (*Parser, error) {
	if tab.StateCount != table.StateRowCount || tab.InputCount != table.InputColCount {
		return nil, fmt.Errorf("unexpected table dimensions; want: %vx%v, got: %vx%v", table.StateRowCount, table.InputColCount, tab.StateCount, tab.InputCount)
	}
	if len(tab.Entries) != tab.StateCount*tab.InputCount {
		return nil, fmt.Errorf("unexpected entry count; want: %v, got: %v", tab.StateCount*tab.InputCount, len(tab.Entries))
	}
	return &Parser{
		tab:   tab,
		state: table.StateGround,
	}, nil
}

func (p *Parser) State() table.State {
	return p.state
}

func (p *Parser) Reset() {
	p.state = table.StateGround
}

// Next consumes one input byte and returns the action to perform.
//
// The Anywhere row is consulted first; its entries apply from every state,
// and an entry of zero there means the current state's row decides. A next
// state of Anywhere in the chosen entry means the state is left unchanged:
// the packed form cannot distinguish "stay" from "go to state 0", and the
// table is authored with that reading.
func (p *Parser) Next(b byte) table.Action {
	packed := p.lookup(table.StateAnywhere, b)
	if packed == 0 {
		packed = p.lookup(p.state, b)
	}
	next, action := table.UnpackTransition(packed)
	if next != table.StateAnywhere {
		p.state = next
	}
	return action
}

func (p *Parser) lookup(s table.State, b byte) uint8 {
	return uint8(p.tab.Entries[int(s)*p.tab.InputCount+int(b)])
}
