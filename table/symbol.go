package table

import "fmt"

// State is one node of the terminal escape sequence automaton. The numeric
// values are part of the compiled artifact's interface and must not change.
type State uint8

const (
	StateAnywhere State = iota
	StateCsiEntry
	StateCsiIgnore
	StateCsiIntermediate
	StateCsiParam
	StateDcsEntry
	StateDcsIgnore
	StateDcsIntermediate
	StateDcsParam
	StateDcsPassthrough
	StateEscape
	StateEscapeIntermediate
	StateGround
	StateOscString
	StateSosPmApcString
	StateUtf8
)

// Action is a side effect tag the runtime performs while transitioning.
type Action uint8

const (
	ActionNone Action = iota
	ActionClear
	ActionCollect
	ActionCsiDispatch
	ActionEscDispatch
	ActionExecute
	ActionHook
	ActionIgnore
	ActionOscEnd
	ActionOscPut
	ActionOscStart
	ActionParam
	ActionPrint
	ActionPut
	ActionUnhook
	ActionBeginUtf8
)

const (
	StateRowCount = 16
	InputColCount = 256
)

var stateNames = []string{
	"Anywhere",
	"CsiEntry",
	"CsiIgnore",
	"CsiIntermediate",
	"CsiParam",
	"DcsEntry",
	"DcsIgnore",
	"DcsIntermediate",
	"DcsParam",
	"DcsPassthrough",
	"Escape",
	"EscapeIntermediate",
	"Ground",
	"OscString",
	"SosPmApcString",
	"Utf8",
}

var actionNames = []string{
	"None",
	"Clear",
	"Collect",
	"CsiDispatch",
	"EscDispatch",
	"Execute",
	"Hook",
	"Ignore",
	"OscEnd",
	"OscPut",
	"OscStart",
	"Param",
	"Print",
	"Put",
	"Unhook",
	"BeginUtf8",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%v)", uint8(s))
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%v)", uint8(a))
}

type SymbolKind string

const (
	SymbolKindState  = SymbolKind("state")
	SymbolKindAction = SymbolKind("action")
)

// Symbol is a resolved identifier tagged with the family it belongs to.
// Exactly one of State and Action is meaningful, selected by Kind.
type Symbol struct {
	Kind   SymbolKind
	State  State
	Action Action
}

var symbols = map[string]Symbol{}

func init() {
	for i, name := range stateNames {
		symbols[name] = Symbol{
			Kind:  SymbolKindState,
			State: State(i),
		}
	}
	for i, name := range actionNames {
		symbols[name] = Symbol{
			Kind:   SymbolKindAction,
			Action: Action(i),
		}
	}
}

// ResolveSymbol looks an identifier up in the two fixed namespaces. The
// lookup is exact; there is no aliasing and no case folding.
func ResolveSymbol(name string) (Symbol, bool) {
	sym, ok := symbols[name]
	return sym, ok
}

// StateNames returns the state names in numeric code order.
func StateNames() []string {
	names := make([]string, len(stateNames))
	copy(names, stateNames)
	return names
}

// ActionNames returns the action names in numeric code order.
func ActionNames() []string {
	names := make([]string, len(actionNames))
	copy(names, actionNames)
	return names
}
