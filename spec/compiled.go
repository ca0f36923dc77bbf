package spec

import "fmt"

// Dimensions of the compiled table. Consumers index the table as
// entries[state*InputCount+input] and rely on these values never changing.
const (
	StateCount  = 16
	ActionCount = 16
	InputCount  = 256
)

// CompiledTable is the compiled artifact. Entries holds the packed
// transitions in row-major order: the row index is the numeric state code and
// the column index is the input byte. Each entry carries the next state in
// its low nibble and the action in its high nibble.
type CompiledTable struct {
	Name       string   `json:"name"`
	States     []string `json:"states"`
	Actions    []string `json:"actions"`
	StateCount int      `json:"state_count"`
	InputCount int      `json:"input_count"`
	Entries    []int    `json:"entries"`
}

func (t *CompiledTable) validate() error {
	if t.StateCount != StateCount || t.InputCount != InputCount {
		return fmt.Errorf("a compiled table must have %v rows of %v columns; rows: %v, columns: %v", StateCount, InputCount, t.StateCount, t.InputCount)
	}
	if len(t.Entries) != StateCount*InputCount {
		return fmt.Errorf("a compiled table must have %v entries; got: %v", StateCount*InputCount, len(t.Entries))
	}
	if len(t.States) != StateCount || len(t.Actions) != ActionCount {
		return fmt.Errorf("a compiled table must name %v states and %v actions; states: %v, actions: %v", StateCount, ActionCount, len(t.States), len(t.Actions))
	}
	for i, e := range t.Entries {
		if e < 0 || e > 0xff {
			return fmt.Errorf("entry %v is not a byte: %v", i, e)
		}
	}
	return nil
}

// MarshalBinary serializes the table as a raw blob of exactly
// StateCount*InputCount bytes in row-major order.
func (t *CompiledTable) MarshalBinary() ([]byte, error) {
	err := t.validate()
	if err != nil {
		return nil, err
	}
	b := make([]byte, len(t.Entries))
	for i, e := range t.Entries {
		b[i] = byte(e)
	}
	return b, nil
}

// UnmarshalBinary is the inverse of MarshalBinary. The symbol name lists are
// not part of the blob, so the table keeps whatever names it already has.
func (t *CompiledTable) UnmarshalBinary(data []byte) error {
	if len(data) != StateCount*InputCount {
		return fmt.Errorf("a table blob must be %v bytes long; got: %v", StateCount*InputCount, len(data))
	}
	entries := make([]int, len(data))
	for i, b := range data {
		entries[i] = int(b)
	}
	t.StateCount = StateCount
	t.InputCount = InputCount
	t.Entries = entries
	return nil
}
