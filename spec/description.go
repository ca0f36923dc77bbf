package spec

import "fmt"

// Description is a human-readable view of a compiled table, used by the show
// command. Cells still holding the default transition are omitted.
type Description struct {
	Name   string
	States []*StateDescription
}

type StateDescription struct {
	Name  string
	Spans []*TransitionSpan
}

// TransitionSpan is a maximal run of consecutive input bytes that share one
// packed transition within a state row.
type TransitionSpan struct {
	Start     int
	End       int
	NextState string
	Action    string
}

func DescribeTable(t *CompiledTable) (*Description, error) {
	err := t.validate()
	if err != nil {
		return nil, err
	}

	d := &Description{
		Name: t.Name,
	}
	for row := 0; row < t.StateCount; row++ {
		sd := &StateDescription{
			Name: t.States[row],
		}
		var span *TransitionSpan
		for col := 0; col < t.InputCount; col++ {
			e := t.Entries[row*t.InputCount+col]
			if e == 0 {
				span = nil
				continue
			}
			next := e & 0x0f
			act := e >> 4
			if span != nil && span.NextState == t.States[next] && span.Action == t.Actions[act] {
				span.End = col
				continue
			}
			span = &TransitionSpan{
				Start:     col,
				End:       col,
				NextState: t.States[next],
				Action:    t.Actions[act],
			}
			sd.Spans = append(sd.Spans, span)
		}
		d.States = append(d.States, sd)
	}
	return d, nil
}

func (s *TransitionSpan) String() string {
	if s.Start == s.End {
		return fmt.Sprintf("%#04x => (%v, %v)", s.Start, s.NextState, s.Action)
	}
	return fmt.Sprintf("%#04x..%#04x => (%v, %v)", s.Start, s.End, s.NextState, s.Action)
}
