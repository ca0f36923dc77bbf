package driver

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/openvt/vtgen/spec"
	"github.com/openvt/vtgen/table"
)

const tableSrcTemplate = `// Code generated by vtgen-go. DO NOT EDIT.

package {{ .PkgName }}

// States of the {{ .Name }} automaton in table row order.
const (
{{- range $i, $name := .States }}
	State{{ $name }} uint8 = {{ $i }}
{{- end }}
)

// Actions of the {{ .Name }} automaton.
const (
{{- range $i, $name := .Actions }}
	Action{{ $name }} uint8 = {{ $i }}
{{- end }}
)

// {{ .VarName }} maps (current state, input byte) to a packed transition.
// The next state is in the low nibble, the action in the high nibble.
var {{ .VarName }} = [{{ .StateCount }}][{{ .InputCount }}]uint8{
{{- range .Rows }}
	{{ . }}
{{- end }}
}
`

// GenTable generates Go source declaring the packed state table along with
// the state and action codes it is indexed by.
func GenTable(tab *spec.CompiledTable, pkgName string) ([]byte, error) {
	if tab.StateCount != table.StateRowCount || tab.InputCount != table.InputColCount {
		return nil, fmt.Errorf("unexpected table dimensions; want: %vx%v, got: %vx%v", table.StateRowCount, table.InputColCount, tab.StateCount, tab.InputCount)
	}
	if len(tab.Entries) != tab.StateCount*tab.InputCount {
		return nil, fmt.Errorf("unexpected entry count; want: %v, got: %v", tab.StateCount*tab.InputCount, len(tab.Entries))
	}

	rows := make([]string, 0, tab.StateCount)
	for r := 0; r < tab.StateCount; r++ {
		var b strings.Builder
		b.WriteString("{")
		for c := 0; c < tab.InputCount; c++ {
			fmt.Fprintf(&b, "%#04x, ", tab.Entries[r*tab.InputCount+c])
		}
		b.WriteString("},")
		rows = append(rows, b.String())
	}

	tmpl, err := template.New("table").Parse(tableSrcTemplate)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		PkgName    string
		Name       string
		VarName    string
		States     []string
		Actions    []string
		StateCount int
		InputCount int
		Rows       []string
	}{
		PkgName:    pkgName,
		Name:       tab.Name,
		VarName:    tab.Name + "StateTable",
		States:     tab.States,
		Actions:    tab.Actions,
		StateCount: tab.StateCount,
		InputCount: tab.InputCount,
		Rows:       rows,
	})
	if err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}
