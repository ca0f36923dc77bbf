package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/openvt/vtgen/spec"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Print a compiled table in a readable format",
		Example: `  vtgen show ansi.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	tab, err := readCompiledTable(args[0])
	if err != nil {
		return err
	}

	desc, err := spec.DescribeTable(tab)
	if err != nil {
		return err
	}

	return writeDescription(os.Stdout, desc)
}

func readCompiledTable(path string) (*spec.CompiledTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the compiled table %s: %w", path, err)
	}
	defer f.Close()

	d, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tab := &spec.CompiledTable{}
	err = json.Unmarshal(d, tab)
	if err != nil {
		return nil, err
	}

	return tab, nil
}

const descTemplate = `name: {{ .Name }}
{{ range .States -}}
{{ if .Spans -}}
{{ .Name }}:
{{ range .Spans }}    {{ . }}
{{ end }}
{{- end }}
{{- end }}`

func writeDescription(w io.Writer, desc *spec.Description) error {
	tmpl, err := template.New("desc").Parse(descTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, desc)
}
