package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/openvt/vtgen/driver"
	"github.com/openvt/vtgen/spec"
)

func Execute() error {
	return generateCmd.Execute()
}

var generateFlags = struct {
	pkgName *string
}{}

var generateCmd = &cobra.Command{
	Use:           "vtgen-go",
	Short:         "Generate a Go state table",
	Long:          `vtgen-go generates Go source code declaring a compiled state table.`,
	Example:       `  vtgen-go ansi.json`,
	Args:          cobra.ExactArgs(1),
	RunE:          runGenerate,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	generateFlags.pkgName = generateCmd.Flags().StringP("package", "p", "main", "package name")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	tab, err := readCompiledTable(args[0])
	if err != nil {
		return fmt.Errorf("Cannot read a compiled table: %w", err)
	}

	b, err := driver.GenTable(tab, *generateFlags.pkgName)
	if err != nil {
		return fmt.Errorf("Failed to generate a state table: %w", err)
	}

	filePath := fmt.Sprintf("%v_table.go", tab.Name)

	f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("Failed to create an output file: %v", err)
	}
	defer f.Close()

	_, err = f.Write(b)
	if err != nil {
		return fmt.Errorf("Failed to write state table source code: %v", err)
	}

	return nil
}

func readCompiledTable(path string) (*spec.CompiledTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	tab := &spec.CompiledTable{}
	err = json.Unmarshal(data, tab)
	if err != nil {
		return nil, err
	}
	return tab, nil
}
