package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	verr "github.com/openvt/vtgen/error"
	"github.com/openvt/vtgen/spec"
	"github.com/openvt/vtgen/table"
)

var compileFlags = struct {
	output *string
	format *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile",
		Short:   "Compile transition rules into a state table",
		Example: `  vtgen compile ansi.vtgen -o ansi.json`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runCompile,
	}
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	compileFlags.format = cmd.Flags().StringP("format", "f", "json", "output format (json|binary)")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) (retErr error) {
	var tmpDirPath string
	defer func() {
		if tmpDirPath == "" {
			return
		}
		os.RemoveAll(tmpDirPath)
	}()

	var declPath string
	if len(args) > 0 {
		declPath = args[0]
	}
	defer func() {
		if retErr != nil {
			specErrs, ok := retErr.(verr.SpecErrors)
			if ok {
				for _, err := range specErrs {
					err.FilePath = declPath
					if len(args) > 0 {
						err.SourceName = declPath
					} else {
						err.SourceName = "stdin"
					}
				}
			}
		}
	}()

	switch *compileFlags.format {
	case "json", "binary":
	default:
		return fmt.Errorf("unsupported output format: %v", *compileFlags.format)
	}

	if declPath == "" {
		var err error
		tmpDirPath, err = os.MkdirTemp("", "vtgen-compile-*")
		if err != nil {
			return err
		}

		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}

		declPath = filepath.Join(tmpDirPath, "stdin.vtgen")
		err = os.WriteFile(declPath, src, 0600)
		if err != nil {
			return err
		}
	}

	tab, err := compileTable(declPath)
	if err != nil {
		return err
	}

	err = writeCompiledTable(tab, *compileFlags.format, *compileFlags.output)
	if err != nil {
		return fmt.Errorf("Cannot write an output file: %w", err)
	}

	return nil
}

func compileTable(path string) (*spec.CompiledTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the declaration file %s: %w", path, err)
	}
	defer f.Close()

	ast, err := spec.Parse(f)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("parsed %v state blocks", len(ast.Blocks))

	b := table.TableBuilder{
		AST: ast,
	}
	tab, err := b.Build()
	if err != nil {
		return nil, err
	}
	logrus.Debugf("compiled table %v: %v rows of %v columns", tab.Name, tab.StateCount, tab.InputCount)
	return tab, nil
}

func writeCompiledTable(tab *spec.CompiledTable, format, path string) error {
	var w io.Writer
	if path != "" {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	switch format {
	case "binary":
		b, err := tab.MarshalBinary()
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		b, err := json.Marshal(tab)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%v\n", string(b))
		return nil
	}
}
