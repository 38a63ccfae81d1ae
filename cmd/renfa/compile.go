package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	verr "github.com/renfa/renfa/error"
	"github.com/renfa/renfa/grammar"
	"github.com/renfa/renfa/spec"
	"github.com/spf13/cobra"
)

var compileFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile",
		Short:   "Compile a grammar you defined into an ε-NFA",
		Example: `  renfa compile grammar.renfa -o grammar.json`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runCompile,
	}
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
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

	var grmPath string
	if len(args) > 0 {
		grmPath = args[0]
	}
	defer func() {
		if retErr == nil {
			return
		}
		var specErrs verr.SpecErrors
		switch err := retErr.(type) {
		case verr.SpecErrors:
			specErrs = err
		case *verr.SpecError:
			specErrs = verr.SpecErrors{err}
		default:
			return
		}
		for _, err := range specErrs {
			if len(args) > 0 {
				err.FilePath = grmPath
				err.SourceName = grmPath
			} else {
				err.FilePath = grmPath
				err.SourceName = "stdin"
			}
		}
	}()

	if grmPath == "" {
		var err error
		tmpDirPath, err = os.MkdirTemp("", "renfa-compile-*")
		if err != nil {
			return err
		}

		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}

		grmPath = filepath.Join(tmpDirPath, "stdin.renfa")
		err = os.WriteFile(grmPath, src, 0600)
		if err != nil {
			return err
		}
	}

	gram, err := readGrammar(grmPath)
	if err != nil {
		return err
	}

	automaton, err := grammar.Compile(gram)
	if err != nil {
		return err
	}

	err = writeCompiledAutomaton(automaton, *compileFlags.output)
	if err != nil {
		return fmt.Errorf("Cannot write an output file: %w", err)
	}

	return nil
}

func readGrammar(path string) (*grammar.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the grammar file %s: %w", path, err)
	}
	defer f.Close()

	ast, err := spec.Parse(f)
	if err != nil {
		return nil, err
	}

	b := grammar.GrammarBuilder{
		AST: ast,
	}
	return b.Build()
}

func writeCompiledAutomaton(automaton *spec.CompiledAutomaton, path string) error {
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

	b, err := json.Marshal(automaton)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v\n", string(b))

	return nil
}
