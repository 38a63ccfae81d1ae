package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/renfa/renfa/driver"
	"github.com/renfa/renfa/spec"
	"github.com/spf13/cobra"
)

var acceptFlags = struct {
	source *string
	trace  *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "accept <compiled automaton path>",
		Short:   "Decide whether the ε-NFA accepts input strings",
		Example: `  echo "ab" | renfa accept grammar.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runAccept,
	}
	acceptFlags.source = cmd.Flags().StringP("source", "s", "", "source file path containing input strings, one per line (default stdin)")
	acceptFlags.trace = cmd.Flags().Bool("trace", false, "print the frontier of states after every input symbol")
	rootCmd.AddCommand(cmd)
}

func runAccept(cmd *cobra.Command, args []string) error {
	automaton, err := readCompiledAutomaton(args[0])
	if err != nil {
		return fmt.Errorf("Cannot read a compiled automaton: %w", err)
	}

	src := os.Stdin
	if *acceptFlags.source != "" {
		f, err := os.Open(*acceptFlags.source)
		if err != nil {
			return fmt.Errorf("Cannot open the source file %s: %w", *acceptFlags.source, err)
		}
		defer f.Close()
		src = f
	}

	var opts []driver.RecognizerOption
	if *acceptFlags.trace {
		opts = append(opts, driver.TraceFrontiers())
	}

	r, err := driver.NewRecognizer(automaton, opts...)
	if err != nil {
		return err
	}

	alphabet := map[string]struct{}{}
	for _, t := range r.Alphabet() {
		alphabet[t] = struct{}{}
	}

	s := bufio.NewScanner(src)
	for s.Scan() {
		input := s.Text()

		// An out-of-alphabet symbol is not a recognition error; the
		// automaton just has no transition for it. The warning only tells
		// the user why the input will be rejected.
		for _, c := range input {
			if _, ok := alphabet[string(c)]; !ok {
				fmt.Fprintf(os.Stderr, "warning: input symbol '%v' is not in the alphabet\n", string(c))
			}
		}

		result := r.Recognize(input)
		verdict := "reject"
		if result.Accepted {
			verdict = "accept"
		}
		fmt.Fprintf(os.Stdout, "%q: %v\n", input, verdict)

		if *acceptFlags.trace {
			printFrontiers(r, input, result.Frontiers)
		}
	}
	return s.Err()
}

func printFrontiers(r *driver.Recognizer, input string, frontiers []driver.Frontier) {
	symbols := []string{"ε"}
	for _, c := range input {
		symbols = append(symbols, string(c))
	}
	for i, frontier := range frontiers {
		labels := make([]string, len(frontier))
		for j, state := range frontier {
			labels[j] = r.StateLabel(state)
		}
		fmt.Fprintf(os.Stdout, "    %v: {%v}\n", symbols[i], strings.Join(labels, ", "))
	}
}

func readCompiledAutomaton(path string) (*spec.CompiledAutomaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	automaton := &spec.CompiledAutomaton{}
	err = json.Unmarshal(data, automaton)
	if err != nil {
		return nil, err
	}
	return automaton, nil
}
