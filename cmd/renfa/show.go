package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/renfa/renfa/spec"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show <compiled automaton path>",
		Short:   "Print a compiled automaton in a readable format",
		Example: `  renfa show grammar.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	automaton, err := readCompiledAutomaton(args[0])
	if err != nil {
		return fmt.Errorf("Cannot read a compiled automaton: %w", err)
	}

	writeDescription(automaton)

	return nil
}

func writeDescription(a *spec.CompiledAutomaton) {
	fmt.Fprintf(os.Stdout, "# %v\n\n", a.Name)
	fmt.Fprintf(os.Stdout, "Initial state:   %v\n", a.States.Labels[a.States.InitialState])
	fmt.Fprintf(os.Stdout, "Accepting state: %v\n", a.States.Labels[a.States.AcceptingState])
	fmt.Fprintf(os.Stdout, "Alphabet:        %v\n", strings.Join(a.Transitions.Symbols[1:], ", "))

	fmt.Fprintf(os.Stdout, "\n## States\n\n")
	{
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"State", "ε-Closure"})
		for state := 1; state <= a.States.StateCount; state++ {
			table.Append([]string{
				a.States.Labels[state],
				formatStateSet(a, a.EpsilonClosures[state]),
			})
		}
		table.Render()
	}

	fmt.Fprintf(os.Stdout, "\n## Transitions\n\n")
	{
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"From", "Symbol", "To"})
		for state := 1; state <= a.States.StateCount; state++ {
			for sym := 0; sym < a.Transitions.SymbolCount; sym++ {
				dsts := a.Transitions.Entries[state*a.Transitions.SymbolCount+sym]
				if len(dsts) == 0 {
					continue
				}
				symText := "ε"
				if sym != 0 {
					symText = a.Transitions.Symbols[sym]
				}
				table.Append([]string{
					a.States.Labels[state],
					symText,
					formatStateSet(a, dsts),
				})
			}
		}
		table.Render()
	}
}

func formatStateSet(a *spec.CompiledAutomaton, states []int) string {
	labels := make([]string, len(states))
	for i, state := range states {
		labels[i] = a.States.Labels[state]
	}
	return fmt.Sprintf("{%v}", strings.Join(labels, ", "))
}
