package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-city/internal/city"
	"github.com/vovakirdan/math-city/internal/mathgen"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List building kinds",
	Long:  `Shows every building kind with its footprint and the problems it can ask.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printKinds(cmd.OutOrStdout())
	},
}

func printKinds(w io.Writer) {
	fmt.Fprintln(w, "Building kinds:")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %-8s  %-4s  %-18s  %-9s  %s\n", "Name", "Size", "Problems", "Cost", "Description")
	fmt.Fprintf(w, "  %-8s  %-4s  %-18s  %-9s  %s\n", "----", "----", "--------", "----", "-----------")

	for _, k := range city.Kinds() {
		info := k.Info()
		problems := make([]string, 0, 2)
		for _, p := range mathgen.AllowedKinds(k) {
			problems = append(problems, string(p))
		}
		fmt.Fprintf(w, "  %-8s  %-4s  %-18s  %-9s  %s\n",
			info.Name,
			fmt.Sprintf("%dx%d", info.Size, info.Size),
			strings.Join(problems, ", "),
			info.Cost,
			info.Description,
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mathcity quiz <name>' to practice a kind's problems.")
}
