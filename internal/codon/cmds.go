package codon

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// AnalyzeCmd expands a degenerate codon and prints its amino-acid
// distribution as a table. With --csv the flattened rows are also written
// to a file.
func AnalyzeCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno degenerate codon passed.")
	}
	code := args[0]

	analysis, err := Analyze(code)
	if err != nil {
		stderr.Fatalln(err)
	}

	PrintAnalyses(os.Stdout, []string{strings.ToUpper(code)}, []*Analysis{analysis})

	if csvPath, _ := cmd.Flags().GetString("csv"); csvPath != "" {
		if err := writeCSV(csvPath, []string{strings.ToUpper(code)}, []*Analysis{analysis}); err != nil {
			stderr.Fatalln(err)
		}
		fmt.Printf("wrote %s\n", csvPath)
	}
}

// ExpandCmd lists every concrete codon a degenerate codon represents.
func ExpandCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno degenerate codon passed.")
	}

	codons, err := Expand(args[0])
	if err != nil {
		stderr.Fatalln(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(w, "codon\taa\tproperty\t\n")
	for _, c := range codons {
		aa := TranslateCodon(c)
		fmt.Fprintf(w, "%s\t%s\t%s\n", c, string(aa), CategoryOf(aa))
	}
	w.Flush()
	fmt.Printf("\n%d codons\n", len(codons))
}

// GenerateCmd reverse-synthesizes degenerate codons covering the passed
// amino acids under the --strategy flag.
func GenerateCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno amino acids passed.")
	}

	strategyName, _ := cmd.Flags().GetString("strategy")
	strategy, err := ParseStrategy(strategyName)
	if err != nil {
		stderr.Fatalln(err)
	}

	result, err := Synthesize(strings.Join(args, ""), strategy)
	if err != nil {
		stderr.Fatalln(err)
	}

	fmt.Printf("target: %s (%s)\n\n", result.Target, result.Strategy)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(w, "codon\tcodons\tstop%%\textra amino acids\t\n")
	for _, cand := range result.Candidates {
		extras := strings.Join(cand.Evaluation.ExtraAminoAcids, "")
		if extras == "" {
			extras = "-"
		}
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%s\n",
			cand.Codon,
			cand.Evaluation.TotalCodons,
			cand.Evaluation.StopFrequency,
			extras,
		)
	}
	w.Flush()
}

// TranslateCmd translates a DNA sequence to protein. With --revcomp the
// reverse complement is translated instead.
func TranslateCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno sequence passed.")
	}
	seq := strings.Join(args, "")

	if rc, _ := cmd.Flags().GetBool("revcomp"); rc {
		seq = ReverseComplement(seq)
	}

	protein, err := TranslateSequence(seq)
	if err != nil {
		stderr.Fatalln(err)
	}
	fmt.Println(protein)
}

// PrintAnalyses writes per-position analysis tables plus stop warnings
// and category aggregates.
func PrintAnalyses(out io.Writer, names []string, analyses []*Analysis) {
	for i, a := range analyses {
		fmt.Fprintf(out, "%s (%d codons)\n", names[i], a.TotalCodons)

		w := tabwriter.NewWriter(out, 0, 4, 3, ' ', 0)
		fmt.Fprintf(w, "aa\tcount\tfreq%%\tproperty\t\n")
		for _, stat := range a.AminoAcids {
			fmt.Fprintf(w, "%s\t%d\t%.2f\t%s\n", stat.Symbol, stat.Count, stat.Frequency, stat.Property)
		}
		w.Flush()

		if a.HasStop {
			fmt.Fprintf(out, "warning: contains stop codons (%.2f%%)\n", a.StopFrequency)
		}
		for _, prop := range a.Properties {
			fmt.Fprintf(out, "%s: %.2f%%\n", prop.Property, prop.Frequency)
		}
		fmt.Fprintln(out)
	}
}

// writeCSV writes flattened analysis rows to a CSV file.
func writeCSV(path string, names []string, analyses []*Analysis) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(ExportHeader); err != nil {
		f.Close()
		return err
	}
	if err := cw.WriteAll(ExportRows(names, analyses)); err != nil {
		f.Close()
		return err
	}
	cw.Flush()

	return f.Close()
}
