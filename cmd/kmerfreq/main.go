// Command kmerfreq provides a CLI for k-mer frequency analysis.
//
// Usage:
//
//	kmerfreq [command] [options]
//
// Commands:
//
//	count       Count k-mers in a sequence
//	validate    Validate and normalize a sequence
//	compo       Report base composition
//	info        Show sequence information
//	filter      Filter a gene-expression table by threshold
//	version     Show version information
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/genomica-lab/kmerfreq/internal/expression"
	"github.com/genomica-lab/kmerfreq/pkg/kmerfreq"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "count":
		countCmd(os.Args[2:])
	case "validate":
		validateCmd(os.Args[2:])
	case "compo":
		compoCmd(os.Args[2:])
	case "info":
		infoCmd(os.Args[2:])
	case "filter":
		filterCmd(os.Args[2:])
	case "version":
		fmt.Println(kmerfreq.Info())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`kmerfreq - k-mer frequency analysis tool

Usage:
  kmerfreq <command> [options]

Commands:
  count     Count k-mers in a sequence
  validate  Validate and normalize a sequence
  compo     Report base composition
  info      Show sequence information
  filter    Filter a gene-expression table by threshold
  version   Show version information
  help      Show this help message

Use "kmerfreq <command> -h" for more information about a command.`)
}

// fatal prints an error to stderr and exits non-zero. All validation
// errors from the core surface here unchanged.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// loadSequences resolves the -file / -seq pair shared by most commands.
func loadSequences(file, seq string, fs *flag.FlagSet) []*kmerfreq.Sequence {
	if file == "" && seq == "" {
		fmt.Fprintln(os.Stderr, "Error: Either -file or -seq is required")
		fs.Usage()
		os.Exit(1)
	}

	if file != "" {
		sequences, err := kmerfreq.ReadFASTA(file)
		if err != nil {
			fatal(err)
		}
		if len(sequences) == 0 {
			fmt.Fprintln(os.Stderr, "No sequences found in file")
			os.Exit(1)
		}
		return sequences
	}

	s, err := kmerfreq.NewSequence(seq)
	if err != nil {
		fatal(err)
	}
	return []*kmerfreq.Sequence{s}
}

func countCmd(args []string) {
	fs := flag.NewFlagSet("count", flag.ExitOnError)
	file := fs.String("file", "", "FASTA file to analyze")
	seq := fs.String("seq", "", "Sequence string to analyze")
	k := fs.Int("k", 0, "K-mer size (required, positive, <= sequence length)")
	sortBy := fs.String("sort", "appearance", "Output order: appearance, frequency, or kmer")
	verbose := fs.Bool("verbose", false, "Print run statistics to stderr")
	fs.Parse(args)

	mode, err := kmerfreq.ParseSortMode(*sortBy)
	if err != nil {
		fatal(err)
	}

	sequences := loadSequences(*file, *seq, fs)

	for _, s := range sequences {
		counter, err := kmerfreq.CountKMers(s, *k)
		if err != nil {
			fatal(err)
		}

		if *verbose {
			summary := kmerfreq.CounterSummary(counter)
			fmt.Fprintf(os.Stderr, "Sequence length: %d\n", s.Len())
			fmt.Fprintf(os.Stderr, "Total k-mers: %d\n", summary.Total)
			fmt.Fprintf(os.Stderr, "Unique k-mers: %d\n", summary.Unique)
			fmt.Fprintf(os.Stderr, "Most frequent: %s (%dx)\n", summary.TopKMer, summary.TopCount)
		}

		entries, err := counter.Ordered(mode)
		if err != nil {
			fatal(err)
		}

		if s.ID != "" {
			fmt.Printf("# sequence: %s\n", s.ID)
		}
		fmt.Println(kmerfreq.Format(entries))
	}
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	seq := fs.String("seq", "", "Sequence string to validate")
	fs.Parse(args)

	if *seq == "" {
		fmt.Fprintln(os.Stderr, "Error: -seq is required")
		fs.Usage()
		os.Exit(1)
	}

	s, err := kmerfreq.NewSequence(*seq)
	if err != nil {
		fatal(err)
	}
	fmt.Println(s.Bases)
}

func compoCmd(args []string) {
	fs := flag.NewFlagSet("compo", flag.ExitOnError)
	file := fs.String("file", "", "FASTA file to analyze")
	seq := fs.String("seq", "", "Sequence string to analyze")
	fs.Parse(args)

	var raw string
	if *file != "" {
		// Composition tolerates dirty input, so read the file raw and
		// clean it rather than failing on the first bad base.
		data, err := os.ReadFile(*file)
		if err != nil {
			fatal(err)
		}
		raw = stripFASTAHeaders(string(data))
	} else if *seq != "" {
		raw = *seq
	} else {
		fmt.Fprintln(os.Stderr, "Error: Either -file or -seq is required")
		fs.Usage()
		os.Exit(1)
	}

	cleaned := kmerfreq.Clean(raw)
	if len(cleaned.Cleaned) == 0 {
		fmt.Fprintln(os.Stderr, "Error: sequence has no valid bases")
		os.Exit(1)
	}

	s, err := kmerfreq.NewSequence(cleaned.Cleaned)
	if err != nil {
		fatal(err)
	}

	bc := s.BaseCounts()
	fmt.Printf("Length: %d bp\n", s.Len())
	for _, base := range []rune{'A', 'T', 'G', 'C'} {
		var n int
		switch base {
		case 'A':
			n = bc.A
		case 'T':
			n = bc.T
		case 'G':
			n = bc.G
		case 'C':
			n = bc.C
		}
		fmt.Printf("%c: %d (%.2f%%)\n", base, n, bc.Percent(base))
	}
	if cleaned.InvalidCount > 0 {
		fmt.Printf("Invalid characters dropped: %d\n", cleaned.InvalidCount)
	}
}

func infoCmd(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	file := fs.String("file", "", "FASTA file to analyze")
	seq := fs.String("seq", "", "Sequence string to analyze")
	fs.Parse(args)

	sequences := loadSequences(*file, *seq, fs)

	for i, s := range sequences {
		summary := kmerfreq.SequenceSummary(s)
		fmt.Printf("Sequence %d:\n", i+1)
		if s.ID != "" {
			fmt.Printf("  ID: %s\n", s.ID)
		}
		fmt.Printf("  Length: %d bp\n", summary.Length)
		fmt.Printf("  GC Content: %.2f%%\n", summary.GCContent*100)
		fmt.Printf("  AT Content: %.2f%%\n", summary.ATContent*100)
		fmt.Printf("  Base Counts: A=%d, T=%d, G=%d, C=%d\n",
			summary.Bases.A, summary.Bases.T, summary.Bases.G, summary.Bases.C)
		fmt.Println()
	}
}

func filterCmd(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	file := fs.String("file", "", "TSV file with 'gene' and 'expression' columns")
	threshold := fs.Float64("threshold", 0.0, "Minimum expression value")
	fs.Parse(args)

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		fs.Usage()
		os.Exit(1)
	}

	records, skipped, err := expression.ReadTableFile(*file)
	if err != nil {
		fatal(err)
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "Warning: skipped %d invalid rows\n", skipped)
	}

	genes := expression.FilterByThreshold(records, *threshold)
	if len(genes) == 0 {
		fmt.Printf("No genes found with expression >= %g.\n", *threshold)
		return
	}

	fmt.Printf("Filtered genes (threshold: %g):\n", *threshold)
	for _, gene := range genes {
		fmt.Println(gene)
	}
	fmt.Printf("Total: %d genes\n", len(genes))
}

// stripFASTAHeaders drops '>' header lines, keeping sequence data only.
func stripFASTAHeaders(data string) string {
	var out []byte
	skip := false
	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case c == '>':
			skip = true
		case c == '\n':
			skip = false
			out = append(out, c)
		case !skip:
			out = append(out, c)
		}
	}
	return string(out)
}
