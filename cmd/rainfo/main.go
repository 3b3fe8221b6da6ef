// Command rainfo prints the constant tables of the ra-constants library.
//
// Usage:
//
//	rainfo [flags] [section ...]
//
// Without arguments it prints all sections.
//
// Examples:
//
//	rainfo schumann
//	rainfo materials coherence
//	rainfo -list
//	rainfo -version
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	ra "github.com/anywave/ra-constants"
	"github.com/anywave/ra-constants/coherence"
	"github.com/anywave/ra-constants/frequency"
	"github.com/anywave/ra-constants/phi"
)

type section struct {
	name  string
	print func(*tabwriter.Writer)
}

var registry = []section{
	{"schumann", printSchumann},
	{"pitches", printPitches},
	{"solfeggio", printSolfeggio},
	{"materials", printMaterials},
	{"phi", printPhi},
	{"coherence", printCoherence},
}

func main() {
	list := flag.Bool("list", false, "list available section names")
	version := flag.Bool("version", false, "print library version")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rainfo [flags] [section ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the constant tables of the ra-constants library.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints all sections.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  rainfo schumann solfeggio\n")
		fmt.Fprintf(os.Stderr, "  rainfo materials\n")
		fmt.Fprintf(os.Stderr, "  rainfo -list\n")
	}
	flag.Parse()

	if *version {
		fmt.Println(ra.Version)
		return
	}

	if *list {
		printList()
		return
	}

	sections := resolveSections(flag.Args())
	if len(sections) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching sections\n")
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, s := range sections {
		s.print(tw)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printList() {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveSections(names []string) []section {
	if len(names) == 0 {
		return registry
	}

	byName := make(map[string]section, len(registry))
	for _, s := range registry {
		byName[s.name] = s
	}

	var result []section
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		s, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown section %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, s)
	}
	return result
}

func printSchumann(tw *tabwriter.Writer) {
	fmt.Fprintf(tw, "Schumann Harmonic\tFrequency [Hz]\n")
	for i, f := range frequency.SchumannHarmonics() {
		fmt.Fprintf(tw, "%d\t%.2f\n", i+1, f)
	}
	fmt.Fprintln(tw)
}

func printPitches(tw *tabwriter.Writer) {
	fmt.Fprintf(tw, "Concert Pitch\tFrequency [Hz]\tCents vs A440\n")
	for _, p := range []struct {
		name string
		freq float64
	}{
		{"A432", frequency.A432},
		{"A440", frequency.A440},
	} {
		fmt.Fprintf(tw, "%s\t%.1f\t%+.2f\n", p.name, p.freq,
			frequency.CentsDifference(frequency.A440, p.freq))
	}
	fmt.Fprintln(tw)
}

func printSolfeggio(tw *tabwriter.Writer) {
	names := []string{"Ut", "Re", "Mi", "Fa", "Sol", "La"}
	fmt.Fprintf(tw, "Solfeggio Tone\tFrequency [Hz]\n")
	for i, f := range frequency.SolfeggioFrequencies() {
		fmt.Fprintf(tw, "%s\t%.1f\n", names[i], f)
	}
	fmt.Fprintln(tw)
}

func printMaterials(tw *tabwriter.Writer) {
	fmt.Fprintf(tw, "Material\tFrequency [Hz]\tAlpha Affinity\tConductivity\n")
	for _, m := range frequency.Materials() {
		p := m.Properties()
		fmt.Fprintf(tw, "%s\t%.1f\t%.2f\t%.2f\n", m, p.Frequency, p.AlphaAffinity, p.Conductivity)
	}
	fmt.Fprintln(tw)
}

func printPhi(tw *tabwriter.Writer) {
	fmt.Fprintf(tw, "Constant\tValue\n")
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"phi", phi.Phi},
		{"1/phi", phi.Inverse},
		{"phi^2", phi.Squared},
		{"sqrt2", phi.Sqrt2},
		{"sqrt3", phi.Sqrt3},
		{"sqrt5", phi.Sqrt5},
		{"pi", phi.Pi},
		{"tau", phi.Tau},
		{"e", phi.E},
	} {
		fmt.Fprintf(tw, "%s\t%.15f\n", c.name, c.value)
	}
	fmt.Fprintln(tw)
}

func printCoherence(tw *tabwriter.Writer) {
	fmt.Fprintf(tw, "Coherence Level\tLower\tUpper\n")
	for _, l := range coherence.Levels() {
		b := l.Band()
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\n", l, b.Lower, b.Upper)
	}
	fmt.Fprintln(tw)
}
