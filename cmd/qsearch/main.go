package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/theapemachine/qsearch"
)

// scenario is the YAML shape for a saved search: the database, the value
// to look for, and optional register overrides.
type scenario struct {
	Database []int  `yaml:"database"`
	Target   int    `yaml:"target"`
	Sequence string `yaml:"sequence"`
	Base     string `yaml:"base"`
	AddrBits int    `yaml:"addr_bits"`
	DataBits int    `yaml:"data_bits"`
}

func main() {
	var (
		db       = flag.String("db", "1,2,3,0", "comma-separated database values")
		target   = flag.Int("target", 3, "value to search for")
		sequence = flag.String("dna", "", "DNA sequence to search instead of -db")
		base     = flag.String("base", "", "nucleotide to locate in -dna mode")
		file     = flag.String("scenario", "", "YAML scenario file overriding the flags")
		addrBits = flag.Int("addr-bits", 0, "override address register width")
		dataBits = flag.Int("data-bits", 0, "override data register width")
		shots    = flag.Int("shots", 0, "also draw this many measurement samples")
	)
	flag.Parse()

	sc := scenario{Target: *target, Sequence: *sequence, Base: *base}
	if *file != "" {
		raw, err := os.ReadFile(*file)
		if err != nil {
			fatal(err)
		}
		if err := yaml.Unmarshal(raw, &sc); err != nil {
			fatal(err)
		}
	} else if sc.Sequence == "" {
		var err error
		if sc.Database, err = parseDatabase(*db); err != nil {
			fatal(err)
		}
	}

	var opts []qsearch.PlanOption
	if *addrBits > 0 {
		opts = append(opts, qsearch.WithAddressBits(*addrBits))
	}
	if sc.AddrBits > 0 {
		opts = append(opts, qsearch.WithAddressBits(sc.AddrBits))
	}
	if *dataBits > 0 {
		opts = append(opts, qsearch.WithDataBits(*dataBits))
	}
	if sc.DataBits > 0 {
		opts = append(opts, qsearch.WithDataBits(sc.DataBits))
	}

	search, err := buildSearch(sc, opts)
	if err != nil {
		fatal(err)
	}

	plan := search.Plan()
	fmt.Println("--- QRAM Grover Search ---")
	if sc.Sequence != "" {
		fmt.Printf("Sequence: %s\nBase: %s\n", sc.Sequence, sc.Base)
	} else {
		fmt.Printf("Database: %v\nTarget: %d\n", sc.Database, sc.Target)
	}
	fmt.Printf("Address qubits: %d (%d states)\n", plan.AddrBits, plan.Addresses())
	fmt.Printf("Data qubits: %d\n", plan.DataBits)

	fmt.Println("Circuit:")
	circuit := search.Circuit()
	for k, v := range qsearch.MeasureCircuit(circuit, plan).Export() {
		fmt.Printf("  %s: %v\n", k, v)
	}

	probs, err := search.Run()
	if err != nil {
		fatal(err)
	}

	fmt.Println("\n--- Address probabilities ---")
	for _, r := range search.Results(probs) {
		line := fmt.Sprintf("Address %d (%s): Probability=%.4f", r.Address, r.Bits, r.Probability)
		if r.Populated {
			line = fmt.Sprintf("%s Value=%d", line, r.Value)
		}
		if r.Match {
			line += " <- target"
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Print(qsearch.NewHistogram().Render(probs))

	if *shots > 0 {
		r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		fmt.Printf("\n--- %d measurement shots ---\n", *shots)
		fmt.Print(qsearch.NewHistogram().RenderCounts(probs.Tally(*shots, r)))
	}
}

// buildSearch picks the DNA or number mode from the scenario.
func buildSearch(sc scenario, opts []qsearch.PlanOption) (*qsearch.Search, error) {
	if sc.Sequence != "" {
		if sc.Base == "" {
			return nil, fmt.Errorf("dna mode needs a nucleotide to locate")
		}
		return qsearch.NewDNASearch(sc.Sequence, sc.Base[0], opts...)
	}
	return qsearch.NewSearch(sc.Database, sc.Target, opts...)
}

func parseDatabase(csv string) ([]int, error) {
	fields := strings.Split(csv, ",")
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("database value %q: %w", f, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("database value %d: values must be non-negative", v)
		}
		values = append(values, v)
	}
	return values, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "qsearch:", err)
	os.Exit(1)
}
