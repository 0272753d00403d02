package qsearch

import "fmt"

// Nucleotide encoding used by the DNA search: each base maps to a
// two-bit value, so one nucleotide fits in a two-qubit data register.
var nucleotideCodes = map[byte]int{
	'A': 0,
	'C': 1,
	'G': 2,
	'T': 3,
}

// EncodeSequence maps a DNA string onto database values, one entry per
// base position. Lowercase bases are accepted; anything outside ACGT is
// rejected.
func EncodeSequence(sequence string) ([]int, error) {
	values := make([]int, len(sequence))
	for i := 0; i < len(sequence); i++ {
		base := sequence[i]
		if base >= 'a' && base <= 'z' {
			base -= 'a' - 'A'
		}
		code, ok := nucleotideCodes[base]
		if !ok {
			return nil, fmt.Errorf("position %d: %q is not a nucleotide", i, sequence[i])
		}
		values[i] = code
	}
	return values, nil
}

// NewDNASearch builds a search locating one nucleotide within a sequence:
// the sequence positions become the address space and the base at each
// position the stored value.
func NewDNASearch(sequence string, nucleotide byte, opts ...PlanOption) (*Search, error) {
	database, err := EncodeSequence(sequence)
	if err != nil {
		return nil, err
	}
	target, err := EncodeSequence(string([]byte{nucleotide}))
	if err != nil {
		return nil, err
	}
	return NewSearch(database, target[0], opts...)
}
