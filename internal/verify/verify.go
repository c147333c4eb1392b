// Package verify implements the reference-file verification collaborator
// described in spec.md §1/§6: a byte compare of the computed result
// against a reference file, not part of the Chudnovsky core itself.
package verify

import (
	"bufio"
	"os"
	"strings"
)

// Result reports how many leading digits of computed agree with
// reference.
type Result struct {
	AgreeingDigits int
	Matched        bool // true if every computed digit agreed
}

// File compares the computed output file against a reference file,
// stripping trailing CR/LF from both before comparing, per spec.md §6's
// reference-file format contract.
func File(computedPath, referencePath string) (Result, error) {
	computed, err := readTrimmed(computedPath)
	if err != nil {
		return Result{}, err
	}
	reference, err := readTrimmed(referencePath)
	if err != nil {
		return Result{}, err
	}
	return Strings(computed, reference), nil
}

// Strings compares two already-loaded strings digit by digit.
func Strings(computed, reference string) Result {
	n := len(computed)
	if len(reference) < n {
		n = len(reference)
	}
	agree := 0
	for i := 0; i < n; i++ {
		if computed[i] != reference[i] {
			break
		}
		agree++
	}
	return Result{
		AgreeingDigits: agree,
		Matched:        agree == len(computed),
	}
}

func readTrimmed(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	var b strings.Builder
	for sc.Scan() {
		b.WriteString(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return b.String(), nil
}
