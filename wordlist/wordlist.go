package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read returns the five letter words of r, one per line, in file order.
// Blank lines and lines starting with # are skipped; anything else that is
// not five lowercase letters is an error.
func Read(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		w := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if !valid(w) {
			return nil, fmt.Errorf("line %d: %q is not a five letter word", line, w)
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func valid(w string) bool {
	if len(w) != 5 {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

func ReadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	words, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// Dictionary reads the solution universe and appends extra, the hand picked
// words that are always candidates.
func Dictionary(path string, extra []string) ([]string, error) {
	words, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		seen[w] = true
	}
	for _, w := range extra {
		w = strings.ToLower(w)
		if valid(w) && !seen[w] {
			seen[w] = true
			words = append(words, w)
		}
	}
	return words, nil
}

// Set reads a list for membership tests, such as the plurals.
func Set(path string) (map[string]bool, error) {
	words, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	ret := make(map[string]bool, len(words))
	for _, w := range words {
		ret[w] = true
	}
	return ret, nil
}

// Solutions reads past answers in puzzle order and numbers them from 0.
func Solutions(path string) (map[string]int, error) {
	words, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	ret := make(map[string]int, len(words))
	for i, w := range words {
		if _, ok := ret[w]; !ok {
			ret[w] = i
		}
	}
	return ret, nil
}
