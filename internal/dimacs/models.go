package dimacs

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParseModels reads a file of expected models, one per line, each a sequence
// of signed 1-indexed literals terminated by (or simply followed by, since
// the terminator is optional per line here) a 0. Used by tests to check a
// solver's output against known-good models for a given instance.
func ParseModels(filename string) ([][]bool, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	models := [][]bool{}
	scanner := bufio.NewScanner(file)
	for i := 0; scanner.Scan(); i++ {
		line := scanner.Text()
		if line == "" {
			continue
		}

		literals := strings.Fields(line)
		model := make([]bool, 0, len(literals))

		for _, ls := range literals {
			if ls == "0" {
				continue
			}
			l, err := strconv.Atoi(ls)
			if err != nil {
				return nil, fmt.Errorf("error parsing literal %s: %w", ls, err)
			}
			model = append(model, l > 0)
		}

		models = append(models, model)
	}

	return models, nil
}
