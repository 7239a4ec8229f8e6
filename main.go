package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/ngrantham/watchsat/internal/dimacs"
	"github.com/ngrantham/watchsat/internal/oracle"
	"github.com/ngrantham/watchsat/internal/sat"
)

var flagCNF = flag.String(
	"cnf",
	"",
	"DIMACS CNF file to solve (required)",
)

var flagAlgorithm = flag.String(
	"algorithm",
	"dpll",
	"algorithm to use: simple, dpll, or cdcl",
)

type config struct {
	cnfFile   string
	algorithm string
}

func parseConfig() (*config, error) {
	flag.Parse()

	if *flagCNF == "" {
		return nil, fmt.Errorf("missing required -cnf flag")
	}
	return &config{
		cnfFile:   *flagCNF,
		algorithm: strings.ToLower(*flagAlgorithm),
	}, nil
}

func run(cfg *config) error {
	instance, err := dimacs.ParseFile(cfg.cnfFile)
	if err != nil {
		return err
	}

	var model []bool
	var isSAT bool

	if cfg.algorithm == "simple" {
		model, isSAT = oracle.Solve(instance.NumVars, instance.Clauses)
	} else {
		algorithm, err := sat.ParseAlgorithm(cfg.algorithm)
		if err != nil {
			return err
		}
		result, err := sat.Solve(context.Background(), algorithm, instance.NumVars, instance.Clauses)
		if err != nil {
			return err
		}
		model, isSAT = result.Model, result.SAT
	}

	if !isSAT {
		fmt.Println("Formula is UNSAT")
		return nil
	}

	fmt.Println("Formula is SAT")
	fmt.Println(renderModel(model))
	return nil
}

// renderModel formats a model as the canonical space-separated sequence of
// signed 1-indexed variable literals, in variable-index order.
func renderModel(model []bool) string {
	lits := make([]string, len(model))
	for v, val := range model {
		if val {
			lits[v] = strconv.Itoa(v + 1)
		} else {
			lits[v] = strconv.Itoa(-(v + 1))
		}
	}
	return strings.Join(lits, " ")
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}
