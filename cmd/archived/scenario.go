package main

import (
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"
)

// Scenario is a counter run, the initial value followed by the increments applied in order.
//
//	initial: 13
//	increments: [3, 4, 7, 9, 4, 5, 7, 94]
type Scenario struct {
	Initial    int64   `yaml:"initial"`
	Increments []int64 `yaml:"increments"`
}

var defaultScenario = Scenario{Initial: 13, Increments: []int64{3, 4, 7, 9, 4, 5, 7, 94}}

func loadScenario(fname string) (sc Scenario, err error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return sc, xerrors.Errorf("reading scenario %s: %w", fname, err)
	}
	return parseScenario(data)
}

func parseScenario(data []byte) (sc Scenario, err error) {
	if err = yaml.UnmarshalStrict(data, &sc); err != nil {
		return sc, xerrors.Errorf("parsing scenario: %w", err)
	}
	if len(sc.Increments) == 0 {
		return sc, xerrors.Errorf("scenario has no increments")
	}
	return sc, nil
}
