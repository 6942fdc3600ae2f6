package main

import (
	"github.com/deroproject/archived"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

var scenarioFile string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Apply a scenario to a counter and verify the diff of every version taken on the way",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		sc := defaultScenario
		if scenarioFile != "" {
			if sc, err = loadScenario(scenarioFile); err != nil {
				return err
			}
		}
		if failed := runDemo(log, sc); failed > 0 {
			return xerrors.Errorf("%d checks failed", failed)
		}
		return nil
	},
}

func init() {
	demoCmd.Flags().StringVarP(&scenarioFile, "scenario", "s", "", "yaml scenario file (default: built in scenario)")
}

func checkEqual(log logrus.FieldLogger, first, second int64, msg string) bool {
	entry := log.WithFields(logrus.Fields{"first": first, "second": second})
	if first == second {
		entry.Info(msg + " OK.")
		return true
	}
	entry.Error(msg + " Error.")
	return false
}

// checkDiff logs a failed line for versions which cannot be diffed as well as for wrong diffs
func checkDiff(log logrus.FieldLogger, v archived.Version[int64], expected int64, msg string) bool {
	diff, err := archived.DiffToCurrent(v)
	if err != nil {
		log.WithError(err).Error(msg + " Error.")
		return false
	}
	return checkEqual(log, expected, diff, msg)
}

// runDemo returns the number of failed checks
func runDemo(log logrus.FieldLogger, sc Scenario) (failed int) {
	counter := archived.NewSum(sc.Initial)
	if !checkEqual(log, sc.Initial, counter.Value(), "Value after construction.") {
		return 1
	}

	versions := []archived.Version[int64]{counter.Current()}
	control_values := []int64{sc.Initial}

	log.Info("Increment, first run.")
	for _, d := range sc.Increments {
		versions = append(versions, counter.IncrementBy(d))
		control_values = append(control_values, control_values[len(control_values)-1]+d)
	}

	log.Info("Increment check, first run.")
	final_value := control_values[len(control_values)-1]
	for i, v := range versions {
		if !checkDiff(log, v, final_value-control_values[i], "Diffs to current, first run.") {
			failed++
		}
	}

	// history clear keeps the value, every earlier version goes stale
	fresh := counter.ClearHistory()
	if !checkEqual(log, final_value, counter.Value(), "Value after history clear.") {
		failed++
	}
	if _, err := archived.DiffToCurrent(versions[0]); !xerrors.Is(err, archived.ErrStaleVersion) {
		log.WithError(err).Error("Version survived history clear.")
		failed++
	}
	counter.IncrementBy(sc.Increments[0])
	if !checkDiff(log, fresh, sc.Increments[0], "Diff after history clear.") {
		failed++
	}

	counter.Reset(sc.Initial)
	if !checkEqual(log, sc.Initial, counter.Value(), "Value after reset.") {
		failed++
	}
	return
}
