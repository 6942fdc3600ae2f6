package main

import (
	"math/rand"
	"net/http"
	"os"
	"runtime/pprof"

	"github.com/deroproject/archived"
	"github.com/deroproject/archived/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

type stressConfig struct {
	increments  uint64
	checkEvery  uint64
	clearEvery  uint64
	samples     int
	seed        int64
	cpuprofile  string
	metricsAddr string
}

var stress stressConfig

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Apply pseudo random increments and verify random versions against a model",
	RunE: func(cmd *cobra.Command, args []string) error {
		if stress.cpuprofile != "" {
			f, err := os.Create(stress.cpuprofile)
			if err != nil {
				return xerrors.Errorf("could not create CPU profile: %w", err)
			}
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				return xerrors.Errorf("could not start CPU profile: %w", err)
			}
			defer pprof.StopCPUProfile()
		}

		counter := archived.NewLocked(archived.NewSum(int64(0)))

		if stress.metricsAddr != "" {
			registry := prometheus.NewRegistry()
			registry.MustRegister(metrics.NewCollector("stress", counter))
			srv := &http.Server{Addr: stress.metricsAddr, Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{})}
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.WithError(err).Error("metrics server stopped")
				}
			}()
			defer srv.Close()
			log.WithField("addr", stress.metricsAddr).Info("serving metrics")
		}

		return runStress(log, stress, counter)
	},
}

func init() {
	flags := stressCmd.Flags()
	flags.Uint64Var(&stress.increments, "increments", 1000000, "total increments to apply")
	flags.Uint64Var(&stress.checkEvery, "check-every", 10000, "verify random versions after this many increments (0 disables)")
	flags.Uint64Var(&stress.clearEvery, "clear-every", 250000, "clear history after this many increments (0 disables)")
	flags.IntVar(&stress.samples, "samples", 64, "versions verified at every check")
	flags.Int64Var(&stress.seed, "seed", 100, "pseudo random seed")
	flags.StringVar(&stress.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	flags.StringVar(&stress.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address while running")
}

// runStress tracks versions and the value at their creation time since the last history clear
func runStress(log logrus.FieldLogger, cfg stressConfig, counter *archived.Locked[int64]) error {
	rnd := rand.New(rand.NewSource(cfg.seed))

	var versions []archived.Version[int64]
	var prefix []int64 // prefix[i] is the value when versions[i] was taken
	restart := func(v archived.Version[int64]) {
		versions = append(versions[:0], v)
		prefix = append(prefix[:0], counter.Value())
	}
	restart(counter.Current())

	verify := func(step uint64) error {
		last := prefix[len(prefix)-1]
		if value := counter.Value(); value != last {
			return xerrors.Errorf("step %d: value mismatched, have %d want %d", step, value, last)
		}
		for s := 0; s < cfg.samples; s++ {
			j := rnd.Intn(len(versions))
			diff, err := counter.Diff(versions[j])
			if err != nil {
				return xerrors.Errorf("step %d: version %d: %w", step, j, err)
			}
			if diff != last-prefix[j] {
				return xerrors.Errorf("step %d: version %d diff mismatched, have %d want %d", step, j, diff, last-prefix[j])
			}
		}
		return nil
	}

	log.WithFields(logrus.Fields{"increments": cfg.increments, "seed": cfg.seed}).Info("stress testing archive")
	for step := uint64(1); step <= cfg.increments; step++ {
		d := rnd.Int63n(2001) - 1000
		versions = append(versions, counter.IncrementBy(d))
		prefix = append(prefix, prefix[len(prefix)-1]+d)

		if cfg.checkEvery > 0 && step%cfg.checkEvery == 0 {
			if err := verify(step); err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"step": step, "versions": len(versions)}).Debug("verified")
		}

		if cfg.clearEvery > 0 && step%cfg.clearEvery == 0 {
			stale := versions[rnd.Intn(len(versions))]
			fresh := counter.ClearHistory()
			if _, err := counter.Diff(stale); !xerrors.Is(err, archived.ErrStaleVersion) {
				return xerrors.Errorf("step %d: version survived history clear, err %v", step, err)
			}
			restart(fresh)
			log.WithField("step", step).Info("history cleared")
		}
	}

	if err := verify(cfg.increments); err != nil {
		return err
	}

	stats := counter.Stats()
	log.WithFields(logrus.Fields{
		"value":     counter.Value(),
		"commits":   stats.Commits,
		"resets":    stats.Resets,
		"collapses": stats.Collapses,
		"hops":      stats.Hops,
	}).Info("stress test completed")
	return nil
}
