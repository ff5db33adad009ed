package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	sim "github.com/ed-sim/ed-sim/sim"
)

var (
	// CLI flags for the simulation scenario
	seed                int64  // Seed for all random draws (arrivals, triage, allocator, ants)
	logLevel            string // Log verbosity level
	scenarioPath        string // Optional YAML scenario file
	executions          int    // Number of repeated executions to average
	meanArrivalsPerHour int    // Mean patient arrivals per hour
	simHours            int    // Total simulated hours
	beds                int    // Bed pool size
	queueCapacity       int    // Arrival queue capacity
	doctors             int    // Doctor units
	nurses              int    // Nurse units
	wardies             int    // Wardie units
	labs                int    // Lab units
	xRayStaff           int    // X-ray staff units
	algorithmIndex      int    // Active allocation algorithm index
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "ed-sim",
	Short: "Discrete-event simulator for emergency department resource contention",
}

// runCmd executes the simulation using parameters from CLI flags, optionally
// overlaid on a YAML scenario file.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the ED simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.DefaultConfig()
		runs := executions
		if scenarioPath != "" {
			scenario, err := LoadScenario(scenarioPath)
			if err != nil {
				logrus.Fatalf("unable to read scenario file: %v", err)
			}
			cfg = scenario.Config()
			if scenario.Executions != nil && !cmd.Flags().Changed("executions") {
				runs = *scenario.Executions
			}
		}
		applyFlagOverrides(cmd, &cfg)

		if runs <= 0 {
			logrus.Fatalf("executions must be > 0, got %d", runs)
		}

		logrus.Infof("Starting simulation: %d execution(s), %d beds, %d arrivals/hour, horizon=%dh",
			runs, cfg.Beds, cfg.MeanArrivalsPerHour, cfg.SimHours)

		startTime := time.Now()

		// Repeated executions are fully sequential and isolated; each run
		// derives its own key so runs differ while the set stays pinned to
		// --seed.
		bedTimes := make([]float64, 0, runs)
		for i := 0; i < runs; i++ {
			s, err := sim.NewSimulator(cfg, sim.NewSimulationKey(seed+int64(i)))
			if err != nil {
				logrus.Fatalf("simulation init failed: %v", err)
			}
			s.Run()

			m := s.Report()
			m.Print()
			bedTimes = append(bedTimes, m.AvgBedTime)
		}

		if runs > 1 {
			logrus.Infof("Average patient bed time after %d executions: %.2f min", runs, stat.Mean(bedTimes, nil))
		}
		logrus.Infof("Simulation complete in %s.", time.Since(startTime))
	},
}

// applyFlagOverrides copies explicitly-set flags over the scenario values,
// so CLI flags always win.
func applyFlagOverrides(cmd *cobra.Command, cfg *sim.Config) {
	overrides := map[string]func(){
		"arrivals-per-hour": func() { cfg.MeanArrivalsPerHour = meanArrivalsPerHour },
		"hours":             func() { cfg.SimHours = simHours },
		"beds":              func() { cfg.Beds = beds },
		"queue-size":        func() { cfg.QueueCapacity = queueCapacity },
		"doctors":           func() { cfg.Doctors = doctors },
		"nurses":            func() { cfg.Nurses = nurses },
		"wardies":           func() { cfg.Wardies = wardies },
		"labs":              func() { cfg.Labs = labs },
		"xray-staff":        func() { cfg.XRayStaff = xRayStaff },
		"algo":              func() { cfg.AlgorithmIndex = algorithmIndex },
	}
	for name, apply := range overrides {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	defaults := sim.DefaultConfig()

	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for all random draws")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file; flags override its values")

	runCmd.Flags().IntVar(&executions, "executions", 1, "Number of repeated executions to average")
	runCmd.Flags().IntVar(&meanArrivalsPerHour, "arrivals-per-hour", defaults.MeanArrivalsPerHour, "Mean patient arrivals per hour")
	runCmd.Flags().IntVar(&simHours, "hours", defaults.SimHours, "Total simulated hours")
	runCmd.Flags().IntVar(&beds, "beds", defaults.Beds, "Number of ED beds")
	runCmd.Flags().IntVar(&queueCapacity, "queue-size", defaults.QueueCapacity, "Patient queue capacity")
	runCmd.Flags().IntVar(&doctors, "doctors", defaults.Doctors, "Number of doctors")
	runCmd.Flags().IntVar(&nurses, "nurses", defaults.Nurses, "Number of nurses")
	runCmd.Flags().IntVar(&wardies, "wardies", defaults.Wardies, "Number of wardies")
	runCmd.Flags().IntVar(&labs, "labs", defaults.Labs, "Number of labs")
	runCmd.Flags().IntVar(&xRayStaff, "xray-staff", defaults.XRayStaff, "Number of x-ray staff")
	runCmd.Flags().IntVar(&algorithmIndex, "algo", defaults.AlgorithmIndex, "Allocation algorithm index")

	rootCmd.AddCommand(runCmd)
}
