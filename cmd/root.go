package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/canesim/canesim/sim/pipeline"
	"github.com/canesim/canesim/sim/trace"
)

// runOptions holds the flags shared by the simulation commands.
type runOptions struct {
	Plant   string   // plant config file; overrides the defaults.yaml plant section
	Input   string   // YAML file of form values
	Preset  string   // scenario name in defaults.yaml
	Sets    []string // key=value overrides, applied last
	Output  string   // json or yaml
	XLSX    string   // optional workbook path
	Ethanol bool     // sugar run only: add the ethanol path
	Trace   string   // sugar run only: evaporator search trace level
}

var (
	logLevel     string // Log verbosity level
	defaultsPath string // Path to defaults.yaml
	opts         runOptions
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "canesim",
	Short: "Steady-state process simulator for sugar, ethanol and steam production in a cane mill",
}

// runCmd simulates the sugar line, optionally followed by the distillery
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the sugar production simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		cfg := defaultsFor(cmd)
		if err := runSugar(cfg, opts, cmd.OutOrStdout(), cmd.ErrOrStderr()); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
	},
}

// steamCmd simulates the boilers
var steamCmd = &cobra.Command{
	Use:   "steam",
	Short: "Run the steam and power simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		cfg := defaultsFor(cmd)
		if err := runSteam(cfg, opts, cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
	},
}

// runSugar builds the process input from the layered form values, simulates it and writes
// the report.
func runSugar(cfg Config, o runOptions, stdout, stderr io.Writer) error {
	log := logrus.WithField("run", uuid.NewString())

	if !trace.IsValidTraceLevel(o.Trace) {
		return fmt.Errorf("unknown trace level %q", o.Trace)
	}
	plant, err := resolvePlant(cfg, o.Plant)
	if err != nil {
		return err
	}
	form, err := collectForm(cfg.Scenarios, o.Preset, o.Input, o.Sets)
	if err != nil {
		return err
	}
	in, err := pipeline.ProcessInputFromForm(form)
	if err != nil {
		return err
	}

	var st *trace.SearchTrace
	if lvl := trace.TraceLevel(o.Trace); lvl != "" && lvl != trace.TraceLevelNone {
		st = trace.NewSearchTrace(trace.TraceConfig{Level: lvl})
	}

	log.Infof("Starting sugar simulation (preset=%q, ethanol=%v)", o.Preset, o.Ethanol)
	start := time.Now()
	res, err := pipeline.Simulate(in, plant, pipeline.Options{Ethanol: o.Ethanol, Trace: st})
	if err != nil {
		return err
	}
	log.Infof("Final syrup Brix %.2f via %s search", res.Evaporators.FinalBrix, res.Evaporators.Phase)

	if err := emit(stdout, res, o); err != nil {
		return err
	}
	if st != nil {
		printTraceSummary(stderr, st)
	}
	log.Infof("Simulation complete in %v", time.Since(start))
	return nil
}

// runSteam is the boiler counterpart of runSugar.
func runSteam(cfg Config, o runOptions, stdout io.Writer) error {
	log := logrus.WithField("run", uuid.NewString())

	plant, err := resolvePlant(cfg, o.Plant)
	if err != nil {
		return err
	}
	form, err := collectForm(cfg.SteamScenarios, o.Preset, o.Input, o.Sets)
	if err != nil {
		return err
	}
	in, err := pipeline.SteamInputFromForm(form)
	if err != nil {
		return err
	}

	log.Infof("Starting steam simulation (preset=%q)", o.Preset)
	res, err := pipeline.SimulateSteam(in, plant)
	if err != nil {
		return err
	}
	if err := emit(stdout, res, o); err != nil {
		return err
	}
	log.Info("Simulation complete.")
	return nil
}

// emit writes the report to stdout and, when requested, to a workbook.
func emit(stdout io.Writer, report any, o runOptions) error {
	if err := writeResult(stdout, report, o.Output); err != nil {
		return err
	}
	if o.XLSX != "" {
		if err := exportWorkbook(o.XLSX, report); err != nil {
			return err
		}
		logrus.Infof("Workbook written to %s", o.XLSX)
	}
	return nil
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// defaultsFor loads defaults.yaml. A missing file at the default path falls back to the
// built-in plant and no presets; an explicitly named file must exist.
func defaultsFor(cmd *cobra.Command) Config {
	if _, err := os.Stat(defaultsPath); err != nil && !cmd.Flags().Changed("defaults-filepath") {
		logrus.Debugf("No defaults file at %s; using the built-in plant", defaultsPath)
		return Config{}
	}
	return loadDefaultsConfig(defaultsPath)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addInputFlags registers the flags shared by run and steam.
func addInputFlags(c *cobra.Command) {
	c.Flags().StringVar(&opts.Preset, "preset", "", "Scenario name from defaults.yaml")
	c.Flags().StringVar(&opts.Input, "input", "", "YAML file of input values keyed by form name")
	c.Flags().StringArrayVar(&opts.Sets, "set", nil, "Override one input, as key=value (repeatable)")
	c.Flags().StringVar(&opts.Plant, "plant", "", "Plant configuration YAML (overrides the defaults.yaml plant section)")
	c.Flags().StringVar(&opts.Output, "output", formatYAML, "Report format (json, yaml)")
	c.Flags().StringVar(&opts.XLSX, "xlsx", "", "Also write the report to this .xlsx workbook")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&defaultsPath, "defaults-filepath", "defaults.yaml", "Path to defaults.yaml")

	addInputFlags(runCmd)
	runCmd.Flags().BoolVar(&opts.Ethanol, "ethanol", false, "Also simulate mixing, fermentation and distillation")
	runCmd.Flags().StringVar(&opts.Trace, "trace", string(trace.TraceLevelNone), "Evaporator search trace level (none, candidates)")

	addInputFlags(steamCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(steamCmd)
}
