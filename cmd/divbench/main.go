package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/divbench"
)

var (
	limit       uint64
	samples     int
	elements    int
	generations int
	quiet       bool
	logJSON     bool
	verbose     bool

	rootCmd = &cobra.Command{
		Use:   "divbench [domain...]",
		Short: "Cross-validate and time integer division strategies",
		Long: `divbench sweeps the divisors of the selected domains (u32, s32, u64, s64),
times each division strategy against the native divide instruction and
reports nanoseconds per buffer element. Every checked strategy sum is
compared against the hardware baseline; mismatches are logged and
summarized without stopping the sweep.

With no domain arguments the u64 domain is swept.`,
		Args: cobra.ArbitraryArgs,
		RunE: run,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint64Var(&limit, "limit", 0,
		"Stop each sweep after this many divisors (0 sweeps exhaustively)")
	rootCmd.Flags().IntVar(&samples, "samples", divbench.DefaultSamples,
		"Timed repetitions per strategy; the minimum is reported")
	rootCmd.Flags().IntVar(&elements, "elements", divbench.DefaultElements,
		"Numerator buffer length per sum sample")
	rootCmd.Flags().IntVar(&generations, "generations", divbench.DefaultGenerations,
		"Descriptor constructions per generate sample")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false,
		"Disable structured logging")
	rootCmd.Flags().BoolVar(&logJSON, "log-json", false,
		"Emit JSON logs instead of text")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Log at debug level")
}

func run(cmd *cobra.Command, args []string) error {
	domains, err := parseDomains(args)
	if err != nil {
		return err
	}

	bench, err := divbench.New(
		divbench.WithDivisorLimit(limit),
		divbench.WithSamples(samples),
		divbench.WithElements(elements),
		divbench.WithGenerations(generations),
		divbench.WithLogger(newLogger()),
	)
	if err != nil {
		return err
	}
	if err := bench.CheckClock(); err != nil {
		return err
	}

	rep := divbench.NewReporter(cmd.OutOrStdout())
	bench.Run(domains, rep.SweepEmitter())

	reportMismatches(cmd.ErrOrStderr(), bench)
	return nil
}

func parseDomains(args []string) ([]divbench.Domain, error) {
	if len(args) == 0 {
		return []divbench.Domain{divbench.DomainU64}, nil
	}

	domains := make([]divbench.Domain, 0, len(args))
	for _, arg := range args {
		d, err := divbench.ParseDomain(arg)
		if err != nil {
			return nil, err
		}
		domains = append(domains, d)
	}
	return domains, nil
}

func newLogger() *divbench.Logger {
	if quiet {
		return divbench.NoopLogger()
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if logJSON {
		return divbench.NewJSONLogger(level)
	}
	return divbench.NewTextLogger(level)
}

func reportMismatches(w io.Writer, bench *divbench.Bench) {
	sites := bench.Mismatches().Sites()
	if len(sites) == 0 {
		return
	}

	fmt.Fprintln(w, "cross-check mismatches:")
	for _, site := range sites {
		fmt.Fprintf(w, "  %-24s %d hits over %d divisors\n",
			site.Site, site.Count, site.Divisors)
	}
}
