package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	Go_Utils "github.com/g-m-twostay/go-stl"
	"github.com/g-m-twostay/go-stl/Alloc"
	"github.com/g-m-twostay/go-stl/Trees"
	"github.com/g-m-twostay/go-stl/internal/logger"
	"github.com/g-m-twostay/go-stl/internal/workload"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

type (
	benchConfiguration struct {
		Base     *baseConfiguration
		Engines  []string
		KeyRange int
		Ops      int
		Seed     int64
		Pool     bool
		Format   string
	}

	benchReport struct {
		Seed     int64             `yaml:"seed"`
		KeyRange int               `yaml:"key_range"`
		Ops      int               `yaml:"ops"`
		TotalOps uint              `yaml:"total_ops"`
		Results  []workload.Result `yaml:"results"`
	}
)

func newBenchCmd(baseConfig *baseConfiguration) *cobra.Command {
	config := &benchConfiguration{Base: baseConfig}
	var benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Runs the same random workload on several ordered containers",
		Long:  `Each engine runs the same steps concurrently on its own structure. The engines must agree on every outcome.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, config)
		},
	}
	benchCmd.Flags().StringSliceVar(&config.Engines, "engines", workload.Engines, "engines to run")
	benchCmd.Flags().IntVar(&config.KeyRange, "size", 1<<16, "keys are drawn from [0, size)")
	benchCmd.Flags().IntVar(&config.Ops, "ops", 1<<20, "number of operations per engine")
	benchCmd.Flags().Int64Var(&config.Seed, "seed", 1, "workload seed")
	benchCmd.Flags().BoolVar(&config.Pool, "pool", false, "back the red-black tree with a node pool")
	benchCmd.Flags().StringVar(&config.Format, "format", formatText, "report format: text or yaml")
	return benchCmd
}

func runBench(cmd *cobra.Command, config *benchConfiguration) error {
	if config.KeyRange <= 0 || config.Ops < 0 {
		return fmt.Errorf("size must be positive and ops non negative, got %d and %d", config.KeyRange, config.Ops)
	}
	if config.Format != formatText && config.Format != formatYAML {
		return fmt.Errorf("unknown format %q", config.Format)
	}
	log := logger.Component(config.Base.log, "bench")
	engines := make([]workload.Engine, 0, len(config.Engines))
	for _, name := range config.Engines {
		// engines run concurrently, so each one gets its own pool.
		var src Alloc.Source[Trees.Node[int]]
		if config.Pool {
			src = Alloc.NewPool[Trees.Node[int]](Alloc.WithChunk[Trees.Node[int]](1024), Alloc.WithLogger[Trees.Node[int]](log))
		}
		e, err := workload.NewEngine(name, src)
		if err != nil {
			return err
		}
		engines = append(engines, e)
	}
	log.Info().Strs("engines", config.Engines).Int("ops", config.Ops).Int("size", config.KeyRange).Int64("seed", config.Seed).Msg("generating workload")
	steps := workload.Generate(config.Seed, config.Ops, config.KeyRange)

	var total Go_Utils.AtomicUint
	results, err := workload.RunAll(cmd.Context(), engines, steps, &total, log)
	if err != nil {
		return err
	}
	for _, r := range results {
		log.Info().Str("engine", r.Engine).Dur("elapsed", r.Elapsed).Int("size", r.Size).Msg("engine finished")
	}
	rep := benchReport{Seed: config.Seed, KeyRange: config.KeyRange, Ops: config.Ops, TotalOps: total.Load(), Results: results}
	if config.Format == formatYAML {
		return writeYAML(cmd.OutOrStdout(), rep)
	}
	return writeBenchText(cmd.OutOrStdout(), rep)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}

func writeBenchText(w io.Writer, rep benchReport) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "engine\telapsed\tns/op\tinserted\tfound\terased\tsize\n")
	for _, r := range rep.Results {
		perOp := 0.0
		if rep.Ops > 0 {
			perOp = float64(r.Elapsed.Nanoseconds()) / float64(rep.Ops)
		}
		fmt.Fprintf(tw, "%s\t%v\t%.1f\t%d\t%d\t%d\t%d\n", r.Engine, r.Elapsed, perOp, r.Inserted, r.Found, r.Erased, r.Size)
	}
	fmt.Fprintf(tw, "total ops: %d\n", rep.TotalOps)
	return tw.Flush()
}
