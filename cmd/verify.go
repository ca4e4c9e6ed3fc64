package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-stl/internal/logger"
	"github.com/g-m-twostay/go-stl/internal/workload"
)

type verifyConfiguration struct {
	Base        *baseConfiguration
	KeyRange    int
	Rounds      int
	OpsPerRound int
	Seed        int64
	PoolLimit   uint
}

func newVerifyCmd(baseConfig *baseConfiguration) *cobra.Command {
	config := &verifyConfiguration{Base: baseConfig}
	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Checks the red-black tree invariants under a random workload",
		Long:  `Runs rounds of random insertions and erasures on a pool backed tree and checks every invariant and the stored keys after each round.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, config)
		},
	}
	verifyCmd.Flags().IntVar(&config.KeyRange, "size", 1<<12, "keys are drawn from [0, size)")
	verifyCmd.Flags().IntVar(&config.Rounds, "rounds", 100, "number of rounds")
	verifyCmd.Flags().IntVar(&config.OpsPerRound, "ops", 1<<10, "operations per round")
	verifyCmd.Flags().Int64Var(&config.Seed, "seed", 1, "workload seed")
	verifyCmd.Flags().UintVar(&config.PoolLimit, "pool-limit", 0, "maximum number of live nodes, 0 for no limit")
	return verifyCmd
}

func runVerify(cmd *cobra.Command, config *verifyConfiguration) error {
	log := logger.Component(config.Base.log, "verify")
	rep, err := workload.Check(workload.CheckConfig{
		KeyRange:    config.KeyRange,
		Rounds:      config.Rounds,
		OpsPerRound: config.OpsPerRound,
		Seed:        config.Seed,
		PoolLimit:   config.PoolLimit,
	}, log)
	if err != nil {
		log.Error().Err(err).Int("rounds", rep.Rounds).Msg("verification failed")
		return fmt.Errorf("verification failed after %d rounds: %w", rep.Rounds, err)
	}
	log.Info().Int("rounds", rep.Rounds).Int("alloc_failures", rep.AllocFailures).Msg("tree verified")
	return writeYAML(cmd.OutOrStdout(), rep)
}
