package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-stl/Trees"
)

type dumpConfiguration struct {
	Base *baseConfiguration
	Keys []int
}

func newDumpCmd(baseConfig *baseConfiguration) *cobra.Command {
	config := &dumpConfiguration{Base: baseConfig}
	var dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Prints a tree level by level",
		Long:  `Inserts the keys in order, ignoring duplicates, and prints each level of the resulting tree with the node colors.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, config)
		},
	}
	dumpCmd.Flags().IntSliceVar(&config.Keys, "keys", nil, "keys to insert")
	return dumpCmd
}

func runDump(cmd *cobra.Command, config *dumpConfiguration) error {
	tree := Trees.NewOrdered[int]()
	n, err := tree.InsertUniqueAll(config.Keys...)
	if err != nil {
		return err
	}
	config.Base.log.Debug().Int("inserted", n).Int("duplicates", len(config.Keys)-n).Msg("tree built")
	if err = tree.Verify(); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "size %d, height %d, black height %d\n", tree.Size(), tree.Height(), tree.BlackHeight())
	var line []string
	depth := 0
	tree.LevelOrder(func(d int, v *int, isRed bool) bool {
		if d != depth {
			fmt.Fprintln(w, strings.Join(line, " "))
			line, depth = line[:0], d
		}
		c := "B"
		if isRed {
			c = "R"
		}
		line = append(line, fmt.Sprintf("%d%s", *v, c))
		return true
	})
	if len(line) > 0 {
		fmt.Fprintln(w, strings.Join(line, " "))
	}
	return nil
}
