package cli

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/charmingruby/seqkit/combin"
	"github.com/charmingruby/seqkit/seq"
)

type ShuffleCmd struct{}

func NewShuffleCmd() *ShuffleCmd {
	return &ShuffleCmd{}
}

func (c *ShuffleCmd) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle ITEMS...",
		Short: "Shuffle the items uniformly",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			shuffled := combin.ShuffleWith(e.rand, args)
			e.log.Debug("Shuffled items", "count", len(shuffled), "seeded", e.rand != nil)

			e.out.table([]string{"#", "Item"}, indexed(shuffled))
			return nil
		},
	}
}

type ProductCmd struct{}

func NewProductCmd() *ProductCmd {
	return &ProductCmd{}
}

func (c *ProductCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Cartesian product of --left and --right",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := cmd.Flags().GetStringSlice("left")
			if err != nil {
				return fmt.Errorf("failed to get left flag: %w", err)
			}
			right, err := cmd.Flags().GetStringSlice("right")
			if err != nil {
				return fmt.Errorf("failed to get right flag: %w", err)
			}
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			pairs := combin.CartesianProduct(left, right)
			e.log.Debug("Built product", "left", len(left), "right", len(right), "pairs", len(pairs))

			rows := lo.Map(pairs, func(p seq.Pair[string, string], _ int) []string {
				return []string{p.First, p.Second}
			})
			e.out.table([]string{"Left", "Right"}, rows)
			return nil
		},
	}

	cmd.Flags().StringSlice("left", nil, "left-hand items")
	cmd.Flags().StringSlice("right", nil, "right-hand items")

	return cmd
}

type WindowCmd struct{}

func NewWindowCmd() *WindowCmd {
	return &WindowCmd{}
}

func (c *WindowCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window ITEMS...",
		Short: "Sliding windows of --size consecutive items",
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := intFlag(cmd.Flags(), "size")
			if err != nil {
				return err
			}
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			it, err := combin.SlidingWindow(seq.FromSlice(args), size)
			if err != nil {
				return fmt.Errorf("failed to build windows: %w", err)
			}
			windows, err := seq.Collect(it)
			if err != nil {
				return fmt.Errorf("failed to build windows: %w", err)
			}
			e.log.Debug("Built windows", "size", size, "count", len(windows))

			e.out.table([]string{"#", "Window"}, indexed(lo.Map(windows, func(w []string, _ int) string {
				return formatList(w)
			})))
			return nil
		},
	}

	cmd.Flags().Int("size", 2, "window size")

	return cmd
}

type PermutationsCmd struct{}

func NewPermutationsCmd() *PermutationsCmd {
	return &PermutationsCmd{}
}

func (c *PermutationsCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "permutations ITEMS...",
		Short: "List permutations of the items in lexicographic order",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := intFlag(cmd.Flags(), "limit")
			if err != nil {
				return err
			}
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			perms, err := seq.Collect(seq.Take(combin.Permutations(args), limit))
			if err != nil {
				return fmt.Errorf("failed to list permutations: %w", err)
			}
			e.log.Debug("Listed permutations", "items", len(args), "limit", limit, "count", len(perms))

			e.out.table([]string{"#", "Permutation"}, indexed(lo.Map(perms, func(p []string, _ int) string {
				return formatList(p)
			})))
			return nil
		},
	}

	cmd.Flags().Int("limit", 24, "maximum number of permutations to list")

	return cmd
}
