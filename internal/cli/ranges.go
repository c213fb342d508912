package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/charmingruby/seqkit/digits"
	"github.com/charmingruby/seqkit/ranges"
)

type RangeCmd struct{}

func NewRangeCmd() *RangeCmd {
	return &RangeCmd{}
}

func (c *RangeCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range FROM TO",
		Short: "Print the integers from FROM towards TO",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inclusive, err := cmd.Flags().GetBool("inclusive")
			if err != nil {
				return fmt.Errorf("failed to get inclusive flag: %w", err)
			}
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			bounds, err := parseInts(args)
			if err != nil {
				return err
			}

			values, err := ranges.Integers(bounds[0], bounds[1], inclusive)
			if err != nil {
				return fmt.Errorf("failed to build range: %w", err)
			}
			e.log.Debug("Built range", "from", bounds[0], "to", bounds[1], "inclusive", inclusive, "size", len(values))

			e.out.table([]string{"Index", "Value"}, indexed(formatInts(values)))
			return nil
		},
	}

	cmd.Flags().Bool("inclusive", false, "include TO in the range")

	return cmd
}

type FixedCmd struct{}

func NewFixedCmd() *FixedCmd {
	return &FixedCmd{}
}

func (c *FixedCmd) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "fixed N VALUE",
		Short: "Build a container of exactly N copies of VALUE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid size %q: %w", args[0], err)
			}

			values, err := ranges.Fixed(n, args[1])
			if err != nil {
				return fmt.Errorf("failed to build container: %w", err)
			}
			ds, err := digits.ToDigits(n)
			if err != nil {
				return fmt.Errorf("failed to decompose size: %w", err)
			}
			e.log.Debug("Built fixed container", "size", len(values), "digits", digits.Join(ds))

			e.out.table(
				[]string{"Length", "Digits", "Steps", "First"},
				[][]string{{
					strconv.Itoa(len(values)),
					digits.Join(ds),
					strconv.Itoa(len(ds)),
					firstOr(values, "-"),
				}},
			)
			return nil
		},
	}
}

func firstOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return values[0]
}
