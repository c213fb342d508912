package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/charmingruby/seqkit/num"
	"github.com/charmingruby/seqkit/seq"
)

type PrimesCmd struct{}

func NewPrimesCmd() *PrimesCmd {
	return &PrimesCmd{}
}

func (c *PrimesCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "primes",
		Short: "List primes lazily starting at --from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := intFlag(cmd.Flags(), "limit")
			if err != nil {
				return err
			}
			from, err := intFlag(cmd.Flags(), "from")
			if err != nil {
				return err
			}
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			candidates := seq.Iterate(from, func(v int) int { return v + 1 })
			primes, err := seq.Collect(seq.Take(seq.FilterIter(candidates, num.IsPrimeInt[int]), limit))
			if err != nil {
				return fmt.Errorf("failed to list primes: %w", err)
			}
			e.log.Debug("Listed primes", "from", from, "limit", limit, "count", len(primes))

			e.out.table([]string{"#", "Prime"}, indexed(formatInts(primes)))
			return nil
		},
	}

	cmd.Flags().Int("limit", 10, "number of primes to list")
	cmd.Flags().Int("from", 2, "first candidate")

	return cmd
}

type GCDCmd struct{}

func NewGCDCmd() *GCDCmd {
	return &GCDCmd{}
}

func (c *GCDCmd) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "gcd A [B...]",
		Short: "Greatest common divisor of the arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			values, err := parseInts(args)
			if err != nil {
				return err
			}
			g, err := num.GCD(values...)
			if err != nil {
				return fmt.Errorf("failed to compute gcd: %w", err)
			}
			e.log.Debug("Computed gcd", "values", values, "gcd", g)

			e.out.table([]string{"Values", "GCD"}, [][]string{{formatList(values), strconv.Itoa(g)}})
			return nil
		},
	}
}

type ModCmd struct{}

func NewModCmd() *ModCmd {
	return &ModCmd{}
}

func (c *ModCmd) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "mod A B",
		Short: "Modulo of A by B with the sign of B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			values, err := parseInts(args)
			if err != nil {
				return err
			}
			m, err := num.Modulo(values[0], values[1])
			if err != nil {
				return fmt.Errorf("failed to compute modulo: %w", err)
			}
			e.log.Debug("Computed modulo", "a", values[0], "b", values[1], "result", m)

			e.out.table([]string{"A", "B", "A mod B"}, [][]string{formatInts([]int{values[0], values[1], m})})
			return nil
		},
	}
}
