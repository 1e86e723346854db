package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/havrydotdev/myclass/myclass"
)

func parseOperands(x, y string) (float64, float64, error) {
	l, err := strconv.ParseFloat(x, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid number %q", x)
	}

	r, err := strconv.ParseFloat(y, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid number %q", y)
	}

	return l, r, nil
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func calcSumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc-sum X Y",
		Short: "Print X + Y",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := parseOperands(args[0], args[1])
			if err != nil {
				return err
			}

			sum, err := myclass.New[float64]().CalcSum(x, y)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatNumber(sum))
			return err
		},
	}
}

func frobulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "frobulate OP X Y",
		Short:   "Apply operator tag OP (+ or -) to X and Y",
		Example: "  myclass frobulate - 10 4\n  myclass frobulate -- + -2 3",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := parseOperands(args[1], args[2])
			if err != nil {
				return err
			}

			res, err := myclass.New[float64]().Frobulate(args[0], x, y)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatNumber(res))
			return err
		},
	}
}

func walkListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "walk-list ITEM...",
		Short: "Print each item with its index",
		RunE: func(cmd *cobra.Command, args []string) error {
			return myclass.WalkList(cmd.OutOrStdout(), slices.All(args))
		},
	}
}
