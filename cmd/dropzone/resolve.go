package main

import (
	"fmt"

	"github.com/aretw0/dropzone/internal/cli"
	"github.com/spf13/cobra"
)

var resolveOpts cli.ResolveOptions

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve where a pointer lands in a drop zone",
	Long: `Prints before, inside or after for a pointer position against a zone rectangle.

Example:
  dropzone resolve --rect 0,0,200,40 --point 20,5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := cli.Resolve(resolveOpts)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), pos)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&resolveOpts.Rect, "rect", "", "Zone rectangle as x,y,width,height")
	resolveCmd.Flags().StringVar(&resolveOpts.Point, "point", "", "Pointer position as x,y")
	resolveCmd.Flags().StringVar(&resolveOpts.Orientation, "orientation", "vertical", "Zone orientation (vertical or horizontal)")
	resolveCmd.Flags().BoolVar(&resolveOpts.Binary, "binary", false, "Use two bands (before/after) split at the middle")
	resolveCmd.Flags().Float64Var(&resolveOpts.Before, "before", 0.25, "Relative offset below which the drop lands before the zone")
	resolveCmd.Flags().Float64Var(&resolveOpts.After, "after", 0.75, "Relative offset above which the drop lands after the zone")
	_ = resolveCmd.MarkFlagRequired("rect")
	_ = resolveCmd.MarkFlagRequired("point")
}
