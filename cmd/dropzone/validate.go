package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/dropzone/internal/cli"
	"github.com/aretw0/dropzone/internal/presentation/graph"
	"github.com/aretw0/dropzone/internal/presentation/tui"
	"github.com/aretw0/dropzone/pkg/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errMoveRejected = errors.New("move rejected")

var validateCmd = &cobra.Command{
	Use:   "validate <tree-file>",
	Short: "Check a tree snapshot and, optionally, a move",
	Long: `Loads a YAML, JSON or TOML tree snapshot and reports its outline.
With --move and --to, the move is run through the engine, including the
check that a folder cannot be moved into its own descendants.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		src, _ := cmd.Flags().GetString("move")
		dst, _ := cmd.Flags().GetString("to")
		posFlag, _ := cmd.Flags().GetString("position")
		plain, _ := cmd.Flags().GetBool("plain")
		mermaid, _ := cmd.Flags().GetBool("mermaid")

		pos, err := domain.ParsePosition(posFlag)
		if err != nil {
			return err
		}
		if (src == "") != (dst == "") {
			return fmt.Errorf("--move and --to must be used together")
		}

		report, err := cli.CheckMove(cli.CheckOptions{
			Path:     args[0],
			Source:   src,
			Target:   dst,
			Position: pos,
			Debug:    verbose,
			Log:      cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}

		out := report.Markdown()
		switch {
		case mermaid:
			out = graph.GenerateMermaid(report.Before, &graph.MoveOverlay{Result: report.Result, Rejected: report.Err != nil})
		case !plain && term.IsTerminal(int(os.Stdout.Fd())):
			render, err := tui.NewRenderer(0)
			if err != nil {
				return err
			}
			if out, err = render(out); err != nil {
				return err
			}
		}
		fmt.Fprint(cmd.OutOrStdout(), out)

		if report.Err != nil {
			return fmt.Errorf("%w: %v", errMoveRejected, report.Err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().String("move", "", "ID of the node to move")
	validateCmd.Flags().String("to", "", "ID of the destination node")
	validateCmd.Flags().String("position", "inside", "Drop position relative to the destination (before, inside, after)")
	validateCmd.Flags().Bool("plain", false, "Print raw markdown instead of rendering it")
	validateCmd.Flags().Bool("mermaid", false, "Print the tree and the move as a Mermaid flowchart")
}
