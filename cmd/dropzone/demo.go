package main

import (
	"github.com/aretw0/dropzone/internal/cli"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive drag-and-drop board",
	Long: `Opens a kanban board in the terminal. Drag cards with the mouse, or select one
with space, choose a zone with the arrow keys and drop it with enter.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		board, _ := cmd.Flags().GetString("board")
		logPath, _ := cmd.Flags().GetString("log-file")

		return cli.RunDemo(cli.DemoOptions{
			BoardPath: board,
			LogPath:   logPath,
			Debug:     verbose,
		}, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().String("board", "", "YAML file describing the board columns and cards")
	demoCmd.Flags().String("log-file", "", "Write debug logs to this file (the UI owns the terminal)")
}
