package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/weekend-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game registered in the arcade.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()
	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	t := newTable("ID", "Title")
	for _, g := range games {
		t.Row(g.ID, g.Title)
	}
	fmt.Fprintln(out, t.Render())
	fmt.Fprintln(out, "Run 'arcade play <id>' to play a game.")
}
