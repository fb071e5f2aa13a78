package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows every game registered in the arcade.

Variants such as larger Minesweeper boards are listed under their game
and can be played directly by ID.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	variants := make(map[string][]registry.GameInfo)
	idW := len("ID")
	for _, g := range games {
		if g.IsVariant() {
			variants[g.Parent] = append(variants[g.Parent], g)
		}
		// Variants are indented by two columns.
		idW = max(idW, len(g.ID)+2)
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", idW, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", idW, "--", "-----")

	for _, g := range registry.Primary() {
		fmt.Printf("  %-*s  %s\n", idW, g.ID, g.Title)
		for _, v := range variants[g.ID] {
			fmt.Printf("    %-*s  %s\n", idW-2, v.ID, v.Title)
		}
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
