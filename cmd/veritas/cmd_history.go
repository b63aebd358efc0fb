package main

import (
	"fmt"

	"veritas/internal/api"
	"veritas/internal/store"

	"github.com/spf13/cobra"
)

// historyCmd loads the server-side history and prints it, predictions
// and generated articles interleaved newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent predictions and generated articles",
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	application, err := buildApp()
	if err != nil {
		return err
	}

	if err := application.StartSession(cmd.Context()); err != nil {
		return fmt.Errorf("could not load history: %s", api.UserMessage(err))
	}

	bookmarks := application.Bookmarks.All()
	if len(bookmarks) == 0 {
		fmt.Println("No history yet.")
		return nil
	}

	for _, bm := range bookmarks {
		if bm.Type == store.TypePrediction {
			fmt.Printf("%s  [predict]  custom=%s gemini=%s\n", bm.Timestamp, bm.CustomResult, bm.GeminiResult)
		} else {
			fmt.Printf("%s  [generate]\n", bm.Timestamp)
		}
		fmt.Printf("    %s\n", firstLine(bm.Text, 100))
	}
	return nil
}

// firstLine flattens text to a single truncated line for list output.
func firstLine(s string, width int) string {
	flat := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' {
			r = ' '
		}
		flat = append(flat, r)
	}
	if len(flat) > width {
		return string(flat[:width-3]) + "..."
	}
	return string(flat)
}
