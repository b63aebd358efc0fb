package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"veritas/internal/api"
	"veritas/internal/store"

	"github.com/spf13/cobra"
)

// predictCmd classifies a piece of text with both models and prints the
// verdicts. Text comes from the arguments, or from stdin when piped.
var predictCmd = &cobra.Command{
	Use:   "predict [text]",
	Short: "Classify text as real or fake news",
	Long: `Classify text with both backend models and print each verdict.

The text is taken from the arguments. With no arguments it is read
from stdin, so output from other tools can be piped in.`,
	RunE: runPredict,
}

func runPredict(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no text to classify")
	}

	application, err := buildApp()
	if err != nil {
		return err
	}
	if !application.Session.Authenticated() {
		return fmt.Errorf("not logged in, run 'veritas login' first")
	}

	if err := application.Predict(cmd.Context(), text); err != nil {
		return fmt.Errorf("prediction failed: %s", api.UserMessage(err))
	}

	p := application.Content.Predict()
	if p.Status != store.StatusCompleted {
		return fmt.Errorf("prediction failed: %s", p.ErrorMessage)
	}
	fmt.Printf("custom model: %s\n", p.CustomResult)
	fmt.Printf("gemini model: %s\n", p.GeminiResult)
	return nil
}
