package main

import (
	"fmt"
	"strings"

	"veritas/cmd/veritas/ui"
	"veritas/internal/api"
	"veritas/internal/store"

	"github.com/spf13/cobra"
)

var (
	genContent string
	genStyle   string
	genLength  string
	genContext string
)

// generateCmd produces a synthetic article from the three filters and
// prints it to stdout.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic news article",
	Long: `Generate a synthetic news article from a content category, a
writing style and a target length. All three are required; the optional
context string steers the topic.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genContent, "content", "", "content category: "+optionValues(ui.ContentOptions))
	generateCmd.Flags().StringVar(&genStyle, "style", "", "writing style: "+optionValues(ui.StyleOptions))
	generateCmd.Flags().StringVar(&genLength, "length", "", "article length: "+optionValues(ui.LengthOptions))
	generateCmd.Flags().StringVar(&genContext, "context", "", "additional context for the generator")
	generateCmd.MarkFlagRequired("content")
	generateCmd.MarkFlagRequired("style")
	generateCmd.MarkFlagRequired("length")
}

func optionValues(options []ui.Option) string {
	values := make([]string, len(options))
	for i, o := range options {
		values[i] = o.Value
	}
	return strings.Join(values, "|")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if !ui.ValidValue(ui.ContentOptions, genContent) {
		return fmt.Errorf("unknown content category %q (want one of %s)", genContent, optionValues(ui.ContentOptions))
	}
	if !ui.ValidValue(ui.StyleOptions, genStyle) {
		return fmt.Errorf("unknown style %q (want one of %s)", genStyle, optionValues(ui.StyleOptions))
	}
	if !ui.ValidValue(ui.LengthOptions, genLength) {
		return fmt.Errorf("unknown length %q (want one of %s)", genLength, optionValues(ui.LengthOptions))
	}

	application, err := buildApp()
	if err != nil {
		return err
	}
	if !application.Session.Authenticated() {
		return fmt.Errorf("not logged in, run 'veritas login' first")
	}

	application.Content.SetFilters(store.Filters{
		Content: genContent,
		Style:   genStyle,
		Length:  genLength,
	})
	application.Content.SetAdditionalContext(genContext)

	if err := application.Generate(cmd.Context()); err != nil {
		return fmt.Errorf("generation failed: %s", api.UserMessage(err))
	}

	fmt.Println(application.Content.Generate().GeneratedText)
	return nil
}
