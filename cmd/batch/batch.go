// Package batch handles batch processing of files
package batch

import (
	"fmt"

	"fjacquet/livro-caixa/cmd/common"
	"fjacquet/livro-caixa/cmd/root"
	"fjacquet/livro-caixa/internal/validation"

	"github.com/spf13/cobra"
)

// Format is the preview output format flag.
var Format string

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process statements from a directory",
	Long: `Parse every statement in an input directory and write one preview per file
into the output directory. A file that fails to import is logged and skipped.

Example:
  livro-caixa batch -i extratos/ -o previews/`,
	RunE: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Format, "format", "f", "json", "Preview format: json, csv or yaml")
}

func batchFunc(cmd *cobra.Command, args []string) error {
	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output

	if inputDir == "" || outputDir == "" {
		return fmt.Errorf("input and output directories must be specified")
	}
	if err := validation.IsValidOutputFormat(Format); err != nil {
		return err
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}

	result, err := common.ProcessDirectory(appContainer, inputDir, outputDir, Format)
	if err != nil {
		return fmt.Errorf("error during batch import: %w", err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Batch processing completed: %d imported, %d failed.\n",
		result.Processed, result.Failed)
	return err
}
