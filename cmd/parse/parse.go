// Package parse implements the parse command: one statement in, one preview out.
package parse

import (
	"fmt"

	"fjacquet/livro-caixa/cmd/common"
	"fjacquet/livro-caixa/cmd/root"
	"fjacquet/livro-caixa/internal/logging"
	"fjacquet/livro-caixa/internal/validation"

	"github.com/spf13/cobra"
)

// Format is the preview output format flag.
var Format string

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a CSV or OFX statement into a transaction preview",
	Long: `Parse a bank statement and print the preview envelope.

The format is detected from the file extension, then the declared content type
(--content-type), then the first bytes of the file.

Example:
  livro-caixa parse -i extrato.ofx
  livro-caixa parse -i extrato.csv -o preview.csv --format csv`,
	RunE: parseFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Format, "format", "f", "json", "Preview format: json, csv or yaml")
}

func parseFunc(cmd *cobra.Command, args []string) error {
	inputFile := root.SharedFlags.Input
	if inputFile == "" {
		return fmt.Errorf("input file must be specified with --input")
	}
	if err := validation.IsValidPath(inputFile); err != nil {
		return err
	}
	if err := validation.IsValidOutputFormat(Format); err != nil {
		return err
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}

	extract, err := common.ProcessFile(appContainer, common.Request{
		InputFile:   inputFile,
		OutputFile:  root.SharedFlags.Output,
		ContentType: root.SharedFlags.ContentType,
		Format:      Format,
	}, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	appContainer.GetLogger().Info("Parse completed",
		logging.F(logging.FieldFormat, extract.Format),
		logging.F(logging.FieldCount, len(extract.Transactions)))
	return nil
}
