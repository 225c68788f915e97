// Package detect implements the detect command.
package detect

import (
	"fmt"

	"fjacquet/livro-caixa/cmd/common"
	"fjacquet/livro-caixa/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the detect command
var Cmd = &cobra.Command{
	Use:   "detect",
	Short: "Print the detected format of a statement (csv, ofx, pdf or unsupported)",
	Long: `Detect the format of a statement without parsing it.

Example:
  livro-caixa detect -i download --content-type application/x-ofx`,
	RunE: detectFunc,
}

func detectFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("input file must be specified with --input")
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}

	upload, err := common.ReadUpload(appContainer, root.SharedFlags.Input, root.SharedFlags.ContentType)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), appContainer.GetService().Detect(upload))
	return err
}
