package main

import (
	"fmt"
	"os"

	"fjacquet/livro-caixa/cmd/batch"
	"fjacquet/livro-caixa/cmd/detect"
	"fjacquet/livro-caixa/cmd/parse"
	"fjacquet/livro-caixa/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(detect.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
