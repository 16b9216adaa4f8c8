package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/parser"
	"github.com/lumen-lang/lumen/internal/typecache"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse lines interactively and dump the resulting AST",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("lumen repl — one expression or let binding per line, ctrl-d to exit")

			// The environment and kind cache outlive individual lines;
			// each line gets its own parser, arena and sink.
			env := ast.NewEnv()
			kinds := typecache.NewKindCache()

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					fmt.Println()
					return scanner.Err()
				}

				p := parser.New(scanner.Text(), parser.WithEnv(env), parser.WithKindCache(kinds))
				line := p.ParseReplLine()

				for _, e := range p.Errors() {
					fmt.Fprintf(os.Stderr, "error: %d..%d: %s\n", e.Span.Start, e.Span.End, e.Message)
				}

				switch {
				case line.IsEmpty():
				case line.Binding != nil:
					repr.Println(line.Binding, repr.Indent("  "), repr.OmitEmpty(true))
				default:
					repr.Println(line.Expr, repr.Indent("  "), repr.OmitEmpty(true))
				}
			}
		},
	}
}
