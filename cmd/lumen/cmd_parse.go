package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"github.com/ztrue/tracerr"

	"github.com/lumen-lang/lumen/internal/parser"
)

var log = commonlog.GetLogger("lumen")

func newParseCmd() *cobra.Command {
	var dumpAST bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a Lumen source file and report diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return tracerr.Wrap(err)
			}

			log.Debugf("parsing %s (%d bytes)", filename, len(data))

			p := parser.New(string(data))
			expr := p.ParseExpr()
			errs := p.Errors()

			for _, e := range errs {
				fmt.Fprintf(os.Stderr, "%s:%d..%d: %s\n", filename, e.Span.Start, e.Span.End, e.Message)
			}
			if dumpAST {
				repr.Println(expr, repr.Indent("  "), repr.OmitEmpty(true))
			}

			log.Infof("parsed %s: %d diagnostic(s)", filename, len(errs))
			if len(errs) > 0 {
				return fmt.Errorf("%s: %d parse error(s)", filename, len(errs))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dumpAST, "ast", false, "dump the parsed AST")
	return cmd
}
