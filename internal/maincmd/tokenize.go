package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/jl/lang/scanner"
	"github.com/mna/jl/lang/token"
)

// Tokenize runs the scanner alone over each file in turn and prints every
// token it produces, one per line, tagged with its source line number.
func (c *Cmd) Tokenize(_ context.Context, stdio mainer.Stdio, args []string) error {
	var failed bool
	for _, path := range args {
		if err := tokenizeFile(stdio, path); err != nil {
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("tokenize: one or more files failed")
	}
	return nil
}

func tokenizeFile(stdio mainer.Stdio, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return err
	}

	var sc scanner.Scanner
	sc.Init(src)
	for {
		tok, lit, pos := sc.Scan()
		if tok == token.EOF {
			return nil
		}
		if lit != "" {
			fmt.Fprintf(stdio.Stdout, "%s:%d: %s %q\n", path, pos.Line(), tok, lit)
		} else {
			fmt.Fprintf(stdio.Stdout, "%s:%d: %s\n", path, pos.Line(), tok)
		}
		if tok == token.ILLEGAL {
			return fmt.Errorf("%s:%d: illegal token", path, pos.Line())
		}
	}
}
