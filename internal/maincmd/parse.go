package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/jl/lang/parser"
	"github.com/mna/jl/lang/value"
)

// Parse runs the scanner and parser over each file in turn and prints every
// top-level form it produces, in the same textual form evaluation results
// are printed in.
func (c *Cmd) Parse(_ context.Context, stdio mainer.Stdio, args []string) error {
	var failed bool
	for _, path := range args {
		if err := parseFile(stdio, path); err != nil {
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("parse: one or more files failed")
	}
	return nil
}

func parseFile(stdio mainer.Stdio, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return err
	}

	var failed bool
	ctx := value.NewContext(
		value.WithStdout(stdio.Stdout),
		value.WithStderr(stdio.Stderr),
		value.WithErrorSink(func(line int, format string, fargs ...any) {
			failed = true
			fmt.Fprintf(stdio.Stderr, "%s:%d: "+format+"\n", append([]any{path, line}, fargs...)...)
		}),
	)
	defer ctx.Close()

	p := parser.New(ctx, src)
	for p.More() {
		form := p.Parse()
		if form == nil {
			failed = true
			break
		}
		fmt.Fprintf(stdio.Stdout, "%s\n", value.Sprint(form))
		value.Release(ctx, form)
	}

	if failed {
		return fmt.Errorf("%s: parse failed", path)
	}
	return nil
}
