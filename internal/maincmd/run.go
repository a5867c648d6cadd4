package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/jl/lang/machine"
	"github.com/mna/jl/lang/parser"
	"github.com/mna/jl/lang/value"
)

// Run parses and evaluates a single source file to completion, discarding
// every intermediate result but the last. It does not print anything of its
// own; the source is expected to drive output itself once a print builtin
// exists, the same way the reference implementation's jl binary works.
func (c *Cmd) Run(_ context.Context, stdio mainer.Stdio, args []string) error {
	path := args[0]

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return err
	}

	var failed bool
	ctx := machine.NewContext(
		value.WithMaxLevels(cfg.MaxEvalDepth),
		value.WithStdout(stdio.Stdout),
		value.WithStderr(stdio.Stderr),
		value.WithErrorSink(func(line int, format string, fargs ...any) {
			failed = true
			fmt.Fprintf(stdio.Stderr, "%s:%d: "+format+"\n", append([]any{path, line}, fargs...)...)
		}),
	)
	defer ctx.Close()

	p := parser.New(ctx, src)
	var last *value.Value
	for p.More() {
		form := p.Parse()
		if form == nil {
			failed = true
			break
		}
		if last != nil {
			value.Release(ctx, last)
		}
		last = ctx.Eval(ctx, form)
		value.Release(ctx, form)
	}
	value.Release(ctx, last)

	if failed {
		return fmt.Errorf("%s: evaluation failed", path)
	}
	return nil
}
