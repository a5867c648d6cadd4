package maincmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mna/mainer"

	"github.com/mna/jl/lang/machine"
	"github.com/mna/jl/lang/parser"
	"github.com/mna/jl/lang/value"
)

// Repl runs an interactive read-eval-print loop over stdio: a prompt before
// each input line, each top-level form's printed result on its own "=>"
// line, and any diagnostic on stderr in between. Input is read a line at a time and
// accumulated until a complete form is ready, so a form may span several
// physical lines.
func (c *Cmd) Repl(_ context.Context, stdio mainer.Stdio, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return err
	}

	ctx := machine.NewContext(
		value.WithMaxLevels(cfg.MaxEvalDepth),
		value.WithStdout(stdio.Stdout),
		value.WithStderr(stdio.Stderr),
	)
	defer ctx.Close()

	in := bufio.NewReader(stdio.Stdin)
	var buf strings.Builder

	fmt.Fprint(stdio.Stdout, cfg.Prompt)
	for {
		line, err := in.ReadString('\n')
		buf.WriteString(line)

		if complete(buf.String()) {
			src := buf.String()
			buf.Reset()
			c.evalLine(ctx, stdio, cfg, src)
		}

		if err != nil {
			if err == io.EOF {
				return nil
			}
			fmt.Fprintf(stdio.Stderr, "%s\n", err)
			return err
		}

		fmt.Fprint(stdio.Stdout, cfg.Prompt)
	}
}

// complete reports whether src contains at least one top-level form not
// still waiting on a closing paren - a cheap paren-balance count that skips
// over string literals (honoring backslash escapes). ';' comments are not
// recognized, so a paren inside a comment is counted.
func complete(src string) bool {
	depth := 0
	seenAny := false
	inString := false
	escaped := false
	for _, r := range src {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '(':
			depth++
			seenAny = true
		case ')':
			depth--
		default:
			if !isSpaceRune(r) {
				seenAny = true
			}
		}
	}
	return seenAny && depth <= 0
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func (c *Cmd) evalLine(ctx *value.Context, stdio mainer.Stdio, cfg Config, src string) {
	p := parser.New(ctx, []byte(src))
	for p.More() {
		form := p.Parse()
		if form == nil {
			return
		}
		result := ctx.Eval(ctx, form)
		fmt.Fprintf(stdio.Stdout, "%s%s\n", cfg.ResultPrefix, value.Sprint(result))
		value.Release(ctx, result)
		value.Release(ctx, form)
	}
}
