package replay_test

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/jl/internal/replay"
	"github.com/mna/jl/lang/machine"
	"github.com/mna/jl/lang/parser"
	"github.com/mna/jl/lang/value"
)

var testUpdateReplayTests = flag.Bool("test.update-replay-tests", false, "If set, replace expected replay test results with actual results.")

// TestReplay runs every testdata/in/*.jl program to completion, printing
// each top-level form's result on its own "=> " line the way the repl
// command does, and diffs the transcript against testdata/out.
func TestReplay(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, fi := range replay.SourceFiles(t, srcDir, ".jl") {
		t.Run(fi.Name(), func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join(srcDir, fi.Name()))
			if err != nil {
				t.Fatal(err)
			}

			var out, errs bytes.Buffer
			ctx := machine.NewContext(
				value.WithStdout(&out),
				value.WithStderr(&errs),
				value.WithErrorSink(func(line int, format string, args ...any) {
					fmt.Fprintf(&errs, "%d: "+format+"\n", append([]any{line}, args...)...)
				}),
			)

			p := parser.New(ctx, src)
			for p.More() {
				form := p.Parse()
				if form == nil {
					break
				}
				result := ctx.Eval(ctx, form)
				fmt.Fprintf(&out, "=> %s\n", value.Sprint(result))
				value.Release(ctx, result)
				value.Release(ctx, form)
			}
			ctx.Close()

			replay.DiffOutput(t, fi, out.String(), resultDir, testUpdateReplayTests)
			replay.DiffErrors(t, fi, errs.String(), resultDir, testUpdateReplayTests)
		})
	}
}
