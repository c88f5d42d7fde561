package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/babel-tcc/kwtables"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}
	if args[0] != "validate" {
		_ = writef(stderr, "error: unknown command %q\n", args[0])
		usage(stderr)
		return 2
	}

	fs := flag.NewFlagSet("kwlint validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	rootPath := fs.String("root", "", "path to the data repository root (default: positional argument or .)")
	lang := fs.String("lang", "", "restrict validation to one natural-language code")
	workers := fs.Int("workers", 0, "number of concurrent file pipelines (default: one per CPU)")
	quiet := fs.Bool("q", false, "suppress the summary, print diagnostics only")
	fs.Usage = func() { usage(stderr) }
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}

	root := *rootPath
	switch remaining := fs.Args(); {
	case root == "" && len(remaining) == 1:
		root = remaining[0]
	case root == "" && len(remaining) == 0:
		root = "."
	case len(remaining) > 0:
		_ = writeln(stderr, "error: at most one root directory argument is allowed")
		usage(stderr)
		return 2
	}

	var opts []kwtables.Option
	if *lang != "" {
		opts = append(opts, kwtables.WithLanguages(*lang))
	}
	if *workers > 0 {
		opts = append(opts, kwtables.WithWorkers(*workers))
	}

	repo, err := kwtables.OpenDir(root, opts...)
	if err != nil {
		_ = writef(stderr, "error: %v\n", err)
		return 2
	}

	report, err := repo.Validate()
	if err != nil {
		_ = writef(stderr, "error: %v\n", err)
		return 2
	}

	for _, d := range report.Diagnostics() {
		if err := writef(stderr, "%s:%s: [%s] %s\n", d.File, d.Path, d.Code, d.Message); err != nil {
			return 2
		}
	}

	if !*quiet {
		if err := writeSummary(stdout, report); err != nil {
			return 2
		}
	}

	if report.Failed() {
		return 1
	}
	return 0
}

// phases groups error codes into the four validation phases shown in the
// summary.
var phases = []struct {
	name  string
	codes []string
}{
	{name: "syntax", codes: []string{"io-error", "syntax-error"}},
	{name: "schema", codes: []string{"schema-violation", "duplicate-key", "range-error", "format-error"}},
	{name: "completeness", codes: []string{"completeness-missing", "completeness-extra", "unknown-programming-language"}},
	{name: "uniqueness", codes: []string{"duplicate-translation"}},
}

func writeSummary(w io.Writer, report *kwtables.Report) error {
	counts := report.CountByCode()
	total := 0
	for _, phase := range phases {
		n := 0
		for _, code := range phase.codes {
			n += counts[code]
		}
		total += n
		if n == 0 {
			if err := writef(w, "%-13s ok\n", phase.name); err != nil {
				return err
			}
			continue
		}
		if err := writef(w, "%-13s FAILED (%d)\n", phase.name, n); err != nil {
			return err
		}
	}
	if total > 0 {
		return writef(w, "\n%d error(s) found across %d file(s)\n", total, len(report.Files))
	}
	return writef(w, "\n%d file(s) validate\n", len(report.Files))
}

func usage(w io.Writer) {
	_ = errors.Join(
		writef(w, "Usage: kwlint validate [options] [root]\n\n"),
		writeln(w, "Validates keyword tables and their natural-language translations."),
		writeln(w),
		writeln(w, "Options:"),
		writeln(w, "  -root DIR     path to the data repository root"),
		writeln(w, "  -lang CODE    restrict validation to one natural-language code"),
		writeln(w, "  -workers N    number of concurrent file pipelines"),
		writeln(w, "  -q            suppress the summary, print diagnostics only"),
	)
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
