package main

import (
	"context"
	"errors"
	"io"
	"runtime"
	"strings"

	"github.com/kpumuk/urispan/internal/text"
	"github.com/kpumuk/urispan/internal/uri"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type partsOptions struct {
	file   string
	stdin  bool
	format string
	color  string
	jobs   int
	set    []string
}

// setting replaces one component before relocation.
type setting struct {
	kind  uri.Kind
	value string
}

type result struct {
	in        input
	uri       uri.URI
	relocated bool
	fallback  error // relocation error when the copy was split again
	err       error
}

func newPartsCmd() *cobra.Command {
	var opts partsOptions
	cmd := &cobra.Command{
		Use:   "parts [URI...]",
		Short: "Split URIs and relocate their component spans onto copies",
		Example: `  urispan parts 'http://user@example.com:8080/a?b#c'
  urispan parts --file uris.txt --format yaml
  urispan parts --set host=example.org --set port=443 'https://localhost:8443/'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParts(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "", "read URIs from a file, one per line")
	f.BoolVar(&opts.stdin, "stdin", false, "read URIs from stdin, one per line")
	f.StringVar(&opts.format, "format", "table", "output format: table, yaml")
	f.StringVar(&opts.color, "color", "auto", "color output: auto, always, never")
	f.IntVarP(&opts.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of URIs processed concurrently")
	f.StringArrayVar(&opts.set, "set", nil, "replace a present component as kind=value before relocation (repeatable)")
	return cmd
}

func (o partsOptions) validate(args []string) error {
	sources := 0
	if o.file != "" {
		sources++
	}
	if o.stdin {
		sources++
	}
	if len(args) > 0 {
		sources++
	}
	switch {
	case sources == 0:
		return usageErrorf("no URIs given: pass URIs as arguments, --file or --stdin")
	case sources > 1:
		return usageErrorf("URI arguments, --file and --stdin are mutually exclusive")
	}
	switch o.format {
	case "table", "yaml":
	default:
		return usageErrorf("unknown --format %q (want table or yaml)", o.format)
	}
	switch o.color {
	case "auto", "always", "never":
	default:
		return usageErrorf("unknown --color %q (want auto, always or never)", o.color)
	}
	if o.jobs < 1 {
		return usageErrorf("--jobs must be at least 1, got %d", o.jobs)
	}
	return nil
}

func parseSettings(specs []string) ([]setting, error) {
	out := make([]setting, 0, len(specs))
	for _, spec := range specs {
		name, value, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, usageErrorf("invalid --set %q: expected kind=value", spec)
		}
		kind, err := uri.ParseKind(name)
		if err != nil {
			return nil, usageErrorf("invalid --set %q: %v", spec, err)
		}
		out = append(out, setting{kind: kind, value: value})
	}
	return out, nil
}

func collectInputs(stdin io.Reader, opts partsOptions, args []string) ([]input, error) {
	switch {
	case opts.file != "":
		return readInputFile(opts.file)
	case opts.stdin:
		return readInputStream(stdin)
	default:
		return argInputs(args), nil
	}
}

func runParts(cmd *cobra.Command, opts partsOptions, args []string) error {
	if err := opts.validate(args); err != nil {
		return err
	}
	settings, err := parseSettings(opts.set)
	if err != nil {
		return err
	}
	inputs, err := collectInputs(cmd.InOrStdin(), opts, args)
	if err != nil {
		return err
	}

	results, err := relocateAll(cmd.Context(), inputs, settings, opts.jobs)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	stderr := cmd.ErrOrStderr()
	failed := false
	for _, r := range results {
		switch {
		case r.err != nil:
			failed = true
			writef(stderr, "%s: %v\n", r.in.location(errorOffset(r.err)), r.err)
		case verbose && r.relocated:
			writef(stderr, "%s: relocated %d components\n", r.in.location(0), len(r.uri.Parts().Present()))
		case verbose:
			writef(stderr, "%s: split copy again: %v\n", r.in.location(errorOffset(r.fallback)), r.fallback)
		}
	}

	out := cmd.OutOrStdout()
	switch opts.format {
	case "yaml":
		err = writeYAML(out, results)
	default:
		writeTable(out, results, newStyles(colorEnabled(opts.color, out)))
	}
	if err != nil {
		return err
	}
	if failed {
		return errFailed
	}
	return nil
}

// relocateAll processes inputs on up to jobs workers. Results keep input order.
func relocateAll(ctx context.Context, inputs []input, settings []setting, jobs int) ([]result, error) {
	results := make([]result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = relocateOne(in, settings)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func relocateOne(in input, settings []setting) result {
	u := uri.Parse(in.text)
	for _, s := range settings {
		next, err := u.WithPart(s.kind, s.value)
		if err != nil {
			return result{in: in, err: err}
		}
		u = next
	}

	c, err := u.Rebase(u.Buffer().Copy())
	if err != nil {
		return result{in: in, uri: u.Clone(), fallback: err}
	}
	return result{in: in, uri: c, relocated: true}
}

func errorOffset(err error) text.ByteOffset {
	var e *uri.Error
	if errors.As(err, &e) {
		return e.Offset
	}
	return 0
}
