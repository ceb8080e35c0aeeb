// Package schemainfer orchestrates the three-stage inference pipeline
// (Parser -> Extractor -> Assembler) over a sequence of captured traces.
// The typename-injection companion lives in package typename
// (typename.Inject).
package schemainfer

import (
	"context"
	"io"
	"log"

	"github.com/romain-gilliotte/graphql-schema-infer/assemble"
	"github.com/romain-gilliotte/graphql-schema-infer/extract"
	"github.com/romain-gilliotte/graphql-schema-infer/operation"
	"github.com/romain-gilliotte/graphql-schema-infer/registry"
	"github.com/romain-gilliotte/graphql-schema-infer/trace"
)

// Option configures Infer, functional-options style.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger wires an optional *log.Logger that receives two summary
// lines per run: the number of operations parsed from the traces, and the
// number of types and enums in the registry. Individual skipped traces,
// bodies and operations are not logged. Nil is equivalent to not calling
// this option.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

var discardLogger = log.New(io.Discard, "", 0)

// Result is the inference run's output: the populated registry, its root
// field lists, and the rendered SDL.
type Result struct {
	Registry   *registry.TypeRegistry
	RootFields extract.RootFields
	SDL        string
}

// Infer runs the full pipeline over traces: parse, extract, assemble.
// ctx is checked between pipeline stages only (spec.md §5: the inference
// core never suspends or blocks internally), so cancellation granularity
// is coarse by design.
func Infer(ctx context.Context, traces []trace.Trace, opts ...Option) (*Result, error) {
	o := &options{logger: discardLogger}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = discardLogger
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ops := operation.Parse(traces)
	o.logger.Printf("parsed %d operations from %d traces", len(ops), len(traces))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	extracted := extract.Extract(ops, traces)
	o.logger.Printf("registry: %d types, %d enums", len(extracted.Registry.Types), len(extracted.Registry.Enums))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sdl := assemble.BuildSDL(extracted.Registry, extracted.RootFields)

	return &Result{
		Registry:   extracted.Registry,
		RootFields: extracted.RootFields,
		SDL:        sdl,
	}, nil
}
