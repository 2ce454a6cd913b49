// Package pipeline composes docket enumeration, boolean filters, index
// queries and renderers into batch reports. Implementations are looked up
// through an explicit registry rather than import-time side effects, so the
// available set is visible in one place and testable.
package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docketwatch/docket-api/internal/docket"
	"github.com/docketwatch/docket-api/internal/models"
	"github.com/docketwatch/docket-api/internal/ngram"
)

// Ref is a lazy handle on one docket directory. Status and index are built
// on first use and cached for the rest of the run.
type Ref struct {
	Path string

	status    *docket.Status
	statusErr error
	loaded    bool

	index    *ngram.Index
	indexErr error
	indexed  bool
}

// NewRef builds a reference for a docket directory.
func NewRef(path string) *Ref {
	return &Ref{Path: path}
}

// Info returns the derived case status, building it on first call. Batch
// runs prioritize throughput, so case-name failures are suppressed.
func (r *Ref) Info() (*docket.Status, error) {
	if r.loaded {
		return r.status, r.statusErr
	}
	r.loaded = true

	payload, err := os.ReadFile(filepath.Join(r.Path, "docket.json"))
	if err != nil {
		r.statusErr = err
		return nil, err
	}
	doc := &models.Docket{}
	if err := json.Unmarshal(payload, doc); err != nil {
		r.statusErr = fmt.Errorf("decode docket.json: %w", err)
		return nil, r.statusErr
	}
	dir := r.Path
	r.status, r.statusErr = docket.Build(doc, docket.BuildOptions{
		IgnoreCaseNameErrors: true,
		Resolver: func(description, file string) string {
			return filepath.Join(dir, file)
		},
	})
	return r.status, r.statusErr
}

// Index returns the docket's n-gram index, loading it on first call.
func (r *Ref) Index() (*ngram.Index, error) {
	if r.indexed {
		return r.index, r.indexErr
	}
	r.indexed = true
	r.index, r.indexErr = ngram.Load(r.Path)
	return r.index, r.indexErr
}

// Args carries the string-keyed construction parameters for a pipeline
// stage.
type Args map[string]interface{}

// Int reads an integer argument with a fallback.
func (a Args) Int(key string, fallback int) int {
	if v, ok := a[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		}
	}
	return fallback
}

// String reads a string argument.
func (a Args) String(key string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return ""
}

// Bool reads a boolean argument with a fallback.
func (a Args) Bool(key string, fallback bool) bool {
	if v, ok := a[key].(bool); ok {
		return v
	}
	return fallback
}

// Source enumerates docket references.
type Source interface {
	Refs() ([]*Ref, error)
}

// Filter decides whether a reference stays in the result set.
type Filter interface {
	Include(ref *Ref) (bool, error)
}

// Match carries query hit metadata (term, occurrence count).
type Match map[string]interface{}

// Query tests a reference against an index or event text. A nil match
// excludes the reference.
type Query interface {
	Query(ref *Ref) (Match, error)
}

// Output renders one matching reference.
type Output interface {
	Render(ref *Ref, match Match) (string, error)
}

// Registry maps stage names to constructors.
type Registry struct {
	sources map[string]func(Args) (Source, error)
	filters map[string]func(Args) (Filter, error)
	queries map[string]func(Args) (Query, error)
	outputs map[string]func(Args) (Output, error)
}

// NewRegistry returns a registry preloaded with the built-in stages.
func NewRegistry() *Registry {
	r := &Registry{
		sources: map[string]func(Args) (Source, error){},
		filters: map[string]func(Args) (Filter, error){},
		queries: map[string]func(Args) (Query, error){},
		outputs: map[string]func(Args) (Output, error){},
	}
	r.RegisterSource("docket", newDocketSource)
	r.RegisterFilter("lowercourt", newLowerCourtFilter)
	r.RegisterQuery("petition-ngram", newPetitionQuery)
	r.RegisterQuery("event-text", newEventTextQuery)
	r.RegisterOutput("docket-oneline", newOneLineOutput)
	return r
}

// RegisterSource adds a source constructor under the given name.
func (r *Registry) RegisterSource(name string, build func(Args) (Source, error)) {
	r.sources[name] = build
}

// RegisterFilter adds a filter constructor under the given name.
func (r *Registry) RegisterFilter(name string, build func(Args) (Filter, error)) {
	r.filters[name] = build
}

// RegisterQuery adds a query constructor under the given name.
func (r *Registry) RegisterQuery(name string, build func(Args) (Query, error)) {
	r.queries[name] = build
}

// RegisterOutput adds an output constructor under the given name.
func (r *Registry) RegisterOutput(name string, build func(Args) (Output, error)) {
	r.outputs[name] = build
}

// Source constructs a named source.
func (r *Registry) Source(name string, args Args) (Source, error) {
	build, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown source %q", name)
	}
	return build(args)
}

// Filter constructs a named filter.
func (r *Registry) Filter(name string, args Args) (Filter, error) {
	build, ok := r.filters[name]
	if !ok {
		return nil, fmt.Errorf("unknown filter %q", name)
	}
	return build(args)
}

// Query constructs a named query.
func (r *Registry) Query(name string, args Args) (Query, error) {
	build, ok := r.queries[name]
	if !ok {
		return nil, fmt.Errorf("unknown query %q", name)
	}
	return build(args)
}

// Output constructs a named output.
func (r *Registry) Output(name string, args Args) (Output, error) {
	build, ok := r.outputs[name]
	if !ok {
		return nil, fmt.Errorf("unknown output %q", name)
	}
	return build(args)
}

// Pipeline is one assembled run: a source, any number of filters and
// queries, and an output.
type Pipeline struct {
	Source  Source
	Filters []Filter
	Queries []Query
	Output  Output
}

// Run enumerates the source, applies filters and queries in order, and
// renders every surviving reference. A reference whose status cannot be
// built is skipped, not fatal: one malformed case must not halt a batch.
func (p *Pipeline) Run() ([]string, error) {
	refs, err := p.Source.Refs()
	if err != nil {
		return nil, err
	}

	var lines []string
refs:
	for _, ref := range refs {
		if _, err := ref.Info(); err != nil {
			continue
		}
		for _, f := range p.Filters {
			ok, err := f.Include(ref)
			if err != nil || !ok {
				continue refs
			}
		}
		match := Match{}
		for _, q := range p.Queries {
			m, err := q.Query(ref)
			if err != nil || m == nil {
				continue refs
			}
			for k, v := range m {
				match[k] = v
			}
		}
		line, err := p.Output.Render(ref, match)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
