package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"
)

// PetitionQuery matches dockets whose petition document contains the query
// term at least min-count times, via the n-gram index.
type PetitionQuery struct {
	Term     string
	MinCount int
}

func newPetitionQuery(args Args) (Query, error) {
	term := args.String("term")
	if term == "" {
		return nil, fmt.Errorf("petition-ngram query requires a term")
	}
	return &PetitionQuery{Term: term, MinCount: args.Int("min_count", 1)}, nil
}

// Query looks the term up in the petition's gram table.
func (q *PetitionQuery) Query(ref *Ref) (Match, error) {
	info, err := ref.Info()
	if err != nil {
		return nil, err
	}
	if info.PetitionPath == "" {
		return nil, nil
	}
	ix, err := ref.Index()
	if err != nil {
		return nil, nil
	}

	n := len(strings.Fields(q.Term))
	count := ix.GramSearch(filepath.Base(info.PetitionPath), n, q.Term)
	if count < q.MinCount {
		return nil, nil
	}
	return Match{"query_term": q.Term, "count": count}, nil
}

// Event-text matching modes.
const (
	MatchContains   = "contains"
	MatchStartsWith = "startswith"
)

// EventTextQuery matches dockets with at least min-count events whose text
// contains (or starts with) the query term.
type EventTextQuery struct {
	Term          string
	Mode          string
	CaseSensitive bool
	MinCount      int
}

func newEventTextQuery(args Args) (Query, error) {
	term := args.String("term")
	if term == "" {
		return nil, fmt.Errorf("event-text query requires a term")
	}
	mode := args.String("mode")
	if mode == "" {
		mode = MatchContains
	}
	if mode != MatchContains && mode != MatchStartsWith {
		return nil, fmt.Errorf("unknown event-text mode %q", mode)
	}
	q := &EventTextQuery{
		Term:          term,
		Mode:          mode,
		CaseSensitive: args.Bool("case_sensitive", false),
		MinCount:      args.Int("min_count", 1),
	}
	if !q.CaseSensitive {
		q.Term = strings.ToLower(q.Term)
	}
	return q, nil
}

// Query scans the docket's events for the term.
func (q *EventTextQuery) Query(ref *Ref) (Match, error) {
	info, err := ref.Info()
	if err != nil {
		return nil, err
	}

	count := 0
	for _, ev := range info.Events {
		text := ev.Text
		if !q.CaseSensitive {
			text = strings.ToLower(text)
		}
		switch q.Mode {
		case MatchStartsWith:
			if strings.HasPrefix(text, q.Term) {
				count++
			}
		default:
			count += strings.Count(text, q.Term)
		}
	}
	if count < q.MinCount {
		return nil, nil
	}
	return Match{"query_term": q.Term, "count": count}, nil
}
