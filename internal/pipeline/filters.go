package pipeline

import (
	"fmt"

	"github.com/docketwatch/docket-api/internal/docket"
)

// LowerCourtFilter keeps dockets appealed from a specific lower court,
// identified by abbreviation.
type LowerCourtFilter struct {
	court *docket.CourtMatch
}

func newLowerCourtFilter(args Args) (Filter, error) {
	abbr := args.String("court")
	match, ok := docket.CourtNames[abbr]
	if !ok {
		return nil, fmt.Errorf("unknown court abbreviation %q", abbr)
	}
	return &LowerCourtFilter{court: match}, nil
}

// Include reports whether the docket's lower court matches.
func (f *LowerCourtFilter) Include(ref *Ref) (bool, error) {
	info, err := ref.Info()
	if err != nil {
		return false, err
	}
	if info.LowerCourt == "" {
		return false, nil
	}
	return f.court.Match(info.LowerCourt), nil
}
