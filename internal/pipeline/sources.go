package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ifpBoundary splits the docket number space: paid petitions run below it,
// in forma pauperis petitions above.
const ifpBoundary = 5000

// DocketSource enumerates the docket directories of one term under the data
// root, optionally restricted to the paid or IFP number range.
type DocketSource struct {
	Root string
	Term int
	Paid bool
	IFP  bool
}

func newDocketSource(args Args) (Source, error) {
	root := args.String("root")
	if root == "" {
		return nil, fmt.Errorf("docket source requires a root")
	}
	return &DocketSource{
		Root: root,
		Term: args.Int("term", 0),
		Paid: args.Bool("paid", false),
		IFP:  args.Bool("ifp", false),
	}, nil
}

// Refs lists the term's docket directories in numeric order.
func (s *DocketSource) Refs() ([]*Ref, error) {
	dir := filepath.Join(s.Root, fmt.Sprintf("OT-%d", s.Term), "dockets")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dockets dir: %w", err)
	}

	var nums []int
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		n, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	sort.Ints(nums)

	var refs []*Ref
	for _, n := range nums {
		if !s.Paid && n < ifpBoundary {
			continue
		}
		if !s.IFP && n > ifpBoundary {
			continue
		}
		refs = append(refs, NewRef(filepath.Join(dir, strconv.Itoa(n))))
	}
	return refs, nil
}
