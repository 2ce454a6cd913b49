package docket

import "strings"

// CourtMatch matches a lower-court name against a set of exact names,
// prefixes and a partial fragment. Several states report multiple appellate
// divisions under one abbreviation, which is what the prefix and partial
// forms are for.
type CourtMatch struct {
	names   []string
	starts  []string
	partial string
}

// Court builds a matcher over exact names.
func Court(names ...string) *CourtMatch {
	return &CourtMatch{names: names}
}

// WithStart adds a name-prefix form.
func (m *CourtMatch) WithStart(prefix string) *CourtMatch {
	m.starts = append(m.starts, prefix)
	return m
}

// WithPartial adds a substring form.
func (m *CourtMatch) WithPartial(fragment string) *CourtMatch {
	m.partial = fragment
	return m
}

// Match reports whether the given court name is covered by this matcher.
func (m *CourtMatch) Match(name string) bool {
	if name == "" {
		return false
	}
	for _, n := range m.names {
		if n == name {
			return true
		}
	}
	for _, p := range m.starts {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return m.partial != "" && strings.Contains(name, m.partial)
}

// CourtNames maps court abbreviations to lower-court name matchers.
var CourtNames = map[string]*CourtMatch{
	"CA1":  Court("United States Court of Appeals for the First Circuit"),
	"CA2":  Court("United States Court of Appeals for the Second Circuit"),
	"CA3":  Court("United States Court of Appeals for the Third Circuit"),
	"CA4":  Court("United States Court of Appeals for the Fourth Circuit"),
	"CA5":  Court("United States Court of Appeals for the Fifth Circuit"),
	"CA6":  Court("United States Court of Appeals for the Sixth Circuit"),
	"CA7":  Court("United States Court of Appeals for the Seventh Circuit"),
	"CA8":  Court("United States Court of Appeals for the Eighth Circuit"),
	"CA9":  Court("United States Court of Appeals for the Ninth Circuit"),
	"CA10": Court("United States Court of Appeals for the Tenth Circuit"),
	"CA11": Court("United States Court of Appeals for the Eleventh Circuit"),
	"CADC": Court("United States Court of Appeals for the DC Circuit",
		"United States Court of Appeals for the District of Columbia Circuit"),
	"CAFC": Court("United States Court of Appeals for the Federal Circuit"),
	"CAAF": Court("United States Court of Appeals for the Armed Forces"),

	"caAK": Court("Court of Appeals of Alaska"),
	"caAL": Court("Court of Criminal Appeals of Alabama",
		"Court of Civil Appeals of Alabama").WithStart("Circuit Court of Alabama"),
	"caAZ": Court().WithStart("Court of Appeals of Arizona"),
	"caCA": Court().WithStart("Court of Appeal of California"),
	"caCO": Court("Court of Appeals of Colorado"),
	"caCT": Court("Appellate Court of Connecticut"),
	"caDC": Court("District of Columbia Court of Appeals"),
	"caFL": Court().WithStart("District Court of Appeal of Florida"),
	"caGA": Court("Court of Appeals of Georgia"),
	"caIL": Court().WithStart("Appellate Court of Illinois"),
	"caMD": Court("Court of Appeals of Maryland", "Court of Special Appeals of Maryland"),
	"caMI": Court().WithStart("Court of Appeals of Michigan"),
	"caNJ": Court("Superior Court of New Jersey, Appellate Division"),
	"caNY": Court().WithStart("Appellate Division, Supreme Court of New York"),
	"caOH": Court().WithStart("Court of Appeals of Ohio"),
	"caOK": Court().WithStart("Court of Civil Appeals of Oklahoma").
		WithStart("Court of Criminal Appeals of Oklahoma"),
	"caPA": Court("Commonwealth Court of Pennsylvania").WithStart("Superior Court of Pennsylvania"),
	"caTN": Court().WithStart("Court of Criminal Appeals of Tennessee").
		WithStart("Court of Appeals of Tennessee"),
	"caTX": Court().WithStart("Court of Appeals of Texas"),
	"caWA": Court().WithStart("Court of Appeals of Washington"),

	"scAK": Court("Supreme Court of Alaska"),
	"scAL": Court("Supreme Court of Alabama"),
	"scAR": Court("Supreme Court of Arkansas"),
	"scAZ": Court("Supreme Court of Arizona"),
	"scCA": Court("Supreme Court of California"),
	"scCO": Court("Supreme Court of Colorado"),
	"scCT": Court("Supreme Court of Connecticut"),
	"scDE": Court("Supreme Court of Delaware"),
	"scFL": Court("Supreme Court of Florida"),
	"scGA": Court("Supreme Court of Georgia"),
	"scHI": Court("Supreme Court of Hawaii"),
	"scIL": Court("Supreme Court of Illinois"),
	"scIN": Court("Supreme Court of Indiana"),
	"scKY": Court("Supreme Court of Kentucky"),
	"scLA": Court("Supreme Court of Louisiana"),
	"scMA": Court("Supreme Judicial Court of Massachusetts"),
	"scMI": Court("Supreme Court of Michigan"),
	"scMO": Court("Supreme Court of Missouri"),
	"scMT": Court("Supreme Court of Montana"),
	"scNC": Court("Supreme Court of North Carolina"),
	"scNJ": Court("Supreme Court of New Jersey"),
	"scNV": Court("Supreme Court of Nevada"),
	"scNY": Court("Court of Appeals of New York"),
	"scOH": Court("Supreme Court of Ohio"),
	"scOK": Court("Supreme Court of Oklahoma"),
	"scOR": Court("Supreme Court of Oregon"),
	"scPA": Court().WithStart("Supreme Court of Pennsylvania"),
	"scTN": Court().WithStart("Supreme Court of Tennessee"),
	"scTX": Court("Supreme Court of Texas", "Court of Criminal Appeals of Texas"),
	"scUT": Court("Supreme Court of Utah"),
	"scVA": Court("Supreme Court of Virginia"),
	"scWA": Court("Supreme Court of Washington"),
	"scWI": Court("Supreme Court of Wisconsin"),
	"scWV": Court("Supreme Court of Appeals of West Virginia"),
	"scWY": Court("Supreme Court of Wyoming"),
}

// CourtAbbreviation reverse-maps a full lower-court name to its
// abbreviation, for summary outputs.
func CourtAbbreviation(name string) string {
	if name == "" {
		return ""
	}
	for abbr, m := range CourtNames {
		if m.Match(name) {
			return abbr
		}
	}
	return ""
}
