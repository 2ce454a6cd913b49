package docket

import (
	"strings"

	"github.com/docketwatch/docket-api/internal/models"
	appErrors "github.com/docketwatch/docket-api/pkg/errors"
)

// CaseType is the fixed enumeration of petition kinds.
type CaseType string

const (
	TypeCertiorari  CaseType = "certiorari"
	TypeMandamus    CaseType = "mandamus"
	TypeHabeas      CaseType = "habeas"
	TypeJurisdiction CaseType = "jurisdiction"
	TypeProhibition CaseType = "prohibition"
	TypeStay        CaseType = "stay"
	TypeBail        CaseType = "bail"
	TypeExtension   CaseType = "extension"
	TypeExcess      CaseType = "excess"
	TypeMandatory   CaseType = "mandatory"
)

// petitionTypes is the keyword vocabulary scanned for in petition text,
// in match priority order.
var petitionTypes = []struct {
	keyword string
	ctype   CaseType
}{
	{"certiorari", TypeCertiorari},
	{"mandamus", TypeMandamus},
	{"habeas", TypeHabeas},
	{"jurisdiction", TypeJurisdiction},
	{"prohibition", TypeProhibition},
	{"stay", TypeStay},
	{"bail", TypeBail},
	{"extension", TypeExtension},
	{"excess", TypeExcess},
}

const jurisdictionalStatement = "Jurisdictional Statement"

// ClassifyCaseType determines the case type from header fields and raw
// proceeding text, before and independent of event tagging. The priority
// order here matches the docket sheet conventions and must not be
// rearranged: several steps only make sense given that the earlier ones
// failed to match.
func ClassifyCaseType(doc *models.Docket) (CaseType, error) {
	docket := strings.TrimSpace(doc.CaseNumber)

	// Direct appeals open with a jurisdictional statement instead of a
	// petition.
	if len(doc.Proceedings) > 0 && strings.HasPrefix(doc.Proceedings[0].Text, jurisdictionalStatement) {
		return TypeMandatory, nil
	}

	for _, p := range doc.Proceedings {
		if !strings.HasPrefix(p.Text, "Petition") {
			continue
		}
		for _, pt := range petitionTypes {
			if strings.Contains(p.Text, pt.keyword) {
				return pt.ctype, nil
			}
		}
	}

	found := findPetitionProceeding(doc)
	bothTitles := doc.PetitionerTitle != "" && doc.RespondentTitle != ""
	if found == nil && !bothTitles {
		return "", appErrors.CaseTypeError(docket)
	}

	if bothTitles {
		return TypeCertiorari, nil
	}

	// Tokenize the found proceeding and intersect with the vocabulary.
	tokens := map[string]struct{}{}
	for _, tok := range strings.Fields(strings.ReplaceAll(found.Text, ",", "")) {
		tokens[strings.ToLower(tok)] = struct{}{}
	}
	for _, pt := range petitionTypes {
		if _, ok := tokens[pt.keyword]; ok {
			return pt.ctype, nil
		}
	}
	return "", appErrors.CaseTypeError(docket)
}

// findPetitionProceeding locates the first proceeding carrying a link
// described as "Petition", or failing that the first whose text starts with
// "Application".
func findPetitionProceeding(doc *models.Docket) *models.Proceeding {
	for i := range doc.Proceedings {
		for _, link := range doc.Proceedings[i].Links {
			if link.Description == "Petition" {
				return &doc.Proceedings[i]
			}
		}
	}
	for i := range doc.Proceedings {
		if strings.HasPrefix(doc.Proceedings[i].Text, "Application") {
			return &doc.Proceedings[i]
		}
	}
	return nil
}

// BuildCaseName derives the canonical case name from the header titles.
func BuildCaseName(doc *models.Docket, ctype CaseType) (string, error) {
	docket := strings.TrimSpace(doc.CaseNumber)
	pt := doc.PetitionerTitle

	if ctype == TypeMandamus || ctype == TypeHabeas || strings.HasPrefix(pt, "In Re") {
		if pt == "" {
			return "", appErrors.CaseNameError(docket)
		}
		return stripPartySuffix(pt, "Petitioner"), nil
	}

	if ctype == TypeExcess {
		if pt == "" {
			return "", appErrors.CaseNameError(docket)
		}
		return "(unrelated application) " + stripPartySuffix(pt, "Petitioner"), nil
	}

	if pt == "" || doc.RespondentTitle == "" {
		return "", appErrors.CaseNameError(docket)
	}
	petitioner := stripPartySuffix(pt, "Petitioner", "Plaintiff")
	return petitioner + " v. " + doc.RespondentTitle, nil
}

// stripPartySuffix removes a trailing party-role segment (", Petitioner",
// ", Plaintiff") when present, detected on the last comma-separated part.
func stripPartySuffix(title string, roles ...string) string {
	parts := strings.Split(title, ",")
	if len(parts) < 2 {
		return title
	}
	last := parts[len(parts)-1]
	for _, role := range roles {
		if strings.Contains(last, role) {
			return strings.Join(parts[:len(parts)-1], ",")
		}
	}
	return title
}
