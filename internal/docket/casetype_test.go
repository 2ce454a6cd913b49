package docket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docketwatch/docket-api/internal/models"
	appErrors "github.com/docketwatch/docket-api/pkg/errors"
)

func TestClassifyJurisdictionalStatementIsMandatory(t *testing.T) {
	doc := &models.Docket{
		CaseNumber: "22-400",
		Proceedings: []models.Proceeding{
			{Date: "Aug 01 2022", Text: "Jurisdictional Statement filed."},
		},
	}
	ctype, err := ClassifyCaseType(doc)
	require.NoError(t, err)
	assert.Equal(t, TypeMandatory, ctype)
}

func TestClassifyPetitionKeyword(t *testing.T) {
	cases := map[string]CaseType{
		"Petition for a writ of certiorari filed.":            TypeCertiorari,
		"Petition for a writ of mandamus filed.":              TypeMandamus,
		"Petition for a writ of habeas corpus filed.":         TypeHabeas,
		"Petition for a writ of prohibition filed.":           TypeProhibition,
	}
	for text, want := range cases {
		doc := &models.Docket{
			CaseNumber:  "22-1",
			Proceedings: []models.Proceeding{{Date: "Aug 01 2022", Text: text}},
		}
		ctype, err := ClassifyCaseType(doc)
		require.NoError(t, err, text)
		assert.Equal(t, want, ctype, text)
	}
}

func TestClassifyDefaultsToCertiorariWithBothTitles(t *testing.T) {
	doc := &models.Docket{
		CaseNumber:      "22-2",
		PetitionerTitle: "Acme Corp., Petitioner",
		RespondentTitle: "Doe",
		Proceedings: []models.Proceeding{
			{Date: "Aug 01 2022", Text: "Motion for an extension of time filed."},
		},
	}
	ctype, err := ClassifyCaseType(doc)
	require.NoError(t, err)
	assert.Equal(t, TypeCertiorari, ctype)
}

func TestClassifyTokenizesLinkedPetition(t *testing.T) {
	doc := &models.Docket{
		CaseNumber:      "22-3",
		PetitionerTitle: "In Re Roe, Petitioner",
		Proceedings: []models.Proceeding{
			{Date: "Aug 01 2022", Text: "Writ, of mandamus, sought by petitioner.",
				Links: []models.DocumentLink{{Description: "Petition"}}},
		},
	}
	ctype, err := ClassifyCaseType(doc)
	require.NoError(t, err)
	assert.Equal(t, TypeMandamus, ctype)
}

func TestClassifyApplicationFallback(t *testing.T) {
	doc := &models.Docket{
		CaseNumber:      "22A10",
		PetitionerTitle: "Roe, Petitioner",
		Proceedings: []models.Proceeding{
			{Date: "Aug 01 2022", Text: "Application to stay the mandate, submitted to The Chief Justice."},
		},
	}
	ctype, err := ClassifyCaseType(doc)
	require.NoError(t, err)
	assert.Equal(t, TypeStay, ctype)
}

func TestClassifyFailsWithoutTitlesOrPetition(t *testing.T) {
	doc := &models.Docket{
		CaseNumber: "22-9",
		Proceedings: []models.Proceeding{
			{Date: "Aug 01 2022", Text: "Letter received from the clerk."},
		},
	}
	_, err := ClassifyCaseType(doc)
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeCaseType, appErrors.FromError(err).Code)
}

func TestClassifyFailsOnEmptyKeywordIntersection(t *testing.T) {
	doc := &models.Docket{
		CaseNumber:      "22-10",
		PetitionerTitle: "Roe, Petitioner",
		Proceedings: []models.Proceeding{
			{Date: "Aug 01 2022", Text: "Application for leave to file an amended pleading."},
		},
	}
	_, err := ClassifyCaseType(doc)
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeCaseType, appErrors.FromError(err).Code)
}

func TestBuildCaseNameStandard(t *testing.T) {
	doc := &models.Docket{
		CaseNumber:      "22-123",
		PetitionerTitle: "Acme Corp., Petitioner",
		RespondentTitle: "Doe",
	}
	name, err := BuildCaseName(doc, TypeCertiorari)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp. v. Doe", name)
}

func TestBuildCaseNamePlaintiffSuffix(t *testing.T) {
	doc := &models.Docket{
		CaseNumber:      "22O151",
		PetitionerTitle: "State of Texas, Plaintiff",
		RespondentTitle: "State of California",
	}
	name, err := BuildCaseName(doc, TypeCertiorari)
	require.NoError(t, err)
	assert.Equal(t, "State of Texas v. State of California", name)
}

func TestBuildCaseNameHabeasUsesPetitionerVerbatim(t *testing.T) {
	doc := &models.Docket{
		CaseNumber:      "22-5001",
		PetitionerTitle: "John Q. Public, Petitioner",
	}
	name, err := BuildCaseName(doc, TypeHabeas)
	require.NoError(t, err)
	assert.Equal(t, "John Q. Public", name)
}

func TestBuildCaseNameInRe(t *testing.T) {
	doc := &models.Docket{
		CaseNumber:      "22-5002",
		PetitionerTitle: "In Re Jane Roe, Petitioner",
	}
	name, err := BuildCaseName(doc, TypeCertiorari)
	require.NoError(t, err)
	assert.Equal(t, "In Re Jane Roe", name)
}

func TestBuildCaseNameExcessMarker(t *testing.T) {
	doc := &models.Docket{
		CaseNumber:      "22A100",
		PetitionerTitle: "John Q. Public, Petitioner",
	}
	name, err := BuildCaseName(doc, TypeExcess)
	require.NoError(t, err)
	assert.Equal(t, "(unrelated application) John Q. Public", name)
}

func TestBuildCaseNameMissingTitleFails(t *testing.T) {
	doc := &models.Docket{CaseNumber: "22-11"}
	_, err := BuildCaseName(doc, TypeCertiorari)
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeCaseName, appErrors.FromError(err).Code)
}
