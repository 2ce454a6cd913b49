package docket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourtMatchForms(t *testing.T) {
	exactOnly := Court("Supreme Court of Ohio")
	assert.True(t, exactOnly.Match("Supreme Court of Ohio"))
	assert.False(t, exactOnly.Match("Supreme Court of Ohio, Eighth District"))
	assert.False(t, exactOnly.Match(""))

	prefixed := Court().WithStart("Court of Appeal of California")
	assert.True(t, prefixed.Match("Court of Appeal of California, Second Appellate District"))
	assert.False(t, prefixed.Match("Supreme Court of California"))

	partial := Court().WithPartial("Appellate Division")
	assert.True(t, partial.Match("Superior Court of New Jersey, Appellate Division"))
}

func TestCourtNamesLookup(t *testing.T) {
	assert.True(t, CourtNames["CA9"].Match("United States Court of Appeals for the Ninth Circuit"))
	assert.True(t, CourtNames["CADC"].Match("United States Court of Appeals for the District of Columbia Circuit"))
	assert.True(t, CourtNames["caCA"].Match("Court of Appeal of California, First Appellate District"))
	assert.False(t, CourtNames["CA9"].Match("United States Court of Appeals for the First Circuit"))
}

func TestCourtAbbreviation(t *testing.T) {
	assert.Equal(t, "CA9", CourtAbbreviation("United States Court of Appeals for the Ninth Circuit"))
	assert.Equal(t, "scTX", CourtAbbreviation("Court of Criminal Appeals of Texas"))
	assert.Equal(t, "", CourtAbbreviation("Intergalactic Court of Claims"))
	assert.Equal(t, "", CourtAbbreviation(""))
}
