package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"claimtab/internal/domain"
)

func TestClassify_FilenamePrefix(t *testing.T) {
	assert.Equal(t, domain.FamilyBPH, Classify("RDR_12345.pdf", ""))
	assert.Equal(t, domain.FamilyBPH, Classify("rdr_12345.pdf", ""))
	assert.Equal(t, domain.FamilyOVH, Classify("CR_1234567.pdf", ""))
	assert.Equal(t, domain.FamilyOVH, Classify("cr-control.pdf", ""))
}

func TestClassify_FilenameWinsOverContent(t *testing.T) {
	text := "OTTO Control report"
	assert.Equal(t, domain.FamilyBPH, Classify("RDR_1.pdf", text))
}

func TestClassify_ContentMarkers(t *testing.T) {
	bph := "Reclamation details report\nReclamation ID 123456"
	assert.Equal(t, domain.FamilyBPH, Classify("scan001.pdf", bph))

	ovh := "Control report\n1234567 OTTO"
	assert.Equal(t, domain.FamilyOVH, Classify("scan002.pdf", ovh))
}

func TestClassify_Unknown(t *testing.T) {
	assert.Equal(t, domain.FamilyUnknown, Classify("scan003.pdf", "unrelated text"))
	// A single marker is not enough.
	assert.Equal(t, domain.FamilyUnknown, Classify("scan004.pdf", "Reclamation only"))
	assert.Equal(t, domain.FamilyUnknown, Classify("scan005.pdf", "OTTO only"))
}
