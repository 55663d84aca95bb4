package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/resume"
)

func TestCompose_NilRecord(t *testing.T) {
	blocks, err := Compose(nil)
	assert.Nil(t, blocks)

	var composeErr *ComposeError
	require.ErrorAs(t, err, &composeErr)
}

func TestCompose_NameOnlyProducesHeaderOnly(t *testing.T) {
	blocks, err := Compose(&resume.Record{Name: "Jane Doe"})
	require.NoError(t, err)

	assert.Empty(t, headingTexts(blocks))
	require.Len(t, blocks, 4)
	assert.Equal(t, "Jane Doe", blocks[0].Text)
}

func TestCompose_SectionOrderIsFixed(t *testing.T) {
	rec := &resume.Record{
		Name:                   "Jane Doe",
		Certifications:         []string{"PMP"},
		Skills:                 resume.Skills{Present: true, Flat: []string{"Go"}},
		Education:              []resume.Education{{Institution: "State University"}},
		ProfessionalExperience: []resume.Experience{{JobTitle: "Engineer"}},
		ProfessionalSummary:    []string{"Point"},
	}

	blocks, err := Compose(rec)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"PROFESSIONAL SUMMARY",
		"PROFESSIONAL EXPERIENCE",
		"EDUCATION",
		"SKILLS",
		"CERTIFICATIONS",
	}, headingTexts(blocks))
}

func TestCompose_OnlyCertifications(t *testing.T) {
	rec := &resume.Record{
		Name:           "Jane Doe",
		Certifications: []string{"AWS Certified", "PMP"},
	}

	blocks, err := Compose(rec)
	require.NoError(t, err)

	assert.Equal(t, []string{"CERTIFICATIONS"}, headingTexts(blocks))
	assert.Equal(t, "AWS Certified, PMP", blocks[len(blocks)-1].Text)
}

func TestCompose_TwoColumnRowsPartitionFullWidth(t *testing.T) {
	rec := &resume.Record{
		Name:                   "Jane Doe",
		Contact:                resume.Contact{Email: "jane@example.com"},
		ProfessionalExperience: []resume.Experience{{JobTitle: "Engineer", Dates: "2020"}},
		Education:              []resume.Education{{Institution: "State University"}},
	}

	blocks, err := Compose(rec)
	require.NoError(t, err)

	rows := 0
	for _, b := range blocks {
		if b.Kind != KindTwoColumn {
			continue
		}
		rows++
		assert.Greater(t, b.LeftRatio, 0.0)
		assert.Less(t, b.LeftRatio, 1.0)
		// The right column is always the remainder, so each row spans the
		// usable width exactly.
		require.NotNil(t, b.Left)
		require.NotNil(t, b.Right)
	}
	assert.Equal(t, 5, rows)
}
