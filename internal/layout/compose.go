package layout

import (
	"github.com/jonathan/resume-optimizer/internal/resume"
)

// Compose runs every section renderer in the fixed template order and
// concatenates their blocks: header, summary, experience, education, skills,
// certifications. Sections with no data contribute nothing. The input record's
// key ordering never influences the output.
func Compose(rec *resume.Record) ([]Block, error) {
	if rec == nil {
		return nil, &ComposeError{Message: "resume record is nil"}
	}

	var blocks []Block
	blocks = append(blocks, Header(rec)...)
	blocks = append(blocks, Summary(rec.ProfessionalSummary)...)
	blocks = append(blocks, ExperienceSection(rec.ProfessionalExperience)...)
	blocks = append(blocks, EducationSection(rec.Education)...)
	blocks = append(blocks, SkillsSection(rec.Skills)...)
	blocks = append(blocks, Certifications(rec.Certifications)...)
	return blocks, nil
}
