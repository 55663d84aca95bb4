package layout

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jonathan/resume-optimizer/internal/resume"
	"github.com/jonathan/resume-optimizer/internal/styles"
)

// Width ratios for the two-column rows and the vertical gap between entries.
const (
	contactSplit = 0.5
	entrySplit   = 0.7
	entryGap     = 3.6 // 0.05in
)

const bulletPrefix = "• "

// heading emits a section heading followed by its underline rule.
func heading(title string) []Block {
	return []Block{
		Paragraph(styles.SectionHeading, title),
		Rule(8),
	}
}

func bullet(text string) Block {
	return Paragraph(styles.Bullet, bulletPrefix+Escape(text))
}

// Header renders the name, the two-row contact table, and the rule that closes
// the header. Missing contact fields render as empty cells, never a fault.
func Header(rec *resume.Record) []Block {
	contact := rec.Contact

	blocks := []Block{
		Paragraph(styles.Name, Escape(rec.Name)),
		TwoColumn(contactSplit,
			Paragraph(styles.Contact, Escape(contact.Location)),
			linkParagraph("mailto:"+contact.Email, contact.Email),
		),
		TwoColumn(contactSplit,
			Paragraph(styles.Contact, Escape(contact.Phone)),
			linkParagraph(contact.GitHub, contact.GitHub),
		),
		Rule(10),
	}
	return blocks
}

// linkParagraph renders a right-aligned blue link cell. An empty target keeps
// the cell but drops the link so empty contact fields stay inert.
func linkParagraph(href, text string) Block {
	if text == "" {
		return Paragraph(styles.ContactRight, "")
	}
	return Paragraph(styles.ContactRight,
		fmt.Sprintf("<link href='%s'>%s</link>", Escape(href), Escape(text)))
}

// Summary renders the PROFESSIONAL SUMMARY section, one bullet per point.
// Returns nothing when the summary is absent or empty.
func Summary(points []string) []Block {
	if len(points) == 0 {
		return nil
	}

	blocks := heading("PROFESSIONAL SUMMARY")
	for _, point := range points {
		blocks = append(blocks, bullet(point))
	}
	return blocks
}

// ExperienceSection renders PROFESSIONAL EXPERIENCE. Entries keep their input
// order: title/dates row, company/location row, achievement bullets, spacer.
func ExperienceSection(entries []resume.Experience) []Block {
	if len(entries) == 0 {
		return nil
	}

	blocks := append([]Block{Spacer(entryGap)}, heading("PROFESSIONAL EXPERIENCE")...)
	for _, exp := range entries {
		blocks = append(blocks,
			TwoColumn(entrySplit,
				Paragraph(styles.JobTitle, Escape(exp.JobTitle)),
				Paragraph(styles.Date, Escape(exp.Dates)),
			),
			TwoColumn(entrySplit,
				Paragraph(styles.Company, "<b>"+Escape(exp.Company)+"</b>"),
				Paragraph(styles.Date, Escape(exp.Location)),
			),
		)
		for _, achievement := range exp.Achievements {
			blocks = append(blocks, bullet(achievement))
		}
		blocks = append(blocks, Spacer(entryGap))
	}
	return blocks
}

// EducationSection renders EDUCATION: institution/location row, degree line,
// detail bullets, spacer per entry.
func EducationSection(entries []resume.Education) []Block {
	if len(entries) == 0 {
		return nil
	}

	blocks := heading("EDUCATION")
	for _, edu := range entries {
		blocks = append(blocks,
			TwoColumn(entrySplit,
				Paragraph(styles.JobTitle, Escape(edu.Institution)),
				Paragraph(styles.Date, Escape(edu.Location)),
			),
			Paragraph(styles.Company, Escape(edu.Degree)),
		)
		for _, detail := range edu.Details {
			blocks = append(blocks, bullet(detail))
		}
		blocks = append(blocks, Spacer(entryGap))
	}
	return blocks
}

// SkillsSection renders SKILLS. Presence of the skills key alone emits the
// heading and rule. Categorized skills render one bulleted line per non-empty
// category with a bold normalized label; flat skills join into a single line.
func SkillsSection(skills resume.Skills) []Block {
	if !skills.Present {
		return nil
	}

	blocks := heading("SKILLS")

	if skills.IsCategorized() {
		for _, cat := range skills.Categories {
			if len(cat.Skills) == 0 {
				continue
			}
			label := Escape(normalizeCategory(cat.Name))
			list := Escape(strings.Join(cat.Skills, ", "))
			blocks = append(blocks, Paragraph(styles.Bullet,
				fmt.Sprintf("%s<b>%s:</b> %s", bulletPrefix, label, list)))
		}
		return blocks
	}

	if len(skills.Flat) > 0 {
		blocks = append(blocks, bullet(strings.Join(skills.Flat, ", ")))
	}
	return blocks
}

// Certifications renders CERTIFICATIONS as one comma-joined paragraph.
func Certifications(certs []string) []Block {
	if len(certs) == 0 {
		return nil
	}

	blocks := append([]Block{Spacer(entryGap)}, heading("CERTIFICATIONS")...)
	blocks = append(blocks, Paragraph(styles.Bullet, Escape(strings.Join(certs, ", "))))
	return blocks
}

// normalizeCategory turns a snake_case category key into its display form:
// underscores become spaces and each word is title-cased.
func normalizeCategory(name string) string {
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
