// Package resume provides the structured resume record produced by optimization
// and consumed by rendering.
package resume

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is the root structured resume object. Every field except Name is
// optional; absent fields decode to zero values and render as empty.
type Record struct {
	Name                   string       `json:"name"`
	Contact                Contact      `json:"contact,omitempty"`
	ProfessionalSummary    []string     `json:"professional_summary,omitempty"`
	ProfessionalExperience []Experience `json:"professional_experience,omitempty"`
	Education              []Education  `json:"education,omitempty"`
	Skills                 Skills       `json:"skills,omitempty"`
	Certifications         []string     `json:"certifications,omitempty"`
}

// Contact holds the header contact fields. Absent keys are empty strings.
type Contact struct {
	Location string `json:"location,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// Experience is one professional experience entry.
type Experience struct {
	JobTitle     string   `json:"job_title,omitempty"`
	Company      string   `json:"company,omitempty"`
	Location     string   `json:"location,omitempty"`
	Dates        string   `json:"dates,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Education is one education entry.
type Education struct {
	Degree      string   `json:"degree,omitempty"`
	Institution string   `json:"institution,omitempty"`
	Location    string   `json:"location,omitempty"`
	Dates       string   `json:"dates,omitempty"`
	Details     []string `json:"details,omitempty"`
}

// SkillCategory is one named skill group from a categorized skills object.
type SkillCategory struct {
	Name   string
	Skills []string
}

// Skills accepts the three shapes the optimizer may return: an object mapping
// category names to skill lists, a flat list of skills, or a single string.
// Categories preserve the key order of the source JSON. Present reports whether
// the skills key appeared at all, which alone triggers the section heading.
type Skills struct {
	Present    bool
	Categories []SkillCategory
	Flat       []string
}

// IsCategorized reports whether the skills decoded as a category object.
func (s Skills) IsCategorized() bool {
	return len(s.Categories) > 0
}

// UnmarshalJSON decodes the map, list, or string shape. Any other shape marks
// the field present but empty rather than failing the whole record.
func (s *Skills) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	s.Present = true

	switch trimmed[0] {
	case '{':
		return s.decodeCategories(trimmed)
	case '[':
		var flat []string
		if err := json.Unmarshal(trimmed, &flat); err != nil {
			// Tolerate mixed-type lists: keep only the string elements.
			// The failed unmarshal leaves partial data in flat, so rebuild it.
			flat = nil
			var raw []json.RawMessage
			if err := json.Unmarshal(trimmed, &raw); err != nil {
				return nil
			}
			for _, item := range raw {
				var v string
				if err := json.Unmarshal(item, &v); err == nil {
					flat = append(flat, v)
				}
			}
		}
		s.Flat = flat
		return nil
	case '"':
		var single string
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil
		}
		s.Flat = []string{single}
		return nil
	default:
		// Numbers, booleans: present but nothing to render.
		return nil
	}
}

// decodeCategories walks the object token by token so category order matches
// the source document. encoding/json maps would lose that order.
func (s *Skills) decodeCategories(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	if _, err := dec.Token(); err != nil { // opening brace
		return fmt.Errorf("failed to decode skills object: %w", err)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to decode skills category name: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("skills category name is not a string: %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("failed to decode skills category %q: %w", key, err)
		}

		s.Categories = append(s.Categories, SkillCategory{
			Name:   key,
			Skills: decodeSkillValue(raw),
		})
	}

	return nil
}

// decodeSkillValue accepts a list of strings or a single string for a category
// value; anything else decodes to an empty list, which the renderer skips.
func decodeSkillValue(raw json.RawMessage) []string {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return []string{single}
	}
	return nil
}

// MarshalJSON writes skills back in the shape they arrived: a category object,
// a flat list, or null when the field was never present.
func (s Skills) MarshalJSON() ([]byte, error) {
	switch {
	case !s.Present:
		return []byte("null"), nil
	case s.IsCategorized():
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, cat := range s.Categories {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(cat.Name)
			if err != nil {
				return nil, err
			}
			skills := cat.Skills
			if skills == nil {
				skills = []string{}
			}
			val, err := json.Marshal(skills)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		if s.Flat == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(s.Flat)
	}
}

// Decode parses a JSON-shaped ResumeRecord. Unknown keys are ignored and every
// optional field tolerates absence; only structurally broken JSON fails.
func Decode(data []byte) (*Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse resume record: %w", err)
	}
	return &rec, nil
}
