package optimize

import (
	"fmt"
	"strings"
)

// BuildPrompt constructs the single-shot optimization prompt: ATS-focused
// rewrite instructions plus the strict-JSON output contract matching the
// resume record schema.
func BuildPrompt(resumeText, jobTitle, jobDescription string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert ATS (Applicant Tracking System) resume optimizer. ")
	sb.WriteString("Your task is to tailor the provided resume to match the job description and make it ATS-friendly.\n\n")

	fmt.Fprintf(&sb, "**Job Title:** %s\n\n", jobTitle)
	fmt.Fprintf(&sb, "**Job Description:**\n%s\n\n", jobDescription)
	fmt.Fprintf(&sb, "**Current Resume:**\n%s\n\n", resumeText)

	sb.WriteString(`**CRITICAL INSTRUCTIONS - Follow ALL of these exactly:**

1. **Act as an expert ATS resume optimizer** - Your goal is to make this candidate the PERFECT match for this role
2. **Identify ALL key terms, skills, requirements, and technologies** from the job description
3. **Make it ATS-friendly** - Use proper keywords, formatting, and industry terminology that ATS systems scan for
4. **Start EVERY bullet point with a strong action verb** (Led, Developed, Implemented, Designed, Optimized, etc.)
5. **Format ALL bullet points in ATR (Action-Task-Result) format**: "Action verb + problem X, with Y tools/methods to achieve Z result"
6. **EVERY bullet point MUST include at least one numeric result/metric** (percentages, dollar amounts, time savings, user counts, etc.)
7. **Professional summary MUST be in bullet points** (4-7 concise, impactful points with metrics)
8. **Add MORE bullet points** that directly match the job description requirements - make them a perfect candidate
9. **Points should be substantial but concise** - Not too short (min 15 words) or too long (max 35 words)
10. **Modify job titles if needed** to better align with the target role they're applying for
11. **Use job description keywords naturally** throughout the resume without keyword stuffing
12. **Make it interview-worthy** - This resume MUST pass ATS and get the candidate an interview

**Output Format:**
Return the optimized resume in the following JSON structure:
{
  "name": "Full Name",
  "contact": {
    "email": "email@example.com",
    "phone": "phone number",
    "location": "City, State ZIP",
    "github": "github url",
    "linkedin": "linkedin url"
  },
  "professional_summary": [
    "Summary point 1 with specific achievement and metric",
    "Summary point 2 with specific achievement and metric"
  ],
  "professional_experience": [
    {
      "job_title": "Job Title",
      "company": "Company Name",
      "location": "Location",
      "dates": "Date Range",
      "achievements": [
        "Achievement 1 in ATR format with numeric results",
        "Achievement 2 in ATR format with numeric results"
      ]
    }
  ],
  "education": [
    {
      "degree": "Degree Name",
      "institution": "Institution Name",
      "location": "Location",
      "dates": "Date Range",
      "details": ["Detail 1", "Detail 2"]
    }
  ],
  "skills": {
    "technical": ["skill1", "skill2"],
    "tools": ["tool1", "tool2"],
    "other": ["skill1", "skill2"]
  },
  "certifications": [
    "Certification 1",
    "Certification 2"
  ]
}

Return ONLY the JSON structure, no additional text or explanation.`)

	return sb.String()
}
