package ingestion

import (
	"fmt"
	"strings"

	"github.com/talentfold/ingest/core"
)

// NormalizeResumes builds resume rows from raw rows. Skill mentions are
// lowercased; they are raw text, not catalog-resolved names.
func NormalizeResumes(rows []map[string]string) []core.Resume {
	resumes := make([]core.Resume, 0, len(rows))
	for i, row := range rows {
		skills := parseList(row["skills"])
		for j, skill := range skills {
			skills[j] = strings.ToLower(skill)
		}

		resume := core.Resume{
			UserID:          resumeIDFields.resolve(row),
			Name:            resumeNameFields.resolve(row),
			Education:       parseList(resumeEduFields.resolve(row)),
			ExperienceYears: parseFloat(resumeYearsFields.resolve(row)),
			Skills:          skills,
			Projects:        resumeProjectFields.resolve(row),
			RawResumeText:   resumeTextFields.resolve(row),
			Source:          sourceFields.resolve(row),
		}
		if resume.UserID == "" {
			resume.UserID = fmt.Sprintf("resume-%d", i)
		}
		if resume.Name == "" {
			resume.Name = "Unknown"
		}
		if resume.Source == "" {
			resume.Source = "unknown"
		}
		resumes = append(resumes, resume)
	}
	return resumes
}
