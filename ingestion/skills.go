package ingestion

import (
	"fmt"

	"github.com/talentfold/ingest/core"
)

// NormalizeSkills builds the canonical skill catalog from raw rows.
// Rows without any recognizable name still produce a record so catalog
// sizes stay stable across runs.
func NormalizeSkills(rows []map[string]string) []core.SkillRecord {
	records := make([]core.SkillRecord, 0, len(rows))
	for i, row := range rows {
		record := core.SkillRecord{
			SkillID:       skillIDFields.resolve(row),
			SkillName:     skillNameFields.resolve(row),
			SkillCategory: skillCategoryFields.resolve(row),
			Aliases:       parseList(row["aliases"]),
		}
		if record.SkillID == "" {
			record.SkillID = fmt.Sprintf("skill-%d", i)
		}
		if record.SkillName == "" {
			record.SkillName = "unknown"
		}
		records = append(records, record)
	}
	return records
}
