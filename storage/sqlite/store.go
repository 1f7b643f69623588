// Copyright 2025 Talentfold
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/talentfold/ingest/core"
	"github.com/talentfold/ingest/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS listings (
	listing_id TEXT PRIMARY KEY,
	title TEXT,
	company_id TEXT,
	company_name TEXT,
	location_city TEXT,
	location_state TEXT,
	location_country TEXT,
	skills TEXT,
	stipend_min_inr REAL,
	stipend_max_inr REAL,
	duration_weeks REAL,
	mode TEXT,
	category TEXT,
	description TEXT,
	application_url TEXT,
	posted_date TEXT,
	source TEXT
);
CREATE TABLE IF NOT EXISTS companies (
	company_id TEXT PRIMARY KEY,
	company_name TEXT,
	industry TEXT,
	headquarters_city TEXT,
	headquarters_country TEXT,
	company_url TEXT,
	size_bucket TEXT,
	source TEXT
);
CREATE TABLE IF NOT EXISTS skills (
	skill_id TEXT PRIMARY KEY,
	skill_name TEXT,
	skill_normalized TEXT,
	skill_category TEXT,
	aliases TEXT
);
CREATE TABLE IF NOT EXISTS resumes (
	user_id TEXT PRIMARY KEY,
	name TEXT,
	education TEXT,
	experience_years REAL,
	skills TEXT,
	projects TEXT,
	raw_resume_text TEXT,
	source TEXT
);
CREATE TABLE IF NOT EXISTS chunks (
	chunk_id TEXT PRIMARY KEY,
	source_type TEXT,
	source_id TEXT,
	chunk_index INTEGER,
	text TEXT,
	tokens_estimate INTEGER,
	top_skills TEXT,
	location_city TEXT,
	location_state TEXT,
	location_country TEXT,
	mode TEXT,
	posted_date TEXT,
	source TEXT
);
`

// Store is a SQLite-backed sink for the normalized tables.
type Store struct {
	db   *sql.DB
	path string
}

var _ storage.TableStore = (*Store)(nil)

// NewStore opens (creating if needed) the SQLite database at dbPath and
// ensures the schema exists.
func NewStore(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// LoadCompanies upserts company rows.
func (s *Store) LoadCompanies(ctx context.Context, companies []core.Company) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO companies
			(company_id, company_name, industry, headquarters_city, headquarters_country, company_url, size_bucket, source)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, c := range companies {
			_, err := stmt.ExecContext(ctx, c.CompanyID, c.CompanyName, c.Industry,
				c.HeadquartersCity, c.HeadquartersCountry, c.CompanyURL, c.SizeBucket, c.Source)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadSkills upserts the skill catalog.
func (s *Store) LoadSkills(ctx context.Context, skills []core.SkillRecord) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO skills
			(skill_id, skill_name, skill_normalized, skill_category, aliases)
			VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, sk := range skills {
			aliases, err := json.Marshal(sk.Aliases)
			if err != nil {
				return err
			}
			_, err = stmt.ExecContext(ctx, sk.SkillID, sk.SkillName,
				strings.ToLower(strings.TrimSpace(sk.SkillName)), sk.SkillCategory, string(aliases))
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadListings upserts listing rows. List-valued fields are stored as JSON.
func (s *Store) LoadListings(ctx context.Context, listings []core.Listing) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO listings
			(listing_id, title, company_id, company_name, location_city, location_state, location_country,
			 skills, stipend_min_inr, stipend_max_inr, duration_weeks, mode, category, description,
			 application_url, posted_date, source)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, l := range listings {
			skills, err := json.Marshal(l.Skills)
			if err != nil {
				return err
			}
			_, err = stmt.ExecContext(ctx, l.ListingID, l.Title, l.CompanyID, l.CompanyName,
				l.LocationCity, l.LocationState, l.LocationCountry, string(skills),
				l.StipendMinINR, l.StipendMaxINR, l.DurationWeeks, l.Mode, l.Category,
				l.Description, l.ApplicationURL, l.PostedDate, l.Source)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadResumes upserts resume rows.
func (s *Store) LoadResumes(ctx context.Context, resumes []core.Resume) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO resumes
			(user_id, name, education, experience_years, skills, projects, raw_resume_text, source)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, r := range resumes {
			education, err := json.Marshal(r.Education)
			if err != nil {
				return err
			}
			skills, err := json.Marshal(r.Skills)
			if err != nil {
				return err
			}
			_, err = stmt.ExecContext(ctx, r.UserID, r.Name, string(education),
				r.ExperienceYears, string(skills), r.Projects, r.RawResumeText, r.Source)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadChunks upserts the chunk table.
func (s *Store) LoadChunks(ctx context.Context, chunks []core.Chunk) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO chunks
			(chunk_id, source_type, source_id, chunk_index, text, tokens_estimate, top_skills,
			 location_city, location_state, location_country, mode, posted_date, source)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, c := range chunks {
			topSkills, err := json.Marshal(c.TopSkills)
			if err != nil {
				return err
			}
			_, err = stmt.ExecContext(ctx, c.ChunkID, string(c.SourceType), c.SourceID,
				c.ChunkIndex, c.Text, c.TokensEstimate, string(topSkills),
				c.LocationCity, c.LocationState, c.LocationCountry, c.Mode, c.PostedDate, c.Source)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
