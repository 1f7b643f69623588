// Package sqlite loads the normalized tables produced by an ingestion run
// into a SQLite database for downstream relational queries.
package sqlite
