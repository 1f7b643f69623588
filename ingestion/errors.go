package ingestion

import "errors"

var (
	// ErrMapperRequired is returned when a skill mapper is not provided.
	ErrMapperRequired = errors.New("skill mapper required")
)
