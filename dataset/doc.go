// Package dataset acquires the raw input files for a run and reads them
// into generic rows.
//
// Acquisition goes through the kaggle CLI when credentials are configured;
// without credentials, or after the retry budget is exhausted, bundled
// sample files stand in so a fully offline run still completes.
package dataset
