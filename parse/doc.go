// Package parse turns free-text location and compensation strings into
// normalized values using fixed heuristic rule sets tuned for Indian job
// listings. Parsers never fail: unparseable input comes back as empty/nil
// fields (or an ambiguity flag) for the caller to count, not as an error.
package parse
