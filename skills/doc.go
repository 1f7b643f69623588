// Package skills maps raw skill mentions to the canonical skill catalog.
//
// A Mapper is built once per ingestion run from the full catalog and is an
// immutable value afterwards: Match is a pure function of the constructed
// state and is safe for concurrent use. Resolution runs through three tiers,
// each only when the previous one failed: an exact name/alias index, an
// n-gram-indexed token-set lookup, and a global bigram-overlap scan. The two
// fuzzy tiers use different metrics so they catch different failure modes
// (prefix/substitution errors vs. token-order errors). Both accept only at
// 0.85 or above: aliasing unrelated skills costs more downstream trust than
// missing one.
package skills
