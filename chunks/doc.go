// Package chunks splits long text fields into overlapping fixed-size
// windows suitable for embedding, tagging each window with the canonical
// skills that occur most often in it.
package chunks
