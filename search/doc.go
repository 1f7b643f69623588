// Package search answers free-text queries against the vector collection:
// the query is embedded and the top-K closest chunks are returned, with
// optional metadata filters narrowing the candidates first.
package search
