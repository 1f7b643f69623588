package embeddings

import "crypto/sha256"

// PseudoVectorDim is the default length of fallback vectors.
const PseudoVectorDim = 256

// PseudoVector builds a deterministic vector from a SHA-256 digest of the
// text. Identical text always yields a bit-identical vector, the computation
// never touches the network, and the length is fixed, so similarity scores
// stay meaningful across mixed real/fallback records.
func PseudoVector(text string, dim int) []float32 {
	if dim <= 0 {
		dim = PseudoVectorDim
	}
	digest := sha256.Sum256([]byte(text))
	vector := make([]float32, dim)
	for i := 0; i < dim; i++ {
		// Digest bytes map cyclically into [-1, 1].
		b := digest[i%len(digest)]
		vector[i] = (float32(b)/255)*2 - 1
	}
	return vector
}
