package matching

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

// ErrDegenerateVocabulary is returned when the two documents produce no
// usable terms or a zero-magnitude vector. Callers treat it as a 0.0
// similarity contribution rather than a failure.
var ErrDegenerateVocabulary = errors.New("matching: degenerate tf-idf vocabulary")

// Tokens are runs of two or more word characters, the same boundary rule the
// production vectorizer applied. Single-letter tokens ("c", "r") drop out.
var tokenPattern = regexp.MustCompile(`\w\w+`)

// CosineSimilarity computes TF-IDF cosine similarity over a two-document
// corpus: the candidate skill string and the job requirement string. Term
// weights use smoothed inverse document frequency, ln((1+n)/(1+df))+1, and
// each vector is L2-normalized before the dot product.
func CosineSimilarity(candidateDoc, jobDoc string) (float64, error) {
	docs := [2][]string{
		tokenize(candidateDoc),
		tokenize(jobDoc),
	}

	vocab := map[string]int{}
	for _, tokens := range docs {
		for _, tok := range tokens {
			if _, ok := vocab[tok]; !ok {
				vocab[tok] = len(vocab)
			}
		}
	}
	if len(vocab) == 0 {
		return 0, ErrDegenerateVocabulary
	}

	df := make([]int, len(vocab))
	counts := [2][]float64{
		make([]float64, len(vocab)),
		make([]float64, len(vocab)),
	}
	for d, tokens := range docs {
		for _, tok := range tokens {
			counts[d][vocab[tok]]++
		}
		for i, c := range counts[d] {
			if c > 0 {
				df[i]++
			}
		}
	}

	const nDocs = 2.0
	vectors := [2][]float64{
		make([]float64, len(vocab)),
		make([]float64, len(vocab)),
	}
	for d := range vectors {
		for i := range vectors[d] {
			idf := math.Log((1+nDocs)/(1+float64(df[i]))) + 1
			vectors[d][i] = counts[d][i] * idf
		}
		if err := l2Normalize(vectors[d]); err != nil {
			return 0, err
		}
	}

	dot := 0.0
	for i := range vectors[0] {
		dot += vectors[0][i] * vectors[1][i]
	}
	return dot, nil
}

func tokenize(doc string) []string {
	return tokenPattern.FindAllString(strings.ToLower(doc), -1)
}

func l2Normalize(v []float64) error {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return ErrDegenerateVocabulary
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
	return nil
}
