package clustering

import "fmt"

// Measure describes the sense of the raw input values.
type Measure string

const (
	// MeasureDistance means raw values are dissimilarities: smaller is
	// more similar. This is what every algorithm operates on.
	MeasureDistance Measure = "distance"

	// MeasureSimilarity means raw values are similarities in [0, 1] and
	// must be converted with DistancesFromSimilarities before clustering.
	MeasureSimilarity Measure = "similarity"
)

// ParseMeasure converts a measure name into a Measure.
func ParseMeasure(s string) (Measure, error) {
	switch Measure(s) {
	case MeasureDistance, MeasureSimilarity:
		return Measure(s), nil
	}
	return "", fmt.Errorf("clustering: invalid measure %q (want %q or %q)",
		s, MeasureDistance, MeasureSimilarity)
}

// DistancesFromSimilarities converts raw similarity scores into the
// distance sense used by the engines, d = 1 - s. The input is not
// modified.
func DistancesFromSimilarities(raw []float64) []float64 {
	out := make([]float64, len(raw))
	for i, v := range raw {
		out[i] = 1 - v
	}
	return out
}

// CutoffFromSimilarity converts a similarity cutoff into a distance
// cutoff. Callers working in similarity must transform the cutoff with
// the same 1-s mapping applied to the raw values. Does not apply to the
// k-means element count, which is not a distance.
func CutoffFromSimilarity(cutoff float64) float64 {
	return 1 - cutoff
}
