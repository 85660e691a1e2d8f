package clustering

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Algorithm selects the clustering strategy.
type Algorithm string

const (
	SingleLinkage   Algorithm = "single"
	CompleteLinkage Algorithm = "complete"
	UPGMA           Algorithm = "upgma"
	Spicker         Algorithm = "spicker"
	KMeans          Algorithm = "kmeans"
)

// ParseAlgorithm converts an algorithm name into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case SingleLinkage, CompleteLinkage, UPGMA, Spicker, KMeans:
		return Algorithm(s), nil
	}
	return "", fmt.Errorf("clustering: invalid algorithm %q", s)
}

// Config controls clustering behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Algorithm is the clustering strategy. Default: SingleLinkage.
	Algorithm Algorithm

	// Cutoff is the distance limit for the linkage variants and SPICKER:
	// only links below it are considered, and the linkage loop stops at
	// the first link reaching it. Must be > 0 for those algorithms;
	// +Inf merges everything reachable (cutoff-free single linkage).
	// Ignored by KMeans, which takes its count from K — the two
	// parameters are deliberately separate fields.
	Cutoff float64

	// K is the number of clusters for KMeans, 1 <= K <= n.
	// Ignored by the other algorithms.
	K int

	// Missing selects how a pair with exactly one zero measurement is
	// normalized. Default: MissingArithmeticMean.
	Missing MissingPolicy

	// Rand is the random source used by KMeans to draw the initial
	// means. Nil means a wall-clock-seeded source; fix it for
	// deterministic runs.
	Rand *rand.Rand
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Algorithm: SingleLinkage,
		Missing:   MissingArithmeticMean,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	switch cfg.Algorithm {
	case SingleLinkage, CompleteLinkage, UPGMA, Spicker:
		if math.IsNaN(cfg.Cutoff) || cfg.Cutoff <= 0 {
			return fmt.Errorf("clustering: Cutoff must be > 0 for %s, got %v", cfg.Algorithm, cfg.Cutoff)
		}
	case KMeans:
		if cfg.K < 1 {
			return fmt.Errorf("clustering: K must be >= 1 for kmeans, got %d", cfg.K)
		}
	default:
		return fmt.Errorf("clustering: invalid Algorithm %q", cfg.Algorithm)
	}
	switch cfg.Missing {
	case MissingArithmeticMean, MissingZero:
		// valid
	default:
		return fmt.Errorf("clustering: invalid MissingPolicy %q", cfg.Missing)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Algorithm == "" {
		cfg.Algorithm = SingleLinkage
	}
	if cfg.Missing == "" {
		cfg.Missing = MissingArithmeticMean
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}

// ClusterScores normalizes a flat list of raw pairwise measurements and
// clusters the elements with the configured algorithm. rawScores is
// row-major over all ordered pairs including self-pairs (length n² for n
// elements); a non-square length is truncated by integer square root.
// Raw values must already be in the distance sense — see
// [DistancesFromSimilarities].
func ClusterScores(rawScores []float64, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	scores, err := Normalize(rawScores, cfg.Missing)
	if err != nil {
		return nil, err
	}
	return run(scores, cfg)
}

// ClusterMatrix clusters elements whose normalized symmetric distance
// matrix has already been computed. The Config.Missing field is ignored
// since normalization has already happened.
func ClusterMatrix(scores *ScoreMatrix, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return run(scores, cfg)
}

// run dispatches to the selected engine and computes the post-hoc
// statistics for the active clusters.
func run(scores *ScoreMatrix, cfg Config) (*Result, error) {
	r := newResult(scores)
	switch cfg.Algorithm {
	case Spicker:
		runSpicker(r, cfg.Cutoff)
	case KMeans:
		if cfg.K > scores.Dim() {
			return nil, fmt.Errorf("clustering: K = %d exceeds element count %d", cfg.K, scores.Dim())
		}
		runKMeans(r, cfg.K, cfg.Rand)
	default:
		runHierarchical(r, cfg.Algorithm, cfg.Cutoff)
	}
	r.ComputeStats()
	return r, nil
}
