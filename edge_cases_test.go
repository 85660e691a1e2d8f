package clustering

import (
	"math/rand"
	"testing"
)

func TestEdgeCase_SingleElement(t *testing.T) {
	for _, alg := range []Algorithm{SingleLinkage, CompleteLinkage, UPGMA, Spicker, KMeans} {
		t.Run(string(alg), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Algorithm = alg
			cfg.Cutoff = 1
			cfg.K = 1
			cfg.Rand = rand.New(rand.NewSource(1))

			result, err := ClusterScores([]float64{0}, cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			checkPartition(t, result)

			active := result.ActiveClusters()
			if len(active) != 1 || active[0].Size() != 1 {
				t.Fatalf("want one singleton cluster, got %d clusters", len(active))
			}
			c := active[0]
			if c.Centroid != 0 || c.Mean != 0 {
				t.Errorf("centroid = %d mean = %d, want 0 and 0", c.Centroid, c.Mean)
			}
			if c.Radius != 0 || c.MaxDistance != 0 {
				t.Errorf("radius = %g maxDistance = %g, want 0 and 0", c.Radius, c.MaxDistance)
			}
		})
	}
}

func TestEdgeCase_AllIdenticalElements(t *testing.T) {
	// Every pairwise measurement zero: one merge chain collapses all
	// nodes under single linkage, and no statistic may go NaN.
	raw := make([]float64, 36)
	cfg := DefaultConfig()
	cfg.Cutoff = 0.5

	result, err := ClusterScores(raw, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkPartition(t, result)

	active := result.ActiveClusters()
	if len(active) != 1 || active[0].Size() != 6 {
		t.Fatalf("want one cluster of 6, got %d clusters", len(active))
	}

	_, summary := result.Report()
	if summary.AvgSilhouette != 0 {
		t.Errorf("AvgSilhouette = %g, want 0 (a = b = 0 is defined as 0)", summary.AvgSilhouette)
	}
	if summary.TotalAvgDistance != 0 {
		t.Errorf("TotalAvgDistance = %g, want 0", summary.TotalAvgDistance)
	}
}

func TestEdgeCase_AllAboveCutoff(t *testing.T) {
	for _, alg := range []Algorithm{SingleLinkage, CompleteLinkage, UPGMA, Spicker} {
		t.Run(string(alg), func(t *testing.T) {
			m := matrixFromPairs(t, 4, map[[2]int]float64{
				{0, 1}: 2, {0, 2}: 2, {0, 3}: 2,
				{1, 2}: 2, {1, 3}: 2, {2, 3}: 2,
			})
			cfg := DefaultConfig()
			cfg.Algorithm = alg
			cfg.Cutoff = 1

			result, err := ClusterMatrix(m, cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			checkPartition(t, result)
			active := result.ActiveClusters()
			if len(active) != 4 {
				t.Fatalf("active clusters = %d, want 4 singletons", len(active))
			}
			_, summary := result.Report()
			if summary.Orphans != 4 {
				t.Errorf("orphans = %d, want 4", summary.Orphans)
			}
		})
	}
}

func TestEdgeCase_TruncatedInputStillClusters(t *testing.T) {
	// 11 raw values truncate to n=3; the engines behave exactly as if
	// only the first 9 were supplied.
	raw := append(append([]float64{}, rawScores3...), 99, 99)
	cfg := DefaultConfig()
	cfg.Cutoff = 5

	result, err := ClusterScores(raw, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Nodes) != 3 {
		t.Fatalf("nodes = %d, want 3", len(result.Nodes))
	}
	if got := len(result.ActiveClusters()); got != 2 {
		t.Errorf("active clusters = %d, want 2", got)
	}
}
