package clustering

import (
	"math/rand"
	"testing"
)

// pairsMatrix is two tight pairs: {0,1} and {2,3} at distance 0.1
// internally, 0.9 across.
func pairsMatrix(t *testing.T) *ScoreMatrix {
	t.Helper()
	return matrixFromPairs(t, 4, map[[2]int]float64{
		{0, 1}: 0.1,
		{2, 3}: 0.1,
		{0, 2}: 0.9, {0, 3}: 0.9, {1, 2}: 0.9, {1, 3}: 0.9,
	})
}

func TestKMeans_KOne(t *testing.T) {
	// k=1: every node lands in the sole cluster and the loop reaches a
	// fixed point as soon as the mean element settles.
	m := matrixFromPairs(t, 3, map[[2]int]float64{
		{0, 1}: 1, {0, 2}: 1, {1, 2}: 2,
	})
	for seed := int64(1); seed <= 5; seed++ {
		cfg := DefaultConfig()
		cfg.Algorithm = KMeans
		cfg.K = 1
		cfg.Rand = rand.New(rand.NewSource(seed))

		result, err := ClusterMatrix(m, cfg)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		checkPartition(t, result)

		active := result.ActiveClusters()
		if len(active) != 1 || active[0].Size() != 3 {
			t.Fatalf("seed %d: want one active cluster of 3, got %d clusters", seed, len(active))
		}
		// Node 0 minimizes the distance sum (2 vs 3 vs 3) regardless of
		// which node seeded the mean.
		if active[0].Mean != 0 {
			t.Errorf("seed %d: mean element = %d, want 0", seed, active[0].Mean)
		}
	}
}

func TestKMeans_KEqualsN(t *testing.T) {
	// All-distinct elements, k=n: every cluster converges to a singleton.
	const n = 5
	m, err := NewScoreMatrix(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := 0.1
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.Set(i, j, d)
			d += 0.07
		}
	}

	cfg := DefaultConfig()
	cfg.Algorithm = KMeans
	cfg.K = n
	cfg.Rand = rand.New(rand.NewSource(2))

	result, err := ClusterMatrix(m, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkPartition(t, result)

	active := result.ActiveClusters()
	if len(active) != n {
		t.Fatalf("active clusters = %d, want %d", len(active), n)
	}
	for _, c := range active {
		if c.Size() != 1 {
			t.Errorf("cluster %d size = %d, want singleton", c.ID, c.Size())
		}
	}
}

func TestKMeans_RecoversPlantedPairs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Algorithm = KMeans
	cfg.K = 2
	cfg.Rand = rand.New(rand.NewSource(4))

	result, err := ClusterMatrix(pairsMatrix(t), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkPartition(t, result)

	for _, c := range result.ActiveClusters() {
		if c.Size() == 0 {
			continue
		}
		if c.Size() != 2 {
			t.Fatalf("cluster %d members = %v, want a planted pair", c.ID, c.Members)
		}
		a, b := c.Members[0], c.Members[1]
		if result.Scores.At(a, b) != 0.1 {
			t.Errorf("cluster %d holds %d and %d, which are not a tight pair", c.ID, a, b)
		}
	}
}

func TestKMeans_DeactivatesHistoryAndAssignsFreshIDs(t *testing.T) {
	m := pairsMatrix(t)
	cfg := DefaultConfig()
	cfg.Algorithm = KMeans
	cfg.K = 2
	cfg.Rand = rand.New(rand.NewSource(4))

	result, err := ClusterMatrix(m, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The four initial singletons are dissolved, not reused.
	for id := 0; id < 4; id++ {
		if result.Clusters[id].Active() {
			t.Errorf("initial cluster %d still active", id)
		}
	}
	for _, c := range result.ActiveClusters() {
		if c.ID < 4 {
			t.Errorf("active k-means cluster reuses old ID %d", c.ID)
		}
	}
}

func TestKMeans_KLargerThanNFails(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Algorithm = KMeans
	cfg.K = 10
	cfg.Rand = rand.New(rand.NewSource(1))

	if _, err := ClusterMatrix(pairsMatrix(t), cfg); err == nil {
		t.Error("expected error for K > n, got nil")
	}
}

func TestKMeans_DeterministicWithFixedSeed(t *testing.T) {
	const n = 15
	rng := rand.New(rand.NewSource(31))
	raw := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				raw[i*n+j] = 0.1 + rng.Float64()
			}
		}
	}

	runOnce := func() []int {
		cfg := DefaultConfig()
		cfg.Algorithm = KMeans
		cfg.K = 4
		cfg.Rand = rand.New(rand.NewSource(99))
		result, err := ClusterScores(raw, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assignment := make([]int, n)
		for i, node := range result.Nodes {
			assignment[i] = node.Cluster
		}
		return assignment
	}

	first := runOnce()
	second := runOnce()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("node %d assigned to %d then %d with identical seeds", i, first[i], second[i])
		}
	}
}
