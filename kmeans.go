package clustering

import (
	"math"
	"math/rand"
)

// runKMeans partitions the nodes into k clusters using the classic
// assignment/update loop adapted to a precomputed distance matrix: the
// "mean" of a cluster is the member minimizing its sum of distances to
// the other members, not a coordinate-space centroid.
//
// Every pre-existing active cluster is dissolved, k distinct nodes drawn
// from rng seed the initial means, and the k clusters then mutate their
// membership in place across iterations (their count is fixed, so no new
// records are appended per iteration). The loop converges when no
// cluster's mean element changes between consecutive iterations. Nearest
// mean ties keep the earliest-scanned mean.
func runKMeans(r *Result, k int, rng *rand.Rand) {
	n := r.Scores.Dim()

	for _, c := range r.Clusters {
		if c.Active() {
			c.State = StateMerged
			c.MergedInto = -1
		}
	}

	// Draw k distinct seed nodes; duplicates are rejected and redrawn.
	means := make([]int, k)
	taken := make([]bool, n)
	for i := range means {
		m := rng.Intn(n)
		for taken[m] {
			m = rng.Intn(n)
		}
		taken[m] = true
		means[i] = m
	}

	base := len(r.Clusters)
	clusters := make([]*Cluster, k)
	for i := range clusters {
		clusters[i] = &Cluster{
			ID:         base + i,
			Members:    []int{means[i]},
			MergedInto: -1,
			Centroid:   -1,
			Mean:       means[i],
		}
		r.Clusters = append(r.Clusters, clusters[i])
		r.Nodes[means[i]].Cluster = base + i
	}

	assign := func() {
		for _, c := range clusters {
			c.Members = c.Members[:0]
		}
		for node := 0; node < n; node++ {
			best := 0
			bestDist := math.MaxFloat64
			for i := 0; i < k; i++ {
				if d := r.Scores.At(node, means[i]); d < bestDist {
					bestDist = d
					best = i
				}
			}
			r.Nodes[node].Cluster = clusters[best].ID
			clusters[best].Members = append(clusters[best].Members, node)
		}
	}

	assign()
	for {
		converged := true
		for i, c := range clusters {
			if len(c.Members) == 0 {
				// A mean captured by an earlier equidistant mean leaves
				// its cluster empty; the mean element stays put.
				continue
			}
			old := c.Mean
			c.Mean = meanElement(r.Scores, c.Members)
			if c.Mean != old {
				converged = false
			}
			means[i] = c.Mean
		}
		if converged {
			break
		}
		assign()
	}
}
