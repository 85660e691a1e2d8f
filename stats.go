package clustering

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ComputeStats fills Centroid, Mean, Radius and the exact MaxDistance for
// every active cluster. The recomputed MaxDistance supersedes the value
// threaded through merge bookkeeping; merged history records keep theirs.
func (r *Result) ComputeStats() {
	for _, c := range r.Clusters {
		if !c.Active() {
			continue
		}
		c.Centroid, c.Radius = centroidOf(r.Scores, c.Members)
		c.Mean = meanElement(r.Scores, c.Members)
		c.MaxDistance = maxPairDistance(r.Scores, c.Members)
	}
}

// centroidOf returns the member whose largest distance to any other
// member is smallest, together with that minimized worst-case distance
// (the cluster radius). Ties keep the earliest member.
func centroidOf(scores *ScoreMatrix, members []int) (centroid int, radius float64) {
	if len(members) == 0 {
		return -1, 0
	}
	centroid = members[0]
	radius = math.MaxFloat64
	for _, i := range members {
		worst := 0.0
		for _, j := range members {
			worst = max(worst, scores.At(i, j))
		}
		if worst < radius {
			radius = worst
			centroid = i
		}
	}
	return centroid, radius
}

// meanElement returns the member whose sum of distances to the other
// members is smallest. Ties keep the earliest member.
func meanElement(scores *ScoreMatrix, members []int) int {
	if len(members) == 0 {
		return -1
	}
	mean := members[0]
	best := math.MaxFloat64
	for _, i := range members {
		sum := 0.0
		for _, j := range members {
			if j != i {
				sum += scores.At(i, j)
			}
		}
		if sum < best {
			best = sum
			mean = i
		}
	}
	return mean
}

// maxPairDistance returns the maximum distance over all member pairs.
func maxPairDistance(scores *ScoreMatrix, members []int) float64 {
	maxDist := 0.0
	for _, i := range members {
		for _, j := range members {
			maxDist = max(maxDist, scores.At(i, j))
		}
	}
	return maxDist
}

// ClusterReport holds the per-cluster statistics consumed by a formatter.
type ClusterReport struct {
	ID          int
	Centroid    int
	Mean        int
	Size        int
	Members     []int
	Radius      float64
	MaxDistance float64

	// SumDistance and AvgDistance are the sum and average of the
	// intra-cluster distance over all Pairs = |M|·(|M|-1) ordered pairs.
	SumDistance float64
	AvgDistance float64
	Pairs       int
}

// Summary aggregates diagnostics over a finished clustering.
type Summary struct {
	ActiveClusters int

	// Orphans counts the singleton clusters in the final partition.
	Orphans int

	// TotalAvgDistance is the per-cluster average intra-cluster distance
	// summed across all active clusters.
	TotalAvgDistance float64

	// AvgSilhouette is the silhouette score averaged over all nodes.
	// Nodes in singleton clusters contribute zero.
	AvgSilhouette float64
}

// Report computes the per-cluster reports and the aggregate summary for
// the active clusters, in history order.
func (r *Result) Report() ([]ClusterReport, Summary) {
	r.ComputeStats()

	var reports []ClusterReport
	var summary Summary
	for _, c := range r.Clusters {
		if !c.Active() {
			continue
		}

		var intra []float64
		for _, i := range c.Members {
			for _, j := range c.Members {
				if i != j {
					intra = append(intra, r.Scores.At(i, j))
				}
			}
		}
		rep := ClusterReport{
			ID:          c.ID,
			Centroid:    c.Centroid,
			Mean:        c.Mean,
			Size:        c.Size(),
			Members:     c.Members,
			Radius:      c.Radius,
			MaxDistance: c.MaxDistance,
			Pairs:       len(intra),
		}
		if len(intra) > 0 {
			rep.SumDistance = floats.Sum(intra)
			rep.AvgDistance = rep.SumDistance / float64(rep.Pairs)
		}
		reports = append(reports, rep)

		summary.ActiveClusters++
		if c.Size() == 1 {
			summary.Orphans++
		}
		summary.TotalAvgDistance += rep.AvgDistance
	}

	summary.AvgSilhouette = r.avgSilhouette()
	return reports, summary
}

// avgSilhouette averages the per-node silhouette score: the mean
// intra-cluster distance a against the smallest mean distance b to any
// other active cluster, normalized by whichever is larger. Undefined
// cases (singleton cluster, no other cluster, a == b == 0) score zero.
func (r *Result) avgSilhouette() float64 {
	active := r.ActiveClusters()
	var scores []float64
	for _, node := range r.Nodes {
		own := r.clusterOf(node.ID)
		if own.Size() <= 1 {
			scores = append(scores, 0)
			continue
		}

		var intra []float64
		for _, j := range own.Members {
			if j != node.ID {
				intra = append(intra, r.Scores.At(node.ID, j))
			}
		}
		a := stat.Mean(intra, nil)

		b := math.MaxFloat64
		found := false
		for _, other := range active {
			if other == own || other.Size() == 0 {
				continue
			}
			var inter []float64
			for _, j := range other.Members {
				inter = append(inter, r.Scores.At(node.ID, j))
			}
			if m := stat.Mean(inter, nil); m < b {
				b = m
				found = true
			}
		}
		if !found || max(a, b) == 0 {
			scores = append(scores, 0)
			continue
		}
		scores = append(scores, (b-a)/max(a, b))
	}
	if len(scores) == 0 {
		return 0
	}
	return stat.Mean(scores, nil)
}
