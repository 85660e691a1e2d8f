package clustering

// assignedSentinel marks matrix cells of already-assigned nodes on the
// SPICKER working copy, excluding them from later neighbor counts.
const assignedSentinel = -1

// runSpicker clusters by the SPICKER method (Yang & Skolnick, J Comput
// Chem 2004): repeatedly pick the element with the most neighbors below
// the cutoff, form a cluster from those neighbors, and blank their
// columns on a working copy of the matrix until no orphan remains.
//
// Neighbor counting includes the element itself (the diagonal is zero),
// and ties on the neighbor count keep the earliest-scanned row. A node is
// assigned exactly once, but an already-assigned row may still win a
// later scan and seed a cluster from its remaining neighbors.
func runSpicker(r *Result, cutoff float64) {
	n := r.Scores.Dim()
	work := r.Scores.clone()
	orphans := n

	for orphans > 0 {
		maxRow := -1
		maxNb := 0
		for i := 0; i < n; i++ {
			count := 0
			for j := 0; j < n; j++ {
				if d := work.At(i, j); d >= 0 && d < cutoff {
					count++
				}
			}
			if count > maxNb || maxRow < 0 {
				maxRow = i
				maxNb = count
			}
		}

		id := len(r.Clusters)
		var members []int
		for j := 0; j < n; j++ {
			if d := work.At(maxRow, j); d < 0 || d >= cutoff {
				continue
			}
			if old := r.clusterOf(j); old.Active() {
				old.State = StateMerged
				old.MergedInto = id
			}
			r.Nodes[j].Cluster = id
			members = append(members, j)
			orphans--
			// Blank the whole column so j never counts as anyone's
			// neighbor again. Row j keeps its remaining entries.
			for i := 0; i < n; i++ {
				work.setRaw(i, j, assignedSentinel)
			}
		}

		c := &Cluster{
			ID:         id,
			Members:    members,
			MergedInto: -1,
			Centroid:   -1,
			Mean:       -1,
		}
		// MaxDistance comes from the pristine matrix, not the blanked copy.
		c.MaxDistance = maxPairDistance(r.Scores, members)
		r.Clusters = append(r.Clusters, c)
	}
}
