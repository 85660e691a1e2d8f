package clustering

import "gonum.org/v1/gonum/stat"

// admissionFunc decides whether two clusters joined by a below-cutoff
// link may merge. The single-linkage variant always admits; the complete
// and average variants inspect the full cross-pair distances.
type admissionFunc func(r *Result, a, b *Cluster) bool

// runHierarchical drains the link queue in ascending distance order and
// merges clusters according to the variant's admission predicate. The
// loop terminates at the first link with distance >= cutoff; remaining
// links are never processed. A link whose endpoints already share a
// cluster records its distance into that cluster's MaxDistance.
func runHierarchical(r *Result, algorithm Algorithm, cutoff float64) {
	var admit admissionFunc
	switch algorithm {
	case CompleteLinkage:
		admit = admitComplete(cutoff)
	case UPGMA:
		admit = admitAverage(cutoff)
	default:
		// Single linkage: below-cutoff is the whole criterion.
		admit = func(*Result, *Cluster, *Cluster) bool { return true }
	}

	q := newLinkQueue(r.Scores)
	for q.Len() > 0 {
		link := q.next()
		if link.Distance >= cutoff {
			break
		}

		a := r.clusterOf(link.A)
		b := r.clusterOf(link.B)
		if a == b {
			a.MaxDistance = max(a.MaxDistance, link.Distance)
			continue
		}
		if !admit(r, a, b) {
			// Rejected links are discarded, never re-queued.
			continue
		}
		r.merge(a, b, link.Distance)
	}
}

// admitComplete admits a merge only if every cross pair between the two
// clusters' full membership is below the cutoff.
func admitComplete(cutoff float64) admissionFunc {
	return func(r *Result, a, b *Cluster) bool {
		for _, i := range a.Members {
			for _, j := range b.Members {
				if r.Scores.At(i, j) >= cutoff {
					return false
				}
			}
		}
		return true
	}
}

// admitAverage admits a merge only if the mean of all cross-pair
// distances between the two clusters is below the cutoff (UPGMA).
func admitAverage(cutoff float64) admissionFunc {
	return func(r *Result, a, b *Cluster) bool {
		cross := make([]float64, 0, len(a.Members)*len(b.Members))
		for _, i := range a.Members {
			for _, j := range b.Members {
				cross = append(cross, r.Scores.At(i, j))
			}
		}
		return stat.Mean(cross, nil) < cutoff
	}
}
