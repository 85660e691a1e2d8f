package clustering

// Node is one element taking part in the clustering. Nodes live in a
// single arena indexed by ID; links and cluster member lists refer to
// nodes by ID, never by pointer.
type Node struct {
	// ID is the stable element identifier, 0..n-1, assigned at creation.
	ID int

	// Cluster is the ID of the cluster currently owning this node.
	Cluster int
}

// ClusterState is the lifecycle state of a cluster record.
type ClusterState int

const (
	// StateActive marks a cluster that is part of the current partition.
	StateActive ClusterState = iota

	// StateMerged marks a cluster that was merged or dissolved into a
	// later cluster and is excluded from reporting.
	StateMerged
)

// Cluster is one cluster record in the append-only merge history. IDs are
// assigned monotonically and never reused; records are never deleted, so
// the cluster list of a [Result] is a forest of merge history in which
// only StateActive records form the final partition.
type Cluster struct {
	// ID is the cluster identifier, equal to the record's index in the
	// history list.
	ID int

	// Members holds the IDs of the member nodes in insertion order.
	Members []int

	// MaxDistance is the largest distance observed between members of
	// the clusters that union-chained into this one, including distances
	// recorded when a link joined two nodes already sharing a cluster.
	// ComputeStats replaces it with the exact maximum pairwise distance
	// for active clusters.
	MaxDistance float64

	// State is Active for clusters in the current partition, Merged for
	// clusters that were merged away.
	State ClusterState

	// MergedInto is the ID of the cluster this one was merged into, or
	// -1 when it was dissolved without a single successor (k-means
	// reinitialization). Only meaningful when State is StateMerged.
	MergedInto int

	// Centroid is the member whose worst-case distance to any other
	// member is smallest, -1 until computed.
	Centroid int

	// Mean is the member whose total distance to the other members is
	// smallest, -1 until computed. Distinct from Centroid.
	Mean int

	// Radius is the maximum distance from the centroid to any member,
	// recorded when the centroid is computed.
	Radius float64
}

// Active reports whether the cluster is part of the current partition.
func (c *Cluster) Active() bool { return c.State == StateActive }

// Size returns the number of member nodes.
func (c *Cluster) Size() int { return len(c.Members) }

// Result is the outcome of a clustering run: the normalized score matrix,
// the node arena, and the full append-only cluster history. At every
// point during and after a run, the active clusters partition the nodes:
// every node belongs to exactly one active cluster.
type Result struct {
	// Scores is the normalized symmetric distance matrix the algorithms
	// operated on.
	Scores *ScoreMatrix

	// Nodes is the element arena, indexed by node ID.
	Nodes []Node

	// Clusters is the append-only cluster history, indexed by cluster ID.
	Clusters []*Cluster
}

// newResult initializes one singleton cluster per node, the state every
// algorithm starts from.
func newResult(scores *ScoreMatrix) *Result {
	n := scores.Dim()
	r := &Result{
		Scores:   scores,
		Nodes:    make([]Node, n),
		Clusters: make([]*Cluster, 0, 2*n),
	}
	for i := 0; i < n; i++ {
		r.Nodes[i] = Node{ID: i, Cluster: i}
		r.Clusters = append(r.Clusters, &Cluster{
			ID:         i,
			Members:    []int{i},
			MergedInto: -1,
			Centroid:   -1,
			Mean:       -1,
		})
	}
	return r
}

// clusterOf returns the active cluster owning the given node.
func (r *Result) clusterOf(node int) *Cluster {
	return r.Clusters[r.Nodes[node].Cluster]
}

// merge combines clusters a and b into a new cluster appended to the
// history, reassigns every member node, and marks the sources merged.
// dist, the distance of the triggering link, becomes the new cluster's
// MaxDistance. All member reassignments happen before merge returns, so
// the partition invariant holds between any two engine steps.
func (r *Result) merge(a, b *Cluster, dist float64) *Cluster {
	id := len(r.Clusters)
	members := make([]int, 0, len(a.Members)+len(b.Members))
	members = append(members, a.Members...)
	members = append(members, b.Members...)
	for _, node := range members {
		r.Nodes[node].Cluster = id
	}

	a.State = StateMerged
	a.MergedInto = id
	b.State = StateMerged
	b.MergedInto = id

	c := &Cluster{
		ID:          id,
		Members:     members,
		MaxDistance: dist,
		MergedInto:  -1,
		Centroid:    -1,
		Mean:        -1,
	}
	r.Clusters = append(r.Clusters, c)
	return c
}

// ActiveClusters returns the clusters forming the final partition, in
// history order.
func (r *Result) ActiveClusters() []*Cluster {
	var active []*Cluster
	for _, c := range r.Clusters {
		if c.Active() {
			active = append(active, c)
		}
	}
	return active
}
