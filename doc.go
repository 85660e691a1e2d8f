// Package clustering groups elements given pairwise dissimilarity (or
// similarity) measurements that may be asymmetric.
//
// Raw measurements are first normalized into a symmetric score matrix by
// reconciling each reciprocal pair with its harmonic mean. The normalized
// matrix is then clustered with one of five strategies: single linkage,
// complete linkage, UPGMA (average linkage), SPICKER-style greedy density
// clustering, or k-means over the distance matrix. Finished clusterings
// carry per-cluster statistics (clustroid, mean element, radius, maximum
// and average intra-cluster distance) and an aggregate silhouette score.
//
// Basic usage:
//
//	cfg := clustering.DefaultConfig()
//	cfg.Algorithm = clustering.SingleLinkage
//	cfg.Cutoff = 0.5
//	result, err := clustering.ClusterScores(rawScores, cfg)
//	// result.ActiveClusters() is the final partition
//	// result.Report() returns per-cluster statistics and a summary
//
// rawScores is the flat row-major list of raw measurements over all ordered
// pairs, including self-pairs: rawScores[i*n+j] is the measurement from
// element i to element j.
//
// All algorithms operate on distances, where smaller means more similar.
// Similarity measurements must be converted before clustering:
//
//	raw := clustering.DistancesFromSimilarities(similarities)
//	cfg.Cutoff = clustering.CutoffFromSimilarity(0.8)
package clustering
