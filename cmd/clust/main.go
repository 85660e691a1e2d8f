// Command clust reads a list of pairwise distances (or similarities)
// between elements and clusters them with the selected algorithm,
// printing every cluster formed before the cutoff is reached.
package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	clustering "github.com/Leo-GG/Clustering"
)

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		log.Fatalf("clust: %v", err)
	}
	if err := runClust(opts, os.Stdout); err != nil {
		log.Fatalf("clust: %v", err)
	}
}

func runClust(opts options, w io.Writer) error {
	algorithm, err := clustering.ParseAlgorithm(opts.Algorithm)
	if err != nil {
		return err
	}
	measure, err := clustering.ParseMeasure(opts.Measure)
	if err != nil {
		return err
	}

	f, err := os.Open(opts.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	raw, err := readScores(f)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.Input, err)
	}

	cfg := clustering.DefaultConfig()
	cfg.Algorithm = algorithm
	cfg.Cutoff = opts.Cutoff
	cfg.K = opts.K
	cfg.Missing = clustering.MissingPolicy(opts.Missing)
	if opts.Seed != 0 {
		cfg.Rand = rand.New(rand.NewSource(opts.Seed))
	}

	if measure == clustering.MeasureSimilarity {
		raw = clustering.DistancesFromSimilarities(raw)
		// The k-means parameter is an element count, not a distance.
		if algorithm != clustering.KMeans {
			cfg.Cutoff = clustering.CutoffFromSimilarity(opts.Cutoff)
		}
	}

	result, err := clustering.ClusterScores(raw, cfg)
	if err != nil {
		return err
	}

	reports, summary := result.Report()
	printReport(w, reports, summary, measure)
	return nil
}

// printReport writes the flat text report. For similarity input, radius
// and max distance are converted back to the similarity sense.
func printReport(w io.Writer, reports []clustering.ClusterReport, summary clustering.Summary, measure clustering.Measure) {
	for _, rep := range reports {
		if measure == clustering.MeasureSimilarity {
			fmt.Fprintf(w, "Cluster %d : clustroid %d, mean %d, members %d, radius %f, minSimilarity %f, avgDistance %f (%d pairs)\n",
				rep.ID, rep.Centroid, rep.Mean, rep.Size,
				1-rep.Radius, 1-rep.MaxDistance, rep.AvgDistance, rep.Pairs)
		} else {
			fmt.Fprintf(w, "Cluster %d : clustroid %d, mean %d, members %d, radius %f, maxDistance %f, avgDistance %f (%d pairs)\n",
				rep.ID, rep.Centroid, rep.Mean, rep.Size,
				rep.Radius, rep.MaxDistance, rep.AvgDistance, rep.Pairs)
		}
		fmt.Fprintf(w, "List of members:\n%s\n", joinInts(rep.Members))
	}
	fmt.Fprintf(w, "Total number of clusters: %d (%d singletons)\n", summary.ActiveClusters, summary.Orphans)
	fmt.Fprintf(w, "Total average intra-cluster distance: %f\n", summary.TotalAvgDistance)
	fmt.Fprintf(w, "Average silhouette: %f\n", summary.AvgSilhouette)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}
