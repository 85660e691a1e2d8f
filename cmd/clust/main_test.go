package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScores(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scores.txt")
	if err := os.WriteFile(path, []byte(lines), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunClust_DistanceReport(t *testing.T) {
	path := writeScores(t,
		"E0 E0 0\nE0 E1 2\nE0 E2 10\n"+
			"E1 E0 2\nE1 E1 0\nE1 E2 10\n"+
			"E2 E0 10\nE2 E1 10\nE2 E2 0\n")

	opts := defaultOptions()
	opts.Input = path
	opts.Cutoff = 5

	var out strings.Builder
	if err := runClust(opts, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Total number of clusters: 2 (1 singletons)") {
		t.Errorf("missing cluster total, got:\n%s", got)
	}
	if !strings.Contains(got, "maxDistance") {
		t.Errorf("distance report should print maxDistance, got:\n%s", got)
	}
}

func TestRunClust_SimilarityReport(t *testing.T) {
	path := writeScores(t,
		"E0 E0 1\nE0 E1 0.9\nE0 E2 0.1\n"+
			"E1 E0 0.9\nE1 E1 1\nE1 E2 0.1\n"+
			"E2 E0 0.1\nE2 E1 0.1\nE2 E2 1\n")

	opts := defaultOptions()
	opts.Input = path
	opts.Measure = "similarity"
	opts.Cutoff = 0.5

	var out strings.Builder
	if err := runClust(opts, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Total number of clusters: 2") {
		t.Errorf("missing cluster total, got:\n%s", got)
	}
	if !strings.Contains(got, "minSimilarity") {
		t.Errorf("similarity report should print minSimilarity, got:\n%s", got)
	}
}

func TestRunClust_BadAlgorithm(t *testing.T) {
	opts := defaultOptions()
	opts.Input = writeScores(t, "A B 1\n")
	opts.Algorithm = "ward"

	var out strings.Builder
	if err := runClust(opts, &out); err == nil {
		t.Error("expected error for invalid algorithm, got nil")
	}
}
