package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// options holds the run parameters. Every field can come from a YAML
// config file; flags set explicitly on the command line win over the
// file, which wins over the defaults.
type options struct {
	Input     string  `yaml:"input"`
	Algorithm string  `yaml:"algorithm"`
	Measure   string  `yaml:"measure"`
	Cutoff    float64 `yaml:"cutoff"`
	K         int     `yaml:"k"`
	Missing   string  `yaml:"missing"`
	Seed      int64   `yaml:"seed"`
}

func defaultOptions() options {
	return options{
		Algorithm: "single",
		Measure:   "distance",
		Cutoff:    0.5908,
		Missing:   "mean",
	}
}

// parseOptions resolves flags and the optional config file into the
// final run parameters.
func parseOptions(args []string) (options, error) {
	opts := defaultOptions()

	fs := flag.NewFlagSet("clust", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file (flags override it)")
	input := fs.String("f", opts.Input, "Input file with pairwise measurements")
	algorithm := fs.String("s", opts.Algorithm, "Clustering algorithm: single|complete|upgma|spicker|kmeans")
	measure := fs.String("m", opts.Measure, "Measure type: distance|similarity")
	cutoff := fs.Float64("d", opts.Cutoff, "Distance (or similarity) cutoff for linkage/SPICKER")
	k := fs.Int("k", opts.K, "Number of clusters for kmeans")
	missing := fs.String("missing", opts.Missing, "Policy for a missing reciprocal measurement: mean|zero")
	seed := fs.Int64("seed", opts.Seed, "Random seed for kmeans (0 = wall clock)")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if *configPath != "" {
		loaded, err := loadConfigFile(*configPath, opts)
		if err != nil {
			return opts, err
		}
		opts = loaded
	}

	// Explicit flags override the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "f":
			opts.Input = *input
		case "s":
			opts.Algorithm = *algorithm
		case "m":
			opts.Measure = *measure
		case "d":
			opts.Cutoff = *cutoff
		case "k":
			opts.K = *k
		case "missing":
			opts.Missing = *missing
		case "seed":
			opts.Seed = *seed
		}
	})
	if *configPath == "" {
		opts = options{
			Input:     *input,
			Algorithm: *algorithm,
			Measure:   *measure,
			Cutoff:    *cutoff,
			K:         *k,
			Missing:   *missing,
			Seed:      *seed,
		}
	}

	if opts.Input == "" {
		return opts, fmt.Errorf("no input file: pass -f or set input in the config file")
	}
	return opts, nil
}

func loadConfigFile(path string, base options) (options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config: %w", err)
	}
	opts := base
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return opts, nil
}
