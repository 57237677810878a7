// Command pairmetrics scores a pair of inputs with one of the supported
// similarity metrics and prints the (distance, similarity) result as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	pairmetrics "github.com/baditaflorin/go_pair_metrics"
	"github.com/baditaflorin/go_pair_metrics/internal/core/domain"
	"github.com/baditaflorin/go_pair_metrics/pkg/bow"
	"github.com/baditaflorin/go_pair_metrics/pkg/set"
	"github.com/baditaflorin/go_pair_metrics/pkg/stringsim"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "pairmetrics",
		Usage: "Compute pairwise similarity and distance metrics",
		Commands: []*cli.Command{
			{
				Name:      "jaccard",
				Usage:     "Jaccard index between two comma-separated element sets",
				ArgsUsage: "<set-a> <set-b>",
				Action: func(c *cli.Context) error {
					a, b, err := setArgs(c)
					if err != nil {
						return err
					}
					return printResult(pairmetrics.Jaccard(a, b))
				},
			},
			{
				Name:      "tversky",
				Usage:     "Tversky index between two comma-separated element sets",
				ArgsUsage: "<set-a> <set-b>",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  "alpha",
						Usage: "Weight for elements unique to the reference set",
						Value: pairmetrics.DefaultAlpha,
					},
					&cli.Float64Flag{
						Name:  "beta",
						Usage: "Weight for elements unique to the candidate set",
						Value: pairmetrics.DefaultBeta,
					},
				},
				Action: func(c *cli.Context) error {
					a, b, err := setArgs(c)
					if err != nil {
						return err
					}
					return printResult(pairmetrics.Tversky(a, b, c.Float64("alpha"), c.Float64("beta")))
				},
			},
			{
				Name:      "exact",
				Usage:     "Equality-based similarity between two strings",
				ArgsUsage: "<s1> <s2>",
				Action: func(c *cli.Context) error {
					s1, s2, err := stringArgs(c)
					if err != nil {
						return err
					}
					return printResult(pairmetrics.Exact(s1, s2))
				},
			},
			{
				Name:      "jarowinkler",
				Usage:     "Jaro-Winkler similarity between two strings",
				ArgsUsage: "<s1> <s2>",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  "scaling-factor",
						Usage: "Prefix boost scaling factor (capped at 0.25)",
						Value: 0.1,
					},
					&cli.Float64Flag{
						Name:  "boost-threshold",
						Usage: "Minimum base similarity for the boost (capped at 1)",
						Value: 0.7,
					},
				},
				Action: func(c *cli.Context) error {
					s1, s2, err := stringArgs(c)
					if err != nil {
						return err
					}
					comparator, err := stringsim.NewComparator(
						stringsim.WithScalingFactor(c.Float64("scaling-factor")),
						stringsim.WithBoostThreshold(c.Float64("boost-threshold")),
					)
					if err != nil {
						return err
					}
					return printResult(comparator.JaroWinkler(c.Context, s1, s2))
				},
			},
			{
				Name:      "editdist",
				Usage:     "Damerau-Levenshtein edit distance between two strings",
				ArgsUsage: "<s1> <s2>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "max-length",
						Usage: "Engine capacity in characters",
						Value: 60,
					},
				},
				Action: func(c *cli.Context) error {
					s1, s2, err := stringArgs(c)
					if err != nil {
						return err
					}
					engine, err := pairmetrics.NewDistanceEngine(
						stringsim.WithMaxLength(c.Int("max-length")),
					)
					if err != nil {
						return err
					}
					result, err := engine.Distance(c.Context, s1, s2)
					if err != nil {
						return err
					}
					return printResult(result)
				},
			},
			{
				Name:      "cosine",
				Usage:     "Bag-of-words cosine similarity between two JSON token-weight objects",
				ArgsUsage: `'{"the":1,"cat":1}' '{"the":1,"dog":1}'`,
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return cli.Exit("expected exactly two vector arguments", 1)
					}
					var a, b bow.Vector
					if err := json.Unmarshal([]byte(c.Args().Get(0)), &a); err != nil {
						return fmt.Errorf("invalid first vector: %w", err)
					}
					if err := json.Unmarshal([]byte(c.Args().Get(1)), &b); err != nil {
						return fmt.Errorf("invalid second vector: %w", err)
					}
					result, err := pairmetrics.Cosine(a, b)
					if err != nil {
						return err
					}
					return printResult(result)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setArgs parses two comma-separated element sets from the command line.
func setArgs(c *cli.Context) (set.Set[string], set.Set[string], error) {
	if c.NArg() != 2 {
		return nil, nil, cli.Exit("expected exactly two set arguments", 1)
	}
	return splitSet(c.Args().Get(0)), splitSet(c.Args().Get(1)), nil
}

func splitSet(arg string) set.Set[string] {
	if arg == "" {
		return set.New[string]()
	}
	return set.New(strings.Split(arg, ",")...)
}

// stringArgs returns the two string operands from the command line.
func stringArgs(c *cli.Context) (string, string, error) {
	if c.NArg() != 2 {
		return "", "", cli.Exit("expected exactly two string arguments", 1)
	}
	return c.Args().Get(0), c.Args().Get(1), nil
}

// printResult writes the result as a JSON object on stdout.
func printResult(result domain.Result) error {
	out, err := json.Marshal(map[string]interface{}{
		"metric":     result.Name,
		"distance":   result.Distance,
		"similarity": result.Similarity,
	})
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
