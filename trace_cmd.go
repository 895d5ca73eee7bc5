package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kellegous/stepsort/sorts"
	"github.com/kellegous/stepsort/trace"
)

func parseInts(args []string) ([]int, error) {
	vals := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: not an integer", arg)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func writeTrace(w io.Writer, format string, steps []trace.Snapshot) error {
	switch format {
	case "json":
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(steps)
	case "yaml":
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(steps); err != nil {
			return err
		}
		return e.Close()
	case "summary":
		f := steps[len(steps)-1]
		_, err := fmt.Fprintf(w, "%v steps=%d comparisons=%d swaps=%d\n",
			f.Array, len(steps), f.Comparisons, f.Swaps)
		return err
	}
	return fmt.Errorf("unknown format: %s", format)
}

func newTraceCmd() *cobra.Command {
	var algorithm string
	var fallback string
	var format string
	var maxRange int

	cmd := &cobra.Command{
		Use:   "trace [flags] [--] value...",
		Short: "Print the trace of sorting the given integers",
		Long: "Print the trace of sorting the given integers.\n\n" +
			"Values after -- are never parsed as flags, which is needed when the\n" +
			"first value is negative.",
		Example: "  stepsort trace -a quick 3 1 2\n" +
			"  stepsort trace -a quick -f summary -- -3 1 2",
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseInts(args)
			if err != nil {
				return err
			}

			e := sorts.Engine{Fallback: fallback, MaxValueRange: maxRange}
			a, known := e.Resolve(algorithm)
			if !known {
				fmt.Fprintf(cmd.ErrOrStderr(), "unknown algorithm %q, using %s\n", algorithm, a.Name)
			}

			steps, err := a.Run(vals, e.MaxValueRange)
			if err != nil {
				return err
			}

			return writeTrace(cmd.OutOrStdout(), format, steps)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", sorts.DefaultAlgorithm, "sorting algorithm")
	cmd.Flags().StringVar(&fallback, "fallback", sorts.DefaultAlgorithm, "algorithm used when --algorithm is unknown")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, yaml or summary")
	cmd.Flags().IntVar(&maxRange, "max-range", sorts.DefaultMaxValueRange, "widest max-min+1 span counting sort will trace")
	return cmd
}
