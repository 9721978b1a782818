package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/tmfg/matrix"
	"github.com/katalvlaran/tmfg/tmfg"
	"github.com/spf13/cobra"
)

func NewBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a TMFG and write it as JSON",
		Long: `Build the Triangulated Maximal Filtered Graph of a similarity matrix.

The input is either an N×N similarity matrix (--similarity) or a T×N matrix
of observations (--observations) whose column correlation becomes the
similarity. The local-global mode also needs a covariance matrix; it is taken
from --covariance or, with observations, computed from them.`,
		Args: cobra.NoArgs,
		RunE: runBuild,
	}

	cmd.Flags().String("similarity", "", "CSV file with the N×N similarity matrix")
	cmd.Flags().String("observations", "", "CSV file with T observations of N variables")
	cmd.Flags().String("covariance", "", "CSV file with the N×N covariance matrix")
	cmd.Flags().String("mode", "", "Projection mode (filtered|local-global|unweighted)")
	cmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
	cmd.MarkFlagsMutuallyExclusive("similarity", "observations")
	cmd.MarkFlagsOneRequired("similarity", "observations")

	return cmd
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	cfg.applyFlags(func(name string) (string, bool) {
		if !cmd.Flags().Changed(name) {
			return "", false
		}
		v, _ := cmd.Flags().GetString(name)

		return v, true
	})

	mode, err := cfg.mode()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	w, cov, err := loadInputs(cmd, mode)
	if err != nil {
		return err
	}

	opts := []tmfg.Option{
		tmfg.WithMode(mode),
		tmfg.WithSymmetryTolerance(cfg.SymmetryTolerance),
		tmfg.WithLogger(logger),
	}
	if cov != nil {
		opts = append(opts, tmfg.WithCovariance(cov))
	}
	res, err := tmfg.Build(w, opts...)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		return writeOutput(cmd.OutOrStdout(), res, cfg.Output.Indent)
	}

	return writeFile(outPath, func(w io.Writer) error {
		return writeOutput(w, res, cfg.Output.Indent)
	})
}

// loadInputs reads the similarity matrix and, in local-global mode, the
// covariance: from --covariance when given, else derived from observations.
// --covariance in any other mode is an error.
func loadInputs(cmd *cobra.Command, mode tmfg.Mode) (*matrix.Dense, *matrix.Dense, error) {
	simPath, _ := cmd.Flags().GetString("similarity")
	obsPath, _ := cmd.Flags().GetString("observations")
	covPath, _ := cmd.Flags().GetString("covariance")

	var (
		w, cov *matrix.Dense
		err    error
	)
	if covPath != "" {
		if mode != tmfg.LocalGlobal {
			return nil, nil, fmt.Errorf("covariance: only used in %v mode, got %v", tmfg.LocalGlobal, mode)
		}
		if cov, err = readMatrixFile(covPath); err != nil {
			return nil, nil, fmt.Errorf("covariance: %w", err)
		}
	}

	if simPath != "" {
		if w, err = readMatrixFile(simPath); err != nil {
			return nil, nil, fmt.Errorf("similarity: %w", err)
		}

		return w, cov, nil
	}

	x, err := readMatrixFile(obsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("observations: %w", err)
	}
	if w, err = matrix.Correlation(x); err != nil {
		return nil, nil, fmt.Errorf("observations: %w", err)
	}
	if cov == nil && mode == tmfg.LocalGlobal {
		if cov, err = matrix.Covariance(x); err != nil {
			return nil, nil, fmt.Errorf("observations: %w", err)
		}
	}

	return w, cov, nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if err = write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
