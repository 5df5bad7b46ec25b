// SPDX-License-Identifier: MIT
package main

import (
	"github.com/katalvlaran/wcorr/weighted"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type computeFlags struct {
	data     string
	weights  string
	mode     float64
	expTheta float64
	halfLife float64
	header   bool
	format   string
	alpha    float64
}

func bindComputeFlags(fs *pflag.FlagSet, f *computeFlags) {
	fs.StringVar(&f.data, "data", "", "observation CSV (rows = observations, columns = variables); - for stdin")
	fs.StringVar(&f.weights, "weights", "", "weight CSV, a single row or column of nobs values")
	fs.Float64Var(&f.mode, "mode", 0, "uniform weights: 0 normalizes by nobs-1, 1 by nobs")
	fs.Float64Var(&f.expTheta, "exp-theta", 0, "exponential weights exp((t-nobs)/theta), t=1..nobs")
	fs.Float64Var(&f.halfLife, "half-life", 0, "exponential weights halving every h observations")
	fs.BoolVar(&f.header, "header", false, "first CSV record names the variables")
	fs.StringVar(&f.format, "format", defaultFormat, "output format: yaml|text")
	fs.Float64Var(&f.alpha, "alpha", 0, "mark p-values below alpha as significant (0 disables)")
}

func computeCmd(st *rootState) *cobra.Command {
	var f computeFlags
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute weighted correlations, p-values and covariances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd, st.cfg, &f)
		},
	}
	bindComputeFlags(cmd.Flags(), &f)
	cmd.MarkFlagsMutuallyExclusive("weights", "mode", "exp-theta", "half-life")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runCompute(cmd *cobra.Command, base *Config, f *computeFlags) error {
	fs := cmd.Flags()
	cfg := *base
	if fs.Changed("format") {
		cfg.Format = f.format
	}
	if fs.Changed("header") {
		cfg.Header = f.header
	}
	if fs.Changed("alpha") {
		cfg.Alpha = f.alpha
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	in, err := openInput(f.data, cmd.InOrStdin())
	if err != nil {
		return err
	}
	names, X, err := readObservations(in, cfg.Header)
	in.Close()
	if err != nil {
		return err
	}

	w, err := selectWeights(cmd, f, X.Rows())
	if err != nil {
		return err
	}
	if err := cmd.Context().Err(); err != nil {
		return err
	}

	res, err := weighted.Compute(X, w)
	if err != nil {
		return err
	}
	log.Info().Int("nobs", res.Nobs).Int("nvar", res.Nvar).Stringer("dof", res.DOF).Msg("correlations computed")

	var mask [][]bool
	if cfg.Alpha != 0 {
		if mask, err = res.Significant(cfg.Alpha); err != nil {
			return err
		}
	}

	rep := newReport(names, res, cfg.Alpha, mask)
	if cfg.Format == formatText {
		return writeText(cmd.OutOrStdout(), rep)
	}

	return writeYAML(cmd.OutOrStdout(), rep)
}

// selectWeights maps the mutually exclusive weight flags to a selector.
func selectWeights(cmd *cobra.Command, f *computeFlags, nobs int) (weighted.Weights, error) {
	fs := cmd.Flags()
	switch {
	case fs.Changed("weights"):
		in, err := openInput(f.weights, cmd.InOrStdin())
		if err != nil {
			return weighted.Weights{}, err
		}
		defer in.Close()

		return readWeights(in)
	case fs.Changed("mode"):
		return weighted.Scalar(f.mode), nil
	case fs.Changed("exp-theta"):
		w, err := weighted.ExponentialWeights(nobs, f.expTheta)
		if err != nil {
			return weighted.Weights{}, err
		}
		log.Debug().Float64("theta", f.expTheta).Msg("exponential weights")

		return weighted.Vector(w), nil
	case fs.Changed("half-life"):
		w, err := weighted.ExponentialWeightsHalfLife(nobs, f.halfLife)
		if err != nil {
			return weighted.Weights{}, err
		}
		log.Debug().Float64("half_life", f.halfLife).Msg("exponential weights")

		return weighted.Vector(w), nil
	default:
		return weighted.Omitted(), nil
	}
}
