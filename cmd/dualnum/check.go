package main

import (
	"fmt"

	"github.com/born-ml/dualnum/internal/dual"
	"github.com/born-ml/dualnum/internal/eos"
	"github.com/born-ml/dualnum/internal/fdcheck"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type checkOptions struct {
	x          float64
	tolerance  float64
	paramsFile string
}

func newCheckCmd(a *app) *cobra.Command {
	opts := checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Cross-check dual-number derivatives against finite differences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCheck(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.x, "x", 1.5, "evaluation point for the single-variable checks")
	f.Float64Var(&opts.tolerance, "tol", fdcheck.DefaultTolerance, "absolute-or-relative tolerance")
	f.StringVarP(&opts.paramsFile, "params", "p", "", "YAML parameter file (default: reference parameters)")

	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, opts checkOptions) error {
	p, err := a.loadParameters(opts.paramsFile)
	if err != nil {
		return err
	}

	results := fdcheck.All(opts.x)
	results = append(results, fdcheck.Derivative(fdcheck.Func{
		Name: "probe",
		Dual: eos.Probe[dual.Dual64],
		Real: func(x float64) float64 { return float64(eos.Probe(dual.Real(x))) },
	}, opts.x))

	s := eos.ReferenceState()
	s.Moles = make([]float64, p.Components())
	for i := range s.Moles {
		s.Moles[i] = 1 / float64(len(s.Moles))
	}
	if err := s.Validate(p); err != nil {
		return err
	}
	x := append([]float64{s.Temperature, s.Volume}, s.Moles...)

	helmholtz := func(in []dual.Dual64) dual.Dual64 { return eos.Helmholtz(p, in[0], in[1], in[2:]) }
	hyper := func(in []dual.HyperDual64) dual.HyperDual64 { return eos.Helmholtz(p, in[0], in[1], in[2:]) }
	plain := func(in []float64) float64 {
		r := dual.Constants[dual.Real](in)
		return float64(eos.Helmholtz(p, r[0], r[1], r[2:]))
	}
	results = append(results, fdcheck.Gradient("helmholtz", helmholtz, plain, x)...)
	results = append(results, fdcheck.Mixed("helmholtz T,V", hyper, plain, x, 0, 1))

	out := cmd.OutOrStdout()
	failed := 0
	for _, r := range results {
		status := "PASS"
		if !r.Within(opts.tolerance) {
			status = "FAIL"
			failed++
			a.log.Warn("derivative mismatch",
				zap.String("check", r.Name),
				zap.Float64s("x", r.X),
				zap.Float64("dual", r.Derivative),
				zap.Float64("numeric", r.Numeric))
		}
		fmt.Fprintf(out, "%s  %-14s dual=% .12e  numeric=% .12e  abs_err=%.2e\n",
			status, r.Name, r.Derivative, r.Numeric, r.AbsErr())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}
	fmt.Fprintf(out, "all %d checks passed\n", len(results))
	return nil
}
