package main

import (
	"fmt"

	"github.com/born-ml/dualnum/internal/derive"
	"github.com/born-ml/dualnum/internal/eos"
	"github.com/born-ml/dualnum/internal/parallel"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type evalOptions struct {
	temperature float64
	volume      float64
	moles       []float64
	paramsFile  string
	hessian     bool
	parallel    bool
}

func newEvalCmd(a *app) *cobra.Command {
	ref := eos.ReferenceState()
	opts := evalOptions{}

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate the Helmholtz expression and its exact derivatives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runEval(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.Float64VarP(&opts.temperature, "temperature", "t", ref.Temperature, "temperature")
	f.Float64VarP(&opts.volume, "volume", "V", ref.Volume, "volume")
	f.Float64SliceVarP(&opts.moles, "moles", "n", ref.Moles, "mole numbers, one per component")
	f.StringVarP(&opts.paramsFile, "params", "p", "", "YAML parameter file (default: reference parameters)")
	f.BoolVar(&opts.hessian, "hessian", false, "also print second derivatives")
	f.BoolVar(&opts.parallel, "parallel", false, "evaluate seed directions concurrently")

	return cmd
}

func (a *app) loadParameters(path string) (eos.Parameters, error) {
	if path == "" {
		a.log.Debug("using reference parameters")
		return eos.ReferenceParameters(), nil
	}
	p, err := eos.LoadParametersFile(path)
	if err != nil {
		return eos.Parameters{}, err
	}
	a.log.Debug("loaded parameters", zap.String("path", path), zap.Int("components", p.Components()))
	return p, nil
}

func (a *app) runEval(cmd *cobra.Command, opts evalOptions) error {
	p, err := a.loadParameters(opts.paramsFile)
	if err != nil {
		return err
	}

	s := eos.State{Temperature: opts.temperature, Volume: opts.volume, Moles: opts.moles}

	var dopts []derive.Option
	if opts.parallel {
		cfg := parallel.DefaultConfig()
		a.log.Debug("parallel evaluation", zap.Int("workers", cfg.Workers))
		dopts = append(dopts, derive.WithParallel(cfg))
	}

	props, err := eos.Derivatives(p, s, dopts...)
	if err != nil {
		return err
	}
	a.log.Debug("evaluated derivatives",
		zap.Float64("temperature", s.Temperature),
		zap.Float64("volume", s.Volume),
		zap.Float64s("moles", s.Moles),
		zap.Int("evaluations", 2+len(s.Moles)))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-12s %.16g\n", "a", props.Helmholtz)
	fmt.Fprintf(out, "%-12s %.16g\n", "da/dT", props.DaDT)
	fmt.Fprintf(out, "%-12s %.16g\n", "da/dV", props.DaDV)
	for i, d := range props.DaDN {
		fmt.Fprintf(out, "%-12s %.16g\n", fmt.Sprintf("da/dn[%d]", i), d)
	}
	fmt.Fprintf(out, "%-12s %.16g\n", "pressure", props.Pressure())

	if !opts.hessian {
		return nil
	}

	hess, err := eos.SecondDerivatives(p, s, dopts...)
	if err != nil {
		return err
	}
	names := variableNames(len(s.Moles))
	n, _ := hess.Dims()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			label := fmt.Sprintf("d2a/d%sd%s", names[i], names[j])
			fmt.Fprintf(out, "%-12s %.16g\n", label, hess.At(i, j))
		}
	}
	return nil
}

// variableNames returns T, V, n0, n1, ... matching the packed state vector.
func variableNames(components int) []string {
	names := []string{"T", "V"}
	for i := 0; i < components; i++ {
		names = append(names, fmt.Sprintf("n%d", i))
	}
	return names
}
