package fit

import (
	"math"

	"gonum.org/v1/gonum/optimize"
)

// nmPenalty is the finite stand-in for rejected candidates handed to the
// simplex: out-of-box points and non-finite deviances all map here, so
// the method only ever sees finite values and contracts away from the
// penalized region. A final value at the penalty level means the search
// never found an evaluable point.
const nmPenalty = 1e300

// NelderMead adapts gonum's derivative-free simplex search to the
// box-constrained Minimizer contract.
//
// It is the default minimizer: local, deterministic, and it honors the
// starting point — the behavior the replication study is defined against.
type NelderMead struct {
	// MaxEvals caps objective evaluations; 0 uses gonum's defaults.
	MaxEvals int
}

// Minimize implements Minimizer. The convergence code is 0 when gonum
// reports a successful termination status at an evaluable point,
// otherwise the raw status value (or the generic failure status if the
// method errored outright).
func (nm *NelderMead) Minimize(obj func(x []float64) float64, start, lower, upper []float64) ([]float64, int) {
	boxed := func(x []float64) float64 {
		for k := range x {
			if x[k] < lower[k] || x[k] > upper[k] {
				return nmPenalty
			}
		}
		v := obj(x)
		if math.IsNaN(v) || math.IsInf(v, 1) || v > nmPenalty {
			return nmPenalty
		}
		return v
	}

	problem := optimize.Problem{Func: boxed}
	settings := &optimize.Settings{}
	if nm.MaxEvals > 0 {
		settings.FuncEvaluations = nm.MaxEvals
	}

	x0 := append([]float64(nil), start...)
	res, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if err != nil || res == nil {
		return x0, int(optimize.Failure)
	}
	if res.F >= nmPenalty {
		return res.X, int(optimize.Failure)
	}

	switch res.Status {
	case optimize.Success,
		optimize.FunctionThreshold,
		optimize.FunctionConvergence,
		optimize.GradientThreshold,
		optimize.StepConvergence,
		optimize.MethodConverge:
		return res.X, 0
	default:
		return res.X, int(res.Status)
	}
}
