package replicate

import (
	"fmt"

	"github.com/maseology/mmio"
	"gonum.org/v1/gonum/stat"
)

// Summary holds per-parameter sample moments across replicates, the raw
// material for bias inspection against the generating values.
type Summary struct {
	MeanSigmaX, SDSigmaX float64
	MeanRhoX, SDRhoX     float64
	MeanSigmaY, SDSigmaY float64
	MeanRhoY, SDRhoY     float64
	// Converged counts rows with Code == 0.
	Converged int
}

// Summary computes sample means and standard deviations over all rows.
func (r Results) Summary() Summary {
	n := len(r)
	sx := make([]float64, n)
	rx := make([]float64, n)
	sy := make([]float64, n)
	ry := make([]float64, n)
	conv := 0
	for i, row := range r {
		sx[i], rx[i] = row.Est.SigmaX, row.Est.RhoX
		sy[i], ry[i] = row.Est.SigmaY, row.Est.RhoY
		if row.Code == 0 {
			conv++
		}
	}
	return Summary{
		MeanSigmaX: stat.Mean(sx, nil), SDSigmaX: stat.StdDev(sx, nil),
		MeanRhoX: stat.Mean(rx, nil), SDRhoX: stat.StdDev(rx, nil),
		MeanSigmaY: stat.Mean(sy, nil), SDSigmaY: stat.StdDev(sy, nil),
		MeanRhoY: stat.Mean(ry, nil), SDRhoY: stat.StdDev(ry, nil),
		Converged: conv,
	}
}

// Converged filters the table down to rows whose minimizer reported success.
func (r Results) Converged() Results {
	out := make(Results, 0, len(r))
	for _, row := range r {
		if row.Code == 0 {
			out = append(out, row)
		}
	}
	return out
}

// WriteCSV dumps the table for downstream plotting, one row per replicate.
func (r Results) WriteCSV(path string) {
	lns := make([]string, 0, len(r)+1)
	lns = append(lns, "rep,sigma_x,rho_x,sigma_y,rho_y,deviance,code")
	for _, row := range r {
		lns = append(lns, fmt.Sprintf("%d,%f,%f,%f,%f,%f,%d",
			row.Rep, row.Est.SigmaX, row.Est.RhoX, row.Est.SigmaY, row.Est.RhoY,
			row.Deviance, row.Code))
	}
	mmio.WriteLines(path, lns)
}
