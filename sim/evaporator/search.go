package evaporator

import (
	"math"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/canesim/canesim/sim/numeric"
	"github.com/canesim/canesim/sim/trace"
)

// Grid is one axis pair of the multiplier search.
type Grid struct {
	Mul1Min, Mul1Max float64
	Mul2Min, Mul2Max float64
	Points           int // per axis
}

// Search grids: a coarse first-fit pass and a finer, wider best-fit fallback.
var (
	FirstFitGrid = Grid{Mul1Min: 5, Mul1Max: 15, Mul2Min: 1500, Mul2Max: 2500, Points: 20}
	BestFitGrid  = Grid{Mul1Min: 5, Mul1Max: 15, Mul2Min: 1200, Mul2Max: 2800, Points: 40}
)

func (g Grid) axes() ([]float64, []float64) {
	return numeric.Linspace(g.Mul1Min, g.Mul1Max, g.Points), numeric.Linspace(g.Mul2Min, g.Mul2Max, g.Points)
}

// search returns the multipliers of the first in-band candidate of the coarse grid, in
// mul1-outer, mul2-inner order. When none is in band it returns the candidate of the
// fallback grid closest to the band midpoint, the earliest one on ties.
func search(tr *train, band Band, st *trace.SearchTrace) (float64, float64, trace.SearchPhase) {
	mul1s, mul2s := FirstFitGrid.axes()
	for _, m1 := range mul1s {
		for _, m2 := range mul2s {
			r := tr.simulate(m1, m2)
			rec := candidate(trace.PhaseFirstFit, m1, m2, r, band)
			if st.Enabled() {
				st.RecordCandidate(rec)
			}
			if rec.InBand {
				if st != nil {
					st.RecordChoice(rec)
				}
				return m1, m2, trace.PhaseFirstFit
			}
		}
	}

	logrus.Warnf("evaporator: no multipliers reach Brix band [%g, %g], searching for the closest", band.Low, band.High)
	return bestFit(tr, band, st)
}

// bestFit evaluates the fallback grid in parallel, one row of mul1 per goroutine, then picks
// the winner by a sequential scan so ties resolve exactly as a sequential search would.
func bestFit(tr *train, band Band, st *trace.SearchTrace) (float64, float64, trace.SearchPhase) {
	mul1s, mul2s := BestFitGrid.axes()
	runs := make([][]*run, len(mul1s))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, m1 := range mul1s {
		i, m1 := i, m1
		g.Go(func() error {
			row := make([]*run, len(mul2s))
			for j, m2 := range mul2s {
				row[j] = tr.simulate(m1, m2)
			}
			runs[i] = row
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	best := [2]float64{}
	bestErr := 1e12
	var chosen trace.CandidateRecord
	for i, m1 := range mul1s {
		for j, m2 := range mul2s {
			rec := candidate(trace.PhaseBestFit, m1, m2, runs[i][j], band)
			if st.Enabled() {
				st.RecordCandidate(rec)
			}
			if rec.Distance < bestErr {
				bestErr = rec.Distance
				best = [2]float64{m1, m2}
				chosen = rec
			}
		}
	}
	if st != nil {
		st.RecordChoice(chosen)
	}
	return best[0], best[1], trace.PhaseBestFit
}

func candidate(phase trace.SearchPhase, m1, m2 float64, r *run, band Band) trace.CandidateRecord {
	brix := r.finalBrix()
	return trace.CandidateRecord{
		Phase:            phase,
		Mul1:             m1,
		Mul2:             m2,
		FinalBrix:        brix,
		TotalConsumption: r.totalConsumption(),
		InBand:           band.Contains(brix),
		Distance:         math.Abs(brix - band.Midpoint()),
	}
}
