//Package report runs the full radius-of-gyration analysis pipeline and
//renders its results as a text summary and as diagnostic figures (time
//series, histogram of the equilibrated region and running-average
//convergence), in the manner of the plots produced alongside LAMMPS
//post-processing.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rmera/gyration"
	"github.com/rmera/gyration/gfactor"
	"github.com/rmera/gyration/gyrostat"
)

//Options configures one analysis run. Options are read-only once handed to
//Analyze; concurrent runs can share one Options value.
type Options struct {
	Policy    gyration.Policy //equilibration window selection
	ExpectedG float64         //expected g-factor of the topology
	Level     float64         //confidence level for the interval
}

//DefaultOptions returns the options of the published tetracyclic analysis:
//half-tail equilibration, expected g-factor 0.445 and a 95% confidence
//interval.
func DefaultOptions() *Options {
	return &Options{
		Policy:    gyration.HalfTail,
		ExpectedG: gfactor.DefaultExpectedG,
		Level:     gyrostat.DefaultLevel,
	}
}

//Report aggregates everything one analysis run produced. It is assembled
//only after every stage of the pipeline succeeded, so a Report never holds
//partial results, and the writers below never emit artifacts for a failed
//run.
type Report struct {
	Source  string            //name of the input table
	Series  *gyration.Series  //the full series, as read
	Window  *gyration.Window  //the selected equilibrated region
	Summary *gyrostat.Summary //statistics over the window
	Running []float64         //running mean over the full series
	G       *gfactor.Result   //the g-factor derivation
}

//Analyze reads the named (timestep, Rg) table and runs the whole pipeline
//on it: window selection, summary statistics, running average and g-factor
//derivation. A nil opts means DefaultOptions. Any stage failing aborts the
//run with one of the gyration error kinds; nothing is written anywhere.
func Analyze(filename string, opts *Options) (*Report, error) {
	S, err := gyration.ReadSeries(filename)
	if err != nil {
		return nil, errDecorate(err, "report.Analyze")
	}
	rep, err := AnalyzeSeries(S, opts)
	if err != nil {
		return nil, errDecorate(err, "report.Analyze")
	}
	rep.Source = filename
	return rep, nil
}

//AnalyzeSeries runs the pipeline on an already loaded series. See Analyze.
func AnalyzeSeries(S *gyration.Series, opts *Options) (*Report, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	w, err := S.Window(opts.Policy)
	if err != nil {
		return nil, errDecorate(err, "report.AnalyzeSeries")
	}
	sum, err := gyrostat.Summarize(w.Values(), opts.Level)
	if err != nil {
		return nil, errDecorate(err, "report.AnalyzeSeries")
	}
	res, err := gfactor.Compute(sum.Mean, opts.ExpectedG)
	if err != nil {
		return nil, errDecorate(err, "report.AnalyzeSeries")
	}
	return &Report{
		Series:  S,
		Window:  w,
		Summary: sum,
		Running: gyrostat.RunningMean(S.Values()),
		G:       res,
	}, nil
}

//WriteText writes the plain-text summary of the run to w: sample counts,
//mean with dispersion and confidence interval, extrema, and the g-factor
//derivation with its assessment.
func (R *Report) WriteText(w io.Writer) error {
	sep := strings.Repeat("=", 50)
	s := R.Summary
	g := R.G
	var b bytes.Buffer
	fmt.Fprintf(&b, "POLYMER G-FACTOR ANALYSIS\n%s\n", sep)
	if R.Source != "" {
		fmt.Fprintf(&b, "Input:                    %s\n", R.Source)
	}
	fmt.Fprintf(&b, "Simulation timesteps:     %d\n", int(R.Series.LastStep()))
	fmt.Fprintf(&b, "Total data points:        %d\n", R.Series.Len())
	fmt.Fprintf(&b, "Equilibrated region:      last %d points (%s)\n", R.Window.Len(), policyName(R.Window))
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 50))
	fmt.Fprintf(&b, "Mean Rg:                  %.6f +/- %.6f\n", s.Mean, s.Std)
	fmt.Fprintf(&b, "Min Rg:                   %.6f\n", s.Min)
	fmt.Fprintf(&b, "Max Rg:                   %.6f\n", s.Max)
	fmt.Fprintf(&b, "%.0f%% CI:                   [%.6f, %.6f]\n", s.Level*100, s.CILow, s.CIHigh)
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 50))
	fmt.Fprintf(&b, "Theoretical linear Rg:    %.6f\n", g.LinearRg)
	fmt.Fprintf(&b, "Computed g-factor:        %.6f\n", g.G)
	fmt.Fprintf(&b, "Expected g-factor:        %.6f\n", g.ExpectedG)
	fmt.Fprintf(&b, "Difference:               %.6f\n", g.Diff)
	fmt.Fprintf(&b, "Assessment:               %s\n", g.Assessment)
	_, err := w.Write(b.Bytes())
	return err
}

//SaveText writes the text summary to the named file. The file is only
//created once the summary has been fully formatted in memory.
func (R *Report) SaveText(filename string) error {
	var b bytes.Buffer
	if err := R.WriteText(&b); err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(b.Bytes())
	return err
}

func policyName(w *gyration.Window) string {
	if w.Tail() {
		return gyration.HalfTail.String()
	}
	return gyration.FullSeries.String()
}

//errDecorate asserts that err fulfills gyration.Error and decorates it with
//the caller's name. The same as in the gyration package, repeated here to
//keep the helper unexported.
func errDecorate(err error, caller string) error {
	err2 := err.(gyration.Error)
	err2.Decorate(caller)
	return err2
}
