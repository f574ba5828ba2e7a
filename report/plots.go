package report

import (
	"image/color"
	"math"
	"path/filepath"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Bins for the histogram of the equilibrated region. The published analysis
//used 30.
const histBins = 30

//Default file names written by SavePlots.
const (
	TimeSeriesFile  = "rg_timeseries.png"
	HistogramFile   = "rg_histogram.png"
	ConvergenceFile = "rg_convergence.png"
)

var (
	seriesColor = color.RGBA{B: 255, A: 255}
	meanColor   = color.RGBA{R: 255, A: 255}
	markColor   = color.RGBA{G: 180, A: 255}
)

//TimeSeriesPlot draws Rg against the timestep for the full series, with a
//dashed horizontal line at the window mean and, when the window discards a
//head of the series, a dashed vertical line at the equilibration start. The
//plot is saved as a PNG to the named file.
func (R *Report) TimeSeriesPlot(filename string) error {
	p := plot.New()
	p.Title.Text = "Radius of Gyration vs Time"
	p.X.Label.Text = "Timestep"
	p.Y.Label.Text = "Rg (A)"
	p.Add(plotter.NewGrid())

	data, err := plotter.NewLine(xys(R.Series.Steps(), R.Series.Values()))
	if err != nil {
		return err
	}
	data.LineStyle.Color = seriesColor
	p.Add(data)
	p.Legend.Add("Rg", data)

	mean, err := hLine(R.Summary.Mean, R.Series.Steps())
	if err != nil {
		return err
	}
	p.Add(mean)
	p.Legend.Add("window mean", mean)

	if R.Window.Tail() {
		mark, err := vLine(R.Window.StartStep(), R.Summary.Min, R.Summary.Max, R.Series.Values())
		if err != nil {
			return err
		}
		p.Add(mark)
		p.Legend.Add("equilibration start", mark)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

//HistogramPlot draws the distribution of the Rg values in the selected
//window, normalized to unit area, with a dashed vertical line at the mean.
func (R *Report) HistogramPlot(filename string) error {
	p := plot.New()
	p.Title.Text = "Rg Distribution (equilibrated region)"
	p.X.Label.Text = "Rg (A)"
	p.Y.Label.Text = "Probability density"

	h, err := plotter.NewHist(plotter.Values(R.Window.Values()), histBins)
	if err != nil {
		return err
	}
	h.Normalize(1)
	h.FillColor = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	p.Add(h)

	mean, err := plotter.NewLine(plotter.XYs{
		{X: R.Summary.Mean, Y: 0},
		{X: R.Summary.Mean, Y: peakDensity(R.Window.Values())},
	})
	if err != nil {
		return err
	}
	styleMean(mean)
	p.Add(mean)
	p.Legend.Add("mean", mean)
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

//ConvergencePlot draws the running average of Rg against the timestep,
//with a dashed horizontal line at the final mean. A running average that
//flattens onto the final mean indicates a converged estimate.
func (R *Report) ConvergencePlot(filename string) error {
	p := plot.New()
	p.Title.Text = "Convergence Check"
	p.X.Label.Text = "Timestep"
	p.Y.Label.Text = "Running average Rg (A)"
	p.Add(plotter.NewGrid())

	data, err := plotter.NewLine(xys(R.Series.Steps(), R.Running))
	if err != nil {
		return err
	}
	data.LineStyle.Color = markColor
	data.LineStyle.Width = vg.Points(2)
	p.Add(data)
	p.Legend.Add("running average", data)

	mean, err := hLine(R.Running[len(R.Running)-1], R.Series.Steps())
	if err != nil {
		return err
	}
	p.Add(mean)
	p.Legend.Add("final mean", mean)
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

//SavePlots writes the three diagnostic figures to dir under their default
//file names.
func (R *Report) SavePlots(dir string) error {
	if err := R.TimeSeriesPlot(filepath.Join(dir, TimeSeriesFile)); err != nil {
		return err
	}
	if err := R.HistogramPlot(filepath.Join(dir, HistogramFile)); err != nil {
		return err
	}
	return R.ConvergencePlot(filepath.Join(dir, ConvergenceFile))
}

//peakDensity estimates the highest bin density of the normalized histogram
//of vals, so the mean marker spans the full height of the drawn bars.
func peakDensity(vals []float64) float64 {
	lo := floats.Min(vals)
	hi := floats.Max(vals)
	if hi <= lo {
		return 1
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	dividers := make([]float64, histBins+1)
	floats.Span(dividers, lo, hi)
	//stat.Histogram wants every value strictly below the last divider
	dividers[histBins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, sorted, nil)
	width := (hi - lo) / histBins
	return floats.Max(counts) / (float64(len(vals)) * width)
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(y))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

//hLine returns a dashed horizontal marker at y spanning the x range of
//steps.
func hLine(y float64, steps []float64) (*plotter.Line, error) {
	l, err := plotter.NewLine(plotter.XYs{
		{X: steps[0], Y: y},
		{X: steps[len(steps)-1], Y: y},
	})
	if err != nil {
		return nil, err
	}
	styleMean(l)
	return l, nil
}

//vLine returns a dashed vertical marker at x spanning the y range of vals
//(at least [lo, hi]).
func vLine(x, lo, hi float64, vals []float64) (*plotter.Line, error) {
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	l, err := plotter.NewLine(plotter.XYs{
		{X: x, Y: lo},
		{X: x, Y: hi},
	})
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = markColor
	l.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	return l, nil
}

func styleMean(l *plotter.Line) {
	l.LineStyle.Color = meanColor
	l.LineStyle.Width = vg.Points(1.5)
	l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
}
