package gyration

//Series is an ordered (timestep, Rg) sequence read from a simulation output
//table, in file order. Timesteps are assumed to increase monotonically but
//this is not enforced. Rg values are in whatever length unit the simulation
//used (normally Angstroms). A Series is never mutated after construction.
type Series struct {
	steps []float64
	rg    []float64
}

//NewSeries returns a Series from the given timesteps and Rg values. The
//slices are kept by the Series, not copied, so the caller must not modify
//them afterwards. It panics if the slices differ in length.
func NewSeries(steps, rg []float64) *Series {
	if len(steps) != len(rg) {
		panic(ErrLengthMismatch)
	}
	return &Series{steps: steps, rg: rg}
}

//Len returns the number of samples in the series.
func (S *Series) Len() int {
	if S == nil {
		panic(ErrNilSeries)
	}
	return len(S.rg)
}

//Rg returns the radius of gyration of the i-th sample.
func (S *Series) Rg(i int) float64 {
	if i < 0 || i >= len(S.rg) {
		panic(ErrIndexOutOfRange)
	}
	return S.rg[i]
}

//Step returns the timestep of the i-th sample.
func (S *Series) Step(i int) float64 {
	if i < 0 || i >= len(S.steps) {
		panic(ErrIndexOutOfRange)
	}
	return S.steps[i]
}

//Values returns a view of the Rg values. The returned slice aliases the
//series' storage and must not be modified.
func (S *Series) Values() []float64 {
	if S == nil {
		panic(ErrNilSeries)
	}
	return S.rg
}

//Steps returns a view of the timesteps. The returned slice aliases the
//series' storage and must not be modified.
func (S *Series) Steps() []float64 {
	if S == nil {
		panic(ErrNilSeries)
	}
	return S.steps
}

//LastStep returns the timestep of the last sample, i.e. the total simulated
//timesteps when the table covers a whole run.
func (S *Series) LastStep() float64 {
	if S.Len() == 0 {
		panic(ErrIndexOutOfRange)
	}
	return S.steps[len(S.steps)-1]
}
