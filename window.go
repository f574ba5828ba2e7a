package gyration

import "fmt"

//Policy selects which part of a series is taken as the equilibrated region
//for the statistical estimates.
type Policy int

const (
	//HalfTail discards the first half of the series and keeps indexes
	//[N/2, N), with integer division. This is the usual equilibration
	//heuristic for trajectories that start from a non-equilibrium
	//configuration. It needs at least 2 samples.
	HalfTail Policy = iota
	//FullSeries keeps the entire series, for runs already equilibrated
	//before production output started.
	FullSeries
)

//String returns the text form of the policy, as accepted by ParsePolicy.
func (p Policy) String() string {
	switch p {
	case HalfTail:
		return "half-tail"
	case FullSeries:
		return "full-series"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

//ParsePolicy returns the Policy named by s, or a ConfigurationError if s
//names no known policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "half-tail":
		return HalfTail, nil
	case "full-series":
		return FullSeries, nil
	}
	return 0, &ConfigurationError{message: fmt.Sprintf("%s: %q", BadPolicy, s), deco: []string{"ParsePolicy"}}
}

//Window is a contiguous sub-range of a Series, from start to the end of the
//series. Its accessors return views into the parent series: nothing is
//copied and nothing may be modified through them.
type Window struct {
	parent *Series
	start  int
}

//Window returns the sub-range of the series selected by the given policy.
//It returns an InsufficientDataError when the series is empty, or when the
//HalfTail policy is requested on a series with fewer than 2 samples (which
//would silently degenerate into the full, non-equilibrated series). An
//unknown policy yields a ConfigurationError.
func (S *Series) Window(p Policy) (*Window, error) {
	if S == nil {
		panic(ErrNilSeries)
	}
	n := S.Len()
	switch p {
	case HalfTail:
		if n < 2 {
			return nil, NewInsufficientData("half-tail equilibration window", n, "Series.Window")
		}
		return &Window{parent: S, start: n / 2}, nil
	case FullSeries:
		if n < 1 {
			return nil, NewInsufficientData("full series window", n, "Series.Window")
		}
		return &Window{parent: S, start: 0}, nil
	}
	return nil, &ConfigurationError{message: fmt.Sprintf("%s: %v", BadPolicy, p), deco: []string{"Series.Window"}}
}

//Start returns the index in the parent series of the first sample in the
//window.
func (W *Window) Start() int {
	if W == nil {
		panic(ErrNilWindow)
	}
	return W.start
}

//Len returns the number of samples in the window. It is always at least 1.
func (W *Window) Len() int {
	if W == nil {
		panic(ErrNilWindow)
	}
	return W.parent.Len() - W.start
}

//Values returns a view of the Rg values in the window.
func (W *Window) Values() []float64 {
	if W == nil {
		panic(ErrNilWindow)
	}
	return W.parent.rg[W.start:]
}

//Steps returns a view of the timesteps in the window.
func (W *Window) Steps() []float64 {
	if W == nil {
		panic(ErrNilWindow)
	}
	return W.parent.steps[W.start:]
}

//StartStep returns the timestep at which the window begins. Plots use it to
//mark the equilibration start.
func (W *Window) StartStep() float64 {
	return W.parent.steps[W.start]
}

//Tail returns true if the window discards some initial part of its parent
//series.
func (W *Window) Tail() bool {
	return W.start > 0
}
