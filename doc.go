/*Package gyration post-processes radius-of-gyration time series produced by
molecular-dynamics simulations (e.g. LAMMPS "compute gyration" output) and
derives the g-factor of a branched or cyclic polymer against a theoretical
linear-chain reference.


	**Capabilities**

    Reads (timestep, Rg) tables in plain text, gzip or zstd compression,
	skipping comment lines.

    Selects the equilibrated region of the trajectory with a configurable
	policy (last-half tail, or the full series).

    Computes summary statistics over the selected window: mean, population
	standard deviation, extrema and the Student-t confidence interval
	(subpackage gyrostat).

    Computes the running (cumulative) average over the full series as a
	convergence diagnostic (subpackage gyrostat).

    Derives the theoretical linear-chain Rg and the g-factor from the
	measured average and an expected g-factor constant, and classifies the
	agreement (subpackage gfactor).

    Renders text reports and diagnostic figures: time series, histogram of
	the equilibrated region and running-average convergence (subpackage
	report, which uses gonum/plot).

The numerical work is delegated to the Gonum libraries. All pipeline values
(series, windows, summaries, g-factor results) are built in a single pass
over the input and never mutated afterwards, so independent analyses can run
in the same process without shared state.*/
package gyration
