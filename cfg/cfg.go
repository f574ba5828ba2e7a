//Package cfg reads the YAML configuration for a g-factor analysis run and
//turns it into pipeline options.
package cfg

import (
	"fmt"
	"os"

	"github.com/rmera/gyration"
	"github.com/rmera/gyration/gfactor"
	"github.com/rmera/gyration/gyrostat"
	"github.com/rmera/gyration/report"
	"gopkg.in/yaml.v3"
)

//Config is the on-disk configuration shape. Zero fields take the defaults
//of the published tetracyclic analysis (see Default).
type Config struct {
	Input      string  `yaml:"input"`            //path to the (timestep, Rg) table
	Policy     string  `yaml:"policy"`           //"half-tail" or "full-series"
	ExpectedG  float64 `yaml:"expected_g"`       //expected g-factor of the topology
	Level      float64 `yaml:"confidence_level"` //e.g. 0.95
	OutDir     string  `yaml:"output_dir"`       //where reports and plots go
	ReportFile string  `yaml:"report_file"`      //text report name, within output_dir
	Plots      bool    `yaml:"plots"`            //whether to render the figures
}

//Default returns the configuration of the published analysis: half-tail
//equilibration, expected g 0.445, 95% confidence, plots on, everything
//written to the working directory.
func Default() *Config {
	return &Config{
		Input:      "gyration.txt",
		Policy:     gyration.HalfTail.String(),
		ExpectedG:  gfactor.DefaultExpectedG,
		Level:      gyrostat.DefaultLevel,
		OutDir:     ".",
		ReportFile: "g_factor_results.txt",
		Plots:      true,
	}
}

//Read loads a Config from the named YAML file, filling unset fields with
//the defaults. A file that cannot be opened is a NotFoundError; YAML that
//does not decode is a ConfigurationError. The returned Config is not yet
//validated; that happens in Options.
func Read(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, gyration.NewConfiguration(fmt.Sprintf("can't read configuration %s: %v", path, err), "cfg.Read")
	}
	c := Default()
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, gyration.NewConfiguration(fmt.Sprintf("bad YAML in %s: %v", path, err), "cfg.Read")
	}
	return c, nil
}

//Options validates the configuration and returns the corresponding pipeline
//options. Invalid values yield a ConfigurationError.
func (c *Config) Options() (*report.Options, error) {
	p, err := gyration.ParsePolicy(c.Policy)
	if err != nil {
		return nil, err
	}
	if c.ExpectedG <= 0 {
		return nil, gyration.NewConfiguration(gyration.BadConstant+": expected_g must be positive", "cfg.Options")
	}
	if c.Level <= 0 || c.Level >= 1 {
		return nil, gyration.NewConfiguration("confidence_level must be in (0,1)", "cfg.Options")
	}
	return &report.Options{Policy: p, ExpectedG: c.ExpectedG, Level: c.Level}, nil
}
