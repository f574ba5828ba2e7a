package cfg

import (
	"testing"

	"github.com/rmera/gyration"
	"github.com/rmera/gyration/gfactor"
)

func TestDefault(Te *testing.T) {
	c := Default()
	opts, err := c.Options()
	if err != nil {
		Te.Fatal(err)
	}
	if opts.Policy != gyration.HalfTail || opts.ExpectedG != gfactor.DefaultExpectedG || opts.Level != 0.95 {
		Te.Errorf("default options: %+v", opts)
	}
}

func TestRead(Te *testing.T) {
	c, err := Read("../test/conf.yaml")
	if err != nil {
		Te.Fatal(err)
	}
	if c.Input != "test/gyration.txt" || c.Policy != "full-series" || c.ExpectedG != 0.39 {
		Te.Errorf("read config: %+v", c)
	}
	if c.Plots {
		Te.Error("fixture config turns plots off")
	}
	opts, err := c.Options()
	if err != nil {
		Te.Fatal(err)
	}
	if opts.Policy != gyration.FullSeries || opts.Level != 0.9 {
		Te.Errorf("options from fixture config: %+v", opts)
	}
}

func TestReadMissing(Te *testing.T) {
	_, err := Read("../test/no_such_conf.yaml")
	if _, ok := err.(*gyration.ConfigurationError); !ok {
		Te.Fatalf("expected a ConfigurationError, got %T: %v", err, err)
	}
}

func TestOptionsValidation(Te *testing.T) {
	bad := []*Config{
		{Policy: "first-half", ExpectedG: 0.445, Level: 0.95},
		{Policy: "half-tail", ExpectedG: 0, Level: 0.95},
		{Policy: "half-tail", ExpectedG: -1, Level: 0.95},
		{Policy: "half-tail", ExpectedG: 0.445, Level: 0},
		{Policy: "half-tail", ExpectedG: 0.445, Level: 1.5},
	}
	for i, c := range bad {
		_, err := c.Options()
		if err == nil {
			Te.Fatalf("config %d should not validate: %+v", i, c)
		}
		if _, ok := err.(*gyration.ConfigurationError); !ok {
			Te.Fatalf("config %d: expected a ConfigurationError, got %T: %v", i, err, err)
		}
	}
}
