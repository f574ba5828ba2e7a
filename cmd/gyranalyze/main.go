//gyranalyze runs the radius-of-gyration / g-factor analysis on a LAMMPS
//gyration output table and writes a text report plus the diagnostic
//figures.
//
//	gyranalyze [flags] [gyration.txt]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/rmera/gyration/cfg"
	"github.com/rmera/gyration/report"
)

func main() {
	conf := flag.String("conf", "", "YAML configuration file")
	policy := flag.String("policy", "", "equilibration policy: half-tail or full-series")
	expected := flag.Float64("g", 0, "expected g-factor of the topology")
	level := flag.Float64("level", 0, "confidence level, in (0,1)")
	outdir := flag.String("o", "", "output directory for report and plots")
	noplots := flag.Bool("noplots", false, "skip rendering the figures")
	flag.Parse()

	c := cfg.Default()
	if *conf != "" {
		var err error
		if c, err = cfg.Read(*conf); err != nil {
			log.Fatal(err)
		}
	}
	//flags given on the command line win over the configuration file
	if *policy != "" {
		c.Policy = *policy
	}
	if *expected != 0 {
		c.ExpectedG = *expected
	}
	if *level != 0 {
		c.Level = *level
	}
	if *outdir != "" {
		c.OutDir = *outdir
	}
	if *noplots {
		c.Plots = false
	}
	if flag.NArg() > 0 {
		c.Input = flag.Arg(0)
	}

	opts, err := c.Options()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Reading %s", c.Input)
	rep, err := report.Analyze(c.Input, opts)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(c.OutDir, 0755); err != nil {
		log.Fatal(err)
	}
	rep.WriteText(os.Stdout)
	txt := filepath.Join(c.OutDir, c.ReportFile)
	if err := rep.SaveText(txt); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Results saved to:", txt)
	if c.Plots {
		if err := rep.SavePlots(c.OutDir); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Plots saved to:", c.OutDir)
	}
}
