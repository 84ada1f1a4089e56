// Command offsetgen generates test vectors for the plp_offset kernels and
// checks device output against them.
//
// Usage:
//
//	offsetgen [flags]
//
// Without -config it runs the built-in sweep over all offset variants.
//
// Examples:
//
//	offsetgen
//	offsetgen -config sweep.yaml -out vectors.yaml
//	offsetgen -source extremes -offset-kind dc -out vectors.yaml
//	offsetgen -config sweep.yaml -check device.yaml
//	offsetgen -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-dspref/harness"
	"github.com/cwbudde/algo-dspref/harness/offset"
	"github.com/cwbudde/algo-dspref/harness/stimuli"
	"github.com/cwbudde/algo-dspref/harness/sweep"
	"github.com/cwbudde/algo-dspref/measure/parity"
)

var errCheckFailed = errors.New("device output does not match")

type options struct {
	config     string
	out        string
	check      string
	ulp        int
	source     string
	offsetKind string
	amplitude  float64
	list       bool
	info       bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("offsetgen: ")

	var opts options
	fs := flag.NewFlagSet("offsetgen", flag.ExitOnError)
	fs.StringVar(&opts.config, "config", "", "sweep YAML file (default: built-in offset sweep)")
	fs.StringVar(&opts.out, "out", "", "write vectors to this YAML file")
	fs.StringVar(&opts.check, "check", "", "compare device output in this YAML file against the oracle")
	fs.IntVar(&opts.ulp, "ulp", -1, "float32 tolerance in ULPs for -check (default: from config)")
	fs.StringVar(&opts.source, "source", "noise", "pSrc stimulus: noise, ramp, dc, impulse, extremes")
	fs.StringVar(&opts.offsetKind, "offset-kind", "noise", "offset stimulus: noise, ramp, dc, impulse, extremes")
	fs.Float64Var(&opts.amplitude, "amplitude", 1, "stimulus level as a fraction of full scale")
	fs.BoolVar(&opts.list, "list", false, "list registered oracles")
	fs.BoolVar(&opts.info, "info", false, "print CPU features used for block math")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: offsetgen [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Generates reference vectors for the offset kernels.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	if err := run(opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(opts options, stdout io.Writer) error {
	if opts.list {
		for _, name := range harness.Global.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	if opts.info {
		f := cpu.DetectFeatures()
		fmt.Fprintf(stdout, "arch=%s sse2=%t avx2=%t neon=%t\n", f.Architecture, f.HasSSE2, f.HasAVX2, f.HasNEON)
		return nil
	}

	cfg := sweep.Default()
	if opts.config != "" {
		var err error
		if cfg, err = sweep.Load(opts.config); err != nil {
			return err
		}
	}

	oracle, err := resolveOracle(cfg, opts)
	if err != nil {
		return err
	}

	vecs, err := sweep.Run(cfg, oracle)
	if err != nil {
		return err
	}
	log.Printf("%s: %d cases", cfg.Function, len(vecs))

	if opts.out != "" {
		if err := writeVectors(opts.out, cfg.Function, vecs); err != nil {
			return err
		}
		log.Printf("wrote %s", opts.out)
	}

	if opts.check == "" {
		return printSummary(stdout, vecs)
	}

	got, err := sweep.LoadResults(opts.check)
	if err != nil {
		return err
	}

	ulp := cfg.ULP
	if opts.ulp >= 0 {
		ulp = uint64(opts.ulp)
	}

	results, err := sweep.Check(vecs, got, parity.WithULP(ulp))
	if err != nil {
		return err
	}

	return printCheck(stdout, results)
}

func resolveOracle(cfg sweep.Config, opts options) (harness.Oracle, error) {
	if cfg.Function != offset.Name {
		return harness.Global.Lookup(cfg.Function)
	}

	src, err := stimuli.ParseKind(opts.source)
	if err != nil {
		return nil, err
	}
	off, err := stimuli.ParseKind(opts.offsetKind)
	if err != nil {
		return nil, err
	}

	return offset.New(
		offset.WithSourceKind(src),
		offset.WithOffsetKind(off),
		offset.WithAmplitude(opts.amplitude),
	), nil
}

func writeVectors(path, function string, vecs []sweep.Vectors) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := sweep.WriteYAML(f, function, vecs); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func printSummary(w io.Writer, vecs []sweep.Vectors) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Case\tType\tLen\tFirst\tLast\tPeak\n")
	fmt.Fprintf(tw, "----\t----\t---\t-----\t----\t----\n")

	for _, v := range vecs {
		vals := v.Expected.Float64s()
		first, last, peak := "-", "-", "-"
		if len(vals) > 0 {
			first = fmt.Sprint(vals[0])
			last = fmt.Sprint(vals[len(vals)-1])
			peak = fmt.Sprint(vecmath.MaxAbs(vals))
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n", v.Case.Name(), v.Expected.Type(), len(vals), first, last, peak)
	}

	return tw.Flush()
}

func printCheck(w io.Writer, results []sweep.CheckResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Case\tStatus\tMismatches\tMax |diff|\tMax ULP\n")
	fmt.Fprintf(tw, "----\t------\t----------\t----------\t-------\n")

	failed := 0
	for _, r := range results {
		status := "PASS"
		if !r.Report.Pass() {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%g\t%d\n", r.Case, status, r.Report.Mismatches, r.Report.MaxAbsDiff, r.Report.MaxULP)
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d cases", errCheckFailed, failed, len(results))
	}

	return nil
}
