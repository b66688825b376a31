// go run ./cmd/msmbench [--min-scale 4] [--max-scale 12] [-n iters] [-w workers] [--mode const|rand] [-o results.txt]
//
// Times the three ways a polynomial of SRS width can be committed to: a naive
// parallel MSM over the G1 powers, kzg Commit (Pippenger over the powers) and
// kzg CommitEvaluations (Pippenger over the Lagrange powers). Every result is
// checked against the others, and in const mode against the value derived
// from the known setup secret.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/consensys/gnark/logger"
	flag "github.com/spf13/pflag"

	"github.com/Han-16/kzgist/internal/curve"
	"github.com/Han-16/kzgist/internal/fft"
	"github.com/Han-16/kzgist/internal/field"
	"github.com/Han-16/kzgist/internal/kzg"
	"github.com/Han-16/kzgist/internal/msm"
	"github.com/Han-16/kzgist/internal/randutil"
	"github.com/Han-16/kzgist/internal/setup"
)

const benchSecret = "8927347823478352432985"

type method struct {
	name string
	run  func() (curve.G1, error)
}

func main() {
	fl := flag.NewFlagSet("msmbench", flag.ContinueOnError)
	minScale := fl.Int("min-scale", 4, "smallest log2 srs width")
	maxScale := fl.Int("max-scale", 12, "largest log2 srs width")
	iters := fl.IntP("iters", "n", 5, "timed iterations per method")
	workers := fl.IntP("workers", "w", 0, "worker goroutines (0 = GOMAXPROCS)")
	mode := fl.String("mode", "const", `"const" (every coefficient equal) or "rand"`)
	output := fl.StringP("output", "o", "", "append results to this file")
	if err := fl.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		panic(err)
	}
	if *minScale < 1 || *maxScale > field.TwoAdicity || *minScale > *maxScale {
		panic(fmt.Sprintf("scale range [%d, %d] must lie in [1, %d]", *minScale, *maxScale, field.TwoAdicity))
	}
	if *mode != "const" && *mode != "rand" {
		panic(`mode must be "const" or "rand"`)
	}
	if *iters <= 0 {
		*iters = 1
	}
	log := logger.Logger()

	var out *os.File
	if *output != "" {
		var err error
		out, err = os.OpenFile(*output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		must(err)
		defer out.Close()
		if fi, err := out.Stat(); err == nil && fi.Size() == 0 {
			fmt.Fprintf(out, "# Commit Benchmark Results (mode=%s, workers=%d)\n", *mode, *workers)
			fmt.Fprintln(out, "# scale | n | iters | method | Best | Avg")
		}
	}

	for scale := *minScale; scale <= *maxScale; scale++ {
		if err := benchScale(uint8(scale), *iters, *workers, *mode, out); err != nil {
			log.Fatal().Err(err).Int("scale", scale).Msg("commit benchmark failed")
		}
	}
}

func benchScale(scale uint8, iters, workers int, mode string, out *os.File) error {
	fs, err := fft.New(scale, fft.WithWorkers(workers))
	if err != nil {
		return err
	}
	secret, err := setup.SecretFromString(benchSecret)
	if err != nil {
		return err
	}
	tau := secret // Generate zeroes its argument
	g1, g2, err := setup.Generate(&secret, fs.MaxWidth, setup.WithWorkers(workers))
	if err != nil {
		return err
	}
	ks, err := kzg.NewSettings(g1, g2, fs.MaxWidth, fs)
	if err != nil {
		return err
	}
	n := int(fs.MaxWidth)

	var p kzg.Polynomial
	var expected *curve.G1
	switch mode {
	case "const":
		// p = s * (1 + X + ... + X^(n-1)), so C = s * (sum tau^i) * G1
		rs, err := randutil.RandomScalars(1)
		if err != nil {
			return err
		}
		p = kzg.NewPolynomial(n)
		for i := range p.Coeffs {
			p.Coeffs[i] = rs[0]
		}
		var sum, pow field.Element
		pow.SetOne()
		for i := 0; i < n; i++ {
			sum.Add(&sum, &pow)
			pow.Mul(&pow, &tau)
		}
		sum.Mul(&sum, &rs[0])
		g := curve.G1Generator()
		want := curve.ScalarMulG1(&g, &sum)
		expected = &want
	case "rand":
		coeffs, err := randutil.RandomScalarsPar(n, workers, false)
		if err != nil {
			return err
		}
		p = kzg.Polynomial{Coeffs: coeffs}
	}
	tau.SetZero()

	evals, err := fs.FFT(p.Coeffs, false)
	if err != nil {
		return err
	}
	powers := make([]curve.G1, n)
	for i := range powers {
		powers[i] = ks.G1Power(i)
	}

	methods := []method{
		{"naive-par", func() (curve.G1, error) { return msm.NaiveMSMPar(powers, p.Coeffs, fs.Workers) }},
		{"commit", func() (curve.G1, error) { return ks.Commit(p) }},
		{"commit-evals", func() (curve.G1, error) { return ks.CommitEvaluations(evals) }},
	}

	var reference *curve.G1
	for _, m := range methods {
		// untimed run; builds the lazy Lagrange SRS for commit-evals
		res, err := m.run()
		if err != nil {
			return errors.Wrap(err, m.name)
		}
		if expected != nil && !res.Equal(expected) {
			return errors.Newf("%s: commitment differs from the value derived from the secret", m.name)
		}
		if reference == nil {
			reference = &res
		} else if !res.Equal(reference) {
			return errors.Newf("%s: commitment differs from %s", m.name, methods[0].name)
		}

		var best, total time.Duration
		for it := 0; it < iters; it++ {
			start := time.Now()
			res, err := m.run()
			elapsed := time.Since(start)
			if err != nil {
				return errors.Wrap(err, m.name)
			}
			runtime.KeepAlive(res)
			if it == 0 || elapsed < best {
				best = elapsed
			}
			total += elapsed
		}
		avg := total / time.Duration(iters)

		fmt.Printf("scale=%2d n=%7d %-12s best=%-14s avg=%s\n", scale, n, m.name, best, avg)
		if out != nil {
			fmt.Fprintf(out, "%d | %d | %d | %s | %s | %s\n", scale, n, iters, m.name, best, avg)
		}
	}
	return nil
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
