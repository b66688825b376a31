// go run ./cmd/kzgbench [--min-scale 1] [--max-scale 15] [-t seconds] [-w workers] [--cache] [-o results.txt]
//
// For every scale it builds the fft settings and a trusted setup, then repeats
// interpolate -> commit -> evaluate -> prove -> verify until the time budget
// for that scale is spent and prints the average cost of each step.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	flag "github.com/spf13/pflag"

	"github.com/Han-16/kzgist/internal/cache"
	"github.com/Han-16/kzgist/internal/config"
	"github.com/Han-16/kzgist/internal/curve"
	"github.com/Han-16/kzgist/internal/fft"
	"github.com/Han-16/kzgist/internal/field"
	"github.com/Han-16/kzgist/internal/kzg"
	"github.com/Han-16/kzgist/internal/randutil"
	"github.com/Han-16/kzgist/internal/setup"
)

// runTime holds average microseconds per operation.
type runTime struct {
	iters        int
	interpolate  int64
	commit       int64
	eval         int64
	computeProof int64
	checkProof   int64
}

func main() {
	cfg, err := config.Load(os.Args[1:], "KZG")
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	must(err)

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	must(err)
	logger.Set(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).With().Timestamp().Logger())
	log := logger.Logger()

	// one data set, sliced per scale
	genData := func(n int) ([]field.Element, error) {
		return randutil.RandomScalarsPar(n, cfg.Workers, cfg.MaskTopByte)
	}
	var data []field.Element
	if cfg.UseCache {
		data, _, err = cache.LoadOrCreateScalars(cfg.CacheDir, cfg.MaxScale, 1<<cfg.MaxScale, genData)
	} else {
		data, err = genData(1 << cfg.MaxScale)
	}
	must(err)

	var out *os.File
	if cfg.Output != "" {
		out, err = os.OpenFile(cfg.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		must(err)
		defer out.Close()
		if fi, err := out.Stat(); err == nil && fi.Size() == 0 {
			fmt.Fprintf(out, "# KZG Benchmark Results (seconds=%d, workers=%d)\n", cfg.MaxSeconds, cfg.Workers)
			fmt.Fprintln(out, "# scale | n | iters | interpolate | commit | eval | compute_proof | check_proof (usec/op)")
		}
	}

	fmt.Printf("*** Benchmarking kzg, %d second%s per test.\n", cfg.MaxSeconds, plural(cfg.MaxSeconds))
	for scale := cfg.MinScale; scale <= cfg.MaxScale; scale++ {
		rt, err := runBench(cfg, data, uint8(scale))
		if err != nil {
			log.Fatal().Err(err).Int("scale", scale).Msg("benchmark failed")
		}
		fmt.Printf("data_len = %5d: interpolate = %6d, commit = %6d, eval = %6d, compute_proof = %6d, check_proof = %6d  (usec/op)\n",
			1<<scale, rt.interpolate, rt.commit, rt.eval, rt.computeProof, rt.checkProof)
		if out != nil {
			fmt.Fprintf(out, "%d | %d | %d | %d | %d | %d | %d | %d\n",
				scale, 1<<scale, rt.iters, rt.interpolate, rt.commit, rt.eval, rt.computeProof, rt.checkProof)
		}
	}
}

func initTrustedSetup(cfg *config.Bench, scale uint8) (*kzg.Settings, error) {
	fs, err := fft.New(scale, fft.WithWorkers(cfg.Workers))
	if err != nil {
		return nil, err
	}
	width := int(fs.MaxWidth)

	gen := func(n int) ([]curve.G1, []curve.G2, error) {
		var secret field.Element
		var err error
		if cfg.Secret != "" {
			secret, err = setup.SecretFromString(cfg.Secret)
		} else {
			secret, err = setup.InsecureRandomSecret()
		}
		if err != nil {
			return nil, nil, err
		}
		bar := progressbar.NewOptions(2*n,
			progressbar.OptionSetDescription(fmt.Sprintf("setup 2^%d", scale)),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
		return setup.Generate(&secret, uint64(n),
			setup.WithWorkers(cfg.Workers),
			setup.WithProgress(func(delta int) { _ = bar.Add(delta) }),
		)
	}

	var g1 []curve.G1
	var g2 []curve.G2
	if cfg.UseCache {
		g1, g2, _, err = cache.LoadOrCreateSRS(cfg.CacheDir, int(scale), width, gen)
	} else {
		g1, g2, err = gen(width)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "trusted setup for scale %d", scale)
	}
	return kzg.NewSettings(g1, g2, fs.MaxWidth, fs)
}

func runBench(cfg *config.Bench, data []field.Element, scale uint8) (runTime, error) {
	var rt runTime
	ks, err := initTrustedSetup(cfg, scale)
	if err != nil {
		return rt, err
	}
	fs := ks.FFTSettings()
	x := field.FromUint64(cfg.EvalX)
	evals := data[:fs.MaxWidth]

	var sum [5]time.Duration
	var total time.Duration
	budget := time.Duration(cfg.MaxSeconds) * time.Second
	for total < budget {
		rt.iters++
		start := time.Now()

		t0 := time.Now()
		p, err := kzg.Interpolate(fs, evals)
		if err != nil {
			return rt, err
		}
		sum[0] += time.Since(t0)

		t0 = time.Now()
		commitment, err := ks.Commit(p)
		if err != nil {
			return rt, err
		}
		sum[1] += time.Since(t0)

		t0 = time.Now()
		y := p.Eval(&x)
		sum[2] += time.Since(t0)

		t0 = time.Now()
		proof, err := ks.ComputeProofSingle(p, &x)
		if err != nil {
			return rt, err
		}
		sum[3] += time.Since(t0)

		t0 = time.Now()
		ok, err := ks.Verify(&commitment, &proof, &x, &y)
		if err != nil {
			return rt, err
		}
		if !ok {
			return rt, errors.Newf("proof did not verify at scale %d", scale)
		}
		sum[4] += time.Since(t0)

		total += time.Since(start)
	}

	avg := func(d time.Duration) int64 { return d.Microseconds() / int64(rt.iters) }
	rt.interpolate = avg(sum[0])
	rt.commit = avg(sum[1])
	rt.eval = avg(sum[2])
	rt.computeProof = avg(sum[3])
	rt.checkProof = avg(sum[4])
	return rt, nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
