// go run ./cmd/fftprofile <scale> [workers] [mode] [direction]
//
//	scale     : n = 2^scale G1 points
//	workers   : GOMAXPROCS and butterfly workers (default runtime.NumCPU())
//	mode      : const | rand  (default const)
//	direction : fwd | inv     (default fwd)
package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/Han-16/kzgist/internal/curve"
	"github.com/Han-16/kzgist/internal/fft"
	"github.com/Han-16/kzgist/internal/randutil"
)

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func pct(d, total time.Duration) float64 {
	if total == 0 {
		return 0
	}
	return float64(d) * 100 / float64(total)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./cmd/fftprofile <scale> [workers] [mode] [direction]")
		return
	}

	scale, err := strconv.Atoi(os.Args[1])
	must(err)
	if scale < 1 {
		panic("scale must be positive")
	}

	workers := runtime.NumCPU()
	if len(os.Args) >= 3 {
		workers, err = strconv.Atoi(os.Args[2])
		must(err)
		if workers <= 0 {
			workers = runtime.NumCPU()
		}
	}
	runtime.GOMAXPROCS(workers)

	mode := "const"
	if len(os.Args) >= 4 {
		mode = strings.ToLower(os.Args[3])
	}
	if mode != "const" && mode != "rand" {
		panic(`mode must be "const" or "rand"`)
	}

	inverse := false
	if len(os.Args) >= 5 {
		switch strings.ToLower(os.Args[4]) {
		case "fwd":
		case "inv":
			inverse = true
		default:
			panic(`direction must be "fwd" or "inv"`)
		}
	}

	fs, err := fft.New(uint8(scale), fft.WithWorkers(workers))
	must(err)
	n := int(fs.MaxWidth)

	var points []curve.G1
	switch mode {
	case "const":
		g := curve.G1Generator()
		points = make([]curve.G1, n)
		for i := range points {
			points[i] = g
		}
	case "rand":
		points, err = randutil.RandomPointsG1Par(n, workers)
		must(err)
	}

	// warm-up
	_, _, err = fs.FFTG1Profile(points, inverse)
	must(err)

	_, prof, err := fs.FFTG1Profile(points, inverse)
	must(err)

	fmt.Printf("\n== G1 FFT Profile (n=%d, scale=%d, workers=%d, stages=%d, mode=%s, inverse=%v)\n",
		prof.N, scale, prof.Workers, prof.Stages, mode, inverse)

	fmt.Printf("Affine -> Jacobian : %v (%.1f%%)\n",
		prof.TAffineToJac, pct(prof.TAffineToJac, prof.TTotal))

	fmt.Printf("Butterfly (total)  : %v (%.1f%%)\n",
		prof.TButterflyTotal, pct(prof.TButterflyTotal, prof.TTotal))

	for i, d := range prof.PerStage {
		fmt.Printf("  - Stage %2d        : %v (%.1f%% of total)\n",
			i, d, pct(d, prof.TTotal))
	}

	if inverse {
		fmt.Printf("Scale by 1/n       : %v (%.1f%%)\n",
			prof.TScale, pct(prof.TScale, prof.TTotal))
	}

	fmt.Printf("Jacobian -> Affine : %v (%.1f%%)\n",
		prof.TJacToAff, pct(prof.TJacToAff, prof.TTotal))

	fmt.Printf("Total              : %v (100.0%%)\n\n", prof.TTotal)
}
