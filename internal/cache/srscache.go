// Package cache persists benchmark inputs and the public SRS as JSON so
// repeated runs skip regeneration. The setup secret is never written.
package cache

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/consensys/gnark/logger"

	"github.com/Han-16/kzgist/internal/curve"
	"github.com/Han-16/kzgist/internal/field"
)

type scalarFile struct {
	Exp     int      `json:"exp"`
	N       int      `json:"n"`
	Scalars []string `json:"scalars_hex"` // hex (no 0x prefix)
}

type srsFile struct {
	Scale int      `json:"scale"`
	N     int      `json:"n"`
	G1    []string `json:"g1_b64"` // base64(compressed G1)
	G2    []string `json:"g2_b64"` // base64(compressed G2)
}

func ScalarPath(dir string, exp int) (string, error) {
	dir = filepath.Join(dir, "scalars")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "make scalars dir")
	}
	return filepath.Join(dir, fmt.Sprintf("exp_%d_scalar.json", exp)), nil
}

func SRSPath(dir string, scale int) (string, error) {
	dir = filepath.Join(dir, "srs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "make srs dir")
	}
	return filepath.Join(dir, fmt.Sprintf("scale_%d_srs.json", scale)), nil
}

func SaveScalars(path string, exp int, scalars []field.Element) error {
	sf := scalarFile{
		Exp:     exp,
		N:       len(scalars),
		Scalars: make([]string, len(scalars)),
	}
	for i := range scalars {
		sf.Scalars[i] = scalars[i].BigInt(new(big.Int)).Text(16)
	}
	data, err := json.MarshalIndent(&sf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func LoadScalars(path string) ([]field.Element, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	var sf scalarFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, 0, err
	}
	if sf.N != len(sf.Scalars) {
		return nil, sf.Exp, errors.Newf("scalar cache malformed: n=%d, got %d scalars", sf.N, len(sf.Scalars))
	}
	out := make([]field.Element, sf.N)
	for i := range out {
		bi, ok := new(big.Int).SetString(sf.Scalars[i], 16)
		if !ok {
			return nil, sf.Exp, errors.Newf("invalid scalar hex at %d", i)
		}
		out[i].SetBigInt(bi)
	}
	return out, sf.Exp, nil
}

func SaveSRS(path string, scale int, g1 []curve.G1, g2 []curve.G2) error {
	if len(g1) != len(g2) {
		return errors.Newf("srs length mismatch: %d g1, %d g2", len(g1), len(g2))
	}
	sf := srsFile{
		Scale: scale,
		N:     len(g1),
		G1:    make([]string, len(g1)),
		G2:    make([]string, len(g2)),
	}
	for i := range g1 {
		b1 := curve.EncodeG1(&g1[i])
		sf.G1[i] = base64.StdEncoding.EncodeToString(b1[:])
		b2 := curve.EncodeG2(&g2[i])
		sf.G2[i] = base64.StdEncoding.EncodeToString(b2[:])
	}
	data, err := json.MarshalIndent(&sf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadSRS decodes every point with full curve and subgroup validation.
func LoadSRS(path string) ([]curve.G1, []curve.G2, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, 0, err
	}
	var sf srsFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, nil, 0, err
	}
	if sf.N != len(sf.G1) || sf.N != len(sf.G2) {
		return nil, nil, sf.Scale, errors.Newf("srs cache malformed: n=%d, got %d g1 and %d g2", sf.N, len(sf.G1), len(sf.G2))
	}
	g1 := make([]curve.G1, sf.N)
	g2 := make([]curve.G2, sf.N)
	for i := 0; i < sf.N; i++ {
		raw, err := base64.StdEncoding.DecodeString(sf.G1[i])
		if err != nil {
			return nil, nil, sf.Scale, errors.Wrapf(err, "invalid g1 b64 at %d", i)
		}
		if g1[i], err = curve.DecodeG1(raw); err != nil {
			return nil, nil, sf.Scale, errors.Wrapf(err, "g1 point %d", i)
		}
		raw, err = base64.StdEncoding.DecodeString(sf.G2[i])
		if err != nil {
			return nil, nil, sf.Scale, errors.Wrapf(err, "invalid g2 b64 at %d", i)
		}
		if g2[i], err = curve.DecodeG2(raw); err != nil {
			return nil, nil, sf.Scale, errors.Wrapf(err, "g2 point %d", i)
		}
	}
	return g1, g2, sf.Scale, nil
}

func LoadOrCreateScalars(
	dir string,
	exp, n int,
	genScalars func(int) ([]field.Element, error),
) ([]field.Element, bool, error) {

	spath, err := ScalarPath(dir, exp)
	if err != nil {
		return nil, false, err
	}
	log := logger.Logger().With().Str("path", spath).Int("exp", exp).Logger()

	if fi, err := os.Stat(spath); err == nil && !fi.IsDir() {
		sc, fileExp, err := LoadScalars(spath)
		if err == nil && len(sc) == n && fileExp == exp {
			log.Debug().Msg("loaded scalars from cache")
			return sc, true, nil
		}
		log.Warn().Err(err).Msg("scalar cache invalid; regenerating")
	}

	scalars, err := genScalars(n)
	if err != nil {
		return nil, false, err
	}
	if err := SaveScalars(spath, exp, scalars); err != nil {
		return nil, false, err
	}
	log.Debug().Msg("saved scalars")
	return scalars, false, nil
}

func LoadOrCreateSRS(
	dir string,
	scale, n int,
	genSRS func(int) ([]curve.G1, []curve.G2, error),
) ([]curve.G1, []curve.G2, bool, error) {

	path, err := SRSPath(dir, scale)
	if err != nil {
		return nil, nil, false, err
	}
	log := logger.Logger().With().Str("path", path).Int("scale", scale).Logger()

	if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
		g1, g2, fileScale, err := LoadSRS(path)
		if err == nil && len(g1) == n && fileScale == scale {
			log.Debug().Msg("loaded srs from cache")
			return g1, g2, true, nil
		}
		log.Warn().Err(err).Msg("srs cache invalid; regenerating")
	}

	g1, g2, err := genSRS(n)
	if err != nil {
		return nil, nil, false, err
	}
	if err := SaveSRS(path, scale, g1, g2); err != nil {
		return nil, nil, false, err
	}
	log.Debug().Msg("saved srs")
	return g1, g2, false, nil
}
