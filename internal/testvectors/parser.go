// Package testvectors loads known-answer test vectors from JSON fixture
// files. It is adapted from the JSON-parsing conventions of this
// module's teacher (parseBigInt/JSONParser in pkg/eddsaaffine), repointed
// from attack-signature ingestion to golden-vector loading. The only
// vector file is testdata/field_arithmetic.json, used by the field tests.
package testvectors

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Dir returns the absolute path to this module's testdata directory,
// regardless of the caller's working directory.
func Dir() string {
	_, f, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(f), "..", "..", "testdata")
}

// Case is one row of a JSON vector file: a flat map from field name to a
// big-integer literal (decimal, or hex prefixed with 0x).
type Case map[string]*big.Int

// Load reads a JSON array of flat string-keyed objects from
// filepath.Join(Dir(), name) and parses every value as a big integer.
func Load(name string) ([]Case, error) {
	path := filepath.Join(Dir(), name)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testvectors: failed to read %s: %w", path, err)
	}

	var rows []map[string]string
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("testvectors: failed to parse %s: %w", path, err)
	}

	cases := make([]Case, 0, len(rows))
	for _, row := range rows {
		c := make(Case, len(row))
		for k, v := range row {
			n, err := parseBigInt(v)
			if err != nil {
				return nil, fmt.Errorf("testvectors: %s.%s: %w", name, k, err)
			}
			c[k] = n
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// parseBigInt accepts a decimal literal, or a hex literal prefixed with
// 0x/0X.
func parseBigInt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	z := new(big.Int)

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		if _, ok := z.SetString(s[2:], 16); ok {
			return z, nil
		}
		return nil, fmt.Errorf("invalid hex literal: %s", s)
	}
	if _, ok := z.SetString(s, 10); ok {
		return z, nil
	}
	return nil, fmt.Errorf("invalid decimal literal: %s", s)
}
