package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/irfansharif/conics/internal/conic"
)

// ParseConfig parses typed coefficients of the form "a", "a,b" or "a,b,c".
// Missing trailing coefficients are zero.
func ParseConfig(input string) (conic.Config, error) {
	fields := strings.Split(input, ",")
	if len(fields) > 3 {
		return conic.Config{}, fmt.Errorf("%w: expected at most 3 coefficients in %q", conic.ErrInvalidConfig, input)
	}

	var coeffs [3]float64
	for i, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return conic.Config{}, fmt.Errorf("%w: coefficient %q: %v", conic.ErrInvalidConfig, field, err)
		}
		coeffs[i] = v
	}

	cfg := conic.Config{A: coeffs[0], B: coeffs[1], C: coeffs[2]}
	if err := cfg.Validate(); err != nil {
		return conic.Config{}, err
	}
	return cfg, nil
}
