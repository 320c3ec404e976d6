package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var unitMap = map[string]float64{
	"T":   1e12,  // tera
	"G":   1e9,   // giga
	"meg": 1e6,   // mega
	"K":   1e3,   // kilo
	"k":   1e3,   // kilo
	"m":   1e-3,  // milli
	"u":   1e-6,  // micro
	"n":   1e-9,  // nano
	"p":   1e-12, // pico
	"f":   1e-15, // femto
}

var valueRe = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)(meg|[TGKkmunpf])?[A-Za-z]*$`)

// ParseValue reads a number with an optional SPICE-style SI suffix,
// e.g. "0.65p", "100meg", "4.7uF". Letters after the suffix are
// treated as a unit and ignored, per netlist convention.
func ParseValue(val string) (float64, error) {
	matches := valueRe.FindStringSubmatch(strings.TrimSpace(val))
	if matches == nil {
		return 0, fmt.Errorf("invalid value format: %s", val)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, err
	}

	if len(matches) > 2 && matches[2] != "" {
		if multiplier, ok := unitMap[matches[2]]; ok {
			num *= multiplier
		}
	}

	return num, nil
}
