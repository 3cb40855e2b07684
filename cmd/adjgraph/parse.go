// SPDX-License-Identifier: MIT

package main

import (
	"strconv"
	"strings"

	"github.com/juju/errors"
)

// parseInts reads every argument as an int; arguments may also hold
// comma separated lists ("3,1 2").
func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, arg := range args {
		values, err := parseIntList(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, values...)
	}

	return out, nil
}

// parseIntList reads a comma separated list of ints. Blank items are skipped.
func parseIntList(s string) ([]int, error) {
	var out []int
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		v, err := strconv.Atoi(item)
		if err != nil {
			return nil, errors.NotValidf("integer %q", item)
		}
		out = append(out, v)
	}

	return out, nil
}

// parseEdges reads "u-v" or "u:v" pairs separated by commas. The '-' form
// skips a leading sign, so "-1--2" is the edge {-1,-2}.
func parseEdges(s string) ([][2]int, error) {
	var out [][2]int
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		left, right, ok := splitEdge(item)
		if !ok {
			return nil, errors.NotValidf("edge %q", item)
		}
		u, err := strconv.Atoi(left)
		if err != nil {
			return nil, errors.NotValidf("edge %q", item)
		}
		v, err := strconv.Atoi(right)
		if err != nil {
			return nil, errors.NotValidf("edge %q", item)
		}
		out = append(out, [2]int{u, v})
	}

	return out, nil
}

func splitEdge(item string) (string, string, bool) {
	if left, right, ok := strings.Cut(item, ":"); ok {
		return strings.TrimSpace(left), strings.TrimSpace(right), true
	}
	if len(item) < 2 {
		return "", "", false
	}
	i := strings.IndexByte(item[1:], '-')
	if i < 0 {
		return "", "", false
	}
	i++

	return strings.TrimSpace(item[:i]), strings.TrimSpace(item[i+1:]), true
}
