// Package handler contains the HTTP handlers mapping requests to the
// service layer.
package handler

import "strconv"

func atoiPair(a, b string) (int, int, error) {
	first, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, err
	}
	second, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, err
	}
	return first, second, nil
}
