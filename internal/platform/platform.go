// Package platform maps the running operating system to its kaspaper binary.
package platform

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned for operating systems without a kaspaper build.
var ErrUnsupported = errors.New("unsupported operating system")

var generators = map[string]string{
	"linux":   "./kaspaper-linux",
	"darwin":  "./kaspaper-mac",
	"windows": "kaspaper.exe",
}

// Resolve returns the generator executable for goos.
func Resolve(goos string) (string, error) {
	bin, ok := generators[goos]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupported, goos)
	}
	return bin, nil
}
