package artifact

import (
	"math/rand/v2"
	"strings"
)

// Extension is appended to every artifact and result file.
const Extension = ".html"

const (
	tempNameLen     = 8
	tempNameCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// IntNSource is satisfied by *rand.Rand.
type IntNSource interface {
	IntN(n int) int
}

// TempName returns a random 8-character lowercase-alphanumeric file name with
// the artifact extension. A nil src uses the global generator.
func TempName(src IntNSource) string {
	intN := rand.IntN
	if src != nil {
		intN = src.IntN
	}

	var b strings.Builder
	b.Grow(tempNameLen + len(Extension))
	for range tempNameLen {
		b.WriteByte(tempNameCharset[intN(len(tempNameCharset))])
	}
	b.WriteString(Extension)
	return b.String()
}

// ResultName is the file name a finished search is saved under. Constrained
// searches are named after the pattern, unconstrained ones after the address.
func ResultName(prefix, suffix, address string) string {
	if prefix != "" || suffix != "" {
		return "q" + prefix + "..." + suffix + Extension
	}
	return address + Extension
}
