// Package artifact reads the HTML paper wallets written by kaspaper and names
// the files they are stored in.
package artifact

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/usestring/kaspa-vanity/pkg/types"
)

// Markers delimiting the address region in a generated artifact.
const (
	OpenMarker  = `<div class="addr">`
	CloseMarker = `</div>`
)

// Extract returns the address held in the first addr div of content, with
// markup, newlines and spaces removed. It returns "" when the opening marker
// is absent. A missing closing marker extends the region to the end of content.
func Extract(content string) string {
	start := strings.Index(content, OpenMarker)
	if start == -1 {
		return ""
	}
	start += len(OpenMarker)

	region := content[start:]
	if end := strings.Index(region, CloseMarker); end != -1 {
		region = region[:end]
	}

	text := regionText(region)
	text = strings.ReplaceAll(text, "\n", "")
	text = strings.ReplaceAll(text, " ", "")
	return strings.TrimSpace(text)
}

// regionText drops any markup (kaspaper breaks long addresses with <br>).
func regionText(region string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(region))
	if err != nil {
		return strings.ReplaceAll(region, "<br>", "")
	}
	return doc.Text()
}

// ReadAddress reads the artifact at path and extracts its address. A missing or
// unreadable file yields "" together with the read error.
func ReadAddress(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read artifact: %w", err)
	}
	return Extract(string(b)), nil
}

// StripScheme removes the "kaspa:" scheme from address.
func StripScheme(address string) string {
	return strings.ReplaceAll(address, types.AddressScheme, "")
}
