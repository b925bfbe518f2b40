package internyet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/s-hari-haran/vtu-portal-scraper/config"
)

func TestJSList(t *testing.T) {
	assert.Equal(t, `["div.card","a[rel='next']"]`, jsList([]string{"div.card", "a[rel='next']"}))
	assert.Equal(t, `[]`, jsList(nil))
	// double quotes inside a selector must survive embedding
	assert.Equal(t, `["a[href=\"x\"]"]`, jsList([]string{`a[href="x"]`}))
}

func TestScriptsEmbedConfiguredSelectors(t *testing.T) {
	sel := config.DefaultSelectors()
	sel.Cards = []string{"div.custom-card"}
	sel.Next = []string{"a.custom-next"}

	s := &Scraper{cfg: config.DefaultConfig(), sel: sel}

	assert.Contains(t, s.extractScript(), "div.custom-card")
	assert.Contains(t, s.nextScript(), "a.custom-next")
}
