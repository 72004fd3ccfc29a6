package htmlutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parse(t *testing.T, page string) *html.Node {
	node, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	return node
}

func TestGetTextIncludesEverything(t *testing.T) {
	node := parse(t, `<html><body><p>Jornada <b>17</b></p><script>var x = 1;</script></body></html>`)

	text := GetText(node)
	require.Contains(t, text, "Jornada 17")
	require.Contains(t, text, "var x = 1;")
}

func TestGetVisibleTextSkipsScriptsAndBreaksLines(t *testing.T) {
	node := parse(t, `<html><body>
<div>América vs Chivas</div>
<script>var hidden = "Fake vs Script";</script>
<style>.partido { color: green; }</style>
<div>Cruz Azul vs Pumas</div>
</body></html>`)

	text := GetVisibleText(node)
	require.NotContains(t, text, "Fake vs Script")
	require.NotContains(t, text, "color: green")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	require.Contains(t, lines, "América vs Chivas")
	require.Contains(t, lines, "Cruz Azul vs Pumas")
}

func TestCleanText(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"  América  ", "América"},
		{"Cruz   Azul", "Cruz Azul"},
		{"\tSan  Luis\n", "San Luis"},
		{"León​", "León"},
		{"", ""},
	}
	for _, c := range cases {
		require.Equal(t, c.expected, CleanText(c.input), "input %q", c.input)
	}
}
