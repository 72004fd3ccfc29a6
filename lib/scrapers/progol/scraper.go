// Package progol scrapes the current Progol match listing and draw
// metadata from the Lotería Nacional page. Resolution is best-effort:
// every failure path degrades to the next extraction strategy and
// finally to a synthetic match list, it never surfaces an error.
package progol

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/leonmuri/progol-backend/lib/htmlutil"
	"github.com/leonmuri/progol-backend/lib/quiniela"
	"github.com/leonmuri/progol-backend/lib/telemetry"
	"github.com/leonmuri/progol-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"golang.org/x/net/html"
)

var tracer = otel.Tracer("scrapers/progol")

const DefaultPageUrl = "https://www.lotenal.gob.mx/ESM/progol.html"

type Scraper struct {
	client  *resty.Client
	pageUrl string

	// team names already handed out by the synthetic fallback this
	// session, so consecutive fallbacks don't repeat pairings
	usedTeams map[string]bool
}

func NewScraper(pageUrl string) *Scraper {
	if pageUrl == "" {
		pageUrl = DefaultPageUrl
	}

	client := resty.New()
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 10)

	telemetry.InstrumentResty(client, "scrapers/progol/http")

	return &Scraper{
		client:    client,
		pageUrl:   pageUrl,
		usedTeams: map[string]bool{},
	}
}

// FetchMatches resolves the current list of up to 14 matches. Strategies
// are tried in order, the first one producing at least one match wins:
// structured markup, visible page text, synthetic fallback.
func (s *Scraper) FetchMatches(ctx context.Context) []quiniela.Match {
	ctx, span := tracer.Start(ctx, "FetchMatches")
	defer span.End()

	doc, err := s.fetchDocument(ctx)
	if err != nil {
		span.RecordError(err)
		slog.WarnContext(ctx, "progol page unavailable, falling back to synthetic matches", "err", err)
		return s.SyntheticMatches()
	}

	if matches := extractStructured(doc); len(matches) > 0 {
		slog.InfoContext(ctx, "resolved matches from page markup", "count", len(matches))
		return matches
	}
	if matches := extractPlainText(doc); len(matches) > 0 {
		slog.InfoContext(ctx, "resolved matches from page text", "count", len(matches))
		return matches
	}

	slog.WarnContext(ctx, "no matches recognized on progol page, falling back to synthetic matches")
	return s.SyntheticMatches()
}

func (s *Scraper) fetchDocument(ctx context.Context) (*goquery.Document, error) {
	res, err := s.client.R().
		SetContext(ctx).
		Get(s.pageUrl)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("progol page returned %s", res.Status())
	}
	return goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
}

var (
	teamPairRegex = regexp.MustCompile(`(?i)([A-Za-záéíóúÁÉÍÓÚñÑ\s]+)\s+(?:vs|contra)\s+([A-Za-záéíóúÁÉÍÓÚñÑ\s]+)`)
	linePairRegex = regexp.MustCompile(`(?i)([A-Za-záéíóúÁÉÍÓÚñÑ\s]{3,25})\s+(?:vs|contra|v/s)\s+([A-Za-záéíóúÁÉÍÓÚñÑ\s]{3,25})`)
	separatorRe   = regexp.MustCompile(`(?i)\bvs\b|\bcontra\b`)
)

var matchClassVocabulary = []string{"partido", "match", "game"}

// extractStructured scans candidate regions of the document in priority
// order: tables first, then elements with a match-like class, then bare
// text nodes mentioning a versus separator. The first group yielding at
// least one valid pair wins, even if it produced fewer than 14.
func extractStructured(doc *goquery.Document) []quiniela.Match {
	var candidateGroups [][]string

	var tables []string
	doc.Find("table").Each(func(_ int, sel *goquery.Selection) {
		tables = append(tables, sel.Text())
	})
	candidateGroups = append(candidateGroups, tables)

	var classed []string
	doc.Find("div[class], section[class], li[class]").Each(func(_ int, sel *goquery.Selection) {
		class := sel.AttrOr("class", "")
		if textutil.MatchName(class, matchClassVocabulary) {
			classed = append(classed, sel.Text())
		}
	})
	candidateGroups = append(candidateGroups, classed)

	candidateGroups = append(candidateGroups, versusTextNodes(doc))

	for _, group := range candidateGroups {
		if matches := scanCandidates(group, teamPairRegex); len(matches) > 0 {
			return matches
		}
	}
	return nil
}

// versusTextNodes collects raw text nodes that mention "vs"/"contra".
func versusTextNodes(doc *goquery.Document) []string {
	var texts []string
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node == nil {
			return
		}
		if node.Type == html.TextNode && separatorRe.MatchString(node.Data) {
			texts = append(texts, node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, node := range doc.Selection.Nodes {
		walk(node)
	}
	return texts
}

// extractPlainText reduces the page to its visible text and scans it
// line by line with a looser pair pattern.
func extractPlainText(doc *goquery.Document) []quiniela.Match {
	var buffer strings.Builder
	for _, node := range doc.Selection.Nodes {
		buffer.WriteString(htmlutil.GetVisibleText(node))
	}
	lines := strings.Split(buffer.String(), "\n")
	return scanCandidates(lines, linePairRegex)
}

func scanCandidates(texts []string, pattern *regexp.Regexp) []quiniela.Match {
	var matches []quiniela.Match
	seen := map[string]bool{}

	for _, text := range texts {
		for _, line := range strings.Split(text, "\n") {
			groups := pattern.FindStringSubmatch(line)
			if groups == nil {
				continue
			}
			home := htmlutil.CleanText(groups[1])
			away := htmlutil.CleanText(groups[2])
			if len([]rune(home)) <= 2 || len([]rune(away)) <= 2 || home == away {
				continue
			}

			key := textutil.NormalizeName(home) + "|" + textutil.NormalizeName(away)
			if seen[key] {
				continue
			}
			seen[key] = true

			matches = append(matches, quiniela.Match{
				Home:      home,
				Away:      away,
				DateLabel: "Próxima jornada",
			})
			if len(matches) >= quiniela.MaxMatches {
				return matches
			}
		}
	}
	return matches
}
