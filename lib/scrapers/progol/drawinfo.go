package progol

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/leonmuri/progol-backend/lib/htmlutil"
	"github.com/leonmuri/progol-backend/lib/timezone"
)

// DrawInfo carries the display metadata of the current draw. Every
// field is an opaque string with a static or computed fallback.
type DrawInfo struct {
	Prize      string
	DrawDate   string
	Round      string
	DrawNumber string
}

// FetchDrawInfo resolves the current draw metadata. Each field is
// extracted independently from the page text; a fetch failure or an
// unrecognized page yields the defaults instead of an error.
func (s *Scraper) FetchDrawInfo(ctx context.Context) DrawInfo {
	ctx, span := tracer.Start(ctx, "FetchDrawInfo")
	defer span.End()

	doc, err := s.fetchDocument(ctx)
	if err != nil {
		span.RecordError(err)
		slog.WarnContext(ctx, "progol page unavailable, using default draw info", "err", err)
		return DefaultDrawInfo(timezone.Now())
	}

	var buffer strings.Builder
	for _, node := range doc.Selection.Nodes {
		buffer.WriteString(htmlutil.GetText(node))
	}

	text := buffer.String()
	return DrawInfo{
		Prize:      extractPrize(text),
		DrawDate:   extractDrawDate(text, timezone.Now()),
		Round:      extractRound(text),
		DrawNumber: extractDrawNumber(text),
	}
}

func DefaultDrawInfo(now time.Time) DrawInfo {
	return DrawInfo{
		Prize:      "Premio acumulado - Consultar página oficial",
		DrawDate:   defaultDrawDate(now),
		Round:      "Jornada actual",
		DrawNumber: "N/A",
	}
}

var prizePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\s*[\d,]+(?:\.\d{2})?`),
	regexp.MustCompile(`(?i)[\d,]+\s*(?:millones?|mil)`),
	regexp.MustCompile(`(?i)premio.*?[\d,]+`),
}

func extractPrize(text string) string {
	for _, pattern := range prizePatterns {
		if m := pattern.FindString(text); m != "" {
			return fmt.Sprintf("Premio estimado: %s", m)
		}
	}
	return "Premio: Consultar página oficial"
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d{1,2}\s+de\s+[a-záéíóúñ]+\s+de\s+\d{4}`),
	regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`),
	regexp.MustCompile(`(?i)sorteo.*?(\d{1,2}\s+[a-záéíóúñ]+)`),
}

func extractDrawDate(text string, now time.Time) string {
	for i, pattern := range datePatterns {
		groups := pattern.FindStringSubmatch(text)
		if groups == nil {
			continue
		}
		// the last pattern captures the date as a subgroup
		if i == len(datePatterns)-1 {
			return groups[1]
		}
		return groups[0]
	}
	return defaultDrawDate(now)
}

func defaultDrawDate(now time.Time) string {
	return fmt.Sprintf("Próximo sorteo: %s", timezone.NextSunday(now).Format("02/01/2006"))
}

var roundPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)jornada\s*#?\s*(\d+)`),
	regexp.MustCompile(`(?i)concurso\s*#?\s*(\d+)`),
	regexp.MustCompile(`(?i)sorteo\s*#?\s*(\d+)`),
}

func extractRound(text string) string {
	for _, pattern := range roundPatterns {
		if groups := pattern.FindStringSubmatch(text); groups != nil {
			return fmt.Sprintf("Jornada %s", groups[1])
		}
	}
	return "Jornada actual"
}

var drawNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)sorteo\s*#?\s*(\d+)`),
	regexp.MustCompile(`(?i)número\s+de\s+sorteo:?\s*(\d+)`),
}

func extractDrawNumber(text string) string {
	for _, pattern := range drawNumberPatterns {
		if groups := pattern.FindStringSubmatch(text); groups != nil {
			return groups[1]
		}
	}
	return "N/A"
}
