package progol

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/leonmuri/progol-backend/lib/telemetry"
	"github.com/leonmuri/progol-backend/lib/timezone"

	"github.com/stretchr/testify/require"
)

func TestExtractPrize(t *testing.T) {
	cases := []struct {
		text     string
		expected string
	}{
		{"Bolsa garantizada de $ 20,000,000.00 pesos", "Premio estimado: $ 20,000,000.00"},
		{"acumulado de 45 millones para este concurso", "Premio estimado: 45 millones"},
		{"el premio asciende a 150,000", "Premio estimado: premio asciende a 150,000"},
		{"sin información de bolsa", "Premio: Consultar página oficial"},
	}
	for _, test := range cases {
		require.Equal(t, test.expected, extractPrize(test.text))
	}
}

func TestExtractDrawDate(t *testing.T) {
	now := time.Date(2024, time.August, 28, 0, 0, 0, 0, timezone.Location)

	cases := []struct {
		text     string
		expected string
	}{
		{"cierre el 15 de septiembre de 2024", "15 de septiembre de 2024"},
		{"cierre el 15/09/2024 a las 21:00", "15/09/2024"},
		{"próximo sorteo 15 septiembre", "15 septiembre"},
		{"sin fechas por aquí", "Próximo sorteo: 01/09/2024"},
	}
	for _, test := range cases {
		require.Equal(t, test.expected, extractDrawDate(test.text, now))
	}
}

func TestExtractRound(t *testing.T) {
	cases := []struct {
		text     string
		expected string
	}{
		{"Jornada #2245 ya disponible", "Jornada 2245"},
		{"resultados del Concurso 2244", "Jornada 2244"},
		{"Sorteo # 991", "Jornada 991"},
		{"sin número visible", "Jornada actual"},
	}
	for _, test := range cases {
		require.Equal(t, test.expected, extractRound(test.text))
	}
}

func TestExtractDrawNumber(t *testing.T) {
	require.Equal(t, "2245", extractDrawNumber("Sorteo #2245"))
	require.Equal(t, "881", extractDrawNumber("Número de sorteo: 881"))
	require.Equal(t, "N/A", extractDrawNumber("página sin datos"))
}

func TestFetchDrawInfoFromServedPage(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/progol")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
<h1>Progol Jornada #2245 - Sorteo #2245</h1>
<p>Bolsa garantizada de $ 20,000,000.00 pesos</p>
<p>Cierre de apuestas: 15/06/2025</p>
</body></html>`))
	}))
	defer server.Close()

	s := NewScraper(server.URL)
	info := s.FetchDrawInfo(context.Background())
	require.Equal(t, "Premio estimado: $ 20,000,000.00", info.Prize)
	require.Equal(t, "15/06/2025", info.DrawDate)
	require.Equal(t, "Jornada 2245", info.Round)
	require.Equal(t, "2245", info.DrawNumber)
}

func TestFetchDrawInfoUnreachableSource(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/progol")
	defer cleanup()

	s := NewScraper("http://127.0.0.1:1/progol.html")

	info := s.FetchDrawInfo(context.Background())
	require.Equal(t, "Premio acumulado - Consultar página oficial", info.Prize)
	require.Equal(t, "Jornada actual", info.Round)
	require.Equal(t, "N/A", info.DrawNumber)
	require.Contains(t, info.DrawDate, "Próximo sorteo: ")
}
