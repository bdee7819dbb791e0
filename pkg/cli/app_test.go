package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mchmarny/leadcalc/pkg/metrics"
	"github.com/mchmarny/leadcalc/pkg/model"
	"github.com/mchmarny/leadcalc/pkg/risk"
	"github.com/mchmarny/leadcalc/pkg/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// runApp executes the CLI with an isolated config dir and returns stdout.
func runApp(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf
	app.ErrWriter = &bytes.Buffer{}
	app.Reader = strings.NewReader("")

	full := append([]string{appName, "--config", dir}, args...)
	err := app.Run(context.Background(), full)
	return buf.String(), err
}

func TestCalcCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := runApp(t, dir, "calc", "--product", "leafy_greens", "--amount", "85", "--frequency", "7")
	require.NoError(t, err)

	var r scenario.Result
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, scenario.KindSingle, r.Kind)
	require.NotNil(t, r.Report)
	assert.InDelta(t, 0.7136, r.Report.Result.EstimatedBloodLeadUgDl, 1e-9)
	assert.Equal(t, risk.TierLow, r.Report.TotalRisk)
	assert.Equal(t, model.AgeGroupAdult, r.Profile.AgeGroup)
}

func TestCalcCommand_Override(t *testing.T) {
	dir := t.TempDir()
	out, err := runApp(t, dir, "calc", "-p", "kohl_surma", "--age", "infant",
		"--amount", "0.02", "--frequency", "1", "--ppm", "50000")
	require.NoError(t, err)

	var r scenario.Result
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.InDelta(t, 17.857, r.Report.Result.BloodLeadContributionUgDl, 1e-3)
	assert.Equal(t, risk.TierHigh, r.Report.ContributionRisk)
}

func TestCalcCommand_YAML(t *testing.T) {
	dir := t.TempDir()
	out, err := runApp(t, dir, "--format", "yaml", "calc", "-p", "rice", "--country", "india")
	require.NoError(t, err)
	assert.Contains(t, out, "kind: single")
	assert.Contains(t, out, "country: india")
}

func TestCalcCommand_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := runApp(t, dir, "calc", "-p", "unobtainium")
	assert.Error(t, err)

	_, err = runApp(t, dir, "calc", "-p", "rice", "--amount=-1")
	assert.Error(t, err)

	_, err = runApp(t, dir, "calc", "-p", "rice", "--age", "teen")
	assert.Error(t, err)

	_, err = runApp(t, dir, "--format", "xml", "calc", "-p", "rice")
	assert.Error(t, err)
}

func TestCumulativeCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := runApp(t, dir, "cumulative",
		"-e", "rice,amount=150",
		"-e", "lipstick,ug=2,freq=14",
		"--age", "child")
	require.NoError(t, err)

	var r scenario.Result
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, scenario.KindCumulative, r.Kind)
	assert.Equal(t, []string{"rice", "lipstick"}, r.Products)

	// comma separated fields reach the exposure: 200 g × 0.5 ppm, daily
	out, err = runApp(t, dir, "cumulative", "-e", "rice,amount=200,freq=7,ppm=0.5")
	require.NoError(t, err)
	r = scenario.Result{}
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, []string{"rice"}, r.Products)
	assert.InDelta(t, 100.0, r.Report.Result.DailyLeadIntakeUg, 1e-9)
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.yaml")
	body := `profile: {age_group: toddler, country: us}
scenarios:
  - name: cereal
    exposures: [{product_id: baby_cereal}]
  - name: broken
    exposures: [{product_id: nope}]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))

	out, err := runApp(t, dir, "batch", "--file", path, "--concurrency", "2")
	require.NoError(t, err)

	var results []*scenario.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "cereal", results[0].Name)
	assert.Empty(t, results[0].Error)
	assert.NotEmpty(t, results[1].Error)
}

func TestParamsCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := runApp(t, dir, "params", "--age", "adult", "--country", "us", "--weight", "80")
	require.NoError(t, err)

	var v ParamsView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, 0.7, v.Parameters.BaselineBloodLead)
	assert.Equal(t, 80.0, v.Parameters.BodyWeightKg)
	assert.Equal(t, 3.5, v.Thresholds.CDC)
}

func TestProductCommands(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "products.yaml")
	body := `products:
  - id: clay_pot_tea
    name: Tea brewed in a glazed clay pot
    category: beverage
    lead_content_ppm: 0.4
    default_serving_grams: 250
    exposure_route: ingestion
`
	require.NoError(t, os.WriteFile(file, []byte(body), 0600))

	out, err := runApp(t, dir, "product", "import", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, `"imported": 1`)

	out, err = runApp(t, dir, "product", "list", "--category", "beverage")
	require.NoError(t, err)
	var items []*ProductItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Len(t, items, 3)
	assert.Equal(t, sourceCustom, items[2].Source)

	out, err = runApp(t, dir, "product", "search", "clay")
	require.NoError(t, err)
	assert.Contains(t, out, "clay_pot_tea")

	out, err = runApp(t, dir, "product", "show", "clay_pot_tea")
	require.NoError(t, err)
	var item ProductItem
	require.NoError(t, json.Unmarshal([]byte(out), &item))
	assert.Equal(t, 0.4, item.LeadContentPpm)
	assert.Equal(t, sourceCustom, item.Source)

	// custom products are usable in calculations
	out, err = runApp(t, dir, "calc", "-p", "clay_pot_tea")
	require.NoError(t, err)
	assert.Contains(t, out, "clay_pot_tea")

	_, err = runApp(t, dir, "product", "delete", "clay_pot_tea")
	require.NoError(t, err)

	_, err = runApp(t, dir, "product", "show", "clay_pot_tea")
	assert.Error(t, err)

	_, err = runApp(t, dir, "product", "delete", "rice")
	assert.Error(t, err)

	_, err = runApp(t, dir, "product", "show")
	assert.Error(t, err)
}

func TestProductImportURL(t *testing.T) {
	dir := t.TempDir()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"products":[{"id":"ceramic_mug","category":"beverage","lead_content_ppm":0.2,"default_serving_grams":300,"exposure_route":"ingestion"}]}`))
	}))
	defer srv.Close()

	out, err := runApp(t, dir, "product", "import", "--url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, `"imported": 1`)

	out, err = runApp(t, dir, "product", "show", "ceramic_mug")
	require.NoError(t, err)
	assert.Contains(t, out, sourceCustom)

	_, err = runApp(t, dir, "product", "import")
	assert.Error(t, err)

	_, err = runApp(t, dir, "product", "import", "--url", srv.URL, "--file", "x.yaml")
	assert.Error(t, err)
}

func TestResetCommand(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "products.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"products":[{"id":"x","category":"food","lead_content_ppm":1,"default_serving_grams":1,"exposure_route":"ingestion"}]}`), 0600))

	_, err := runApp(t, dir, "product", "import", "-f", file)
	require.NoError(t, err)

	// no confirmation keeps the data
	_, err = runApp(t, dir, "reset")
	require.NoError(t, err)
	out, err := runApp(t, dir, "product", "show", "x")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "x"`)

	_, err = runApp(t, dir, "reset", "--yes")
	require.NoError(t, err)
	_, err = runApp(t, dir, "product", "show", "x")
	assert.Error(t, err)
}

func TestParseExposureArg(t *testing.T) {
	s, err := parseExposureArg("rice, amount=150,freq=3.5,ppm=0.2")
	require.NoError(t, err)
	assert.Equal(t, "rice", s.ProductID)
	require.NotNil(t, s.AmountGrams)
	assert.Equal(t, 150.0, *s.AmountGrams)
	require.NotNil(t, s.FrequencyPerWeek)
	assert.Equal(t, 3.5, *s.FrequencyPerWeek)
	assert.Equal(t, string(model.LeadUnitPPM), s.LeadUnit)

	s, err = parseExposureArg("lipstick,ppm=1,ug=4")
	require.NoError(t, err)
	assert.Equal(t, string(model.LeadUnitUgPerServing), s.LeadUnit)

	s, err = parseExposureArg("wine")
	require.NoError(t, err)
	assert.Nil(t, s.AmountGrams)
	assert.Empty(t, s.LeadUnit)

	for _, bad := range []string{"", ",amount=1", "rice,amount", "rice,amount=x", "rice,color=1"} {
		_, err := parseExposureArg(bad)
		assert.Error(t, err, bad)
	}
}

func TestAfterFlushesMetrics(t *testing.T) {
	var flushed bool
	cmd := &cli.Command{
		Metadata: map[string]any{
			appConfigKey: &appConfig{
				shutdownMetrics: func(ctx context.Context) error {
					_, hasDeadline := ctx.Deadline()
					assert.True(t, hasDeadline)
					flushed = true
					return nil
				},
			},
		},
	}

	require.NoError(t, after(context.Background(), cmd))
	assert.True(t, flushed)
}

func TestRunWithoutMetricsEndpoint(t *testing.T) {
	t.Setenv(metrics.EndpointEnvVar, "")
	t.Setenv(metrics.MetricsEndpointEnvVar, "")

	_, err := runApp(t, t.TempDir(), "params")
	require.NoError(t, err)
}
