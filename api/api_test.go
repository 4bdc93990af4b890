package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hermannm.dev/salaries/config"
	"hermannm.dev/salaries/csv"
	"hermannm.dev/salaries/salaries"
	"hermannm.dev/salaries/selector"
)

const testSalaries = `CLUB,POS SPECIFIC,NATIONALITY,AGE,GROSS P/Y
A,Striker,Spain,20,100
B,Striker,Spain,21,300
A,Defender,France,20,50
`

type stringOpener struct {
	data    string
	openErr error
}

func (opener stringOpener) OpenSource(context.Context) (salaries.DataSource, io.Closer, error) {
	if opener.openErr != nil {
		return nil, nil, opener.openErr
	}

	reader, err := csv.NewReader(strings.NewReader(opener.data), salaries.RequiredColumns())
	if err != nil {
		return nil, nil, err
	}
	return reader, nil, nil
}

func newTestAPI(data string) SalariesAPI {
	return NewSalariesAPI(stringOpener{data: data}, config.API{Port: "8501"})
}

func get(t *testing.T, api SalariesAPI, target string) *httptest.ResponseRecorder {
	t.Helper()

	res := httptest.NewRecorder()
	api.ServeHTTP(res, httptest.NewRequest(http.MethodGet, target, nil))
	return res
}

func TestPage(t *testing.T) {
	res := get(t, newTestAPI(testSalaries), "/")
	require.Equal(t, http.StatusOK, res.Code)

	body := res.Body.String()
	assert.Contains(t, body, PageTitle)
	assert.Contains(t, body, SidebarLabel)
	for _, option := range selector.Options() {
		assert.Contains(t, body, option)
	}
	assert.Contains(t, body, "/chart?choice="+url.PathEscape(selector.DefaultOption()))
}

func TestPageKeepsSelectedChoice(t *testing.T) {
	choice := selector.Options()[2]
	res := get(t, newTestAPI(testSalaries), "/?choice="+url.QueryEscape(choice))
	require.Equal(t, http.StatusOK, res.Code)

	assert.Contains(t, res.Body.String(), "/chart?choice="+url.PathEscape(choice))
}

func TestChart(t *testing.T) {
	choice := selector.Options()[1]
	res := get(t, newTestAPI(testSalaries), "/chart?choice="+url.PathEscape(choice))
	require.Equal(t, http.StatusOK, res.Code)

	assert.Contains(t, res.Header().Get("Content-Type"), "text/html")
	assert.NotEmpty(t, res.Header().Get(datasetIDHeader))
	assert.Contains(t, res.Body.String(), "ANUAL SALARIES PER POSITION")
	assert.Contains(t, res.Body.String(), "Striker")
}

func TestChartDefaultsToFirstOption(t *testing.T) {
	res := get(t, newTestAPI(testSalaries), "/chart")
	require.Equal(t, http.StatusOK, res.Code)

	assert.Contains(t, res.Body.String(), "ANUAL SALARIES PER CLUB")
}

func TestChartInvalidChoice(t *testing.T) {
	res := get(t, newTestAPI(testSalaries), "/chart?choice=5.+ANUAL+SALARIES+PER+SHOE+SIZE")

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, res.Body.String(), "5. ANUAL SALARIES PER SHOE SIZE")
	assert.NotContains(t, res.Body.String(), "<html")
}

func TestChartDataError(t *testing.T) {
	data := "CLUB,POS SPECIFIC,NATIONALITY,AGE,GROSS P/Y\nA,Striker,Spain,20,\n"
	res := get(t, newTestAPI(data), "/chart")

	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Contains(t, res.Body.String(), "GROSS P/Y")
}

func TestChartLoadError(t *testing.T) {
	api := NewSalariesAPI(
		stringOpener{openErr: errors.New("file not found")},
		config.API{Port: "8501"},
	)
	res := get(t, api, "/chart")

	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Contains(t, res.Body.String(), "file not found")
}

func TestOptions(t *testing.T) {
	res := get(t, newTestAPI(testSalaries), "/api/options")
	require.Equal(t, http.StatusOK, res.Code)

	var options []string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &options))
	assert.Equal(t, selector.Options(), options)
}

func TestReport(t *testing.T) {
	res := get(t, newTestAPI(testSalaries), "/api/reports/CLUB")
	require.Equal(t, http.StatusOK, res.Code)

	assert.JSONEq(
		t,
		`{"category":"CLUB","entries":[{"key":"B","total":"300"},{"key":"A","total":"150"}]}`,
		res.Body.String(),
	)
}

func TestReportWithSpaceInCategory(t *testing.T) {
	res := get(t, newTestAPI(testSalaries), "/api/reports/POS%20SPECIFIC")
	require.Equal(t, http.StatusOK, res.Code)

	assert.JSONEq(
		t,
		`{"category":"POS SPECIFIC","entries":[{"key":"Striker","total":"400"},{"key":"Defender","total":"50"}]}`,
		res.Body.String(),
	)
}

func TestReportUnknownCategory(t *testing.T) {
	res := get(t, newTestAPI(testSalaries), "/api/reports/SHOE%20SIZE")

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, res.Body.String(), "SHOE SIZE")
}
