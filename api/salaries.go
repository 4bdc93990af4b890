package api

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"hermannm.dev/devlog/log"
	"hermannm.dev/salaries/chart"
	"hermannm.dev/salaries/salaries"
	"hermannm.dev/salaries/selector"
)

const (
	PageTitle    = "BUNDESLIGA SALARIES EXPEDITURE ANALYSIS"
	SidebarLabel = "EXPENDITURE TYPE:"

	datasetIDHeader = "X-Dataset-ID"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <style>
    body { display: flex; margin: 0; font-family: sans-serif; }
    aside { width: 280px; padding: 1.5rem; background: #f0f2f6; min-height: 100vh; }
    main { padding: 1.5rem; }
    iframe { border: none; width: 1040px; height: 640px; }
  </style>
</head>
<body>
  <aside>
    <form method="get" action="/">
      <label for="choice">{{.SidebarLabel}}</label>
      <select id="choice" name="choice" onchange="this.form.submit()">
        {{- range .Options}}
        <option value="{{.}}"{{if eq . $.Choice}} selected{{end}}>{{.}}</option>
        {{- end}}
      </select>
    </form>
  </aside>
  <main>
    <h1>{{.Title}}</h1>
    <iframe src="/chart?choice={{.Choice}}" title="{{.Choice}}"></iframe>
  </main>
</body>
</html>
`))

type pageData struct {
	Title        string
	SidebarLabel string
	Options      []string
	Choice       string
}

// Expects:
//   - optional query parameter 'choice': label of the selected expenditure type (defaults to the
//     first)
//
// Returns:
//   - HTML page with the expenditure type dropdown and the selected chart
func (api SalariesAPI) Page(res http.ResponseWriter, req *http.Request) {
	data := pageData{
		Title:        PageTitle,
		SidebarLabel: SidebarLabel,
		Options:      selector.Options(),
		Choice:       choiceFromQuery(req),
	}

	var page bytes.Buffer
	if err := pageTemplate.Execute(&page, data); err != nil {
		sendServerError(res, err, "failed to render page")
		return
	}

	writeHTML(res, page.Bytes())
}

// Expects:
//   - optional query parameter 'choice': label of the expenditure type to chart
//
// Returns:
//   - HTML bar chart of salary expenditure for the chosen category
func (api SalariesAPI) Chart(res http.ResponseWriter, req *http.Request) {
	choice := choiceFromQuery(req)

	dataset, reports, err := salaries.Run(req.Context(), api.opener)
	if err != nil {
		sendServerError(res, err, "failed to calculate salary expenditure")
		return
	}

	request, err := selector.Dispatch(choice, reports)
	if err != nil {
		var invalidChoice *selector.InvalidChoiceError
		if errors.As(err, &invalidChoice) {
			sendClientError(res, err, "invalid expenditure type")
		} else {
			sendServerError(res, err, "failed to select salary report")
		}
		return
	}

	var chartHTML bytes.Buffer
	if err := chart.Render(&chartHTML, request); err != nil {
		sendServerError(res, err, "failed to render salary chart")
		return
	}

	log.Debug(
		"rendered salary chart",
		slog.String("title", request.Title),
		slog.Int("bars", len(request.Report.Entries)),
	)

	res.Header().Set(datasetIDHeader, dataset.ID.String())
	writeHTML(res, chartHTML.Bytes())
}

// Returns:
//   - JSON array of expenditure type labels, in the order they are presented
func (api SalariesAPI) Options(res http.ResponseWriter, req *http.Request) {
	sendJSON(res, selector.Options())
}

// Expects:
//   - path parameter 'category': CLUB, POS SPECIFIC, NATIONALITY or AGE
//
// Returns:
//   - JSON-encoded salaries.Report for the category
func (api SalariesAPI) Report(res http.ResponseWriter, req *http.Request) {
	categoryName := httprouter.ParamsFromContext(req.Context()).ByName("category")

	category, ok := salaries.ParseCategory(categoryName)
	if !ok {
		sendClientError(res, nil, fmt.Sprintf("unknown category '%s'", categoryName))
		return
	}

	dataset, reports, err := salaries.Run(req.Context(), api.opener)
	if err != nil {
		sendServerError(res, err, "failed to calculate salary expenditure")
		return
	}

	res.Header().Set(datasetIDHeader, dataset.ID.String())
	sendJSON(res, reports[category])
}

func choiceFromQuery(req *http.Request) string {
	if choice := req.URL.Query().Get("choice"); choice != "" {
		return choice
	}
	return selector.DefaultOption()
}

func writeHTML(res http.ResponseWriter, body []byte) {
	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	res.WriteHeader(http.StatusOK)
	if _, err := res.Write(body); err != nil {
		log.ErrorCause(err, "failed to write response")
	}
}
