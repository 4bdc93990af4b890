package api

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"hermannm.dev/salaries/config"
	"hermannm.dev/salaries/salaries"
)

type SalariesAPI struct {
	opener salaries.SourceOpener
	router *httprouter.Router
	config config.API
}

func NewSalariesAPI(opener salaries.SourceOpener, config config.API) SalariesAPI {
	api := SalariesAPI{opener: opener, router: httprouter.New(), config: config}

	api.router.HandlerFunc(http.MethodGet, "/", api.Page)
	api.router.HandlerFunc(http.MethodGet, "/chart", api.Chart)
	api.router.HandlerFunc(http.MethodGet, "/api/options", api.Options)
	api.router.HandlerFunc(http.MethodGet, "/api/reports/:category", api.Report)

	return api
}

func (api SalariesAPI) ListenAndServe() error {
	return http.ListenAndServe(fmt.Sprintf(":%s", api.config.Port), api.router)
}

func (api SalariesAPI) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	api.router.ServeHTTP(res, req)
}
