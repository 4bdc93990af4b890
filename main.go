package main

import (
	"context"
	"log/slog"
	"os"

	"hermannm.dev/devlog/log"
	"hermannm.dev/salaries/api"
	"hermannm.dev/salaries/config"
	"hermannm.dev/salaries/logging"
	"hermannm.dev/salaries/salaries"
	"hermannm.dev/salaries/source"
)

func main() {
	logging.Setup(false, false)

	log.Info("loading config from env")
	conf, err := config.ReadFromEnv()
	if err != nil {
		log.ErrorCause(err, "failed to read config from env")
		os.Exit(1)
	}
	logging.Setup(conf.IsProduction, conf.Debug)

	opener := source.NewOpener(conf)

	log.Infof("reading salaries from %s", opener.Description())
	dataset, reports, err := salaries.Run(context.Background(), opener)
	if err != nil {
		log.ErrorCause(err, "failed to calculate salary expenditure")
		os.Exit(1)
	}
	for _, category := range salaries.Categories {
		report := reports[category]
		log.Debug(
			"salary report",
			slog.String("category", category.String()),
			slog.Int("groups", len(report.Entries)),
			slog.String("total", report.Total().String()),
		)
	}
	log.Info("salary spreadsheet is valid", slog.Int("records", len(dataset.Records)))

	salariesAPI := api.NewSalariesAPI(opener, conf.API)

	log.Infof("listening on port %s", conf.API.Port)
	if err := salariesAPI.ListenAndServe(); err != nil {
		log.ErrorCause(err, "server stopped")
		os.Exit(1)
	}
}
