package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"hermannm.dev/enumnames"
	"hermannm.dev/wrap"
)

type Config struct {
	BaseConfig
	GoogleSheets GoogleSheets
}

type BaseConfig struct {
	IsProduction bool       `env:"PRODUCTION" envDefault:"false"`
	Debug        bool       `env:"DEBUG"      envDefault:"false"`
	Source       SourceKind `env:"SALARIES_SOURCE" envDefault:"file"`
	File         File
	API          API
}

type API struct {
	Port string `env:"API_PORT" envDefault:"8501"`
}

type File struct {
	Path string `env:"SALARIES_FILE"  envDefault:"Salarios-BL-2024.xlsx"`
	// Only used for Excel workbooks. Blank means the first sheet.
	Sheet string `env:"SALARIES_SHEET" envDefault:""`
}

type GoogleSheets struct {
	SpreadsheetID   string `env:"GOOGLE_SPREADSHEET_ID"`
	Range           string `env:"GOOGLE_SHEET_RANGE"      envDefault:"A:Z"`
	CredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE" envDefault:""`
}

type SourceKind uint8

const (
	SourceFile SourceKind = iota + 1
	SourceGoogleSheets
)

var sourceKindNames = enumnames.NewMap(map[SourceKind]string{
	SourceFile:         "file",
	SourceGoogleSheets: "google_sheets",
})

func (kind SourceKind) IsValid() bool {
	return kind == SourceFile || kind == SourceGoogleSheets
}

func (kind SourceKind) String() string {
	return sourceKindNames.GetNameOrFallback(kind, "INVALID_SOURCE")
}

// Implements encoding.TextUnmarshaler, which env uses to parse the SALARIES_SOURCE variable.
func (kind *SourceKind) UnmarshalText(text []byte) error {
	for _, candidate := range []SourceKind{SourceFile, SourceGoogleSheets} {
		if candidate.String() == string(text) {
			*kind = candidate
			return nil
		}
	}

	return fmt.Errorf(
		"unsupported value '%s' for SALARIES_SOURCE (must be one of: '%s', '%s')",
		text,
		SourceFile,
		SourceGoogleSheets,
	)
}

// ReadFromEnv loads a .env file if one exists in the working directory, then parses config from
// environment variables. Google Sheets variables are only required when that source is selected.
func ReadFromEnv() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, wrap.Error(err, "failed to load .env file")
	}

	parseOptions := env.Options{RequiredIfNoDef: true}

	var config Config

	if err := env.ParseWithOptions(&config.BaseConfig, parseOptions); err != nil {
		return Config{}, wrap.Error(err, "failed to parse config from env")
	}

	switch config.Source {
	case SourceFile:
		if config.File.Path == "" {
			return Config{}, errors.New("SALARIES_FILE must not be blank")
		}
	case SourceGoogleSheets:
		if err := env.ParseWithOptions(&config.GoogleSheets, parseOptions); err != nil {
			return Config{}, wrap.Error(err, "failed to parse Google Sheets config from env")
		}
	default:
		return Config{}, fmt.Errorf("unsupported salary source '%s'", config.Source)
	}

	return config, nil
}
