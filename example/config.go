package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mickamy/ormmorph/example/model"
)

// config is read from the environment (optionally a .env file) and
// overridden by flags.
type config struct {
	Dialect     string
	DSN         string
	AliasesFile string
	LogMode     string
}

func loadConfig() config {
	// A missing .env is fine.
	_ = godotenv.Load()

	return config{
		Dialect:     getEnvOrDefault("ORMMORPH_DIALECT", "sqlite"),
		DSN:         os.Getenv("ORMMORPH_DSN"),
		AliasesFile: getEnvOrDefault("ORMMORPH_ALIASES", "aliases.yaml"),
		LogMode:     getEnvOrDefault("ORMMORPH_LOG", "development"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// aliasFile is the YAML layout of the aliases file:
//
//	models:
//	  Post:
//	    related:
//	      Category: post
//	  Video:
//	    default: clip
type aliasFile struct {
	Models map[string]model.Aliases `yaml:"models"`
}

var defaultAliases = map[string]model.Aliases{
	"Post":  {Related: map[string]string{"Category": "post"}},
	"Video": {Related: map[string]string{"Category": "video"}},
}

// loadAliases reads per-model aliases from path. A missing file yields
// the built-in defaults.
func loadAliases(path string) (map[string]model.Aliases, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultAliases, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read aliases: %w", err)
	}

	var f aliasFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse aliases %s: %w", path, err)
	}
	if f.Models == nil {
		f.Models = map[string]model.Aliases{}
	}
	return f.Models, nil
}
