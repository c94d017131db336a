package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const EnvPrefix = "FINPERCENT_"

type Application struct {
	Host     string   `koanf:"host"`
	Listen   string   `koanf:"listen"`
	Frontend Frontend `koanf:"frontend"`
	Google   Google   `koanf:"google"`
	Database Database `koanf:"db"`
	Auth     Auth     `koanf:"auth"`
	Cli      Cli      `koanf:"cli"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

type Google struct {
	ClientId     string `koanf:"clientid"`
	ClientSecret string `koanf:"clientsecret"`
}

type Database struct {
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`

	// SSLMode is passed through to libpq. Empty means "disable".
	SSLMode  string `koanf:"sslmode"`
	MaxConns int32  `koanf:"maxconns"`
	MinConns int32  `koanf:"minconns"`
}

type Auth struct {
	// JwtSecret signs login tokens. Bearer authentication is disabled when empty.
	JwtSecret string        `koanf:"jwtsecret"`
	TokenTTL  time.Duration `koanf:"tokenttl"`
}

type Cli struct {
	// PreferencesFile holds the terminal front-end's preferences. Empty means
	// the user config directory.
	PreferencesFile string `koanf:"preferencesfile"`
}

func defaults() Application {
	return Application{
		Host:   "http://localhost:3000",
		Listen: ":8181",
		Frontend: Frontend{
			Enabled: true,
		},
		Database: Database{
			Host:     "localhost",
			Port:     5432,
			User:     "finpercent",
			Pass:     "",
			Name:     "finpercent",
			Schema:   "finpercent",
			SSLMode:  "disable",
			MaxConns: 25,
			MinConns: 5,
		},
		Auth: Auth{
			TokenTTL: 24 * time.Hour,
		},
	}
}

// LoadDotEnv loads variables from a .env file into the process environment.
// Variables already set are not overridden and a missing file is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Debugf("No env file at %s", p)
				continue
			}
			log.Errorf("error loading env file %s: %v", p, err)
			return err
		}
		log.Infof("Loaded environment from %s", p)
	}
	return nil
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(defaults(), "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, EnvPrefix)), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
