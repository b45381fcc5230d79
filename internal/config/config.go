package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Host     string   `koanf:"host"`
	Port     int      `koanf:"port"`
	Cors     Cors     `koanf:"cors"`
	Frontend Frontend `koanf:"frontend"`
	GoogleAI GoogleAI `koanf:"googleai"`
	RapidAPI RapidAPI `koanf:"rapidapi"`
	Amadeus  Amadeus  `koanf:"amadeus"`
	Database Database `koanf:"db"`
}

type Cors struct {
	Origins []string `koanf:"origins"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

// GoogleAI holds the Gemini API key used by the planning agents.
type GoogleAI struct {
	APIKey string `koanf:"apikey"`
	Model  string `koanf:"model"`
}

// RapidAPI key is shared by the Booking.com and IRCTC integrations.
// An empty key makes the agents serve generated data instead.
type RapidAPI struct {
	Key string `koanf:"key"`
}

type Amadeus struct {
	APIKey    string `koanf:"apikey"`
	APISecret string `koanf:"apisecret"`
}

type Database struct {
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host: "http://localhost:8080",
		Port: 8080,
		Cors: Cors{
			Origins: []string{"http://localhost:5173", "http://localhost:3000"},
		},
		Frontend: Frontend{
			Enabled: true,
		},
		GoogleAI: GoogleAI{
			Model: "gemini-2.5-flash",
		},
		Database: Database{
			Host:   "localhost",
			Port:   5432,
			User:   "tripforge",
			Pass:   "",
			Name:   "tripforge",
			Schema: "tripforge",
		},
	}, "koanf"), nil)
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
		Prefix: "TRIPFORGE_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "TRIPFORGE_")), "_", ".")
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
