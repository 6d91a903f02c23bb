package cmd

import (
	"io/fs"
	"os"
	"strings"
	"time"

	"deliverytracking/internal/adapters/out/postgres"
	"deliverytracking/internal/adapters/out/signature"
	"deliverytracking/internal/jobs"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

type Config struct {
	HTTP      HTTPConfig       `koanf:"http"`
	DB        postgres.Config  `koanf:"db"`
	Log       LogConfig        `koanf:"log"`
	Signature signature.Config `koanf:"signature"`
	Jobs      jobs.Config      `koanf:"jobs"`
}

type HTTPConfig struct {
	Port            int           `koanf:"port" validate:"required,min=1,max=65535"`
	ShutdownTimeout time.Duration `koanf:"shutdowntimeout" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json text"`
}

// sections lists the top-level keys environment variables may set.
var sections = map[string]bool{"http": true, "db": true, "log": true, "signature": true, "jobs": true}

func DefaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
		},
		DB: postgres.Config{
			Host:    "localhost",
			Port:    5432,
			SSLMode: "disable",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Jobs: jobs.Config{
			ProblemReportSchedule: "0 */5 * * * *",
			StaleTransitSchedule:  "0 */15 * * * *",
			StaleTransitThreshold: 4 * time.Hour,
		},
	}
}

// LoadConfig layers defaults, the optional YAML file and the environment.
// A .env file in the working directory is loaded into the environment first.
// Environment keys use the first underscore as the section separator:
// DB_HOST sets db.host, JOBS_STALETRANSITTHRESHOLD sets jobs.staletransitthreshold.
func LoadConfig(configFile string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Wrap(err, "load .env")
	}

	k := koanf.New(".")

	if configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return Config{}, errors.Wrapf(err, "config file %s", configFile)
		}
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return Config{}, errors.Wrapf(err, "read config file %s", configFile)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{TransformFunc: envKey}), nil); err != nil {
		return Config{}, errors.Wrap(err, "load environment")
	}

	cfg := DefaultConfig()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			TagName:          "koanf",
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: strings.EqualFold,
		},
	}); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// envKey maps DB_SSLMODE to db.sslmode and drops variables outside the
// known sections.
func envKey(key, value string) (string, any) {
	section, rest, ok := strings.Cut(strings.ToLower(key), "_")
	if !ok || !sections[section] {
		return "", nil
	}
	return section + "." + strings.ReplaceAll(rest, "_", ""), value
}
