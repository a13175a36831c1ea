package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/durp-dev/durp/pkg/errors"
	"github.com/durp-dev/durp/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every environment variable durp reads
const EnvPrefix = "DURP_"

// Options selects the optional configuration sources
type Options struct {
	// ConfigFile is an explicit config file; it must exist. When empty the
	// XDG config locations are searched and a missing file is not an error.
	ConfigFile string
	// EnvFile is a .env file; a missing file is not an error
	EnvFile string
}

// Load resolves configuration from defaults, config file, .env file and
// environment, later sources overriding earlier ones.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Config file
	path, err := configFilePath(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. .env file
	if opts.EnvFile != "" {
		values, err := godotenv.Read(opts.EnvFile)
		switch {
		case err == nil:
			if err := k.Load(confmap.Provider(envFileMap(values), "."), nil); err != nil {
				return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to merge env file")
			}
			logger.Debug().Str("path", opts.EnvFile).Int("keys", len(values)).Msg("Loaded env file")
		case os.IsNotExist(err):
			logger.Trace().Str("path", opts.EnvFile).Msg("No env file")
		default:
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to read env file %s", opts.EnvFile).
				WithDetail("path", opts.EnvFile)
		}
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Unmarshal
	cfg := &Config{}
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("marker", cfg.Marker.Name).
		Str("mode", cfg.Walk.Mode).
		Str("format", cfg.Output.Format).
		Msg("Configuration loaded")
	return cfg, nil
}

// configFilePath returns the config file to load, or "" when there is none
func configFilePath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}

	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		if path, err := xdg.SearchConfigFile(filepath.Join("durp", name)); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps DURP_SECTION_KEY to section.key. DURP_NAME is the historical
// name of the marker setting.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if key == "name" {
		return "marker.name"
	}
	return strings.Replace(key, "_", ".", 1)
}

// envFileMap keeps the DURP_ entries of a .env file, keyed like the
// environment provider keys them.
func envFileMap(values map[string]string) map[string]interface{} {
	out := make(map[string]interface{})
	for name, value := range values {
		if !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		out[envKey(name)] = value
	}
	return out
}
