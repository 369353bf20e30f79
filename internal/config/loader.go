package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix namespaces environment overrides, e.g. NODEGEN_LOG_LEVEL.
const EnvPrefix = "NODEGEN_"

// tokenEnv is honoured without the prefix since the platform tooling already
// exports it.
const tokenEnv = "APIFY_TOKEN"

// Load resolves configuration. Precedence, lowest first: defaults, the
// APIFY_TOKEN variable, NODEGEN_* variables, then overrides keyed by dotted
// path (for example "output.format").
func Load(overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			if key == tokenEnv {
				return "apify.token", value
			}
			return "", nil
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load %s: %w", tokenEnv, err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return transformEnvKey(strings.TrimPrefix(key, EnvPrefix)), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	keys := make([]string, 0, len(overrides))
	for key := range overrides {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := k.Set(key, overrides[key]); err != nil {
			return nil, fmt.Errorf("config: override %s: %w", key, err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// transformEnvKey maps LOG_LEVEL to log.level and APIFY_RETRY_COUNT to
// apify.retry_count: the first segment is the section, the rest the field.
func transformEnvKey(s string) string {
	parts := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '_'
	})
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return parts[0] + "." + strings.Join(parts[1:], "_")
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Apify.BaseURL) == "" {
		errs = append(errs, errors.New("apify.base_url is required"))
	}
	if c.Apify.Timeout < 0 {
		errs = append(errs, errors.New("apify.timeout must not be negative"))
	}
	if c.Apify.RetryCount < 0 {
		errs = append(errs, errors.New("apify.retry_count must not be negative"))
	}
	if c.Apify.RetryWait < 0 {
		errs = append(errs, errors.New("apify.retry_wait must not be negative"))
	}
	if strings.TrimSpace(c.Output.Format) == "" {
		errs = append(errs, errors.New("output.format is required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
