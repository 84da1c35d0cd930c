// Package configuration loads model.Cfg from a YAML file named by an
// environment variable, the way the rest of the teacher codebase's
// services load configuration.
package configuration

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/rmatsuoka744/vc-system/pkg/helpers"
	"github.com/rmatsuoka744/vc-system/pkg/logger"
	"github.com/rmatsuoka744/vc-system/pkg/model"

	"github.com/creasty/defaults"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

type envVars struct {
	ConfigYAML string `envconfig:"VC_CONFIG_YAML"`
}

// New loads configuration. If VC_CONFIG_YAML is unset, defaults are
// used as-is — this service must be able to start with zero external
// configuration. If it is set, it must name a readable, non-directory
// file.
func New() (*model.Cfg, error) {
	log := logger.NewSimple("configuration")

	cfg := &model.Cfg{}
	if err := defaults.Set(cfg); err != nil {
		return nil, err
	}

	env := envVars{}
	if err := envconfig.Process("", &env); err != nil {
		return nil, err
	}

	if env.ConfigYAML != "" {
		log.Info("reading configuration file", "path", env.ConfigYAML)

		info, err := os.Stat(env.ConfigYAML)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			return nil, errors.New("VC_CONFIG_YAML points at a directory")
		}

		raw, err := os.ReadFile(filepath.Clean(env.ConfigYAML))
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, err
		}
	}

	if err := helpers.CheckSimple(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
