package config

import (
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Repo    string `yaml:"repo"`
	Level   string `yaml:"level"`
	Channel string `yaml:"channel"`
	Ref     string `yaml:"ref"`
	Message string `yaml:"message"`
	Token   string `yaml:"-"`
	DryRun  bool   `yaml:"-"`
	Output  string `yaml:"-"`
}

func Default() *Config {
	return &Config{
		Level:   "patch",
		Channel: "release",
		Ref:     "HEAD",
		Message: "Release %s",
		Output:  "text",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MergeFlags(cfg *Config, flags *pflag.FlagSet) *Config {
	if v, err := flags.GetString("repo"); err == nil && v != "" {
		cfg.Repo = v
	}
	if v, err := flags.GetString("level"); err == nil && v != "" {
		cfg.Level = v
	}
	if v, err := flags.GetString("channel"); err == nil && v != "" {
		cfg.Channel = v
	}
	if v, err := flags.GetString("ref"); err == nil && v != "" {
		cfg.Ref = v
	}
	if v, err := flags.GetString("github-token"); err == nil && v != "" {
		cfg.Token = v
	}
	if v, err := flags.GetString("output"); err == nil && v != "" {
		cfg.Output = v
	}
	if v, err := flags.GetBool("dry-run"); err == nil {
		cfg.DryRun = v
	}
	return cfg
}
