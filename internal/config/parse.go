package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

func Parse(filename string) (cfg Config, err error) {
	_, err = toml.DecodeFile(filename, &cfg)
	return
}

// ParseAndValidate parses the file and validates the result.
func ParseAndValidate(filename string) (Config, error) {
	cfg, err := Parse(filename)
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %v", filename, err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate %s: %v", filename, err)
	}
	return cfg, nil
}
