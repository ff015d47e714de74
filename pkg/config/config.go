// Package config provides dataset specification loading
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opendatacoop/epc2parquet/pkg/errors"
)

// DatasetSpec describes one logical dataset inside the archive: which
// members belong to it and where its parts are written.
type DatasetSpec struct {
	// DatasetID selects the override table in the schema catalog
	DatasetID string `yaml:"dataset"`
	// Pattern is the glob matched against full member paths
	Pattern string `yaml:"pattern"`
	// OutputDir is the subdirectory under the output root
	OutputDir string `yaml:"output_dir"`
}

// Config is the on-disk configuration format.
type Config struct {
	Datasets []DatasetSpec `yaml:"datasets"`
}

// DefaultDatasets returns the standard EPC extract layout: one
// certificates file and one recommendations file per authority directory.
func DefaultDatasets() []DatasetSpec {
	return []DatasetSpec{
		{
			DatasetID: "certificates",
			Pattern:   "*/certificates.csv",
			OutputDir: "certificates",
		},
		{
			DatasetID: "recommendations",
			Pattern:   "*/recommendations.csv",
			OutputDir: "recommendations",
		},
	}
}

// Load loads dataset specs from a YAML file, substituting ${VAR}
// references from the environment.
func Load(filePath string) ([]DatasetSpec, error) {
	data, err := os.ReadFile(filePath) //nolint:gosec // G304: path is caller-controlled
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to read config file").
			WithDetail("path", filePath)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(substituteEnvVars(string(data))), &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to parse YAML").
			WithDetail("path", filePath)
	}

	if err := Validate(cfg.Datasets); err != nil {
		return nil, err
	}
	return cfg.Datasets, nil
}

// Validate checks that every spec is complete.
func Validate(specs []DatasetSpec) error {
	if len(specs) == 0 {
		return errors.New(errors.ErrorTypeConfig, "no datasets configured")
	}
	for _, spec := range specs {
		if spec.DatasetID == "" || spec.Pattern == "" || spec.OutputDir == "" {
			return errors.New(errors.ErrorTypeConfig, "dataset spec needs dataset, pattern and output_dir").
				WithDetail("dataset", spec.DatasetID)
		}
	}
	return nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
func substituteEnvVars(content string) string {
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		varName := content[start+2 : end]
		envValue := os.Getenv(varName)
		content = content[:start] + envValue + content[end+1:]
	}
	return content
}
