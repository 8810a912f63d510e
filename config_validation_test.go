package preic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "preic.yaml")

	err := os.WriteFile(configPath, []byte(content), 0644)
	assert.NoError(t, err)

	return configPath
}

func TestLoadConfig_StrictMode_UnknownKeys(t *testing.T) {
	configPath := writeConfig(t, `
library_dir: "./basic"
unknown_key: "should cause error"
`)

	_, err := LoadConfig(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{
			name:    "label format",
			content: "label_format: xml\n",
			message: "invalid label_format 'xml'",
		},
		{
			name:    "optimisation name",
			content: "optimizations:\n  - remove_everything\n",
			message: "optimisation 'remove_everything'",
		},
		{
			name:    "processing name",
			content: "processing:\n  - upper_case\n",
			message: "processing 'upper_case'",
		},
		{
			name:    "empty define",
			content: "defines:\n  - \"\"\n",
			message: "empty pre-processing flag name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.IsError(t, err, ErrConfigValidation)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
library_dir: "./basic"
label_file: "labels.yaml"
label_format: yaml
defines:
  - DEBUG
optimizations:
  - remove_remarks
  - join_lines
processing:
  - short_variable_names
`)

	config, err := LoadConfig(configPath)
	assert.NoError(t, err)
	assert.Equal(t, &Config{
		LibraryDir:    "./basic",
		LabelFile:     "labels.yaml",
		LabelFormat:   LabelFormatYAML,
		Defines:       []string{"DEBUG"},
		Optimizations: []string{"remove_remarks", "join_lines"},
		Processing:    []string{"short_variable_names"},
	}, config)
}
