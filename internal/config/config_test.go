package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMainConfigMissingOptional(t *testing.T) {
	cfg, err := LoadMainConfig(filepath.Join(t.TempDir(), "config.yaml"), false)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, DefaultInputFile, cfg.InputFile)
	assert.Equal(t, DefaultOutputFile, cfg.OutputFile)
	assert.Equal(t, FormatCSV, cfg.OutputFormat)
	assert.Equal(t, DefaultSheetName, cfg.SheetName)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadMainConfigMissingRequired(t *testing.T) {
	_, err := LoadMainConfig(filepath.Join(t.TempDir(), "custom.yaml"), true)
	assert.Error(t, err)
}

func TestLoadMainConfigValues(t *testing.T) {
	path := writeConfig(t, `
input_file: in/items.csv
output_file: out/items.xlsx
output_format: XLSX
sheet_name: Items
log_level: Debug
`)

	cfg, err := LoadMainConfig(path, true)
	require.NoError(t, err)

	assert.Equal(t, "in/items.csv", cfg.InputFile)
	assert.Equal(t, "out/items.xlsx", cfg.OutputFile)
	assert.Equal(t, FormatXLSX, cfg.OutputFormat)
	assert.Equal(t, "Items", cfg.SheetName)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMainConfigPartialUsesDefaults(t *testing.T) {
	cfg, err := LoadMainConfig(writeConfig(t, "input_file: x.csv\n"), true)
	require.NoError(t, err)

	assert.Equal(t, "x.csv", cfg.InputFile)
	assert.Equal(t, DefaultOutputFile, cfg.OutputFile)
	assert.Equal(t, FormatCSV, cfg.OutputFormat)
}

func TestLoadMainConfigInvalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":   "input_file: [unterminated\n",
		"bad format": "output_format: json\n",
		"bad level":  "log_level: loud\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadMainConfig(writeConfig(t, content), true)
			assert.Error(t, err)
		})
	}
}

func TestValidateAfterOverrides(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.OutputFile = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateSheetName(t *testing.T) {
	tests := []struct {
		name    string
		sheet   string
		wantErr error
	}{
		{"default", DefaultSheetName, nil},
		{"31 characters", strings.Repeat("a", 31), nil},
		{"too long", strings.Repeat("a", 32), excelize.ErrSheetNameLength},
		{"slash", "Q1/Q2", excelize.ErrSheetNameInvalid},
		{"bracket", "Products[1]", excelize.ErrSheetNameInvalid},
		{"leading quote", "'Products", excelize.ErrSheetNameSingleQuote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.OutputFormat = FormatXLSX
			cfg.SheetName = tt.sheet

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateSheetNameIgnoredForCSV(t *testing.T) {
	cfg := Default()
	cfg.SheetName = "Q1/Q2"
	assert.NoError(t, cfg.Validate())
}

func TestLoadMainConfigRejectsBadSheetName(t *testing.T) {
	path := writeConfig(t, "output_format: xlsx\nsheet_name: \"a:b\"\n")

	_, err := LoadMainConfig(path, true)
	assert.ErrorIs(t, err, excelize.ErrSheetNameInvalid)
}
