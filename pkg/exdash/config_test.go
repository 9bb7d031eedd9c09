package exdash

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	toml := writeConfig(t, "exdash.toml", `
input = "people.xlsx"
sheet = "Data"

[columns]
numeric = "Age"
categorical = "Gender"
datetime = "Joined"

[output]
dir = "out"
format = "svg"

[charts]
bins = 12
pie_top = 5
`)
	yaml := writeConfig(t, "exdash.yaml", `
input: people.xlsx
sheet: Data
columns:
  numeric: Age
  categorical: Gender
  datetime: Joined
output:
  dir: out
  format: svg
charts:
  bins: 12
  pie_top: 5
`)

	for _, path := range []string{toml, yaml} {
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig(%s) failed: %v", filepath.Base(path), err)
		}
		if cfg.Input != "people.xlsx" || cfg.Sheet != "Data" || cfg.Output.Format != "svg" {
			t.Errorf("%s: unexpected config %+v", filepath.Base(path), cfg)
		}

		sel := cfg.Selection()
		if dt, ok := sel.DatetimeColumn(); sel.Numeric != "Age" || sel.Categorical != "Gender" || !ok || dt != "Joined" {
			t.Errorf("%s: unexpected selection %+v", filepath.Base(path), sel)
		}
		if opts := cfg.LoadOptions(); opts.Sheet != "Data" || opts.Range != "" {
			t.Errorf("%s: unexpected load options %+v", filepath.Base(path), opts)
		}

		opts := cfg.RenderOptions()
		if opts.Bins != 12 || opts.PieTop != 5 || opts.BarTop != 10 || opts.GridWidth != 14 {
			t.Errorf("%s: unexpected render options %+v", filepath.Base(path), opts)
		}
		if cfg.ShouldShow() {
			t.Errorf("%s: expected no viewer when saving", filepath.Base(path))
		}
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := LoadConfig(writeConfig(t, "exdash.json", "{}")); err == nil {
		t.Error("Expected error for unsupported extension")
	}
	if _, err := LoadConfig(writeConfig(t, "bad.toml", "[columns\nnumeric =")); err == nil {
		t.Error("Expected error for malformed TOML")
	}
}

func TestConfigShouldShow(t *testing.T) {
	yes := true
	tests := []struct {
		cfg      Config
		expected bool
	}{
		{Config{}, true},
		{Config{Output: OutputConfig{Dir: "out"}}, false},
		{Config{Output: OutputConfig{Dir: "out", Show: &yes}}, true},
	}

	for _, tt := range tests {
		if result := tt.cfg.ShouldShow(); result != tt.expected {
			t.Errorf("ShouldShow(%+v) = %v, expected %v", tt.cfg.Output, result, tt.expected)
		}
	}

	// Datetime left empty means no line plot
	if _, ok := (&Config{}).Selection().DatetimeColumn(); ok {
		t.Error("Expected no datetime column")
	}
}
