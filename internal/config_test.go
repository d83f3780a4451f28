package internal

import "testing"

func validConfig() *Config {
	cfg := NewDefaultConfig()
	cfg.Vault.Path = "./notes"
	cfg.Export.CSVPath = "./report.csv"
	return cfg
}

func TestValidate_Defaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestValidate_VaultPathRequired(t *testing.T) {
	cfg := validConfig()
	cfg.Vault.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty vault path")
	}
}

func TestValidate_CSVPathRequiredOnlyWhenWriting(t *testing.T) {
	cfg := validConfig()
	cfg.Export.CSVPath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error: CSV enabled but no path")
	}

	cfg.Export.NoCSV = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("no-csv run should not need a CSV path: %v", err)
	}

	cfg.Export.NoCSV = false
	cfg.Export.DryRun = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("dry run should not need a CSV path: %v", err)
	}
}

func TestValidate_SelectionBounds(t *testing.T) {
	cfg := validConfig()
	cfg.Selection.TopPercent = 150
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for top percent above 100")
	}

	cfg = validConfig()
	cfg.Selection.Top = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative top count")
	}

	cfg = validConfig()
	cfg.Selection.MaxSizeMB = -0.5
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative size budget")
	}
}

func TestMaxBytes(t *testing.T) {
	cfg := SelectionConfig{MaxSizeMB: 2}
	if got := cfg.MaxBytes(); got != 2*1024*1024 {
		t.Errorf("MaxBytes = %d, want %d", got, 2*1024*1024)
	}
	cfg = SelectionConfig{}
	if got := cfg.MaxBytes(); got != 0 {
		t.Errorf("MaxBytes = %d, want 0 when unset", got)
	}
}
