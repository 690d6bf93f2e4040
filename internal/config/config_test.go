package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

// writeConfig writes content to dir/name and returns the path.
func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if got := strings.Join(cfg.Inputs.Files, ","); got != "HM_スキルシート.md,README.md" {
		t.Errorf("Inputs.Files = %q", got)
	}
	if got := strings.Join(cfg.Inputs.Workbook, ","); got != "HM_スキルシート.md" {
		t.Errorf("Inputs.Workbook = %q", got)
	}
	if cfg.Output.Dir != "" {
		t.Errorf("Output.Dir = %q, want empty", cfg.Output.Dir)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "console" {
		t.Errorf("Log = %+v, want info/console", cfg.Log)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value is valid", "", 10, false},
		{"value at limit is valid", "1234567890", 10, false},
		{"value over limit", "12345678901", 10, true},
		{"multibyte counted in bytes", "日本語", 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("field", tt.value, tt.maxLength)
			if tt.wantErr != (err != nil) {
				t.Fatalf("validateFieldLength() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrFieldTooLong) {
				t.Errorf("error = %v, want ErrFieldTooLong", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - value checks the YAML decoder cannot express
// ---------------------------------------------------------------------------
//
// Notes:
//   - every case starts from DefaultConfig so only the modified field fails
//   - zero values mean "use the default" and must always pass
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:   "zero config",
			modify: func(c *Config) { *c = Config{} },
		},
		{
			name: "full valid config",
			modify: func(c *Config) {
				c.Word = WordConfig{HeadingSizes: []float64{18, 15}, HyperlinkColor: "0563c1", PageSize: "Letter", Margin: 0.75}
				c.Excel.HeaderFillColor = "1F4E78"
				c.PDF = PDFConfig{PageSize: "a4", MarginMM: 15, Timeout: "45s"}
				c.Log = LogConfig{Level: "DEBUG", Format: "json"}
				c.Vocabulary.Projects.TitleLevel = 3
			},
		},
		{
			name:    "invalid header color",
			modify:  func(c *Config) { c.Excel.HeaderFontColor = "#FFFFFF" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "invalid hyperlink color",
			modify:  func(c *Config) { c.Word.HyperlinkColor = "blue" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "invalid word page size",
			modify:  func(c *Config) { c.Word.PageSize = "b5" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "invalid pdf page size",
			modify:  func(c *Config) { c.PDF.PageSize = "tabloid" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative word margin",
			modify:  func(c *Config) { c.Word.Margin = -1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative pdf margin",
			modify:  func(c *Config) { c.PDF.MarginMM = -5 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "too many heading sizes",
			modify:  func(c *Config) { c.Word.HeadingSizes = []float64{1, 2, 3, 4, 5} },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "unparsable timeout",
			modify:  func(c *Config) { c.PDF.Timeout = "soon" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative timeout",
			modify:  func(c *Config) { c.PDF.Timeout = "-1s" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "unknown log format",
			modify:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "title level out of range",
			modify:  func(c *Config) { c.Vocabulary.Projects.TitleLevel = 7 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "sheet name over Excel limit",
			modify:  func(c *Config) { c.Excel.Sheets.Projects.Name = strings.Repeat("表", MaxSheetNameLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "heading too long",
			modify:  func(c *Config) { c.Vocabulary.BasicInfo = "## " + strings.Repeat("x", MaxHeadingLength) },
			wantErr: ErrFieldTooLong,
		},
		{
			name: "category label too long",
			modify: func(c *Config) {
				c.Vocabulary.SkillCategories = []CategoryConfig{{Label: strings.Repeat("x", MaxLabelLength+1), Heading: "### x"}}
			},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "project metadata label too long",
			modify:  func(c *Config) { c.Vocabulary.Projects.Period = strings.Repeat("x", MaxLabelLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "html title too long",
			modify:  func(c *Config) { c.HTML.Title = strings.Repeat("x", MaxTitleLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name: "too many input files",
			modify: func(c *Config) {
				c.Inputs.Files = make([]string, MaxInputFiles+1)
			},
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPDFConfig_TimeoutDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		timeout string
		want    time.Duration
		wantErr bool
	}{
		{"", 0, false},
		{"45s", 45 * time.Second, false},
		{"2m", 2 * time.Minute, false},
		{"0s", 0, true},
		{"later", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.timeout, func(t *testing.T) {
			t.Parallel()

			got, err := PDFConfig{Timeout: tt.timeout}.TimeoutDuration()
			if tt.wantErr != (err != nil) {
				t.Fatalf("TimeoutDuration() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("TimeoutDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - file lookup, strict decoding and defaults
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("loads every section", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "full.yaml", `inputs:
  files: ["resume.md"]
output:
  dir: "out"
vocabulary:
  basicInfo: "## Basic Info"
  skillCategories:
    - label: "Languages"
      heading: "### Languages"
  projects:
    titleLevel: 3
    period: "Period:"
word:
  fontFamily: "Meiryo"
  headingSizes: [18, 15]
excel:
  headerFillColor: "1F4E78"
  sheets:
    projects:
      name: "Projects"
html:
  title: "Skill Sheet"
pdf:
  marginMM: 15
  footer: false
  timeout: "1m"
assets:
  basePath: "assets"
log:
  level: "debug"
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}

		checks := []struct {
			field string
			got   any
			want  any
		}{
			{"inputs.files", strings.Join(cfg.Inputs.Files, ","), "resume.md"},
			{"inputs.workbook (default)", strings.Join(cfg.Inputs.Workbook, ","), "HM_スキルシート.md"},
			{"output.dir", cfg.Output.Dir, "out"},
			{"vocabulary.basicInfo", cfg.Vocabulary.BasicInfo, "## Basic Info"},
			{"vocabulary.skillCategories", len(cfg.Vocabulary.SkillCategories), 1},
			{"vocabulary.projects.period", cfg.Vocabulary.Projects.Period, "Period:"},
			{"word.fontFamily", cfg.Word.FontFamily, "Meiryo"},
			{"word.headingSizes", len(cfg.Word.HeadingSizes), 2},
			{"excel.headerFillColor", cfg.Excel.HeaderFillColor, "1F4E78"},
			{"excel.sheets.projects.name", cfg.Excel.Sheets.Projects.Name, "Projects"},
			{"html.title", cfg.HTML.Title, "Skill Sheet"},
			{"pdf.marginMM", cfg.PDF.MarginMM, 15.0},
			{"pdf.footer set", cfg.PDF.Footer != nil, true},
			{"assets.basePath", cfg.Assets.BasePath, "assets"},
			{"log.level", cfg.Log.Level, "debug"},
			{"log.format (default)", cfg.Log.Format, "console"},
		}
		for _, c := range checks {
			if c.got != c.want {
				t.Errorf("%s = %v, want %v", c.field, c.got, c.want)
			}
		}
		if cfg.PDF.Footer != nil && *cfg.PDF.Footer {
			t.Error("pdf.footer = true, want false")
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "invalid.yaml", "html: [unclosed")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "unknown.yaml", "html:\n  title: x\n  theme: dark\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value fails validation", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "color.yaml", "excel:\n  headerFillColor: \"navy\"\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestLoadConfig_ByName - search order for bare config names
// ---------------------------------------------------------------------------
//
// Notes:
//   - changes the working directory and XDG_CONFIG_HOME, so not parallel
// ---------------------------------------------------------------------------

func TestLoadConfig_ByName(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only drives os.UserConfigDir on Linux")
	}

	work := t.TempDir()
	xdg := t.TempDir()
	t.Chdir(work)
	t.Setenv("XDG_CONFIG_HOME", xdg)

	writeConfig(t, work, "local.yml", "html:\n  title: local\n")
	writeConfig(t, xdg, filepath.Join("go-skillsheet", "shared.yaml"), "html:\n  title: shared\n")

	t.Run("current directory", func(t *testing.T) {
		cfg, err := LoadConfig("local")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.HTML.Title != "local" {
			t.Errorf("HTML.Title = %q, want local", cfg.HTML.Title)
		}
	})

	t.Run("user config directory", func(t *testing.T) {
		cfg, err := LoadConfig("shared")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.HTML.Title != "shared" {
			t.Errorf("HTML.Title = %q, want shared", cfg.HTML.Title)
		}
	})

	t.Run("missing name lists tried paths", func(t *testing.T) {
		_, err := LoadConfig("absent")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "absent.yaml") || !strings.Contains(err.Error(), "go-skillsheet") {
			t.Errorf("error %q should list tried paths", err)
		}
	})
}
