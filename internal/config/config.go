package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-skillsheet/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength      = 4096
	MaxHeadingLength   = 200 // "## 📈 職歴・プロジェクト経験（時系列順）"
	MaxLabelLength     = 100 // category and metadata labels
	MaxTitleLength     = 200 // HTML <title>
	MaxFontLength      = 100
	MaxSheetNameLength = 31 // Excel limit
	MaxColumnLength    = 100
	MaxLangLength      = 35 // BCP 47
	MaxStyleLength     = 4096
	MaxInputFiles      = 100
)

// Config holds every setting the CLI reads from YAML.
// Zero values mean "use the built-in default".
type Config struct {
	Inputs     InputsConfig     `yaml:"inputs"`
	Output     OutputConfig     `yaml:"output"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Word       WordConfig       `yaml:"word"`
	Excel      ExcelConfig      `yaml:"excel"`
	HTML       HTMLConfig       `yaml:"html"`
	PDF        PDFConfig        `yaml:"pdf"`
	Assets     AssetsConfig     `yaml:"assets"`
	Log        LogConfig        `yaml:"log"`
}

// InputsConfig lists the files converted when none are given on the command line.
type InputsConfig struct {
	Files    []string `yaml:"files"`    // docx, html, pdf, inspect
	Workbook []string `yaml:"workbook"` // xlsx
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // empty = next to the source
}

// VocabularyConfig overrides section headings. Unset fields keep the default.
type VocabularyConfig struct {
	BasicInfo       string                  `yaml:"basicInfo"`
	Specialties     string                  `yaml:"specialties"`
	SpecialtyAreas  string                  `yaml:"specialtyAreas"`
	SpecialtyGroups []CategoryConfig        `yaml:"specialtyGroups"`
	SkillCategories []CategoryConfig        `yaml:"skillCategories"`
	SelfPR          string                  `yaml:"selfPR"`
	Projects        ProjectVocabularyConfig `yaml:"projects"`
	Responsibility  string                  `yaml:"responsibility"`
	Strengths       string                  `yaml:"strengths"`
}

// CategoryConfig pairs a display label with its section heading.
type CategoryConfig struct {
	Label   string `yaml:"label"`
	Heading string `yaml:"heading"`
}

// ProjectVocabularyConfig overrides the project history headings and labels.
type ProjectVocabularyConfig struct {
	Heading      string `yaml:"heading"`
	TitleLevel   int    `yaml:"titleLevel"`
	Period       string `yaml:"period"`
	Industry     string `yaml:"industry"`
	Employment   string `yaml:"employment"`
	TeamSize     string `yaml:"teamSize"`
	Technologies string `yaml:"technologies"`
	Overview     string `yaml:"overview"`
	Duties       string `yaml:"duties"`
	Skills       string `yaml:"skills"`
	Achievements string `yaml:"achievements"`
}

// WordConfig overrides the Word document style. Sizes are in points.
type WordConfig struct {
	FontFamily     string    `yaml:"fontFamily"`
	CodeFontFamily string    `yaml:"codeFontFamily"`
	HeadingSizes   []float64 `yaml:"headingSizes"` // up to four, level 1 first
	BodySize       float64   `yaml:"bodySize"`
	TableSize      float64   `yaml:"tableSize"`
	CodeSize       float64   `yaml:"codeSize"`
	HyperlinkColor string    `yaml:"hyperlinkColor"`
	PageSize       string    `yaml:"pageSize"`
	Margin         float64   `yaml:"margin"` // inches
}

// ExcelConfig overrides the workbook header colors and sheet layouts.
type ExcelConfig struct {
	HeaderFontColor string       `yaml:"headerFontColor"`
	HeaderFillColor string       `yaml:"headerFillColor"`
	Sheets          SheetsConfig `yaml:"sheets"`
}

// SheetsConfig holds one entry per worksheet.
type SheetsConfig struct {
	BasicInfo      SheetConfig `yaml:"basicInfo"`
	Specialties    SheetConfig `yaml:"specialties"`
	Skills         SheetConfig `yaml:"skills"`
	SelfPR         SheetConfig `yaml:"selfPR"`
	Projects       SheetConfig `yaml:"projects"`
	Responsibility SheetConfig `yaml:"responsibility"`
	Strengths      SheetConfig `yaml:"strengths"`
}

// SheetConfig overrides a worksheet name, header cells or column widths.
type SheetConfig struct {
	Name    string    `yaml:"name"`
	Columns []string  `yaml:"columns"`
	Widths  []float64 `yaml:"widths"`
}

// HTMLConfig overrides the HTML document.
type HTMLConfig struct {
	Title string `yaml:"title"`
	Lang  string `yaml:"lang"`
	Style string `yaml:"style"` // embedded name, CSS file path, or inline CSS
}

// PDFConfig overrides PDF page layout and rendering.
type PDFConfig struct {
	PageSize string  `yaml:"pageSize"`
	MarginMM float64 `yaml:"marginMM"`
	Footer   *bool   `yaml:"footer"`  // nil = enabled
	Timeout  string  `yaml:"timeout"` // Go duration, e.g. "45s"
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets only
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // zerolog level name
	Format string `yaml:"format"` // "console" or "json"
}

// TimeoutDuration parses PDF.Timeout. Zero means unset.
func (p PDFConfig) TimeoutDuration() (time.Duration, error) {
	if p.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: pdf.timeout %q: %v", ErrInvalidValue, p.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: pdf.timeout must be positive, got %s", ErrInvalidValue, d)
	}
	return d, nil
}

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

var pageSizes = map[string]bool{"a4": true, "letter": true, "legal": true}

// Validate checks field lengths and the values the YAML decoder cannot.
// Structural checks (duplicate sheet names, heading syntax) happen when the
// converter is built.
func (c *Config) Validate() error {
	v := &validator{}

	if len(c.Inputs.Files) > MaxInputFiles || len(c.Inputs.Workbook) > MaxInputFiles {
		v.fail(fmt.Errorf("%w: inputs: more than %d files", ErrInvalidValue, MaxInputFiles))
	}
	for i, f := range c.Inputs.Files {
		v.length(fmt.Sprintf("inputs.files[%d]", i), f, MaxPathLength)
	}
	for i, f := range c.Inputs.Workbook {
		v.length(fmt.Sprintf("inputs.workbook[%d]", i), f, MaxPathLength)
	}
	v.length("output.dir", c.Output.Dir, MaxPathLength)
	v.length("assets.basePath", c.Assets.BasePath, MaxPathLength)

	c.Vocabulary.validate(v)
	c.Word.validate(v)
	c.Excel.validate(v)

	v.length("html.title", c.HTML.Title, MaxTitleLength)
	v.length("html.lang", c.HTML.Lang, MaxLangLength)
	v.length("html.style", c.HTML.Style, MaxStyleLength)

	v.pageSize("pdf.pageSize", c.PDF.PageSize)
	if c.PDF.MarginMM < 0 {
		v.fail(fmt.Errorf("%w: pdf.marginMM must not be negative", ErrInvalidValue))
	}
	if _, err := c.PDF.TimeoutDuration(); err != nil {
		v.fail(err)
	}

	if c.Log.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
			v.fail(fmt.Errorf("%w: log.level %q", ErrInvalidValue, c.Log.Level))
		}
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		v.fail(fmt.Errorf("%w: log.format %q (must be console or json)", ErrInvalidValue, c.Log.Format))
	}

	return v.err
}

func (vc VocabularyConfig) validate(v *validator) {
	v.length("vocabulary.basicInfo", vc.BasicInfo, MaxHeadingLength)
	v.length("vocabulary.specialties", vc.Specialties, MaxHeadingLength)
	v.length("vocabulary.specialtyAreas", vc.SpecialtyAreas, MaxLabelLength)
	v.categories("vocabulary.specialtyGroups", vc.SpecialtyGroups)
	v.categories("vocabulary.skillCategories", vc.SkillCategories)
	v.length("vocabulary.selfPR", vc.SelfPR, MaxHeadingLength)
	v.length("vocabulary.responsibility", vc.Responsibility, MaxHeadingLength)
	v.length("vocabulary.strengths", vc.Strengths, MaxHeadingLength)

	p := vc.Projects
	if p.TitleLevel < 0 || p.TitleLevel > 6 {
		v.fail(fmt.Errorf("%w: vocabulary.projects.titleLevel must be between 1 and 6, got %d", ErrInvalidValue, p.TitleLevel))
	}
	headings := []struct{ field, value string }{
		{"heading", p.Heading},
		{"technologies", p.Technologies},
		{"overview", p.Overview},
		{"duties", p.Duties},
		{"skills", p.Skills},
		{"achievements", p.Achievements},
	}
	for _, h := range headings {
		v.length("vocabulary.projects."+h.field, h.value, MaxHeadingLength)
	}
	labels := []struct{ field, value string }{
		{"period", p.Period},
		{"industry", p.Industry},
		{"employment", p.Employment},
		{"teamSize", p.TeamSize},
	}
	for _, l := range labels {
		v.length("vocabulary.projects."+l.field, l.value, MaxLabelLength)
	}
}

func (w WordConfig) validate(v *validator) {
	v.length("word.fontFamily", w.FontFamily, MaxFontLength)
	v.length("word.codeFontFamily", w.CodeFontFamily, MaxFontLength)
	if len(w.HeadingSizes) > 4 {
		v.fail(fmt.Errorf("%w: word.headingSizes has %d entries (max 4)", ErrInvalidValue, len(w.HeadingSizes)))
	}
	v.color("word.hyperlinkColor", w.HyperlinkColor)
	v.pageSize("word.pageSize", w.PageSize)
	if w.Margin < 0 {
		v.fail(fmt.Errorf("%w: word.margin must not be negative", ErrInvalidValue))
	}
}

func (e ExcelConfig) validate(v *validator) {
	v.color("excel.headerFontColor", e.HeaderFontColor)
	v.color("excel.headerFillColor", e.HeaderFillColor)

	sheets := []struct {
		field string
		sheet SheetConfig
	}{
		{"basicInfo", e.Sheets.BasicInfo},
		{"specialties", e.Sheets.Specialties},
		{"skills", e.Sheets.Skills},
		{"selfPR", e.Sheets.SelfPR},
		{"projects", e.Sheets.Projects},
		{"responsibility", e.Sheets.Responsibility},
		{"strengths", e.Sheets.Strengths},
	}
	for _, s := range sheets {
		prefix := "excel.sheets." + s.field
		if len([]rune(s.sheet.Name)) > MaxSheetNameLength {
			v.fail(fmt.Errorf("%w: %s.name (%d chars, max %d)", ErrFieldTooLong, prefix, len([]rune(s.sheet.Name)), MaxSheetNameLength))
		}
		for i, col := range s.sheet.Columns {
			v.length(fmt.Sprintf("%s.columns[%d]", prefix, i), col, MaxColumnLength)
		}
	}
}

// validator records the first failure.
type validator struct {
	err error
}

func (v *validator) fail(err error) {
	if v.err == nil {
		v.err = err
	}
}

func (v *validator) length(field, value string, maxLength int) {
	if err := validateFieldLength(field, value, maxLength); err != nil {
		v.fail(err)
	}
}

func (v *validator) color(field, value string) {
	if value != "" && !hexColor.MatchString(value) {
		v.fail(fmt.Errorf("%w: %s %q (want RRGGBB)", ErrInvalidValue, field, value))
	}
}

func (v *validator) pageSize(field, value string) {
	if value != "" && !pageSizes[strings.ToLower(value)] {
		v.fail(fmt.Errorf("%w: %s %q (must be a4, letter, or legal)", ErrInvalidValue, field, value))
	}
}

func (v *validator) categories(field string, cats []CategoryConfig) {
	for i, c := range cats {
		v.length(fmt.Sprintf("%s[%d].label", field, i), c.Label, MaxLabelLength)
		v.length(fmt.Sprintf("%s[%d].heading", field, i), c.Heading, MaxHeadingLength)
	}
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the built-in input list with every other field unset.
func DefaultConfig() *Config {
	return &Config{
		Inputs: InputsConfig{
			Files:    []string{"HM_スキルシート.md", "README.md"},
			Workbook: []string{"HM_スキルシート.md"},
		},
		Log: LogConfig{Level: "info", Format: "console"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// A name containing a path separator is read as a file; otherwise it is
// searched in standard locations. Missing inputs and log settings are filled
// from DefaultConfig.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// fillDefaults copies DefaultConfig values into unset input and log fields.
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if len(c.Inputs.Files) == 0 {
		c.Inputs.Files = def.Inputs.Files
	}
	if len(c.Inputs.Workbook) == 0 {
		c.Inputs.Workbook = def.Inputs.Workbook
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-skillsheet/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-skillsheet", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
