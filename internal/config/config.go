package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/muesli/reflow/indent"
	"github.com/shotsweep/shotsweep/internal/env"
	"github.com/shotsweep/shotsweep/internal/shell"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Core    Core    `yaml:"core"`
	Scan    Scan    `yaml:"scan"`
	UI      UI      `yaml:"ui"`
	Logging Logging `yaml:"logging"`
}

type Core struct {
	// TrashDir overrides the trash location. SHOTSWEEP_TRASH_DIR wins over it.
	TrashDir     string `yaml:"trash_dir"`
	HomeFallback bool   `yaml:"home_fallback"`
	Verbose      bool   `yaml:"verbose"`
}

type Scan struct {
	// Dir is the directory to look for screenshots in, the desktop when empty
	Dir           string   `yaml:"dir"`
	SortBy        string   `yaml:"sort_by" validate:"omitempty,oneof=name created_at modified_at size"`
	Descending    bool     `yaml:"descending"`
	Extensions    []string `yaml:"extensions" validate:"dive,startswith=."`
	Exclude       Exclude  `yaml:"exclude"`
	Within        string   `yaml:"within" validate:"validDuration"`
	VerifyContent bool     `yaml:"verify_content"`
}

type Exclude struct {
	Globs []string `yaml:"globs" validate:"dive,validGlob"`
	Size  Size     `yaml:"size"`
}

type Size struct {
	Min string `yaml:"min" validate:"validSize"`
	Max string `yaml:"max" validate:"validSize"`
}

type UI struct {
	Density     string `yaml:"density" validate:"required,oneof=compact spacious"`
	Paginator   string `yaml:"paginator_type" validate:"required,oneof=dots arabic"`
	Style       Style  `yaml:"style"`
	ExitMessage string `yaml:"exit_message"`
}

type Style struct {
	Cursor   string `yaml:"cursor" validate:"validColor"`
	Selected string `yaml:"selected" validate:"validColor"`
	Warning  string `yaml:"warning" validate:"validColor"`
}

type Logging struct {
	Level    string   `yaml:"level" validate:"required,oneof=debug info warn error"`
	Rotation Rotation `yaml:"rotation"`
}

type Rotation struct {
	MaxSize  string `yaml:"max_size" validate:"required,validSize"`
	MaxFiles int    `yaml:"max_files" validate:"gte=0"`
}

type configError struct {
	configPath string
	parser     parser
	err        error
}

func (e configError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Couldn't find the %q config file.\n", e.configPath)
	fmt.Fprintln(&b, "Please try again after creating it or specifying a valid config path.")
	fmt.Fprintf(&b, "The recommended config path is %s (default).\n", env.SHOTSWEEP_CONFIG_PATH)
	fmt.Fprintln(&b, "Example YAML file contents:")
	fmt.Fprintln(&b, "---")
	fmt.Fprint(&b, e.parser.getDefaultConfigContents())
	fmt.Fprintln(&b, "---")
	fmt.Fprintln(&b, "Original error:")
	fmt.Fprint(&b, indent.String(e.err.Error(), 2))
	return b.String()
}

func (e configError) Unwrap() error {
	return e.err
}

type parsingError struct {
	err error
}

func (e parsingError) Error() string {
	return fmt.Sprintf("failed to parse config: %v", e.err)
}

func (e parsingError) Unwrap() error {
	return e.err
}

type parser struct {
	validate *validator.Validate
}

func initParser() parser {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.Split(fld.Tag.Get("yaml"), ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("validSize", validateSize)
	_ = validate.RegisterValidation("validDuration", validateDuration)
	_ = validate.RegisterValidation("validColor", validateColor)
	_ = validate.RegisterValidation("validGlob", validateGlob)

	return parser{validate: validate}
}

func (p parser) getDefaultConfigContents() string {
	content, _ := yaml.Marshal(NewDefaultConfig())
	return string(content)
}

func (p parser) ensureDirExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		slog.Warn("creating directory as it does not exist", "dir", dirPath)
		if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
			return err
		}
	}
	return nil
}

// createConfigFile writes the default config to path unless a file is
// already there
func (p parser) createConfigFile(path string) error {
	if err := p.ensureDirExists(filepath.Dir(path)); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
	if errors.Is(err, os.ErrExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	slog.Warn("created config file as it did not exist", "config-file", path)
	_, err = f.WriteString(p.getDefaultConfigContents())
	return err
}

func (p parser) ensureConfigFile() (string, error) {
	path := env.SHOTSWEEP_CONFIG_PATH
	if err := p.createConfigFile(path); err != nil {
		return "", configError{
			configPath: path,
			parser:     p,
			err:        err,
		}
	}
	return path, nil
}

func (p parser) readConfigFile(path string) (Config, error) {
	cfg := *NewDefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, configError{
			configPath: path,
			parser:     p,
			err:        err,
		}
	}

	// keys missing from the file keep their defaults
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	if err := p.validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return cfg, fmt.Errorf("validation error: field %s, %q is invalid", verrs[0].Namespace(), verrs[0].Value())
		}
		return cfg, err
	}
	return cfg, nil
}

// resolvePaths expands "~" and variables and applies environment overrides
func (c *Config) resolvePaths() error {
	if env.SHOTSWEEP_TRASH_DIR != "" {
		c.Core.TrashDir = env.SHOTSWEEP_TRASH_DIR
	}

	for _, field := range []*string{&c.Core.TrashDir, &c.Scan.Dir} {
		if *field == "" {
			continue
		}
		expanded, err := shell.ExpandHome(*field)
		if err != nil {
			return err
		}
		abs, err := filepath.Abs(expanded)
		if err != nil {
			return err
		}
		*field = abs
	}

	if c.Scan.Dir == "" {
		dir, err := env.DesktopDir()
		if err != nil {
			return fmt.Errorf("failed to find desktop directory: %w", err)
		}
		c.Scan.Dir = dir
	}
	return nil
}

// Parse loads the config file at path. An empty path means the default
// location, where a config with default values is created when missing.
func Parse(path string) (Config, error) {
	parser := initParser()

	configPath := path
	if configPath == "" {
		var err error
		configPath, err = parser.ensureConfigFile()
		if err != nil {
			return Config{}, parsingError{err: err}
		}
	}
	slog.Debug("config file found", "config-file", configPath)

	cfg, err := parser.readConfigFile(configPath)
	if err != nil {
		return cfg, parsingError{err: err}
	}

	if err := cfg.resolvePaths(); err != nil {
		return cfg, parsingError{err: err}
	}
	return cfg, nil
}
