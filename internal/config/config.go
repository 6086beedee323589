package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/baditaflorin/go_speech_wordcloud/internal/core/frequency"
	"github.com/baditaflorin/go_speech_wordcloud/internal/core/stopwords"
)

const envPrefix = "SPEECHCLOUD_"

type LogConfig struct {
	Verbose bool   `yaml:"verbose"`
	JSON    bool   `yaml:"json"`
	File    string `yaml:"file"`
}

type Config struct {
	InputDir        string    `yaml:"input_dir"`
	OutputParent    string    `yaml:"output_parent"`
	OutputDirLayout string    `yaml:"output_dir_layout"`
	OutputDirSuffix string    `yaml:"output_dir_suffix"`
	FontPath        string    `yaml:"font_path"`
	Stopwords       []string  `yaml:"stopwords"`
	ExtraStopwords  []string  `yaml:"extra_stopwords"`
	TopN            int       `yaml:"top_n"`
	MaxWords        int       `yaml:"max_words"`
	WarmUp          bool      `yaml:"warm_up"`
	Log             LogConfig `yaml:"log"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		InputDir:        "./speeches",
		OutputParent:    ".",
		OutputDirLayout: "2006-01-02-15-04",
		OutputDirSuffix: "-result",
		FontPath:        "./NotoSansJP-SemiBold.ttf",
		Stopwords:       append([]string(nil), stopwords.Defaults...),
		TopN:            frequency.DefaultTopN,
		MaxWords:        200,
	}
}

// Load reads an optional .env file from the working directory, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(), nil
}

// LoadFile reads the given dotenv files, then the environment. Variables already set
// in the environment win over file values.
func LoadFile(filenames ...string) (*Config, error) {
	if err := godotenv.Load(filenames...); err != nil {
		return nil, err
	}
	return FromEnv(), nil
}

// LoadYAML reads a YAML config file on top of Default. SPEECHCLOUD_* variables
// still override file values.
func LoadYAML(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return applyEnv(cfg), nil
}

// FromEnv applies SPEECHCLOUD_* variables on top of Default.
func FromEnv() *Config {
	return applyEnv(Default())
}

func applyEnv(cfg *Config) *Config {
	cfg.InputDir = getEnv("INPUT_DIR", cfg.InputDir)
	cfg.OutputParent = getEnv("OUTPUT_PARENT", cfg.OutputParent)
	cfg.OutputDirSuffix = getEnv("OUTPUT_SUFFIX", cfg.OutputDirSuffix)
	cfg.FontPath = getEnv("FONT_PATH", cfg.FontPath)
	cfg.Stopwords = getEnvList("STOPWORDS", cfg.Stopwords)
	cfg.ExtraStopwords = getEnvList("EXTRA_STOPWORDS", cfg.ExtraStopwords)
	cfg.TopN = getEnvInt("TOP_N", cfg.TopN)
	cfg.MaxWords = getEnvInt("MAX_WORDS", cfg.MaxWords)
	cfg.WarmUp = getEnvBool("WARM_UP", cfg.WarmUp)
	cfg.Log.Verbose = getEnvBool("LOG_VERBOSE", cfg.Log.Verbose)
	cfg.Log.JSON = getEnvBool("LOG_JSON", cfg.Log.JSON)
	cfg.Log.File = getEnv("LOG_FILE", cfg.Log.File)
	return cfg
}

func (c *Config) Validate() error {
	if c.InputDir == "" {
		return errors.New("input directory is required")
	}
	if c.FontPath == "" {
		return errors.New("font path is required")
	}
	if c.OutputDirLayout == "" {
		return errors.New("output directory layout is required")
	}
	if c.TopN <= 0 {
		return errors.New("top-n must be greater than 0")
	}
	if c.MaxWords <= 0 {
		return errors.New("max-words must be greater than 0")
	}
	return nil
}

// StopwordSet merges Stopwords and ExtraStopwords.
func (c *Config) StopwordSet() stopwords.Set {
	words := make([]string, 0, len(c.Stopwords)+len(c.ExtraStopwords))
	words = append(words, c.Stopwords...)
	words = append(words, c.ExtraStopwords...)
	return stopwords.New(words...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(envPrefix + key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(envPrefix + key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(envPrefix + key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
