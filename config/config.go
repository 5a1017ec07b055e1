package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDataPath                  = "data-path"
	ConfigLexiconPath               = "lexicon-path"
	ConfigLetterDistributionPath    = "letter-distribution-path"
	ConfigDefaultLexicon            = "default-lexicon"
	ConfigDefaultLetterDistribution = "default-letter-distribution"
	ConfigLexiconEncoding           = "lexicon-encoding"
	ConfigThreads                   = "threads"
	ConfigDebug                     = "debug"
	ConfigCPUProfile                = "cpu-profile"
	ConfigMemProfile                = "mem-profile"
	ConfigFile                      = "config"
)

var pathKeys = []string{ConfigDataPath, ConfigLexiconPath, ConfigLetterDistributionPath}

// Config wraps a viper instance. Settings come from, in increasing
// priority: defaults, an optional YAML config file, TILESMITH_* environment
// variables, and command-line flags.
type Config struct {
	*viper.Viper
	args []string
}

// DefaultConfig returns a config holding only the default values.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDataPath, "./data")
	c.SetDefault(ConfigLexiconPath, "./data/lexica")
	c.SetDefault(ConfigLetterDistributionPath, "./data/letterdistributions")
	c.SetDefault(ConfigDefaultLexicon, "CSW21")
	c.SetDefault(ConfigDefaultLetterDistribution, "english")
	c.SetDefault(ConfigLexiconEncoding, "utf-8")
	c.SetDefault(ConfigThreads, 1)
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigCPUProfile, "")
	c.SetDefault(ConfigMemProfile, "")
}

// Load parses the command-line arguments. Flags that are not recognized are
// left for the shell to interpret as a one-shot command.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	c.setDefaults()

	fs := pflag.NewFlagSet("tilesmith", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.String(ConfigDataPath, "./data", "directory holding data files")
	fs.String(ConfigLexiconPath, "./data/lexica", "directory holding lexicon files")
	fs.String(ConfigLetterDistributionPath, "./data/letterdistributions", "directory holding letter distribution files")
	fs.String(ConfigDefaultLexicon, "CSW21", "the default lexicon to use")
	fs.String(ConfigDefaultLetterDistribution, "english", "the default letter distribution to use. english, french, or a file name")
	fs.String(ConfigLexiconEncoding, "utf-8", "character encoding of lexicon files: utf-8 or latin-1")
	fs.Int(ConfigThreads, 1, "number of threads to generate moves with")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigCPUProfile, "", "file to write a CPU profile to")
	fs.String(ConfigMemProfile, "", "file to write a memory profile to")
	fs.String(ConfigFile, "", "YAML config file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.args = fs.Args()

	c.SetEnvPrefix("tilesmith")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if cfgFile := c.GetString(ConfigFile); cfgFile != "" {
		c.SetConfigFile(cfgFile)
		c.SetConfigType("yaml")
		if err := c.ReadInConfig(); err != nil {
			return err
		}
	}
	return nil
}

// Args returns the command-line arguments that are not flags.
func (c *Config) Args() []string {
	return c.args
}

// AdjustRelativePaths makes every relative path setting relative to
// basePath, usually the directory of the executable.
func (c *Config) AdjustRelativePaths(basePath string) {
	for _, key := range pathKeys {
		p := c.GetString(key)
		if p != "" && !filepath.IsAbs(p) {
			c.Set(key, filepath.Join(basePath, p))
		}
	}
}

// SanitizedSettings returns all settings, suitable for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
