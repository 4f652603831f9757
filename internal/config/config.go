package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"domainreport/constants"
	"domainreport/internal/common"
)

// Config holds all application configuration
type Config struct {
	Assembly   AssemblyConfig   `mapstructure:"assembly"`
	Transcript TranscriptConfig `mapstructure:"transcript"`
	IDs        IDsConfig        `mapstructure:"ids"`
	Domains    DomainsConfig    `mapstructure:"domains"`
	Output     OutputConfig     `mapstructure:"output"`
	Debug      DebugConfig      `mapstructure:"debug"`

	// path the configuration was loaded from, kept for error messages
	path string
}

// AssemblyConfig selects the genome assembly the annotation is queried against.
type AssemblyConfig struct {
	Version string `mapstructure:"version"`
}

// TranscriptConfig describes the input transcript list.
type TranscriptConfig struct {
	File      string `mapstructure:"file"`
	CSVSep    string `mapstructure:"csv_sep"`
	CSVColumn string `mapstructure:"csv_transcript_column"`
}

// IDsConfig toggles the optional cross-reference columns.
type IDsConfig struct {
	ShowGeneID     bool `mapstructure:"show_gene_id"`
	ShowGeneName   bool `mapstructure:"show_gene_name"`
	ShowProteinID  bool `mapstructure:"show_protein_id"`
	ShowUniProtID  bool `mapstructure:"show_uniprot_id"`
	ShowUniProtURL bool `mapstructure:"show_uniprot_url"`
}

// DomainsConfig holds the protein feature-type allow-list.
type DomainsConfig struct {
	UniProtFeatures []string `mapstructure:"uniprot_features"`
}

// OutputConfig describes the report layout and destination.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// DebugConfig holds the verbose/debug flag.
type DebugConfig struct {
	Enable bool `mapstructure:"enable"`
}

// Load reads the TOML configuration file at path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetDefault("transcript.csv_sep", ",")
	v.SetDefault("output.format", string(constants.FormatBasic))

	if err := v.ReadInConfig(); err != nil {
		return nil, common.NewAppError("CONFIG_ERROR", fmt.Sprintf("cannot read configuration file %s", path), err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, common.NewAppError("CONFIG_ERROR", fmt.Sprintf("cannot parse configuration file %s", path), err)
	}
	config.path = path
	return &config, nil
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string {
	if c.path == "" {
		return "configuration"
	}
	return c.path
}

// Format returns the canonical report format.
func (c *Config) Format() (constants.ReportFormat, bool) {
	return constants.ParseFormat(c.Output.Format)
}

// OutputExt returns the lowercased output file extension.
func (c *Config) OutputExt() string {
	return strings.ToLower(filepath.Ext(c.Output.File))
}

// ValidateConfig validates the loaded configuration. Every violation is fatal
// and reported before any lookup or output I/O happens.
func (c *Config) Validate() error {
	if _, ok := constants.AssemblyURLs[c.Assembly.Version]; !ok {
		return c.invalid("assembly.version",
			fmt.Sprintf("assembly version %q is not supported (supported: %s)",
				c.Assembly.Version, strings.Join(constants.Assemblies(), ", ")))
	}
	if _, ok := c.Format(); !ok {
		return c.invalid("output.format",
			fmt.Sprintf("output format %q is not supported (supported: %s)",
				c.Output.Format, strings.Join(constants.Formats(), ", ")))
	}
	if c.Transcript.File == "" {
		return c.invalid("transcript.file", "input transcript file is required")
	}
	if _, err := os.Stat(c.Transcript.File); err != nil {
		return c.invalid("transcript.file",
			fmt.Sprintf("cannot find input transcript file %s", c.Transcript.File))
	}
	inputExt := strings.ToLower(filepath.Ext(c.Transcript.File))
	if inputExt != ".txt" && inputExt != ".csv" {
		return c.invalid("transcript.file",
			fmt.Sprintf("input file %s is not supported (only .txt and .csv are supported)", c.Transcript.File))
	}
	if inputExt == ".csv" && c.Transcript.CSVColumn == "" {
		return c.invalid("transcript.csv_transcript_column",
			"the transcript column name is required for CSV input")
	}
	if len(c.Domains.UniProtFeatures) == 0 {
		return c.invalid("domains.uniprot_features",
			"at least one UniProt feature type is required")
	}
	switch ext := c.OutputExt(); ext {
	case ".csv":
		if format, _ := c.Format(); format == constants.FormatExpanded {
			return c.invalid("output.file",
				"CSV output is not supported for the expanded output format")
		}
	case ".xlsx", ".xls":
	default:
		return c.invalid("output.file",
			fmt.Sprintf("output file %s is not supported (only Excel and CSV are supported)", c.Output.File))
	}
	return nil
}

func (c *Config) invalid(key, message string) error {
	return common.NewAppError("CONFIG_ERROR",
		fmt.Sprintf("%s (please check %s, under %s)", message, c.Path(), key),
		common.ErrConfiguration)
}
