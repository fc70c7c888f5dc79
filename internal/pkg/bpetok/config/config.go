package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	CommandTrain  = "train"
	CommandEncode = "encode"
)

type Config struct {
	Command   string
	Text      string `mapstructure:"text"`
	InputFile string `mapstructure:"input_file"`
	Output    string `mapstructure:"output"`
	TablePath string `mapstructure:"table_path"`
	NumMerges int    `mapstructure:"num_merges"`
	PerLine   bool   `mapstructure:"per_line"`
	Normalize bool   `mapstructure:"normalize"`
	LogLevel  string `mapstructure:"log_level"`
	LogFile   string `mapstructure:"log_file"`
}

func LoadAndParse() (*Config, error) {
	return loadAndParse(os.Args[1:])
}

func loadAndParse(args []string) (*Config, error) {
	viper.SetDefault("table_path", "merges.txt")
	viper.SetDefault("num_merges", 256)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_file", "")

	flagSet := pflag.NewFlagSet("bpetok", pflag.ContinueOnError)
	configFile := flagSet.StringP("config", "c", "", "Path to config file")
	flagSet.StringP("text", "t", "", "Text to process (use '-' to read from stdin)")
	flagSet.StringP("file", "f", "", "Read text from file")
	flagSet.StringP("output", "o", "", "Output file (train: merge table, encode: token ids; default stdout for encode)")
	flagSet.String("table", "", "Path to merge table file")
	flagSet.IntP("merges", "n", 256, "Number of merges to learn (train)")
	flagSet.Bool("per-line", false, "Encode each input line independently")
	flagSet.Bool("normalize", false, "Apply Unicode NFC normalization to input text")
	flagSet.StringP("log-level", "l", "", "Log level (debug, info, warn, error)")
	flagSet.String("log-file", "", "Log file path")
	helpFlag := flagSet.BoolP("help", "h", false, "Show help message")

	if err := flagSet.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if *helpFlag {
		fmt.Fprintf(os.Stderr, "Usage: bpetok <train|encode> [options] [text]\n\nOptions:\n")
		flagSet.PrintDefaults()
		os.Exit(0)
	}

	if err := viper.BindPFlag("text", flagSet.Lookup("text")); err != nil {
		return nil, err
	}
	if err := viper.BindPFlag("input_file", flagSet.Lookup("file")); err != nil {
		return nil, err
	}
	if err := viper.BindPFlag("output", flagSet.Lookup("output")); err != nil {
		return nil, err
	}
	if err := viper.BindPFlag("table_path", flagSet.Lookup("table")); err != nil {
		return nil, err
	}
	if err := viper.BindPFlag("num_merges", flagSet.Lookup("merges")); err != nil {
		return nil, err
	}
	if err := viper.BindPFlag("per_line", flagSet.Lookup("per-line")); err != nil {
		return nil, err
	}
	if err := viper.BindPFlag("normalize", flagSet.Lookup("normalize")); err != nil {
		return nil, err
	}
	if err := viper.BindPFlag("log_level", flagSet.Lookup("log-level")); err != nil {
		return nil, err
	}
	if err := viper.BindPFlag("log_file", flagSet.Lookup("log-file")); err != nil {
		return nil, err
	}

	if *configFile != "" {
		viper.SetConfigFile(*configFile)
	} else {
		viper.SetConfigName("bpetok.cfg")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("configs")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bpetok"))
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	viper.SetEnvPrefix("BPETOK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		return nil, fmt.Errorf("command is required (train or encode)")
	}
	cfg.Command = rest[0]
	if cfg.Command != CommandTrain && cfg.Command != CommandEncode {
		return nil, fmt.Errorf("unknown command %q (want train or encode)", cfg.Command)
	}

	if cfg.Text == "" && cfg.InputFile == "" && len(rest) > 1 {
		cfg.Text = strings.Join(rest[1:], " ")
	}

	if cfg.Text == "" && cfg.InputFile == "" {
		return nil, fmt.Errorf("text is required (use -t, -f, or provide as argument)")
	}

	if cfg.NumMerges < 0 {
		return nil, fmt.Errorf("merges must be non-negative")
	}

	if cfg.Command == CommandTrain && cfg.Output == "" {
		cfg.Output = cfg.TablePath
	}

	return &cfg, nil
}
