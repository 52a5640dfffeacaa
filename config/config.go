package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	DefaultTrainPath = "film-genres-train.tsv"
	DefaultTestPath  = "film-genres-test.tsv"
	DefaultDataDir   = "data"
)

// LoadConfig reads <filename>.yaml from the given directories, or the working
// directory when none are given. Keys missing from the file keep their defaults.
func LoadConfig(filename string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	defaults := GetDefaultConfig()
	v.SetDefault("train_path", defaults.TrainPath)
	v.SetDefault("test_path", defaults.TestPath)
	v.SetDefault("data_dir", defaults.DataDir)
	v.SetDefault("lexer.stemmer", defaults.Lexer.Stemmer)
	v.SetDefault("lexer.strip_markup", defaults.Lexer.StripMarkup)

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("cannot read the file %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error reading the config file %w", err)
	}
	return &config, nil
}

func GetDefaultConfig() *Config {
	return &Config{
		TrainPath: DefaultTrainPath,
		TestPath:  DefaultTestPath,
		DataDir:   DefaultDataDir,
		Lexer: LexerConfig{
			Stemmer:     "",
			StripMarkup: false,
		},
	}
}
