package config

type Config struct {
	TrainPath string      `mapstructure:"train_path"`
	TestPath  string      `mapstructure:"test_path"`
	DataDir   string      `mapstructure:"data_dir"`
	Lexer     LexerConfig `mapstructure:"lexer"`
}

type LexerConfig struct {
	Stemmer     string `mapstructure:"stemmer"`
	StripMarkup bool   `mapstructure:"strip_markup"`
}
