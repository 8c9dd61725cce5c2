package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"talentscout/internal/ai"
	"talentscout/internal/ai/gemini"
	"talentscout/internal/ai/ollama"
	"talentscout/internal/logger"
	"talentscout/internal/secrets"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "talentscout"

	defaultQueryTimeout = 60 * time.Second
)

type Config struct {
	TranscriptFile string     `mapstructure:"transcript-file"`
	AI             *AIConfig  `mapstructure:"ai"`
	ATS            *ATSConfig `mapstructure:"ats"`
}

type AIConfig struct {
	Provider     string        `mapstructure:"provider"`
	QueryTimeout time.Duration `mapstructure:"query-timeout"`
	Gemini       *GeminiConfig `mapstructure:"gemini"`
	Ollama       *OllamaConfig `mapstructure:"ollama"`
}

type GeminiConfig struct {
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
	MaxRetries int    `mapstructure:"max-retries"`
}

type OllamaConfig struct {
	URL     string        `mapstructure:"url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type ATSConfig struct {
	DefaultRole string `mapstructure:"default-role"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "talentscout is a hiring assistant cli for candidate screening and resume ATS scoring",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is talentscout.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// A .env file may carry the API key. Missing files are fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional unless one was named explicitly.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.AI == nil {
		config.AI = &AIConfig{}
	}
	if config.AI.QueryTimeout <= 0 {
		config.AI.QueryTimeout = defaultQueryTimeout
	}
	if config.ATS == nil {
		config.ATS = &ATSConfig{}
	}

	return config, nil
}

// newGenerator builds the configured question generator. The default is a
// local ollama instance so the assistant works without any configuration.
func newGenerator(ctx context.Context, cfg *AIConfig, log *zap.Logger) (ai.Generator, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))

	switch provider {
	case "", "ollama":
		var url, model string
		var timeout time.Duration
		if cfg.Ollama != nil {
			url = cfg.Ollama.URL
			model = cfg.Ollama.Model
			timeout = cfg.Ollama.Timeout
		}

		client := ollama.New(url, model, timeout, log)
		return client, nil
	case "gemini":
		if cfg.Gemini == nil {
			cfg.Gemini = &GeminiConfig{}
		}

		apiKey, err := secrets.Load(secrets.Source{
			Name: "gemini api key",
			File: cfg.Gemini.APIKeyFile,
			Env:  "GEMINI_API_KEY",
		})
		if err != nil {
			return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
		}

		genLogger := logger.WithCommonFields(log, "gemini", cfg.Gemini.Model)
		return gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
}
