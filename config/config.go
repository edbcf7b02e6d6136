package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging         LoggingConfig         `yaml:"logging"`
	LLM             LLMConfig             `yaml:"llm"`
	Suggestions     SuggestionsConfig     `yaml:"suggestions"`
	GenerationQuota GenerationQuotaConfig `yaml:"generation_quota"`
	Mongo           MongoConfig           `yaml:"mongo"`
	AdminEmails     []string              `yaml:"admin_emails"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// LLMConfig selects the text-generation provider and model used for
// suggestion passes.
type LLMConfig struct {
	Provider  string `yaml:"provider"`
	ModelName string `yaml:"model_name"`
}

// SuggestionsConfig tunes the suggestion engine without code changes.
// PlaceholderPatterns are regexes matched against generated titles; a match
// rejects the idea before canonicalization. The defaults cover the known
// failure mode of the provider echoing schema example ideas back.
type SuggestionsConfig struct {
	PlaceholderPatterns []string `yaml:"placeholder_patterns"`
}

// GenerationQuotaConfig bounds how often the generation provider may be
// called. Values of 0 or below mean no limit in that direction.
type GenerationQuotaConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	RequestsPerDay    int `yaml:"requests_per_day"`
}

type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// IsAdminEmail reports whether the given e-mail is on the configured admin
// allowlist. The allowlist is explicit configuration, never a hardcoded
// literal.
func IsAdminEmail(email string) bool {
	if email == "" {
		return false
	}
	for _, e := range GetConfig().AdminEmails {
		if e == email {
			return true
		}
	}
	return false
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
