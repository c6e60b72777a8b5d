package microhttp

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables LoadConfig reads, e.g.
// MICROHTTP_BASE_URL and MICROHTTP_TIMEOUT.
const envPrefix = "MICROHTTP"

// LoadConfig populates cfg from a YAML file, a .env file next to the
// working directory (when present), and MICROHTTP_* environment variables.
// Environment variables win over file values. An empty path skips the file
// and reads the environment only.
func LoadConfig(path string, cfg *Config) error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("microhttp: load .env: %w", err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Register keys so AutomaticEnv can resolve them without a config file.
	for _, key := range []string{"base_url", "timeout"} {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("microhttp: bind env %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("microhttp: read config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("microhttp: unmarshal config: %w", err)
	}
	return nil
}
