package resource

import (
	"log"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultPropertiesFile = "configs/application.yml"

var (
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// init loads an optional .env file and then the application properties from YAML
func init() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Fail to read .env file: %v", err)
	}

	path, explicit := Locate("PROPERTIES_FILE_PATH", defaultPropertiesFile)
	if path == "" {
		log.Printf("Properties file %s not found, using defaults", defaultPropertiesFile)
		return
	}
	if err := Init(path); err != nil && explicit {
		log.Fatalf("Fail to read properties: %v", err)
	}
}

// Locate resolves a configuration file. The env variable wins when set; otherwise rel is searched
// from the working directory upwards so that tests running inside package directories find the
// repository configs. The boolean reports whether the path came from the env variable.
func Locate(envName, rel string) (string, bool) {
	if value, ok := os.LookupEnv(envName); ok {
		return value, true
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, false
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Init (re)loads properties from the given YAML file.
func Init(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)

	next := viper.New()
	for key, value := range resolved {
		next.Set(key, value)
	}
	properties = next
	return nil
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			if resolved := resolveEnvVariable(v); resolved != nil {
				result[fullKey] = resolved
			}
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case []any:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces a ${ENV:default} value. Plain strings are returned unchanged.
func resolveEnvVariable(value string) any {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	envName := matches[1]
	defaultValue := ""
	if len(matches) > 2 {
		defaultValue = matches[2]
	}

	if envValue, exists := os.LookupEnv(envName); exists {
		return envPattern.ReplaceAllLiteralString(value, envValue)
	}
	if defaultValue != "" {
		return envPattern.ReplaceAllLiteralString(value, defaultValue)
	}
	return nil
}

// Set overrides a property at runtime.
func Set(key string, value any) {
	properties.Set(key, value)
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetInt64(key string) int64 {
	return properties.GetInt64(key)
}

func GetFloat64(key string) float64 {
	return properties.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
