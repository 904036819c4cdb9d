package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/klaybind/klaybind/internal/constants"
)

// sensitive information (not in configuration file)
const (
	EthPrivateKeyEnvVar = constants.EnvVarPrivateKey
	RpcURLEnvVar        = constants.EnvVarRpcURL
)

const loadEnvErrorMessage = "Not able to load configuration from .env file, skipping this optional step.\n" +
	"klaybind will read individual environment variables instead (they MUST be exported).\n" +
	"If .env location is not provided via the --env flag, the closest .env file in the current or a parent directory is used."

const bindEnvErrorMessage = "Not able to bind environment variables that represent sensitive data.\n" +
	"Commands that sign transactions will not work without " + EthPrivateKeyEnvVar + "."

// Settings holds user, project and transaction configuration.
type Settings struct {
	User    UserSettings
	Project ProjectSettings
	Tx      TxSettings
}

// UserSettings stores values that come from the environment.
type UserSettings struct {
	EthPrivateKey string
	RpcURL        string
}

// ProjectSettings mirrors klaybind.yaml.
type ProjectSettings struct {
	DefaultChain string        `mapstructure:"default-chain" yaml:"default-chain"`
	ContractsDir string        `mapstructure:"contracts-dir" yaml:"contracts-dir"`
	RPCs         []RpcEndpoint `mapstructure:"rpcs" yaml:"rpcs"`
}

type RpcEndpoint struct {
	ChainName string `mapstructure:"chain-name" yaml:"chain-name"`
	Url       string `mapstructure:"url" yaml:"url"`
}

// New loads .env, klaybind.yaml and klaybind.toml. Every source is optional.
func New(logger *zerolog.Logger, v *viper.Viper) (*Settings, error) {
	envPath := v.GetString(Flags.CliEnvFile.Name)
	if err := LoadEnv(envPath); err != nil {
		logger.Debug().Err(err).Msg(loadEnvErrorMessage)
	}

	if err := BindEnv(v); err != nil {
		logger.Debug().Err(err).Msg(bindEnvErrorMessage)
	}

	found, err := LoadSettingsIntoViper(v)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if !found {
		logger.Debug().Msgf("%s not found, using built-in network defaults", constants.DefaultProjectSettingsFileName)
	}

	var project ProjectSettings
	if err := v.Unmarshal(&project); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", constants.DefaultProjectSettingsFileName, err)
	}
	if project.ContractsDir == "" {
		project.ContractsDir = constants.DefaultContractsDir
	}
	if project.DefaultChain != "" && !IsValidChainName(project.DefaultChain) {
		return nil, fmt.Errorf("invalid default-chain %q in %s", project.DefaultChain, constants.DefaultProjectSettingsFileName)
	}
	for _, rpc := range project.RPCs {
		if !IsValidChainName(rpc.ChainName) {
			return nil, fmt.Errorf("invalid chain-name %q in rpcs of %s", rpc.ChainName, constants.DefaultProjectSettingsFileName)
		}
	}

	tx, err := LoadTxSettings(constants.DefaultTxSettingsFileName)
	if err != nil {
		return nil, err
	}

	return &Settings{
		User: UserSettings{
			EthPrivateKey: NormalizeHexKey(v.GetString(EthPrivateKeyEnvVar)),
			RpcURL:        strings.TrimSpace(v.GetString(RpcURLEnvVar)),
		},
		Project: project,
		Tx:      tx,
	}, nil
}

func BindEnv(v *viper.Viper) error {
	envVars := []string{
		EthPrivateKeyEnvVar,
		RpcURLEnvVar,
	}

	for _, variable := range envVars {
		if err := v.BindEnv(variable); err != nil {
			return fmt.Errorf("failed to bind environment variable: %s", variable)
		}
	}

	v.AutomaticEnv()
	return nil
}

func LoadEnv(envPath string) error {
	if envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading file from %s: %w", envPath, err)
			}
			return nil
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("error getting working directory: %w", err)
	}

	foundEnvPath, err := findEnvFile(cwd, constants.DefaultEnvFileName)
	if err != nil {
		return fmt.Errorf("error loading environment: %w", err)
	}

	if err := godotenv.Load(foundEnvPath); err != nil {
		return fmt.Errorf("error loading file from %s: %w", foundEnvPath, err)
	}
	return nil
}

func findEnvFile(startDir, fileName string) (string, error) {
	dir := startDir

	for {
		filePath := filepath.Join(dir, fileName)

		if info, err := os.Stat(filePath); err == nil && !info.IsDir() {
			return filePath, nil
		}

		parentDir := filepath.Dir(dir)
		if parentDir == dir {
			break
		}
		dir = parentDir
	}
	return "", fmt.Errorf("file %s not found in any parent directory starting from %s", fileName, startDir)
}

func NormalizeHexKey(k string) string {
	k = strings.TrimSpace(k)
	if len(k) >= 2 && (k[0:2] == "0x" || k[0:2] == "0X") {
		return k[2:]
	}
	return k
}
