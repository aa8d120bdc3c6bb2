package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/virtstack-io/vsapi-client/internal/constants"
)

// Config represents the CLI configuration persisted to disk.
type Config struct {
	API        string `json:"api,omitempty" yaml:"api,omitempty"`
	Token      string `json:"token,omitempty" yaml:"token,omitempty"`
	LicenseKey string `json:"license_key,omitempty" yaml:"license_key,omitempty"`
	Output     string `json:"output" yaml:"output"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage vsctl configuration including the API endpoint and credentials",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigSetTokenCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with credentials masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			masked := *config
			if masked.Token != "" {
				masked.Token = "***"
			}

			if masked.LicenseKey != "" {
				masked.LicenseKey = "***"
			}

			structured, err := renderStructured(masked)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Key", "Value")
			_ = table.Append("api", masked.API)
			_ = table.Append("token", masked.Token)
			_ = table.Append("license_key", masked.LicenseKey)
			_ = table.Append("output", masked.Output)

			return table.Render()
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value and persist it to the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			config := loadConfig()

			switch key {
			case "api":
				config.API = value
			case "token":
				config.Token = value
			case "license_key":
				config.LicenseKey = value
			case "output":
				config.Output = value
			default:
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
			}

			err := saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Printf("Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			config := loadConfig()

			switch key {
			case "api":
				config.API = ""
			case "token":
				config.Token = ""
			case "license_key":
				config.LicenseKey = ""
			case "output":
				config.Output = ""
			default:
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
			}

			err := saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", key)

			return nil
		},
	}
}

func newConfigSetTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-token",
		Short: "Set the authentication token",
		Long:  "Prompt for the authentication token without echoing it to the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print("Token: ")

			byteToken, err := term.ReadPassword(int(syscall.Stdin))

			fmt.Println()

			if err != nil {
				return fmt.Errorf("reading token: %w", err)
			}

			config := loadConfig()
			config.Token = string(byteToken)

			err = saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Println("Token saved")

			return nil
		},
	}
}

func loadConfig() *Config {
	return &Config{
		API:        viper.GetString("api"),
		Token:      viper.GetString("token"),
		LicenseKey: viper.GetString("license_key"),
		Output:     viper.GetString("output"),
	}
}

func configFilePath() (string, error) {
	if cfgFile := viper.ConfigFileUsed(); cfgFile != "" {
		return cfgFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".vsctl", "config.yml"), nil
}

func saveConfig(config *Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	// The file holds credentials, keep it private.
	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
