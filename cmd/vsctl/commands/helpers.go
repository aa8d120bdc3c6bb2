package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/virtstack-io/vsapi-client/pkg/vsapi"
	"github.com/virtstack-io/vsapi-client/pkg/vsclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIEndpointRequired = errors.New("API endpoint is required (use --api or 'vsctl config set api <url>')")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
)

// createClient builds an API client from the effective configuration.
func createClient() (vsapi.Client, error) {
	endpoint := viper.GetString("api")
	if endpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	return vsclient.NewWithCredentials(endpoint, viper.GetString("token"), viper.GetString("license_key"))
}

// renderStructured writes data as JSON or YAML to stdout. It reports whether
// the configured output format was structured; table rendering stays with the
// caller otherwise.
func renderStructured(data interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(data)
		if err != nil {
			return true, fmt.Errorf("encoding to JSON: %w", err)
		}

		return true, nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		err := encoder.Encode(data)
		if err != nil {
			return true, fmt.Errorf("encoding to YAML: %w", err)
		}

		return true, nil
	default:
		return false, nil
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}
