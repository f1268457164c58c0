package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/lark-client/internal/constants"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// resetViper points viper at a config file in a fresh temp dir and returns its path.
func resetViper(t *testing.T) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), constants.ConfigFileName)
	viper.SetConfigFile(configFile)

	return configFile
}

// runCommand executes cmd with args the way the root command would: the config file
// is read first.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	_ = viper.ReadInConfig()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

// newAPIServer serves the tenant token endpoint and delegates every other path to
// handler. The client is configured to use it.
func newAPIServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path == constants.APIPathTenantAccessTokenInternal {
			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`{"code":0,"msg":"ok","tenant_access_token":"t-cli","expire":7200}`))

			return
		}

		handler(writer, request)
	}))
	t.Cleanup(server.Close)

	viper.Set("domain", server.URL)
	viper.Set("app_id", "cli_test")
	viper.Set("app_secret", "secret")
}

func writeJSON(writer http.ResponseWriter, body string) {
	writer.Header().Set("Content-Type", "application/json")
	_, _ = writer.Write([]byte(body))
}

func requireNoError(t *testing.T, out string, err error) {
	t.Helper()
	require.NoError(t, err, out)
}
