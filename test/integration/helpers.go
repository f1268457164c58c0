//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	Domain    string
	AppID     string
	AppSecret string
	GroupID   string
	LarkPath  string
	Verbose   bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Domain:    os.Getenv("LARK_DOMAIN"),
		AppID:     os.Getenv("LARK_APP_ID"),
		AppSecret: os.Getenv("LARK_APP_SECRET"),
		GroupID:   os.Getenv("LARK_TEST_GROUP_ID"),
		LarkPath:  getLarkPath(),
		Verbose:   os.Getenv("LARK_VERBOSE") == "true",
	}
}

// getLarkPath determines the path to the lark binary.
func getLarkPath() string {
	if path := os.Getenv("LARK_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../lark", "./lark", "../lark"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "lark"
}

// SkipIfMissingCredentials skips the test when no app credentials are configured.
func (config *TestConfig) SkipIfMissingCredentials(t *testing.T) {
	t.Helper()

	if config.AppID == "" || config.AppSecret == "" {
		t.Skip("LARK_APP_ID or LARK_APP_SECRET not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips the test when the lark binary cannot be found.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.LarkPath); err != nil {
		t.Skipf("lark binary not found at %s, skipping integration test", config.LarkPath)
	}
}

// CommandRunner runs lark commands with the test credentials in the environment.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{config: config, t: t}
}

// Run executes a lark command and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.LarkPath, args...)
	cmd.Env = append(os.Environ(),
		"LARK_APP_ID="+runner.config.AppID,
		"LARK_APP_SECRET="+runner.config.AppSecret,
		"LARK_DOMAIN="+runner.config.Domain,
		"HOME="+runner.t.TempDir(),
	)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.LarkPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}
