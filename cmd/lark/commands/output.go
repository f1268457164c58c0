package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/lark-client/internal/constants"
	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

// renderOutput writes data in the --output format. fillTable is only called for
// table output.
func renderOutput(w io.Writer, data interface{}, fillTable func(table *tablewriter.Table)) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("failed to encode output as JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(constants.YAMLIndent)

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("failed to encode output as YAML: %w", err)
		}

		return encoder.Close()
	case constants.FormatTable, "":
		table := tablewriter.NewWriter(w)
		fillTable(table)

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedOutput, output)
	}
}

// envelopeData unwraps a call result, turning a non-zero platform code into an error.
func envelopeData[T any](env *lark.Envelope[T], err error) (*T, error) {
	if err != nil {
		return nil, err
	}

	err = env.Err()
	if err != nil {
		return nil, err
	}

	if env.Data == nil {
		return new(T), nil
	}

	return env.Data, nil
}

// collectPages drains an iterator, returning the first failure it stopped on.
func collectPages[T any](it *lark.PageIterator[T], action string) ([]*T, error) {
	pages, err := it.All()
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", action, err)
	}

	return pages, nil
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
