package http

import (
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"sort"

	"github.com/spf13/cast"

	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

// EncodeQuery converts params to url.Values. Slices and arrays become repeated
// keys (k=a&k=b); nil values are dropped.
func EncodeQuery(params lark.Params) (url.Values, error) {
	values := url.Values{}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		value := params[key]
		if value == nil {
			continue
		}

		rv := reflect.ValueOf(value)

		if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() != reflect.Uint8 {
			for i := range rv.Len() {
				str, err := cast.ToStringE(rv.Index(i).Interface())
				if err != nil {
					return nil, fmt.Errorf("encoding query parameter %s[%d]: %w", key, i, err)
				}

				values.Add(key, str)
			}

			continue
		}

		str, err := cast.ToStringE(value)
		if err != nil {
			return nil, fmt.Errorf("encoding query parameter %s: %w", key, err)
		}

		values.Set(key, str)
	}

	return values, nil
}

var placeholderPattern = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)

// FillPath replaces every ":name" placeholder of template with the escaped value
// of values[name].
func FillPath(template string, values map[string]string) (string, error) {
	var missing string

	filled := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1:]

		value, ok := values[name]
		if !ok {
			if missing == "" {
				missing = name
			}

			return match
		}

		return url.PathEscape(value)
	})

	if missing != "" {
		return "", fmt.Errorf("%w: %s", lark.ErrMissingPathParam, missing)
	}

	return filled, nil
}
