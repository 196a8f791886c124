package cli

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// ConfigFiles are the configuration files read at startup, in order. Missing
// files are skipped and flags given on the command line always win.
var ConfigFiles = []string{".au3.yaml", "~/.config/au3/config.yaml"}

// YAMLConfig is a kong.ConfigurationLoader for YAML files. A flag is looked
// up under the name of the command that declares it, then at the top level:
//
//	log-level: info
//	funcs:
//	  format: signature
//	  sort: name
//	check:
//	  jobs: 8
func YAMLConfig(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	values := map[string]any{}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}

	var f kong.ResolverFunc = func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if node := parent.Node(); node != nil && node.Type == kong.CommandNode {
			switch section := values[node.Name].(type) {
			case nil:
			case map[string]any:
				if raw, ok := lookupFlag(section, flag.Name); ok {
					return configValue(raw), nil
				}
			default:
				return nil, fmt.Errorf("invalid configuration: %q must be a mapping of flags", node.Name)
			}
		}
		if raw, ok := lookupFlag(values, flag.Name); ok {
			return configValue(raw), nil
		}
		return nil, nil
	}
	return f, nil
}

// lookupFlag accepts both "name-width" and "name_width" spellings.
func lookupFlag(values map[string]any, name string) (any, bool) {
	if raw, ok := values[name]; ok {
		return raw, true
	}
	raw, ok := values[strings.ReplaceAll(name, "-", "_")]
	return raw, ok
}

// configValue converts a YAML value to the string form kong parses from the
// command line. Lists become comma-separated.
func configValue(raw any) any {
	switch v := raw.(type) {
	case nil:
		return nil
	case map[string]any:
		return nil
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}
