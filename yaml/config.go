// Package yaml loads CLI defaults from a YAML configuration file using
// gopkg.in/yaml.v3.
package yaml

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagetext"
	"gopkg.in/yaml.v3"
)

// Loader is a kong.ConfigurationLoader for YAML files.
//
// Keys are flag names; dashes may also be written as underscores.
// Flags of a subcommand may be nested under the command name:
//
//	min-length: 5
//	scrape:
//	  tags: [p, h1]
//	  format: markdown
//
// Command-level keys take precedence over top-level keys. Lists are
// joined with commas, so they map onto slice flags.
func Loader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, pagetext.Errorf(pagetext.EINVALID, "invalid config file: %v", err)
	}

	return kong.ResolverFunc(func(ctx *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if parent != nil && parent.Command != nil {
			if section, ok := values[parent.Command.Name].(map[string]any); ok {
				if raw, ok := lookup(section, flag.Name); ok {
					return flagValue(flag.Name, raw)
				}
			}
		}
		if raw, ok := lookup(values, flag.Name); ok {
			return flagValue(flag.Name, raw)
		}
		return nil, nil
	}), nil
}

func lookup(values map[string]any, name string) (any, bool) {
	if raw, ok := values[name]; ok {
		return raw, true
	}
	raw, ok := values[strings.ReplaceAll(name, "-", "_")]
	return raw, ok
}

// flagValue renders a YAML scalar or list as the string kong would
// receive on the command line.
func flagValue(name string, raw any) (any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return nil, pagetext.Errorf(pagetext.EINVALID, "config key %q: expected a value, got a mapping", name)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if _, nested := item.([]any); nested {
				return nil, pagetext.Errorf(pagetext.EINVALID, "config key %q: nested lists are not supported", name)
			}
			items = append(items, fmt.Sprint(item))
		}
		return strings.Join(items, ","), nil
	default:
		return fmt.Sprint(v), nil
	}
}
