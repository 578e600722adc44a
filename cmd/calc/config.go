package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// configLoader resolves flag defaults from a TOML or YAML document.
//
// Keys are flag names, with "-" optionally written as "_", eg.
//
//	prompt: "calc> "
//	max_depth: 64
func configLoader(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	values := map[string]interface{}{}
	if _, terr := toml.Decode(string(data), &values); terr != nil {
		values = map[string]interface{}{}
		if yerr := yaml.Unmarshal(data, &values); yerr != nil {
			return nil, fmt.Errorf("config is neither TOML (%s) nor YAML (%s)", terr, yerr)
		}
	}
	var f kong.ResolverFunc = func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (interface{}, error) {
		if raw, ok := values[flag.Name]; ok {
			return raw, nil
		}
		if raw, ok := values[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
			return raw, nil
		}
		return nil, nil
	}
	return f, nil
}
