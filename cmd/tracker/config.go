// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"
)

// loadConfig applies the YAML config file named by --config. Keys are flag
// names, and only flags not set on the command line are assigned.
//
//	api-addr: 0.0.0.0:8680
//	enable-metrics: true
//	verbosity: 4
func loadConfig(ctx *cli.Context) error {
	path := ctx.String(configFlag.Name)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}

	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return errors.Wrapf(err, "parse config [%v]", path)
	}

	known := make(map[string]bool)
	for _, f := range ctx.App.Flags {
		known[f.GetName()] = true
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !known[name] || name == configFlag.Name {
			return errors.Errorf("config [%v]: unknown key %q", path, name)
		}
		if ctx.IsSet(name) {
			continue
		}
		value := values[name]
		if value == nil {
			continue
		}
		if err := ctx.Set(name, fmt.Sprint(value)); err != nil {
			return errors.Wrapf(err, "config [%v]: invalid value for %q", path, name)
		}
	}
	return nil
}
