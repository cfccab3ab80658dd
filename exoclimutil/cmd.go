/*
Copyright © 2026 the exoclim authors.
This file is part of exoclim.

exoclim is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

exoclim is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with exoclim.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package exoclimutil wires the exoclim library into a command-line
// inspection tool.
package exoclimutil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/exoclim"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var log *logrus.Logger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	log = logrus.StandardLogger()
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}

	Cfg = viper.New()
	Cfg.SetEnvPrefix("EXOCLIM")

	// Options are the configuration options available to exoclim.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "verbose",
			usage: `
              verbose enables debug logging.`,
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "dir",
			usage: `
              dir specifies a directory with planet-profile JSON files,
              overriding the packaged constants store.`,
			shorthand:  "d",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{constantsCmd.Flags()},
		},
		{
			name: "strict-collisions",
			usage: `
              strict-collisions rejects profiles that redefine a name
              from the generic constants set instead of overriding it.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{constantsCmd.Flags()},
		},
	}

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			default:
				panic(fmt.Errorf("exoclimutil: unsupported option type %T", option.defaultVal))
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}

	Root.AddCommand(constantsCmd, fieldsCmd)
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "exoclim",
	Short: "exoclim inspects planetary climate-model output.",
	Long: `exoclim prints physical-constants sets and summarizes the
fields held in NetCDF model output files.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cast.ToBool(Cfg.Get("verbose")) {
			log.Level = logrus.DebugLevel
		}
	},
	DisableAutoGenTag: true,
}

var constantsCmd = &cobra.Command{
	Use:   "constants [profile]",
	Short: "Print a physical-constants set.",
	Long: `constants loads the generic constants set, merges the given
planet profile over it, and prints every constant with its value and
units.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile := ""
		if len(args) == 1 {
			profile = args[0]
		}
		opts := &exoclim.ConstantsOptions{Dir: Cfg.GetString("dir")}
		if cast.ToBool(Cfg.Get("strict-collisions")) {
			opts.OnCollision = exoclim.CollisionError
		}
		c, err := exoclim.LoadConstants(profile, opts)
		if err != nil {
			return err
		}
		log.Debugf("loaded %s with %d constants", c.Name(), c.Len())
		fmt.Println(c.Name())
		for _, n := range c.Names() {
			k, err := c.Get(n)
			if err != nil {
				return err
			}
			fmt.Printf("  %-32s %14g  %s\n", k.Name(), k.Value(), k.Units())
		}
		return nil
	},
}

var fieldsCmd = &cobra.Command{
	Use:   "fields file.nc [file.nc...]",
	Short: "Summarize the fields in NetCDF output files.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cl, err := exoclim.LoadData(args...)
		if err != nil {
			return err
		}
		log.Debugf("loaded %d fields from %d file(s)", cl.Len(), len(args))
		fmt.Print(cl)
		return nil
	},
}
