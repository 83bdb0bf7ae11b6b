/*
Copyright © 2018 the MTpy authors.
This file is part of MTpy.

MTpy is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

MTpy is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with MTpy.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package mtpyutil holds the command-line interface for the MTpy
// penetration depth tools.
package mtpyutil

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// Log is the logger the commands report progress through.
var Log *logrus.Logger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	Log = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	// Options are the configuration options available to the MTpy
	// commands.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "component",
			usage: `
              component selects the impedance tensor component the
              penetration depth is derived from: det, zxy or zyx.`,
			shorthand:  "c",
			defaultVal: "det",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "pixelsize",
			usage: `
              pixelsize specifies the grid cell edge length in degrees.
              0.001 degrees is roughly 100 meters.`,
			defaultVal: 0.002,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "output",
			usage: `
              output specifies the path the command writes its result
              to.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "interpolate",
			usage: `
              interpolate specifies whether to render the cubic
              interpolated surface instead of the raw station raster.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "legend",
			usage: `
              legend specifies whether to also write a color scale
              legend image next to the map.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
	}

	Cfg = viper.New()
	for _, option := range options {
		for _, set := range option.flagsets {
			if set.Lookup(option.name) != nil {
				continue // Already registered on a shared flag set.
			}
			switch v := option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, v, option.usage)
			case float64:
				set.Float64P(option.name, option.shorthand, v, option.usage)
			case bool:
				set.BoolP(option.name, option.shorthand, v, option.usage)
			case int:
				set.IntP(option.name, option.shorthand, v, option.usage)
			default:
				panic(fmt.Sprintf("mtpyutil: invalid option type %T", option.defaultVal))
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
		Cfg.SetDefault(option.name, option.defaultVal)
	}

	Root.AddCommand(plotCmd, csvCmd, shapeCmd)
	cobra.OnInitialize(readConfig)
}

// readConfig loads the configuration file, if one was specified.
func readConfig() {
	file := Cfg.GetString("config")
	if file == "" {
		return
	}
	Cfg.SetConfigFile(file)
	if err := Cfg.ReadInConfig(); err != nil {
		Log.Fatalf("reading configuration file: %v", err)
	}
}

// parsePeriodIndex converts the positional period index argument.
func parsePeriodIndex(arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("mtpyutil: period index must be an integer, got %q", arg)
	}
	if i < 0 {
		return 0, fmt.Errorf("mtpyutil: period index must not be negative, got %d", i)
	}
	return i, nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "mtpy",
	Short: "MTpy computes penetration depths from magnetotelluric surveys.",
	Long: `MTpy derives penetration depths from the impedance tensors in a
directory of EDI station files and grids them onto a uniform
latitude-longitude raster for mapping.`,
	SilenceUsage: true,
}

var plotCmd = &cobra.Command{
	Use:   "plot [edi_dir] [period_index]",
	Short: "Render a gridded penetration depth map.",
	Long: `plot computes the penetration depth of every station in edi_dir at
the given zero-based period index, composites the depths onto a
uniform grid, interpolates a cubic surface over the stations and
writes the result as a PNG image. All stations must share the same
sampling period at the requested index.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := parsePeriodIndex(args[1])
		if err != nil {
			return err
		}
		return Plot(PlotConfig{
			EDIDir:      args[0],
			PeriodIndex: idx,
			Component:   cast.ToString(Cfg.Get("component")),
			PixelSize:   cast.ToFloat64(Cfg.Get("pixelsize")),
			Output:      cast.ToString(Cfg.Get("output")),
			Interpolate: cast.ToBool(Cfg.Get("interpolate")),
			Legend:      cast.ToBool(Cfg.Get("legend")),
			Log:         Log,
		})
	},
}

var csvCmd = &cobra.Command{
	Use:   "csv [edi_dir]",
	Short: "Export station depth profiles to a CSV table.",
	Long: `csv computes the penetration depth of every station in edi_dir at
every measured period and writes one row per station of latitude,
longitude and the comma-joined depths. Stations whose period table
differs from the first station's are logged and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return CSV(CSVConfig{
			EDIDir:    args[0],
			Component: cast.ToString(Cfg.Get("component")),
			Output:    cast.ToString(Cfg.Get("output")),
			Log:       Log,
		})
	},
}

var shapeCmd = &cobra.Command{
	Use:   "shape [edi_dir] [period_index]",
	Short: "Export penetration depths to shapefiles.",
	Long: `shape computes the penetration depth of every station in edi_dir at
the given zero-based period index and writes a station point
shapefile along with a polygon shapefile of the populated grid
cells.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := parsePeriodIndex(args[1])
		if err != nil {
			return err
		}
		return Shape(ShapeConfig{
			EDIDir:      args[0],
			PeriodIndex: idx,
			Component:   cast.ToString(Cfg.Get("component")),
			PixelSize:   cast.ToFloat64(Cfg.Get("pixelsize")),
			Output:      cast.ToString(Cfg.Get("output")),
			Log:         Log,
		})
	},
}
