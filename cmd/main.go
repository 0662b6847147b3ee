package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/brandquad/pigment"
	"github.com/brandquad/pigment/colorutils"
	"github.com/brandquad/pigment/mixer"
	"github.com/brandquad/pigment/spectral"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

type Config struct {
	MaxCpuCount int    `envconfig:"PIGMENT_MAX_CPU_COUNT" default:"4"`
	ModelPath   string `envconfig:"PIGMENT_MODEL_PATH" default:""`
	DebugMode   bool   `envconfig:"PIGMENT_DEBUG" default:"false"`
}

func (c Config) MakePigmentConfig() *pigment.Config {
	if c.MaxCpuCount < 1 {
		klog.Fatalln("PIGMENT_MAX_CPU_COUNT must be positive")
	}
	return &pigment.Config{
		MaxCpuCount: c.MaxCpuCount,
		ModelPath:   c.ModelPath,
		DebugMode:   c.DebugMode,
	}
}

const usage = `usage: pigment <command> [args]
  hex <#rrggbb>                     RGB, CMY, XYZ and reconstructed spectrum
  mix <hex> <ratio> [<hex> <ratio>] linear and realistic mix
  catalog [name]                    catalog manifest, or one swatch
  nearest <hex>                     closest catalog swatch
  plot <file> <hex|name>...         reflectance curves as an image`

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		klog.Fatalln(err)
	}
	if c.DebugMode {
		_ = flag.Set("v", "2")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		klog.Exitln(usage)
	}

	config := c.MakePigmentConfig()
	if err := pigment.Setup(config); err != nil {
		klog.Exitln(err)
	}

	var err error
	switch cmd, args := flag.Arg(0), flag.Args()[1:]; cmd {
	case "hex":
		err = hexCommand(args)
	case "mix":
		err = mixCommand(args)
	case "catalog":
		err = catalogCommand(args, config)
	case "nearest":
		err = nearestCommand(args, config)
	case "plot":
		err = plotCommand(args, config)
	default:
		err = errors.Errorf("unknown command %q\n%s", cmd, usage)
	}
	if err != nil {
		klog.Exitln(err)
	}
}

func hexCommand(args []string) error {
	if len(args) != 1 {
		return errors.Errorf("hex takes one color\n%s", usage)
	}
	rgb, err := colorutils.HexToRgb(args[0])
	if err != nil {
		return err
	}
	cmy := colorutils.RgbToCmy(rgb)
	xyz := colorutils.RgbToXyz(rgb)
	s, err := spectral.XyzToSpectrum(xyz)
	if err != nil {
		return err
	}
	back, err := spectral.SpectrumToRgb(s)
	if err != nil {
		return err
	}

	fmt.Printf("hex       %s\n", colorutils.RgbToHex(rgb))
	fmt.Printf("rgb       %d %d %d\n", rgb.R, rgb.G, rgb.B)
	fmt.Printf("cmy       %.4f %.4f %.4f\n", cmy.C, cmy.M, cmy.Y)
	fmt.Printf("xyz       %.6f %.6f %.6f\n", xyz.X, xyz.Y, xyz.Z)
	fmt.Printf("spectrum  %s\n", colorutils.RgbToHex(back))
	for i, v := range s {
		fmt.Printf("  %d nm  %.4f\n", spectral.Wavelength(i), v)
	}
	return nil
}

func mixCommand(args []string) error {
	if len(args) < 2 || len(args)%2 != 0 {
		return errors.Errorf("mix takes <hex> <ratio> pairs\n%s", usage)
	}
	paints := make([]mixer.Paint[pigment.RGB], 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		rgb, err := colorutils.HexToRgb(args[i])
		if err != nil {
			return err
		}
		ratio, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			return errors.Wrapf(err, "ratio %q", args[i+1])
		}
		paints = append(paints, mixer.Paint[pigment.RGB]{Color: rgb, Ratio: ratio})
	}

	linear, err := pigment.LinearMix(paints...)
	if err != nil {
		return err
	}
	realistic, err := pigment.RealisticMix(paints...)
	if err != nil {
		return err
	}
	fmt.Printf("linear    %s\n", colorutils.RgbToHex(linear))
	fmt.Printf("realistic %s\n", colorutils.RgbToHex(realistic))
	return nil
}

func catalogCommand(args []string, c *pigment.Config) error {
	cat, err := pigment.LoadCatalog(c)
	if err != nil {
		return err
	}
	var v interface{}
	if len(args) > 0 {
		name := strings.Join(args, " ")
		s, ok := cat.Lookup(name)
		if !ok {
			return errors.Errorf("no swatch named %q", name)
		}
		v = s
	} else {
		v = pigment.MakeManifest(cat, c)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func nearestCommand(args []string, c *pigment.Config) error {
	if len(args) != 1 {
		return errors.Errorf("nearest takes one color\n%s", usage)
	}
	rgb, err := colorutils.HexToRgb(args[0])
	if err != nil {
		return err
	}
	cat, err := pigment.LoadCatalog(c)
	if err != nil {
		return err
	}
	s, d := cat.Nearest(rgb)
	if s == nil {
		return errors.New("catalog is empty")
	}
	fmt.Printf("%s %s (dE %.4f)\n", s.Name, s.Hex, d)
	return nil
}

func plotCommand(args []string, c *pigment.Config) error {
	if len(args) < 2 {
		return errors.Errorf("plot takes a file and at least one color\n%s", usage)
	}
	var cat *pigment.Catalog
	series := make([]pigment.PlotSeries, 0, len(args)-1)
	for _, arg := range args[1:] {
		if rgb, err := colorutils.HexToRgb(arg); err == nil {
			s, err := spectral.RgbToSpectrum(rgb)
			if err != nil {
				return err
			}
			series = append(series, pigment.PlotSeries{Name: colorutils.RgbToHex(rgb), Spectrum: s, Color: rgb})
			continue
		}
		if cat == nil {
			var err error
			if cat, err = pigment.LoadCatalog(c); err != nil {
				return err
			}
		}
		s, ok := cat.Lookup(arg)
		if !ok {
			return errors.Errorf("%q is neither a hex color nor a swatch", arg)
		}
		series = append(series, pigment.SeriesOf(s))
	}
	if err := pigment.PlotSpectra(args[0], "reflectance", series...); err != nil {
		return err
	}
	fmt.Println(args[0])
	return nil
}
