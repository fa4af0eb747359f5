package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/valu/encode"
	"github.com/signadot/valu/format"
	"github.com/signadot/valu/parse"
	"github.com/signadot/valu/value"
)

type MainConfig struct {
	Color     bool `cli:"name=color desc='encode with color'"`
	WireOut   bool `cli:"name=wire desc='output in compact format'"`
	DateTimes bool `cli:"name=dt desc='read date/time strings as date-times'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

// inFormat picks the input format: -I, then the file suffix, then YAML
// which also reads JSON.
func (cfg *MainConfig) inFormat(file string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := format.FromSuffix(file); ok {
		return f
	}
	return format.YAMLFormat
}

func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFormat(cfg.inFormat(file)),
		parse.ParseDateTimes(cfg.DateTimes),
	}
}

// encOpts picks the output format: -O, then the input format of file.
func (cfg *MainConfig) encOpts(w io.Writer, file string) []encode.EncodeOption {
	f := cfg.inFormat(file)
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			// -color=false
			return res
		}
	}
	if out, ok := w.(*os.File); ok && isatty.IsTerminal(out.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) encode(w io.Writer, v value.Value, file string) error {
	return encode.Encode(v, w, cfg.encOpts(w, file)...)
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type NumberConfig struct {
	*MainConfig
	As string `cli:"name=as desc='parse as this kind (i8..u128, f32, f64)'"`

	Number *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Merge   bool `cli:"name=m desc='output a merge patch'"`
	Quiet   bool `cli:"name=q desc='only report whether the inputs differ'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='the patch is a merge patch'"`
	Diff  bool `cli:"name=diff desc='the patch is the output of diff'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env    []envSetting
	Expand bool `cli:"name=x desc='expand $[expr] in documents instead of evaluating an expression'"`

	Eval *cli.Command
}
