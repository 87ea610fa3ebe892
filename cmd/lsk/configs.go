package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/lsforge/go-lskit/convert"
	"github.com/lsforge/go-lskit/format"
	"github.com/lsforge/go-lskit/ir"
	"github.com/lsforge/go-lskit/lsj"
	"github.com/lsforge/go-lskit/lsx"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	X bool `cli:"name=x aliases=lsx desc='do output in lsx'"`
	J bool `cli:"name=j aliases=lsj desc='do output in lsj'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if f.IsBinary() {
			return nil, fmt.Errorf("%w: lsf needs the external converter", cli.ErrUsage)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// readArg reads a file argument, "-" meaning stdin.
func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", arg, err)
	}
	return d, nil
}

// decodeArg reads and decodes one input, honoring -I and falling back
// to content sniffing.
func (cfg *MainConfig) decodeArg(arg string) (*ir.Document, format.Format, error) {
	d, err := readArg(arg)
	if err != nil {
		return nil, 0, err
	}
	var f format.Format
	if cfg.InFormat != nil {
		f = *cfg.InFormat
	} else {
		f, err = convert.Sniff(d)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", arg, err)
		}
		if f.IsBinary() {
			return nil, 0, fmt.Errorf("%s: %w: lsf needs the external converter", arg, format.ErrBadFormat)
		}
	}
	doc, err := convert.Decode(d, f)
	if err != nil {
		return nil, 0, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return doc, f, nil
}

// outFormat resolves the output format from flags, defaulting to def.
func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	f := def
	switch {
	case cfg.X:
		f = format.LSXFormat
	case cfg.J:
		f = format.LSJFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// encodeDoc writes doc to w in format f, with color when asked or on a
// terminal.
func (cfg *MainConfig) encodeDoc(doc *ir.Document, f format.Format, w io.Writer, forceColor bool) error {
	colored := forceColor || cfg.useColor(w)
	switch f {
	case format.LSXFormat:
		var opts []lsx.EncodeOption
		if colored {
			opts = append(opts, lsx.EncodeColors(lsx.NewColors()))
		}
		return lsx.Encode(doc, w, opts...)
	case format.LSJFormat:
		var opts []lsj.EncodeOption
		if colored {
			opts = append(opts, lsj.EncodeColors(lsj.NewColors()))
		}
		return lsj.Encode(doc, w, opts...)
	default:
		return fmt.Errorf("%w: cannot encode %s", format.ErrBadFormat, f)
	}
}

type ConvertConfig struct {
	*MainConfig
	Convert *cli.Command
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Patch *cli.Command
}

type MatchConfig struct {
	*MainConfig
	Match *cli.Command
}
