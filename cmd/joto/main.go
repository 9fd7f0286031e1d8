// joto - physical quantity parser and formatter
//
// Usage:
//
//	joto parse [-d domain] <quantity>...      Parse quantities to base units
//	joto format -u <unit> <value>...          Render base-unit values
//	joto convert -u <unit> <quantity>...      Parse, then render in another unit
//	joto units [-d domain]                    List known units
//	joto version                              Print version info
//
// Values print in base units: nanometers for length, nanograms for mass,
// millirankine for temperature. A single "-" argument makes parse and
// convert read one quantity per line from stdin.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/xorgy/joto/joto"
)

const version = "1.0.0"

// ============================================================
// Domain Bridge
// ============================================================

// unitRow is one line of the units listing.
type unitRow struct {
	name   string
	sym    string
	ascii  string
	scale  int64
	digits int
}

// domainAPI adapts one measurement domain's typed API to the string
// plumbing of the CLI.
type domainAPI struct {
	name   string
	base   string
	parse  func(string) (int64, *joto.ParseError)
	asUnit func(unit string) (func(string) (int64, *joto.ParseError), error)
	render func(q int64, unit string, opts joto.FormatOptions) (joto.FormatResult, error)
	rows   func() []unitRow
}

var domains = []domainAPI{
	{
		name:  "length",
		base:  "nm",
		parse: joto.ParseLengthDiagnostic,
		asUnit: func(unit string) (func(string) (int64, *joto.ParseError), error) {
			u, ok := joto.LengthUnitFromString(unit)
			if !ok {
				return nil, fmt.Errorf("unknown length unit %q", unit)
			}
			return func(s string) (int64, *joto.ParseError) {
				return joto.ParseLengthAsUnitDiagnostic(s, u)
			}, nil
		},
		render: func(q int64, unit string, opts joto.FormatOptions) (joto.FormatResult, error) {
			u, ok := joto.LengthUnitFromString(unit)
			if !ok {
				return joto.FormatResult{}, fmt.Errorf("unknown length unit %q", unit)
			}
			return joto.FormatLength(q, u, opts), nil
		},
		rows: func() []unitRow {
			var rs []unitRow
			for _, u := range joto.LengthUnits() {
				rs = append(rs, unitRow{u.String(), u.Symbol(), u.ASCII(), u.Scale(), u.MaxExactDecimalDigits()})
			}
			return rs
		},
	},
	{
		name:  "mass",
		base:  "ng",
		parse: joto.ParseMassDiagnostic,
		asUnit: func(unit string) (func(string) (int64, *joto.ParseError), error) {
			u, ok := joto.MassUnitFromString(unit)
			if !ok {
				return nil, fmt.Errorf("unknown mass unit %q", unit)
			}
			return func(s string) (int64, *joto.ParseError) {
				return joto.ParseMassAsUnitDiagnostic(s, u)
			}, nil
		},
		render: func(q int64, unit string, opts joto.FormatOptions) (joto.FormatResult, error) {
			u, ok := joto.MassUnitFromString(unit)
			if !ok {
				return joto.FormatResult{}, fmt.Errorf("unknown mass unit %q", unit)
			}
			return joto.FormatMass(q, u, opts), nil
		},
		rows: func() []unitRow {
			var rs []unitRow
			for _, u := range joto.MassUnits() {
				rs = append(rs, unitRow{u.String(), u.Symbol(), u.ASCII(), u.Scale(), u.MaxExactDecimalDigits()})
			}
			return rs
		},
	},
	{
		name:  "temperature",
		base:  "m°R",
		parse: joto.ParseTemperatureDiagnostic,
		asUnit: func(unit string) (func(string) (int64, *joto.ParseError), error) {
			u, ok := joto.TemperatureUnitFromString(unit)
			if !ok {
				return nil, fmt.Errorf("unknown temperature unit %q", unit)
			}
			return func(s string) (int64, *joto.ParseError) {
				return joto.ParseTemperatureAsUnitDiagnostic(s, u)
			}, nil
		},
		render: func(q int64, unit string, opts joto.FormatOptions) (joto.FormatResult, error) {
			u, ok := joto.TemperatureUnitFromString(unit)
			if !ok {
				return joto.FormatResult{}, fmt.Errorf("unknown temperature unit %q", unit)
			}
			return joto.FormatTemperature(q, u, opts), nil
		},
		rows: func() []unitRow {
			var rs []unitRow
			for _, u := range joto.TemperatureUnits() {
				rs = append(rs, unitRow{u.String(), u.Symbol(), u.ASCII(), u.Scale(), u.MaxExactDecimalDigits()})
			}
			return rs
		},
	},
}

func findDomain(name string) *domainAPI {
	for i := range domains {
		if domains[i].name == name {
			return &domains[i]
		}
	}
	return nil
}

// domainFlag is a pflag.Value restricted to the known domain names.
type domainFlag string

func (d *domainFlag) String() string { return string(*d) }

func (d *domainFlag) Type() string { return "domain" }

func (d *domainFlag) Set(v string) error {
	if findDomain(v) == nil {
		return fmt.Errorf("unknown domain %q (length, mass, temperature)", v)
	}
	*d = domainFlag(v)
	return nil
}

// ============================================================
// Format Flags
// ============================================================

type formatOpts struct {
	unit   string
	ascii  bool
	mixed  bool
	group  bool
	style  string
	digits int
}

func addFormatFlags(fs *pflag.FlagSet, o *formatOpts) {
	fs.StringVarP(&o.unit, "unit", "u", "", "Unit to render in, by name or abbreviation (required)")
	fs.BoolVar(&o.ascii, "ascii", false, "Emit ASCII abbreviations and punctuation only")
	fs.BoolVar(&o.mixed, "mixed", false, "Split across a unit and its inferior unit, 6'2\" style")
	fs.BoolVar(&o.group, "group", false, "Group whole digits in threes with commas")
	fs.StringVar(&o.style, "style", "positional", "Fraction style: positional or decimal")
	fs.IntVar(&o.digits, "max-digits", joto.Unbounded, "Cap decimal fraction digits; negative means the unit resolution")
}

func (o *formatOpts) options() (joto.FormatOptions, error) {
	opts := joto.DefaultFormatOptions()
	if o.ascii {
		opts = joto.ASCIIFormatOptions()
	}
	switch o.style {
	case "positional":
		opts.Style = joto.FractionPositional
	case "decimal":
		opts.Style = joto.FractionDecimal
	default:
		return opts, fmt.Errorf("unknown fraction style %q (positional, decimal)", o.style)
	}
	opts.MixedUnits = o.mixed
	if o.group {
		opts.GroupSeparator = ','
	}
	opts.MaxFractionDigits = o.digits
	return opts, nil
}

// ============================================================
// Commands
// ============================================================

func newRootCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "joto",
		Short: "Parse and render physical quantities without losing precision",
		Long: `joto converts between human notation for lengths, masses and
temperatures and exact integer counts of a base unit. Parsing accepts
Unicode and ASCII notation, decimal and inch fractions, and compound
forms like 6'2"; formatting inverts it exactly or says it could not.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.WarnLevel)
			}
		},
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newParseCommand(),
		newFormatCommand(),
		newConvertCommand(),
		newUnitsCommand(),
		newVersionCommand(),
	)
	return cmd
}

func newParseCommand() *cobra.Command {
	domain := domainFlag("length")
	var asUnit string
	var diag bool

	cmd := &cobra.Command{
		Use:   "parse <quantity>...",
		Short: "Parse quantities into base-unit values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := findDomain(string(domain))
			parse := d.parse
			if asUnit != "" {
				p, err := d.asUnit(asUnit)
				if err != nil {
					return err
				}
				parse = p
			}
			if args[0] == "-" {
				return parseLines(parse, os.Stdin)
			}
			failed := 0
			for _, arg := range args {
				logrus.WithFields(logrus.Fields{"domain": d.name, "input": arg}).Debug("parsing")
				v, perr := parse(arg)
				if perr != nil {
					if !diag {
						return fmt.Errorf("parse %q: %w", arg, perr)
					}
					printDiagnostic(arg, perr)
					failed++
					continue
				}
				fmt.Println(v)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d quantities failed", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().VarP(&domain, "domain", "d", "Domain to parse in: length, mass or temperature")
	cmd.Flags().StringVar(&asUnit, "as-unit", "", "Parse bare numbers in this unit, no suffixes accepted")
	cmd.Flags().BoolVar(&diag, "diag", false, "Report structured diagnostics and keep going on failure")
	return cmd
}

// printDiagnostic dumps the structured error fields for one failed
// input.
func printDiagnostic(input string, e *joto.ParseError) {
	fmt.Printf("%s:\n  %v\n  kind=%s index=%d", input, e, e.Kind, e.Index)
	if e.Unit != "" {
		fmt.Printf(" unit=%s", e.Unit)
	}
	if e.Found != "" {
		fmt.Printf(" found=%s", e.Found)
	}
	if e.Expected != "" {
		fmt.Printf(" expected=%s", e.Expected)
	}
	if e.Kind == joto.ErrBadNumerator || e.Kind == joto.ErrBadDenominator {
		fmt.Printf(" num=%d den=%d", e.Num, e.Den)
	}
	fmt.Println()
}

// parseLines reads one quantity per line, printing base-unit values.
// Bad lines are reported and counted, not fatal.
func parseLines(parse func(string) (int64, *joto.ParseError), f *os.File) error {
	scanner := bufio.NewScanner(f)
	line, failed := 0, 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" {
			continue
		}
		v, err := parse(text)
		if err != nil {
			logrus.WithFields(logrus.Fields{"line": line, "input": text}).
				WithError(err).Warn("parse failed")
			failed++
			continue
		}
		fmt.Println(v)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d lines failed", failed, line)
	}
	return nil
}

func newFormatCommand() *cobra.Command {
	domain := domainFlag("length")
	var fo formatOpts
	var requireExact bool

	cmd := &cobra.Command{
		Use:   "format --unit <unit> <value>...",
		Short: "Render base-unit values as quantities",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fo.unit == "" {
				return fmt.Errorf("--unit is required")
			}
			d := findDomain(string(domain))
			opts, err := fo.options()
			if err != nil {
				return err
			}
			for _, arg := range args {
				q, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("value %q: not a base-unit count", arg)
				}
				if q < 0 {
					return fmt.Errorf("value %q: quantities are nonnegative", arg)
				}
				res, err := d.render(q, fo.unit, opts)
				if err != nil {
					return err
				}
				if !res.Exact {
					if requireExact {
						return fmt.Errorf("%d%s does not render exactly as %q", q, d.base, res.Text)
					}
					logrus.WithFields(logrus.Fields{"value": q, "text": res.Text}).
						Warn("output truncates the quantity")
				}
				fmt.Println(res.Text)
			}
			return nil
		},
	}
	cmd.Flags().VarP(&domain, "domain", "d", "Domain of the values: length, mass or temperature")
	cmd.Flags().BoolVar(&requireExact, "exact", false, "Fail instead of truncating")
	addFormatFlags(cmd.Flags(), &fo)
	return cmd
}

func newConvertCommand() *cobra.Command {
	domain := domainFlag("length")
	var fo formatOpts

	cmd := &cobra.Command{
		Use:   "convert --unit <unit> <quantity>...",
		Short: "Parse quantities and render them in another unit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fo.unit == "" {
				return fmt.Errorf("--unit is required")
			}
			d := findDomain(string(domain))
			opts, err := fo.options()
			if err != nil {
				return err
			}
			for _, arg := range args {
				v, perr := d.parse(arg)
				if perr != nil {
					return fmt.Errorf("parse %q: %w", arg, perr)
				}
				logrus.WithFields(logrus.Fields{"input": arg, "base": v}).Debug("converting")
				res, err := d.render(v, fo.unit, opts)
				if err != nil {
					return err
				}
				if !res.Exact {
					logrus.WithFields(logrus.Fields{"input": arg, "text": res.Text}).
						Warn("conversion truncates the quantity")
				}
				fmt.Println(res.Text)
			}
			return nil
		},
	}
	cmd.Flags().VarP(&domain, "domain", "d", "Domain to parse in: length, mass or temperature")
	addFormatFlags(cmd.Flags(), &fo)
	return cmd
}

func newUnitsCommand() *cobra.Command {
	domain := domainFlag("")

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List known units and their base-unit scales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, d := range domains {
				if domain != "" && string(domain) != d.name {
					continue
				}
				fmt.Fprintf(w, "%s (base %s):\n", d.name, d.base)
				fmt.Fprintf(w, "  NAME\tSYMBOL\tASCII\tSCALE\tDIGITS\n")
				for _, r := range d.rows() {
					fmt.Fprintf(w, "  %s\t%s\t%s\t%d\t%d\n", r.name, r.sym, r.ascii, r.scale, r.digits)
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().VarP(&domain, "domain", "d", "Limit the listing to one domain")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("joto %s\n", version)
		},
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
