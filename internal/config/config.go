// Package config holds the settings of the polymode command: the interval to
// classify over, the bisection parameters and output options. Values come from
// defaults, then POLYMODE_* environment variables, then explicit flags.
package config

import (
	"errors"
	"fmt"
	"math"

	unimode "github.com/jonathanmweiss/go-unimode"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of every environment variable read by polymode.
const EnvPrefix = "POLYMODE_"

// Flag names shared by the command line and the environment (upper-cased,
// dashes turned into underscores).
const (
	FlagA        = "a"
	FlagB        = "b"
	FlagTol      = "tolerance"
	FlagMaxSteps = "max-steps"
	FlagVar      = "var"
	FlagVerbose  = "verbose"
)

const (
	DefaultA        = 0.0
	DefaultB        = 1.0
	DefaultVariable = "p"
)

type Config struct {
	// [A, B] is the interval handed to the classifier.
	A, B float64
	// Tolerance and MaxSteps bound the bisection that locates a mode.
	Tolerance float64
	MaxSteps  int
	// Variable is the display name used when printing polynomials.
	Variable string
	// Verbose turns on debug logging.
	Verbose bool
}

func Default() Config {
	return Config{
		A:         DefaultA,
		B:         DefaultB,
		Tolerance: unimode.DefaultTolerance,
		MaxSteps:  unimode.DefaultMaxSteps,
		Variable:  DefaultVariable,
	}
}

var (
	ErrNaNBound      = errors.New("interval bounds must be numbers")
	ErrEmptyVariable = errors.New("variable name must not be empty")
)

// Validate checks the settings. An inverted interval is accepted: the
// classifier reports it as having no interior extrema.
func (c Config) Validate() error {
	if math.IsNaN(c.A) || math.IsNaN(c.B) {
		return ErrNaNBound
	}

	if c.Variable == "" {
		return ErrEmptyVariable
	}

	if _, err := c.Params(); err != nil {
		return err
	}

	return nil
}

func (c Config) Params() (unimode.Params, error) {
	prms, err := unimode.NewParams(c.Tolerance, c.MaxSteps)
	if err != nil {
		return unimode.Params{}, fmt.Errorf("invalid bisection settings: %w", err)
	}

	return prms, nil
}

// Load reads the flag values of fs, falling back to the environment for flags
// that were not set explicitly, and to the defaults for the rest.
func Load(fs *pflag.FlagSet) (Config, error) {
	c := Default()

	var err error

	readFloat := func(name string, dst *float64) {
		if err != nil {
			return
		}

		if fs.Changed(name) {
			*dst, err = fs.GetFloat64(name)
			return
		}

		*dst = getEnvFloat(name, *dst)
	}

	readFloat(FlagA, &c.A)
	readFloat(FlagB, &c.B)
	readFloat(FlagTol, &c.Tolerance)

	if err == nil {
		if fs.Changed(FlagMaxSteps) {
			c.MaxSteps, err = fs.GetInt(FlagMaxSteps)
		} else {
			c.MaxSteps = getEnvInt(FlagMaxSteps, c.MaxSteps)
		}
	}

	if err == nil {
		if fs.Changed(FlagVar) {
			c.Variable, err = fs.GetString(FlagVar)
		} else {
			c.Variable = getEnvString(FlagVar, c.Variable)
		}
	}

	if err == nil {
		if fs.Changed(FlagVerbose) {
			c.Verbose, err = fs.GetBool(FlagVerbose)
		} else {
			c.Verbose = getEnvBool(FlagVerbose, c.Verbose)
		}
	}

	if err != nil {
		return Config{}, fmt.Errorf("reading flags: %w", err)
	}

	return c, c.Validate()
}

// RegisterFlags declares every setting on fs with its default value.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()

	fs.Float64(FlagA, d.A, "lower bound of the interval")
	fs.Float64(FlagB, d.B, "upper bound of the interval")
	fs.Float64(FlagTol, d.Tolerance, "bisection stops once the bracket is narrower than this")
	fs.Int(FlagMaxSteps, d.MaxSteps, "maximum number of bisection steps per extremum")
	fs.String(FlagVar, d.Variable, "variable name used when printing polynomials")
	fs.BoolP(FlagVerbose, "v", d.Verbose, "increase logging verbosity")
}
