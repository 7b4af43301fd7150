// Package config parses the command-line surface into a ready-to-use
// run configuration: frame count, algorithm letter, output flags, and
// the two positional file paths. Validation failures are returned as
// errors from the command's RunE; cmd/vmpager treats them as fatal and
// reports them with log.Fatalf.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/relaypager/vmpager/internal/vmm"
)

// Options is the parsed -o string: verbose/page-table/frame-table/stats
// reporting flags plus the four internal debug toggles.
type Options struct {
	Verbose    bool // O
	PageTables bool // P
	FrameTable bool // F
	Stats      bool // S

	// Internal debug toggles. None of them affect the deterministic
	// stdout vocabulary or the TOTALCOST line (§6); each only adds
	// supplementary diagnostics on top.
	DebugFaultTrace bool // x
	DebugAgingInfo  bool // y
	DebugFreelist   bool // f
	DebugSQLiteLog  bool // a
}

// Config is everything main needs to build and run a Simulation.
type Config struct {
	NumFrames  int
	Algorithm  byte
	Opts       Options
	InputFile  string
	RandomFile string
}

// ParseOptions decodes the -o flag's letter soup into an Options
// value. An unrecognized letter is fatal per §6/§7.
func ParseOptions(s string) (Options, error) {
	var o Options
	for _, c := range s {
		switch c {
		case 'O':
			o.Verbose = true
		case 'P':
			o.PageTables = true
		case 'F':
			o.FrameTable = true
		case 'S':
			o.Stats = true
		case 'x':
			o.DebugFaultTrace = true
		case 'y':
			o.DebugAgingInfo = true
		case 'f':
			o.DebugFreelist = true
		case 'a':
			o.DebugSQLiteLog = true
		default:
			return Options{}, fmt.Errorf("unknown option letter %q", c)
		}
	}
	return o, nil
}

// Validate checks the numeric and file-path constraints §6/§7 spell
// out, beyond what cobra itself enforces.
func (c *Config) Validate() error {
	if c.NumFrames <= 0 {
		return fmt.Errorf("frame count must be positive: %d", c.NumFrames)
	}
	if c.NumFrames > vmm.MaxFrames {
		return fmt.Errorf("%w: %d", vmm.ErrFrameCountTooLarge, c.NumFrames)
	}
	if c.InputFile == "" {
		return fmt.Errorf("missing required inputfile argument")
	}
	return nil
}

// NewRootCommand builds the cobra command that parses argv into a
// *Config, invoking run once parsing and validation succeed.
func NewRootCommand(run func(*Config) error) *cobra.Command {
	cfg := &Config{}
	var optString string

	cmd := &cobra.Command{
		Use:   "vmpager <inputfile> <randomfile>",
		Short: "Simulate demand paging under a chosen page-replacement policy.",
		Long: "vmpager replays a memory-reference trace against a simulated " +
			"MMU, evicting frames under one of six replacement policies " +
			"(FIFO, Random, Clock, NRU, Aging, Working-Set) and reporting " +
			"the resulting page/frame tables and cost accounting.",
		Args: cobra.ExactArgs(2),
	}

	var algoStr string
	cmd.Flags().IntVarP(&cfg.NumFrames, "frames", "f", 0,
		"number of physical frames (<= 128)")
	cmd.Flags().StringVarP(&algoStr, "algo", "a", "f",
		"replacement algorithm: f,r,c,e,a,w")
	cmd.Flags().StringVarP(&optString, "options", "o", "",
		"output options, a concatenation of O,P,F,S,x,y,f,a")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg.InputFile = args[0]
		cfg.RandomFile = args[1]

		if trimmed := strings.TrimSpace(algoStr); len(trimmed) > 0 {
			cfg.Algorithm = trimmed[0]
		}

		opts, err := ParseOptions(optString)
		if err != nil {
			return err
		}
		cfg.Opts = opts

		if err := cfg.Validate(); err != nil {
			return err
		}

		return run(cfg)
	}

	return cmd
}
