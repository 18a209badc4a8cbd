package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/frederic-klein/uv2brew/internal/config"
	"github.com/frederic-klein/uv2brew/internal/formula"
	"github.com/frederic-klein/uv2brew/internal/lines"
	"github.com/frederic-klein/uv2brew/internal/lockfile"
	"github.com/frederic-klein/uv2brew/internal/logging"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "uv2brew",
		Short: "Convert dependencies in a uv.lock file to Homebrew Formula format",
		Long: `uv2brew reads a uv.lock file from stdin and writes one Homebrew Formula
resource block per package that has a source distribution to stdout.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return convert(cfg, stdin, stdout, stderr)
		},
	}

	rootCmd.Flags().BoolP("verbose", "v", false, "Print debug output to stderr.")
	_ = v.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))

	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	return rootCmd
}

func convert(cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	log := logging.New(logging.Options{Output: stderr, Verbose: cfg.Verbose})
	log.Debug().Msg("parsing lockfile from stdin")

	src := lines.NewSource(stdin, log.WithComponent("lines"))
	walker := lockfile.NewWalker(src, formula.NewEmitter(stdout), log.WithComponent("walker"))
	if err := walker.Walk(); err != nil {
		return fmt.Errorf("converting lockfile: %w", err)
	}
	return nil
}
