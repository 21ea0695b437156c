// Package cli implements the pwgen command line tool.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/clipboard"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

// copyTimeout bounds a clipboard write so a hung helper cannot block the prompt.
var copyTimeout = 2 * time.Second

var ErrPasswordMismatch = errors.New("password does not match hash")

// Deps lets callers replace the random source and clipboard. Zero values use
// crypto/rand and the system clipboard.
type Deps struct {
	Generator *crypto.Generator
	Clipboard clipboard.Writer
}

// NewRootCommand builds the pwgen command tree.
func NewRootCommand(d Deps) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "pwgen",
		Short:         "pwgen generates passwords and rates generator settings.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("invalid log level %q", logLevel)
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})))
			return nil
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, d)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "possible values are debug, info, warn, error")

	root.AddCommand(newGenerateCommand(d))
	root.AddCommand(newStrengthCommand(d))
	root.AddCommand(newVerifyCommand())
	root.AddCommand(&cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "adjust settings and generate passwords from a prompt",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, d)
		},
	})

	return root
}

// Execute runs pwgen with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand(Deps{}).ExecuteContext(ctx)
}

func runInteractive(cmd *cobra.Command, d Deps) error {
	s := service.NewSession(d.Generator, clipboard.NewCopier(d.Clipboard))
	return RunInteractive(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), s)
}

// classFlags are the length and class switches shared by generate and strength.
type classFlags struct {
	length    int
	uppercase bool
	lowercase bool
	numbers   bool
	symbols   bool
}

func (f *classFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVarP(&f.length, "length", "l", crypto.DefaultLength, "password length (1-20)")
	fs.BoolVarP(&f.uppercase, "uppercase", "U", false, "include uppercase letters")
	fs.BoolVarP(&f.lowercase, "lowercase", "L", false, "include lowercase letters")
	fs.BoolVarP(&f.numbers, "numbers", "n", false, "include numbers")
	fs.BoolVarP(&f.symbols, "symbols", "s", false, "include symbols")
}

// request maps flags to a request. Without any class flag the defaults apply;
// once one is given, classes that were not named are off.
func (f *classFlags) request(cmd *cobra.Command) model.GenerateRequest {
	fs := cmd.Flags()
	named := fs.Changed("uppercase") || fs.Changed("lowercase") || fs.Changed("numbers") || fs.Changed("symbols")

	pick := func(name string, v bool) *bool {
		switch {
		case fs.Changed(name):
			return &v
		case named:
			off := false
			return &off
		}
		return nil
	}

	return model.GenerateRequest{
		Length:    f.length,
		Uppercase: pick("uppercase", f.uppercase),
		Lowercase: pick("lowercase", f.lowercase),
		Numbers:   pick("numbers", f.numbers),
		Symbols:   pick("symbols", f.symbols),
	}
}

func newGenerateCommand(d Deps) *cobra.Command {
	var (
		f      classFlags
		count  int
		hash   bool
		copyPw bool
		output string
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen", "g"},
		Short:   "generate one or more passwords",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := d.Generator
			if cmd.Flags().Changed("seed") {
				slog.Warn("using a seeded, non-cryptographic random source", "seed", seed)
				gen = crypto.NewGenerator(crypto.NewMathSource(seed))
			}

			req := f.request(cmd)
			req.Count = count
			req.Hash = hash

			resp, err := service.NewGeneratorService(gen).Generate(req)
			if err != nil {
				return err
			}
			if err := render(cmd.OutOrStdout(), output, resp); err != nil {
				return err
			}

			if copyPw {
				ctx, cancel := context.WithTimeout(cmd.Context(), copyTimeout)
				defer cancel()
				if err := clipboard.NewCopier(d.Clipboard).Copy(ctx, resp.Password); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
					return nil
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Password copied!")
			}
			return nil
		},
	}

	f.register(cmd)
	fs := cmd.Flags()
	fs.IntVarP(&count, "count", "c", 1, "number of passwords to generate")
	fs.BoolVar(&hash, "hash", false, "also print an argon2id hash of each password")
	fs.BoolVar(&copyPw, "copy", false, "copy the first password to the clipboard")
	fs.StringVarP(&output, "output", "o", "table", "format [table|plain|json]")
	fs.Uint64Var(&seed, "seed", 0, "reproducible output from a non-cryptographic source")

	return cmd
}

func newStrengthCommand(d Deps) *cobra.Command {
	var f classFlags

	cmd := &cobra.Command{
		Use:   "strength",
		Short: "rate generator settings without generating",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := service.NewGeneratorService(d.Generator).Strength(f.request(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Strength: %s (%s)\n", resp.Strength, resp.Color)
			return nil
		},
	}
	f.register(cmd)

	return cmd
}

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <password> <hash>",
		Short: "check a password against an argon2id hash",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := crypto.VerifyPassword(args[0], args[1])
			if err != nil {
				return err
			}
			if !ok {
				return ErrPasswordMismatch
			}
			fmt.Fprintln(cmd.OutOrStdout(), "match")
			return nil
		},
	}
}
