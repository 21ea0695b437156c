package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/service"
)

const interactiveHelp = `Commands:
  g, generate          generate a new password
  c, copy              copy the current password to the clipboard
  l, length <n>        set the length (1-20)
  t, toggle <class>    toggle uppercase, lowercase, numbers or symbols
  h, help              show this help
  q, quit              exit`

// RunInteractive drives s from line-based commands read from r until quit or EOF.
// Generation and clipboard errors are reported on w and do not end the loop.
func RunInteractive(ctx context.Context, r io.Reader, w io.Writer, s *service.Session) error {
	scanner := bufio.NewScanner(r)

	fmt.Fprintln(w, "=== Password Generator (interactive mode) ===")
	fmt.Fprintln(w, interactiveHelp)
	printStatus(w, s)

	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "q", "quit", "exit":
			return nil
		case "h", "help", "?":
			fmt.Fprintln(w, interactiveHelp)
			continue
		case "g", "generate":
			pw, level, err := s.Generate()
			if err != nil {
				fmt.Fprintf(w, "error: %v\n", err)
				continue
			}
			fmt.Fprintf(w, "Password: %s\n", pw)
			fmt.Fprintf(w, "Strength: %s (%s)\n", level, level.Color())
			continue
		case "c", "copy":
			copyCtx, cancel := context.WithTimeout(ctx, copyTimeout)
			err := s.Copy(copyCtx)
			cancel()
			if err != nil {
				fmt.Fprintf(w, "error: %v\n", err)
				continue
			}
			fmt.Fprintln(w, "Password copied!")
			continue
		case "l", "length":
			if err := setLength(s, fields[1:]); err != nil {
				fmt.Fprintf(w, "error: %v\n", err)
				continue
			}
		case "t", "toggle":
			if len(fields) < 2 {
				fmt.Fprintln(w, "error: toggle needs a character class")
				continue
			}
			c, err := crypto.ParseCharClass(fields[1])
			if err != nil {
				fmt.Fprintf(w, "error: %v\n", err)
				continue
			}
			s.SetClass(c, !s.Options().Has(c))
		default:
			fmt.Fprintf(w, "unknown command %q (h for help)\n", fields[0])
			continue
		}

		printStatus(w, s)
	}
}

func setLength(s *service.Session, args []string) error {
	if len(args) == 0 {
		return errors.New("length needs a number")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid length %q", args[0])
	}
	if n < crypto.MinLength || n > crypto.MaxLength {
		return fmt.Errorf("length must be between %d and %d", crypto.MinLength, crypto.MaxLength)
	}
	s.SetLength(n)
	return nil
}

func printStatus(w io.Writer, s *service.Session) {
	opts := s.Options()
	var b strings.Builder
	fmt.Fprintf(&b, "length %d |", opts.Length)
	for _, c := range crypto.AllClasses() {
		mark := " "
		if opts.Has(c) {
			mark = "x"
		}
		fmt.Fprintf(&b, " %s [%s]", c, mark)
	}
	level := s.Strength()
	fmt.Fprintf(&b, " | strength %s (%s)", level, level.Color())
	fmt.Fprintln(w, b.String())
}
