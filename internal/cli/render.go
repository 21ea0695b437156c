package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/vaultpass/passgen-go/internal/model"
)

func render(w io.Writer, format string, resp model.GenerateResponse) error {
	passwords := resp.Passwords
	if passwords == nil {
		passwords = []string{resp.Password}
	}

	switch format {
	case "table":
		renderTable(w, passwords, resp)
	case "plain":
		for i, pw := range passwords {
			if resp.Hashes != nil {
				fmt.Fprintf(w, "%s\t%s\n", pw, resp.Hashes[i])
				continue
			}
			fmt.Fprintln(w, pw)
		}
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}

func renderTable(w io.Writer, passwords []string, resp model.GenerateResponse) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	header := table.Row{"#", "Password", "Strength"}
	if resp.Hashes != nil {
		header = append(header, "Hash")
	}
	t.AppendHeader(header)

	strength := fmt.Sprintf("%s (%s)", resp.Strength, resp.Color)
	for i, pw := range passwords {
		row := table.Row{i + 1, pw, strength}
		if resp.Hashes != nil {
			row = append(row, resp.Hashes[i])
		}
		t.AppendRow(row)
	}
	t.Render()
}
