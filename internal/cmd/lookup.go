package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"msgcode-generator/internal/match"
	"msgcode-generator/internal/table"
)

type Lookup struct {
	Table string `arg:"" help:"Table file to query"`

	Code string `help:"Wire code to resolve to a message name and decoder module"`
	Name string `help:"Message name to resolve to a wire code"`
}

// Run is called by Kong when the lookup command is executed. Answers follow
// the generated modules: a code that appears twice resolves to its first
// line, and a code outside the table resolves to undefined.
func (l *Lookup) Run(logger *slog.Logger) error {
	if (l.Code == "") == (l.Name == "") {
		return errors.New("exactly one of --code or --name is required")
	}

	records, err := table.LoadFile(l.Table)
	if err != nil {
		return err
	}

	logger.Debug("loaded table", "path", l.Table, "records", len(records))

	if l.Code != "" {
		code, err := strconv.ParseUint(l.Code, 10, 16)
		if err != nil {
			return fmt.Errorf("invalid message code %q: %w", l.Code, err)
		}

		for _, rec := range records {
			if rec.Code == uint16(code) {
				fmt.Printf("%s\t%s\n", rec.Name, rec.ModuleRef)

				return nil
			}
		}

		fmt.Println("undefined")

		return nil
	}

	names := make([]string, 0, len(records))
	for _, rec := range records {
		if rec.Name == l.Name {
			fmt.Println(rec.Code)

			return nil
		}

		names = append(names, rec.Name)
	}

	msg := fmt.Sprintf("unknown message name %q", l.Name)
	if sugg := match.Suggest(l.Name, names, 3); len(sugg) > 0 {
		msg += " (did you mean " + strings.Join(sugg, ", ") + "?)"
	}

	return errors.New(msg)
}
