package utils

import (
	"errors"
	"fmt"
	"io"
	"os"

	"homehealth-dashboard/internal/api"
	"homehealth-dashboard/internal/report"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func NewTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

// RenderCards prints summary metrics as a two column table.
func RenderCards(title string, cards []report.Card) {
	if len(cards) == 0 {
		return
	}
	t := NewTable()
	if title != "" {
		t.SetTitle(title)
	}
	for _, c := range cards {
		t.AppendRow(table.Row{c.Label, c.Display()})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	t.Render()
}

// ErrorMessage is the one line banner shown for a failed command.
func ErrorMessage(err error) string {
	if errors.Is(err, api.ErrSessionExpired) {
		return "Session expired, run `hhdash login` to sign in again."
	}
	if errors.Is(err, api.ErrNotLoggedIn) {
		return "Not logged in, run `hhdash login` first."
	}
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Error: %s (%s %s, %d)", statusErr.Message(), statusErr.Method, statusErr.Path, statusErr.Status)
	}
	var networkErr *api.NetworkError
	if errors.As(err, &networkErr) {
		return fmt.Sprintf("Error: could not reach the api (%v)", networkErr.Err)
	}
	return fmt.Sprintf("Error: %v", err)
}

func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, text.FgRed.Sprint(ErrorMessage(err)))
}
