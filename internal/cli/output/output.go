package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"

	"campus/internal/models"
)

// DefaultFormat picks table output for terminals and json for pipes
func DefaultFormat() string {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return "table"
	}
	return "json"
}

// Threads prints a thread list in the requested format
func Threads(list []models.Thread, format string) error {
	switch normalize(format) {
	case "json":
		return printJSON(map[string]any{"threads": list})
	case "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tTITLE\tAUTHOR\tREPLIES\tRESOLVED\tUPDATED")
		for _, t := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%v\t%s\n",
				t.ID, t.Type, t.Title, t.AuthorName, t.ReplyCount, t.Resolved,
				t.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	case "plain":
		for _, t := range list {
			fmt.Printf("%s %s %s\n", t.ID, t.Type, t.Title)
		}
		return nil
	case "quiet":
		for _, t := range list {
			fmt.Println(t.ID)
		}
		return nil
	default:
		return errors.New("invalid --format value")
	}
}

// Stats prints derived thread statistics in the requested format
func Stats(s models.ThreadStats, format string) error {
	switch normalize(format) {
	case "json":
		return printJSON(s)
	case "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TOTAL\tOPEN\tRESOLVED\tCLASSROOM\tGENERIC")
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\n", s.Total, s.Open, s.Resolved, s.Classroom, s.Generic)
		return w.Flush()
	case "plain", "quiet":
		fmt.Printf("total=%d open=%d resolved=%d classroom=%d generic=%d\n",
			s.Total, s.Open, s.Resolved, s.Classroom, s.Generic)
		return nil
	default:
		return errors.New("invalid --format value")
	}
}

func normalize(format string) string {
	format = strings.TrimSpace(strings.ToLower(format))
	if format == "" {
		return DefaultFormat()
	}
	return format
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
