package argv

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// UsageError is a configuration error that should be answered with the
// program's usage text.
type UsageError struct {
	Program *Program
	Err     error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Program.Name, e.Err)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// Usage writes the program name, flag table and examples to w.
func (p *Program) Usage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "USAGE: %s [VALUES] [OPTIONS] [ARGS]\n", p.Name)
	_, _ = fmt.Fprintln(w, "OPTIONS:")

	table := tablewriter.NewWriter(w)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("")
	table.SetCenterSeparator("")
	table.SetRowSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetTablePadding("    ")
	table.SetNoWhiteSpace(true)

	for _, flag := range p.Flags {
		name := fmt.Sprintf("    -%c", flag.ID)
		if flag.TakesValues() {
			name += " " + flag.ValueName + "..."
		}

		table.Append([]string{name, flag.Description})
	}

	for _, flag := range p.Long {
		name := "    --" + flag.Name
		if flag.ValueName != "" {
			name += "=" + flag.ValueName
		}

		table.Append([]string{name, flag.Description})
	}

	table.Append([]string{"    --help", "Show this help."})
	table.Render()

	if len(p.Examples) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w, "EXAMPLES:")
	for _, example := range p.Examples {
		_, _ = fmt.Fprintf(w, "    %s\n", example)
	}
}
