package interpreter

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// String returns the machine state as a table.
func (ip *Interpreter) String() string {
	header := table.Row{"cursor", "steps", "hand"}
	row := table.Row{ip.Cursor, ip.Steps, ip.Hand.String()}

	for n, cell := range ip.Cells {
		header = append(header, fmt.Sprintf("[%d]", n))
		row = append(row, cell.String())
	}

	header = append(header, "inbox")
	if ip.Inbox == nil {
		row = append(row, "none")
	} else {
		row = append(row, ip.Inbox.Len())
	}

	tw := table.NewWriter()
	tw.SetTitle("Machine")
	tw.AppendHeader(header)
	tw.AppendRow(row)

	return tw.Render()
}
