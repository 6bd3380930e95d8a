package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	m "rsearch.dev/pkg/rsearch/internal/model"
)

const (
	mebibyte        = 1024 * 1024
	listingTimeForm = "02/01/2006 15:04"
)

func renderListing(entries []m.ListEntry) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("")
	table.SetCenterSeparator("")
	table.SetRowSeparator("")
	table.SetAutoWrapText(false)
	table.SetTablePadding("    ")
	table.SetNoWhiteSpace(true)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for _, entry := range entries {
		table.Append([]string{
			formatType(entry) + formatPermissions(entry),
			formatSize(entry),
			entry.ModTime.Local().Format(listingTimeForm),
			formatName(entry),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func formatType(entry m.ListEntry) string {
	switch {
	case entry.IsDir():
		return "d"
	case entry.IsSymlink():
		return "l"
	default:
		return "-"
	}
}

func formatPermissions(entry m.ListEntry) string {
	if entry.ReadOnly() {
		return "r-"
	}

	return "rw"
}

func formatSize(entry m.ListEntry) string {
	if entry.IsDir() {
		return "-"
	}

	if entry.Size > mebibyte {
		return fmt.Sprintf("%dM", entry.Size/mebibyte)
	}

	return fmt.Sprintf("%d", entry.Size)
}

func formatName(entry m.ListEntry) string {
	if !entry.IsSymlink() {
		return entry.Name
	}

	if entry.LinkErr != nil {
		return entry.Name + " -> can't find linked file"
	}

	return entry.Name + " -> " + entry.LinkTarget
}
