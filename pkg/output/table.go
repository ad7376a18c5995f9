package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/romsort/romsort/pkg/models"
)

// RenderScanSummary prints the scan analysis: a table of discovered
// platforms followed by excluded and unclassified folders
func RenderScanSummary(w io.Writer, result *models.ScanResult) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Shortcode", "Platform", "Folders", "Files"})

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, code := range result.Shortcodes() {
		record := result.Platforms[code]
		data = append(data, []string{
			record.Shortcode,
			record.DisplayName,
			strconv.Itoa(record.FolderCount),
			strconv.Itoa(record.FileCount),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d platforms, %d files",
		len(result.Platforms), result.TotalFiles())
	if result.Stats.EmptyDirectories > 0 {
		fmt.Fprintf(w, ", %d empty folders skipped", result.Stats.EmptyDirectories)
	}
	fmt.Fprintln(w)

	if len(result.Excluded) > 0 {
		fmt.Fprintf(w, "\n%s\n", color.YellowString("Excluded folders:"))
		folders := make([]string, 0, len(result.Excluded))
		for folder := range result.Excluded {
			folders = append(folders, folder)
		}
		sort.Strings(folders)
		for _, folder := range folders {
			fmt.Fprintf(w, "  %s (%s)\n", folder, result.Excluded[folder])
		}
	}

	if len(result.Unclassified) > 0 {
		fmt.Fprintf(w, "\n%s\n", color.YellowString("Unclassified folders:"))
		for _, folder := range result.Unclassified {
			fmt.Fprintf(w, "  %s\n", folder)
		}
	}

	return nil
}
