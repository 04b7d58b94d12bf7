package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"kaomojiworld/internal/catalog"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the slug index to a spreadsheet for content audits",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := catalog.Default()
		idx := catalog.BuildIndex(c)

		if err := writeIndexSheet(idx, exportOut); err != nil {
			return fmt.Errorf("export index: %w", err)
		}

		dropped := c.ItemCount() - idx.Len()
		fmt.Printf("wrote %d entries to %s (%d dropped by slug collisions)\n", idx.Len(), exportOut, dropped)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "catalogue.xlsx", "Output file path")
}

func writeIndexSheet(idx *catalog.Index, path string) error {
	f := excelize.NewFile()
	const sheet = "Sheet1"

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	header := []interface{}{"Slug", "Name", "Value", "Top Category", "Subcategory", "Description"}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, e := range idx.Entries() {
		row := []interface{}{e.Slug, e.Item.Name, e.Item.Value, e.TopCategory, e.SubCategory, e.Description}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	return f.SaveAs(path)
}
