package excel

import (
	"fmt"

	"github.com/Kewen526/jx-data-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// styleSet holds one style ID per cell category. Styles replace the whole
// cell format, so every combination carries its own border and alignment.
type styleSet struct {
	base        int
	header      int
	blockHeader int
	diffCell    int
	title       int
	bannerRed   int
	bannerGreen int
	section     int
	qualOK      int
	qualBad     int
}

func newStyleSet(f *excelize.File) (*styleSet, error) {
	rs := &styleSet{}
	var err error
	if rs.base, err = newCellStyle(f, nil, ""); err != nil {
		return nil, err
	}
	if rs.header, err = newCellStyle(f, &excelize.Font{Bold: true, Size: 10}, utils.COLOR_HEADER_FILL); err != nil {
		return nil, err
	}
	if rs.blockHeader, err = newCellStyle(f, &excelize.Font{Bold: true, Size: 10}, utils.COLOR_BLOCK_FILL); err != nil {
		return nil, err
	}
	if rs.diffCell, err = newCellStyle(f, &excelize.Font{Color: utils.COLOR_RED}, ""); err != nil {
		return nil, err
	}
	if rs.title, err = newCellStyle(f, &excelize.Font{Bold: true, Size: 12}, ""); err != nil {
		return nil, err
	}
	if rs.bannerRed, err = newCellStyle(f, &excelize.Font{Bold: true, Size: 10, Color: utils.COLOR_RED}, ""); err != nil {
		return nil, err
	}
	if rs.bannerGreen, err = newCellStyle(f, &excelize.Font{Bold: true, Size: 10, Color: utils.COLOR_GREEN}, ""); err != nil {
		return nil, err
	}
	if rs.section, err = newCellStyle(f, &excelize.Font{Bold: true, Size: 10, Color: utils.COLOR_SECTION}, ""); err != nil {
		return nil, err
	}
	if rs.qualOK, err = newCellStyle(f, &excelize.Font{Bold: true, Color: utils.COLOR_GREEN}, ""); err != nil {
		return nil, err
	}
	if rs.qualBad, err = newCellStyle(f, &excelize.Font{Bold: true, Color: utils.COLOR_RED}, ""); err != nil {
		return nil, err
	}
	return rs, nil
}

func newCellStyle(f *excelize.File, font *excelize.Font, fillColor string) (int, error) {
	style := &excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Font:      font,
	}
	if fillColor != "" {
		style.Fill = excelize.Fill{Type: "pattern", Color: []string{fillColor}, Pattern: 1}
	}
	return f.NewStyle(style)
}

// sheetNamer assigns legal, unique worksheet names. The first shop with a
// given cleaned name keeps it, later collisions get a truncated name with a
// numeric suffix.
type sheetNamer struct {
	used map[string]int
}

func newSheetNamer() *sheetNamer {
	return &sheetNamer{used: make(map[string]int)}
}

func (n *sheetNamer) assign(name string) string {
	clean := utils.CleanSheetName(name)
	if count, ok := n.used[clean]; ok {
		n.used[clean] = count + 1
		return fmt.Sprintf("%s_%d", utils.TruncateSheetName(clean), count+1)
	}
	n.used[clean] = 1
	return clean
}

func cellRef(col, row int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return fmt.Sprintf("%s%d", name, row)
}

func setColWidths(f *excelize.File, sheet string, widths []float64) error {
	for i, width := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return err
		}
	}
	return nil
}
