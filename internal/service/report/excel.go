package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"quotes-backend/internal/storage"
)

type ReportStorage interface {
	GetQuote(ctx context.Context, id int64) (*storage.Quote, error)
}

type ExcelService struct {
	storage ReportStorage
}

func NewExcelService(storage ReportStorage) *ExcelService {
	return &ExcelService{storage: storage}
}

// GenerateQuoteExcel renders one quote as a workbook: header block,
// work-day rows, equipment rows and the totals footer.
func (g *ExcelService) GenerateQuoteExcel(ctx context.Context, quoteID int64) ([]byte, error) {
	quote, err := g.storage.GetQuote(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("fetch quote: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := quote.DocType
	if sheet == "" {
		sheet = "QUOTE"
	}
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	boldStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	// Header block.
	headerRows := [][2]string{
		{quote.DocType + " #", quote.InvoiceNumber},
		{"Date", quote.Date},
		{"Client", quote.ClientCompany},
		{"Contact", quote.POC},
		{"Venue", quote.Venue},
		{"Job", quote.JobDescription},
		{"Period", quote.DateFrom + " - " + quote.DateTo},
	}
	row := 1
	for _, hr := range headerRows {
		f.SetCellValue(sheet, cellName(1, row), hr[0])
		f.SetCellValue(sheet, cellName(2, row), hr[1])
		f.SetCellStyle(sheet, cellName(1, row), cellName(1, row), boldStyle)
		row++
	}
	row++

	// Work days.
	if !quote.HideLabor {
		columns := []string{"Date", "Time In", "Time Out", "Hours", "Regular", "Overtime", "Rate", "Total"}
		for i, name := range columns {
			f.SetCellValue(sheet, cellName(i+1, row), name)
		}
		f.SetCellStyle(sheet, cellName(1, row), cellName(len(columns), row), headerStyle)
		row++

		for _, item := range quote.LineItems {
			f.SetCellValue(sheet, cellName(1, row), item.Date)
			f.SetCellValue(sheet, cellName(2, row), item.TimeIn)
			f.SetCellValue(sheet, cellName(3, row), item.TimeOut)
			if item.IsEnabled() {
				f.SetCellValue(sheet, cellName(4, row), item.TotalHours)
				f.SetCellValue(sheet, cellName(5, row), item.RegularHours)
				f.SetCellValue(sheet, cellName(6, row), item.OvertimeHours)
				f.SetCellValue(sheet, cellName(7, row), item.Rate)
				f.SetCellValue(sheet, cellName(8, row), item.LineTotal)
			} else {
				f.SetCellValue(sheet, cellName(4, row), "holiday")
			}
			row++
		}
		row++
	}

	// Equipment.
	if quote.EquipmentsEnabled && len(quote.EquipmentItems) > 0 {
		columns := []string{"Equipment", "Qty", "Price", "Total"}
		for i, name := range columns {
			f.SetCellValue(sheet, cellName(i+1, row), name)
		}
		f.SetCellStyle(sheet, cellName(1, row), cellName(len(columns), row), headerStyle)
		row++

		for _, item := range quote.EquipmentItems {
			f.SetCellValue(sheet, cellName(1, row), item.Description)
			f.SetCellValue(sheet, cellName(2, row), item.Qty)
			f.SetCellValue(sheet, cellName(3, row), item.Price)
			f.SetCellValue(sheet, cellName(4, row), item.Total)
			row++
		}
		row++
	}

	// Totals footer.
	f.SetCellValue(sheet, cellName(1, row), "Subtotal")
	f.SetCellValue(sheet, cellName(2, row), quote.Subtotal)
	row++
	f.SetCellValue(sheet, cellName(1, row), fmt.Sprintf("Tax %.1f%%", quote.TaxRate))
	f.SetCellValue(sheet, cellName(2, row), quote.Total-quote.Subtotal)
	row++
	f.SetCellValue(sheet, cellName(1, row), "Total")
	f.SetCellValue(sheet, cellName(2, row), quote.Total)
	f.SetCellStyle(sheet, cellName(1, row), cellName(2, row), boldStyle)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
	})
	f.SetColWidth(sheet, "A", "H", 15)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
