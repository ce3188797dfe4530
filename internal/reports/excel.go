// ad-rental-platform/internal/reports/excel.go
package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteExcel сохраняет отчёт в файл Excel: сводка, помесячная выручка
// и топ клиентов на одном листе.
func WriteExcel(data *ReportData, path string) error {
	f := excelize.NewFile()
	sheetName := "Отчёт"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(sheetName, "A1", data.Title)
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Период: %s — %s", data.PeriodStart, data.PeriodEnd))

	row := 4
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Подтверждённые платежи")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), data.Summary.ConfirmedTotal.InexactFloat64())
	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Неподтверждённые платежи")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), data.Summary.UnconfirmedTotal.InexactFloat64())
	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Загрузка площадок")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), fmt.Sprintf("%.0f%%", data.Utilization.Utilization*100))
	row += 2

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Месяц")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), "Выручка")
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), "Платежей")
	row++
	for _, point := range data.Monthly {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), point.Month)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), point.Total.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), point.Count)
		row++
	}
	row++

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Клиент")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), "Сумма договоров")
	row++
	for _, client := range data.TopClients {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), client.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), client.Total.InexactFloat64())
		row++
	}

	return f.SaveAs(path)
}
