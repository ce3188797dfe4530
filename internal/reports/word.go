// ad-rental-platform/internal/reports/word.go
package reports

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// Минимальный пакет WordprocessingML собирается вручную: документ состоит
// из абзацев, которых достаточно для текстовой версии отчёта.

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// WriteWord сохраняет текстовую версию отчёта в файл Word (docx).
func WriteWord(data *ReportData, path string) error {
	lines := []string{
		data.Title,
		fmt.Sprintf("Период: %s — %s", data.PeriodStart, data.PeriodEnd),
		"",
		fmt.Sprintf("Подтверждённые платежи: %s (%d шт.)",
			data.Summary.ConfirmedTotal.StringFixed(2), data.Summary.ConfirmedCount),
		fmt.Sprintf("Неподтверждённые платежи: %s (%d шт.)",
			data.Summary.UnconfirmedTotal.StringFixed(2), data.Summary.UnconfirmedCount),
		fmt.Sprintf("Загрузка площадок: %d из %d (%.0f%%)",
			data.Utilization.OccupiedAssets, data.Utilization.TotalAssets,
			data.Utilization.Utilization*100),
		"",
		"Выручка по месяцам:",
	}
	for _, point := range data.Monthly {
		lines = append(lines, fmt.Sprintf("  %s: %s", point.Month, point.Total.StringFixed(2)))
	}
	lines = append(lines, "", "Крупнейшие клиенты:")
	for _, client := range data.TopClients {
		lines = append(lines, fmt.Sprintf("  %s: %s", client.Name, client.Total.StringFixed(2)))
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := zip.NewWriter(file)
	parts := map[string]string{
		"[Content_Types].xml": contentTypesXML,
		"_rels/.rels":         relsXML,
		"word/document.xml":   documentXML(lines),
	}
	// Порядок записи фиксируем, чтобы [Content_Types].xml шёл первым.
	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"} {
		part, err := w.Create(name)
		if err != nil {
			return err
		}
		if _, err := part.Write([]byte(parts[name])); err != nil {
			return err
		}
	}
	return w.Close()
}

// documentXML собирает word/document.xml из списка абзацев.
func documentXML(lines []string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, line := range lines {
		b.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		b.WriteString(escapeXML(line))
		b.WriteString(`</w:t></w:r></w:p>`)
	}
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
