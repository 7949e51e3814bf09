// Package parser hydrates sheet snapshots from xlsx files.
package parser

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"io/fs"
	"strings"
)

// ReadWorksheets decodes the worksheet part of every sheet in an xlsx file.
func ReadWorksheets(xlsxPath string) (map[string]*Worksheet, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	paths, err := WorksheetPaths(&r.Reader)
	if err != nil {
		return nil, err
	}

	result := make(map[string]*Worksheet, len(paths))
	for sheetName, partPath := range paths {
		data, err := readZipFile(&r.Reader, partPath)
		if err != nil || data == nil {
			continue
		}
		ws, err := ParseWorksheet(data)
		if err != nil {
			continue
		}
		result[sheetName] = ws
	}

	return result, nil
}

// WorksheetPaths maps sheet names to the zip paths of their worksheet parts.
func WorksheetPaths(r *zip.Reader) (map[string]string, error) {
	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return map[string]string{}, err
	}

	sheetsInfo := parseWorkbookSheets(workbookXML)
	if len(sheetsInfo) == 0 {
		return map[string]string{}, nil
	}

	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || wbRelsXML == nil {
		return map[string]string{}, err
	}

	return parseWorkbookRels(wbRelsXML, sheetsInfo), nil
}

// readZipFile returns the content of a part, or nil when it is absent.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	data, err := fs.ReadFile(r, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

type xlsxWorkbook struct {
	Sheets []xlsxWorkbookSheet `xml:"sheets>sheet"`
}

// xlsxWorkbookSheet matches r:id by its local name.
type xlsxWorkbookSheet struct {
	Name string `xml:"name,attr"`
	RID  string `xml:"id,attr"`
}

type xlsxRelationships struct {
	Relationships []xlsxRelationship `xml:"Relationship"`
}

type xlsxRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// parseWorkbookSheets maps relationship ids to sheet names.
func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string)
	var wb xlsxWorkbook
	if err := xml.Unmarshal(data, &wb); err != nil {
		return result
	}
	for _, sheet := range wb.Sheets {
		if sheet.Name != "" && sheet.RID != "" {
			result[sheet.RID] = sheet.Name
		}
	}
	return result
}

// parseWorkbookRels maps sheet names to worksheet part paths.
func parseWorkbookRels(data []byte, sheetsInfo map[string]string) map[string]string {
	result := make(map[string]string)
	var rels xlsxRelationships
	if err := xml.Unmarshal(data, &rels); err != nil {
		return result
	}
	for _, rel := range rels.Relationships {
		sheetName, ok := sheetsInfo[rel.ID]
		if !ok || !strings.HasSuffix(rel.Type, "/worksheet") {
			continue
		}
		result[sheetName] = resolveRelativePath(rel.Target, "xl")
	}
	return result
}
