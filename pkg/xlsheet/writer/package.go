package writer

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/parser"
	"github.com/xuri/excelize/v2"
)

// Merged regions and page breaks are added to the worksheet parts after
// excelize has serialized the package. excelize.MergeCell blanks the cells
// covered by a region and redirects later writes to its top-left cell, and
// excelize.InsertPageBreak cannot express a break after the first row or
// column.

type xlsxMergeCells struct {
	XMLName xml.Name        `xml:"mergeCells"`
	Count   int             `xml:"count,attr"`
	Cells   []xlsxMergeCell `xml:"mergeCell"`
}

type xlsxMergeCell struct {
	Ref string `xml:"ref,attr"`
}

type xlsxBreaks struct {
	XMLName          xml.Name
	Count            int       `xml:"count,attr"`
	ManualBreakCount int       `xml:"manualBreakCount,attr"`
	Brk              []xlsxBrk `xml:"brk"`
}

type xlsxBrk struct {
	ID  int  `xml:"id,attr"`
	Max int  `xml:"max,attr"`
	Man bool `xml:"man,attr"`
}

// Elements that follow rowBreaks and colBreaks in a worksheet.
var breakFollowers = []string{
	"customProperties", "cellWatches", "ignoredErrors", "smartTags",
	"drawing", "legacyDrawing", "legacyDrawingHF", "drawingHF", "picture",
	"oleObjects", "controls", "webPublishItems", "tableParts", "extLst",
}

func needsPatch(data models.SheetData) bool {
	return len(data.MergedRegions) > 0 || len(data.Breaks.Rows) > 0 || len(data.Breaks.Cols) > 0
}

// patchPackage rewrites the worksheet parts of pkg that need merged regions
// or page breaks. pkg is returned unchanged when no sheet needs either.
func patchPackage(pkg []byte, sheets []models.SheetData) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	if err != nil {
		return nil, err
	}
	paths, err := parser.WorksheetPaths(zr)
	if err != nil {
		return nil, err
	}

	byPath := make(map[string]models.SheetData)
	for _, data := range sheets {
		if !needsPatch(data) {
			continue
		}
		p, ok := paths[data.Name]
		if !ok {
			return nil, fmt.Errorf("worksheet part of sheet %q not found", data.Name)
		}
		byPath[p] = data
	}
	if len(byPath) == 0 {
		return pkg, nil
	}

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	for _, file := range zr.File {
		content, err := readEntry(file)
		if err != nil {
			return nil, err
		}
		if data, ok := byPath[file.Name]; ok {
			if content, err = patchWorksheet(content, data); err != nil {
				return nil, fmt.Errorf("patching %s: %w", file.Name, err)
			}
		}
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     file.Name,
			Method:   zip.Deflate,
			Modified: file.Modified,
		})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(content); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func readEntry(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// patchWorksheet inserts <mergeCells> right after <sheetData> and the break
// lists before the first element that must follow them.
func patchWorksheet(part []byte, data models.SheetData) ([]byte, error) {
	dataEnd, err := sheetDataEnd(part)
	if err != nil {
		return nil, err
	}

	var merges []byte
	if len(data.MergedRegions) > 0 {
		if merges, err = xml.Marshal(mergeCellsElement(data.MergedRegions)); err != nil {
			return nil, err
		}
	}

	var breaks []byte
	for _, el := range breakElements(data.Breaks) {
		b, err := xml.Marshal(el)
		if err != nil {
			return nil, err
		}
		breaks = append(breaks, b...)
	}

	at := breaksOffset(part, dataEnd)

	out := make([]byte, 0, len(part)+len(merges)+len(breaks))
	out = append(out, part[:dataEnd]...)
	out = append(out, merges...)
	out = append(out, part[dataEnd:at]...)
	out = append(out, breaks...)
	out = append(out, part[at:]...)
	return out, nil
}

func sheetDataEnd(part []byte) (int, error) {
	for _, tag := range []string{"</sheetData>", "<sheetData/>"} {
		if i := bytes.Index(part, []byte(tag)); i >= 0 {
			return i + len(tag), nil
		}
	}
	return 0, fmt.Errorf("worksheet has no sheetData")
}

// breaksOffset returns where the break lists go. The search starts at
// pageMargins so nested extLst elements earlier in the part are skipped.
func breaksOffset(part []byte, from int) int {
	if i := bytes.Index(part[from:], []byte("<pageMargins")); i >= 0 {
		from += i
	}
	at := -1
	for _, name := range breakFollowers {
		if i := indexElement(part[from:], name); i >= 0 && (at < 0 || from+i < at) {
			at = from + i
		}
	}
	if at < 0 {
		at = bytes.LastIndex(part, []byte("</worksheet>"))
	}
	if at < from {
		return len(part)
	}
	return at
}

// indexElement finds the start tag of element name, not of a longer name
// sharing its prefix.
func indexElement(part []byte, name string) int {
	open := []byte("<" + name)
	offset := 0
	for {
		i := bytes.Index(part[offset:], open)
		if i < 0 {
			return -1
		}
		end := offset + i + len(open)
		if end < len(part) && (part[end] == ' ' || part[end] == '>' || part[end] == '/') {
			return offset + i
		}
		offset = end
	}
}

func mergeCellsElement(regions []models.CellRange) xlsxMergeCells {
	el := xlsxMergeCells{Count: len(regions)}
	for _, region := range regions {
		el.Cells = append(el.Cells, xlsxMergeCell{Ref: region.TopLeft() + ":" + region.BottomRight()})
	}
	return el
}

// breakElements builds rowBreaks and colBreaks. Negative ids are dropped.
func breakElements(breaks models.PageBreaks) []xlsxBreaks {
	var out []xlsxBreaks
	if el, ok := breakList("rowBreaks", breaks.Rows, excelize.MaxColumns-1); ok {
		out = append(out, el)
	}
	if el, ok := breakList("colBreaks", breaks.Cols, excelize.TotalRows-1); ok {
		out = append(out, el)
	}
	return out
}

func breakList(name string, ids []int, maxVal int) (xlsxBreaks, bool) {
	el := xlsxBreaks{XMLName: xml.Name{Local: name}}
	for _, id := range ids {
		if id < 0 {
			continue
		}
		el.Brk = append(el.Brk, xlsxBrk{ID: id, Max: maxVal, Man: true})
	}
	el.Count = len(el.Brk)
	el.ManualBreakCount = len(el.Brk)
	return el, el.Count > 0
}
