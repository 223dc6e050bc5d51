package render

import (
	"encoding/json"
	"io"

	"github.com/joshuapare/bytewin/pkg/window"
)

// Document is the JSON form of a comparison.
type Document struct {
	File1       string `json:"file1"`
	File2       string `json:"file2"`
	Center      int    `json:"center"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Len1        int    `json:"len1"`
	Len2        int    `json:"len2"`
	Differences int    `json:"differences"`
	Rows        []Row  `json:"rows"`
}

// Row is one compared index with hex-rendered bytes.
type Row struct {
	Pos   int    `json:"pos"`
	File1 string `json:"file1"`
	File2 string `json:"file2"`
	Diff  bool   `json:"diff"`
}

// NewDocument converts res for JSON output.
func NewDocument(file1, file2 string, res *window.Result) Document {
	doc := Document{
		File1:       file1,
		File2:       file2,
		Center:      res.Center,
		Start:       res.Start,
		End:         res.End,
		Len1:        res.LenA,
		Len2:        res.LenB,
		Differences: res.Differences(),
		Rows:        make([]Row, 0, len(res.Rows)),
	}
	for _, r := range res.Rows {
		doc.Rows = append(doc.Rows, Row{
			Pos:   r.Index,
			File1: window.HexByte(r.A),
			File2: window.HexByte(r.B),
			Diff:  r.Differs,
		})
	}
	return doc
}

// JSON writes res as an indented JSON document.
func JSON(w io.Writer, file1, file2 string, res *window.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewDocument(file1, file2, res))
}
