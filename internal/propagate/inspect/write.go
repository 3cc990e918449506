package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Formats are the supported output formats of [Write].
var Formats = []string{"text", "json", "yaml", "toml", "msgpack"}

// Write writes the summaries in the format.
func Write(w io.Writer, format string, enums []Enum) error {
	switch format {
	case "text":
		return writeText(w, enums)

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(enums)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(enums); err != nil {
			return err
		}
		return enc.Close()

	case "toml":
		// TOML documents are tables. Enums are written as an array of tables.
		doc := struct {
			Enums []Enum `toml:"enum"`
		}{enums}
		return toml.NewEncoder(w).Encode(doc)

	case "msgpack":
		return msgpack.NewEncoder(w).Encode(enums)
	}
	return fmt.Errorf("unknown format %q; must be one of %s", format, strings.Join(Formats, ", "))
}

// writeText writes the summaries as aligned tables.
//
//	Size (shapes.go:5:6)
//	  #  VARIANT   KIND    MARKERS  FIELDS
//	  0  TooSmall  single  bad      uint32
//	  1  Empty     unit    good
//	  good: [Empty] struct{}
//	  bad:  [TooSmall] uint32
//	  tables: good=02 bad=01 two-state=true
func writeText(w io.Writer, enums []Enum) error {
	var b strings.Builder
	for i, e := range enums {
		if i != 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s (%s)\n", e.Name, e.Pos)

		rows := [][]string{{"#", "VARIANT", "KIND", "MARKERS", "FIELDS"}}
		for _, v := range e.Variants {
			rows = append(rows, []string{
				strconv.Itoa(v.Index),
				v.Name,
				v.Kind,
				v.Markers,
				strings.Join(v.Fields, ", "),
			})
		}
		writeTable(&b, "  ", rows)

		for _, g := range e.Good {
			fmt.Fprintf(&b, "  good: [%s] %s\n", strings.Join(g.Variants, " "), g.Payload)
		}
		for _, g := range e.Bad {
			fmt.Fprintf(&b, "  bad:  [%s] %s\n", strings.Join(g.Variants, " "), g.Payload)
		}
		fmt.Fprintf(&b, "  tables: good=%s bad=%s two-state=%t\n", e.GoodTable, e.BadTable, e.TwoState)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeTable writes rows with columns padded to their widest cell. The last
// column is not padded.
func writeTable(b *strings.Builder, indent string, rows [][]string) {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	for _, row := range rows {
		var line strings.Builder
		line.WriteString(indent)
		for i, cell := range row {
			if i == len(row)-1 {
				line.WriteString(cell)
				break
			}
			line.WriteString(runewidth.FillRight(cell, widths[i]))
			line.WriteString("  ")
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}
}
