package gen

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/proptab/proptab/table"
)

// Each generated declaration is a fixed-size array of rune literals so the
// consumer gets the table without any runtime parsing.
var docTmpl = template.Must(template.New("document").Parse(`// Code generated by proptab; DO NOT EDIT.
//
// Source: {{ .SourceURL }}
// Unicode version: {{ .UnicodeVersion }}

package {{ .PackageName }}
{{ range .Tables }}
var {{ .Name }} = [...]rune{ {{- .Literals }}}
{{ end -}}
`))

type document struct {
	SourceURL      string
	UnicodeVersion string
	PackageName    string
	Tables         []*tableView
}

type tableView struct {
	Name     string
	Literals string
}

const literalsPerLine = 8

// genDocument renders the full output text: the provenance header followed by
// one declaration per table, in table order.
func genDocument(cfg *Config, tables []*table.Table) ([]byte, error) {
	doc := &document{
		SourceURL:      cfg.ListingURL,
		UnicodeVersion: cfg.UnicodeVersion,
		PackageName:    cfg.PackageName,
	}
	for _, t := range tables {
		doc.Tables = append(doc.Tables, &tableView{
			Name:     t.Name,
			Literals: genLiterals(t.CodePoints),
		})
	}
	var b strings.Builder
	err := docTmpl.Execute(&b, doc)
	if err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func genLiterals(cps []rune) string {
	if len(cps) == 0 {
		return ""
	}
	var b strings.Builder
	for i, cp := range cps {
		if i%literalsPerLine == 0 {
			fmt.Fprint(&b, "\n\t")
		} else {
			fmt.Fprint(&b, " ")
		}
		fmt.Fprintf(&b, "%v,", escapeCodePoint(cp))
	}
	fmt.Fprint(&b, "\n")
	return b.String()
}

// escapeCodePoint renders a code point as an escaped rune literal with at
// least 4 uppercase hex digits, like '\u0041' or '\U0001D400'.
func escapeCodePoint(cp rune) string {
	if cp > 0xFFFF {
		return fmt.Sprintf(`'\U%08X'`, cp)
	}
	return fmt.Sprintf(`'\u%04X'`, cp)
}
