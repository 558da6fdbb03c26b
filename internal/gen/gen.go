// Package gen writes the Go source of embedded stamps for stampgen.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/flavioheleno/stockbook"
	"github.com/flavioheleno/stockbook/encode"
)

// SizeKind selects the Size the generated stamp is declared with.
type SizeKind string

const (
	// Static declares a stockbook.StaticSize stamp. The exact buffer length is
	// known when generating, so the unchecked constructor is used.
	Static SizeKind = "static"
	// Dynamic declares a stockbook.DynamicSize stamp.
	Dynamic SizeKind = "dynamic"
)

var (
	ErrInvalidPackage = errors.New("gen: package must be a Go identifier")
	ErrInvalidName    = errors.New("gen: name must be a Go identifier")
	ErrInvalidSize    = errors.New("gen: size must be static or dynamic")
	ErrShortData      = errors.New("gen: data is shorter than the image")
	ErrImageTooLarge  = errors.New("gen: image dimensions are negative or too large")
)

// Options configures Generate.
type Options struct {
	// Package is the package clause of the generated file.
	Package string
	// Name is the variable holding the stamp. Its data array is named after it.
	Name string
	// Source is the image path recorded in the header.
	Source string
	// Size defaults to Static.
	Size SizeKind
	// Embed stores the pixels in a separate binary file pulled in with
	// go:embed, instead of an array literal. Embedded data always uses the
	// checked constructor.
	Embed bool
	// BinName is the file name of the embedded data; defaults to the
	// lowercase Name plus ".bin".
	BinName string
}

// Output is the result of Generate.
type Output struct {
	// Go is the formatted Go source.
	Go []byte
	// Bin is the raw packed data for Options.Embed, nil otherwise.
	Bin []byte
	// BinName is the name Bin must be written under, next to the Go file.
	BinName string
}

func (o *Options) validate() error {
	if !token.IsIdentifier(o.Package) {
		return fmt.Errorf("%w: %q", ErrInvalidPackage, o.Package)
	}
	if !token.IsIdentifier(o.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, o.Name)
	}
	switch o.Size {
	case "":
		o.Size = Static
	case Static, Dynamic:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSize, o.Size)
	}
	if o.Embed && o.BinName == "" {
		o.BinName = strings.ToLower(o.Name) + ".bin"
	}
	return nil
}

type templateData struct {
	Options
	Width, Height int
	DataName      string
	Len           int
	Rows          []string
}

var source = template.Must(template.New("stamp").Parse(`// Code generated by stampgen from {{printf "%q" .Source}}; DO NOT EDIT.

package {{.Package}}

import (
{{- if .Embed}}
	_ "embed"
{{end}}
	"github.com/flavioheleno/stockbook"
)
{{if .Embed}}
//go:embed {{.BinName}}
var {{.DataName}} []byte
{{else}}
var {{.DataName}} = [{{.Len}}]byte{
{{- range .Rows}}
	{{.}}
{{- end}}
}
{{end}}
// {{.Name}} is the {{.Width}}x{{.Height}} stamp of {{.Source}}.
{{- if .Embed}}
var {{.Name}} = stockbook.FromRaw({{if eq .Size "static"}}stockbook.StaticSize[[{{.Width}}]byte, [{{.Height}}]byte]{}{{else}}stockbook.Dynamic({{.Width}}, {{.Height}}){{end}}, {{.DataName}})
{{- else if eq .Size "static"}}
var {{.Name}} = stockbook.FromRawUnchecked(stockbook.StaticSize[[{{.Width}}]byte, [{{.Height}}]byte]{}, stockbook.DataOf({{.DataName}}[:]))
{{- else}}
var {{.Name}} = stockbook.FromRaw(stockbook.Dynamic({{.Width}}, {{.Height}}), {{.DataName}}[:])
{{- end}}
`))

// bytesPerRow is the number of bytes per line of the array literal.
const bytesPerRow = 12

// Generate returns the Go source declaring p as a stamp.
func Generate(p *encode.Packed, opts Options) (*Output, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if !stockbook.ValidSize(p.Width, p.Height) {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, p.Width, p.Height)
	}
	n := len(p.Data)
	if want := stockbook.DataLen(p.Width, p.Height); n < want {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrShortData, n, want)
	}

	d := templateData{
		Options:  opts,
		Width:    p.Width,
		Height:   p.Height,
		DataName: unexport(opts.Name) + "Data",
		Len:      n,
	}
	for i := 0; i < n; i += bytesPerRow {
		var row strings.Builder
		for _, b := range p.Data[i:min(i+bytesPerRow, n)] {
			fmt.Fprintf(&row, "0x%02x, ", b)
		}
		d.Rows = append(d.Rows, strings.TrimSuffix(row.String(), " "))
	}

	var buf bytes.Buffer
	if err := source.Execute(&buf, d); err != nil {
		return nil, fmt.Errorf("gen: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: formatting generated source: %w", err)
	}

	out := &Output{Go: src}
	if opts.Embed {
		out.Bin = p.Data
		out.BinName = opts.BinName
	}
	return out, nil
}

// unexport lowercases the first letter of an identifier.
func unexport(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}
