package gen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flavioheleno/stockbook/encode"
)

var invader = &encode.Packed{
	Width:  11,
	Height: 8,
	Data:   []byte{0x20, 0x82, 0x20, 0xfe, 0x37, 0x6f, 0xff, 0x7f, 0x68, 0x28, 0xd8},
}

// parse checks src is a valid Go file and returns its top-level value names.
func parse(t *testing.T, src []byte) (*ast.File, []string) {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "stamp.go", src, parser.ParseComments)
	require.NoError(t, err, "generated source:\n%s", src)

	var names []string
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}
		for _, spec := range gd.Specs {
			for _, n := range spec.(*ast.ValueSpec).Names {
				names = append(names, n.Name)
			}
		}
	}
	return f, names
}

func TestGenerateStatic(t *testing.T) {
	out, err := Generate(invader, Options{Package: "sprites", Name: "Invader", Source: "assets/invader.png"})
	require.NoError(t, err)
	assert.Nil(t, out.Bin)

	f, names := parse(t, out.Go)
	assert.Equal(t, "sprites", f.Name.Name)
	assert.Equal(t, []string{"invaderData", "Invader"}, names)

	src := string(out.Go)
	assert.True(t, strings.HasPrefix(src, "// Code generated by stampgen from \"assets/invader.png\"; DO NOT EDIT.\n"))
	assert.Contains(t, src, "var invaderData = [11]byte{\n\t0x20, 0x82, 0x20, 0xfe, 0x37, 0x6f, 0xff, 0x7f, 0x68, 0x28, 0xd8,\n}")
	assert.Contains(t, src, "// Invader is the 11x8 stamp of assets/invader.png.\n")
	assert.Contains(t, src, "stockbook.FromRawUnchecked(stockbook.StaticSize[[11]byte, [8]byte]{}, stockbook.DataOf(invaderData[:]))")
	assert.NotContains(t, src, "embed")
}

func TestGenerateDynamic(t *testing.T) {
	out, err := Generate(invader, Options{Package: "main", Name: "invader", Source: "invader.png", Size: Dynamic})
	require.NoError(t, err)

	_, names := parse(t, out.Go)
	assert.Equal(t, []string{"invaderData", "invader"}, names)
	assert.Contains(t, string(out.Go), "stockbook.FromRaw(stockbook.Dynamic(11, 8), invaderData[:])")
}

func TestGenerateEmbed(t *testing.T) {
	out, err := Generate(invader, Options{Package: "sprites", Name: "Invader", Source: "invader.png", Embed: true})
	require.NoError(t, err)

	assert.Equal(t, invader.Data, out.Bin)
	assert.Equal(t, "invader.bin", out.BinName)

	f, names := parse(t, out.Go)
	assert.Equal(t, []string{"invaderData", "Invader"}, names)
	require.Len(t, f.Imports, 2)
	assert.Equal(t, `"embed"`, f.Imports[0].Path.Value)

	src := string(out.Go)
	assert.Contains(t, src, "//go:embed invader.bin\nvar invaderData []byte\n")
	assert.Contains(t, src, "stockbook.FromRaw(stockbook.StaticSize[[11]byte, [8]byte]{}, invaderData)")
}

func TestGenerateLongData(t *testing.T) {
	p := &encode.Packed{Width: 16, Height: 16, Data: make([]byte, 32)}
	p.Data[31] = 0xAB

	out, err := Generate(p, Options{Package: "icons", Name: "Square", Source: "square.png", Size: Dynamic})
	require.NoError(t, err)
	parse(t, out.Go)

	src := string(out.Go)
	assert.Equal(t, 3, strings.Count(src, "\n\t0x"), "32 bytes should span three rows")
	assert.Contains(t, src, "0xab,\n}")
}

func TestGenerateEmpty(t *testing.T) {
	out, err := Generate(&encode.Packed{}, Options{Package: "p", Name: "Empty", Source: "empty.png"})
	require.NoError(t, err)
	parse(t, out.Go)
	assert.Contains(t, string(out.Go), "[0]byte{")
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		p    *encode.Packed
		opts Options
		want error
	}{
		{"bad package", invader, Options{Package: "my-pkg", Name: "X"}, ErrInvalidPackage},
		{"keyword package", invader, Options{Package: "func", Name: "X"}, ErrInvalidPackage},
		{"bad name", invader, Options{Package: "p", Name: "1x"}, ErrInvalidName},
		{"empty name", invader, Options{Package: "p"}, ErrInvalidName},
		{"bad size", invader, Options{Package: "p", Name: "X", Size: "huge"}, ErrInvalidSize},
		{"short data", &encode.Packed{Width: 3, Height: 3, Data: []byte{0}}, Options{Package: "p", Name: "X"}, ErrShortData},
		{"negative width", &encode.Packed{Width: -3, Height: 3, Data: []byte{0, 0}}, Options{Package: "p", Name: "X"}, ErrImageTooLarge},
		{"overflowing area", &encode.Packed{Width: 1 << (strconv.IntSize - 3), Height: 8, Data: []byte{0}}, Options{Package: "p", Name: "X"}, ErrImageTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.p, tt.opts)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnexport(t *testing.T) {
	assert.Equal(t, "invader", unexport("Invader"))
	assert.Equal(t, "x", unexport("X"))
	assert.Equal(t, "égal", unexport("Égal"))
}
