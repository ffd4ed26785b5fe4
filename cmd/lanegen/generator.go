// Copyright 2025 The vpicgo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/vpicgo/lanes"
)

//go:embed ops.go.tmpl
var opsSource string

//go:embed portable.go.tmpl
var portableSource string

var funcs = template.FuncMap{
	// list "i%d" 4 is "i0, i1, i2, i3".
	"list": func(format string, n int) string { return join(format, n, ", ") },
	// lines writes one formatted line per lane.
	"lines": func(format string, n int) string { return join(format, n, "\n") },
	"dec":   func(k int) int { return k - 1 },
}

func join(format string, n int, sep string) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(format, i)
	}
	return strings.Join(parts, sep)
}

var (
	opsTemplate      = template.Must(template.New("ops").Funcs(funcs).Parse(opsSource))
	portableTemplate = template.Must(template.New("portable").Funcs(funcs).Parse(portableSource))
)

// WidthConfig is the template data for one lane width.
type WidthConfig struct {
	N int

	// Wide lists the record sizes K > 4 that get LoadNxKTr/StoreNxKTr
	// variants taking an array of vectors.
	Wide []int

	// PortableTag is the build constraint of portable_gen.go: the portable
	// backend is built when requested or when no hardware backend applies.
	PortableTag string
}

// Align is the byte alignment of a vector.
func (c WidthConfig) Align() int { return 4 * c.N }

// Last is the index of the last lane.
func (c WidthConfig) Last() int { return c.N - 1 }

// IntOps are the compound assignment operators of Int.
func (c WidthConfig) IntOps() []lanes.Op { return lanes.Ops() }

// FloatOps are the compound assignment operators of Float.
func (c WidthConfig) FloatOps() []lanes.Op {
	return slices.DeleteFunc(lanes.Ops(), func(op lanes.Op) bool { return !op.FloatOK() })
}

// Widths holds the configuration of every supported width. The portable
// tags must stay the complement of the hand-written backends' tags.
var Widths = map[int]WidthConfig{
	4: {
		N:           4,
		PortableTag: "v4_portable || (!v4_sse && !v4_altivec && !(amd64 && goexperiment.simd) && !ppc64 && !ppc64le)",
	},
	8: {
		N:           8,
		Wide:        []int{8},
		PortableTag: "v8_portable || (!v8_avx2 && !v8_avx && !(amd64 && goexperiment.simd))",
	},
	16: {
		N:           16,
		Wide:        []int{8, 16},
		PortableTag: "v16_portable || !v16_avx512",
	},
}

// Generator writes the generated sources of one width package.
type Generator struct {
	Width     int
	OutputDir string
}

// Run renders and writes the files. It returns the paths written.
func (g *Generator) Run() ([]string, error) {
	cfg, ok := Widths[g.Width]
	if !ok {
		return nil, fmt.Errorf("unsupported width %d (want 4, 8 or 16)", g.Width)
	}

	var written []string
	for _, f := range []struct {
		name string
		tmpl *template.Template
	}{
		{"ops_gen.go", opsTemplate},
		{"portable_gen.go", portableTemplate},
	} {
		filename := filepath.Join(g.OutputDir, f.name)
		src, err := Render(f.tmpl, cfg, filename)
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(filename, src, 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", filename, err)
		}
		written = append(written, filename)
	}
	return written, nil
}

// Render executes tmpl for cfg and formats the result as filename.
func Render(tmpl *template.Template, cfg WidthConfig, filename string) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return nil, fmt.Errorf("execute %s template: %w", tmpl.Name(), err)
	}
	// The templates import exactly what they use; only format and group.
	out, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return out, nil
}
