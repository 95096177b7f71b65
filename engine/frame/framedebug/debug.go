package framedebug

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/engine/frame"
	"github.com/reidswan/servo/engine/frame/flow"
	"github.com/reidswan/servo/engine/frame/layout"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname   string
	BlockTmpl  *template.Template
	InlineTmpl *template.Template
	EdgeTmpl   *template.Template
	cnt        int
}

// ToGraphViz creates a graphical representation of a flow tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
func ToGraphViz(root flow.Flow, w io.Writer) error {
	header, err := template.New("flowTree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	funcs := template.FuncMap{
		"label":    label,
		"fragment": fragmentLabel,
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.BlockTmpl = template.Must(template.New("block").Funcs(funcs).Parse(blockTmpl))
	gparams.InlineTmpl = template.Must(template.New("inline").Funcs(funcs).Parse(inlineTmpl))
	gparams.EdgeTmpl = template.Must(template.New("flowedge").Parse(edgeTmpl))
	if err = header.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[flow.Flow]string, 256)
	if err = flows(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func flows(f flow.Flow, w io.Writer, dict map[flow.Flow]string, gparams *graphParamsType) error {
	gparams.cnt++
	if gparams.cnt == 1000 {
		return nil // guard against errorneous cycles
	}
	if err := node(f, w, dict, gparams); err != nil {
		return err
	}
	tracer().Debugf("flow = %v", f)
	for _, child := range f.Base().Children() {
		if err := flows(child, w, dict, gparams); err != nil {
			return err
		}
		e := cedge{dict[f], dict[child]}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

// Helper structs
type cflow struct {
	F      flow.Flow
	Name   string
	Fill   string
	Border string
}

type cinline struct {
	F         *flow.InlineFlow
	Name      string
	Fragments []*frame.Fragment
}

type cedge struct {
	N1, N2 string
}

func node(f flow.Flow, w io.Writer, dict map[flow.Flow]string, gparams *graphParamsType) error {
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[f] = name
	if in, ok := f.(*flow.InlineFlow); ok {
		return gparams.InlineTmpl.Execute(w, &cinline{F: in, Name: name, Fragments: in.Items()})
	}
	c := &cflow{F: f, Name: name, Fill: "lightblue3"}
	if b := f.AsBlock(); b != nil && !b.Fragment.Style.Background.IsTransparent() {
		c.Fill = colorString(b.Fragment.Style.Background)
	}
	if f.EstablishesStackingContext() {
		c.Border = "peripheries=2"
	}
	return gparams.BlockTmpl.Execute(w, c)
}

func label(f flow.Flow) string {
	b := f.AsBlock()
	if b == nil {
		return fmt.Sprintf("%q", f.Class().String())
	}
	name := frame.NodeName(b.Fragment.Node)
	pos := f.Base().Position
	return fmt.Sprintf("%q", fmt.Sprintf("%s %s %v×%v", b.Fragment.Style.Display.Symbol(),
		name, pos.Width(), pos.Height()))
}

func fragmentLabel(f *frame.Fragment) string {
	var s string
	switch f.Kind {
	case frame.ImageFragment:
		s = "img " + f.Image.Source
	case frame.GeneratedFragment:
		s = "gen"
		if f.Text != nil {
			s += " " + f.Text.Text
		}
	default:
		s = "T " + f.Text.Text
	}
	if len(s) > 14 {
		s = s[:14] + "…"
	}
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	s = strings.ReplaceAll(s, "\"", "'")
	return s
}

func colorString(c frame.Color) string {
	return fmt.Sprintf("\"#%02x%02x%02x\"", c.R, c.G, c.B)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const blockTmpl = `{{ .Name }}	[ label={{ label .F }} shape=box style=filled fillcolor={{ .Fill }} {{ .Border }}] ;
`

const inlineTmpl = `{{ .Name }}	[ label="{{ range $i, $f := .Fragments }}{{ if $i }}\l{{ end }}{{ fragment $f }}{{ end }}" shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`

// --- Border boxes -----------------------------------------------------

type boxDumper struct {
	w   io.Writer
	err error
}

func (d *boxDumper) ShouldProcess(f *frame.Fragment) bool {
	return d.err == nil
}

func (d *boxDumper) Process(f *frame.Fragment, level int, borderBox dimen.Rect) {
	_, d.err = fmt.Fprintf(d.w, "%s%s %v\n", strings.Repeat("  ", level), describe(f), borderBox)
}

func describe(f *frame.Fragment) string {
	switch f.Kind {
	case frame.BoxFragment:
		return frame.NodeName(f.Node)
	case frame.ImageFragment:
		return "img"
	}
	if f.Text == nil {
		return "?"
	}
	return fmt.Sprintf("%q", f.Text.Text)
}

// DumpBorderBoxes writes the page-relative border boxes of all fragments
// of a laid out flow tree, indented by tree depth.
func DumpBorderBoxes(root flow.Flow, w io.Writer) error {
	d := &boxDumper{w: w}
	layout.IterateThroughFlowTreeFragmentBorderBoxes(root, d)
	return d.err
}
