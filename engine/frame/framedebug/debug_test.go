package framedebug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/engine/frame"
	"github.com/reidswan/servo/engine/frame/flow"
	"github.com/reidswan/servo/engine/frame/layout"
	"github.com/reidswan/servo/engine/text/monospace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() flow.Flow {
	m := monospace.Measurer(nil)
	root := flow.NewBlockFlow(nil, frame.NewStyle(frame.BlockMode))
	style := frame.NewStyle(frame.BlockMode)
	style.Background = frame.Color{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}
	style.Opacity = 0.5
	kid := flow.NewBlockFlow(nil, style)
	in := flow.NewInlineFlow(frame.InheritedStyle(style, frame.InlineMode))
	in.AppendFragment(frame.NewTextFragment(nil, in.Style(), "Hello\tworld", m))
	flow.MustAppend(kid, in)
	return flow.MustAppend(root, kid)
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.framedebug")
	defer teardown()
	//
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(testTree(), &buf))
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, "node00001 -> node00002")
	assert.Contains(t, dot, "node00002 -> node00003")
	assert.Contains(t, dot, `fillcolor="#aabbcc" peripheries=2`)
	assert.Contains(t, dot, `T Hello\tworld`)
}

func TestDumpBorderBoxes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.framedebug")
	defer teardown()
	//
	root := testTree()
	page, err := layout.NewPage(nil, monospace.Measurer(nil))
	require.NoError(t, err)
	page.Layout(root, flow.Force)
	var buf bytes.Buffer
	require.NoError(t, DumpBorderBoxes(root, &buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "<anon> "))
	assert.True(t, strings.HasPrefix(lines[2], `    "Hello world"`))
	w := root.Base().Position.Width()
	assert.Contains(t, lines[0], dimen.RectAt(dimen.Origin, dimen.Size{W: w, H: root.Base().Position.Height()}).String())
}
