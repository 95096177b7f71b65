package display

import (
	"fmt"
	"strings"

	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/engine/frame"
	"golang.org/x/net/html"
)

// Section is the painting phase an item belongs to within its stacking context.
type Section uint8

// Sections in painting order.
const (
	BackgroundAndBorders Section = iota
	BlockBackgroundsAndBorders
	Content
	Outlines
)

func (s Section) String() string {
	switch s {
	case BackgroundAndBorders:
		return "bg"
	case BlockBackgroundsAndBorders:
		return "block-bg"
	case Content:
		return "content"
	}
	return "outlines"
}

// BaseItem is the state common to all display items.
type BaseItem struct {
	Bounds            dimen.Rect // relative to the stacking context
	Node              *html.Node // originating node, opaque
	Section           Section
	StackingContextID StackingContextID
}

// Base returns the item itself; it lets concrete items satisfy Item by embedding.
func (b *BaseItem) Base() *BaseItem {
	return b
}

// Item is a paint command.
type Item interface {
	Base() *BaseItem
	String() string
}

// PropertyBindingKey identifies an animated property. Zero means the value
// is static.
type PropertyBindingKey uint64

// ColorBinding is a color which is either a static value or bound to an
// animated property.
type ColorBinding struct {
	Key   PropertyBindingKey
	Value frame.Color
}

// StaticColor binds a fixed color.
func StaticColor(c frame.Color) ColorBinding {
	return ColorBinding{Value: c}
}

// RectangleItem fills its bounds with a color.
type RectangleItem struct {
	BaseItem
	Color ColorBinding
}

func (r *RectangleItem) String() string {
	return fmt.Sprintf("rect%v %v sc=%d %v", r.Bounds, r.Section, r.StackingContextID, r.Color.Value)
}

// BorderItem paints the borders inside its bounds.
type BorderItem struct {
	BaseItem
	Widths [4]dimen.Dimen
	Colors [4]frame.Color
}

func (b *BorderItem) String() string {
	return fmt.Sprintf("border%v %v sc=%d", b.Bounds, b.Section, b.StackingContextID)
}

// TextItem paints a run of text.
type TextItem struct {
	BaseItem
	Text     string
	Color    frame.Color
	FontSize dimen.Dimen
	Baseline dimen.Dimen // relative to the stacking context
}

func (t *TextItem) String() string {
	return fmt.Sprintf("text%v %q sc=%d", t.Bounds, t.Text, t.StackingContextID)
}

// ImageItem paints a replaced image.
type ImageItem struct {
	BaseItem
	Source string
}

func (i *ImageItem) String() string {
	return fmt.Sprintf("image%v %s sc=%d", i.Bounds, i.Source, i.StackingContextID)
}

// PushStackingContextItem starts the items of a real stacking context.
// Its bounds are the context's bounds in the parent's coordinate system.
type PushStackingContextItem struct {
	BaseItem
	Context *StackingContext
}

func (p *PushStackingContextItem) String() string {
	return fmt.Sprintf("push sc=%d%v", p.Context.ID, p.Bounds)
}

// PopStackingContextItem ends the items of a real stacking context.
type PopStackingContextItem struct {
	BaseItem
	ContextID StackingContextID
}

func (p *PopStackingContextItem) String() string {
	return fmt.Sprintf("pop sc=%d", p.ContextID)
}

// DisplayList is the ordered sequence of paint commands for a page.
type DisplayList struct {
	Items []Item
}

// Len returns the number of items.
func (dl DisplayList) Len() int {
	return len(dl.Items)
}

func (dl DisplayList) String() string {
	var sb strings.Builder
	for i, item := range dl.Items {
		fmt.Fprintf(&sb, "%3d %s\n", i, item.String())
	}
	return sb.String()
}
