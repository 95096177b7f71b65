package display

import (
	"slices"
)

// BuildState is used while walking the flow tree to build display items.
type BuildState struct {
	PipelineID uint32
	// Context items of the visited flow go into. Flows set this before
	// adding items.
	CurrentStackingContextID StackingContextID
	contexts                 *CollectionState
	items                    map[StackingContextID][]Item
}

// NewBuildState creates a build state for the stacking contexts collected in cs.
func NewBuildState(cs *CollectionState) *BuildState {
	return &BuildState{
		PipelineID: cs.PipelineID,
		contexts:   cs,
		items:      make(map[StackingContextID][]Item),
	}
}

// AddDisplayItem appends an item to the items of its stacking context.
func (bs *BuildState) AddDisplayItem(item Item) {
	id := item.Base().StackingContextID
	bs.items[id] = append(bs.items[id], item)
}

// ItemCount returns the number of items added so far.
func (bs *BuildState) ItemCount() int {
	n := 0
	for _, items := range bs.items {
		n += len(items)
	}
	return n
}

// ToDisplayList flattens the collected items in painting order.
func (bs *BuildState) ToDisplayList() DisplayList {
	var list DisplayList
	bs.appendContext(&list, bs.contexts.Root())
	tracer().Debugf("display list has %d items", len(list.Items))
	return list
}

// appendContext appends the items of sc in the order of CSS 2.1 Appendix E:
// background and borders of the context root, children with negative z-index,
// block-level backgrounds, floats, inline content, children with z-index
// zero or above, outlines.
func (bs *BuildState) appendContext(list *DisplayList, sc *StackingContext) {
	if sc.Type == Real && !sc.IsRoot() {
		list.Items = append(list.Items, &PushStackingContextItem{
			BaseItem: BaseItem{
				Bounds:            sc.Bounds,
				Node:              sc.Node,
				Section:           BackgroundAndBorders,
				StackingContextID: sc.ParentID,
			},
			Context: sc,
		})
	}
	children := slices.Clone(sc.children)
	slices.SortStableFunc(children, func(a, b *StackingContext) int {
		return int(a.ZIndex) - int(b.ZIndex)
	})
	items := bs.items[sc.ID]
	bs.appendSection(list, items, BackgroundAndBorders)
	for _, ch := range children {
		if ch.ZIndex < 0 {
			bs.appendContext(list, ch)
		}
	}
	bs.appendSection(list, items, BlockBackgroundsAndBorders)
	for _, ch := range children {
		if ch.Type == PseudoFloat && ch.ZIndex == 0 {
			bs.appendContext(list, ch)
		}
	}
	bs.appendSection(list, items, Content)
	for _, ch := range children {
		if ch.ZIndex >= 0 && !(ch.Type == PseudoFloat && ch.ZIndex == 0) {
			bs.appendContext(list, ch)
		}
	}
	bs.appendSection(list, items, Outlines)
	if sc.Type == Real && !sc.IsRoot() {
		list.Items = append(list.Items, &PopStackingContextItem{
			BaseItem: BaseItem{
				Bounds:            sc.Bounds,
				Node:              sc.Node,
				Section:           Outlines,
				StackingContextID: sc.ParentID,
			},
			ContextID: sc.ID,
		})
	}
}

func (bs *BuildState) appendSection(list *DisplayList, items []Item, section Section) {
	for _, item := range items {
		if item.Base().Section == section {
			list.Items = append(list.Items, item)
		}
	}
}
