package layout

import (
	"container/heap"
	"sync"

	"github.com/reidswan/servo/core"
	"github.com/reidswan/servo/core/config"
	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/engine/frame"
	"github.com/reidswan/servo/engine/frame/display"
	"github.com/reidswan/servo/engine/frame/flow"
	"github.com/reidswan/servo/engine/text"
)

// Page lays out flow trees for a viewport.
type Page struct {
	dimen.Rect                     // viewport
	Background frame.Color         // page background
	ctx        *flow.LayoutContext // shared by all layout runs of the page
	queue      *EventQ             // every page manages an event queue (e.g., reflow events)
}

var pipelineIDs struct {
	sync.Mutex
	next uint32
}

// NewPage creates a page for a configuration. Viewport size and
// background color are taken from conf.Viewport.
func NewPage(conf *config.Config, m text.Measurer) (*Page, error) {
	if conf == nil {
		conf = config.NewDefaultConfig()
	}
	if m == nil {
		return nil, core.Error(core.EMISSING, "page needs a text measurer")
	}
	size, err := conf.Viewport.Size()
	if err != nil {
		return nil, err
	}
	bg, err := conf.Viewport.BackgroundColor()
	if err != nil {
		return nil, err
	}
	pipelineIDs.Lock()
	pipelineIDs.next++
	id := pipelineIDs.next
	pipelineIDs.Unlock()
	page := &Page{
		Rect:       dimen.RectAt(dimen.Origin, size),
		Background: frame.ColorOf(bg),
		ctx:        NewContext(id, m, size, conf.Layout),
		queue:      NewEventQ(),
	}
	return page, nil
}

// Context returns the layout context of the page.
func (page *Page) Context() *flow.LayoutContext {
	return page.ctx
}

// Layout runs all layout passes over a flow tree and returns its display
// list.
//
// Intrinsic inline sizes are bubbled after generated content has been
// resolved and before floats are speculated, for every flow carrying
// damage BubbleISizes. With interleaved bubbling these are only the flows
// whose generated text has changed since construction.
func (page *Page) Layout(root flow.Flow, mode flow.RelayoutMode) display.DisplayList {
	ctx := page.ctx
	ResolveGeneratedContent(root, ctx)
	BubbleISizes(root)
	GuessFloatPlacement(root)
	if ctx.Config.ParallelReflow {
		ReflowParallel(ctx, root, mode)
	} else {
		Reflow(root, ctx, mode)
	}
	StoreOverflow(ctx, root)
	ComputeStackingRelativePositions(root)
	list := BuildDisplayListForSubtree(root, ctx, page.Background, page.Size())
	tracer().Infof("page layout done, %d display items", list.Len())
	return list
}

// Post queues an event for the next call to Update.
func (page *Page) Post(e *Event) {
	page.queue.PushEvent(e)
}

// Update processes queued events, highest priority first, and lays out root
// again if any of them asked for it. An abort event discards all events of
// lower priority. Update returns false if no layout has been necessary.
func (page *Page) Update(root flow.Flow) (display.DisplayList, bool) {
	mode, relayout := flow.Incremental, false
	for page.queue.Len() > 0 {
		e := page.queue.PopEvent()
		switch e.etype {
		case ReflowEvent:
			relayout = true
			if f, ok := e.body.(flow.Flow); ok {
				damageWithAncestors(f, flow.ReflowAll|flow.StoreOverflow|flow.Reposition|flow.Repaint)
			}
		case ForceReflowEvent:
			relayout, mode = true, flow.Force
		case AbortEvent:
			tracer().Infof("layout events aborted")
			page.queue.Clear()
		}
	}
	if !relayout {
		return display.DisplayList{}, false
	}
	return page.Layout(root, mode), true
}

func damageWithAncestors(f flow.Flow, d flow.RestyleDamage) {
	for ; f != nil; f = f.Base().Parent() {
		f.Base().RestyleDamage.Insert(d)
	}
}

// --- Event Queue -----------------------------------------------------------

// Event is a request to a page.
type Event struct {
	priority uint8       // priority of the item in the queue.
	etype    EventType   // event type
	body     interface{} // arbitrary event body, depending on event type
}

// EventType is the type of a page event.
type EventType uint8

// Types of page events.
const (
	VoidEvent        EventType = iota
	ReflowEvent                // body is the damaged flow
	ForceReflowEvent           // lay out everything
	AbortEvent                 // drop pending events
)

// NewEvent creates an event with a priority.
func NewEvent(prio uint8, etype EventType) *Event {
	return &Event{
		priority: prio,
		etype:    etype,
	}
}

// NewReflowEvent creates an event requesting layout for a damaged flow.
func NewReflowEvent(prio uint8, f flow.Flow) *Event {
	e := NewEvent(prio, ReflowEvent)
	e.body = f
	return e
}

// A EventQ implements heap.Interface and holds events.
type EventQ struct {
	mutex  sync.Mutex
	events []*Event
}

// NewEventQ creates an empty event queue.
func NewEventQ() *EventQ {
	return &EventQ{}
}

// Len is part of interface container/heap.
func (q *EventQ) Len() int { return len(q.events) }

// Less is part of interface container/heap.
func (q *EventQ) Less(i, j int) bool {
	// We want Pop to give us the highest, not lowest, priority so we use greater than here.
	return q.events[i].priority > q.events[j].priority
}

// Swap is part of interface container/heap.
func (q *EventQ) Swap(i, j int) {
	q.events[i], q.events[j] = q.events[j], q.events[i]
}

// PushEvent pushes an event onto the queue.
func (q *EventQ) PushEvent(e *Event) {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	heap.Push(q, e)
}

// PopEvent pops the event with the highest priority from the queue.
func (q *EventQ) PopEvent() *Event {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	return heap.Pop(q).(*Event)
}

// Clear removes all events.
func (q *EventQ) Clear() {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	q.events = nil
}

// Push is part of interface container/heap.
// Not intended for client use.
func (q *EventQ) Push(x interface{}) {
	q.events = append(q.events, x.(*Event))
}

// Pop is part of interface container/heap.
// Not intended for client use.
func (q *EventQ) Pop() interface{} {
	old := q.events
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	q.events = old[0 : n-1]
	return item
}
