// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package document

import (
	"fmt"

	"github.com/asraa/envoy/json"
)

// A builderState tracks which parse events the tree builder will accept
// next. The builder starts in stateExpectRoot and is complete when it
// reaches stateExpectFinished.
type builderState byte

const (
	stateExpectRoot builderState = iota
	stateExpectKeyOrEndObject
	stateExpectValueOrStartObjectArray
	stateExpectArrayValueOrEndArray
	stateExpectFinished
)

var builderStateStr = [...]string{
	stateExpectRoot:                    "ExpectRoot",
	stateExpectKeyOrEndObject:          "ExpectKeyOrEndObject",
	stateExpectValueOrStartObjectArray: "ExpectValueOrStartObjectArray",
	stateExpectArrayValueOrEndArray:    "ExpectArrayValueOrEndArray",
	stateExpectFinished:                "ExpectFinished",
}

func (s builderState) String() string { return builderStateStr[s] }

// A treeBuilder consumes the event stream of a single JSON document and
// incrementally constructs a Value tree. It implements [json.Sink].
//
// The stack holds the currently-open containers, innermost last. A key event
// is buffered until the value it introduces arrives. Structural events
// delivered in a state that does not permit them are a contract violation by
// the event source, not a property of the input text, and make the builder
// panic; a conforming tokenizer never produces such sequences. Scalar events
// in an unexpected position (for example a bare scalar root) are instead
// refused by returning false, turning them into a tokenizer-level parse
// error.
type treeBuilder struct {
	state builderState
	stack []*Value
	key   string
	root  *Value
}

var _ json.Sink = (*treeBuilder)(nil)

func newTreeBuilder() *treeBuilder { return &treeBuilder{state: stateExpectRoot} }

func (b *treeBuilder) top() *Value { return b.stack[len(b.stack)-1] }

func (b *treeBuilder) push(v *Value) { b.stack = append(b.stack, v) }

// pop removes the innermost open container and moves to the state implied by
// the container it re-exposes, or to ExpectFinished at the root.
func (b *treeBuilder) pop() {
	b.stack = b.stack[:len(b.stack)-1]
	switch {
	case len(b.stack) == 0:
		b.state = stateExpectFinished
	case b.top().IsObject():
		b.state = stateExpectKeyOrEndObject
	default:
		b.state = stateExpectArrayValueOrEndArray
	}
}

func (b *treeBuilder) violation(event string) {
	panic(fmt.Sprintf("document: %s event in state %v", event, b.state))
}

// openContainer attaches a fresh container node at the current position and
// makes it the innermost open container. next is the state entered inside
// the new container.
func (b *treeBuilder) openContainer(event string, c *Value, next builderState) bool {
	switch b.state {
	case stateExpectValueOrStartObjectArray:
		b.top().obj[b.key] = c
	case stateExpectArrayValueOrEndArray:
		b.top().arr = append(b.top().arr, c)
	case stateExpectRoot:
		b.root = c
	default:
		b.violation(event)
	}
	b.push(c)
	b.state = next
	return true
}

func (b *treeBuilder) StartObject() bool {
	return b.openContainer("startObject", NewObject(), stateExpectKeyOrEndObject)
}

func (b *treeBuilder) EndObject() bool {
	if b.state != stateExpectKeyOrEndObject {
		b.violation("endObject")
	}
	b.pop()
	return true
}

func (b *treeBuilder) Key(key string) bool {
	if b.state != stateExpectKeyOrEndObject {
		b.violation("key")
	}
	b.key = key
	b.state = stateExpectValueOrStartObjectArray
	return true
}

func (b *treeBuilder) StartArray() bool {
	return b.openContainer("startArray", NewArray(), stateExpectArrayValueOrEndArray)
}

func (b *treeBuilder) EndArray() bool {
	if b.state != stateExpectArrayValueOrEndArray {
		b.violation("endArray")
	}
	b.pop()
	return true
}

// value attaches a completed scalar node at the current position. Unlike the
// structural events, a scalar in an unexpected state is refused rather than
// treated as a builder bug: the tokenizer cannot know the engine only
// accepts object and array roots.
func (b *treeBuilder) value(v *Value) bool {
	switch b.state {
	case stateExpectValueOrStartObjectArray:
		b.top().obj[b.key] = v
		b.state = stateExpectKeyOrEndObject
	case stateExpectArrayValueOrEndArray:
		b.top().arr = append(b.top().arr, v)
	default:
		return false
	}
	return true
}

func (b *treeBuilder) BooleanValue(v bool) bool { return b.value(NewBoolean(v)) }

func (b *treeBuilder) IntegerValue(v int64) bool { return b.value(NewInteger(v)) }

// UnsignedValue stores the unsigned payload in the engine's 64-bit signed
// representation. Values above math.MaxInt64 wrap to negative; the range of
// the stored form is an accepted limitation of the numeric model.
func (b *treeBuilder) UnsignedValue(v uint64) bool { return b.value(NewInteger(int64(v))) }

func (b *treeBuilder) FloatValue(v float64) bool { return b.value(NewDouble(v)) }

func (b *treeBuilder) NullValue() bool { return b.value(NewNull()) }

func (b *treeBuilder) StringValue(v string) bool { return b.value(NewString(v)) }

// BinaryValue is always refused; the document model has no binary kind.
func (b *treeBuilder) BinaryValue([]byte) bool { return false }

// ParseError acknowledges the tokenizer's report of malformed input. The
// error itself is surfaced by the tokenizer; the builder discards any
// partial tree and accepts no further events.
func (b *treeBuilder) ParseError(int, string, string) bool {
	b.root = nil
	b.state = stateExpectFinished
	return true
}
