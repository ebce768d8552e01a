package eventbuffer

import "fmt"

// UnorderedErr is raised by Push when the supplied offset does not strictly
// exceed the last buffered offset. Per spec §4.1.4 this is a programmer
// error, not an operational one: callers should treat it as fatal for the
// session rather than retry.
type UnorderedErr[O any] struct {
	Last    O
	Offered O
}

func (e *UnorderedErr[O]) Error() string {
	return fmt.Sprintf("eventbuffer: unordered push: last=%v offered=%v", e.Last, e.Offered)
}
