package render

import (
	"strconv"

	"github.com/google/uuid"
)

const elementIDPrefix = "woopspro-product-slider-"

// Context carries per-page render state. Element ids are unique within one
// Context; create a new one for every page or request.
type Context struct {
	RequestID string
	counter   int
}

// NewContext returns a fresh context with its own request id.
func NewContext() *Context {
	return &Context{RequestID: uuid.New().String()}
}

// NextElementID returns the DOM id for the next slider on the page.
func (c *Context) NextElementID() string {
	c.counter++
	return elementIDPrefix + strconv.Itoa(c.counter)
}

// Rendered reports how many element ids have been handed out.
func (c *Context) Rendered() int {
	return c.counter
}
