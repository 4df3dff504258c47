package error

import (
	"errors"
	"iter"
)

// wrapErr is one link of the cause chain: a context value plus the chain
// beneath it. Links are created only by Wrap, so the chain is strictly
// linear and cycle-free. Error, Is and As defer to the context value so
// its typed identity survives at any depth.
type wrapErr struct {
	context error
	cause   error
}

func (w *wrapErr) Error() string { return w.context.Error() }

func (w *wrapErr) Unwrap() error { return w.cause }

func (w *wrapErr) Is(target error) bool { return errors.Is(w.context, target) }

func (w *wrapErr) As(target any) bool { return errors.As(w.context, target) }

// flatten walks the chain starting at head and returns every cause,
// outermost first. Wrap links contribute their context value; an Error
// container is transparent (its message duplicates its own chain head);
// any other error contributes itself before its errors.Unwrap tail.
func flatten(head error) []error {
	var links []error

	for err := head; err != nil; {
		switch v := err.(type) {
		case *wrapErr:
			links = append(links, v.context)
			err = v.cause
		case *Error:
			err = v.inner
		default:
			links = append(links, err)
			err = errors.Unwrap(err)
		}
	}

	return links
}

// Chain is a view over an Error's cause sequence, outermost first.
//
// It is double-ended and length-aware: elements may be taken from either
// end in any interleaving, and Len always reports how many remain. A
// Chain is single-pass; call Error.Chain again to restart.
type Chain struct {
	links []error
	front int
	back  int // exclusive
}

// Chain returns a fresh iterator over every cause in e's chain.
func (e *Error) Chain() *Chain {
	links := flatten(e.inner)
	return &Chain{links: links, back: len(links)}
}

// Len returns the number of causes not yet produced by either end.
func (c *Chain) Len() int {
	return c.back - c.front
}

// Next produces the next cause from the front (outermost) end.
func (c *Chain) Next() (error, bool) {
	if c.front >= c.back {
		return nil, false
	}

	err := c.links[c.front]
	c.front++

	return err, true
}

// NextBack produces the next cause from the back (innermost) end.
func (c *Chain) NextBack() (error, bool) {
	if c.front >= c.back {
		return nil, false
	}

	c.back--

	return c.links[c.back], true
}

// All drains the remaining causes front to back as a range-over iterator.
func (c *Chain) All() iter.Seq[error] {
	return func(yield func(error) bool) {
		for {
			err, ok := c.Next()
			if !ok || !yield(err) {
				return
			}
		}
	}
}
