package queries

import (
	"errors"

	"deliverytracking/internal/pkg/errs"
)

const (
	// DefaultPageSize matches the list endpoints' fixed page of twenty.
	DefaultPageSize = 20
	MaxPageSize     = 100

	// DefaultProblemPageSize is the page of a delivery's problem list.
	DefaultProblemPageSize = 10

	// MaxPageNumber keeps Offset far from int overflow.
	MaxPageNumber = 1_000_000
)

// Page selects a window of a list projection. Page numbers start at 1.
type Page struct {
	number int
	size   int
}

func NewPage(number, size int) (Page, error) {
	var p Page
	if err := errors.Join(p.setNumber(number), p.setSize(size)); err != nil {
		return Page{}, err
	}
	return p, nil
}

func (p Page) Number() int { return p.number }

func (p Page) Size() int { return p.size }

func (p Page) Offset() int { return (p.number - 1) * p.size }

func (p *Page) setNumber(number int) error {
	if number < 1 || number > MaxPageNumber {
		return errs.NewValueIsOutOfRangeError("page", number, 1, MaxPageNumber)
	}
	p.number = number
	return nil
}

func (p *Page) setSize(size int) error {
	if size < 1 || size > MaxPageSize {
		return errs.NewValueIsOutOfRangeError("page size", size, 1, MaxPageSize)
	}
	p.size = size
	return nil
}
