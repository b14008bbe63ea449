package parse

import (
	"errors"

	"github.com/zhuyadong/libcss/bytecode"
)

// Parse errors. A parser returning ErrInvalid has restored its cursor
// and produced nothing; ErrNomem additionally means the style arena is
// exhausted and the caller should abort the stylesheet.
var (
	ErrInvalid = errors.New("css: invalid declaration")
	ErrNomem   = errors.New("css: out of memory")
)

// Stylesheet owns the style buffers produced by the parsers. An optional
// octet budget models allocation exhaustion; a sheet whose budget was
// never set is unlimited, while SetBudget(0) refuses every allocation.
type Stylesheet struct {
	styles []*bytecode.Style

	budgeted  bool
	remaining int
}

// NewStylesheet creates an empty stylesheet with no budget.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{}
}

// SetBudget bounds the total octets of style bytecode the sheet will
// allocate. Exceeding it makes CreateStyle return ErrNomem.
func (s *Stylesheet) SetBudget(octets int) {
	s.budgeted = true
	s.remaining = octets
}

// CreateStyle allocates a style buffer of exactly size octets.
func (s *Stylesheet) CreateStyle(size uint32) (*bytecode.Style, error) {
	if s.budgeted {
		if int(size) > s.remaining {
			return nil, ErrNomem
		}
		s.remaining -= int(size)
	}
	return bytecode.NewStyle(size), nil
}

// Add transfers ownership of a completed style to the sheet.
func (s *Stylesheet) Add(st *bytecode.Style) {
	s.styles = append(s.styles, st)
}

// Styles returns the styles owned by the sheet.
func (s *Stylesheet) Styles() []*bytecode.Style {
	return s.styles
}
