package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 12
	DefaultPage  = 1
	Unbounded    = -1
)

var ErrInvalidParameter = errors.New("invalid parameter")

type Page struct {
	Limit int
	Page  int
}

func (p Page) Bounded() bool { return p.Limit != Unbounded }

func (p Page) Offset() int {
	if !p.Bounded() {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// ParsePage reads limit and page. limit=-1 disables pagination; any other
// limit below 1 is rejected, as is a page below 1.
func ParsePage(limitRaw, pageRaw string) (Page, error) {
	p := Page{Limit: DefaultLimit, Page: DefaultPage}

	if s := strings.TrimSpace(limitRaw); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || (v < 1 && v != Unbounded) {
			return Page{}, fmt.Errorf("limit %q: %w", limitRaw, ErrInvalidParameter)
		}
		p.Limit = v
	}

	if s := strings.TrimSpace(pageRaw); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return Page{}, fmt.Errorf("page %q: %w", pageRaw, ErrInvalidParameter)
		}
		p.Page = v
	}

	return p, nil
}
