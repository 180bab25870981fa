package main

import (
	"fmt"

	compose "github.com/grindlemire/go-compose"
)

const sectionSize = 10

// feed lists items grouped under sticky section headers.
func feed(items int, header, row func(i int) compose.Component) compose.Component {
	children := make([]compose.Component, 0, items+items/sectionSize+1)
	for i := range items {
		if i%sectionSize == 0 {
			section := i / sectionSize
			children = append(children, compose.Sticky(
				compose.Keyed(fmt.Sprintf("section-%d", section), header(section)),
			))
		}
		children = append(children, compose.Keyed(fmt.Sprintf("item-%d", i), row(i)))
	}
	return compose.List(children...)
}
