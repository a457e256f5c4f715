package content

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnsafeSVG is returned when pasted or uploaded icon markup carries active
// content. Icons are stored verbatim and later injected into rendered markup,
// so anything executable is rejected at this trust boundary instead of being
// passed through.
var ErrUnsafeSVG = errors.New("svg contains active content")

var forbiddenSVGElements = map[string]struct{}{
	"script":        {},
	"foreignobject": {},
	"iframe":        {},
	"embed":         {},
	"object":        {},
}

// ScreenSVG validates that markup is well-formed XML rooted at an <svg>
// element and free of script elements, event-handler attributes, and
// javascript: references.
func ScreenSVG(markup string) error {
	dec := xml.NewDecoder(strings.NewReader(markup))
	dec.Strict = false

	sawRoot := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("parse svg: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		name := strings.ToLower(start.Name.Local)
		if !sawRoot {
			if name != "svg" {
				return fmt.Errorf("%w: root element is <%s>, not <svg>", ErrUnsafeSVG, name)
			}
			sawRoot = true
		}
		if _, forbidden := forbiddenSVGElements[name]; forbidden {
			return fmt.Errorf("%w: <%s> element", ErrUnsafeSVG, name)
		}

		for _, attr := range start.Attr {
			attrName := strings.ToLower(attr.Name.Local)
			if strings.HasPrefix(attrName, "on") {
				return fmt.Errorf("%w: %s attribute", ErrUnsafeSVG, attrName)
			}
			if attrName == "href" {
				val := strings.ToLower(strings.TrimSpace(attr.Value))
				if strings.HasPrefix(val, "javascript:") || strings.HasPrefix(val, "data:text/html") {
					return fmt.Errorf("%w: %s target", ErrUnsafeSVG, attrName)
				}
			}
		}
	}

	if !sawRoot {
		return fmt.Errorf("parse svg: no root element")
	}
	return nil
}
