package types

import (
	"fmt"
	"strings"
)

var ElementNameMap = map[string]ElementType{
	"segm":     Segment,
	"segment":  Segment,
	"line":     Segment,
	"1d":       Segment,
	"trig":     Triangle,
	"triangle": Triangle,
	"tri":      Triangle,
	"2d":       Triangle,
}

func NewElementType(name string) (et ElementType, err error) {
	var ok bool
	if et, ok = ElementNameMap[strings.ToLower(strings.TrimSpace(name))]; !ok {
		err = fmt.Errorf("unknown element type %q, use one of segm, trig", name)
	}
	return
}

func (et ElementType) String() string {
	switch et {
	case Segment:
		return "Segment"
	case Triangle:
		return "Triangle"
	}
	return fmt.Sprintf("ElementType(%d)", et)
}
