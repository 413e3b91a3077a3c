package encode

import (
	"fmt"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	NameColor ColorAttr = iota
	ValueColor
	MarkColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[NameColor] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[ValueColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[MarkColor] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[SepColor] = color.RGB(196, 128, 128).SprintfFunc()
	return colors
}

func (c *Colors) Color(attr ColorAttr, s string) string {
	fn, ok := c.Map[attr]
	if !ok {
		fn = c.Default
	}
	return fn("%s", s)
}

func colorDefault(f string, args ...any) string {
	return fmt.Sprintf(f, args...)
}
