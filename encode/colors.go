package encode

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/scenekit/scenemerge/scene"
)

type Colorable struct {
	Type scene.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Insert  func(string, ...any) string
	Delete  func(string, ...any) string
	Change  func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Insert:  color.GreenString,
		Delete:  color.RedString,
		Change:  color.YellowString,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range scene.Types() {
		able := Colorable{Type: t, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = scene.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = scene.NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Type = scene.BoolType
	colors.Map[able] = color.CyanString

	able.Type = scene.StringType
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	able.Type = scene.ObjectType
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	return colors
}

func colorDefault(msg string, args ...any) string {
	return fmt.Sprintf(msg, args...)
}

func (c *Colors) color(able Colorable) func(string, ...any) string {
	if c == nil {
		return colorDefault
	}
	if f, ok := c.Map[able]; ok {
		return f
	}
	return c.Default
}

func (c *Colors) insert() func(string, ...any) string {
	if c == nil {
		return colorDefault
	}
	return c.Insert
}

func (c *Colors) delete() func(string, ...any) string {
	if c == nil {
		return colorDefault
	}
	return c.Delete
}

func (c *Colors) change() func(string, ...any) string {
	if c == nil {
		return colorDefault
	}
	return c.Change
}
