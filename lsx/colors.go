package lsx

import (
	"github.com/fatih/color"
)

type colorClass int

const (
	elemColor colorClass = iota
	nameColor
	valueColor
)

// Colors maps syntax classes of LSX output to sprintf-style colorizers.
type Colors struct {
	Element func(string, ...any) string
	Name    func(string, ...any) string
	Value   func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Element: color.RGB(128, 168, 196).SprintfFunc(),
		Name:    color.RGB(196, 96, 16).SprintfFunc(),
		Value:   color.RGB(8, 196, 16).SprintfFunc(),
	}
}

func (es *EncState) color(class colorClass, s string) string {
	if es.colors == nil {
		return s
	}
	switch class {
	case elemColor:
		return es.colors.Element("%s", s)
	case nameColor:
		return es.colors.Name("%s", s)
	case valueColor:
		return es.colors.Value("%s", s)
	}
	return s
}
