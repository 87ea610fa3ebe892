package lsj

import (
	"github.com/fatih/color"
)

// Colors maps syntax classes of LSJ output to sprintf-style colorizers.
type Colors struct {
	Key    func(string, ...any) string
	String func(string, ...any) string
	Number func(string, ...any) string
	Bool   func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Key:    color.RGB(196, 96, 16).SprintfFunc(),
		String: color.RGB(8, 196, 16).SprintfFunc(),
		Number: color.RGB(128, 216, 236).SprintfFunc(),
		Bool:   color.CyanString,
	}
}

func (es *EncState) key(k string) string {
	q := quote(k)
	if es.colors == nil {
		return q
	}
	return es.colors.Key("%s", q)
}

func (es *EncState) str(s string) string {
	q := quote(s)
	if es.colors == nil {
		return q
	}
	return es.colors.String("%s", q)
}

func (es *EncState) num(s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Number("%s", s)
}

func (es *EncState) boolean(s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Bool("%s", s)
}
