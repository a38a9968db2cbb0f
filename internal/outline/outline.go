// Package outline reads the tab-indented documents perm consumes.
//
// Every document shares one shape: blank lines are ignored, the number of
// leading tab characters is the line's level, and only levels 0, 1 and 2
// carry meaning (title, record, sub-record).
package outline

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/buckeye43210/pyPERM/internal/model"
)

// Line is one non-blank outline line.
type Line struct {
	Level int
	Text  string
	No    int // 1-based line number
}

// Read splits r into outline lines. Text is trimmed and NFC-normalized.
func Read(r io.Reader) ([]Line, error) {
	var lines []Line
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	no := 0
	for sc.Scan() {
		no++
		raw := strings.TrimRight(sc.Text(), " \t\r")
		if raw == "" {
			continue
		}
		text := strings.TrimLeft(raw, "\t")
		level := len(raw) - len(text)
		text = norm.NFC.String(strings.TrimSpace(text))
		if text == "" {
			continue
		}
		lines = append(lines, Line{Level: level, Text: text, No: no})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ParseAttributes reads an attribute document: level-1 lines name items,
// level-2 lines list the preceding item's attribute values.
func ParseAttributes(r io.Reader) (model.Catalog, error) {
	lines, err := Read(r)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("outline: read attributes: %w", err)
	}
	var cat model.Catalog
	for _, l := range lines {
		switch l.Level {
		case 1:
			cat.Items = append(cat.Items, model.Item{Name: l.Text})
		case 2:
			if n := len(cat.Items); n > 0 {
				cat.Items[n-1].Attributes = append(cat.Items[n-1].Attributes, l.Text)
			}
		}
	}
	return cat, nil
}

// ParseCategories reads a category document: level-1 lines name categories,
// level-2 lines list the values explicitly belonging to them. A value repeated
// within one category is kept once.
func ParseCategories(r io.Reader) (model.Categories, error) {
	lines, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("outline: read categories: %w", err)
	}
	var cats model.Categories
	var seen map[string]struct{}
	for _, l := range lines {
		switch l.Level {
		case 1:
			cats = append(cats, model.Category{Name: l.Text})
			seen = make(map[string]struct{})
		case 2:
			n := len(cats)
			if n == 0 {
				continue
			}
			if _, dup := seen[l.Text]; dup {
				continue
			}
			seen[l.Text] = struct{}{}
			cats[n-1].Values = append(cats[n-1].Values, l.Text)
		}
	}
	return cats, nil
}

// ParsePriorities reads a priority document: the level-0 line is the tree
// title (the last one wins), level-1 lines open groups and level-2 lines list
// category names in split order.
func ParsePriorities(r io.Reader) (model.Priority, error) {
	lines, err := Read(r)
	if err != nil {
		return model.Priority{}, fmt.Errorf("outline: read priorities: %w", err)
	}
	var p model.Priority
	for _, l := range lines {
		switch l.Level {
		case 0:
			p.Title = l.Text
		case 1:
			p.Groups = append(p.Groups, model.PriorityGroup{Title: l.Text})
		case 2:
			if n := len(p.Groups); n > 0 {
				p.Groups[n-1].Categories = append(p.Groups[n-1].Categories, l.Text)
			}
		}
	}
	return p, nil
}
