package main

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-spellbook/internal/errors"
	"github.com/KirkDiggler/rpg-spellbook/internal/filters"
	"github.com/KirkDiggler/rpg-spellbook/internal/grid"
	"github.com/KirkDiggler/rpg-spellbook/internal/orchestrators/spells"
)

// parseFilterModel turns "--filter level=0,1" and "--none ritual" flags into a
// filter model. Values are domain codes.
func parseFilterModel(filterFlags, noneFlags []string) (grid.FilterModel, error) {
	model := make(grid.FilterModel)

	for _, raw := range filterFlags {
		field, values, err := splitAssignment(raw)
		if err != nil {
			return nil, err
		}
		if _, ok := model[field]; ok {
			return nil, errors.InvalidArgumentf("column %s is filtered twice", field)
		}

		selection, err := parseCodes(field, values)
		if err != nil {
			return nil, err
		}
		model[field] = &filters.Model{Value: selection}
	}

	for _, field := range noneFlags {
		field = strings.TrimSpace(field)
		if field == "" {
			return nil, errors.InvalidArgument("--none needs a column name")
		}
		if _, ok := model[field]; ok {
			return nil, errors.InvalidArgumentf("column %s is filtered twice", field)
		}
		model[field] = &filters.Model{Value: filters.Selection{}}
	}

	return model, nil
}

// parseToggles turns "--toggle school=4" flags into checkbox clicks
func parseToggles(toggleFlags []string) ([]spells.FilterToggle, error) {
	toggles := make([]spells.FilterToggle, 0, len(toggleFlags))
	for _, raw := range toggleFlags {
		field, values, err := splitAssignment(raw)
		if err != nil {
			return nil, err
		}

		codes, err := parseCodes(field, values)
		if err != nil {
			return nil, err
		}
		for _, code := range codes {
			toggles = append(toggles, spells.FilterToggle{Field: field, Value: code})
		}
	}
	return toggles, nil
}

func splitAssignment(raw string) (string, string, error) {
	field, values, ok := strings.Cut(raw, "=")
	field = strings.TrimSpace(field)
	if !ok || field == "" {
		return "", "", errors.InvalidArgumentf("expected FIELD=CODE[,CODE...], got %q", raw)
	}
	return field, values, nil
}

// parseCodes reads a comma separated code list; duplicates collapse
func parseCodes(field, values string) (filters.Selection, error) {
	selection := filters.Selection{}
	for _, part := range strings.Split(values, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		code, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.InvalidArgumentf("%s: %q is not a numeric code", field, part)
		}
		if !filters.IsChecked(selection, code) {
			selection = append(selection, code)
		}
	}

	if len(selection) == 0 {
		return nil, errors.InvalidArgumentf("%s: no codes given; use --none %s to hide every row", field, field)
	}
	return selection, nil
}

// splitColumns reads "--columns name,level"
func splitColumns(raw string) []string {
	var columns []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			columns = append(columns, c)
		}
	}
	return columns
}
