package catalog

import (
	"slices"

	"github.com/matzehuels/archviz/pkg/errors"
)

// Group is the closed set of node categories. A group only selects a colour.
type Group string

const (
	GroupGitHub  Group = "github"
	GroupWIF     Group = "wif"
	GroupDev     Group = "dev"
	GroupStaging Group = "staging"
	GroupProd    Group = "prod"
	GroupMeta    Group = "meta"
)

// groups lists every Group in declaration order.
var groups = []Group{GroupGitHub, GroupWIF, GroupDev, GroupStaging, GroupProd, GroupMeta}

// Groups returns all known groups in declaration order.
func Groups() []Group {
	return slices.Clone(groups)
}

// Valid reports whether g is one of the known groups.
func (g Group) Valid() bool {
	return slices.Contains(groups, g)
}

// ParseGroup converts a tag to a Group, failing with UNKNOWN_GROUP.
func ParseGroup(s string) (Group, error) {
	g := Group(s)
	if !g.Valid() {
		return "", errors.UnknownGroup(s)
	}
	return g, nil
}

// ColorTable maps each group to a display colour.
type ColorTable map[Group]string

// DefaultColors returns the colour table used by the architecture figure.
func DefaultColors() ColorTable {
	return ColorTable{
		GroupGitHub:  "#2d9cdb",
		GroupWIF:     "#f2994a",
		GroupDev:     "#27ae60",
		GroupStaging: "#f2c94c",
		GroupProd:    "#eb5757",
		GroupMeta:    "#34495e",
	}
}

// Color resolves the colour for g. Unknown groups and groups without an
// entry both fail with UNKNOWN_GROUP naming the tag.
func (t ColorTable) Color(g Group) (string, error) {
	if !g.Valid() {
		return "", errors.UnknownGroup(string(g))
	}
	c, ok := t[g]
	if !ok {
		return "", errors.UnknownGroup(string(g))
	}
	return c, nil
}

// Validate reports the first group in groups, in the given order, that has
// no colour or lies outside the enumeration. Colour values are passed to
// plotly as given and are not checked.
func (t ColorTable) Validate(groups []Group) error {
	for _, g := range groups {
		if _, err := t.Color(g); err != nil {
			return err
		}
	}
	return nil
}
