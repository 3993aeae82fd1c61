package table

import (
	"fmt"
	"regexp"
)

const tableNamePattern = "[A-Z][0-9A-Za-z_]*"

var tableNameRE = regexp.MustCompile("^" + tableNamePattern + "$")

// Target binds a property name appearing in the source listing to the name of
// the generated table. The order of a target list is the order of the
// generated declarations.
type Target struct {
	// Property is matched against record property names exactly and
	// case-sensitively.
	Property string

	// TableName must be an exported Go identifier.
	TableName string
}

func (t Target) validate() error {
	if t.Property == "" {
		return fmt.Errorf("property doesn't allow to be the empty string")
	}
	if !tableNameRE.MatchString(t.TableName) {
		return fmt.Errorf("table name must be %v", tableNamePattern)
	}
	return nil
}

// ValidateTargets checks that every target can be rendered as a declaration
// and that no two targets collide on the generated name.
func ValidateTargets(targets []Target) error {
	if len(targets) <= 0 {
		return fmt.Errorf("at least one target property is required")
	}
	for i, t := range targets {
		err := t.validate()
		if err != nil {
			return fmt.Errorf("target #%v: %w", i+1, err)
		}
	}
	names := map[string]struct{}{}
	for _, t := range targets {
		if _, exist := names[t.TableName]; exist {
			return fmt.Errorf("table names `%v` are duplicates", t.TableName)
		}
		names[t.TableName] = struct{}{}
	}
	return nil
}

// DefaultTargets are the identifier-related properties of
// DerivedCoreProperties.txt.
//
// https://www.unicode.org/reports/tr31/
func DefaultTargets() []Target {
	return []Target{
		{Property: "ID_Start", TableName: "IDStart"},
		{Property: "ID_Continue", TableName: "IDContinue"},
		{Property: "XID_Start", TableName: "XIDStart"},
		{Property: "XID_Continue", TableName: "XIDContinue"},
	}
}
