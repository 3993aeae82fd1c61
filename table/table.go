package table

import (
	"sort"

	"github.com/proptab/proptab/ucd"
)

// Table is the set of code points carrying one target property, sorted in
// ascending order.
type Table struct {
	Name       string
	CodePoints []rune
}

// Build produces one table per target, each independently of the others.
// A target whose property never appears among the records yields a table with
// no code points; that is not an error.
//
// Ranges of one property are assumed to be pairwise non-overlapping, as the
// UCD listings publish them. Build doesn't deduplicate, so overlapping input
// ranges would surface as duplicate entries in the table.
func Build(records []*ucd.Record, targets []Target) []*Table {
	tables := make([]*Table, 0, len(targets))
	for _, t := range targets {
		tables = append(tables, &Table{
			Name:       t.TableName,
			CodePoints: expand(records, t.Property),
		})
	}
	return tables
}

func expand(records []*ucd.Record, property string) []rune {
	var cps []rune
	for _, rec := range records {
		if rec.Property != property {
			continue
		}
		for cp := rec.From; cp <= rec.To; cp++ {
			cps = append(cps, cp)
		}
	}
	sort.Slice(cps, func(i, j int) bool {
		return cps[i] < cps[j]
	})
	return cps
}
