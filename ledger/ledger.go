// Package ledger derives the reporting views (stock balances, yield
// percentages, daily summary) from the raw transaction tables. All
// functions are pure reads over the current database state: nothing is
// cached and nothing is written.
package ledger

import (
	"database/sql"
	"sort"
)

// sumByKey runs a two-column (key, SUM) query and collects the result
// into a map. NULL keys group under the empty string, which is how
// rows referencing a deleted master keep showing up in reports.
func sumByKey(db *sql.DB, query string) (map[string]float64, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := make(map[string]float64)
	for rows.Next() {
		var key sql.NullString
		var sum float64
		if err := rows.Scan(&key, &sum); err != nil {
			return nil, err
		}
		sums[key.String] += sum
	}
	return sums, rows.Err()
}

// nameIndex loads an id -> display name lookup from a master table.
func nameIndex(db *sql.DB, query string) (map[string]string, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}

// keyUnion returns every key present in at least one of the maps.
// Reports are a full outer join on the grouping key: an entity with
// activity on only one side still gets a row, with the other side 0.
func keyUnion(ms ...map[string]float64) []string {
	seen := make(map[string]struct{})
	for _, m := range ms {
		for k := range m {
			seen[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
