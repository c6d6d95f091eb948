package ledger

import (
	"database/sql"
	"math"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"ricemill-app/models"
)

const dateLayout = "2006-01-02"

// yieldPct returns the rice-out share of paddy used, as a percentage
// rounded to two decimals. When nothing was used the yield is
// undefined and the result is nil, not zero.
func yieldPct(outQtl, usedQtl float64) *float64 {
	if usedQtl <= 0 {
		return nil
	}
	pct := outQtl * 100.0 / usedQtl
	pct = math.Round(pct*100) / 100
	return &pct
}

// YieldByPaddy reports overall milling efficiency per paddy type.
// Types with usage but no output yet (or the reverse) still appear,
// with the missing side at 0.
func YieldByPaddy(db *sql.DB) ([]models.PaddyYieldRow, error) {
	used, err := sumByKey(db, `SELECT paddy_id, COALESCE(SUM(final_used_qtl), 0) FROM milling_input GROUP BY paddy_id`)
	if err != nil {
		return nil, err
	}
	out, err := sumByKey(db, `SELECT paddy_id, COALESCE(SUM(final_out_qtl), 0) FROM milling_output GROUP BY paddy_id`)
	if err != nil {
		return nil, err
	}
	names, err := nameIndex(db, `SELECT paddy_id, paddy_name FROM paddy_types`)
	if err != nil {
		return nil, err
	}

	keys := keyUnion(used, out)
	report := make([]models.PaddyYieldRow, 0, len(keys))
	for _, id := range keys {
		report = append(report, models.PaddyYieldRow{
			PaddyID:   id,
			PaddyName: names[id],
			UsedQtl:   used[id],
			OutQtl:    out[id],
			YieldPct:  yieldPct(out[id], used[id]),
		})
	}
	sort.SliceStable(report, func(i, j int) bool {
		return nameLess(report[i].PaddyName, report[j].PaddyName, report[i].PaddyID, report[j].PaddyID)
	})
	return report, nil
}

// YieldByDate reports milling efficiency per calendar day across all
// paddy types, newest day first. Rows whose stored date does not parse
// are skipped with a warning; bad data never aborts the report.
func YieldByDate(db *sql.DB, log *zap.Logger) ([]models.DailyYieldRow, error) {
	if log == nil {
		log = zap.NewNop()
	}

	used, err := sumByDate(db, log, `SELECT dt, final_used_qtl FROM milling_input`, "milling_input")
	if err != nil {
		return nil, err
	}
	out, err := sumByDate(db, log, `SELECT dt, final_out_qtl FROM milling_output`, "milling_output")
	if err != nil {
		return nil, err
	}

	keys := keyUnion(used, out)
	report := make([]models.DailyYieldRow, 0, len(keys))
	for _, day := range keys {
		report = append(report, models.DailyYieldRow{
			Date:     day,
			UsedQtl:  used[day],
			OutQtl:   out[day],
			YieldPct: yieldPct(out[day], used[day]),
		})
	}
	// keyUnion sorts ascending; the report reads newest first.
	sort.SliceStable(report, func(i, j int) bool { return report[i].Date > report[j].Date })
	return report, nil
}

// sumByDate groups a (dt, qty) query by calendar day, parsing the
// stored date leniently and dropping rows that do not parse.
func sumByDate(db *sql.DB, log *zap.Logger, query, table string) (map[string]float64, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := make(map[string]float64)
	for rows.Next() {
		var dt sql.NullString
		var qty sql.NullFloat64
		if err := rows.Scan(&dt, &qty); err != nil {
			return nil, err
		}
		day, err := time.Parse(dateLayout, strings.TrimSpace(dt.String))
		if err != nil {
			log.Warn("skipping row with unparsable date",
				zap.String("table", table),
				zap.String("dt", dt.String))
			continue
		}
		sums[day.Format(dateLayout)] += qty.Float64
	}
	return sums, rows.Err()
}
