// Package stats reshapes the ngwmn_cache water-level statistics documents
// into the array projection the front end's tables consume.
package stats

import (
	"fmt"
	"strconv"
)

// Sentinel flags stamped onto fetched documents by the upstream client.
// The cache service returns 404 for sites it has never ranked, which the
// client converts into an unfetched document.
const (
	KeyFetched = "IS_FETCHED"
	KeyRanked  = "IS_RANKED"
)

// Unfetched is the document representing a statistic the cache could not
// supply.
func Unfetched() map[string]any {
	return map[string]any{KeyFetched: "N"}
}

// SiteStatistics is the front-end projection of a site's water-level
// statistics: one overall row and one row per month with data.
type SiteStatistics struct {
	AltDatum string     `json:"alt_datum"`
	CalcDate string     `json:"calc_date"`
	Overall  []string   `json:"overall"`
	Monthly  [][]string `json:"monthly"`
}

var monthAbbrev = [...]string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// overallFields is the column order the front end's overall table expects.
var overallFields = []string{
	"MIN_VALUE", "MEDIAN_VALUE", "MAX_VALUE", "MIN_DATE", "MAX_DATE",
	"SAMPLE_COUNT", "RECORD_YEARS", "LATEST_VALUE", "LATEST_PCTILE",
}

// monthlyFields is the column order of each monthly row, after the month name.
var monthlyFields = []string{
	"P50_MIN", "P10", "P25", "P50", "P75", "P90", "P50_MAX",
	"SAMPLE_COUNT", "RECORD_YEARS",
}

// Build projects the overall, site-info, and monthly cache documents into
// a SiteStatistics. Unfetched documents degrade to the "unknown" sentinel
// fields and empty arrays rather than failing.
func Build(overall, siteInfo, monthly map[string]any) SiteStatistics {
	out := SiteStatistics{
		AltDatum: "unknown",
		CalcDate: "unknown",
		Overall:  []string{},
		Monthly:  [][]string{},
	}

	if field(overall, KeyFetched) == "Y" {
		altDatumCd := ""
		if field(siteInfo, KeyFetched) == "Y" {
			altDatumCd = field(siteInfo, "altDatumCd")
		}

		// Mediation: measurements are either depth below land surface or a
		// water level relative to the site's altitude datum.
		if field(overall, "MEDIATION") == "BelowLand" {
			out.AltDatum = "Depth to water, feet below land surface"
		} else {
			out.AltDatum = "Water level in feet relative to " + altDatumCd
		}

		out.CalcDate = field(overall, "CALC_DATE")
		for _, key := range overallFields {
			out.Overall = append(out.Overall, field(overall, key))
		}
	}

	if field(monthly, KeyFetched) == "Y" {
		for month := 1; month <= 12; month++ {
			raw, ok := monthly[strconv.Itoa(month)]
			if !ok {
				continue
			}
			monthStats, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			row := []string{monthAbbrev[month]}
			for _, key := range monthlyFields {
				row = append(row, field(monthStats, key))
			}
			out.Monthly = append(out.Monthly, row)
		}
	}

	return out
}

// field reads a document value as a string. The cache emits string values,
// but a re-serialized document may carry numbers; both are tolerated.
func field(doc map[string]any, key string) string {
	switch v := doc[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
