// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package research

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"
)

// FormatFunding formats the raw USD amount in millions with two decimals,
// i.e. 12345678 is "$12.35M".
func FormatFunding(amount float64) string {
	return fmt.Sprintf("$%.2fM", amount/1e6)
}

// Summarize returns the digest of the comprehensive analysis.  Absent fields
// are skipped.
func Summarize(res *Analysis, query string) string {
	var b strings.Builder
	b.WriteString("Analysis for \"" + query + "\":\n\n")

	if primary := decodeRecord(res.PrimaryData); len(primary) > 0 {
		kind, name := "Entity", ""
		switch {
		case primary.has("project_name"):
			kind, name = "Project", primary.str("project_name")
		case primary.has("org_name"):
			kind, name = "VC/Organization", primary.str("org_name")
		case primary.has("people_name"):
			kind, name = "Person", primary.str("people_name")
		}
		if name == "" {
			name = "n/a"
		}
		fmt.Fprintf(&b, "%s: %s\n", kind, name)

		if funding, ok := primary.number("total_funding"); ok && funding != 0 {
			fmt.Fprintf(&b, "Total Funding: %s\n", FormatFunding(funding))
		}
		if primary.has("establishment_date") {
			fmt.Fprintf(&b, "Established: %s\n", primary.text("establishment_date"))
		}
	}
	if res.Trends != nil {
		if hot := decodeRecord(res.Trends.HotIndex); len(hot) > 0 {
			fmt.Fprintf(&b, "\nHot Index Rank: #%s (Score: %s)\n", hot.text("rank"), hot.text("eval"))
		}
	}
	if n := count(res.RelatedProjects); n > 0 {
		fmt.Fprintf(&b, "\nRelated Projects: %d projects in the same ecosystem\n", n)
	}
	if n := len(items(res.Fundraising)); n > 0 {
		fmt.Fprintf(&b, "\nFundraising Rounds: %d rounds found\n", n)
	}
	return b.String()
}

// SummarizeComparison returns the digest of the comparison: the roster of
// compared entities followed by the entities that have a funding figure,
// highest first.
func SummarizeComparison(c *Comparison) string {
	var b strings.Builder
	b.WriteString("Comparison Summary:\n\n")
	if len(c.Entities) == 0 {
		b.WriteString("No entities found for comparison.")
		return b.String()
	}
	for i, e := range c.Entities {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, e.BasicInfo.Name, e.BasicInfo.Type.Label())
	}

	names := c.Names()
	if len(names) == 0 {
		names = slices.Sorted(maps.Keys(c.Metrics))
	}
	type funded struct {
		name   string
		amount float64
	}
	var ff []funded
	for _, name := range names {
		if amount, ok := c.Metrics[name].funding(); ok && amount != 0 {
			ff = append(ff, funded{name, amount})
		}
	}
	if len(ff) == 0 {
		return b.String()
	}
	sort.SliceStable(ff, func(i, j int) bool { return ff[i].amount > ff[j].amount })
	b.WriteString("\nFunding Comparison:\n")
	for _, f := range ff {
		fmt.Fprintf(&b, "%s: %s\n", f.name, FormatFunding(f.amount))
	}
	return b.String()
}
