package rollup

import (
	"sort"

	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/domain"
)

// ProjectHours is one project's share of a user's total
type ProjectHours struct {
	ProjectID   string  `json:"project_id"`
	ProjectName string  `json:"project_name"`
	Hours       float64 `json:"hours"`
}

// WeekHours is one week's share of a user's total
type WeekHours struct {
	Year       int     `json:"year"`
	WeekNumber int     `json:"week_number"`
	Hours      float64 `json:"hours"`
}

// UserSummary is the per-user aggregate view with per-project and
// per-week breakdowns
type UserSummary struct {
	UserID     string         `json:"user_id"`
	UserName   string         `json:"user_name"`
	TotalHours float64        `json:"total_hours"`
	Projects   []ProjectHours `json:"projects"`
	Weeks      []WeekHours    `json:"weeks"`
}

// UserSummaries reduces records into one summary per user. extract decides
// which hours count (full or month-scoped); records contributing zero
// hours under the extractor are skipped. Output is ordered by total hours
// descending with a locale-aware name tie-break; project breakdowns share
// the same ordering and week breakdowns are chronological.
func (e *Engine) UserSummaries(records []*domain.WeeklyRecord, extract HourFunc) []UserSummary {
	type userAcc struct {
		summary  UserSummary
		projects map[string]*ProjectHours
		weeks    map[string]*WeekHours
	}

	accs := make(map[string]*userAcc)
	order := make([]string, 0)

	for _, record := range records {
		hours := extract(record)
		if hours == 0 {
			continue
		}

		acc, ok := accs[record.UserID]
		if !ok {
			acc = &userAcc{
				summary: UserSummary{
					UserID:   record.UserID,
					UserName: displayName(record.UserName, record.UserID),
				},
				projects: make(map[string]*ProjectHours),
				weeks:    make(map[string]*WeekHours),
			}
			accs[record.UserID] = acc
			order = append(order, record.UserID)
		}

		acc.summary.TotalHours += hours

		project, ok := acc.projects[record.ProjectID]
		if !ok {
			project = &ProjectHours{
				ProjectID:   record.ProjectID,
				ProjectName: displayName(record.ProjectName, record.ProjectID),
			}
			acc.projects[record.ProjectID] = project
		}
		project.Hours += hours

		weekKey := record.GroupKey()
		week, ok := acc.weeks[weekKey]
		if !ok {
			week = &WeekHours{Year: record.Year, WeekNumber: record.WeekNumber}
			acc.weeks[weekKey] = week
		}
		week.Hours += hours
	}

	summaries := make([]UserSummary, 0, len(accs))
	for _, userID := range order {
		acc := accs[userID]

		for _, p := range acc.projects {
			p.Hours = domain.Round2(p.Hours)
			acc.summary.Projects = append(acc.summary.Projects, *p)
		}
		sort.SliceStable(acc.summary.Projects, func(i, j int) bool {
			return e.lessByHours(
				acc.summary.Projects[i].Hours, acc.summary.Projects[j].Hours,
				acc.summary.Projects[i].ProjectName, acc.summary.Projects[j].ProjectName,
			)
		})

		for _, w := range acc.weeks {
			w.Hours = domain.Round2(w.Hours)
			acc.summary.Weeks = append(acc.summary.Weeks, *w)
		}
		sort.SliceStable(acc.summary.Weeks, func(i, j int) bool {
			if acc.summary.Weeks[i].Year != acc.summary.Weeks[j].Year {
				return acc.summary.Weeks[i].Year < acc.summary.Weeks[j].Year
			}
			return acc.summary.Weeks[i].WeekNumber < acc.summary.Weeks[j].WeekNumber
		})

		acc.summary.TotalHours = domain.Round2(acc.summary.TotalHours)
		summaries = append(summaries, acc.summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return e.lessByHours(
			summaries[i].TotalHours, summaries[j].TotalHours,
			summaries[i].UserName, summaries[j].UserName,
		)
	})

	return summaries
}

// WeekGroup bundles the records one user submitted for one week, for
// approval-queue display
type WeekGroup struct {
	UserID     string                 `json:"user_id"`
	UserName   string                 `json:"user_name"`
	Year       int                    `json:"year"`
	WeekNumber int                    `json:"week_number"`
	TotalHours float64                `json:"total_hours"`
	Records    []*domain.WeeklyRecord `json:"records"`
}

// GroupWeeks groups records by (user, week, year). Groups are ordered
// most recent week first, then by user name. Re-grouping grouped output
// is idempotent because the composite key is formed the same way every
// time.
func (e *Engine) GroupWeeks(records []*domain.WeeklyRecord) []WeekGroup {
	groups := make(map[string]*WeekGroup)
	order := make([]string, 0)

	for _, record := range records {
		key := record.GroupKey()
		group, ok := groups[key]
		if !ok {
			group = &WeekGroup{
				UserID:     record.UserID,
				UserName:   displayName(record.UserName, record.UserID),
				Year:       record.Year,
				WeekNumber: record.WeekNumber,
			}
			groups[key] = group
			order = append(order, key)
		}
		group.TotalHours += record.DayHours.Total()
		group.Records = append(group.Records, record)
	}

	out := make([]WeekGroup, 0, len(groups))
	for _, key := range order {
		group := groups[key]
		group.TotalHours = domain.Round2(group.TotalHours)
		out = append(out, *group)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		if out[i].WeekNumber != out[j].WeekNumber {
			return out[i].WeekNumber > out[j].WeekNumber
		}
		return e.CompareNames(out[i].UserName, out[j].UserName) < 0
	})

	return out
}

func displayName(name *string, fallback string) string {
	if name != nil && *name != "" {
		return *name
	}
	return fallback
}
