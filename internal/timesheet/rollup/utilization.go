package rollup

import (
	"sort"

	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/domain"
)

// ProjectInfo is the reference data the utilization view needs per project
type ProjectInfo struct {
	ID             string
	Name           string
	AllocatedHours float64
}

// ContributorHours is one user's share of a project's used hours
type ContributorHours struct {
	UserID   string  `json:"user_id"`
	UserName string  `json:"user_name"`
	Hours    float64 `json:"hours"`
}

// ProjectUtilization is the per-project aggregate view for the
// utilization dashboard
type ProjectUtilization struct {
	ProjectID      string             `json:"project_id"`
	ProjectName    string             `json:"project_name"`
	AllocatedHours float64            `json:"allocated_hours"`
	UsedHours      float64            `json:"used_hours"`
	Utilization    float64            `json:"utilization"`
	Contributors   []ContributorHours `json:"contributors"`
}

// Utilization computes used/allocated as a percentage. A zero or negative
// allocation yields 0 rather than NaN or infinity. Values above 100
// indicate over-allocation and are surfaced as-is, never clamped.
func Utilization(usedHours, allocatedHours float64) float64 {
	if allocatedHours <= 0 {
		return 0
	}
	return domain.Round2(usedHours / allocatedHours * 100)
}

// ProjectUtilizations reduces records into one utilization row per
// project. Every project in projects appears in the output, including
// ones with no logged hours. Output is ordered by used hours descending
// with a locale-aware name tie-break, contributors likewise.
func (e *Engine) ProjectUtilizations(records []*domain.WeeklyRecord, projects []ProjectInfo, extract HourFunc) []ProjectUtilization {
	type projectAcc struct {
		used         float64
		contributors map[string]*ContributorHours
		order        []string
	}

	accs := make(map[string]*projectAcc, len(projects))
	for _, p := range projects {
		accs[p.ID] = &projectAcc{contributors: make(map[string]*ContributorHours)}
	}

	for _, record := range records {
		acc, ok := accs[record.ProjectID]
		if !ok {
			continue
		}

		hours := extract(record)
		if hours == 0 {
			continue
		}

		acc.used += hours

		contributor, ok := acc.contributors[record.UserID]
		if !ok {
			contributor = &ContributorHours{
				UserID:   record.UserID,
				UserName: displayName(record.UserName, record.UserID),
			}
			acc.contributors[record.UserID] = contributor
			acc.order = append(acc.order, record.UserID)
		}
		contributor.Hours += hours
	}

	out := make([]ProjectUtilization, 0, len(projects))
	for _, p := range projects {
		acc := accs[p.ID]

		row := ProjectUtilization{
			ProjectID:      p.ID,
			ProjectName:    p.Name,
			AllocatedHours: p.AllocatedHours,
			UsedHours:      domain.Round2(acc.used),
			Utilization:    Utilization(acc.used, p.AllocatedHours),
		}

		for _, userID := range acc.order {
			contributor := acc.contributors[userID]
			contributor.Hours = domain.Round2(contributor.Hours)
			row.Contributors = append(row.Contributors, *contributor)
		}
		sort.SliceStable(row.Contributors, func(i, j int) bool {
			return e.lessByHours(
				row.Contributors[i].Hours, row.Contributors[j].Hours,
				row.Contributors[i].UserName, row.Contributors[j].UserName,
			)
		})

		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return e.lessByHours(out[i].UsedHours, out[j].UsedHours, out[i].ProjectName, out[j].ProjectName)
	})

	return out
}
