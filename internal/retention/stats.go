package retention

import (
	"math"
	"sort"
	"time"
)

// FileInfo describes one asset in a stats report.
type FileInfo struct {
	Name     string        `json:"name"`
	Size     int64         `json:"size"`
	Age      time.Duration `json:"-"`
	AgeHours float64       `json:"ageHours"`
	// CanDelete flags whether the asset would be eligible under the default
	// 24-hour policy. Informational only; Stats never deletes.
	CanDelete bool `json:"canDelete"`
}

// Report is a read-only inventory of the current assets, oldest first.
type Report struct {
	Files      []FileInfo `json:"files"`
	TotalSize  int64      `json:"totalSize"`
	TotalFiles int        `json:"totalFiles"`
	Errors     []string   `json:"errors,omitempty"`
}

// Stats inventories the matching assets in dir without touching them.
// AgeHours is rounded to two decimals for display.
func Stats(dir string, now time.Time) Report {
	report := Report{Files: []FileInfo{}}

	assets, errs := Scan(dir, DefaultPatterns)
	report.Errors = append(report.Errors, errs...)

	for _, asset := range assets {
		age := asset.Age(now)
		ageHours := math.Round(age.Hours()*100) / 100
		report.Files = append(report.Files, FileInfo{
			Name:      asset.Name,
			Size:      asset.Size,
			Age:       age,
			AgeHours:  ageHours,
			CanDelete: ageHours >= DefaultMaxAgeHours,
		})
		report.TotalSize += asset.Size
		report.TotalFiles++
	}

	sort.SliceStable(report.Files, func(i, j int) bool {
		return report.Files[i].Age > report.Files[j].Age
	})
	return report
}
