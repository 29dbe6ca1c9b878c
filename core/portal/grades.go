package portal

import (
	"encoding/csv"
	"io"
	"strconv"
)

const PassingGPA = 2.0

// GPA is the units-weighted average of the grades; 0 when there is nothing to average.
func GPA(records []GradeRecord) float64 {
	var total float64
	var units int
	for _, r := range records {
		total += r.Grade * float64(r.Units)
		units += r.Units
	}
	if units == 0 {
		return 0
	}
	return total / float64(units)
}

// Passed reports whether a GPA is a passing one (lower is better).
func Passed(gpa float64) bool {
	return gpa <= PassingGPA
}

var remarks = []struct {
	upTo   float64
	remark string
}{
	{1.0, "Excellent"},
	{1.5, "Very Good"},
	{2.0, "Good"},
	{2.5, "Fair"},
	{3.0, "Pass"},
}

// Remark buckets a grade; each bound is inclusive.
func Remark(grade float64) string {
	for _, r := range remarks {
		if grade <= r.upTo {
			return r.remark
		}
	}
	return "Fail"
}

// Bucket is one range of the grade distribution.
type Bucket struct {
	Label string  `json:"label"`
	UpTo  float64 `json:"-"`
	Count int     `json:"count"`
}

// DistributionRanges lists the distribution ranges in ascending order.
var DistributionRanges = []Bucket{
	{Label: "1.0 - 1.5", UpTo: 1.5},
	{Label: "1.51 - 2.0", UpTo: 2.0},
	{Label: "2.01 - 2.5", UpTo: 2.5},
	{Label: "2.51 - 3.0", UpTo: 3.0},
	{Label: "3.01 - 4.0", UpTo: 4.0},
}

// Distribution counts the grades per range. Grades above the last bound land in the last range.
func Distribution(grades GradeBook) []Bucket {
	buckets := make([]Bucket, len(DistributionRanges))
	copy(buckets, DistributionRanges)
	last := len(buckets) - 1

	for _, records := range grades {
		for _, r := range records {
			idx := last
			for i, b := range buckets {
				if r.Grade <= b.UpTo {
					idx = i
					break
				}
			}
			buckets[idx].Count++
		}
	}
	return buckets
}

// FormatGrade renders a grade without trailing zeros (1.50 -> 1.5).
func FormatGrade(grade float64) string {
	return strconv.FormatFloat(grade, 'f', -1, 64)
}

// WriteGradesCSV writes the records as a Subject,Units,Grade,Remarks table.
func WriteGradesCSV(w io.Writer, records []GradeRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Subject", "Units", "Grade", "Remarks"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{r.Subject, strconv.Itoa(r.Units), FormatGrade(r.Grade), Remark(r.Grade)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
