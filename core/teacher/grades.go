package teacher

import (
	"context"
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/Hellothereeee2312/Portal/core/portal"
)

var (
	subjectTemplates = map[string][]string{
		"Computer Science":        {"Mathematics", "Programming", "Database Systems", "Web Development", "Algorithms"},
		"Business Administration": {"Accounting", "Marketing", "Management", "Economics"},
		"Engineering":             {"Physics", "Calculus", "Engineering Design", "Materials Science"},
		"Psychology":              {"Introduction to Psychology", "Social Psychology", "Cognitive Psychology", "Research Methods"},
	}
	fallbackSubjects = []string{"Subject 1", "Subject 2", "Subject 3"}

	courseMinSim = .6
)

// DefaultSubjects returns the subject template of a course, or a generic one.
func DefaultSubjects(course string) []string {
	subjects, ok := subjectTemplates[course]
	if !ok {
		subjects = fallbackSubjects
	}
	out := make([]string, len(subjects))
	copy(out, subjects)
	return out
}

// SuggestCourse returns the known course closest to `course`, if any is close enough.
func SuggestCourse(course string) (string, bool) {
	if _, ok := subjectTemplates[course]; ok {
		return course, true
	}
	var best string
	var bestRatio float64
	lc := strings.Split(strings.ToLower(course), "")
	for known := range subjectTemplates {
		ratio := difflib.NewMatcher(lc, strings.Split(strings.ToLower(known), "")).Ratio()
		if ratio > bestRatio || (ratio == bestRatio && known < best) {
			best, bestRatio = known, ratio
		}
	}
	return best, bestRatio >= courseMinSim
}

// GradeForm returns the grade entries to edit for a student: their current grades,
// or the course template with blank grades when they have none.
func (svc *Service) GradeForm(ctx context.Context, id string) ([]GradeEntry, error) {
	st, err := svc.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	if records := svc.store.Grades(ctx)[id]; len(records) > 0 {
		entries := make([]GradeEntry, 0, len(records))
		for _, r := range records {
			entries = append(entries, GradeEntry{Subject: r.Subject, Grade: r.Grade})
		}
		return entries, nil
	}
	subjects := DefaultSubjects(st.Course)
	entries := make([]GradeEntry, 0, len(subjects))
	for _, subj := range subjects {
		entries = append(entries, GradeEntry{Subject: subj})
	}
	return entries, nil
}

// SetGrades replaces the student's whole grade list.
// Units of subjects already on record are kept (DefaultUnits otherwise).
// Trend follows the change: a lower grade is "up", a higher one "down",
// an unchanged one keeps its trend and a new subject is "stable".
func (svc *Service) SetGrades(ctx context.Context, id string, entries []GradeEntry) ([]portal.GradeRecord, error) {
	svc.store.Lock()
	defer svc.store.Unlock()

	if portal.FindStudent(svc.store.Students(ctx), id) < 0 {
		return nil, portal.ErrStudentNotFound
	}

	grades := svc.store.Grades(ctx)
	previous := make(map[string]portal.GradeRecord, len(grades[id]))
	for _, r := range grades[id] {
		previous[r.Subject] = r
	}

	records := make([]portal.GradeRecord, 0, len(entries))
	for _, e := range entries {
		rec := portal.GradeRecord{Subject: e.Subject, Units: portal.DefaultUnits, Grade: e.Grade, Trend: portal.TrendStable}
		if prev, ok := previous[e.Subject]; ok {
			if prev.Units > 0 {
				rec.Units = prev.Units
			}
			switch {
			case e.Grade < prev.Grade:
				rec.Trend = portal.TrendUp
			case e.Grade > prev.Grade:
				rec.Trend = portal.TrendDown
			case prev.Trend != "":
				rec.Trend = prev.Trend
			}
		}
		records = append(records, rec)
	}

	grades[id] = records
	if err := svc.store.SaveGrades(ctx, grades); err != nil {
		return nil, errors.Wrap(err, "saving grades")
	}
	svc.logger.Info("grades updated", map[string]interface{}{"student_id": id, "subjects": len(records)})
	return records, nil
}

// GradeDistribution counts every grade on record per range.
func (svc *Service) GradeDistribution(ctx context.Context) []portal.Bucket {
	return portal.Distribution(svc.store.Grades(ctx))
}

// CoursePerformance averages, per course, the GPA of the students having grades.
func (svc *Service) CoursePerformance(ctx context.Context) []CourseAverage {
	grades := svc.store.Grades(ctx)
	totals := make(map[string]*CourseAverage)
	for _, st := range svc.store.Students(ctx) {
		records := grades[st.ID]
		if len(records) == 0 {
			continue
		}
		ca, ok := totals[st.Course]
		if !ok {
			ca = &CourseAverage{Course: st.Course}
			totals[st.Course] = ca
		}
		ca.Average += portal.GPA(records)
		ca.Students++
	}

	perf := make([]CourseAverage, 0, len(totals))
	for _, ca := range totals {
		ca.Average /= float64(ca.Students)
		perf = append(perf, *ca)
	}
	sort.Slice(perf, func(i, j int) bool { return perf[i].Course < perf[j].Course })
	return perf
}

// ExportAnalytics writes the distribution, course performance and attendance as CSV sections.
func (svc *Service) ExportAnalytics(ctx context.Context, w io.Writer) error {
	cw := csv.NewWriter(w)
	rows := [][]string{{"Grade Range", "Count"}}
	for _, b := range svc.GradeDistribution(ctx) {
		rows = append(rows, []string{b.Label, strconv.Itoa(b.Count)})
	}
	rows = append(rows, []string{}, []string{"Course", "Average GPA", "Students"})
	for _, ca := range svc.CoursePerformance(ctx) {
		rows = append(rows, []string{ca.Course, strconv.FormatFloat(ca.Average, 'f', 2, 64), strconv.Itoa(ca.Students)})
	}
	stats := svc.AttendanceStats(ctx, "")
	rows = append(rows,
		[]string{},
		[]string{"Attendance", "Count"},
		[]string{string(portal.AttendancePresent), strconv.Itoa(stats.Present)},
		[]string{string(portal.AttendanceAbsent), strconv.Itoa(stats.Absent)},
		[]string{string(portal.AttendanceLate), strconv.Itoa(stats.Late)},
	)
	if err := cw.WriteAll(rows); err != nil {
		return errors.Wrap(err, "writing csv")
	}
	return nil
}
