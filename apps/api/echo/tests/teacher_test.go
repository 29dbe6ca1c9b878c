package tests

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/Hellothereeee2312/Portal/apps/api/echo"
	"github.com/Hellothereeee2312/Portal/core"
	"github.com/Hellothereeee2312/Portal/core/portal"
	"github.com/Hellothereeee2312/Portal/core/teacher"
)

func Test_teacherApi_students(t *testing.T) {
	srv, a := setup(t)
	token := getToken(t, teacherUsr)
	students := a.Store.Students(context.Background())
	john, jane, michael, emily := students[0], students[1], students[2], students[3]

	path := func(search, course, year string) string {
		v := make(url.Values)
		if search != "" {
			v.Add("search", search)
		}
		if course != "" {
			v.Add("course", course)
		}
		if year != "" {
			v.Add("year", year)
		}
		return "/v1/teacher/students?" + v.Encode()
	}

	newbie := portal.Student{
		ID: "S2023005", Name: "Ana Cruz", Email: "ana.cruz@student.edu",
		Course: "Engineering", Year: "1st Year", Status: portal.StatusActive,
	}
	edited := newbie
	edited.Year = "2nd Year"

	tests := []httpTest{
		{name: "Auth required", path: "/v1/teacher/students", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "Teacher required", path: "/v1/teacher/students", token: getToken(t, studentUsr),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{name: "all", path: "/v1/teacher/students", token: token, wantCode: http.StatusOK, wantData: marchallList(t, john, jane, michael, emily)},
		{name: "search by name", path: path("JANE", "", ""), token: token, wantCode: http.StatusOK, wantData: marchallList(t, jane)},
		{name: "search by email", path: path("davis@", "", ""), token: token, wantCode: http.StatusOK, wantData: marchallList(t, emily)},
		{name: "search by id", path: path("s2023003", "", ""), token: token, wantCode: http.StatusOK, wantData: marchallList(t, michael)},
		{name: "search (no match)", path: path("nobody", "", ""), token: token, wantCode: http.StatusOK, wantData: marchallList(t)},
		{name: "course", path: path("", "Engineering", ""), token: token, wantCode: http.StatusOK, wantData: marchallList(t, michael)},
		{name: "course and year", path: path("", "Engineering", "1st Year"), token: token, wantCode: http.StatusOK, wantData: marchallList(t)},
		{name: "year", path: path("", "", "2nd Year"), token: token, wantCode: http.StatusOK, wantData: marchallList(t, jane)},
		{
			name: "filters", path: "/v1/teacher/students/filters", token: token, wantCode: http.StatusOK,
			wantData: marchallObj(t, teacher.FilterOptions{
				Courses: []string{"Computer Science", "Business Administration", "Engineering", "Psychology"},
				Years:   []string{"3rd Year", "2nd Year", "4th Year", "1st Year"},
			}),
		},
		{
			name: "create: duplicate id", method: http.MethodPost, path: "/v1/teacher/students", token: token,
			body:     marchallObj(t, teacher.NewStudent{ID: "S2023001", Name: "Someone Else"}),
			wantCode: http.StatusConflict, wantData: marchallObj(t, httpErr{Error: "a student with this id already exists"}),
		},
		{
			name: "create: missing name", method: http.MethodPost, path: "/v1/teacher/students", token: token,
			body:     marchallObj(t, teacher.NewStudent{ID: "S2023005"}),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, map[string]string{"name": "this field is required"}),
		},
		{
			name: "create", method: http.MethodPost, path: "/v1/teacher/students", token: token,
			body: marchallObj(t, teacher.NewStudent{
				ID: "S2023005", Name: "Ana Cruz", Email: "Ana.Cruz@student.edu", Course: "Engineering", Year: "1st Year",
			}),
			wantCode: http.StatusCreated, wantData: marchallObj(t, newbie),
		},
		{name: "retrieve", path: "/v1/teacher/students/S2023005", token: token, wantCode: http.StatusOK, wantData: marchallObj(t, newbie)},
		{
			name: "update", method: http.MethodPut, path: "/v1/teacher/students/S2023005", token: token,
			body:     marchallObj(t, teacher.UpdateStudent{Year: "2nd Year"}),
			wantCode: http.StatusOK, wantData: marchallObj(t, edited),
		},
		{
			name: "update (unknown)", method: http.MethodPut, path: "/v1/teacher/students/NOPE", token: token,
			body:     marchallObj(t, teacher.UpdateStudent{Year: "2nd Year"}),
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "student not found"}),
		},
		{name: "delete", method: http.MethodDelete, path: "/v1/teacher/students/S2023005", token: token, wantCode: http.StatusNoContent},
		{name: "delete (unknown)", method: http.MethodDelete, path: "/v1/teacher/students/S2023005", token: token, wantCode: http.StatusNoContent},
		{
			name: "retrieve (deleted)", path: "/v1/teacher/students/S2023005", token: token,
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "student not found"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, tt.run(t, srv))
		})
	}
}

func Test_teacherApi_grades(t *testing.T) {
	srv, a := setup(t)
	token := getToken(t, teacherUsr)

	janeForm := []teacher.GradeEntry{
		{Subject: "Accounting", Grade: 2.00},
		{Subject: "Marketing", Grade: 1.75},
		{Subject: "Management", Grade: 2.25},
		{Subject: "Economics", Grade: 1.50},
	}
	michaelForm := []teacher.GradeEntry{
		{Subject: "Physics"}, {Subject: "Calculus"}, {Subject: "Engineering Design"}, {Subject: "Materials Science"},
	}
	sheet := teacher.GradeSheet{Entries: []teacher.GradeEntry{
		{Subject: "Accounting", Grade: 1.75},
		{Subject: "Marketing", Grade: 2.00},
		{Subject: "Finance", Grade: 1.25},
	}}
	wantRecords := []portal.GradeRecord{
		{Subject: "Accounting", Units: 3, Grade: 1.75, Trend: portal.TrendUp},
		{Subject: "Marketing", Units: 3, Grade: 2.00, Trend: portal.TrendDown},
		{Subject: "Finance", Units: 3, Grade: 1.25, Trend: portal.TrendStable},
	}

	tests := []httpTest{
		{name: "form (existing grades)", path: "/v1/teacher/students/S2023002/grade-form", token: token, wantCode: http.StatusOK, wantData: marchallObj(t, janeForm)},
		{name: "form (template)", path: "/v1/teacher/students/S2023003/grade-form", token: token, wantCode: http.StatusOK, wantData: marchallObj(t, michaelForm)},
		{name: "form (unknown)", path: "/v1/teacher/students/NOPE/grade-form", token: token, wantCode: http.StatusNotFound},
		{
			name: "set: out of range", method: http.MethodPut, path: "/v1/teacher/students/S2023002/grades", token: token,
			body:     marchallObj(t, teacher.GradeSheet{Entries: []teacher.GradeEntry{{Subject: "Accounting", Grade: 5}}}),
			wantCode: http.StatusBadRequest,
		},
		{
			name: "set: unknown student", method: http.MethodPut, path: "/v1/teacher/students/NOPE/grades", token: token,
			body: marchallObj(t, sheet), wantCode: http.StatusNotFound,
		},
		{
			name: "set", method: http.MethodPut, path: "/v1/teacher/students/S2023002/grades", token: token,
			body: marchallObj(t, sheet), wantCode: http.StatusOK, wantData: marchallObj(t, wantRecords),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, tt.run(t, srv))
		})
	}

	assert.Equal(t, wantRecords, a.Store.Grades(context.Background())["S2023002"])
}

func Test_teacherApi_subjects(t *testing.T) {
	srv, _ := setup(t)
	token := getToken(t, teacherUsr)

	tests := []httpTest{
		{
			name: "known course", path: "/v1/teacher/subjects?course=Psychology",
			wantData: marchallObj(t, SubjectsResponse{
				Course:   "Psychology",
				Subjects: []string{"Introduction to Psychology", "Social Psychology", "Cognitive Psychology", "Research Methods"},
			}),
		},
		{
			name: "misspelt course", path: "/v1/teacher/subjects?course=Enginering",
			wantData: marchallObj(t, SubjectsResponse{
				Course: "Enginering", Subjects: []string{"Subject 1", "Subject 2", "Subject 3"}, Suggestion: "Engineering",
			}),
		},
		{
			name: "unknown course", path: "/v1/teacher/subjects?course=Art",
			wantData: marchallObj(t, SubjectsResponse{Course: "Art", Subjects: []string{"Subject 1", "Subject 2", "Subject 3"}}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.token = token
			tt.wantCode = http.StatusOK
			checkCodeAndData(t, tt, tt.run(t, srv))
		})
	}
}

func Test_teacherApi_communication(t *testing.T) {
	srv, a := setup(t)
	token := getToken(t, teacherUsr)
	ctx := context.Background()

	posted := portal.Announcement{
		ID: 4, Title: "Sports Fest", Content: "Classes are suspended on Friday.",
		Date: core.Today(), Author: "Mr. Chiong", Priority: portal.PriorityNormal,
	}
	sent := portal.Message{ID: 3, Subject: "Consultation", Content: "Please drop by.", Sender: "Mr. Chiong", Date: core.Today()}

	tests := []httpTest{
		{
			name: "announce: missing title", method: http.MethodPost, path: "/v1/teacher/announcements",
			body:     marchallObj(t, teacher.NewAnnouncement{Content: "x"}),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, map[string]string{"title": "this field is required"}),
		},
		{
			name: "announce", method: http.MethodPost, path: "/v1/teacher/announcements",
			body:     marchallObj(t, teacher.NewAnnouncement{Title: "Sports Fest", Content: "Classes are suspended on <i>Friday</i>."}),
			wantCode: http.StatusCreated, wantData: marchallObj(t, posted),
		},
		{
			name: "message: no student selected", method: http.MethodPost, path: "/v1/teacher/messages",
			body:     marchallObj(t, teacher.NewMessage{Subject: "Consultation", Content: "Please drop by."}),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, map[string]string{"student_id": "please select a student"}),
		},
		{
			name: "message: unknown student", method: http.MethodPost, path: "/v1/teacher/messages",
			body:     marchallObj(t, teacher.NewMessage{StudentID: "NOPE", Subject: "Consultation", Content: "Please drop by."}),
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "student not found"}),
		},
		{
			name: "message", method: http.MethodPost, path: "/v1/teacher/messages",
			body:     marchallObj(t, teacher.NewMessage{StudentID: "S2023001", Subject: "Consultation", Content: "Please drop by."}),
			wantCode: http.StatusCreated, wantData: marchallObj(t, sent),
		},
		{
			name: "broadcast", method: http.MethodPost, path: "/v1/teacher/messages/broadcast",
			body:     marchallObj(t, teacher.NewMessage{Subject: "Reminder", Content: "Enrollment closes soon."}),
			wantCode: http.StatusCreated, wantData: marchallObj(t, BroadcastResponse{Recipients: 4}),
		},
		{name: "replies", path: "/v1/teacher/replies", wantCode: http.StatusOK, wantData: marchallList(t)},
		{
			name: "stats", path: "/v1/teacher/stats", wantCode: http.StatusOK,
			wantData: marchallObj(t, teacher.QuickStats{Students: 4, Announcements: 4, Courses: 4}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.token = token
			checkCodeAndData(t, tt, tt.run(t, srv))
		})
	}

	anns := a.Store.Announcements(ctx)
	require.Len(t, anns, 4)
	assert.Equal(t, posted, anns[0])

	inbox := a.Store.Messages(ctx)
	assert.Len(t, inbox["S2023001"], 4)
	for _, id := range []string{"S2023002", "S2023003", "S2023004"} {
		require.Len(t, inbox[id], 1, id)
		assert.Equal(t, 1, inbox[id][0].ID, id)
		assert.False(t, inbox[id][0].Read, id)
	}

	req, rec := newAuthRequest(http.MethodGet, "/v1/teacher/announcements/summary", token)
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Total Announcements: 4\n\nSports Fest (normal)\nBy Mr. Chiong on "))
}

func Test_teacherApi_analytics(t *testing.T) {
	srv, _ := setup(t)
	token := getToken(t, teacherUsr)

	distribution := []portal.Bucket{
		{Label: "1.0 - 1.5", Count: 5},
		{Label: "1.51 - 2.0", Count: 3},
		{Label: "2.01 - 2.5", Count: 1},
		{Label: "2.51 - 3.0", Count: 0},
		{Label: "3.01 - 4.0", Count: 0},
	}

	tests := []httpTest{
		{name: "distribution", path: "/v1/teacher/analytics/distribution", wantCode: http.StatusOK, wantData: marchallObj(t, distribution)},
		{
			name: "attendance: invalid status", method: http.MethodPost, path: "/v1/teacher/attendance",
			body:     marchallObj(t, teacher.NewAttendance{StudentID: "S2023001", Status: "sleeping"}),
			wantCode: http.StatusBadRequest,
		},
		{
			name: "attendance: invalid date", method: http.MethodPost, path: "/v1/teacher/attendance",
			body:     marchallObj(t, teacher.NewAttendance{StudentID: "S2023001", Date: "10/12/2023", Status: portal.AttendancePresent}),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, map[string]string{"date": "must be a date formatted as YYYY-MM-DD"}),
		},
		{
			name: "attendance", method: http.MethodPost, path: "/v1/teacher/attendance",
			body:     marchallObj(t, teacher.NewAttendance{StudentID: "S2023001", Date: "2023-10-12", Status: portal.AttendanceLate}),
			wantCode: http.StatusCreated,
			wantData: marchallObj(t, portal.AttendanceRecord{StudentID: "S2023001", Date: "2023-10-12", Status: portal.AttendanceLate}),
		},
		{
			name: "attendance stats", path: "/v1/teacher/analytics/attendance?date=2023-10-12",
			wantCode: http.StatusOK, wantData: marchallObj(t, teacher.AttendanceStats{Late: 1}),
		},
		{
			name: "attendance stats (other day)", path: "/v1/teacher/analytics/attendance?date=2023-10-13",
			wantCode: http.StatusOK, wantData: marchallObj(t, teacher.AttendanceStats{}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.token = token
			checkCodeAndData(t, tt, tt.run(t, srv))
		})
	}

	req, rec := newAuthRequest(http.MethodGet, "/v1/teacher/analytics/course-performance", token)
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"course":"Business Administration"`)

	req, rec = newAuthRequest(http.MethodGet, "/v1/teacher/analytics/export", token)
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "analytics.csv")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Grade Range,Count\n1.0 - 1.5,5\n"))
}
