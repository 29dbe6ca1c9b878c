package portal

// Roles
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

func (r Role) Valid() bool { return r == RoleStudent || r == RoleTeacher }

// CurrentUser is the identity established by a successful login.
type CurrentUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

const StatusActive = "Active"

type Student struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Course string `json:"course"`
	Year   string `json:"year"`
	Status string `json:"status"`
}

// Trends
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

const DefaultUnits = 3

type GradeRecord struct {
	Subject string  `json:"subject"`
	Units   int     `json:"units"`
	Grade   float64 `json:"grade"` // 1.00 (best) - 4.00
	Trend   Trend   `json:"trend"`
}

// Priorities
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
)

type Announcement struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Date     string   `json:"date"`
	Author   string   `json:"author"`
	Priority Priority `json:"priority"`
}

type Message struct {
	ID      int    `json:"id"`
	Subject string `json:"subject"`
	Content string `json:"content"`
	Sender  string `json:"sender"`
	Date    string `json:"date"`
	Read    bool   `json:"read"`
}

// Reply is a student's answer to one of their messages.
type Reply struct {
	ID        int    `json:"id"`
	StudentID string `json:"student_id"`
	MessageID int    `json:"message_id"`
	Subject   string `json:"subject"`
	Content   string `json:"content"`
	Date      string `json:"date"`
}

// Resource types
type ResourceType string

const (
	ResourceTextbook ResourceType = "textbook"
	ResourceSlides   ResourceType = "slides"
	ResourceVideo    ResourceType = "video"
	ResourceDocument ResourceType = "document"
)

var resourceIcons = map[ResourceType]string{
	ResourceTextbook: "book",
	ResourceSlides:   "file-powerpoint",
	ResourceVideo:    "video",
	ResourceDocument: "file-alt",
}

// Icon returns the icon name shown next to a resource of this type.
func (t ResourceType) Icon() string {
	if icon, ok := resourceIcons[t]; ok {
		return icon
	}
	return "file"
}

type Resource struct {
	ID         int          `json:"id"`
	Title      string       `json:"title"`
	Type       ResourceType `json:"type"`
	Course     string       `json:"course"`
	UploadDate string       `json:"uploadDate"`
}

type ScheduleSlot struct {
	Time      string `json:"time"`
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
}

// Attendance statuses
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

type AttendanceRecord struct {
	StudentID string           `json:"student_id"`
	Date      string           `json:"date"`
	Status    AttendanceStatus `json:"status"`
}

type (
	GradeBook      map[string][]GradeRecord      // {studentID: records}
	Inbox          map[string][]Message          // {studentID: messages}
	AttendanceBook map[string][]AttendanceRecord // {studentID: records}
)
