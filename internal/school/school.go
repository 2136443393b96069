// Package school holds the literal reference data shown by the views.
//
// Nothing here is loaded or stored. Every accessor returns a fresh copy so a
// view can never change what another view sees. Labels are English message
// keys; views translate them through their printer.
package school

import "schooldesk/internal/chart"

// GradeScaleMax is the top of the grading scale (grades run 0..20).
const GradeScaleMax = 20

// Boolean cells render as one of two symbols.
const (
	MarkYes = "✓"
	MarkNo  = ""
)

// Mark encodes a boolean attendance flag for a table cell.
func Mark(b bool) string {
	if b {
		return MarkYes
	}
	return MarkNo
}

// AttendanceRecord is one row of the attendance sheet.
type AttendanceRecord struct {
	Number  int
	Name    string
	Present bool
	Late    bool
	Absent  bool
}

// AttendanceRoll returns the day's attendance sheet.
func AttendanceRoll() []AttendanceRecord {
	return []AttendanceRecord{
		{Number: 1, Name: "Juan", Present: true},
		{Number: 2, Name: "Maria", Late: true},
		{Number: 3, Name: "Luis", Late: true},
		{Number: 4, Name: "Ana", Late: true},
		{Number: 5, Name: "Carlos", Absent: true},
	}
}

// DailyAttendance is the present/late/absent split for the dashboard pie.
func DailyAttendance() []chart.Point {
	return []chart.Point{
		{Label: "Present", Value: 30},
		{Label: "Late", Value: 10},
		{Label: "Absent", Value: 5},
	}
}

// AverageGrades is the per-subject average for the dashboard bars.
func AverageGrades() []chart.Point {
	return []chart.Point{
		{Label: "Mat", Value: 15},
		{Label: "Len", Value: 17},
		{Label: "Hist", Value: 14},
		{Label: "Cien", Value: 16},
	}
}

// Stat is a labelled, preformatted figure.
type Stat struct {
	Label string
	Value string
}

// StudentSnapshot is what the tracking panel shows for a student.
type StudentSnapshot struct {
	Name    string
	Courses []string
	Stats   []Stat
}

// Lookup returns the snapshot for name. There is no student store: the name
// is echoed and every other field is the same fixed placeholder.
func Lookup(name string) StudentSnapshot {
	return StudentSnapshot{
		Name:    name,
		Courses: []string{},
		Stats: []Stat{
			{Label: "Grade average", Value: "15.5"},
			{Label: "Attendance rate", Value: "85%"},
			{Label: "Class rank", Value: "5"},
			{Label: "Absences", Value: "3"},
		},
	}
}

// BehaviorRatings are the choices for today's behavior.
func BehaviorRatings() []string {
	return []string{"Excellent", "Good", "Fair", "Poor"}
}

// FAQEntry is one question on the help page.
type FAQEntry struct {
	Question string
	Answer   string
}

// FAQ returns the help page entries in display order.
func FAQ() []FAQEntry {
	return []FAQEntry{
		{
			Question: "How do I record attendance?",
			Answer:   "Go to the 'Attendance' section and tick the matching box.",
		},
		{
			Question: "How do I look up a student?",
			Answer:   "In the 'Tracking' section, use the search box at the top.",
		},
		{
			Question: "How do I change my password?",
			Answer:   "Go to 'Settings' and choose 'Change password'.",
		},
	}
}
