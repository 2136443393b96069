package ui

// Kind identifies one of the fixed set of screens.
type Kind int

const (
	KindLogin Kind = iota
	KindDashboard
	KindAttendance
	KindTracking
	KindHelp
)

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindLogin, KindDashboard, KindAttendance, KindTracking, KindHelp}
}

// MenuKinds are the destinations offered by the navigation menu.
func MenuKinds() []Kind {
	return []Kind{KindDashboard, KindAttendance, KindTracking, KindHelp}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= KindLogin && k <= KindHelp
}

func (k Kind) String() string {
	switch k {
	case KindLogin:
		return "Login"
	case KindDashboard:
		return "Dashboard"
	case KindAttendance:
		return "Attendance"
	case KindTracking:
		return "Tracking"
	case KindHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
