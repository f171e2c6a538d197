package missions

// Status describes where a mission is in its lifecycle.
type Status string

// Mission lifecycle statuses.
const (
	StatusPrimeMission    Status = "Prime Mission"
	StatusLaunchFailure   Status = "Launch Failure"
	StatusActive          Status = "Active"
	StatusExtendedMission Status = "Extended Mission"
	StatusCompleted       Status = "Completed"
	StatusCanceled        Status = "Canceled"
	StatusDevelopment     Status = "In Development"
	StatusUnknown         Status = "Unknown"
)

// Statuses returns all defined mission statuses.
func Statuses() []Status {
	return []Status{
		StatusPrimeMission,
		StatusLaunchFailure,
		StatusActive,
		StatusExtendedMission,
		StatusCompleted,
		StatusCanceled,
		StatusDevelopment,
		StatusUnknown,
	}
}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	for _, known := range Statuses() {
		if s == known {
			return true
		}
	}
	return false
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}
