package models

// RoleType defines a user's role
type RoleType string

const (
	RoleAdmin RoleType = "admin"
	RoleUser  RoleType = "user"
)

// DeliveryMode describes how a course is taught
type DeliveryMode string

const (
	DeliveryOnline   DeliveryMode = "Online"
	DeliveryInPerson DeliveryMode = "In-Person"
	DeliveryHybrid   DeliveryMode = "Hybrid"
)

// ValidDeliveryMode reports whether the value is one of the accepted modes
func ValidDeliveryMode(mode string) bool {
	switch DeliveryMode(mode) {
	case DeliveryOnline, DeliveryInPerson, DeliveryHybrid:
		return true
	}
	return false
}

// DialoguesRequirement categories; a course may also carry no requirement at all
const (
	DialoguesSTEM           = "STEM"
	DialoguesArtsHumanities = "Arts & Humanities"
	DialoguesSocialScience  = "Social Science"
	DialoguesNone           = "None"
)

// ValidDialoguesRequirement reports whether the value is an accepted category
func ValidDialoguesRequirement(req string) bool {
	switch req {
	case DialoguesSTEM, DialoguesArtsHumanities, DialoguesSocialScience, DialoguesNone:
		return true
	}
	return false
}
