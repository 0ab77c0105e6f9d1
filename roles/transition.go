package roles

import "github.com/alamin6688/survey-quest-server/model"

// Event is a business action that can promote a user.
type Event string

const (
	EventSurveySubmitted  Event = "survey.submitted"
	EventPaymentCompleted Event = "payment.completed"
)

// Decide returns the role the event promotes the user to. Admins never
// transition: automated events must not touch an admin's role. The
// explicit make-pro-user / make-user endpoints bypass this function
// entirely and set the role unconditionally.
func Decide(current string, ev Event) (string, bool) {
	if current == model.RoleAdmin {
		return "", false
	}
	switch ev {
	case EventSurveySubmitted:
		return model.RoleSurveyor, true
	case EventPaymentCompleted:
		return model.RoleProUser, true
	}
	return "", false
}
