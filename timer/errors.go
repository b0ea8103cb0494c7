package timer

import "github.com/trssantos/wellness-tracker-sub005/internal/apperr"

var errSessionCmd = &apperr.Error{
	Message: "unable to parse session_cmd option",
}
