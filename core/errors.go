package core

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

type ErrorAlreadyExists struct {
}

func (e ErrorAlreadyExists) Error() string {
	return "Already Exists"
}

func NewErrorAlreadyExists() ErrorAlreadyExists {
	return ErrorAlreadyExists{}
}

type ErrorPermissionDenied struct {
}

func (e ErrorPermissionDenied) Error() string {
	return "Permission Denied"
}

func NewErrorPermissionDenied() ErrorPermissionDenied {
	return ErrorPermissionDenied{}
}

// ErrorInvalidInput covers invariant violations raised before any write:
// mutating a system role, mutating outside the caller's team, revoking the
// last owner, or authoring a statement with an unknown match kind.
type ErrorInvalidInput struct {
	msg string
}

func (e ErrorInvalidInput) Error() string {
	if e.msg == "" {
		return "Invalid Input"
	}
	return "Invalid Input: " + e.msg
}

func NewErrorInvalidInput(msg string) ErrorInvalidInput {
	return ErrorInvalidInput{msg: msg}
}
