package patient

import "errors"

var (
	ErrPatientNotFound      = errors.New("patient not found")
	ErrPatientInactive      = errors.New("patient is deactivated")
	ErrPatientAlreadyExists = errors.New("patient with this phone number already exists")
)
