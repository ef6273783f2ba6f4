package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing, expired or rejected credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrTransport covers unclassified network and HTTP failures talking to the ERP.
var ErrTransport = errors.New("erp transport error")

// Journal workflow error kinds.
var (
	// ErrNoOpenPeriod indicates that no active accounting period covers the requested date.
	ErrNoOpenPeriod = errors.New("no open accounting period")

	// ErrAccountCreateFailed indicates that the ERP rejected a new account.
	ErrAccountCreateFailed = errors.New("account creation failed")

	// ErrJournalCreateFailed indicates that the ERP rejected a journal header.
	ErrJournalCreateFailed = errors.New("journal creation failed")

	// ErrJournalLineCreateFailed indicates that the ERP rejected a journal line.
	ErrJournalLineCreateFailed = errors.New("journal line creation failed")

	// ErrNotDeletable indicates a journal that is not draft or still has lines.
	ErrNotDeletable = errors.New("journal cannot be deleted")

	// ErrJournalUnbalanced indicates total debits differ from total credits.
	ErrJournalUnbalanced = errors.New("journal entries do not balance")
)
