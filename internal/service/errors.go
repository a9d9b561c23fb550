package service

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrTestNotFound     = errors.New("test not found")
	ErrSectionNotFound  = errors.New("section not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrAttemptNotFound  = errors.New("attempt not found")
	ErrResultNotFound   = errors.New("result not found")

	ErrTestNotPublished     = errors.New("test is not published")
	ErrAttemptInProgress    = errors.New("an in-progress attempt already exists for this test")
	ErrAttemptNotInProgress = errors.New("attempt is not in progress")
	ErrNotAttemptOwner      = errors.New("attempt belongs to another user")
	ErrResultExists         = errors.New("a result already exists for this attempt")
	ErrInvalidAnswer        = errors.New("answer value is not valid for the question type")
	ErrInvalidQuestion      = errors.New("question is not valid")
)

// notFound maps the driver's no-documents error to a domain sentinel and
// passes everything else through untouched.
func notFound(err, sentinel error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return sentinel
	}
	return err
}
