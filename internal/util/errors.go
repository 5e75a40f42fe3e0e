package util

import "errors"

var (
	ErrStudentNotFound   = errors.New("student not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrQuestionNotFound  = errors.New("question not found")
	ErrInvalidSubmission = errors.New("student_id and answers required")
)
