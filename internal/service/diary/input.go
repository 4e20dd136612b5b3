package diary

import (
	"time"

	"github.com/tjwls11/diary111/internal/domain"
)

const (
	maxTitleLen   = 200
	maxOneLen     = 500
	maxContentLen = 20000
)

// EntryInput holds the writable fields of a diary entry, shared by create and
// update operations.
type EntryInput struct {
	Date    string
	Title   string
	One     string
	Content string
}

// Validate validates the entry input.
func (i EntryInput) Validate() error {
	var errs []domain.FieldError

	if i.Date == "" {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	} else if _, err := time.Parse(DateLayout, i.Date); err != nil {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
	}

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if len(i.One) > maxOneLen {
		errs = append(errs, domain.FieldError{Field: "one", Message: "too long"})
	}

	if i.Content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if len(i.Content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// date returns the parsed entry date. Call only after Validate.
func (i EntryInput) date() time.Time {
	d, _ := time.Parse(DateLayout, i.Date)
	return d
}
