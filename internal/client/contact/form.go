// Package contact holds the contact form state. Submitting never touches the
// network; it only acknowledges locally.
package contact

import (
	"fmt"

	"github.com/Pritam6569/portfr/internal/client/toast"
)

// Field names match the form inputs' name attributes.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Outcome is the result of a submit.
type Outcome int

const (
	Sent Outcome = iota
	Incomplete
)

// Result is the acknowledgement shown after a submit.
type Result struct {
	Outcome     Outcome
	Title       string
	Description string
	Variant     toast.Variant
}

var (
	sentResult = Result{
		Outcome:     Sent,
		Title:       "Message Sent!",
		Description: "Thank you for your message. I'll get back to you soon.",
		Variant:     toast.Default,
	}
	incompleteResult = Result{
		Outcome:     Incomplete,
		Title:       "Form incomplete",
		Description: "Please fill in all fields.",
		Variant:     toast.Destructive,
	}
)

// Form is the contact form's field state.
type Form struct {
	Name    string
	Email   string
	Message string
}

// Set updates a field by input name.
func (f *Form) Set(field, value string) error {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldMessage:
		f.Message = value
	default:
		return fmt.Errorf("contact: unknown field %q", field)
	}
	return nil
}

// Complete reports whether every field has a value. Whitespace counts as a value.
func (f *Form) Complete() bool {
	return f.Name != "" && f.Email != "" && f.Message != ""
}

// Submit acknowledges the form. A complete form is cleared; an incomplete
// one is left as typed.
func (f *Form) Submit() Result {
	if !f.Complete() {
		return incompleteResult
	}
	*f = Form{}
	return sentResult
}

// SubmitWith submits and shows the acknowledgement on t.
func (f *Form) SubmitWith(t *toast.Toaster) Result {
	res := f.Submit()
	t.Show(res.Title, res.Description, res.Variant)
	return res
}
