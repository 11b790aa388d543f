package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/finanapp/client-go/internal/repo"
)

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission has not settled yet.
var ErrSubmitInFlight = errors.New("a submission is already in flight")

// Form binds a draft to one entity repository and drives the submit cycle:
// validate locally, delegate to the repository's create or update, surface
// the outcome, and close the dialog only on success so the user can correct
// input and resubmit after a failure.
//
// A Form is created when its dialog opens and discarded when it closes; the
// draft is never shared across dialogs. The existing record's identifier is
// fixed at construction: a zero id means create, anything else means update.
type Form[T repo.Record] struct {
	kind        Kind
	repository  *repo.Repository[T]
	coordinator *Coordinator
	notifier    *Notifier
	validate    *validator.Validate
	titler      cases.Caser
	existingID  uint

	mu         sync.Mutex
	submitting bool
}

// NewForm creates a form for the dialog kind backed by the given repository.
// Pass existingID 0 for the create variant.
func NewForm[T repo.Record](kind Kind, repository *repo.Repository[T], coordinator *Coordinator, notifier *Notifier, existingID uint) *Form[T] {
	return &Form[T]{
		kind:        kind,
		repository:  repository,
		coordinator: coordinator,
		notifier:    notifier,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		titler:      cases.Title(language.English),
		existingID:  existingID,
	}
}

// Editing reports whether the form updates an existing record.
func (f *Form[T]) Editing() bool { return f.existingID != 0 }

// Submit validates the draft and performs the create or update round trip.
// Concurrent submissions are locked out until the in-flight one settles, so
// a double-triggered save cannot issue two creates.
func (f *Form[T]) Submit(ctx context.Context, draft any) (T, error) {
	var zero T

	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return zero, ErrSubmitInFlight
	}
	f.submitting = true
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	if err := f.validate.Struct(draft); err != nil {
		msg := validationMessage(err)
		f.notifier.Error(ctx, msg)
		return zero, fmt.Errorf("validation failed: %s", msg)
	}

	var (
		record T
		err    error
	)
	if f.Editing() {
		record, err = f.repository.Update(ctx, f.existingID, draft)
	} else {
		record, err = f.repository.Create(ctx, draft)
	}
	if err != nil {
		// The dialog stays open: the user corrects input and resubmits.
		slog.Warn("Form submission failed", "kind", f.kind, "error", err)
		f.notifier.Error(ctx, fmt.Sprintf("Error: %s", err))
		return zero, err
	}

	title := f.titler.String(f.repository.Kind())
	if f.Editing() {
		f.notifier.Success(ctx, fmt.Sprintf("%s updated!", title))
	} else {
		f.notifier.Success(ctx, fmt.Sprintf("%s created!", title))
	}
	f.coordinator.Close(ctx, f.kind)
	return record, nil
}

// validationMessage flattens validator errors into one display string.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fe.Field()))
		case "numeric":
			parts = append(parts, fmt.Sprintf("%s must be a number", fe.Field()))
		case "datetime":
			parts = append(parts, fmt.Sprintf("%s must be a date (YYYY-MM-DD)", fe.Field()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return strings.Join(parts, "; ")
}
