package dto

import (
	"time"

	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/types"
)

// SuccessResponse represents a generic success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// DateWindow is an inclusive YYYY-MM-DD range sent by clients
type DateWindow struct {
	From string `json:"from" validate:"required,datetime=2006-01-02"`
	To   string `json:"to" validate:"required,datetime=2006-01-02"`
}

func (w *DateWindow) ToDateRange() (*types.DateRange, error) {
	if w == nil {
		return nil, nil
	}
	from, err := parseDate("from", w.From)
	if err != nil {
		return nil, err
	}
	to, err := parseDate("to", w.To)
	if err != nil {
		return nil, err
	}
	if from.After(to) {
		return nil, ierr.NewError("invalid date window").
			WithHint("Window start must not be after its end").
			WithReportableDetails(map[string]any{
				"from": w.From,
				"to":   w.To,
			}).
			Mark(ierr.ErrValidation)
	}
	return &types.DateRange{From: from, To: to}, nil
}

func parseDate(field, value string) (time.Time, error) {
	date, err := types.ParseDate(value)
	if err != nil {
		return time.Time{}, ierr.WithError(err).
			WithHintf("%s must be a date in YYYY-MM-DD format", field).
			WithReportableDetails(map[string]any{
				field: value,
			}).
			Mark(ierr.ErrValidation)
	}
	return date, nil
}

func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	date, err := parseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
