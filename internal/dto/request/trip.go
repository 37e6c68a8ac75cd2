package request

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

type PlanTripRequest struct {
	Destination string  `json:"destination" validate:"required"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Budget      float64 `json:"budget" validate:"required,gt=0"`
}

// ValidateDates checks that both dates parse and start does not come after
// end. Struct tags cover the format; the ordering rule needs both fields.
func (r *PlanTripRequest) ValidateDates() error {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", r.StartDate, err)
	}

	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", r.EndDate, err)
	}

	if start.After(end) {
		return fmt.Errorf("start date %s is after end date %s", r.StartDate, r.EndDate)
	}

	return nil
}
