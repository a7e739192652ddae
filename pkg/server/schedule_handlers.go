package server

import (
	"net/http"
	"time"

	"github.com/zorgdesk/zorgcmd/pkg/dateparse"
	"github.com/zorgdesk/zorgcmd/pkg/models"
)

// ScheduleResponse is the schedule query reply: the resolved range plus the
// appointments inside it.
type ScheduleResponse struct {
	DateRange    models.DateRange     `json:"dateRange"`
	Appointments []models.Appointment `json:"appointments"`
}

// GetScheduleHandler lists appointments for a date range. The range comes
// from either an explicit RFC 3339 start/end pair or a natural-language
// label; explicit bounds win when both are present. No parameters at all
// means today.
func GetScheduleHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		dateRange, err := scheduleRange(query.Get("start"), query.Get("end"), query.Get("label"))
		if err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		appointments, err := appState.ScheduleStore.ListAppointments(
			r.Context(),
			dateRange,
			query.Get("patientName"),
		)
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		resp := ScheduleResponse{
			DateRange:    dateRange,
			Appointments: appointments,
		}
		if err := encodeJSON(w, resp); err != nil {
			renderError(w, err, http.StatusInternalServerError)
		}
	}
}

func scheduleRange(startStr, endStr, label string) (models.DateRange, error) {
	if startStr == "" && endStr == "" {
		return dateparse.Resolve(label, time.Now()), nil
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return models.DateRange{}, models.NewBadRequestError("invalid start time: " + startStr)
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return models.DateRange{}, models.NewBadRequestError("invalid end time: " + endStr)
	}
	if end.Before(start) {
		return models.DateRange{}, models.NewBadRequestError("end before start")
	}

	return models.DateRange{Start: start, End: end, Label: label}, nil
}
