package handlers

import (
	"encoding/json"
	"errors"
	"hos-log-service/internal/adapters/render"
	"hos-log-service/internal/api/dto"
	"hos-log-service/internal/domain"
	"hos-log-service/internal/ports"
	"hos-log-service/internal/services"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type TripHandler struct {
	Repo ports.TripRepository
}

// Plan simulates a trip under HOS rules, assembles its daily log views, and
// persists the resulting trip record.
func (h *TripHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanTripRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if strings.TrimSpace(req.StartLocation) == "" ||
		strings.TrimSpace(req.PickupLocation) == "" ||
		strings.TrimSpace(req.DropoffLocation) == "" {
		writeError(w, r, http.StatusBadRequest, "start_location, pickup_location and dropoff_location are required")
		return
	}

	if req.CurrentCycleUsed < 0 || req.CurrentCycleUsed > domain.CycleLimitHours {
		writeError(w, r, http.StatusBadRequest, "current_cycle_used must be between 0 and 70")
		return
	}

	if req.Segment1Miles < 0 || req.Segment2Miles < 0 || req.DistanceMiles < 0 {
		writeError(w, r, http.StatusBadRequest, "mileage values must be non-negative")
		return
	}

	seg1, seg2 := req.Segment1Miles, req.Segment2Miles
	if seg1 == 0 && seg2 == 0 {
		// Only a total was supplied; split it evenly across the two legs.
		seg1 = req.DistanceMiles / 2
		seg2 = req.DistanceMiles / 2
	}

	dayLogs, stops := services.SimulateTrip(seg1, seg2)

	trip := &domain.Trip{
		TripID:           uuid.New(),
		StartLocation:    strings.TrimSpace(req.StartLocation),
		PickupLocation:   strings.TrimSpace(req.PickupLocation),
		DropoffLocation:  strings.TrimSpace(req.DropoffLocation),
		CurrentCycleUsed: req.CurrentCycleUsed,
		DayLogs:          dayLogs,
		Stops:            stops,
		CreatedAt:        time.Now().UTC(),
	}

	views, err := services.AssembleDays(trip.DayLogs, domain.TripContext{CycleHoursUsedBeforeTrip: trip.CurrentCycleUsed}, services.AssembleOptions{})
	if err != nil {
		log.Printf("assemble days failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := h.Repo.CreateTrip(r.Context(), trip); err != nil {
		log.Printf("create trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, toTripResponse(trip, views))
}

// Detail serves stored trips: GET /trips/{id} returns the trip with
// recomputed day views, GET /trips/{id}/logsheet?day=N returns one day as an
// SVG log sheet.
func (h *TripHandler) Detail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/trips/"), "/"), "/")

	id, err := uuid.Parse(parts[0])
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid trip id")
		return
	}

	trip, err := h.Repo.GetTrip(r.Context(), id)
	if errors.Is(err, ports.ErrTripNotFound) {
		writeError(w, r, http.StatusNotFound, "trip not found")
		return
	}
	if err != nil {
		log.Printf("get trip failed: trip_id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	views, err := services.AssembleDays(trip.DayLogs, domain.TripContext{CycleHoursUsedBeforeTrip: trip.CurrentCycleUsed}, services.AssembleOptions{})
	if err != nil {
		log.Printf("assemble days failed: trip_id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	switch {
	case len(parts) == 1:
		writeJSON(w, r, http.StatusOK, toTripResponse(trip, views))
	case len(parts) == 2 && parts[1] == "logsheet":
		h.logSheet(w, r, views)
	default:
		writeError(w, r, http.StatusNotFound, "not found")
	}
}

func (h *TripHandler) logSheet(w http.ResponseWriter, r *http.Request, views []services.DayView) {
	day := 1
	if q := r.URL.Query().Get("day"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "day must be an integer")
			return
		}
		day = n
	}

	for _, view := range views {
		if view.DayNumber != day {
			continue
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		if err := render.LogSheet(w, view); err != nil {
			log.Printf("render log sheet failed: day=%d err=%v", day, err)
		}
		return
	}

	writeError(w, r, http.StatusNotFound, "no such day in trip")
}

func toTripResponse(trip *domain.Trip, views []services.DayView) dto.TripResponse {
	dayIntervals := make(map[int][]dto.IntervalResponse, len(trip.DayLogs))
	for _, d := range trip.DayLogs {
		intervals := make([]dto.IntervalResponse, 0, len(d.Intervals))
		for _, iv := range d.Intervals {
			intervals = append(intervals, dto.IntervalResponse{Status: iv.Status, Start: iv.Start, End: iv.End})
		}
		dayIntervals[d.DayNumber] = intervals
	}

	days := make([]dto.DayViewResponse, 0, len(views))
	for _, v := range views {
		path := make([]dto.PathPointResponse, 0, len(v.Path))
		for _, pt := range v.Path {
			path = append(path, dto.PathPointResponse{Hour: pt.Hour, Lane: pt.Lane})
		}

		days = append(days, dto.DayViewResponse{
			Day:       v.DayNumber,
			Date:      v.Date,
			Intervals: dayIntervals[v.DayNumber],
			Path:      path,
			Summary: dto.SummaryResponse{
				TotalDrivingHours:   v.Summary.TotalDrivingHours,
				TotalOnDutyHours:    v.Summary.TotalOnDutyHours,
				CycleHoursRemaining: v.Summary.CycleHoursRemaining,
			},
		})
	}

	stops := make([]dto.StopResponse, 0, len(trip.Stops))
	for _, s := range trip.Stops {
		stops = append(stops, dto.StopResponse{Type: s.Type, DistanceMiles: s.DistanceMiles})
	}

	return dto.TripResponse{
		TripID:           trip.TripID.String(),
		StartLocation:    trip.StartLocation,
		PickupLocation:   trip.PickupLocation,
		DropoffLocation:  trip.DropoffLocation,
		CurrentCycleUsed: trip.CurrentCycleUsed,
		CreatedAt:        trip.CreatedAt,
		Days:             days,
		Stops:            stops,
	}
}
