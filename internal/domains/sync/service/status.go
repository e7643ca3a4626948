package service

import (
	"strings"

	bookingModel "portal/internal/domains/booking/model"
)

// MapJobStatus translates a remote job status into the local booking
// lifecycle. Quote-stage jobs are pending regardless of the raw status;
// unrecognized values fall back to pending.
func MapJobStatus(raw string, quoted bool) string {
	if quoted {
		return bookingModel.StatusPending
	}

	switch strings.ToLower(raw) {
	case "quote":
		return bookingModel.StatusPending
	case "work order":
		return bookingModel.StatusScheduled
	case "in progress":
		return bookingModel.StatusInProgress
	case "completed":
		return bookingModel.StatusCompleted
	case "cancelled":
		return bookingModel.StatusCancelled
	default:
		return bookingModel.StatusPending
	}
}
