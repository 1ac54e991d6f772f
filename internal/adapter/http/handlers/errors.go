package handlers

import (
	"errors"
	"net/http"

	"medipay/internal/domain/access"
	"medipay/internal/domain/entities"
	"medipay/internal/usecase"
	"medipay/internal/usecase/interfaces"
	"medipay/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, access.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, access.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed to perform this operation", http.StatusForbidden)

	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrHospitalNotFound):
		return pkg.NewDomainErrorSimple("HOSPITAL_NOT_FOUND", "Hospital not found or not approved", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPatientNotFound):
		return pkg.NewDomainErrorSimple("PATIENT_NOT_FOUND", "Patient not found", http.StatusNotFound)

	case errors.Is(err, entities.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid amount", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidPercentage):
		return pkg.NewDomainErrorSimple("INVALID_PERCENTAGE", "Commission percentage must be between 0 and 100", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAppointmentTotalUnknown):
		return pkg.NewDomainErrorSimple("APPOINTMENT_TOTAL_UNKNOWN", "Appointment has no total amount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSignatureInvalid):
		return pkg.NewDomainErrorSimple("SIGNATURE_INVALID", "Payment verification failed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPeriod):
		return pkg.NewDomainErrorSimple("INVALID_PERIOD", "Period must be week, month or year", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "Invalid date range", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAppointmentReq),
		errors.Is(err, usecase.ErrInvalidAppointmentID),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidVerification),
		errors.Is(err, usecase.ErrInvalidExpiryThreshold):
		return errInvalidRequest

	case errors.Is(err, usecase.ErrAlreadyCancelled):
		return pkg.NewDomainErrorSimple("ALREADY_CANCELLED", "Appointment already cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyVerified):
		return pkg.NewDomainErrorSimple("ALREADY_VERIFIED", "Payment already verified", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidStateTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATE_TRANSITION", "Operation not allowed in the current appointment status", http.StatusConflict)
	case errors.Is(err, usecase.ErrAppointmentNotPayable):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_PAYABLE", "Appointment does not accept payments", http.StatusConflict)
	case errors.Is(err, usecase.ErrAmountExceedsOutstanding):
		return pkg.NewDomainErrorSimple("AMOUNT_EXCEEDS_OUTSTANDING", "Payment exceeds the outstanding appointment balance", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotPending):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_PENDING", "Payment is no longer pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrVerificationInProgress):
		return pkg.NewDomainErrorSimple("VERIFICATION_IN_PROGRESS", "Payment verification already in progress", http.StatusConflict)
	case errors.Is(err, interfaces.ErrConditionFailed):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Resource was modified concurrently, retry", http.StatusConflict)

	case errors.Is(err, usecase.ErrPaymentGatewayFailure):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment gateway error", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
