package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"medipay/internal/adapter/http/handlers/mocks"
	"medipay/internal/domain/access"
	"medipay/internal/domain/entities"
	"medipay/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestAppointmentHandler_Book(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAppointmentHandler(mocks.NewMockIAppointmentUseCase(ctrl))

		r := newTestRouter(testPatient)
		r.POST("/v1/appointments", h.Book)

		if w := doRequest(r, http.MethodPost, "/v1/appointments", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAppointmentHandler(mocks.NewMockIAppointmentUseCase(ctrl))

		r := newTestRouter(testPatient)
		r.POST("/v1/appointments", h.Book)

		w := doRequest(r, http.MethodPost, "/v1/appointments", `{"hospital_id":"h1","service":"X-ray","appointment_date":"next week"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success defaults patient to caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := newTestRouter(testPatient)
		r.POST("/v1/appointments", h.Book)

		uc.EXPECT().Book(gomock.Any(), testPatient, gomock.AssignableToTypeOf(usecase.BookAppointmentInput{})).DoAndReturn(
			func(_ context.Context, _ access.Actor, in usecase.BookAppointmentInput) (entities.Appointment, error) {
				if in.PatientID != "patient-1" || in.HospitalID != "h1" || !in.TotalAmount.Equal(decimal.NewFromInt(500)) {
					t.Fatalf("unexpected input %+v", in)
				}
				if !in.ScheduledAt.Equal(time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC)) {
					t.Fatalf("unexpected schedule %v", in.ScheduledAt)
				}
				return entities.Appointment{ID: "a1", Status: entities.AppointmentStatusBooked, TotalAmount: in.TotalAmount, PaidAmount: decimal.Zero}, nil
			},
		)

		w := doRequest(r, http.MethodPost, "/v1/appointments", `{"hospital_id":"h1","service":"X-ray","date":"2030-05-01T10:00:00Z","total_amount":500}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["id"] != "a1" || body["status"] != "BOOKED" || body["total_amount"] != 500.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := newTestRouter(testPatient)
		r.POST("/v1/appointments", h.Book)

		uc.EXPECT().Book(gomock.Any(), testPatient, gomock.Any()).Return(entities.Appointment{}, access.ErrForbidden)

		w := doRequest(r, http.MethodPost, "/v1/appointments", `{"patient_id":"patient-2","hospital_id":"h1","service":"X-ray","date":"2030-05-01"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestAppointmentHandler_Cancel(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"success", nil, http.StatusOK},
		{"already cancelled", usecase.ErrAlreadyCancelled, http.StatusConflict},
		{"not found", usecase.ErrAppointmentNotFound, http.StatusNotFound},
		{"confirmed", entities.ErrInvalidStateTransition, http.StatusConflict},
		{"store down", errors.New("ddb"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIAppointmentUseCase(ctrl)
			h := NewAppointmentHandler(uc)

			r := newTestRouter(testPatient)
			r.PUT("/v1/appointments/:id/cancel", h.Cancel)

			uc.EXPECT().Cancel(gomock.Any(), testPatient, "a1").Return(entities.Appointment{ID: "a1", Status: entities.AppointmentStatusCancelled}, tc.err)

			w := doRequest(r, http.MethodPut, "/v1/appointments/a1/cancel", "")
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if tc.err == nil && decodeBody(t, w)["status"] != "CANCELLED" {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}
}

func TestAppointmentHandler_GetAndComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAppointmentUseCase(ctrl)
	h := NewAppointmentHandler(uc)

	r := newTestRouter(testHospital)
	r.GET("/v1/appointments/:id", h.GetByID)
	r.PUT("/v1/appointments/:id/complete", h.Complete)

	uc.EXPECT().GetByID(gomock.Any(), testHospital, "a1").Return(entities.Appointment{ID: "a1", Status: entities.AppointmentStatusConfirmed}, nil)
	uc.EXPECT().Complete(gomock.Any(), testHospital, "a1").Return(entities.Appointment{ID: "a1", Status: entities.AppointmentStatusCompleted}, nil)

	if w := doRequest(r, http.MethodGet, "/v1/appointments/a1", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w := doRequest(r, http.MethodPut, "/v1/appointments/a1/complete", "")
	if w.Code != http.StatusOK || decodeBody(t, w)["status"] != "COMPLETED" {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}
}
