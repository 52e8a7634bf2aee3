package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"credit-simplicity-backend/internal/usecase/intake"
)

type IntakeHandler struct{ uc *intake.Usecase }

func NewIntakeHandler(uc *intake.Usecase) *IntakeHandler { return &IntakeHandler{uc: uc} }

type applyReq struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Phone           string `json:"phone"`
	CompanyName     string `json:"company_name"`
	Industry        string `json:"industry"`
	YearsInBusiness string `json:"years_in_business"`
	AnnualRevenue   string `json:"annual_revenue"`
	AmountRequested string `json:"amount_requested" validate:"required"`
	LoanPurpose     string `json:"loan_purpose"`
}

// Apply handles POST /api/apply: run the intake workflow and map its typed
// failures onto the public status codes.
func (h *IntakeHandler) Apply(c echo.Context) error {
	var req applyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Missing required fields",
			Details: ToFieldErrors(err),
		})
	}

	res, err := h.uc.Submit(c.Request().Context(), intake.SubmitInput(req))
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, res)
	case errors.Is(err, intake.ErrMissingFields):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
	case errors.Is(err, intake.ErrAccountCreation):
		log.Printf("apply: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create account"})
	case errors.Is(err, intake.ErrPersistence):
		log.Printf("apply: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save application"})
	default:
		log.Printf("apply: unexpected error: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
