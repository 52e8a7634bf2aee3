package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"credit-simplicity-backend/internal/domain/identity"
	"credit-simplicity-backend/internal/usecase/portal"
)

type PortalHandler struct {
	uc    *portal.Usecase
	ids   identity.Store // nil in demo mode
	demo  bool
}

func NewPortalHandler(uc *portal.Usecase, ids identity.Store, demo bool) *PortalHandler {
	return &PortalHandler{uc: uc, ids: ids, demo: demo}
}

// Snapshot handles GET /api/portal: resolve the bearer token to an identity
// and return the aggregated portal view. Demo mode skips authentication and
// serves the sample snapshot.
func (h *PortalHandler) Snapshot(c echo.Context) error {
	ctx := c.Request().Context()

	if h.demo {
		return c.JSON(http.StatusOK, h.uc.LoadSnapshot(ctx, ""))
	}

	token := bearerToken(c)
	if token == "" {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing access token"})
	}
	userID, err := h.ids.UserIDFromToken(ctx, token)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid access token"})
	}

	snap := h.uc.LoadSnapshot(ctx, userID)
	if snap == nil {
		// Authenticated identity with no borrower record: the client should
		// send the user to the application form.
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "no borrower for this account"})
	}
	return c.JSON(http.StatusOK, snap)
}

func bearerToken(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}
