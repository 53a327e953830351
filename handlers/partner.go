package handlers

import (
	"net/http"

	"servit/middleware"
	"servit/services/partner"

	"github.com/gin-gonic/gin"
)

// PartnerHandler serves partner listing and verification.
type PartnerHandler struct {
	PartnerService partner.PartnerService
}

func NewPartnerHandler(ps partner.PartnerService) *PartnerHandler {
	return &PartnerHandler{PartnerService: ps}
}

type verifyRequest struct {
	Remark string `json:"remark"`
}

type rejectRequest struct {
	RejectionReason string `json:"rejectionReason" binding:"required"`
	Remark          string `json:"remark"`
}

// ListPartnersHandler handles GET /api/partners?status=.
func (h *PartnerHandler) ListPartnersHandler(c *gin.Context) {
	partners, err := h.PartnerService.ListPartners(c.Request.Context(), c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, partners)
}

func (h *PartnerHandler) GetPartnerHandler(c *gin.Context) {
	p, err := h.PartnerService.GetPartner(c.Request.Context(), c.Param("partnerId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// VerifyPartnerHandler records the acting admin as the verifier.
func (h *PartnerHandler) VerifyPartnerHandler(c *gin.Context) {
	var req verifyRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}
	actorID := ""
	if admin, ok := middleware.CurrentAdmin(c); ok {
		actorID = admin.ID
	}
	p, err := h.PartnerService.Verify(c.Request.Context(), c.Param("partnerId"), actorID, req.Remark)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PartnerHandler) RejectPartnerHandler(c *gin.Context) {
	var req rejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.PartnerService.Reject(c.Request.Context(), c.Param("partnerId"), req.RejectionReason, req.Remark)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
