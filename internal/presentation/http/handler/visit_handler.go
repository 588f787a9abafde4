package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rkjewellers/billing-api/internal/application/service"
	"github.com/rkjewellers/billing-api/internal/presentation/http/dto/response"
)

// historyDateLayout matches the original client's date serialization.
const historyDateLayout = "2006-01-02 15:04:05"

// VisitHandler handles visit-related HTTP requests
type VisitHandler struct {
	visitService *service.VisitService
}

// NewVisitHandler creates a new visit handler
func NewVisitHandler(visitService *service.VisitService) *VisitHandler {
	return &VisitHandler{visitService: visitService}
}

// Create handles POST /add_visit. purchased_items must be present but may be
// empty; paid and due amounts default to zero.
func (h *VisitHandler) Create(c *gin.Context) {
	var req struct {
		CustomerID     uint      `json:"customer_id" binding:"required"`
		PurchasedItems *[]string `json:"purchased_items"`
		PaidAmount     float64   `json:"paid_amount"`
		DueAmount      float64   `json:"due_amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.PurchasedItems == nil {
		response.BadRequest(c, "Invalid data, customer_id and purchased_items required")
		return
	}

	_, err := h.visitService.RecordVisit(c.Request.Context(), &service.RecordVisitInput{
		CustomerID:     req.CustomerID,
		PurchasedItems: *req.PurchasedItems,
		PaidAmount:     req.PaidAmount,
		DueAmount:      req.DueAmount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Visit recorded successfully!")
}

// History handles GET /get_customer_history/:customer_id, newest visit first.
func (h *VisitHandler) History(c *gin.Context) {
	customerID, err := strconv.ParseUint(c.Param("customer_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid customer id")
		return
	}

	visits, err := h.visitService.GetCustomerHistory(c.Request.Context(), uint(customerID))
	if err != nil {
		response.Error(c, err)
		return
	}

	history := make([]gin.H, 0, len(visits))
	for _, visit := range visits {
		history = append(history, gin.H{
			"date":            visit.Date.Format(historyDateLayout),
			"purchased_items": visit.PurchasedItems,
			"paid_amount":     visit.PaidAmount,
			"due_amount":      visit.DueAmount,
		})
	}
	response.OK(c, gin.H{"visits": history})
}
