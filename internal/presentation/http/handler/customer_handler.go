package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/rkjewellers/billing-api/internal/application/service"
	"github.com/rkjewellers/billing-api/internal/presentation/http/dto/response"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create handles POST /add_customer. Creating an existing (name, contact)
// pair is idempotent and returns the stored id.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Contact string `json:"contact" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid data, name and contact required")
		return
	}

	customer, created, err := h.customerService.CreateCustomer(c.Request.Context(), req.Name, req.Contact)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !created {
		response.MessageWithID(c, "Customer already exists!", customer.ID)
		return
	}
	response.MessageWithID(c, "Customer added successfully!", customer.ID)
}

// Search handles GET /search_customer?query=. A blank query returns an empty
// array; matches are capped at five.
func (h *CustomerHandler) Search(c *gin.Context) {
	customers, err := h.customerService.SearchCustomers(c.Request.Context(), c.Query("query"))
	if err != nil {
		response.Error(c, err)
		return
	}

	results := make([]gin.H, 0, len(customers))
	for _, customer := range customers {
		results = append(results, gin.H{
			"id":      customer.ID,
			"name":    customer.Name,
			"contact": customer.Contact,
		})
	}
	response.OK(c, results)
}
