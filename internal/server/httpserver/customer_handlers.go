package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"custdesk/internal/common"
	"custdesk/internal/server/customers"
)

type customerRequest struct {
	Name      string `json:"customer_name" binding:"required"`
	Contact   string `json:"customer_contact" binding:"required"`
	Address   string `json:"customer_address" binding:"required"`
	ManagedBy string `json:"managed_by" binding:"required"`
}

type customerResponse struct {
	ID        string `json:"customer_id"`
	Name      string `json:"customer_name"`
	Contact   string `json:"customer_contact"`
	Address   string `json:"customer_address"`
	ManagedBy string `json:"managed_by"`
}

type customerPageResponse struct {
	Customers   []customerResponse `json:"customers"`
	CurrentPage int                `json:"current_page"`
	TotalPages  int                `json:"total_pages"`
	PageSize    int                `json:"page_size"`
	TotalCount  int                `json:"total_count"`
}

func toCustomerResponse(c *customers.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Contact:   c.Contact,
		Address:   c.Address,
		ManagedBy: c.ManagedBy,
	}
}

func listCustomersHandler(svc *customers.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		// non-numeric values fall through as zero; the service normalizes
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

		result, err := svc.ListPage(c.Request.Context(), page, pageSize)
		if err != nil {
			errorJSON(c, http.StatusInternalServerError, "internal error")
			return
		}

		records := make([]customerResponse, 0, len(result.Customers))
		for i := range result.Customers {
			records = append(records, toCustomerResponse(&result.Customers[i]))
		}

		c.JSON(http.StatusOK, customerPageResponse{
			Customers:   records,
			CurrentPage: result.CurrentPage,
			TotalPages:  result.TotalPages,
			PageSize:    result.PageSize,
			TotalCount:  result.TotalCount,
		})
	}
}

func createCustomerHandler(svc *customers.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid request body")
			return
		}

		created, err := svc.Create(c.Request.Context(), customers.Customer{
			Name:      req.Name,
			Contact:   req.Contact,
			Address:   req.Address,
			ManagedBy: req.ManagedBy,
		})
		if err != nil {
			errorJSON(c, http.StatusInternalServerError, "internal error")
			return
		}

		c.JSON(http.StatusCreated, toCustomerResponse(created))
	}
}

func updateCustomerHandler(svc *customers.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid request body")
			return
		}

		updated, err := svc.Update(c.Request.Context(), customers.Customer{
			ID:        c.Param("id"),
			Name:      req.Name,
			Contact:   req.Contact,
			Address:   req.Address,
			ManagedBy: req.ManagedBy,
		})
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				errorJSON(c, http.StatusNotFound, "customer not found")
				return
			}
			errorJSON(c, http.StatusInternalServerError, "internal error")
			return
		}

		c.JSON(http.StatusOK, toCustomerResponse(updated))
	}
}

func deleteCustomerHandler(svc *customers.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				errorJSON(c, http.StatusNotFound, "customer not found")
				return
			}
			errorJSON(c, http.StatusInternalServerError, "internal error")
			return
		}

		c.Status(http.StatusNoContent)
	}
}
