package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services/container"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/code"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/response"
)

// InvoiceController handles resident charges.
type InvoiceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

func NewInvoiceController(ctx *gin.Context, container *container.ServiceContainer) *InvoiceController {
	return &InvoiceController{Ctx: ctx, Container: container}
}

// HandleInvoiceFunc returns a gin handler dispatching to the invoice
// controller.
func HandleInvoiceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewInvoiceController(ctx, container)

		switch method {
		case "getInvoices":
			controller.GetInvoices()
		case "getInvoice":
			controller.GetInvoice()
		case "createInvoice":
			controller.CreateInvoice()
		case "updateInvoice":
			controller.UpdateInvoice()
		case "deleteInvoice":
			controller.DeleteInvoice()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

// GetInvoices
// @Summary List invoices
// @Description Residents see their own charges, admins their community's, root everything.
// @Tags Invoice
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param page query int false "Page, default 1"
// @Param per_page query int false "Items per page, default 10"
// @Success 200 {object} response.Response
// @Router /invoices [get]
func (c *InvoiceController) GetInvoices() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}
	page := bindPagination(c.Ctx)

	invoiceService := c.Container.GetService("invoice").(services.InterfaceInvoiceService)
	invoices, total, err := invoiceService.List(clr, page)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Paginated(c.Ctx, invoices, total, page)
}

// GetInvoice
// @Summary Get an invoice
// @Tags Invoice
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Invoice id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{id} [get]
func (c *InvoiceController) GetInvoice() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	invoiceService := c.Container.GetService("invoice").(services.InterfaceInvoiceService)
	invoice, err := invoiceService.Get(clr, c.Ctx.Param("id"))
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, invoice)
}

// CreateInvoice
// @Summary Issue an invoice
// @Description Admin or root. The invoice's community is taken from the resident it is issued to.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param body body services.InvoiceInput true "Invoice"
// @Success 201 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Router /invoices [post]
func (c *InvoiceController) CreateInvoice() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req services.InvoiceInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	invoiceService := c.Container.GetService("invoice").(services.InterfaceInvoiceService)
	invoice, err := invoiceService.Create(clr, req)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, invoice)
}

// UpdateInvoice
// @Summary Replace an invoice
// @Description Admin or root. Full replacement including the paid flag.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Invoice id"
// @Param body body services.InvoiceInput true "Invoice"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{id} [put]
func (c *InvoiceController) UpdateInvoice() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req services.InvoiceInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	invoiceService := c.Container.GetService("invoice").(services.InterfaceInvoiceService)
	invoice, err := invoiceService.Update(clr, c.Ctx.Param("id"), req)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, invoice)
}

// DeleteInvoice
// @Summary Delete an invoice
// @Description Admin or root.
// @Tags Invoice
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Invoice id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{id} [delete]
func (c *InvoiceController) DeleteInvoice() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	invoiceService := c.Container.GetService("invoice").(services.InterfaceInvoiceService)
	if err := invoiceService.Delete(clr, c.Ctx.Param("id")); err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, nil)
}
