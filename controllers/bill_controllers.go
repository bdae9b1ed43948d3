package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/xyzrestro/food-billing-app/config"
	"github.com/xyzrestro/food-billing-app/models"
	"github.com/xyzrestro/food-billing-app/services"
	"github.com/xyzrestro/food-billing-app/utils"
)

type BillController struct {
	Bills      *services.BillService
	Catalog    *services.CatalogService
	Dispatcher *services.Dispatcher
	Cfg        *config.AppConfig
}

func NewBillController(db *gorm.DB, cfg *config.AppConfig, dispatcher *services.Dispatcher) *BillController {
	return &BillController{
		Bills:      services.NewBillService(db),
		Catalog:    services.NewCatalogService(db),
		Dispatcher: dispatcher,
		Cfg:        cfg,
	}
}

type billItemReq struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

type sendBillReq struct {
	Customer struct {
		Name   string `json:"name"`
		Email  string `json:"email"`
		Mobile string `json:"mobile"`
	} `json:"customer" binding:"required"`
	Order []billItemReq `json:"order" binding:"required"`
}

// SendBill -> POST /api/send-bill
// Persists the order snapshot as an immutable bill, then fans the bill link
// out over the notification channels. Validation failures are 400 and store
// nothing; a persistence failure is 500 and the client keeps its order so
// the request can simply be retried.
func (bc *BillController) SendBill(c *gin.Context) {
	var body sendBillReq
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(body.Order) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order is empty"})
		return
	}

	// Normalize through the accumulator: duplicate names merge
	// case-insensitively and the total is recomputed server-side rather
	// than trusted from the client.
	var order services.Order
	var unresolved []string
	for _, item := range body.Order {
		if err := order.AddItem(item.Name, item.Qty, item.Price); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !bc.Catalog.Knows(item.Name) {
			unresolved = append(unresolved, strings.TrimSpace(item.Name))
		}
	}

	bill, err := bc.Bills.Compose(order.Lines(), models.Customer{
		Name:   body.Customer.Name,
		Email:  body.Customer.Email,
		Mobile: body.Customer.Mobile,
	})
	if err != nil {
		if errors.Is(err, services.ErrMissingCustomer) || errors.Is(err, utils.ErrInvalidMobile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing customer info"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := bc.Bills.Save(bill); err != nil {
		utils.ErrorLogger.Printf("send-bill persistence failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send bill"})
		return
	}

	link := fmt.Sprintf("%s/bills/%s", bc.Cfg.BaseURL, bill.ID)

	// The bill is durable at this point; dispatch is best-effort and its
	// outcome never fails the request.
	bc.Dispatcher.Dispatch(bill, link, services.RenderPlainText(bill))

	message := "Bill saved and link sent."
	if len(unresolved) > 0 {
		message = fmt.Sprintf("Bill saved and link sent. Items not on the menu: %s", strings.Join(unresolved, ", "))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"link":    link,
	})
}

// ViewBill -> GET /bills/:bill_id
// HTML rendering of a stored bill; 404 for unknown or malformed ids.
func (bc *BillController) ViewBill(c *gin.Context) {
	bill, err := bc.Bills.FindByID(c.Param("bill_id"))
	if err != nil {
		if errors.Is(err, services.ErrBillNotFound) {
			c.String(http.StatusNotFound, "Bill not found")
			return
		}
		utils.ErrorLogger.Printf("bill view error: %v", err)
		c.String(http.StatusInternalServerError, "Error loading bill")
		return
	}

	html, err := services.RenderHTML(bill, bc.Cfg.RestaurantName)
	if err != nil {
		utils.ErrorLogger.Printf("bill render error: %v", err)
		c.String(http.StatusInternalServerError, "Error loading bill")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// ViewBillPDF -> GET /bills/:bill_id/pdf
// Printable rendering of a stored bill.
func (bc *BillController) ViewBillPDF(c *gin.Context) {
	bill, err := bc.Bills.FindByID(c.Param("bill_id"))
	if err != nil {
		if errors.Is(err, services.ErrBillNotFound) {
			c.String(http.StatusNotFound, "Bill not found")
			return
		}
		utils.ErrorLogger.Printf("bill view error: %v", err)
		c.String(http.StatusInternalServerError, "Error loading bill")
		return
	}

	pdfBytes, err := services.RenderPDF(bill, bc.Cfg.RestaurantName, bc.Cfg.LogoPath)
	if err != nil {
		utils.ErrorLogger.Printf("bill pdf error: %v", err)
		c.String(http.StatusInternalServerError, "Error generating PDF")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=bill-%s.pdf", bill.ID))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// ListBills -> GET /api/bills?limit=n
// Recent bills, newest first.
func (bc *BillController) ListBills(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	bills, err := bc.Bills.ListRecent(limit)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of bills", bills)
}
