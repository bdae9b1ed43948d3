package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xyzrestro/food-billing-app/models"
	"github.com/xyzrestro/food-billing-app/utils"
)

var (
	ErrEmptyOrder      = errors.New("order is empty")
	ErrMissingCustomer = errors.New("missing customer info")
	ErrBillNotFound    = errors.New("bill not found")
)

// BillService composes immutable bills from order snapshots and owns their
// append-only persistence. Saved bills are never updated or deleted.
type BillService struct {
	DB *gorm.DB
}

func NewBillService(db *gorm.DB) *BillService {
	return &BillService{DB: db}
}

// Compose validates the order snapshot and customer identity and produces an
// immutable bill. Nothing is persisted here; use Save for that. The result
// is deterministic given its inputs except for the id and timestamp.
func (bs *BillService) Compose(lines []OrderLine, customer models.Customer) (*models.Bill, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	if customer.Name == "" || customer.Email == "" {
		return nil, ErrMissingCustomer
	}

	mobile, err := utils.ValidateMobile(customer.Mobile)
	if err != nil {
		return nil, err
	}
	customer.Mobile = mobile

	bill := &models.Bill{
		ID:        uuid.NewString(),
		Customer:  customer,
		CreatedAt: time.Now(),
	}
	for _, line := range lines {
		bill.Items = append(bill.Items, models.BillItem{
			Name:  line.Name,
			Qty:   line.Qty,
			Price: line.Price,
		})
		bill.Total += line.Amount()
	}
	return bill, nil
}

// Save appends the bill and its items to the store.
func (bs *BillService) Save(bill *models.Bill) error {
	if err := bs.DB.Create(bill).Error; err != nil {
		return fmt.Errorf("save bill: %w", err)
	}
	return nil
}

// FindByID retrieves a stored bill with its items. Unknown or malformed ids
// yield ErrBillNotFound, never a crash.
func (bs *BillService) FindByID(id string) (*models.Bill, error) {
	var bill models.Bill
	err := bs.DB.Preload("Items").Where("id = ?", id).First(&bill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBillNotFound
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

// ListRecent returns up to limit bills, newest first.
func (bs *BillService) ListRecent(limit int) ([]models.Bill, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	var bills []models.Bill
	err := bs.DB.Preload("Items").Order("created_at DESC").Limit(limit).Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}
