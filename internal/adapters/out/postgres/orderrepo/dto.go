// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number is store-assigned via the autoincrement primary key. The
// status history is stored as a jsonb column on the same row so that a status
// change and its audit entry always commit together. Version backs optimistic
// concurrency: updates are conditional on the version read at load time.
type OrderDTO struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	BuyerID   string     `gorm:"index"`
	Address   AddressDTO `gorm:"embedded"`
	Payment   PaymentDTO `gorm:"embedded"`
	Status    int        `gorm:"index"`
	History   []byte     `gorm:"type:jsonb"`
	OrderDate time.Time  `gorm:"index"`
	Version   int
	Items     []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded shipping address within the order table.
type AddressDTO struct {
	Street  string
	City    string
	State   string
	Country string
	ZipCode string
}

// PaymentDTO represents the embedded payment summary within the order table.
// Only the masked card number is ever persisted.
type PaymentDTO struct {
	CardTypeID       int
	MaskedCardNumber string
	CardHolderName   string
	CardExpiration   time.Time
}

// OrderItemDTO represents one order line. Lines are written once at order
// creation and never updated.
type OrderItemDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	OrderID     int64 `gorm:"index"`
	ProductID   int
	ProductName string
	UnitPrice   decimal.Decimal `gorm:"type:numeric"`
	Discount    decimal.Decimal `gorm:"type:numeric"`
	Units       int
	PictureURL  string
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

type statusChangeDTO struct {
	Status      int       `json:"status"`
	ChangedAt   time.Time `json:"changed_at"`
	Description string    `json:"description"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	domainHistory := aggregate.StatusHistory()
	history := make([]statusChangeDTO, 0, len(domainHistory))
	for _, change := range domainHistory {
		history = append(history, statusChangeDTO{
			Status:      int(change.Status),
			ChangedAt:   change.ChangedAt,
			Description: change.Description,
		})
	}
	rawHistory, err := json.Marshal(history)
	if err != nil {
		return OrderDTO{}, err
	}

	domainItems := aggregate.Items()
	items := make([]OrderItemDTO, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, OrderItemDTO{
			OrderID:     aggregate.ID(),
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Discount:    item.Discount(),
			Units:       item.Quantity(),
			PictureURL:  item.PictureURL(),
		})
	}

	address := aggregate.Address()
	payment := aggregate.PaymentDetails()

	return OrderDTO{
		ID:      aggregate.ID(),
		BuyerID: aggregate.BuyerID(),
		Address: AddressDTO{
			Street:  address.Street(),
			City:    address.City(),
			State:   address.State(),
			Country: address.Country(),
			ZipCode: address.ZipCode(),
		},
		Payment: PaymentDTO{
			CardTypeID:       payment.CardTypeID(),
			MaskedCardNumber: payment.MaskedCardNumber(),
			CardHolderName:   payment.CardHolderName(),
			CardExpiration:   payment.Expiration(),
		},
		Status:    int(aggregate.Status()),
		History:   rawHistory,
		OrderDate: aggregate.OrderDate(),
		Version:   aggregate.Version(),
		Items:     items,
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status history using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	address, err := order.NewAddress(
		dto.Address.Street,
		dto.Address.City,
		dto.Address.State,
		dto.Address.Country,
		dto.Address.ZipCode,
	)
	if err != nil {
		return nil, err
	}

	payment, err := order.RestorePaymentDetails(
		dto.Payment.CardTypeID,
		dto.Payment.MaskedCardNumber,
		dto.Payment.CardHolderName,
		dto.Payment.CardExpiration,
	)
	if err != nil {
		return nil, err
	}

	items := make([]order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewOrderItem(
			itemDTO.ProductID,
			itemDTO.ProductName,
			itemDTO.UnitPrice,
			itemDTO.Discount,
			itemDTO.Units,
			itemDTO.PictureURL,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var rawHistory []statusChangeDTO
	if len(dto.History) > 0 {
		if err = json.Unmarshal(dto.History, &rawHistory); err != nil {
			return nil, err
		}
	}
	history := make([]order.StatusChange, 0, len(rawHistory))
	for _, change := range rawHistory {
		history = append(history, order.StatusChange{
			Status:      order.Status(change.Status),
			ChangedAt:   change.ChangedAt,
			Description: change.Description,
		})
	}

	return order.RestoreOrder(
		dto.ID,
		dto.BuyerID,
		address,
		payment,
		items,
		order.Status(dto.Status),
		history,
		dto.OrderDate,
		dto.Version,
	)
}
