package ordering

import (
	"context"

	"github.com/jhoicas/food-order-api/internal/domain/entity"
)

// ReceiptPDFGenerator puerto para la representación en PDF de un pedido.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order) ([]byte, error)
}
