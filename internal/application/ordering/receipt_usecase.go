package ordering

import (
	"context"
	"fmt"

	"github.com/jhoicas/food-order-api/internal/domain"
	"github.com/jhoicas/food-order-api/internal/domain/repository"
)

// ReceiptUseCase genera el recibo PDF de un pedido propio.
type ReceiptUseCase struct {
	orderRepo repository.OrderRepository
	generator ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(orderRepo repository.OrderRepository, generator ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{orderRepo: orderRepo, generator: generator}
}

// DownloadReceipt devuelve los bytes del PDF y un nombre de archivo sugerido.
// domain.ErrOrderNotFound si el pedido no existe o no es de username.
func (uc *ReceiptUseCase) DownloadReceipt(ctx context.Context, username, orderID string) (pdfBytes []byte, filename string, err error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener pedido: %w", err)
	}
	if order == nil || order.Owner != username {
		return nil, "", domain.ErrOrderNotFound
	}
	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, order)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("pedido_%s.pdf", order.ID), nil
}
