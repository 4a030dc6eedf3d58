package ledger

import (
	"context"

	"github.com/stokmebel/gudang-api/internal/application/dto"
	"github.com/stokmebel/gudang-api/internal/domain"
	"github.com/stokmebel/gudang-api/internal/domain/entity"
)

// RegisterFromRequest adapta el request HTTP a ApplyIncoming/ApplyOutgoing según el
// tipo. Usar desde handlers que ya tengan el actor resuelto del token.
func (l *StockLedger) RegisterFromRequest(ctx context.Context, actor Actor, in dto.MovementRequest) (*dto.MovementResponse, error) {
	switch in.Type {
	case entity.MovementTypeIncoming:
		input := IncomingInput{
			Code:         in.Code,
			Quantity:     in.Quantity,
			Actor:        actor,
			SupplierName: in.SupplierName,
			Note:         in.Note,
		}
		if in.Catalog != nil {
			input.Catalog = &CatalogData{
				Name:     in.Catalog.Name,
				Brand:    in.Catalog.Brand,
				Category: in.Catalog.Category,
				Sizes:    in.Catalog.Sizes,
				Material: in.Catalog.Material,
				Colors:   in.Catalog.Colors,
			}
		}
		res, err := l.ApplyIncoming(ctx, input)
		if err != nil {
			return nil, err
		}
		return toMovementResponse(res), nil

	case entity.MovementTypeOutgoing:
		res, err := l.ApplyOutgoing(ctx, OutgoingInput{
			Code:          in.Code,
			Quantity:      in.Quantity,
			Actor:         actor,
			ClientName:    in.ClientName,
			ClientAddress: in.ClientAddress,
			Note:          in.Note,
		})
		if err != nil {
			return nil, err
		}
		return toMovementResponse(res), nil
	}
	return nil, domain.ErrInvalidInput
}

func toMovementResponse(r *MovementResult) *dto.MovementResponse {
	return &dto.MovementResponse{
		MovementID:  r.MovementID,
		ProductID:   r.ProductID,
		NewQuantity: r.NewQuantity,
		UnitSerial:  r.UnitSerial,
	}
}
