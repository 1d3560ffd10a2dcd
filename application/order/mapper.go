package order

import (
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/order"
)

func toLineItemInputs(items []LineItemRequest) []order.LineItemInput {
	inputs := make([]order.LineItemInput, len(items))
	for i, item := range items {
		inputs[i] = order.LineItemInput{
			Quantity: item.Quantity,
			MealID:   item.MealID,
			MenuID:   item.MenuID,
		}
	}
	return inputs
}

func toOrderResponse(o *order.Order) *OrderResponse {
	items := make([]LineItemResponse, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = LineItemResponse{
			ID:       item.ID(),
			Quantity: item.Quantity(),
			MealID:   item.MealID(),
			MenuID:   item.MenuID(),
		}
	}

	return &OrderResponse{
		ID:        o.ID(),
		UserID:    o.UserID(),
		Status:    o.Status().String(),
		Items:     items,
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

func toQuotationResponse(q order.Quotation) *QuotationResponse {
	return &QuotationResponse{
		DutyFree:  q.DutyFree.String(),
		Inclusive: q.Inclusive.String(),
		RateVAT:   q.RateVAT.StringFixed(2),
	}
}
