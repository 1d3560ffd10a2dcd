/*
Package order orchestrates the ordering workflow.

The application service validates the request, runs the admission
checks (catalog resolution, availability windows, daily cutoff), and
drives the order state machine inside a unit of work so that the order
mutation, the wallet debit, and the collected domain events commit
atomically through the outbox.
*/
package order

import (
	"context"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/order"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/user"
)

// searchWindowYears bounds an unset begin date in SearchOrders.
const searchWindowYears = 20

// ApplicationService coordinates order placement, update, cancellation,
// delivery and the read queries.
type ApplicationService struct {
	orderRepo order.Repository
	userRepo  user.Repository
	admission *order.AdmissionService
	engine    *order.PriceEngine
	uow       shared.UnitOfWork
	clock     shared.Clock
}

func NewApplicationService(
	orderRepo order.Repository,
	userRepo user.Repository,
	catalogGW order.CatalogGateway,
	constraintGW order.ConstraintGateway,
	uow shared.UnitOfWork,
	clock shared.Clock,
) *ApplicationService {
	return &ApplicationService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		admission: order.NewAdmissionService(catalogGW, constraintGW),
		engine:    order.NewPriceEngine(catalogGW, constraintGW),
		uow:       uow,
		clock:     clock,
	}
}

// PlaceOrder creates an order in the CREATED state.
//
// The pipeline runs in order: input shape, owner resolution, catalog
// resolution with availability, then the cutoff. The -1 constraint
// sentinel skips availability and cutoff but still resolves the items.
func (s *ApplicationService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*OrderResponse, error) {
	var o *order.Order
	now := s.clock.Now()

	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		inputs := toLineItemInputs(req.Items)

		var err error
		o, err = order.NewOrder(req.UserID, now, inputs)
		if err != nil {
			return err
		}

		if _, err = s.userRepo.FindByID(ctx, req.UserID); err != nil {
			return err
		}

		if err = s.admission.Admit(ctx, inputs, now, req.ConstraintID); err != nil {
			return err
		}

		if err = s.orderRepo.Save(ctx, o); err != nil {
			return err
		}
		s.uow.RegisterNew(o)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toOrderResponse(o), nil
}

// UpdateOrder replaces an order's line items after re-running the same
// admission pipeline as placement. Owner and status never change here,
// and the order's creation time keeps driving nothing: the cutoff is
// evaluated against the update instant.
func (s *ApplicationService) UpdateOrder(ctx context.Context, req UpdateOrderRequest) (*OrderResponse, error) {
	var o *order.Order
	now := s.clock.Now()

	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		o, err = s.orderRepo.FindByID(ctx, req.OrderID)
		if err != nil {
			return err
		}

		inputs := toLineItemInputs(req.Items)
		if err = s.admission.Admit(ctx, inputs, now, req.ConstraintID); err != nil {
			return err
		}
		if err = o.ReplaceLineItems(inputs); err != nil {
			return err
		}

		if err = s.orderRepo.Save(ctx, o); err != nil {
			return err
		}
		s.uow.RegisterDirty(o)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toOrderResponse(o), nil
}

// CancelOrder moves a CREATED order to its terminal CANCELED state.
// Cancellation doubles as deletion; orders are never removed.
func (s *ApplicationService) CancelOrder(ctx context.Context, orderID string) (*OrderResponse, error) {
	var o *order.Order

	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		o, err = s.orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if err = o.Cancel(); err != nil {
			return err
		}
		if err = s.orderRepo.Save(ctx, o); err != nil {
			return err
		}
		s.uow.RegisterDirty(o)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toOrderResponse(o), nil
}

// DeliverAndPay prices the order at the live catalog state, debits the
// owner's wallet, and moves the order to DELIVERED. The debit and the
// status transition commit in the same transaction: an insufficient
// wallet leaves the order CREATED.
func (s *ApplicationService) DeliverAndPay(ctx context.Context, req DeliverOrderRequest) (*OrderResponse, error) {
	var o *order.Order

	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		o, err = s.orderRepo.FindByID(ctx, req.OrderID)
		if err != nil {
			return err
		}

		switch o.Status() {
		case order.StatusCanceled:
			return order.NewOrderAlreadyCanceledError(o.ID())
		case order.StatusDelivered:
			return order.NewOrderDeliveredError(o.ID())
		}

		owner, err := s.userRepo.FindByID(ctx, o.UserID())
		if err != nil {
			return err
		}

		quote, err := s.engine.ComputePrice(ctx, o, req.ConstraintID)
		if err != nil {
			return err
		}

		if err = owner.Debit(quote.Inclusive); err != nil {
			return err
		}
		if err = o.Deliver(quote.Inclusive); err != nil {
			return err
		}

		if err = s.userRepo.Save(ctx, owner); err != nil {
			return err
		}
		if err = s.orderRepo.Save(ctx, o); err != nil {
			return err
		}
		s.uow.RegisterDirty(owner)
		s.uow.RegisterDirty(o)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toOrderResponse(o), nil
}

// ComputePrice quotes an order without mutating anything. Calling it
// twice on unchanged state returns identical totals.
func (s *ApplicationService) ComputePrice(ctx context.Context, orderID string, constraintID *int) (*QuotationResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	quote, err := s.engine.ComputePrice(ctx, o, constraintID)
	if err != nil {
		return nil, err
	}
	return toQuotationResponse(quote), nil
}

// GetOrder returns one order snapshot.
func (s *ApplicationService) GetOrder(ctx context.Context, orderID string) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// GetUserOrders returns all orders belonging to one user.
func (s *ApplicationService) GetUserOrders(ctx context.Context, userID int) ([]*OrderResponse, error) {
	orders, err := s.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = toOrderResponse(o)
	}
	return responses, nil
}

// SearchOrders lists orders by user, status and creation date range.
// An unset begin defaults to twenty years back, an unset end to now,
// and an unset status to CREATED.
func (s *ApplicationService) SearchOrders(ctx context.Context, req SearchOrdersRequest) ([]*OrderResponse, error) {
	spec, err := s.buildSearchSpecification(req)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindBySpecification(ctx, spec)
	if err != nil {
		return nil, err
	}

	responses := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = toOrderResponse(o)
	}
	return responses, nil
}

func (s *ApplicationService) buildSearchSpecification(req SearchOrdersRequest) (shared.Specification[*order.Order], error) {
	now := s.clock.Now()

	begin := now.AddDate(-searchWindowYears, 0, 0)
	if req.Begin != nil {
		begin = *req.Begin
	}
	end := now
	if req.End != nil {
		end = *req.End
	}
	if begin.After(end) {
		return nil, shared.NewValidationError("order", "begin", "begin date must not be after end date")
	}

	status := order.StatusCreated
	if req.Status != nil {
		parsed, err := statusFromName(*req.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	spec := shared.And[*order.Order](
		order.NewByStatusSpecification(status),
		order.NewByDateRangeSpecification(begin, end),
	)
	if req.UserID != nil {
		spec = shared.And[*order.Order](spec, order.NewByUserIDSpecification(*req.UserID))
	}
	return spec, nil
}

func statusFromName(name string) (order.Status, error) {
	switch name {
	case "CREATED":
		return order.StatusCreated, nil
	case "DELIVERED":
		return order.StatusDelivered, nil
	case "CANCELED":
		return order.StatusCanceled, nil
	default:
		return order.StatusCreated, shared.NewValidationError("order", "status", "unknown status "+name)
	}
}
