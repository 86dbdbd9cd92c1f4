package connectapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"supplements-backend/internal/components/assert"
	"supplements-backend/internal/components/telemetry"
	supplementsv1 "supplements-backend/proto/supplements/v1"
	"supplements-backend/proto/supplements/v1/supplementsv1connect"
	"supplements-backend/services/supplements"

	"connectrpc.com/connect"
)

const (
	report_server_internal = "server.internal"
)

// Server exposes a supplements.Service as a connect service.
type Server struct {
	svc supplements.Service
	tel telemetry.API
}

var _ supplementsv1connect.SupplementsServiceHandler = Server{}

func NewServer(svc supplements.Service, tel telemetry.API) Server {
	assert.NotNil(tel, "telemetry api")
	return Server{
		svc: svc,
		tel: telemetry.NewScopedAPI("connectapi", tel),
	}
}

// toConnectError maps the errors of the service onto connect codes, errors
// that are not the caller's fault hide their message.
func (s Server) toConnectError(err error) error {
	switch {
	case errors.Is(err, supplements.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, supplements.ErrValidationFailed):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, supplements.ErrRefreshInProgress):
		return connect.NewError(connect.CodeAborted, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	case errors.Is(err, supplements.ErrPersistenceFailed):
		s.tel.ReportWarning(report_server_internal, err)
		return connect.NewError(connect.CodeInternal, errors.New("internal error"))
	default:
		// everything else comes from scraping a retailer
		return connect.NewError(connect.CodeUnavailable, err)
	}
}

func (s Server) ListSupplements(ctx context.Context, req *connect.Request[supplementsv1.ListSupplementsRequest]) (*connect.Response[supplementsv1.ListSupplementsResponse], error) {
	catalog, err := s.svc.ListSupplements(ctx)
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.ListSupplementsResponse{
		Supplements: supplementsToProto(catalog),
	}), nil
}

func (s Server) GetSupplement(ctx context.Context, req *connect.Request[supplementsv1.GetSupplementRequest]) (*connect.Response[supplementsv1.GetSupplementResponse], error) {
	supplement, err := s.svc.GetSupplement(ctx, req.Msg.GetId())
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.GetSupplementResponse{
		Supplement: supplementToProto(supplement),
	}), nil
}

func (s Server) CreateSupplement(ctx context.Context, req *connect.Request[supplementsv1.CreateSupplementRequest]) (*connect.Response[supplementsv1.CreateSupplementResponse], error) {
	stores := make([]supplements.AddStoreInfoRequest, len(req.Msg.GetStoreInfos()))
	for i, store := range req.Msg.GetStoreInfos() {
		stores[i] = newStoreInfoFromProto(store)
	}
	created, err := s.svc.CreateSupplement(ctx, supplements.CreateSupplementRequest{
		Name:       req.Msg.GetName(),
		Price:      req.Msg.GetPrice(),
		Dosage:     req.Msg.GetDosage(),
		Quantity:   int(req.Msg.GetQuantity()),
		Type:       req.Msg.GetType(),
		Categories: req.Msg.GetCategories(),
		StoreInfos: stores,
	})
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.CreateSupplementResponse{
		Supplement: supplementToProto(created),
	}), nil
}

func (s Server) UpdateSupplement(ctx context.Context, req *connect.Request[supplementsv1.UpdateSupplementRequest]) (*connect.Response[supplementsv1.UpdateSupplementResponse], error) {
	updated, err := s.svc.UpdateSupplement(ctx, req.Msg.GetId(), supplementPatchFromProto(req.Msg))
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.UpdateSupplementResponse{
		Supplement: supplementToProto(updated),
	}), nil
}

func (s Server) DeleteSupplement(ctx context.Context, req *connect.Request[supplementsv1.DeleteSupplementRequest]) (*connect.Response[supplementsv1.DeleteSupplementResponse], error) {
	err := s.svc.DeleteSupplement(ctx, req.Msg.GetId())
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.DeleteSupplementResponse{}), nil
}

func (s Server) AddStoreInfo(ctx context.Context, req *connect.Request[supplementsv1.AddStoreInfoRequest]) (*connect.Response[supplementsv1.AddStoreInfoResponse], error) {
	store, err := s.svc.AddStoreInfo(ctx, req.Msg.GetSupplementId(), newStoreInfoFromProto(req.Msg.GetStoreInfo()))
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.AddStoreInfoResponse{
		StoreInfo: storeInfoToProto(store),
	}), nil
}

func (s Server) GetStoreInfo(ctx context.Context, req *connect.Request[supplementsv1.GetStoreInfoRequest]) (*connect.Response[supplementsv1.GetStoreInfoResponse], error) {
	store, err := s.svc.GetStoreInfo(ctx, req.Msg.GetId())
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.GetStoreInfoResponse{
		StoreInfo: storeInfoToProto(store),
	}), nil
}

func (s Server) UpdateStoreInfo(ctx context.Context, req *connect.Request[supplementsv1.UpdateStoreInfoRequest]) (*connect.Response[supplementsv1.UpdateStoreInfoResponse], error) {
	store, err := s.svc.UpdateStoreInfo(ctx, req.Msg.GetId(), storeInfoPatchFromProto(req.Msg))
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.UpdateStoreInfoResponse{
		StoreInfo: storeInfoToProto(store),
	}), nil
}

func (s Server) DeleteStoreInfo(ctx context.Context, req *connect.Request[supplementsv1.DeleteStoreInfoRequest]) (*connect.Response[supplementsv1.DeleteStoreInfoResponse], error) {
	err := s.svc.DeleteStoreInfo(ctx, req.Msg.GetId())
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.DeleteStoreInfoResponse{}), nil
}

func (s Server) SearchSupplements(ctx context.Context, req *connect.Request[supplementsv1.SearchSupplementsRequest]) (*connect.Response[supplementsv1.SearchSupplementsResponse], error) {
	results, err := s.svc.SearchSupplements(ctx, req.Msg.GetQuery(), int(req.Msg.GetLimit()))
	if err != nil {
		return nil, s.toConnectError(err)
	}
	out := make([]*supplementsv1.SearchResult, len(results))
	for i, result := range results {
		out[i] = &supplementsv1.SearchResult{
			Supplement: supplementToProto(result.Supplement),
			Score:      result.Score,
			MatchedOn:  result.MatchedOn,
		}
	}
	return connect.NewResponse(&supplementsv1.SearchSupplementsResponse{Results: out}), nil
}

func (s Server) ListCategories(ctx context.Context, req *connect.Request[supplementsv1.ListCategoriesRequest]) (*connect.Response[supplementsv1.ListCategoriesResponse], error) {
	categories, err := s.svc.ListCategories(ctx)
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.ListCategoriesResponse{Categories: categories}), nil
}

func (s Server) SeedCatalog(ctx context.Context, req *connect.Request[supplementsv1.SeedCatalogRequest]) (*connect.Response[supplementsv1.SeedCatalogResponse], error) {
	seeded, err := s.svc.SeedCatalog(ctx)
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.SeedCatalogResponse{Seeded: int64(seeded)}), nil
}

func (s Server) ListCart(ctx context.Context, req *connect.Request[supplementsv1.ListCartRequest]) (*connect.Response[supplementsv1.ListCartResponse], error) {
	items, err := s.svc.ListCart(ctx)
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.ListCartResponse{
		Items: cartItemsToProto(items),
		Total: supplements.TotalOf(items),
	}), nil
}

func (s Server) AddToCart(ctx context.Context, req *connect.Request[supplementsv1.AddToCartRequest]) (*connect.Response[supplementsv1.AddToCartResponse], error) {
	item, err := s.svc.AddToCart(
		ctx,
		req.Msg.GetSupplementId(),
		req.Msg.GetStoreInfoId(),
		int(req.Msg.GetQuantity()),
	)
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.AddToCartResponse{Item: cartItemToProto(item)}), nil
}

func (s Server) SetQuantity(ctx context.Context, req *connect.Request[supplementsv1.SetQuantityRequest]) (*connect.Response[supplementsv1.SetQuantityResponse], error) {
	err := s.svc.SetQuantity(ctx, req.Msg.GetCartItemId(), int(req.Msg.GetQuantity()))
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.SetQuantityResponse{}), nil
}

func (s Server) RemoveFromCart(ctx context.Context, req *connect.Request[supplementsv1.RemoveFromCartRequest]) (*connect.Response[supplementsv1.RemoveFromCartResponse], error) {
	err := s.svc.RemoveFromCart(ctx, req.Msg.GetCartItemId())
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.RemoveFromCartResponse{}), nil
}

func (s Server) ClearCart(ctx context.Context, req *connect.Request[supplementsv1.ClearCartRequest]) (*connect.Response[supplementsv1.ClearCartResponse], error) {
	err := s.svc.ClearCart(ctx)
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.ClearCartResponse{}), nil
}

func (s Server) Checkout(ctx context.Context, req *connect.Request[supplementsv1.CheckoutRequest]) (*connect.Response[supplementsv1.CheckoutResponse], error) {
	order, err := s.svc.Checkout(ctx, req.Msg.GetCartItemIds()...)
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.CheckoutResponse{Order: orderToProto(order)}), nil
}

func (s Server) ListOrders(ctx context.Context, req *connect.Request[supplementsv1.ListOrdersRequest]) (*connect.Response[supplementsv1.ListOrdersResponse], error) {
	orders, err := s.svc.ListOrders(ctx)
	if err != nil {
		return nil, s.toConnectError(err)
	}
	out := make([]*supplementsv1.Order, len(orders))
	for i, order := range orders {
		out[i] = orderToProto(order)
	}
	return connect.NewResponse(&supplementsv1.ListOrdersResponse{Orders: out}), nil
}

func (s Server) GetOrder(ctx context.Context, req *connect.Request[supplementsv1.GetOrderRequest]) (*connect.Response[supplementsv1.GetOrderResponse], error) {
	order, err := s.svc.GetOrder(ctx, req.Msg.GetId())
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.GetOrderResponse{Order: orderToProto(order)}), nil
}

func (s Server) DeleteOrder(ctx context.Context, req *connect.Request[supplementsv1.DeleteOrderRequest]) (*connect.Response[supplementsv1.DeleteOrderResponse], error) {
	err := s.svc.DeleteOrder(ctx, req.Msg.GetId())
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.DeleteOrderResponse{}), nil
}

func (s Server) RefreshPrice(ctx context.Context, req *connect.Request[supplementsv1.RefreshPriceRequest]) (*connect.Response[supplementsv1.RefreshPriceResponse], error) {
	price, err := s.svc.RefreshPrice(ctx, req.Msg.GetStoreInfoId())
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.RefreshPriceResponse{Price: price}), nil
}

// RefreshAllPrices answers with the partial report when the batch was
// cancelled.
func (s Server) RefreshAllPrices(ctx context.Context, req *connect.Request[supplementsv1.RefreshAllPricesRequest]) (*connect.Response[supplementsv1.RefreshAllPricesResponse], error) {
	report, err := s.svc.RefreshAllPrices(ctx)
	if err != nil && !report.Cancelled {
		return nil, s.toConnectError(err)
	}

	updated := make([]*supplementsv1.PriceUpdate, len(report.Updated))
	for i, update := range report.Updated {
		updated[i] = &supplementsv1.PriceUpdate{
			StoreInfoId:  update.StoreInfoID,
			SupplementId: update.SupplementID,
			Price:        update.Price,
			Previous:     update.Previous,
		}
	}
	failures := make([]*supplementsv1.RefreshFailure, len(report.Failures))
	for i, failure := range report.Failures {
		failures[i] = &supplementsv1.RefreshFailure{
			StoreInfoId: failure.StoreInfoID,
			StoreUrl:    failure.StoreURL,
			Reason:      failure.Message,
		}
	}
	return connect.NewResponse(&supplementsv1.RefreshAllPricesResponse{
		Updated:   updated,
		Failures:  failures,
		Skipped:   int64(report.Skipped),
		Cancelled: report.Cancelled,
	}), nil
}

func (s Server) ExportSnapshot(ctx context.Context, req *connect.Request[supplementsv1.ExportSnapshotRequest]) (*connect.Response[supplementsv1.ExportSnapshotResponse], error) {
	snapshot, err := s.svc.ExportSnapshot(ctx)
	if err != nil {
		return nil, s.toConnectError(err)
	}
	encoded, err := json.Marshal(snapshot)
	if err != nil {
		s.tel.ReportBroken(report_server_internal, err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("internal error"))
	}
	return connect.NewResponse(&supplementsv1.ExportSnapshotResponse{SnapshotJson: encoded}), nil
}

func (s Server) ImportSnapshot(ctx context.Context, req *connect.Request[supplementsv1.ImportSnapshotRequest]) (*connect.Response[supplementsv1.ImportSnapshotResponse], error) {
	var snapshot supplements.Snapshot
	err := json.Unmarshal(req.Msg.GetSnapshotJson(), &snapshot)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid snapshot: %w", err))
	}
	err = s.svc.ImportSnapshot(ctx, snapshot)
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.ImportSnapshotResponse{}), nil
}

func (s Server) ListLookupOptions(ctx context.Context, req *connect.Request[supplementsv1.ListLookupOptionsRequest]) (*connect.Response[supplementsv1.ListLookupOptionsResponse], error) {
	names, err := s.svc.ListLookupOptions(ctx, lookupKindFromProto(req.Msg.GetKind()))
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.ListLookupOptionsResponse{Names: names}), nil
}

func (s Server) AddLookupOption(ctx context.Context, req *connect.Request[supplementsv1.AddLookupOptionRequest]) (*connect.Response[supplementsv1.AddLookupOptionResponse], error) {
	err := s.svc.AddLookupOption(ctx, lookupKindFromProto(req.Msg.GetKind()), req.Msg.GetName())
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.AddLookupOptionResponse{}), nil
}

func (s Server) DeleteLookupOption(ctx context.Context, req *connect.Request[supplementsv1.DeleteLookupOptionRequest]) (*connect.Response[supplementsv1.DeleteLookupOptionResponse], error) {
	err := s.svc.DeleteLookupOption(ctx, lookupKindFromProto(req.Msg.GetKind()), req.Msg.GetName())
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&supplementsv1.DeleteLookupOptionResponse{}), nil
}
