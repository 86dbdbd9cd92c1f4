package supplements

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"
	"supplements-backend/lib/scrapers/prices"
	"supplements-backend/lib/textutil"
	"supplements-backend/services/supplements/db"

	"go.opentelemetry.io/otel/attribute"
)

func supplementFromRow(row db.Supplement, categories []string, stores []db.StoreInfo) Supplement {
	out := Supplement{
		ID:         row.ID,
		Name:       row.Name,
		Price:      row.Price,
		Dosage:     row.Dosage,
		Quantity:   int(row.Quantity),
		Type:       row.Type,
		Categories: categories,
		CreatedAt:  fromUnixMilli(row.CreatedAt),
	}
	if out.Categories == nil {
		out.Categories = []string{}
	}
	out.StoreInfos = make([]StoreInfo, len(stores))
	for i, store := range stores {
		out.StoreInfos[i] = storeInfoFromRow(store)
	}
	return out
}

func storeInfoFromRow(row db.StoreInfo) StoreInfo {
	return StoreInfo{
		ID:           row.ID,
		SupplementID: row.SupplementID,
		Name:         row.Name,
		StoreURL:     row.StoreUrl,
		InfoURL:      row.InfoUrl,
		Price:        pricePtr(row.Price),
	}
}

// supplementPrice coerces NaN to 0 and rejects negative or infinite prices.
func supplementPrice(price float64) (float64, error) {
	if math.IsNaN(price) {
		return 0, nil
	}
	if price < 0 || math.IsInf(price, 0) {
		return 0, invalid("supplement price must be a finite non-negative number, got %v", price)
	}
	return price, nil
}

func validateStorePrice(price *float64) error {
	if price == nil {
		return nil
	}
	if math.IsNaN(*price) || math.IsInf(*price, 0) || *price < 0 {
		return invalid("store price must be a finite non-negative number, got %v", *price)
	}
	return nil
}

func validateStoreURLs(storeURL, infoURL string) error {
	if _, err := prices.ParseStoreURL(storeURL); err != nil {
		return invalid("store url: %s", err)
	}
	if infoURL == "" {
		return nil
	}
	if _, err := prices.ParseStoreURL(infoURL); err != nil {
		return invalid("info url: %s", err)
	}
	return nil
}

func normalizeStoreInfo(req AddStoreInfoRequest) (AddStoreInfoRequest, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.StoreURL = strings.TrimSpace(req.StoreURL)
	req.InfoURL = strings.TrimSpace(req.InfoURL)
	if req.Name == "" {
		return req, invalid("store name must not be empty")
	}
	if err := validateStoreURLs(req.StoreURL, req.InfoURL); err != nil {
		return req, err
	}
	if err := validateStorePrice(req.Price); err != nil {
		return req, err
	}
	return req, nil
}

func (s Service) loadSupplement(ctx context.Context, qry *db.Queries, id string) (Supplement, error) {
	row, err := qry.GetSupplement(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Supplement{}, notFound("supplement", id)
	}
	if err != nil {
		return Supplement{}, err
	}
	categories, err := qry.ListCategoriesOfSupplement(ctx, id)
	if err != nil {
		return Supplement{}, err
	}
	stores, err := qry.ListStoreInfosOfSupplement(ctx, id)
	if err != nil {
		return Supplement{}, err
	}
	return supplementFromRow(row, categories, stores), nil
}

// wrapQueryError passes domain errors through and turns everything else
// into a persistence error.
func (s Service) wrapQueryError(reportId string, err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidationFailed) {
		return err
	}
	return s.persistenceError(reportId, err)
}

func (s Service) insertStoreInfo(ctx context.Context, qry *db.Queries, supplementId string, req AddStoreInfoRequest) (string, error) {
	id := s.ids.NewID()
	err := qry.CreateStoreInfo(ctx, db.CreateStoreInfoParams{
		ID:           id,
		SupplementID: supplementId,
		Name:         req.Name,
		StoreUrl:     req.StoreURL,
		InfoUrl:      req.InfoURL,
		Price:        nullPrice(req.Price),
		CreatedAt:    s.now(),
	})
	return id, err
}

func (s Service) CreateSupplement(ctx context.Context, req CreateSupplementRequest) (Supplement, error) {
	ctx, span := tracer.Start(ctx, "CreateSupplement")
	defer span.End()

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return Supplement{}, invalid("supplement name must not be empty")
	}
	if req.Quantity < 0 {
		return Supplement{}, invalid("quantity must not be negative, got %d", req.Quantity)
	}
	price, err := supplementPrice(req.Price)
	if err != nil {
		return Supplement{}, err
	}
	stores := make([]AddStoreInfoRequest, len(req.StoreInfos))
	for i, store := range req.StoreInfos {
		stores[i], err = normalizeStoreInfo(store)
		if err != nil {
			return Supplement{}, err
		}
	}

	id := s.ids.NewID()
	var created Supplement
	err = s.inTx(ctx, report_catalog_create_supplement, func(txqry *db.Queries) error {
		err := txqry.CreateSupplement(ctx, db.CreateSupplementParams{
			ID:        id,
			Name:      req.Name,
			Price:     price,
			Dosage:    strings.TrimSpace(req.Dosage),
			Quantity:  int64(req.Quantity),
			Type:      strings.TrimSpace(req.Type),
			CreatedAt: s.now(),
		})
		if err != nil {
			return s.persistenceError(report_catalog_create_supplement, err)
		}
		for _, category := range textutil.NormalizeSet(req.Categories) {
			err = txqry.AddSupplementCategory(ctx, db.AddSupplementCategoryParams{
				SupplementID: id,
				Category:     category,
			})
			if err != nil {
				return s.persistenceError(report_catalog_create_supplement, err)
			}
		}
		for _, store := range stores {
			_, err = s.insertStoreInfo(ctx, txqry, id, store)
			if err != nil {
				return s.persistenceError(report_catalog_create_supplement, err)
			}
		}

		created, err = s.loadSupplement(ctx, txqry, id)
		if err != nil {
			return s.wrapQueryError(report_catalog_create_supplement, err)
		}
		return nil
	})
	if err != nil {
		return Supplement{}, err
	}

	span.SetAttributes(attribute.String("supplement_id", id))
	return created, nil
}

func (s Service) GetSupplement(ctx context.Context, id string) (Supplement, error) {
	out, err := s.loadSupplement(ctx, s.qry, id)
	if err != nil {
		return Supplement{}, s.wrapQueryError(report_catalog_get_supplement, err)
	}
	return out, nil
}

// ListSupplements returns every supplement in creation order.
func (s Service) ListSupplements(ctx context.Context) ([]Supplement, error) {
	rows, err := s.qry.ListSupplements(ctx)
	if err != nil {
		return nil, s.persistenceError(report_catalog_list_supplements, err)
	}
	categories, err := s.qry.ListSupplementCategories(ctx)
	if err != nil {
		return nil, s.persistenceError(report_catalog_list_supplements, err)
	}
	stores, err := s.qry.ListStoreInfos(ctx)
	if err != nil {
		return nil, s.persistenceError(report_catalog_list_supplements, err)
	}

	categoriesOf := map[string][]string{}
	for _, c := range categories {
		categoriesOf[c.SupplementID] = append(categoriesOf[c.SupplementID], c.Category)
	}
	storesOf := map[string][]db.StoreInfo{}
	for _, store := range stores {
		storesOf[store.SupplementID] = append(storesOf[store.SupplementID], store)
	}

	out := make([]Supplement, len(rows))
	for i, row := range rows {
		out[i] = supplementFromRow(row, categoriesOf[row.ID], storesOf[row.ID])
	}
	return out, nil
}

func (s Service) UpdateSupplement(ctx context.Context, id string, patch SupplementPatch) (Supplement, error) {
	ctx, span := tracer.Start(ctx, "UpdateSupplement")
	defer span.End()
	span.SetAttributes(attribute.String("supplement_id", id))

	var updated Supplement
	err := s.inTx(ctx, report_catalog_update_supplement, func(txqry *db.Queries) error {
		row, err := txqry.GetSupplement(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("supplement", id)
		}
		if err != nil {
			return s.persistenceError(report_catalog_update_supplement, err)
		}

		if patch.Name != nil {
			row.Name = strings.TrimSpace(*patch.Name)
			if row.Name == "" {
				return invalid("supplement name must not be empty")
			}
		}
		if patch.Price != nil {
			row.Price, err = supplementPrice(*patch.Price)
			if err != nil {
				return err
			}
		}
		if patch.Dosage != nil {
			row.Dosage = strings.TrimSpace(*patch.Dosage)
		}
		if patch.Quantity != nil {
			if *patch.Quantity < 0 {
				return invalid("quantity must not be negative, got %d", *patch.Quantity)
			}
			row.Quantity = int64(*patch.Quantity)
		}
		if patch.Type != nil {
			row.Type = strings.TrimSpace(*patch.Type)
		}

		_, err = txqry.UpdateSupplement(ctx, db.UpdateSupplementParams{
			ID:       id,
			Name:     row.Name,
			Price:    row.Price,
			Dosage:   row.Dosage,
			Quantity: row.Quantity,
			Type:     row.Type,
		})
		if err != nil {
			return s.persistenceError(report_catalog_update_supplement, err)
		}

		if patch.Categories != nil {
			err = txqry.DeleteSupplementCategories(ctx, id)
			if err != nil {
				return s.persistenceError(report_catalog_update_supplement, err)
			}
			for _, category := range textutil.NormalizeSet(*patch.Categories) {
				err = txqry.AddSupplementCategory(ctx, db.AddSupplementCategoryParams{
					SupplementID: id,
					Category:     category,
				})
				if err != nil {
					return s.persistenceError(report_catalog_update_supplement, err)
				}
			}
		}

		updated, err = s.loadSupplement(ctx, txqry, id)
		if err != nil {
			return s.wrapQueryError(report_catalog_update_supplement, err)
		}
		return nil
	})
	if err != nil {
		return Supplement{}, err
	}
	return updated, nil
}

// DeleteSupplement removes the supplement with its store infos, categories
// and every cart item referencing it, including items that were ordered.
func (s Service) DeleteSupplement(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "DeleteSupplement")
	defer span.End()
	span.SetAttributes(attribute.String("supplement_id", id))

	return s.inTx(ctx, report_catalog_delete_supplement, func(txqry *db.Queries) error {
		_, err := txqry.GetSupplement(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("supplement", id)
		}
		if err != nil {
			return s.persistenceError(report_catalog_delete_supplement, err)
		}

		removed, err := txqry.DeleteCartItemsOfSupplement(ctx, id)
		if err != nil {
			return s.persistenceError(report_catalog_delete_supplement, err)
		}
		err = txqry.DeleteSupplementCategories(ctx, id)
		if err != nil {
			return s.persistenceError(report_catalog_delete_supplement, err)
		}
		err = txqry.DeleteStoreInfosOfSupplement(ctx, id)
		if err != nil {
			return s.persistenceError(report_catalog_delete_supplement, err)
		}
		_, err = txqry.DeleteSupplement(ctx, id)
		if err != nil {
			return s.persistenceError(report_catalog_delete_supplement, err)
		}

		span.SetAttributes(attribute.Int64("removed_cart_items", removed))
		return nil
	})
}

func (s Service) AddStoreInfo(ctx context.Context, supplementId string, req AddStoreInfoRequest) (StoreInfo, error) {
	req, err := normalizeStoreInfo(req)
	if err != nil {
		return StoreInfo{}, err
	}

	var created StoreInfo
	err = s.inTx(ctx, report_catalog_add_store_info, func(txqry *db.Queries) error {
		_, err := txqry.GetSupplement(ctx, supplementId)
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("supplement", supplementId)
		}
		if err != nil {
			return s.persistenceError(report_catalog_add_store_info, err)
		}

		id, err := s.insertStoreInfo(ctx, txqry, supplementId, req)
		if err != nil {
			return s.persistenceError(report_catalog_add_store_info, err)
		}
		row, err := txqry.GetStoreInfo(ctx, id)
		if err != nil {
			return s.persistenceError(report_catalog_add_store_info, err)
		}
		created = storeInfoFromRow(row)
		return nil
	})
	if err != nil {
		return StoreInfo{}, err
	}
	return created, nil
}

func (s Service) GetStoreInfo(ctx context.Context, id string) (StoreInfo, error) {
	row, err := s.qry.GetStoreInfo(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return StoreInfo{}, notFound("store info", id)
	}
	if err != nil {
		return StoreInfo{}, s.persistenceError(report_catalog_get_store_info, err)
	}
	return storeInfoFromRow(row), nil
}

func (s Service) UpdateStoreInfo(ctx context.Context, id string, patch StoreInfoPatch) (StoreInfo, error) {
	var updated StoreInfo
	err := s.inTx(ctx, report_catalog_update_store_info, func(txqry *db.Queries) error {
		row, err := txqry.GetStoreInfo(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("store info", id)
		}
		if err != nil {
			return s.persistenceError(report_catalog_update_store_info, err)
		}

		req := AddStoreInfoRequest{
			Name:     row.Name,
			StoreURL: row.StoreUrl,
			InfoURL:  row.InfoUrl,
			Price:    pricePtr(row.Price),
		}
		if patch.Name != nil {
			req.Name = *patch.Name
		}
		if patch.StoreURL != nil {
			req.StoreURL = *patch.StoreURL
		}
		if patch.InfoURL != nil {
			req.InfoURL = *patch.InfoURL
		}
		if patch.Price != nil {
			req.Price = patch.Price
		}
		if patch.ClearPrice {
			req.Price = nil
		}
		req, err = normalizeStoreInfo(req)
		if err != nil {
			return err
		}

		_, err = txqry.UpdateStoreInfo(ctx, db.UpdateStoreInfoParams{
			ID:       id,
			Name:     req.Name,
			StoreUrl: req.StoreURL,
			InfoUrl:  req.InfoURL,
			Price:    nullPrice(req.Price),
		})
		if err != nil {
			return s.persistenceError(report_catalog_update_store_info, err)
		}

		row, err = txqry.GetStoreInfo(ctx, id)
		if err != nil {
			return s.persistenceError(report_catalog_update_store_info, err)
		}
		updated = storeInfoFromRow(row)
		return nil
	})
	if err != nil {
		return StoreInfo{}, err
	}
	return updated, nil
}

// replacementStore picks the store cart items fall back to when their store
// is deleted: the cheapest one with a known price, otherwise the first one
// created. remaining is expected in creation order.
func replacementStore(remaining []db.StoreInfo) (db.StoreInfo, bool) {
	if len(remaining) == 0 {
		return db.StoreInfo{}, false
	}
	var cheapest db.StoreInfo
	found := false
	for _, store := range remaining {
		if !store.Price.Valid {
			continue
		}
		if !found || store.Price.Float64 < cheapest.Price.Float64 {
			cheapest = store
			found = true
		}
	}
	if found {
		return cheapest, true
	}
	return remaining[0], true
}

// DeleteStoreInfo removes a store info, cart items selecting it move to the
// replacement store of the same supplement (merging with an item that
// already selects it) or are removed when no store remains.
func (s Service) DeleteStoreInfo(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "DeleteStoreInfo")
	defer span.End()
	span.SetAttributes(attribute.String("store_info_id", id))

	return s.inTx(ctx, report_catalog_delete_store_info, func(txqry *db.Queries) error {
		store, err := txqry.GetStoreInfo(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("store info", id)
		}
		if err != nil {
			return s.persistenceError(report_catalog_delete_store_info, err)
		}

		siblings, err := txqry.ListStoreInfosOfSupplement(ctx, store.SupplementID)
		if err != nil {
			return s.persistenceError(report_catalog_delete_store_info, err)
		}
		var remaining []db.StoreInfo
		for _, sibling := range siblings {
			if sibling.ID != id {
				remaining = append(remaining, sibling)
			}
		}
		target, hasTarget := replacementStore(remaining)

		items, err := txqry.ListCartItemsOfStoreInfo(ctx, id)
		if err != nil {
			return s.persistenceError(report_catalog_delete_store_info, err)
		}
		for _, item := range items {
			err = s.repointCartItem(ctx, txqry, item, target, hasTarget)
			if err != nil {
				return s.persistenceError(report_catalog_delete_store_info, err)
			}
		}

		_, err = txqry.DeleteStoreInfo(ctx, id)
		if err != nil {
			return s.persistenceError(report_catalog_delete_store_info, err)
		}
		return nil
	})
}

func (s Service) repointCartItem(ctx context.Context, txqry *db.Queries, item db.CartItem, target db.StoreInfo, hasTarget bool) error {
	if !hasTarget {
		_, err := txqry.DeleteCartItem(ctx, item.ID)
		return err
	}

	existing, err := txqry.FindCartItem(ctx, db.FindCartItemParams{
		SupplementID: item.SupplementID,
		StoreInfoID:  target.ID,
		OrderID:      item.OrderID,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return txqry.SetCartItemStoreInfo(ctx, db.SetCartItemStoreInfoParams{
			ID:          item.ID,
			StoreInfoID: target.ID,
		})
	}
	if err != nil {
		return err
	}

	err = txqry.SetCartItemQuantity(ctx, db.SetCartItemQuantityParams{
		ID:       existing.ID,
		Quantity: existing.Quantity + item.Quantity,
	})
	if err != nil {
		return err
	}
	_, err = txqry.DeleteCartItem(ctx, item.ID)
	return err
}

// ListCategories returns every category used by at least one supplement.
func (s Service) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.qry.ListDistinctCategories(ctx)
	if err != nil {
		return nil, s.persistenceError(report_catalog_list_categories, err)
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}
