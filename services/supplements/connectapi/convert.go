package connectapi

import (
	supplementsv1 "supplements-backend/proto/supplements/v1"
	"supplements-backend/services/supplements"
)

func storeInfoToProto(store supplements.StoreInfo) *supplementsv1.StoreInfo {
	return &supplementsv1.StoreInfo{
		Id:           store.ID,
		SupplementId: store.SupplementID,
		Name:         store.Name,
		StoreUrl:     store.StoreURL,
		InfoUrl:      store.InfoURL,
		Price:        store.Price,
	}
}

func supplementToProto(supplement supplements.Supplement) *supplementsv1.Supplement {
	stores := make([]*supplementsv1.StoreInfo, len(supplement.StoreInfos))
	for i, store := range supplement.StoreInfos {
		stores[i] = storeInfoToProto(store)
	}
	return &supplementsv1.Supplement{
		Id:         supplement.ID,
		Name:       supplement.Name,
		Price:      supplement.Price,
		Dosage:     supplement.Dosage,
		Quantity:   int64(supplement.Quantity),
		Type:       supplement.Type,
		Categories: supplement.Categories,
		StoreInfos: stores,
		CreatedAt:  supplement.CreatedAt.UnixMilli(),
	}
}

func supplementsToProto(catalog []supplements.Supplement) []*supplementsv1.Supplement {
	out := make([]*supplementsv1.Supplement, len(catalog))
	for i, supplement := range catalog {
		out[i] = supplementToProto(supplement)
	}
	return out
}

func cartItemToProto(item supplements.CartItem) *supplementsv1.CartItem {
	return &supplementsv1.CartItem{
		Id:             item.ID,
		SupplementId:   item.SupplementID,
		SupplementName: item.SupplementName,
		StoreInfoId:    item.StoreInfoID,
		StoreName:      item.StoreName,
		Price:          item.Price,
		Quantity:       int64(item.Quantity),
		OrderId:        item.OrderID,
		Subtotal:       item.Subtotal(),
	}
}

func cartItemsToProto(items []supplements.CartItem) []*supplementsv1.CartItem {
	out := make([]*supplementsv1.CartItem, len(items))
	for i, item := range items {
		out[i] = cartItemToProto(item)
	}
	return out
}

func orderToProto(order supplements.Order) *supplementsv1.Order {
	return &supplementsv1.Order{
		Id:        order.ID,
		OrderedAt: order.OrderedAt.UnixMilli(),
		Items:     cartItemsToProto(order.Items),
		Total:     order.Total(),
	}
}

func newStoreInfoFromProto(store *supplementsv1.NewStoreInfo) supplements.AddStoreInfoRequest {
	return supplements.AddStoreInfoRequest{
		Name:     store.GetName(),
		StoreURL: store.GetStoreUrl(),
		InfoURL:  store.GetInfoUrl(),
		Price:    store.Price,
	}
}

func supplementPatchFromProto(req *supplementsv1.UpdateSupplementRequest) supplements.SupplementPatch {
	patch := supplements.SupplementPatch{
		Name:   req.Name,
		Price:  req.Price,
		Dosage: req.Dosage,
		Type:   req.Type,
	}
	if req.Quantity != nil {
		quantity := int(req.GetQuantity())
		patch.Quantity = &quantity
	}
	if req.GetReplaceCategories() {
		categories := append([]string{}, req.GetCategories()...)
		patch.Categories = &categories
	}
	return patch
}

func storeInfoPatchFromProto(req *supplementsv1.UpdateStoreInfoRequest) supplements.StoreInfoPatch {
	return supplements.StoreInfoPatch{
		Name:       req.Name,
		StoreURL:   req.StoreUrl,
		InfoURL:    req.InfoUrl,
		Price:      req.Price,
		ClearPrice: req.GetClearPrice(),
	}
}

var lookupKinds = map[supplementsv1.LookupKind]supplements.LookupKind{
	supplementsv1.LookupKind_LOOKUP_KIND_DOSAGE_UNIT:      supplements.LookupDosageUnit,
	supplementsv1.LookupKind_LOOKUP_KIND_DOSAGE_FREQUENCY: supplements.LookupDosageFrequency,
	supplementsv1.LookupKind_LOOKUP_KIND_SUPPLEMENT_TYPE:  supplements.LookupSupplementType,
	supplementsv1.LookupKind_LOOKUP_KIND_CATEGORY:         supplements.LookupCategory,
}

// lookupKindFromProto leaves unknown kinds empty so that the service
// rejects them.
func lookupKindFromProto(kind supplementsv1.LookupKind) supplements.LookupKind {
	return lookupKinds[kind]
}
