package supplements

import (
	"context"
	"supplements-backend/services/supplements/db"
)

func seedPrice(p float64) *float64 {
	return &p
}

// DefaultCatalog is what SeedCatalog inserts into an empty catalog.
var DefaultCatalog = []CreateSupplementRequest{
	{
		Name:     "Protein Powder",
		Price:    29.99,
		Dosage:   "1 scoop daily",
		Quantity: 30,
		Type:     "Powder",
		StoreInfos: []AddStoreInfoRequest{
			{
				Name:     "Amazon",
				StoreURL: "https://www.amazon.com/Optimum-Nutrition-Standard-Protein-Chocolate/dp/B000QSNYGI",
				InfoURL:  "https://www.amazon.com/Optimum-Nutrition-Standard-Protein-Chocolate/dp/B000QSNYGI#customerReviews",
			},
			{
				Name:     "Walmart",
				StoreURL: "https://www.walmart.com/ip/17476803",
				InfoURL:  "https://www.walmart.com/reviews/product/17476803",
				Price:    seedPrice(80),
			},
		},
	},
	{
		Name:     "Vitamin D",
		Price:    9.99,
		Dosage:   "1 capsule daily",
		Quantity: 100,
		Type:     "Capsule",
		StoreInfos: []AddStoreInfoRequest{
			{
				Name:     "Amazon",
				StoreURL: "https://www.amazon.com/Vitamin-D3-5000-IU/dp/B00JGCBGQA",
				InfoURL:  "https://example.com/vitamind-amazon-info",
			},
			{
				Name:     "Walmart",
				StoreURL: "https://www.walmart.com/ip/10448595",
				InfoURL:  "https://example.com/vitamind-walmart-info",
			},
		},
	},
	{
		Name:     "Omega-3 Fish Oil",
		Price:    14.99,
		Dosage:   "2 capsules daily",
		Quantity: 60,
		Type:     "Capsule",
		StoreInfos: []AddStoreInfoRequest{
			{
				Name:     "Amazon",
				StoreURL: "https://www.amazon.com/Nature-Made-Fish-Oil-1000/dp/B004U3Y8NI",
				InfoURL:  "https://example.com/omega3-amazon-info",
			},
			{
				Name:     "Walmart",
				StoreURL: "https://www.walmart.com/ip/10448596",
				InfoURL:  "https://example.com/omega3-walmart-info",
			},
		},
	},
	{
		Name:     "Multivitamin",
		Price:    12.50,
		Dosage:   "1 tablet daily",
		Quantity: 90,
		Type:     "Tablet",
		StoreInfos: []AddStoreInfoRequest{
			{
				Name:     "Amazon",
				StoreURL: "https://www.amazon.com/Centrum-Multivitamin-Adults-Tablets/dp/B09KLYG8NH",
				InfoURL:  "https://example.com/multi-amazon-info",
			},
			{
				Name:     "Walmart",
				StoreURL: "https://www.walmart.com/ip/11029191",
				InfoURL:  "https://example.com/multi-walmart-info",
			},
		},
	},
}

// SeedCatalog inserts DefaultCatalog if there are no supplements yet and
// returns how many supplements were inserted.
func (s Service) SeedCatalog(ctx context.Context) (int, error) {
	seeded := 0
	err := s.inTx(ctx, report_catalog_seed, func(txqry *db.Queries) error {
		existing, err := txqry.ListSupplements(ctx)
		if err != nil {
			return s.persistenceError(report_catalog_seed, err)
		}
		if len(existing) > 0 {
			return nil
		}

		for _, req := range DefaultCatalog {
			id := s.ids.NewID()
			err = txqry.CreateSupplement(ctx, db.CreateSupplementParams{
				ID:        id,
				Name:      req.Name,
				Price:     req.Price,
				Dosage:    req.Dosage,
				Quantity:  int64(req.Quantity),
				Type:      req.Type,
				CreatedAt: s.now(),
			})
			if err != nil {
				return s.persistenceError(report_catalog_seed, err)
			}
			for _, store := range req.StoreInfos {
				_, err = s.insertStoreInfo(ctx, txqry, id, store)
				if err != nil {
					return s.persistenceError(report_catalog_seed, err)
				}
			}
			seeded++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if seeded > 0 {
		s.tel.ReportDebug("seeded catalog", seeded)
	}
	return seeded, nil
}
