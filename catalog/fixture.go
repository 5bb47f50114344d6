package catalog

import "github.com/Aitik-official/walnut-leather-sub000/models"

// StaticCatalog is the launch assortment that ships with the storefront.
// Admin-created products live in Mongo and are unioned ahead of these.
func StaticCatalog() []Product {
	return []Product{
		{
			ID:             "classic-belt",
			Name:           "Classic Leather Belt",
			Description:    "Full-grain walnut leather belt with brass buckle.",
			Price:          45,
			Category:       "Belts",
			MainCategory:   "Mens",
			SubCategory:    "Belts",
			AvailableSizes: []models.ProductSize{models.SizeS, models.SizeM, models.SizeL, models.SizeXL},
			Color:          "Brown",
			Material:       "Full-grain leather",
			Stock:          40,
			Images:         []string{"/media/classic-belt.jpg"},
			Source:         SourceStatic,
		},
		{
			ID:             "bifold-wallet",
			Name:           "Bifold Wallet",
			Description:    "Slim bifold with six card slots, vegetable-tanned.",
			Price:          59.5,
			Category:       "Wallets",
			MainCategory:   "Mens",
			SubCategory:    "Wallets",
			AvailableSizes: []models.ProductSize{models.SizeM},
			Color:          "Tan",
			Material:       "Vegetable-tanned leather",
			Stock:          65,
			Featured:       true,
			Images:         []string{"/media/bifold-wallet.jpg"},
			Source:         SourceStatic,
		},
		{
			ID:             "rider-jacket",
			Name:           "Rider Jacket",
			Description:    "Asymmetric-zip riders jacket in matte black cowhide.",
			Price:          389,
			Category:       "Jackets",
			MainCategory:   "Mens",
			SubCategory:    "Riders",
			AvailableSizes: []models.ProductSize{models.SizeM, models.SizeL, models.SizeXL},
			Color:          "Black",
			Material:       "Cowhide",
			Stock:          12,
			Featured:       true,
			Images:         []string{"/media/rider-jacket.jpg"},
			Source:         SourceStatic,
		},
		{
			ID:             "tote-bag",
			Name:           "Everyday Tote",
			Description:    "Unlined tote in pebbled leather, fits a 14\" laptop.",
			Price:          189,
			Category:       "Bags",
			MainCategory:   "Womens",
			SubCategory:    "Totes",
			AvailableSizes: []models.ProductSize{"One Size"},
			Color:          "Cognac",
			Material:       "Pebbled leather",
			Stock:          22,
			Images:         []string{"/media/tote-bag.jpg"},
			Source:         SourceStatic,
		},
		{
			ID:             "moto-gloves",
			Name:           "Moto Gloves",
			Description:    "Perforated lambskin gloves with snap closure.",
			Price:          75,
			Category:       "Accessories",
			MainCategory:   "Womens",
			SubCategory:    "Gloves",
			AvailableSizes: []models.ProductSize{models.SizeS, models.SizeM, models.SizeL},
			Color:          "Black",
			Material:       "Lambskin",
			Stock:          0,
			Images:         []string{"/media/moto-gloves.jpg"},
			Source:         SourceStatic,
		},
		{
			ID:              "weekender-duffle",
			Name:            "Weekender Duffle",
			Description:     "Carry-on duffle with solid brass hardware.",
			Price:           420,
			Category:        "Bags",
			MainCategory:    "Mens",
			SubCategory:     "Duffles",
			AvailableSizes:  []models.ProductSize{"One Size"},
			Color:           "Chestnut",
			Material:        "Full-grain leather",
			Stock:           8,
			LimitedTimeDeal: true,
			Images:          []string{"/media/weekender-duffle.jpg"},
			Source:          SourceStatic,
		},
	}
}
