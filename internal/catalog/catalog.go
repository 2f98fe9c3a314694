// Package catalog holds the demo product reference data: unit prices and
// product image URLs. The storefront identifies products by display name,
// so the image key for an order line is its name with whitespace removed
// ("Drip Coffee" -> "DripCoffee").
package catalog

import (
	"sort"
	"strings"
)

const PlaceholderImageURL = "https://via.placeholder.com/80x80?text=Item"

var prices = map[string]float64{
	"Refrigerator":    500,
	"Microwave":       300,
	"Dishwasher":      450,
	"Oven":            550,
	"Washer":          600,
	"Dryer":           600,
	"Blender":         100,
	"DripCoffee":      150,
	"Laptop":          200,
	"TV":              399,
	"Speaker":         199,
	"OutDatedVinyl":   50,
	"Switch2":         499,
	"PlayStation5":    599,
	"XboxS":           399,
	"OutDatedGameBoy": 59,
	"Headphones":      49,
	"IPad":            299,
	"GamingDesktop":   999,
	"Printer":         230,
	"Monitor":         750,
	"Camera":          700,
	"SmartWatch":      299,
	"Vaccum":          100,
}

var images = map[string]string{
	"Refrigerator":    "https://zlinekitchen.com/cdn/shop/products/zline--french--door--stainless--steel--standard--depth--refrigerator--RSM-W-36--side.jpg",
	"Microwave":       "https://pisces.bbystatic.com/image2/BestBuy_US/images/products/6577/6577280_sd.jpg",
	"Dishwasher":      "https://pisces.bbystatic.com/image2/BestBuy_US/images/products/28f0ed55-0925-4cf5-92a1-cd8e15b2e4c3.jpg",
	"Oven":            "https://pisces.bbystatic.com/image2/BestBuy_US/images/products/6401/6401963_sd.jpg",
	"Washer":          "https://encrypted-tbn1.gstatic.com/shopping?q=washer",
	"Dryer":           "https://encrypted-tbn0.gstatic.com/shopping?q=dryer",
	"Blender":         "https://pisces.bbystatic.com/image2/BestBuy_US/images/products/6395/6395884_sd.jpg",
	"DripCoffee":      "https://pisces.bbystatic.com/image2/BestBuy_US/images/products/6553/6553385_sd.jpg",
	"Laptop":          "https://pisces.bbystatic.com/image2/BestBuy_US/images/products/189f8d5b-03fe-4d49-aa2b-552018e1c819.jpg",
	"TV":              "https://pisces.bbystatic.com/image2/BestBuy_US/images/products/0343bc5e-db43-4664-8ef1-8a7255eae875.jpg",
	"Speaker":         "https://pisces.bbystatic.com/image2/BestBuy_US/images/products/db2aafd7-3ca3-48e3-a7fe-36714093bf8c.jpg",
	"OutDatedVinyl":   "https://pisces.bbystatic.com/image2/BestBuy_US/images/products/a495cade-d7b5-4eb8-a36f-c378d3c29ec9.jpg",
	"Switch2":         "https://pisces.bbystatic.com/image2/BestBuy_US/images/products/2d2b885d-0b91-4a0a-b8e0-247fd2b26ab7.jpg",
	"PlayStation5":    "https://pisces.bbystatic.com/image2/BestBuy_US/images/products/6601/6601524_sd.jpg",
	"XboxS":           "https://pisces.bbystatic.com/image2/BestBuy_US/images/products/6470/6470289_sd.jpg",
	"OutDatedGameBoy": "https://upload.wikimedia.org/wikipedia/commons/7/7c/Game-Boy-FL.png",
	"Headphones":      "https://pisces.bbystatic.com/image2/BestBuy_US/images/products/4c7591bb-84b4-4697-b3a7-91ba2d6c83fa.jpg",
	"IPad":            "https://pisces.bbystatic.com/image2/BestBuy_US/images/products/2a76c272-cd12-43b9-ace9-34df9942ddd6.jpg",
	"GamingDesktop":   "https://pisces.bbystatic.com/image2/BestBuy_US/images/products/08c4770e-4f55-494e-a8ed-6604c87bef73.jpg",
	"Printer":         "https://pisces.bbystatic.com/image2/BestBuy_US/images/products/02d42d73-c9c2-4f3a-a964-6d7d37a9f574.jpg",
	"Monitor":         "https://pisces.bbystatic.com/image2/BestBuy_US/images/products/6208cafc-fd04-4b29-89a5-4b431fde8df7.jpg",
	"Camera":          "https://pisces.bbystatic.com/image2/BestBuy_US/images/products/6536/6536336_sd.jpg",
	"SmartWatch":      "https://pisces.bbystatic.com/image2/BestBuy_US/images/products/9ac5d1ec-3b32-4adb-a2f5-adc8b3c047e9.jpg",
	"Vaccum":          "https://pisces.bbystatic.com/image2/BestBuy_US/images/products/30d1d685-9631-4dcb-b24a-27211cc47de2.jpg",
}

type Product struct {
	ID    string  `json:"id"`
	Price float64 `json:"price"`
}

// Price returns the unit price for a product id, or false when unknown.
func Price(id string) (float64, bool) {
	p, ok := prices[id]
	return p, ok
}

// ImageKey normalizes a display name into an image map key.
func ImageKey(name string) string {
	return strings.Join(strings.Fields(name), "")
}

// ImageURL resolves a product name to its image URL, falling back to the
// placeholder when there is no exact mapping.
func ImageURL(name string) string {
	if url, ok := images[ImageKey(name)]; ok {
		return url
	}
	if url, ok := images[name]; ok {
		return url
	}
	return PlaceholderImageURL
}

// List returns every known product in stable (sorted-by-id) order.
func List() []Product {
	out := make([]Product, 0, len(prices))
	for id, price := range prices {
		out = append(out, Product{ID: id, Price: price})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
