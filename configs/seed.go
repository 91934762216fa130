package configs

import (
	"log"

	"github.com/yunusinal/lezzetlimani-sub001/entity"
)

// SeedCatalog loads the demo catalog on an empty database. The insertion
// order of restaurants is the curated "recommended" order the popular sort
// preserves.
func SeedCatalog() error {
	db := DB()

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		log.Println("catalog already seeded")
		return nil
	}

	cuisines := map[string]*entity.Cuisine{}
	for _, name := range []string{
		"Kebap", "Pide", "Burger", "Pizza", "Döner", "Ev Yemekleri", "Tatlı", "Kahvaltı",
	} {
		c := &entity.Cuisine{Name: name}
		if err := db.FirstOrCreate(c, entity.Cuisine{Name: name}).Error; err != nil {
			return err
		}
		cuisines[name] = c
	}

	kurus := func(v int64) *int64 { return &v }

	type seedMenu struct {
		Name            string
		Detail          string
		Price           int64
		DiscountedPrice *int64
		Popular         bool
	}
	type seedRestaurant struct {
		entity.Restaurant
		CuisineNames []string
		Rule         *entity.DiscountRule
		Items        []seedMenu
	}

	restaurants := []seedRestaurant{
		{
			Restaurant: entity.Restaurant{
				Name: "Usta Kebap Salonu", Description: "Odun ateşinde Adana ve Urfa",
				Rating: 4.7, ReviewCount: 1843, DeliveryTimeMin: 25,
				MinOrderAmount: 10000, DeliveryFee: 1000, PriceRange: 2,
				DistanceKM: 1.2, IsPromoted: true,
			},
			CuisineNames: []string{"Kebap", "Pide"},
			Rule: &entity.DiscountRule{
				Kind: entity.DiscountPercentage, Value: 20,
				MinOrderAmount: kurus(10000), Label: "%20 indirim (min ₺100)",
			},
			Items: []seedMenu{
				{Name: "Adana Dürüm", Detail: "Acılı, közlenmiş biber ile", Price: 4500, Popular: true},
				{Name: "Urfa Porsiyon", Detail: "Bulgur pilavı ve salata ile", Price: 6000},
				{Name: "Lahmacun", Price: 3000, DiscountedPrice: kurus(2500), Popular: true},
			},
		},
		{
			Restaurant: entity.Restaurant{
				Name: "Pizza Vera", Description: "Taş fırın pizza",
				Rating: 4.5, ReviewCount: 922, DeliveryTimeMin: 30,
				MinOrderAmount: 15000, DeliveryFee: 1500, PriceRange: 3,
				DistanceKM: 2.8,
			},
			CuisineNames: []string{"Pizza"},
			Rule: &entity.DiscountRule{
				Kind: entity.DiscountFixed, Value: 2500,
				MinOrderAmount: kurus(20000), Label: "₺25 indirim (min ₺200)",
			},
			Items: []seedMenu{
				{Name: "Margherita", Price: 12000, Popular: true},
				{Name: "Quattro Formaggi", Price: 16500},
				{Name: "Sucuklu Pizza", Price: 14000, DiscountedPrice: kurus(11900)},
			},
		},
		{
			Restaurant: entity.Restaurant{
				Name: "Burger Bahçesi", Description: "El yapımı smash burger",
				Rating: 4.2, ReviewCount: 455, DeliveryTimeMin: 20,
				MinOrderAmount: 8000, DeliveryFee: 900, PriceRange: 2,
				DistanceKM: 0.8, IsNew: true,
			},
			CuisineNames: []string{"Burger"},
			Items: []seedMenu{
				{Name: "Klasik Smash", Price: 9500, Popular: true},
				{Name: "Trüflü Burger", Price: 13500},
				{Name: "Patates Kızartması", Price: 3500},
			},
		},
		{
			Restaurant: entity.Restaurant{
				Name: "Anne Mutfağı", Description: "Günlük ev yemekleri",
				Rating: 4.8, ReviewCount: 2731, DeliveryTimeMin: 35,
				MinOrderAmount: 7000, DeliveryFee: 700, PriceRange: 1,
				DistanceKM: 3.4,
			},
			CuisineNames: []string{"Ev Yemekleri"},
			Items: []seedMenu{
				{Name: "Kuru Fasulye Pilav", Price: 5500, Popular: true},
				{Name: "Mercimek Çorbası", Price: 2500},
				{Name: "Fırın Makarna", Price: 4800},
			},
		},
		{
			Restaurant: entity.Restaurant{
				Name: "Dönerci Şükrü", Description: "Tereyağlı İskender",
				Rating: 4.4, ReviewCount: 1207, DeliveryTimeMin: 15,
				MinOrderAmount: 6000, DeliveryFee: 800, PriceRange: 2,
				DistanceKM: 0.5, IsPromoted: true,
			},
			CuisineNames: []string{"Döner", "Kebap"},
			Items: []seedMenu{
				{Name: "İskender", Price: 8500, Popular: true},
				{Name: "Et Döner Dürüm", Price: 5000},
			},
		},
		{
			Restaurant: entity.Restaurant{
				Name: "Tatlıcı Safiye", Description: "Künefe ve baklava",
				Rating: 4.9, ReviewCount: 3310, DeliveryTimeMin: 40,
				MinOrderAmount: 5000, DeliveryFee: 1200, PriceRange: 3,
				DistanceKM: 5.1,
			},
			CuisineNames: []string{"Tatlı"},
			Items: []seedMenu{
				{Name: "Künefe", Price: 6500, Popular: true},
				{Name: "Fıstıklı Baklava (1kg)", Price: 28000, DiscountedPrice: kurus(24500)},
			},
		},
		{
			Restaurant: entity.Restaurant{
				Name: "Serpme Kahvaltı Evi", Description: "Van usulü serpme",
				Rating: 4.1, ReviewCount: 389, DeliveryTimeMin: 45,
				MinOrderAmount: 12000, DeliveryFee: 1100, PriceRange: 4,
				DistanceKM: 6.3, IsNew: true,
			},
			CuisineNames: []string{"Kahvaltı"},
			Items: []seedMenu{
				{Name: "Serpme Kahvaltı (2 kişilik)", Price: 24000, Popular: true},
				{Name: "Menemen", Price: 5500},
			},
		},
	}

	for i := range restaurants {
		sr := &restaurants[i]
		if sr.Rule != nil {
			if err := db.Create(sr.Rule).Error; err != nil {
				return err
			}
			sr.DiscountRuleID = &sr.Rule.ID
		}
		for _, name := range sr.CuisineNames {
			sr.Cuisines = append(sr.Cuisines, *cuisines[name])
		}
		for _, it := range sr.Items {
			sr.Restaurant.Menus = append(sr.Restaurant.Menus, entity.Menu{
				Name: it.Name, Detail: it.Detail, Price: it.Price,
				DiscountedPrice: it.DiscountedPrice, IsPopular: it.Popular,
			})
		}
		if err := db.Create(&sr.Restaurant).Error; err != nil {
			return err
		}
	}

	welcomeRule := &entity.DiscountRule{
		Kind: entity.DiscountPercentage, Value: 15, Label: "Yeni üyelere %15",
	}
	if err := db.Create(welcomeRule).Error; err != nil {
		return err
	}
	campaigns := []entity.Campaign{
		{Title: "Hoş geldin kampanyası", Detail: "İlk siparişe %15 indirim",
			DiscountRuleID: &welcomeRule.ID},
		{Title: "Hafta sonu lezzetleri", Detail: "Seçili restoranlarda kampanyalı menüler"},
	}
	for i := range campaigns {
		if err := db.Create(&campaigns[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("seeded catalog: %d restaurants, %d campaigns", len(restaurants), len(campaigns))
	return nil
}
