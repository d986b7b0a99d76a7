// Command seed wipes and repopulates the database with demo users and
// listings. Intended for local development only.
package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"marketplace_backend/internal/config"
	authentity "marketplace_backend/internal/feature/auth/domain/entity"
	listingsentity "marketplace_backend/internal/feature/listings/domain/entity"
	infradb "marketplace_backend/internal/platform/db"
)

type seedUser struct {
	name, email, phone, password string
}

type seedListing struct {
	title, brand, model           string
	price                         float64
	year, kmDriven                int
	fuelType, location, desc      string
	engineCC                      int
	images                        []string
}

var users = []seedUser{
	{"John Doe", "john@example.com", "+91 9876543210", "password123"},
	{"Jane Smith", "jane@example.com", "+91 9123456789", "password123"},
	{"Admin User", "admin@bikerent.com", "+91 9988776655", "admin123"},
}

var listings = []seedListing{
	{
		title: "Royal Enfield Classic 350", brand: "Royal Enfield", model: "Classic 350",
		price: 800, year: 2023, kmDriven: 5000, fuelType: "Petrol", location: "Mumbai",
		desc:     "Iconic retro-styled motorcycle with a thumping 350cc engine. Perfect for city rides and weekend getaways.",
		engineCC: 349,
		images: []string{
			"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800",
			"https://images.unsplash.com/photo-1609630875171-b1321377ee65?w=800",
		},
	},
	{
		title: "Honda CBR 650R", brand: "Honda", model: "CBR 650R",
		price: 1500, year: 2022, kmDriven: 8200, fuelType: "Petrol", location: "Bangalore",
		desc:     "Sporty middleweight with an inline-four engine. Serviced on schedule, single owner.",
		engineCC: 649,
		images: []string{
			"https://images.unsplash.com/photo-1568772585407-9361f9bf3a87?w=800",
		},
	},
	{
		title: "Yamaha MT-15", brand: "Yamaha", model: "MT-15",
		price: 600, year: 2021, kmDriven: 12000, fuelType: "Petrol", location: "Delhi",
		desc:     "Aggressive naked streetfighter, great mileage, ideal first big bike.",
		engineCC: 155,
		images: []string{
			"https://images.unsplash.com/photo-1591637333184-19aa84b3e01f?w=800",
		},
	},
	{
		title: "Bajaj Dominar 400", brand: "Bajaj", model: "Dominar 400",
		price: 550, year: 2020, kmDriven: 21000, fuelType: "Petrol", location: "Pune",
		desc:     "Comfortable sports tourer with luggage mounts. Recently replaced tyres.",
		engineCC: 373,
		images: []string{
			"https://images.unsplash.com/photo-1558981403-c5f9899a28bc?w=800",
		},
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	db := infradb.OpenDB(cfg)

	// Clear existing data
	if err := db.Where("1 = 1").Delete(&listingsentity.VehicleImage{}).Error; err != nil {
		log.Fatal("failed to clear images:", err)
	}
	if err := db.Where("1 = 1").Delete(&listingsentity.Vehicle{}).Error; err != nil {
		log.Fatal("failed to clear vehicles:", err)
	}
	if err := db.Where("1 = 1").Delete(&authentity.User{}).Error; err != nil {
		log.Fatal("failed to clear users:", err)
	}

	created := make([]authentity.User, 0, len(users))
	for _, u := range users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("failed to hash password:", err)
		}
		user := authentity.User{Name: u.name, Email: u.email, Phone: u.phone, Password: string(hashed)}
		if err := db.Create(&user).Error; err != nil {
			log.Fatal("failed to create user:", err)
		}
		created = append(created, user)
		log.Printf("created user %s", u.email)
	}

	for i, l := range listings {
		engineCC := l.engineCC
		v := listingsentity.Vehicle{
			Title:        l.title,
			Brand:        l.brand,
			Model:        l.model,
			Price:        l.price,
			Year:         l.year,
			KmDriven:     l.kmDriven,
			FuelType:     l.fuelType,
			Location:     l.location,
			Description:  l.desc,
			OwnerType:    "first_owner",
			EngineCC:     &engineCC,
			IsNegotiable: true,
			OwnerID:      created[i%len(created)].ID,
		}
		if err := db.Create(&v).Error; err != nil {
			log.Fatal("failed to create vehicle:", err)
		}
		for _, url := range l.images {
			img := listingsentity.VehicleImage{VehicleID: v.ID, ImageURL: url}
			if err := db.Create(&img).Error; err != nil {
				log.Fatal("failed to create image:", err)
			}
		}
		log.Printf("created listing %s", l.title)
	}

	log.Println("seed ok")
}
