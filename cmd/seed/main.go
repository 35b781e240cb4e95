package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shoporders/internal/config"
	"shoporders/internal/db"
	"shoporders/internal/model"
	"shoporders/internal/repository"
)

const seedPassword = "password123"

type seedUser struct {
	name   string
	email  string
	phone  string
	orders []seedOrder
}

type seedOrder struct {
	status string
	total  string
	items  []seedItem
}

type seedItem struct {
	product  string
	quantity int
	price    string
}

var demoUsers = []seedUser{
	{
		name: "Alice Carter", email: "alice@example.com", phone: "111222333",
		orders: []seedOrder{
			{status: "paid", total: "49.90", items: []seedItem{
				{product: "Wireless Mouse", quantity: 1, price: "24.95"},
				{product: "Mouse Pad", quantity: 1, price: "24.95"},
			}},
			{status: "new", total: "12.50", items: []seedItem{
				{product: "USB-C Cable", quantity: 2, price: "6.25"},
			}},
		},
	},
	{
		name: "Bob Miller", email: "bob@example.com", phone: "444555666",
		orders: []seedOrder{
			{status: "shipped", total: "199.00", items: []seedItem{
				{product: "Mechanical Keyboard", quantity: 1, price: "199.00"},
			}},
		},
	},
	{
		name: "Carol Diaz", email: "carol@example.com", phone: "",
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.Order{}, &model.OrderItem{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	itemRepo := repository.NewOrderItemRepository(gormDB)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	var users, orders, items, skipped int
	for _, su := range demoUsers {
		if _, err := userRepo.FindByEmail(ctx, su.email); err == nil {
			log.Printf("Skipping existing user: %s", su.email)
			skipped++
			continue
		} else if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check user %s: %v", su.email, err)
		}

		user := &model.User{
			Name:         su.name,
			Email:        su.email,
			Phone:        su.phone,
			PasswordHash: string(hash),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", su.email, err)
		}
		users++

		for _, so := range su.orders {
			total, err := decimal.NewFromString(so.total)
			if err != nil {
				log.Fatalf("Invalid seed amount %q: %v", so.total, err)
			}
			order := &model.Order{UserID: user.ID, Status: so.status, TotalAmount: total}
			if err := orderRepo.Create(ctx, order); err != nil {
				log.Fatalf("Failed to create order for %s: %v", su.email, err)
			}
			orders++

			for _, si := range so.items {
				price, err := decimal.NewFromString(si.price)
				if err != nil {
					log.Fatalf("Invalid seed price %q: %v", si.price, err)
				}
				item := &model.OrderItem{
					OrderID:     order.ID,
					ProductName: si.product,
					Quantity:    si.quantity,
					Price:       price,
				}
				if err := itemRepo.Create(ctx, item); err != nil {
					log.Fatalf("Failed to create order item %s: %v", si.product, err)
				}
				items++
			}
		}
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users created: %d (skipped %d existing)", users, skipped)
	log.Printf("  - Orders created: %d", orders)
	log.Printf("  - Order items created: %d", items)
	log.Printf("  - Demo password for all seeded users: %s", seedPassword)
}
