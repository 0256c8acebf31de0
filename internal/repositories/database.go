package repository

import (
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/gildedthread/storefront-api/internal/config"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	_ "github.com/lib/pq"
)

type Repositories struct {
	DB *sql.DB

	Coupon    CouponRepository
	Cart      CartSessionRepository
	Inventory InventoryRepository
	Shipping  ShippingRepository
	Address   AddressRepository
	Wishlist  WishlistRepository
	Product   ProductRepository
	Order     OrderRepository
	Contact   ContactRepository
}

func New(cfg *config.Config) (*Repositories, error) {

	driverName, err := otelsql.Register("postgres",
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register instrumented driver: %w", err)
	}

	db, err := sql.Open(driverName, cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repositories{
		DB:        db,
		Coupon:    NewCouponRepo(db),
		Cart:      NewCartSessionRepo(db),
		Inventory: NewInventoryRepo(db),
		Shipping:  NewShippingRepo(db),
		Address:   NewAddressRepo(db),
		Wishlist:  NewWishlistRepo(db),
		Product:   NewProductRepo(db),
		Order:     NewOrderRepo(db),
		Contact:   NewContactRepo(db),
	}, nil
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}
