package services

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"walletview/internal/models"
	"walletview/internal/repositories"
)

// merchantInfo describes one merchant the seeder can draw from.
type merchantInfo struct {
	name     string
	category models.Category
	minPrice float64
	maxPrice float64
}

var merchantPool = []merchantInfo{
	{"Whole Foods Market", models.CategoryGroceries, 8, 140},
	{"Trader Joe's", models.CategoryGroceries, 8, 90},
	{"Aldi", models.CategoryGroceries, 5, 70},
	{"Starbucks", models.CategoryDining, 4, 18},
	{"Chipotle Mexican Grill", models.CategoryDining, 9, 35},
	{"Olive Garden", models.CategoryDining, 25, 90},
	{"Uber", models.CategoryTransportation, 7, 45},
	{"Shell", models.CategoryTransportation, 20, 80},
	{"Metro Transit", models.CategoryTransportation, 2, 6},
	{"Netflix", models.CategoryEntertainment, 16, 16},
	{"AMC Theaters", models.CategoryEntertainment, 12, 48},
	{"Amazon.com", models.CategoryShopping, 10, 220},
	{"IKEA", models.CategoryShopping, 15, 400},
	{"Comcast Xfinity", models.CategoryBills, 60, 120},
	{"Verizon Wireless", models.CategoryBills, 45, 95},
	{"CVS Pharmacy", models.CategoryHealthcare, 8, 85},
	{"Coursera", models.CategoryEducation, 39, 79},
	{"Delta Air Lines", models.CategoryTravel, 120, 900},
	{"Account Fee", models.CategoryFees, 2, 15},
}

// seederService generates plausible feed data for the demo store and the
// component previews.
type seederService struct {
	repo  repositories.TransactionRepositoryInterface
	faker *gofakeit.Faker
}

// NewSeederService creates a new SeederServiceInterface instance
func NewSeederService(repo repositories.TransactionRepositoryInterface, seed uint64) SeederServiceInterface {
	return &seederService{
		repo:  repo,
		faker: gofakeit.New(seed),
	}
}

// Seed inserts count generated transactions unless the store already has data.
func (s *seederService) Seed(count int) error {
	existing, err := s.repo.Count()
	if err != nil {
		return fmt.Errorf("failed to check existing data: %w", err)
	}
	if existing > 0 {
		return nil
	}

	transactions := make([]models.Transaction, 0, count)
	now := time.Now()

	for i := 0; i < count; i++ {
		transactions = append(transactions, s.generate(now))
	}

	// One salary credit so the feed always shows an incoming row.
	transactions = append(transactions, models.Transaction{
		Title:    "Payroll Deposit",
		Subtitle: s.faker.Company(),
		Amount:   decimal.NewFromFloat(s.faker.Price(2800, 5200)),
		Category: models.CategoryIncome,
		Date:     now.Add(-time.Duration(s.faker.IntRange(1, 48)) * time.Hour),
		Status:   models.PaymentStatusCompleted,
	})

	return s.repo.CreateBatch(transactions)
}

func (s *seederService) generate(now time.Time) models.Transaction {
	merchant := merchantPool[s.faker.IntRange(0, len(merchantPool)-1)]

	amount := decimal.NewFromFloat(s.faker.Price(merchant.minPrice, merchant.maxPrice)).Neg()

	status := models.PaymentStatusCompleted
	if s.faker.IntRange(0, 9) == 0 {
		status = models.PaymentStatusPending
	}

	date := now.Add(-time.Duration(s.faker.IntRange(1, 14*24)) * time.Hour)

	return models.Transaction{
		Title:     merchant.name,
		Subtitle:  merchant.category.Label(),
		Amount:    amount,
		Category:  merchant.category,
		Date:      date,
		Recurring: merchant.name == "Netflix" || merchant.name == "Comcast Xfinity",
		Tags:      models.TagList{string(merchant.category)},
		Status:    status,
	}
}
