package main

import (
	"fmt"
	"net/http"

	"pacifictrucking/config"
	"pacifictrucking/db"
	"pacifictrucking/db/mongo"
	"pacifictrucking/db/postgres"
	"pacifictrucking/handlers"
	"pacifictrucking/repository"
	"pacifictrucking/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	var bookingRepo repository.BookingRepository
	var invoiceRepo repository.InvoiceRepository
	var expenseRepo repository.ExpenseRepository
	var reimbursementRepo repository.ReimbursementRepository
	var advanceRepo repository.CashAdvanceRepository
	var fundRepo repository.FundRepository
	var userRepo repository.UserRepository
	var companyRepo repository.CompanyRepository

	switch cfg.DBType {
	case "postgres":
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		bookingRepo = repository.NewPostgresBookingRepo(pg.Conn)
		invoiceRepo = repository.NewPostgresInvoiceRepo(pg.Conn)
		expenseRepo = repository.NewPostgresExpenseRepo(pg.Conn)
		reimbursementRepo = repository.NewPostgresReimbursementRepo(pg.Conn)
		advanceRepo = repository.NewPostgresCashAdvanceRepo(pg.Conn)
		fundRepo = repository.NewPostgresFundRepo(pg.Conn)
		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		companyRepo = repository.NewPostgresCompanyRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		bookingRepo = repository.NewMongoBookingRepo(mg.Client)
		invoiceRepo = repository.NewMongoInvoiceRepo(mg.Client)
		expenseRepo = repository.NewMongoExpenseRepo(mg.Client)
		reimbursementRepo = repository.NewMongoReimbursementRepo(mg.Client)
		advanceRepo = repository.NewMongoCashAdvanceRepo(mg.Client)
		fundRepo = repository.NewMongoFundRepo(mg.Client)
		userRepo = repository.NewMongoUserRepo(mg.Client)
		companyRepo = repository.NewMongoCompanyRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	// Handlers
	userHandler := &handlers.UserHandler{Repo: userRepo}
	bookingHandler := &handlers.BookingHandler{
		Repo:        bookingRepo,
		InvoiceRepo: invoiceRepo,
		TaxDefaults: cfg.TaxDefaults,
	}
	invoiceHandler := &handlers.InvoiceHandler{Repo: invoiceRepo}
	expenseHandler := &handlers.ExpenseHandler{Repo: expenseRepo, ReimbRepo: reimbursementRepo}
	advanceHandler := &handlers.CashAdvanceHandler{Repo: advanceRepo, ReimbRepo: reimbursementRepo}
	reimbursementHandler := &handlers.ReimbursementHandler{Repo: reimbursementRepo}
	fundHandler := &handlers.FundHandler{Repo: fundRepo}
	companyHandler := &handlers.CompanyHandler{Repo: companyRepo}
	payrollHandler := &handlers.PayrollHandler{BookingRepo: bookingRepo, AdvanceRepo: advanceRepo}
	reportsHandler := &handlers.ReportsHandler{
		BookingRepo: bookingRepo,
		InvoiceRepo: invoiceRepo,
		ExpenseRepo: expenseRepo,
		FundRepo:    fundRepo,
	}

	// PDF handler with combined repository
	pdfRepo := &repository.PDFRepository{
		InvoiceRepo: invoiceRepo,
		BookingRepo: bookingRepo,
		CompanyRepo: companyRepo,
	}
	pdfHandler := &handlers.PDFHandler{Repo: pdfRepo, SavePath: cfg.PDFSavePath}

	routes.SetupRoutes(
		userHandler,
		bookingHandler,
		invoiceHandler,
		expenseHandler,
		advanceHandler,
		reimbursementHandler,
		fundHandler,
		companyHandler,
		payrollHandler,
		reportsHandler,
		pdfHandler,
	)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
