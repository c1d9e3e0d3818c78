package main

import (
	"fmt"
	"net/http"

	"github.com/storecrew/absence-backend-go/internal/config"
	appHTTP "github.com/storecrew/absence-backend-go/internal/handler/http"
	"github.com/storecrew/absence-backend-go/internal/pkg/database"
	"github.com/storecrew/absence-backend-go/internal/pkg/jwt"
	"github.com/storecrew/absence-backend-go/internal/repository/postgresql"
	absenceService "github.com/storecrew/absence-backend-go/internal/service/absence"
	employeeService "github.com/storecrew/absence-backend-go/internal/service/employee"
	requestService "github.com/storecrew/absence-backend-go/internal/service/request"
	storeService "github.com/storecrew/absence-backend-go/internal/service/store"
	"github.com/storecrew/absence-backend-go/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	if err := database.Migrate(dsn, migrations.FS); err != nil {
		fmt.Println("Error running migrations:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	storeRepo := postgresql.NewStoreRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)
	requestRepo := postgresql.NewHolidayRequestRepository(db)
	txManager := postgresql.NewTxManager(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	storeSvc := storeService.NewStoreService(storeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, storeRepo)
	absenceSvc := absenceService.NewAbsenceService(absenceRepo, employeeRepo)
	requestSvc := requestService.NewRequestService(txManager, requestRepo, absenceRepo, employeeRepo, requestService.SystemClock{})

	storeHandler := appHTTP.NewStoreHandler(storeSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	absenceHandler := appHTTP.NewAbsenceHandler(absenceSvc)
	requestHandler := appHTTP.NewRequestHandler(requestSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		storeHandler,
		employeeHandler,
		absenceHandler,
		requestHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
