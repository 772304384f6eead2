package main

import (
	"fmt"
	"net/http"

	"github.com/opsboard/kpi-backend-go/internal/config"
	appHTTP "github.com/opsboard/kpi-backend-go/internal/handler/http"
	"github.com/opsboard/kpi-backend-go/internal/pkg/database"
	"github.com/opsboard/kpi-backend-go/internal/pkg/jwt"
	"github.com/opsboard/kpi-backend-go/internal/repository/postgresql"
	attendanceService "github.com/opsboard/kpi-backend-go/internal/service/attendance"
	authService "github.com/opsboard/kpi-backend-go/internal/service/auth"
	efficiencyService "github.com/opsboard/kpi-backend-go/internal/service/efficiency"
	formulationService "github.com/opsboard/kpi-backend-go/internal/service/formulation"
	productionService "github.com/opsboard/kpi-backend-go/internal/service/production"
	rosterService "github.com/opsboard/kpi-backend-go/internal/service/roster"
	safetyService "github.com/opsboard/kpi-backend-go/internal/service/safety"
	summaryService "github.com/opsboard/kpi-backend-go/internal/service/summary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	teamRepo := postgresql.NewTeamRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	aggregateRepo := postgresql.NewMonthlyAggregateRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	productionCalculator := productionService.NewCalculator(cfg.KPI.ProductionScaleKg)

	authSvc := authService.NewAuthService(userRepo, JWTService)
	rosterSvc := rosterService.NewRosterService(teamRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(aggregateRepo, teamRepo, productionCalculator)
	efficiencySvc := efficiencyService.NewEfficiencyService(aggregateRepo, teamRepo)
	safetySvc := safetyService.NewSafetyService(aggregateRepo, teamRepo, cfg.KPI.SafetyMonthlyTarget)
	formulationSvc := formulationService.NewFormulationService(aggregateRepo, teamRepo)
	summarySvc := summaryService.NewSummaryService(aggregateRepo, teamRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	rosterHandler := appHTTP.NewRosterHandler(rosterSvc)
	kpiHandler := appHTTP.NewKPIHandler(attendanceSvc, efficiencySvc, safetySvc, formulationSvc, summarySvc)

	router := appHTTP.NewRouter(cfg, JWTService, authHandler, rosterHandler, kpiHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
