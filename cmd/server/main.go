package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"aptlearn-server/internal/certificate"
	"aptlearn-server/internal/content"
	"aptlearn-server/internal/models"
	"aptlearn-server/internal/quiz"
	"aptlearn-server/internal/user"
	"aptlearn-server/pkg/cache"
	"aptlearn-server/pkg/database"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize database
	dbConfig := &database.Config{
		URL:      os.Getenv("DATABASE_URL"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   os.Getenv("DB_NAME"),
	}

	db, err := database.NewPostgresDB(dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Module{},
		&models.Day{},
		&models.Question{},
		&models.User{},
		&models.Progress{},
		&models.Attempt{},
		&models.Certificate{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize Redis cache (optional)
	var redisCache *cache.RedisCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisCache = cache.NewRedisCache(addr)
	}

	// Initialize repositories
	contentRepo := content.NewRepository(db)
	userRepo := user.NewRepository(db)
	quizRepo := quiz.NewRepository(db)
	certRepo := certificate.NewRepository(db)

	// Seed curriculum content; a failure here is logged but not fatal
	if err := content.Seed(contentRepo); err != nil {
		log.Printf("Warning: content seeding failed: %v", err)
	}

	// Initialize services
	contentService := content.NewService(contentRepo, redisCache)
	userService := user.NewService(userRepo)
	certService := certificate.NewService(certRepo)
	quizService := quiz.NewService(contentService, quizRepo, certService)

	// Initialize handlers
	contentHandler := content.NewHandler(contentService)
	userHandler := user.NewHandler(userService)
	quizHandler := quiz.NewHandler(quizService)
	certHandler := certificate.NewHandler(certService)

	// Setup router
	router := mux.NewRouter()

	router.HandleFunc("/", rootHandler).Methods("GET")
	router.HandleFunc("/api/hello", helloHandler).Methods("GET")
	router.HandleFunc("/test", diagnosticsHandler(db)).Methods("GET")

	router.HandleFunc("/users", userHandler.CreateOrGetUser).Methods("POST", "OPTIONS")
	router.HandleFunc("/modules", contentHandler.GetModules).Methods("GET")
	router.HandleFunc("/days", contentHandler.GetDays).Methods("GET")
	router.HandleFunc("/day/{dayNumber}", contentHandler.GetDay).Methods("GET")
	router.HandleFunc("/quiz/{dayNumber}", contentHandler.GetQuiz).Methods("GET")
	router.HandleFunc("/attempt", quizHandler.SubmitAttempt).Methods("POST", "OPTIONS")
	router.HandleFunc("/progress/{userID}", userHandler.GetProgress).Methods("GET")
	router.HandleFunc("/certificate/{userID}", certHandler.GetCertificate).Methods("GET")

	// CORS middleware configuration
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Requested-With"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	})
	handler := corsMiddleware.Handler(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown setup
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server shutdown gracefully")
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "AptLearn API Running"})
}

func helloHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Hello from the backend API!"})
}

// diagnosticsHandler reports store connectivity and the visible table names.
func diagnosticsHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := map[string]interface{}{
			"backend":           "running",
			"database":          "not available",
			"database_url":      os.Getenv("DATABASE_URL") != "",
			"database_name":     nil,
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		sqlDB, err := db.DB()
		if err == nil && sqlDB.Ping() == nil {
			response["database"] = "available"
			response["database_name"] = db.Migrator().CurrentDatabase()
			response["connection_status"] = "Connected"

			if tables, err := db.Migrator().GetTables(); err == nil {
				if len(tables) > 10 {
					tables = tables[:10]
				}
				response["collections"] = tables
				response["database"] = "connected"
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}
