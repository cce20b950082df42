package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/xavierca1/ligue-leads/internal/infra/database"
	"github.com/xavierca1/ligue-leads/internal/infra/http/handlers"
	appmiddleware "github.com/xavierca1/ligue-leads/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-leads/internal/infra/mail"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

func main() {
	godotenv.Load()

	// 1. Lead store: durable document store, or its in-memory substitute.
	var (
		leadRepo    usecase.LeadRepositoryInterface
		mongoClient *mongo.Client
	)

	if os.Getenv("USE_MEMORY_DB") == "true" {
		leadRepo = database.NewMemoryLeadRepository()
		log.Println("Using in-memory lead store")
	} else {
		uri := os.Getenv("MONGODB_URI")
		if uri == "" {
			log.Fatal("MONGODB_URI is not set")
		}

		dbName := os.Getenv("MONGODB_DB")
		if dbName == "" {
			dbName = "leads"
		}

		client, db, err := database.NewMongoConnection(uri, dbName)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer client.Disconnect(context.Background())

		mongoClient = client
		leadRepo = database.NewLeadRepository(db)
		log.Printf("Connected to MongoDB database %q", dbName)
	}

	// 2. Optional collaborators: lead events and sales notifications.
	var (
		producer   usecase.QueueProducerInterface
		rabbitConn *amqp.Connection
	)

	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitMQ, err := queue.NewRabbitMQ(url)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		rabbitConn = rabbitMQ.Conn
		producer = queue.NewLeadEventProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	}

	var emailService usecase.EmailService
	if host := os.Getenv("MAIL_HOST"); host != "" && os.Getenv("LEADS_NOTIFY_TO") != "" {
		port := 587
		if p, err := strconv.Atoi(os.Getenv("MAIL_PORT")); err == nil && p > 0 {
			port = p
		}
		emailService = mail.NewEmailSender(
			host, port,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_FROM"), os.Getenv("LEADS_NOTIFY_TO"),
		)
	}

	// 3. UseCases
	createUC := usecase.NewCreateLeadUseCase(leadRepo, producer, emailService)
	listUC := usecase.NewListLeadsUseCase(leadRepo)
	getUC := usecase.NewGetLeadUseCase(leadRepo)
	updateUC := usecase.NewUpdateLeadUseCase(leadRepo, producer)
	deleteUC := usecase.NewDeleteLeadUseCase(leadRepo, producer)

	// 4. Handlers
	leadHandler := handlers.NewLeadHandler(createUC, listUC, getUC, updateUC, deleteUC)
	healthHandler := handlers.NewHealthHandler(mongoClient, rabbitConn)

	// 5. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(appmiddleware.Metrics)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/leads", func(r chi.Router) {
		r.Post("/", leadHandler.Create)
		r.Get("/", leadHandler.List)
		r.Get("/{id}", leadHandler.Get)
		r.Put("/{id}", leadHandler.Update)
		r.Delete("/{id}", leadHandler.Delete)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}

	log.Printf("Server running on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
