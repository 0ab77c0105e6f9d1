package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alamin6688/survey-quest-server/auth"
	"github.com/alamin6688/survey-quest-server/cache"
	"github.com/alamin6688/survey-quest-server/controller"
	"github.com/alamin6688/survey-quest-server/db"
	"github.com/alamin6688/survey-quest-server/kafka"
	"github.com/alamin6688/survey-quest-server/middleware"
	"github.com/alamin6688/survey-quest-server/roles"
	"github.com/alamin6688/survey-quest-server/routes"
)

const defaultOrigins = "http://localhost:5173,https://survey-quest-ae959.web.app,https://survey-quest-ae959.firebaseapp.com"

func initMongo() *mongo.Client {
	uri := getEnv("MONGO_URI", "")
	if uri == "" {
		uri = fmt.Sprintf(
			"mongodb+srv://%s:%s@cluster0.nrlryfn.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0",
			os.Getenv("DB_USER"), os.Getenv("DB_PASS"),
		)
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		log.Fatal("failed to connect mongo:", err)
	}

	if err := client.Database("admin").RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		log.Fatal("mongo ping failed:", err)
	}
	log.Println("Pinged your deployment. You successfully connected to MongoDB!")
	return client
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	secret := getEnv("ACCESS_TOKEN_SECRET", "")
	if secret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET is required")
	}
	production := getEnv("APP_ENV", "development") == "production"

	client := initMongo()
	defer client.Disconnect(context.Background())
	store := db.NewMongoStore(client.Database("surveyDb"))

	roleCache := cache.Connect(getEnv("REDIS_ADDR", ""))
	producer := kafka.NewProducer(getEnv("KAFKA_BROKER", ""))
	defer producer.Close()

	codec := auth.NewCodec(secret, production)
	engine := roles.NewEngine(store, roleCache, producer)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     getEnv("CORS_ORIGINS", defaultOrigins),
		AllowCredentials: true,
	}))

	authRequired := middleware.AuthRequired(codec)
	adminRequired := middleware.AdminRequired(store)

	routes.RegisterAuthRoutes(app, controller.NewAuthController(codec))
	routes.RegisterUserRoutes(app, controller.NewUserController(store, roleCache, producer), authRequired, adminRequired)
	routes.RegisterSurveyRoutes(app, controller.NewSurveyController(store, engine, producer))
	routes.RegisterPaymentRoutes(app, controller.NewPaymentController(store, engine, producer))
	routes.RegisterFeedbackRoutes(app, controller.NewFeedbackController(store))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("survey is running")
	})

	port := getEnv("PORT", "5000")
	log.Println("Survey Quest is running on port:", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("fiber error:", err)
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
