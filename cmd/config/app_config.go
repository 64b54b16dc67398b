package config

import (
	"context"
	"os"
	"time"

	"Resep-HPP/internal/api/handlers"
	"Resep-HPP/internal/api/routes"
	"Resep-HPP/internal/middleware"
	"Resep-HPP/internal/utils"
	"Resep-HPP/internal/utils/mailing"
	"Resep-HPP/internal/utils/storage"
	"Resep-HPP/pkg/assistant"
	"Resep-HPP/pkg/food"
	"Resep-HPP/pkg/jwt"
	"Resep-HPP/pkg/plan"
	"Resep-HPP/pkg/recipe"
	"Resep-HPP/pkg/setting"
	"Resep-HPP/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfig("APP_TIMEZONE"),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	var fileStorage storage.AwsS3
	if utils.GetConfig("AWS_S3_BUCKET") != "" {
		fileStorage, err = storage.NewAwsS3(context.Background())
		if err != nil {
			return nil, err
		}
	} else {
		log.Warn("AWS_S3_BUCKET is not set, plan exports are disabled")
	}

	var sendMail plan.MailSender
	if utils.GetConfig("SMTP_HOST") != "" {
		sendMail = mailing.SendMail
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	settingRepository := setting.NewSettingRepository(db)
	planRepository := plan.NewPlanRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	settingService := setting.NewSettingService(settingRepository)
	foodService := food.NewFoodService(foodRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, foodRepository, settingService)
	planService := plan.NewPlanService(recipeRepository, foodRepository, settingService, planRepository, fileStorage, sendMail)
	assistantService := assistant.NewAssistantService(assistant.NewGeminiClient(), recipeService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	planHandler := handlers.NewPlanHandler(planService, validator)
	settingHandler := handlers.NewSettingHandler(settingService, validator)
	assistantHandler := handlers.NewAssistantHandler(assistantService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		FoodHandler:      foodHandler,
		RecipeHandler:    recipeHandler,
		PlanHandler:      planHandler,
		SettingHandler:   settingHandler,
		AssistantHandler: assistantHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
