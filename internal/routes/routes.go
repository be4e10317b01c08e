package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Tai-brother/UthMentor/internal/config"
	"github.com/Tai-brother/UthMentor/internal/handlers"
	"github.com/Tai-brother/UthMentor/internal/infra/cache"
	infraRepo "github.com/Tai-brother/UthMentor/internal/infra/repository"
	"github.com/Tai-brother/UthMentor/internal/infra/storage"
	"github.com/Tai-brother/UthMentor/internal/middleware"
	"github.com/Tai-brother/UthMentor/internal/models"
	"github.com/Tai-brother/UthMentor/internal/notify"
	"github.com/Tai-brother/UthMentor/internal/payment"
	ucAppointment "github.com/Tai-brother/UthMentor/internal/usecase/appointment"
	ucMentor "github.com/Tai-brother/UthMentor/internal/usecase/mentor"
	ucReview "github.com/Tai-brother/UthMentor/internal/usecase/review"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	rdb *redis.Client,
	logger *zap.Logger,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	mentorRepo := infraRepo.NewMentorGormRepository(db)
	reviewRepo := infraRepo.NewReviewGormRepository(db)

	ratings := cache.NewRatings(rdb, reviewRepo, logger)
	imageStore := storage.NewS3Store(cfg)

	mailer := notify.NewSMTPMailer(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.MailFrom,
	)
	dispatcher := notify.NewDispatcher(mailer, logger)

	gateway := payment.New(cfg.VNPayBaseURL, cfg.VNPayReturnURL)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	availableSlotsUC := ucAppointment.NewGetAvailableSlots(appointmentRepo)
	bookUC := ucAppointment.NewBook(appointmentRepo, gateway, dispatcher, logger)
	listForMentorUC := ucAppointment.NewListForMentor(appointmentRepo)
	listMineUC := ucAppointment.NewListMine(appointmentRepo)
	listAllAppointmentsUC := ucAppointment.NewListAll(appointmentRepo)

	// ======================================================
	// USE CASES — MENTORS
	// ======================================================
	createRequestUC := ucMentor.NewCreateRequest(mentorRepo, imageStore, logger)
	listRequestsUC := ucMentor.NewListRequests(mentorRepo)
	decideRequestUC := ucMentor.NewDecideRequest(mentorRepo, logger)
	updateMentorUC := ucMentor.NewUpdateMentor(mentorRepo)
	searchUC := ucMentor.NewSearch(mentorRepo, ratings)
	getMentorUC := ucMentor.NewGetMentor(mentorRepo, ratings)

	// ======================================================
	// USE CASES — REVIEWS
	// ======================================================
	submitReviewUC := ucReview.NewSubmit(reviewRepo, ratings, logger)
	listReviewsUC := ucReview.NewList(reviewRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		availableSlotsUC,
		bookUC,
		listForMentorUC,
		listMineUC,
		listAllAppointmentsUC,
	)
	mentorHandler := handlers.NewMentorHandler(
		db,
		createRequestUC,
		listRequestsUC,
		decideRequestUC,
		updateMentorUC,
		searchUC,
		getMentorUC,
	)
	reviewHandler := handlers.NewReviewHandler(db, submitReviewUC, listReviewsUC)
	fieldHandler := handlers.NewFieldHandler(db)
	memberHandler := handlers.NewMemberHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/user/register", authHandler.Register)
		api.POST("/user/login", authHandler.Login)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/appointment/available-slots", appointmentHandler.AvailableSlots)

		api.GET("/mentor/search", mentorHandler.Search)
		api.GET("/mentor/get-all", mentorHandler.ListAll)
		api.GET("/mentor/:id", mentorHandler.GetByID)

		api.GET("/review/get-all/:mentorId", reviewHandler.ListForMentor)
		api.GET("/field/get-all", fieldHandler.List)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/appointment/book", appointmentHandler.Book)
			secured.GET("/appointment/getBy-mentor", appointmentHandler.ListForMentor)
			secured.GET("/appointment/me", appointmentHandler.ListMine)

			secured.POST("/mentor/request", mentorHandler.CreateRequest)
			secured.GET("/mentor/me", mentorHandler.Me)

			secured.POST("/review/evaluate", reviewHandler.Submit)

			secured.GET("/member/me", memberHandler.Me)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/appointment/get-all", appointmentHandler.ListAll)

				admin.GET("/mentor/get-all-requests", mentorHandler.ListRequests)
				admin.PUT("/mentor/decide-request", mentorHandler.DecideRequest)
				admin.PUT("/mentor/update/:mentorId", mentorHandler.UpdateMentor)

				admin.POST("/field/create", fieldHandler.Create)
				admin.GET("/member/get-all", memberHandler.List)
			}
		}
	}
}
