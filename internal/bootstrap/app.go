package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"interview-backend/internal/answers"
	"interview-backend/internal/candidates"
	"interview-backend/internal/evaluation"
	"interview-backend/internal/interviews"
	"interview-backend/internal/questions"
	"interview-backend/internal/shared/config"
	"interview-backend/internal/shared/metrics"
	"interview-backend/internal/shared/server/middleware"
	"interview-backend/internal/shared/server/respond"
	"interview-backend/internal/shared/storage/db"
	"interview-backend/internal/shared/storage/object"
	localstore "interview-backend/internal/shared/storage/object/local"
	s3store "interview-backend/internal/shared/storage/object/s3"
)

// App holds one service's shared dependencies and its router.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	CandidatesRepo candidates.Repo
	InterviewsRepo interviews.Repo
	QuestionsRepo  questions.Repo
	AnswersRepo    answers.Repo
	ResultsStore   evaluation.Store
}

// Close releases process-wide resources; call it at shutdown.
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// BuildIntake prepares the data-entry service: CRUD endpoints plus the
// synchronous evaluation trigger. It also seeds the question bank when empty.
func BuildIntake(cfg config.Config) (*App, error) {
	app, err := build(cfg)
	if err != nil {
		return nil, err
	}

	if err := questions.Seed(context.Background(), app.QuestionsRepo); err != nil {
		return nil, fmt.Errorf("seed questions: %w", err)
	}

	candidateSvc := &candidates.Service{Store: app.Store, Repo: app.CandidatesRepo}
	answerSvc := &answers.Service{Store: app.Store, Repo: app.AnswersRepo}
	interviewSvc := &interviews.Service{
		Repo:       app.InterviewsRepo,
		Candidates: app.CandidatesRepo,
		Questions:  app.QuestionsRepo,
		Answers:    app.AnswersRepo,
		Results:    app.ResultsStore,
	}

	evaluator, err := evaluation.NewClient(cfg.EvaluatorURL, cfg.EvaluatorTimeout)
	if err != nil {
		return nil, err
	}

	r := newEngine(cfg)
	r.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"COMPLETE": {Rate: 1, Burst: 5},
			"UPLOAD":   {Rate: 5, Burst: 20},
		},
		GroupFor: func(c *gin.Context) string {
			switch {
			case c.Request.Method == http.MethodPut && strings.HasSuffix(c.FullPath(), "/complete"):
				return "COMPLETE"
			case c.Request.Method == http.MethodPost && strings.HasPrefix(c.ContentType(), "multipart/form-data"):
				return "UPLOAD"
			default:
				return ""
			}
		},
	}))

	root := r.Group("/")
	root.GET("/", serviceInfo("intake"))
	root.GET("/health", healthCheck)
	candidates.NewHandler(candidateSvc).RegisterRoutes(root)
	answers.NewHandler(answerSvc).RegisterRoutes(root)
	interviews.NewHandler(interviewSvc, evaluator).RegisterRoutes(root)

	app.Router = r
	return app, nil
}

// BuildEvaluator prepares the evaluation service.
func BuildEvaluator(cfg config.Config) (*App, error) {
	app, err := build(cfg)
	if err != nil {
		return nil, err
	}

	evalSvc := &evaluation.Service{
		Answers:   app.AnswersRepo,
		Questions: app.QuestionsRepo,
		Store:     app.ResultsStore,
	}

	r := newEngine(cfg)

	root := r.Group("/")
	root.GET("/", serviceInfo("evaluator"))
	root.GET("/health", healthCheck)
	root.GET("/metrics", metrics.Handler())
	evaluation.NewHandler(evalSvc).RegisterRoutes(root)

	app.Router = r
	return app, nil
}

func build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if sqlDB != nil {
		app.CandidatesRepo = &candidates.PGRepo{DB: sqlDB}
		app.InterviewsRepo = &interviews.PGRepo{DB: sqlDB}
		app.QuestionsRepo = &questions.PGRepo{DB: sqlDB}
		app.AnswersRepo = &answers.PGRepo{DB: sqlDB}
		app.ResultsStore = evaluation.NewPGStore(sqlDB)
	} else {
		ivRepo := interviews.NewMemoryRepo()
		ansRepo := answers.NewMemoryRepo()
		app.CandidatesRepo = candidates.NewMemoryRepo()
		app.InterviewsRepo = ivRepo
		app.QuestionsRepo = questions.NewMemoryRepo()
		app.AnswersRepo = ansRepo
		app.ResultsStore = evaluation.NewMemoryStore(ansRepo, ivRepo)
	}

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.UploadDir), nil
	}
}

func newEngine(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)
	return r
}

func serviceInfo(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		respond.OK(c, gin.H{"status": "ok", "service": name})
	}
}

func healthCheck(c *gin.Context) {
	respond.OK(c, gin.H{"ok": true})
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
