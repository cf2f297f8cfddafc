// Package api contains all endpoints available
package api

import (
	"bitwise74/review-api/db"
	"bitwise74/review-api/middleware"
	"bitwise74/review-api/pkg/security"
	"fmt"
	"time"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine
	Tokens *security.Tokens
	Hash   *security.PasswordHash
}

func NewRouter() (*API, error) {
	a := &API{
		Tokens: security.NewTokens(),
		Hash:   security.NewPasswordHash(),
	}

	conn, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = conn

	makeLogger()

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
		middleware.BodySizeLimiter(1<<20),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	jwt := middleware.NewJWTMiddleware(a.Tokens)
	authLimit := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: viper.GetInt("ratelimit.rps"),
		Burst:             viper.GetInt("ratelimit.burst"),
	})

	ops := router.Group("/api")
	{
		// HEAD /api/heartbeat		-> Used to check if the server is alive
		ops.HEAD("/heartbeat", a.Heartbeat)

		// HEAD /api/validate		-> Validates a JWT token
		ops.HEAD("/validate", jwt, a.Validate)
	}

	// POST /register		-> Registers a new user
	router.POST("/register", authLimit, a.UserRegister)

	// POST /login			-> Logs in a user and sets the token cookies
	router.POST("/login", authLimit, a.UserLogin)

	// POST /logout			-> Clears the token cookies and the stored refresh token
	router.POST("/logout", jwt, a.UserLogout)

	// GET /currentuser		-> Returns the user behind the access token
	router.GET("/currentuser", jwt, a.UserCurrent)

	// GET /movies			-> Lists the whole movie catalog with reviews
	router.GET("/movies", cacheFor(30), a.MovieList)

	// POST /getmoviewithreviews	-> Returns one movie with reviews and their authors
	router.POST("/getmoviewithreviews", jwt, a.MovieFetch)

	// POST /createreview		-> Creates a review for a movie
	router.POST("/createreview", jwt, a.ReviewCreate)

	// POST /updatereview		-> Updates a review by its ID
	router.POST("/updatereview", jwt, a.ReviewUpdate)

	// POST /deletereview		-> Deletes a review by its ID
	router.POST("/deletereview", jwt, a.ReviewDelete)

	if viper.GetString("app.env") == "dev" {
		zap.L().Warn("Running in dev mode, cookies are sent without the secure flag")
	}

	return a, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}

// secureCookies reports whether cookies should carry the secure flag.
// Local dev runs over plain http so the flag would make browsers drop them.
func secureCookies() bool {
	return viper.GetString("app.env") != "dev"
}
