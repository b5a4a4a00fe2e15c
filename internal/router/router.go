package router

import (
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	categoryHandler *handler.CategoryHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	transactionHandler *handler.TransactionHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/refresh", authHandler.Refresh)
	e.POST("/logout", authHandler.Logout)

	e.GET("/category", categoryHandler.List)
	e.GET("/category/:id", categoryHandler.Get)
	e.GET("/product", productHandler.List)
	e.GET("/product/:id", productHandler.Get)

	// Secured routes: bearer token required, then the token's subject is
	// resolved to a live user row for ownership scoping. Missing and
	// invalid/expired tokens both answer 401.
	secured := e.Group("",
		echojwt.WithConfig(echojwt.Config{
			SigningKey: []byte(cfg.JWTSecret),
			NewClaimsFunc: func(c echo.Context) jwt.Claims {
				return new(auth.Claims)
			},
			ErrorHandler: func(c echo.Context, err error) error {
				message := "Invalid or expired token!"
				if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
					message = "You are unauthorized to make this request, Login please!"
				}
				return c.JSON(http.StatusUnauthorized, handler.Response{Message: message, Data: nil})
			},
		}),
		currentUser(userRepo),
	)

	secured.POST("/category", categoryHandler.Create)
	secured.PUT("/category/:id", categoryHandler.Update)
	secured.DELETE("/category/:id", categoryHandler.Delete)

	secured.POST("/product", productHandler.Create)
	secured.PUT("/product/:id", productHandler.Update)
	secured.DELETE("/product/:id", productHandler.Delete)

	secured.POST("/cart", cartHandler.Add)
	secured.PUT("/cart/:id", cartHandler.Update)
	secured.DELETE("/cart/:id", cartHandler.Remove)
	secured.GET("/cart", cartHandler.List)
	secured.GET("/cart/:id", cartHandler.Get)

	secured.POST("/transaction", transactionHandler.Checkout)
	secured.GET("/transaction", transactionHandler.List)
	secured.GET("/transaction/:id", transactionHandler.Get)
}

// currentUser resolves the validated token's subject to a current user
// record and attaches it to the request context. A token whose subject no
// longer exists is treated like an invalid token.
func currentUser(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return c.JSON(http.StatusUnauthorized, handler.Response{
					Message: "You are unauthorized to make this request, Login please!",
					Data:    nil,
				})
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, handler.Response{
					Message: "Invalid or expired token!",
					Data:    nil,
				})
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, handler.Response{
					Message: "Invalid or expired token!",
					Data:    nil,
				})
			}

			c.Set(handler.CurrentUserKey, user)
			return next(c)
		}
	}
}

// phoneRe accepts digits with common separators, optionally prefixed with +.
var phoneRe = regexp.MustCompile(`^\+?[0-9][0-9\-\s().]{5,19}$`)

// CustomValidator wraps validator for Echo, reporting fields by their JSON
// names.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the request validator with the custom phone rule.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
