package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/catalog_service/internal/middleware/auth"
	"github.com/Skotchmaster/catalog_service/internal/models"
)

type Deps struct {
	CategoryHandler *CategoryHTTP
	ProductHandler  *ProductHTTP
	UserHandler     *UserHTTP
	JWTSecret       []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	jwt := auth.JWT(d.JWTSecret)
	employee := auth.RequireRole(models.RoleEmployee)
	manager := auth.RequireRole(models.RoleManager)

	v1 := e.Group("/v1")

	categories := v1.Group("/categories")
	categories.GET("", d.CategoryHandler.GetCategories)
	categories.GET("/:id", d.CategoryHandler.GetCategory)
	categories.POST("", d.CategoryHandler.CreateCategory, jwt, employee)
	categories.PUT("/:id", d.CategoryHandler.UpdateCategory, jwt, employee)
	categories.DELETE("/:id", d.CategoryHandler.DeleteCategory, jwt, employee)

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.GET("/categories/:id", d.ProductHandler.GetProductsByCategory)
	products.POST("", d.ProductHandler.CreateProduct, jwt, employee)
	products.PUT("/:id", d.ProductHandler.UpdateProduct, jwt, manager)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct, jwt, manager)

	users := v1.Group("/users")
	users.POST("", d.UserHandler.Register)
	users.POST("/login", d.UserHandler.Login)
	users.GET("", d.UserHandler.GetUsers, jwt, manager)
	users.PUT("/:id", d.UserHandler.UpdateUser, jwt, manager)
	users.DELETE("/:id", d.UserHandler.DeleteUser, jwt, manager)
}
