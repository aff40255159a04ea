package http

import (
	"errors"
	"fmt"
	"net/http"

	"cargo/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Mount registers the API, the health probe and the Swagger UI on e.
// API requests are validated against the OpenAPI document before they
// reach the Server.
func Mount(e *echo.Echo, s *Server) error {
	doc, err := servers.GetSwagger()
	if err != nil {
		return err
	}
	if err := servers.RegisterSwagger(); err != nil {
		return err
	}

	validator, err := RequestValidator(doc)
	if err != nil {
		return err
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(&validatedRouter{e: e, validator: validator}, s)
	return nil
}

// RequestValidator rejects requests that do not match doc with 400.
// Requests to paths doc does not describe pass through.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	// Host matching is left to the deployment.
	doc.Servers = nil

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := router.FindRoute(req)
			if isUnroutable(err) {
				return next(c)
			}
			if err != nil {
				return badRequest(c, err.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return badRequest(c, validationMessage(err))
			}

			return next(c)
		}
	}, nil
}

// isUnroutable reports a request the document does not describe. The
// router returns a fresh RouteError, so the reason is compared instead of
// the sentinel.
func isUnroutable(err error) bool {
	var routeErr *routers.RouteError
	if !errors.As(err, &routeErr) {
		return false
	}
	return routeErr.Reason == routers.ErrPathNotFound.Error() ||
		routeErr.Reason == routers.ErrMethodNotAllowed.Error()
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Parameter != nil {
			return fmt.Sprintf("invalid parameter %s: %s", reqErr.Parameter.Name, reqErr.Reason)
		}
		if reqErr.RequestBody != nil {
			if reqErr.Err != nil {
				return fmt.Sprintf("invalid request body: %s", reqErr.Err)
			}
			return fmt.Sprintf("invalid request body: %s", reqErr.Reason)
		}
	}
	return err.Error()
}

// validatedRouter attaches the request validator to every API route only.
type validatedRouter struct {
	e         *echo.Echo
	validator echo.MiddlewareFunc
}

func (r *validatedRouter) with(m []echo.MiddlewareFunc) []echo.MiddlewareFunc {
	return append([]echo.MiddlewareFunc{r.validator}, m...)
}

func (r *validatedRouter) CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.CONNECT(path, h, r.with(m)...)
}

func (r *validatedRouter) DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.DELETE(path, h, r.with(m)...)
}

func (r *validatedRouter) GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.GET(path, h, r.with(m)...)
}

func (r *validatedRouter) HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.HEAD(path, h, r.with(m)...)
}

func (r *validatedRouter) OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.OPTIONS(path, h, r.with(m)...)
}

func (r *validatedRouter) PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.PATCH(path, h, r.with(m)...)
}

func (r *validatedRouter) POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.POST(path, h, r.with(m)...)
}

func (r *validatedRouter) PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.PUT(path, h, r.with(m)...)
}

func (r *validatedRouter) TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.TRACE(path, h, r.with(m)...)
}
